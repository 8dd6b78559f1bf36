package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openshelf/internal/core/domain"
)

var day0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

func studentPolicy(t *testing.T) domain.MembershipPolicy {
	t.Helper()
	policy, err := domain.DefaultPolicies().Lookup(domain.TierStudent)
	require.NoError(t, err)
	return policy
}

func TestCalculateFine_StudentFiveDaysLate(t *testing.T) {
	policy := studentPolicy(t)
	rec := domain.NewLoanRecord("BR-1", "B001", "U001", day(0), policy)
	require.Equal(t, day(14), rec.DueDate)

	rec.Close(day(19))

	fine := domain.CalculateFine(rec, day(19), policy)
	assert.Equal(t, 250.0, fine, "5 days x LKR 50")
}

func TestCalculateFine_ZeroOnOrBeforeDueDate(t *testing.T) {
	policy := studentPolicy(t)
	rec := domain.NewLoanRecord("BR-1", "B001", "U001", day(0), policy)

	for _, asOf := range []time.Time{day(0), day(7), day(14)} {
		assert.Zero(t, domain.CalculateFine(rec, asOf, policy))
	}
}

func TestCalculateFine_MonotonicWhileOpen(t *testing.T) {
	policy := studentPolicy(t)
	rec := domain.NewLoanRecord("BR-1", "B001", "U001", day(0), policy)

	previous := 0.0
	for n := 10; n <= 30; n++ {
		fine := domain.CalculateFine(rec, day(n), policy)
		assert.GreaterOrEqual(t, fine, previous, "fine must not shrink as time advances")
		previous = fine
	}
	assert.Equal(t, 800.0, previous, "16 days x LKR 50 at day 30")
}

func TestCalculateFine_ClosedLoanIgnoresAsOf(t *testing.T) {
	policy := studentPolicy(t)
	rec := domain.NewLoanRecord("BR-1", "B001", "U001", day(0), policy)
	rec.Close(day(16))

	// Once returned, the fine is fixed by the return date.
	assert.Equal(t, 100.0, domain.CalculateFine(rec, day(16), policy))
	assert.Equal(t, 100.0, domain.CalculateFine(rec, day(60), policy))
}

func TestCalculateFine_PerTierRates(t *testing.T) {
	policies := domain.DefaultPolicies()

	testCases := []struct {
		tier     domain.Tier
		lateDays int
		expected float64
	}{
		{domain.TierStudent, 3, 150},
		{domain.TierFaculty, 3, 60},
		{domain.TierGuest, 3, 300},
	}

	for _, tt := range testCases {
		t.Run(string(tt.tier), func(t *testing.T) {
			policy, err := policies.Lookup(tt.tier)
			require.NoError(t, err)

			rec := domain.NewLoanRecord("BR-1", "B001", "U001", day(0), policy)
			asOf := rec.DueDate.AddDate(0, 0, tt.lateDays)

			assert.Equal(t, tt.expected, domain.CalculateFine(rec, asOf, policy))
		})
	}
}

func TestLoanRecord_OverdueDaysIgnoresTimeOfDay(t *testing.T) {
	policy := studentPolicy(t)
	rec := domain.NewLoanRecord("BR-1", "B001", "U001", day(0), policy)

	// Hours past due on the same calendar day do not count yet.
	assert.Equal(t, 0, rec.OverdueDays(rec.DueDate.Add(3*time.Hour)))

	// One calendar day later counts as one, whatever the clock says.
	assert.Equal(t, 1, rec.OverdueDays(rec.DueDate.Add(2*time.Hour).AddDate(0, 0, 1)))
}
