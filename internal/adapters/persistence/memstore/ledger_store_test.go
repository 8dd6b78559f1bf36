package memstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openshelf/internal/adapters/persistence/memstore"
	"openshelf/internal/core/domain"
)

var noon = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func studentLoan(t *testing.T, id, itemID, patronID string) *domain.LoanRecord {
	t.Helper()
	policy, err := domain.DefaultPolicies().Lookup(domain.TierStudent)
	require.NoError(t, err)
	return domain.NewLoanRecord(id, itemID, patronID, noon, policy)
}

func TestLedgerStore_ActiveLoanLifecycle(t *testing.T) {
	ledger := memstore.NewLedgerStore()

	rec := studentLoan(t, "BR-1", "B001", "U001")
	ledger.AddLoan(rec)

	assert.Equal(t, 1, ledger.ActiveLoanCount("U001"))
	assert.Same(t, rec, ledger.FindActiveLoan("b001"), "item lookup is case-insensitive")
	assert.True(t, ledger.IsItemLoanedOrReserved("B001"))

	ledger.CloseLoan(rec, noon.AddDate(0, 0, 3))

	assert.Zero(t, ledger.ActiveLoanCount("U001"))
	assert.Nil(t, ledger.FindActiveLoan("B001"))
	assert.False(t, ledger.IsItemLoanedOrReserved("B001"))
	assert.Len(t, ledger.Records(), 1, "closed records stay in the ledger")
}

func TestLedgerStore_ActiveLoansFilterByPatron(t *testing.T) {
	ledger := memstore.NewLedgerStore()
	ledger.AddLoan(studentLoan(t, "BR-1", "B001", "U001"))
	ledger.AddLoan(studentLoan(t, "BR-2", "B002", "U002"))
	ledger.AddLoan(studentLoan(t, "BR-3", "B003", "U001"))

	assert.Len(t, ledger.ActiveLoans(""), 3)
	assert.Len(t, ledger.ActiveLoans("U001"), 2)
	assert.Len(t, ledger.ActiveLoans("U003"), 0)
}

func TestLedgerStore_SingleReservationSlot(t *testing.T) {
	ledger := memstore.NewLedgerStore()

	res := domain.NewReservation("RS-1", "B001", "U002", noon)
	ledger.AddReservation(res)

	assert.Same(t, res, ledger.FindReservation("B001"))
	assert.True(t, ledger.IsItemLoanedOrReserved("B001"))

	ledger.RemoveReservation("B001")
	assert.Nil(t, ledger.FindReservation("B001"))
	assert.Empty(t, ledger.Reservations())
}
