package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openshelf/internal/core/domain"
	"openshelf/internal/core/services"
)

func Test_MostBorrowedReport_SortsByCount(t *testing.T) {
	f := newFixture(t)
	reports := services.NewReportService(f.catalog, f.ledger, domain.DefaultPolicies())

	// B002 circulates twice, B001 once.
	_, err := f.circ.Borrow("B002", "U001", day(0))
	require.NoError(t, err)
	_, err = f.circ.Return("B002", "U001", day(1))
	require.NoError(t, err)
	_, err = f.circ.Borrow("B002", "U002", day(2))
	require.NoError(t, err)
	_, err = f.circ.Borrow("B001", "U001", day(2))
	require.NoError(t, err)

	report := reports.MostBorrowed(day(3))

	assert.Equal(t, services.ReportMostBorrowed, report.Type)
	require.Len(t, report.MostBorrowed, 2)
	assert.Equal(t, "B002", report.MostBorrowed[0].ItemID)
	assert.Equal(t, 2, report.MostBorrowed[0].BorrowCount)
	assert.Equal(t, "B001", report.MostBorrowed[1].ItemID)
}

func Test_ActiveBorrowersReport_SkipsPatronsWithoutLoans(t *testing.T) {
	f := newFixture(t)
	reports := services.NewReportService(f.catalog, f.ledger, domain.DefaultPolicies())

	_, err := f.circ.Borrow("B001", "U002", day(0))
	require.NoError(t, err)

	report := reports.ActiveBorrowers(day(1))

	require.Len(t, report.ActiveBorrowers, 1)
	row := report.ActiveBorrowers[0]
	assert.Equal(t, "U002", row.PatronID)
	assert.Equal(t, domain.TierFaculty, row.Tier)
	assert.Equal(t, 1, row.ActiveLoans)
}

func Test_OverdueReport_IncludesAccruedFine(t *testing.T) {
	f := newFixture(t)
	reports := services.NewReportService(f.catalog, f.ledger, domain.DefaultPolicies())

	// Student loan due day 14; guest loan due day 7 but returned on time.
	_, err := f.circ.Borrow("B001", "U001", day(0))
	require.NoError(t, err)
	_, err = f.circ.Borrow("B002", "U003", day(0))
	require.NoError(t, err)
	_, err = f.circ.Return("B002", "U003", day(5))
	require.NoError(t, err)

	report := reports.Overdue(day(17))

	require.Len(t, report.Overdue, 1, "closed loans never show up as overdue")
	row := report.Overdue[0]
	assert.Equal(t, "B001", row.ItemID)
	assert.Equal(t, "Clean Code", row.Title)
	assert.Equal(t, "Amara Silva", row.PatronName)
	assert.Equal(t, 3, row.DaysOverdue)
	assert.Equal(t, 150.0, row.Fine)
}

func Test_ReminderSweep_PublishesOverdueAndDueSoon(t *testing.T) {
	f := newFixture(t)
	sink := &recordingObserver{name: "sink"}
	f.notifier.Subscribe(sink)

	// Guest loan: due day 7. Student loan: due day 14.
	_, err := f.circ.Borrow("B001", "U003", day(0))
	require.NoError(t, err)
	_, err = f.circ.Borrow("B002", "U001", day(0))
	require.NoError(t, err)
	delivered := len(sink.messages)

	reminders := services.NewReminderService(f.catalog, f.ledger, domain.DefaultPolicies(), f.notifier, "30 8 * * *")
	reminders.RunSweep(day(13))

	require.Len(t, sink.messages, delivered+2)
	assert.Contains(t, sink.messages[delivered], "overdue")
	assert.Contains(t, sink.messages[delivered], "LKR 600.00", "guest rate LKR 100 x 6 days")
	assert.Contains(t, sink.messages[delivered+1], "due back tomorrow")
}
