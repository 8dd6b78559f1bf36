package services

import (
	"sort"
	"strings"
	"time"

	"openshelf/internal/adapters/persistence/memstore"
	"openshelf/internal/core/domain"
)

// Report types
const (
	ReportMostBorrowed    = "MOST_BORROWED"
	ReportActiveBorrowers = "ACTIVE_BORROWERS"
	ReportOverdue         = "OVERDUE"
)

// Report is a generated administrative report
type Report struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	GeneratedAt time.Time `json:"generated_at"`

	MostBorrowed    []MostBorrowedRow    `json:"most_borrowed,omitempty"`
	ActiveBorrowers []ActiveBorrowerRow  `json:"active_borrowers,omitempty"`
	Overdue         []OverdueRow         `json:"overdue,omitempty"`
}

// MostBorrowedRow counts historical borrows per item
type MostBorrowedRow struct {
	ItemID      string `json:"item_id"`
	Title       string `json:"title"`
	BorrowCount int    `json:"borrow_count"`
}

// ActiveBorrowerRow lists a patron with open loans
type ActiveBorrowerRow struct {
	PatronID    string      `json:"patron_id"`
	Name        string      `json:"name"`
	Tier        domain.Tier `json:"tier"`
	ActiveLoans int         `json:"active_loans"`
}

// OverdueRow lists an open loan past its due date
type OverdueRow struct {
	RecordID    string    `json:"record_id"`
	ItemID      string    `json:"item_id"`
	Title       string    `json:"title"`
	PatronID    string    `json:"patron_id"`
	PatronName  string    `json:"patron_name"`
	DueDate     time.Time `json:"due_date"`
	DaysOverdue int       `json:"days_overdue"`
	Fine        float64   `json:"fine"`
}

// ReportService builds administrative reports from the catalog and the
// loan ledger
type ReportService struct {
	store    *memstore.CatalogStore
	ledger   Ledger
	policies *domain.PolicyTable
}

// NewReportService creates a report service
func NewReportService(store *memstore.CatalogStore, ledger Ledger, policies *domain.PolicyTable) *ReportService {
	return &ReportService{
		store:    store,
		ledger:   ledger,
		policies: policies,
	}
}

// MostBorrowed reports how often each item has been borrowed, most
// borrowed first
func (s *ReportService) MostBorrowed(now time.Time) *Report {
	counts := make(map[string]int)
	for _, rec := range s.ledger.Records() {
		counts[strings.ToLower(rec.ItemID)]++
	}

	var rows []MostBorrowedRow
	for _, item := range s.store.Items() {
		if count := counts[strings.ToLower(item.ID)]; count > 0 {
			rows = append(rows, MostBorrowedRow{ItemID: item.ID, Title: item.Title, BorrowCount: count})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].BorrowCount > rows[j].BorrowCount })

	return &Report{ID: newID("REP"), Type: ReportMostBorrowed, GeneratedAt: now, MostBorrowed: rows}
}

// ActiveBorrowers reports every patron holding at least one open loan
func (s *ReportService) ActiveBorrowers(now time.Time) *Report {
	var rows []ActiveBorrowerRow
	for _, patron := range s.store.Patrons() {
		if active := s.ledger.ActiveLoanCount(patron.ID); active > 0 {
			rows = append(rows, ActiveBorrowerRow{
				PatronID:    patron.ID,
				Name:        patron.Name,
				Tier:        patron.Tier,
				ActiveLoans: active,
			})
		}
	}

	return &Report{ID: newID("REP"), Type: ReportActiveBorrowers, GeneratedAt: now, ActiveBorrowers: rows}
}

// Overdue reports open loans past their due date with the fine accrued
// as of the given time
func (s *ReportService) Overdue(asOf time.Time) *Report {
	var rows []OverdueRow
	for _, rec := range s.ledger.ActiveLoans("") {
		if !rec.Overdue(asOf) {
			continue
		}

		row := OverdueRow{
			RecordID:    rec.ID,
			ItemID:      rec.ItemID,
			PatronID:    rec.PatronID,
			DueDate:     rec.DueDate,
			DaysOverdue: rec.OverdueDays(asOf),
		}
		if item := s.store.FindItemByID(rec.ItemID); item != nil {
			row.Title = item.Title
		}
		if patron := s.store.FindPatronByID(rec.PatronID); patron != nil {
			row.PatronName = patron.Name
			if policy, err := s.policies.Lookup(patron.Tier); err == nil {
				row.Fine = domain.CalculateFine(rec, asOf, policy)
			}
		}
		rows = append(rows, row)
	}

	return &Report{ID: newID("REP"), Type: ReportOverdue, GeneratedAt: asOf, Overdue: rows}
}
