package domain

import "time"

// LoanRecord is the audit entry for one borrow-to-return cycle.
// It is created once when a borrow succeeds and mutated once when the
// item comes back; records are never deleted.
type LoanRecord struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"item_id"`
	PatronID   string     `json:"patron_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// NewLoanRecord opens a loan starting at borrowDate, due after the
// policy's loan period
func NewLoanRecord(id, itemID, patronID string, borrowDate time.Time, policy MembershipPolicy) *LoanRecord {
	return &LoanRecord{
		ID:         id,
		ItemID:     itemID,
		PatronID:   patronID,
		BorrowDate: borrowDate,
		DueDate:    borrowDate.AddDate(0, 0, policy.LoanPeriodDays),
	}
}

// Active reports whether the item is still out
func (r *LoanRecord) Active() bool {
	return r.ReturnDate == nil
}

// Close stamps the return date. Closing an already closed record is a no-op.
func (r *LoanRecord) Close(returnDate time.Time) {
	if r.ReturnDate == nil {
		t := returnDate
		r.ReturnDate = &t
	}
}

// Overdue reports whether the loan ran past its due date. For a closed
// loan the return date decides; for an open loan the given date does.
func (r *LoanRecord) Overdue(asOf time.Time) bool {
	if r.ReturnDate != nil {
		return r.ReturnDate.After(r.DueDate)
	}
	return asOf.After(r.DueDate)
}

// OverdueDays returns the number of whole calendar days the loan is
// overdue, zero when it is not
func (r *LoanRecord) OverdueDays(asOf time.Time) int {
	if !r.Overdue(asOf) {
		return 0
	}
	comparison := asOf
	if r.ReturnDate != nil {
		comparison = *r.ReturnDate
	}
	return daysBetween(r.DueDate, comparison)
}

// daysBetween counts calendar days from a to b, ignoring time of day
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Reservation represents a hold placed on an already-loaned item.
// At most one reservation exists per item; it is removed on cancellation
// or when the item is returned and the holder is notified.
type Reservation struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	PatronID   string    `json:"patron_id"`
	ReservedAt time.Time `json:"reserved_at"`
	Notified   bool      `json:"notified"`
}

// NewReservation creates an unnotified reservation
func NewReservation(id, itemID, patronID string, reservedAt time.Time) *Reservation {
	return &Reservation{
		ID:         id,
		ItemID:     itemID,
		PatronID:   patronID,
		ReservedAt: reservedAt,
	}
}
