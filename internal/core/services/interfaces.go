package services

import (
	"time"

	"openshelf/internal/core/domain"
)

// Catalog is the registry collaborator the circulation engine consumes.
// A nil result means the id did not resolve.
type Catalog interface {
	FindItemByID(id string) *domain.Item
	FindPatronByID(id string) *domain.Patron
}

// Ledger owns loan records and reservations. It guarantees storage
// consistency only; business rules stay in the circulation service.
type Ledger interface {
	AddLoan(rec *domain.LoanRecord)
	CloseLoan(rec *domain.LoanRecord, returnDate time.Time)
	FindActiveLoan(itemID string) *domain.LoanRecord
	ActiveLoanCount(patronID string) int
	ActiveLoans(patronID string) []*domain.LoanRecord
	Records() []*domain.LoanRecord

	AddReservation(res *domain.Reservation)
	FindReservation(itemID string) *domain.Reservation
	RemoveReservation(itemID string)
	Reservations() []*domain.Reservation

	IsItemLoanedOrReserved(itemID string) bool
}
