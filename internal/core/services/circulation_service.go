package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"openshelf/internal/core/domain"
)

// CirculationService is the transactional façade for borrow, return,
// reserve and cancel-reservation. It is the only component that mutates
// more than one entity per call: it validates against the policy table
// and the ledger, asks the state machine for the transition, records the
// result and fires a notification. On a failed validation nothing is
// mutated.
//
// A single mutex serializes all four operations, so concurrent borrow
// attempts on one item cannot both observe it available.
type CirculationService struct {
	mu       sync.Mutex
	catalog  Catalog
	ledger   Ledger
	policies *domain.PolicyTable
	notifier *NotificationService
}

// NewCirculationService creates a circulation service
func NewCirculationService(catalog Catalog, ledger Ledger, policies *domain.PolicyTable, notifier *NotificationService) *CirculationService {
	return &CirculationService{
		catalog:  catalog,
		ledger:   ledger,
		policies: policies,
		notifier: notifier,
	}
}

// ReturnResult reports the outcome of a return: the closed record, the
// fine owed (0 when on time) and whether a reservation holder was told
// the item is ready for pickup.
type ReturnResult struct {
	Record         *domain.LoanRecord `json:"record"`
	Fine           float64            `json:"fine"`
	PickupNotified bool               `json:"pickup_notified"`
}

// Borrow lends an item to a patron. The loan record is created with the
// due date set by the patron's tier policy.
func (s *CirculationService) Borrow(itemID, patronID string, now time.Time) (*domain.LoanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, patron, err := s.resolve(itemID, patronID)
	if err != nil {
		return nil, err
	}

	policy, err := s.policies.Lookup(patron.Tier)
	if err != nil {
		return nil, err
	}

	if s.ledger.ActiveLoanCount(patron.ID) >= policy.MaxActiveLoans {
		return nil, domain.ErrCapacityExceeded
	}

	next, err := domain.NextState(item.State, domain.OpBorrow)
	if err != nil {
		return nil, err
	}

	rec := domain.NewLoanRecord(newID("BR"), item.ID, patron.ID, now, policy)
	s.ledger.AddLoan(rec)
	item.History = append(item.History, rec)
	patron.AddLoan(rec)
	item.State = next

	log.Printf("✅ Item %s borrowed by %s, due %s", item.ID, patron.ID, rec.DueDate.Format("2006-01-02"))
	s.notifier.Publish(item, fmt.Sprintf("'%s' borrowed by %s, due back %s",
		item.Title, patron.Name, rec.DueDate.Format("2006-01-02")))

	return rec, nil
}

// Return takes an item back from the borrowing patron, closes the loan
// record and reports the fine. If the item was reserved, the reservation
// is fulfilled: the holder is notified and the slot cleared, but the item
// becomes Available rather than moving straight to the holder — they
// still have to borrow it themselves.
func (s *CirculationService) Return(itemID, patronID string, now time.Time) (*ReturnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, patron, err := s.resolve(itemID, patronID)
	if err != nil {
		return nil, err
	}

	rec := s.ledger.FindActiveLoan(item.ID)
	if rec == nil || !strings.EqualFold(rec.PatronID, patron.ID) {
		return nil, domain.ErrNotBorrowed
	}

	policy, err := s.policies.Lookup(patron.Tier)
	if err != nil {
		return nil, err
	}

	next, err := domain.NextState(item.State, domain.OpReturn)
	if err != nil {
		return nil, err
	}
	wasReserved := item.State == domain.StateReserved

	s.ledger.CloseLoan(rec, now)
	fine := domain.CalculateFine(rec, now, policy)
	item.State = next

	result := &ReturnResult{Record: rec, Fine: fine}

	if wasReserved {
		result.PickupNotified = s.fulfillReservation(item)
	}

	log.Printf("✅ Item %s returned by %s (fine: %.2f)", item.ID, patron.ID, fine)
	message := fmt.Sprintf("'%s' returned by %s", item.Title, patron.Name)
	if fine > 0 {
		message = fmt.Sprintf("%s, overdue fine LKR %.2f", message, fine)
	}
	s.notifier.Publish(item, message)

	return result, nil
}

// fulfillReservation clears the reservation slot after a reserved item
// comes back and tells the holder the item is ready. Caller holds the lock.
func (s *CirculationService) fulfillReservation(item *domain.Item) bool {
	res := s.ledger.FindReservation(item.ID)
	if res == nil {
		return false
	}

	res.Notified = true
	s.ledger.RemoveReservation(item.ID)
	if holder := s.catalog.FindPatronByID(res.PatronID); holder != nil {
		holder.RemoveReservation(res.ID)
		s.notifier.Publish(item, fmt.Sprintf("%s: your reserved item '%s' is now available for pickup",
			holder.Name, item.Title))
	}
	return true
}

// Reserve places a hold on a currently loaned item. One reservation slot
// exists per item; a second attempt fails instead of queuing.
func (s *CirculationService) Reserve(itemID, patronID string, now time.Time) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, patron, err := s.resolve(itemID, patronID)
	if err != nil {
		return nil, err
	}

	if existing := s.ledger.FindReservation(item.ID); existing != nil &&
		strings.EqualFold(existing.PatronID, patron.ID) {
		return nil, domain.ErrDuplicateReservation
	}

	next, err := domain.NextState(item.State, domain.OpReserve)
	if err != nil {
		return nil, err
	}

	res := domain.NewReservation(newID("RS"), item.ID, patron.ID, now)
	s.ledger.AddReservation(res)
	patron.AddReservation(res)
	item.State = next

	log.Printf("✅ Item %s reserved by %s", item.ID, patron.ID)
	s.notifier.Publish(item, fmt.Sprintf("'%s' reserved by %s", item.Title, patron.Name))

	return res, nil
}

// CancelReservation releases the hold a patron placed on an item. Only
// the reservation holder can cancel; the item stays with its borrower.
func (s *CirculationService) CancelReservation(itemID, patronID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, patron, err := s.resolve(itemID, patronID)
	if err != nil {
		return err
	}

	res := s.ledger.FindReservation(item.ID)
	if res == nil || !strings.EqualFold(res.PatronID, patron.ID) {
		return domain.ErrReservationNotFound
	}

	next, err := domain.NextState(item.State, domain.OpCancelReservation)
	if err != nil {
		return err
	}

	s.ledger.RemoveReservation(item.ID)
	patron.RemoveReservation(res.ID)
	item.State = next

	log.Printf("✅ Reservation %s cancelled by %s", res.ID, patron.ID)
	s.notifier.Publish(item, fmt.Sprintf("reservation on '%s' cancelled by %s", item.Title, patron.Name))

	return nil
}

// ============================================================
// Read-only accessors (for presentation and reports)
// ============================================================

// ItemState returns the current lifecycle state of an item
func (s *CirculationService) ItemState(itemID string) (domain.ItemState, error) {
	item := s.catalog.FindItemByID(itemID)
	if item == nil {
		return "", domain.ErrItemNotFound
	}
	return item.State, nil
}

// ActiveLoans returns open loans, optionally filtered by patron id
func (s *CirculationService) ActiveLoans(patronID string) []*domain.LoanRecord {
	return s.ledger.ActiveLoans(patronID)
}

// LoanHistory returns every loan record, oldest first
func (s *CirculationService) LoanHistory() []*domain.LoanRecord {
	return s.ledger.Records()
}

// Reservations returns all active reservations
func (s *CirculationService) Reservations() []*domain.Reservation {
	return s.ledger.Reservations()
}

func (s *CirculationService) resolve(itemID, patronID string) (*domain.Item, *domain.Patron, error) {
	item := s.catalog.FindItemByID(itemID)
	if item == nil {
		return nil, nil, domain.ErrItemNotFound
	}
	patron := s.catalog.FindPatronByID(patronID)
	if patron == nil {
		return nil, nil, domain.ErrPatronNotFound
	}
	return item, patron, nil
}

// newID builds a prefixed identifier like BR-9f1c… for records and
// reservations
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
