package memstore

import (
	"strings"
	"sync"
	"time"

	"openshelf/internal/core/domain"
)

// LedgerStore owns the append-only list of loan records and the active
// reservations. It keeps storage consistent and nothing more; capacity
// and exclusivity rules live in the circulation service.
type LedgerStore struct {
	mu           sync.RWMutex
	records      []*domain.LoanRecord
	reservations map[string]*domain.Reservation // keyed by lower-cased item id
}

// NewLedgerStore creates an empty ledger
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		reservations: make(map[string]*domain.Reservation),
	}
}

// ============================================================
// Loan records
// ============================================================

// AddLoan appends a loan record to the ledger
func (s *LedgerStore) AddLoan(rec *domain.LoanRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// CloseLoan stamps the return date on a record
func (s *LedgerStore) CloseLoan(rec *domain.LoanRecord, returnDate time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.Close(returnDate)
}

// FindActiveLoan returns the open loan record for an item, nil if none
func (s *LedgerStore) FindActiveLoan(itemID string) *domain.LoanRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.Active() && strings.EqualFold(rec.ItemID, itemID) {
			return rec
		}
	}
	return nil
}

// ActiveLoanCount returns how many open loans a patron holds
func (s *LedgerStore) ActiveLoanCount(patronID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.records {
		if rec.Active() && strings.EqualFold(rec.PatronID, patronID) {
			count++
		}
	}
	return count
}

// IsItemLoanedOrReserved reports whether an item has an open loan or an
// active reservation
func (s *LedgerStore) IsItemLoanedOrReserved(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.reservations[strings.ToLower(itemID)]; ok {
		return true
	}
	for _, rec := range s.records {
		if rec.Active() && strings.EqualFold(rec.ItemID, itemID) {
			return true
		}
	}
	return false
}

// Records returns a snapshot of all loan records, oldest first
func (s *LedgerStore) Records() []*domain.LoanRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.LoanRecord(nil), s.records...)
}

// ActiveLoans returns all open loan records, optionally filtered by patron
func (s *LedgerStore) ActiveLoans(patronID string) []*domain.LoanRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []*domain.LoanRecord
	for _, rec := range s.records {
		if !rec.Active() {
			continue
		}
		if patronID != "" && !strings.EqualFold(rec.PatronID, patronID) {
			continue
		}
		active = append(active, rec)
	}
	return active
}

// ============================================================
// Reservations
// ============================================================

// AddReservation stores the active reservation for an item
func (s *LedgerStore) AddReservation(res *domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[strings.ToLower(res.ItemID)] = res
}

// FindReservation returns the active reservation for an item, nil if none
func (s *LedgerStore) FindReservation(itemID string) *domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reservations[strings.ToLower(itemID)]
}

// RemoveReservation drops the active reservation for an item
func (s *LedgerStore) RemoveReservation(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reservations, strings.ToLower(itemID))
}

// Reservations returns a snapshot of all active reservations
func (s *LedgerStore) Reservations() []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*domain.Reservation, 0, len(s.reservations))
	for _, res := range s.reservations {
		all = append(all, res)
	}
	return all
}
