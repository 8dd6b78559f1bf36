// Package memstore provides the in-memory persistence adapters. The
// process owns all state for its lifetime; durable storage is out of
// scope, so the stores keep the repository surface without a database
// behind it.
package memstore

import (
	"strings"
	"sync"

	"openshelf/internal/core/domain"
)

// CatalogStore owns the registries of items, patrons and librarians
type CatalogStore struct {
	mu         sync.RWMutex
	items      []*domain.Item
	patrons    []*domain.Patron
	librarians []*domain.Librarian
}

// NewCatalogStore creates an empty catalog store
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// ============================================================
// Item registry
// ============================================================

// AddItem registers a new item
func (s *CatalogStore) AddItem(item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findItem(item.ID) != nil {
		return domain.ErrDuplicateItem
	}
	s.items = append(s.items, item)
	return nil
}

// FindItemByID returns the item with the given id, nil when absent.
// Lookup is case-insensitive.
func (s *CatalogStore) FindItemByID(id string) *domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findItem(id)
}

// RemoveItem deletes an item from the registry. Items that are loaned
// or reserved stay until their cycle finishes.
func (s *CatalogStore) RemoveItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, item := range s.items {
		if strings.EqualFold(item.ID, id) {
			if item.State != domain.StateAvailable {
				return domain.ErrItemInUse
			}
			s.items = append(s.items[:idx], s.items[idx+1:]...)
			return nil
		}
	}
	return domain.ErrItemNotFound
}

// UpdateItem replaces the descriptive fields of an existing item.
// Lifecycle state and history are not touched.
func (s *CatalogStore) UpdateItem(id string, title, author, category, isbn string, tags []string) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(id)
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	item.Title = title
	item.Author = author
	item.Category = category
	item.ISBN = isbn
	item.Tags = append([]string(nil), tags...)
	return item, nil
}

// Items returns a snapshot of the registry in insertion order
func (s *CatalogStore) Items() []*domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Item(nil), s.items...)
}

func (s *CatalogStore) findItem(id string) *domain.Item {
	for _, item := range s.items {
		if strings.EqualFold(item.ID, id) {
			return item
		}
	}
	return nil
}

// ============================================================
// Patron registry
// ============================================================

// AddPatron registers a new patron
func (s *CatalogStore) AddPatron(patron *domain.Patron) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findPatron(patron.ID) != nil {
		return domain.ErrDuplicatePatron
	}
	s.patrons = append(s.patrons, patron)
	return nil
}

// FindPatronByID returns the patron with the given id, nil when absent
func (s *CatalogStore) FindPatronByID(id string) *domain.Patron {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findPatron(id)
}

// RemovePatron deletes a patron. Patrons with active loans cannot leave.
func (s *CatalogStore) RemovePatron(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, patron := range s.patrons {
		if strings.EqualFold(patron.ID, id) {
			if patron.ActiveLoanCount() > 0 {
				return domain.ErrPatronHasLoans
			}
			s.patrons = append(s.patrons[:idx], s.patrons[idx+1:]...)
			return nil
		}
	}
	return domain.ErrPatronNotFound
}

// Patrons returns a snapshot of the registry in insertion order
func (s *CatalogStore) Patrons() []*domain.Patron {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Patron(nil), s.patrons...)
}

func (s *CatalogStore) findPatron(id string) *domain.Patron {
	for _, patron := range s.patrons {
		if strings.EqualFold(patron.ID, id) {
			return patron
		}
	}
	return nil
}

// ============================================================
// Librarian registry
// ============================================================

// AddLibrarian registers a librarian record
func (s *CatalogStore) AddLibrarian(l *domain.Librarian) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.librarians = append(s.librarians, l)
}

// Librarians returns a snapshot of the librarian records
func (s *CatalogStore) Librarians() []*domain.Librarian {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Librarian(nil), s.librarians...)
}
