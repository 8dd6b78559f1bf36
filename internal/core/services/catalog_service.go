package services

import (
	"log"
	"strings"

	"openshelf/internal/adapters/persistence/memstore"
	"openshelf/internal/core/domain"
	"openshelf/internal/pkg/validation"
)

// CatalogService manages the item, patron and librarian registries.
// Lifecycle state stays with the circulation service; this service only
// touches descriptive data.
type CatalogService struct {
	store    *memstore.CatalogStore
	policies *domain.PolicyTable
}

// NewCatalogService creates a catalog service
func NewCatalogService(store *memstore.CatalogStore, policies *domain.PolicyTable) *CatalogService {
	return &CatalogService{
		store:    store,
		policies: policies,
	}
}

// ============================================================
// Items
// ============================================================

// ItemInput represents item create/update data
type ItemInput struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title" validate:"required"`
	Author   string   `json:"author" validate:"required"`
	Category string   `json:"category,omitempty"`
	ISBN     string   `json:"isbn,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

func (in *ItemInput) validate() error {
	if err := validation.ValidateNotEmpty(in.Title, "title"); err != nil {
		return err
	}
	return validation.ValidateNotEmpty(in.Author, "author")
}

// AddItem registers a new catalog item in the Available state
func (s *CatalogService) AddItem(input *ItemInput) (*domain.Item, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = newID("B")
	}

	item := domain.NewItem(id, input.Title, input.Author, input.Category, input.ISBN, input.Tags)
	if err := s.store.AddItem(item); err != nil {
		return nil, err
	}

	log.Printf("✅ Item added: %s (%s)", item.ID, item.Title)
	return item, nil
}

// UpdateItem replaces the descriptive fields of an item
func (s *CatalogService) UpdateItem(id string, input *ItemInput) (*domain.Item, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	return s.store.UpdateItem(id, input.Title, input.Author, input.Category, input.ISBN, input.Tags)
}

// RemoveItem deletes an item that is not loaned or reserved
func (s *CatalogService) RemoveItem(id string) error {
	if err := s.store.RemoveItem(id); err != nil {
		return err
	}
	log.Printf("✅ Item removed: %s", id)
	return nil
}

// GetItem returns one item by id
func (s *CatalogService) GetItem(id string) (*domain.Item, error) {
	item := s.store.FindItemByID(id)
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// Items returns the full catalog in insertion order
func (s *CatalogService) Items() []*domain.Item {
	return s.store.Items()
}

// SearchItems returns items whose title or author contains the query,
// case-insensitively
func (s *CatalogService) SearchItems(query string) []*domain.Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.store.Items()
	}

	var matches []*domain.Item
	for _, item := range s.store.Items() {
		if strings.Contains(strings.ToLower(item.Title), query) ||
			strings.Contains(strings.ToLower(item.Author), query) {
			matches = append(matches, item)
		}
	}
	return matches
}

// ============================================================
// Patrons
// ============================================================

// PatronInput represents patron registration data
type PatronInput struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Contact string `json:"contact" validate:"required"`
	Tier    string `json:"tier" validate:"required"`
}

// RegisterPatron adds a patron after validating contact details and tier
func (s *CatalogService) RegisterPatron(input *PatronInput) (*domain.Patron, error) {
	if err := validation.ValidateNotEmpty(input.Name, "name"); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidateContactNumber(input.Contact); err != nil {
		return nil, err
	}

	tier, err := s.policies.ParseTier(strings.ToUpper(strings.TrimSpace(input.Tier)))
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = newID("U")
	}

	patron := domain.NewPatron(id, input.Name, input.Email, input.Contact, tier)
	if err := s.store.AddPatron(patron); err != nil {
		return nil, err
	}

	log.Printf("✅ Patron registered: %s (%s, %s)", patron.ID, patron.Name, patron.Tier)
	return patron, nil
}

// RemovePatron deletes a patron with no active loans
func (s *CatalogService) RemovePatron(id string) error {
	return s.store.RemovePatron(id)
}

// GetPatron returns one patron by id
func (s *CatalogService) GetPatron(id string) (*domain.Patron, error) {
	patron := s.store.FindPatronByID(id)
	if patron == nil {
		return nil, domain.ErrPatronNotFound
	}
	return patron, nil
}

// Patrons returns all registered patrons
func (s *CatalogService) Patrons() []*domain.Patron {
	return s.store.Patrons()
}

// ============================================================
// Librarians
// ============================================================

// LibrarianInput represents librarian registration data
type LibrarianInput struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Contact string `json:"contact" validate:"required"`
}

// AddLibrarian registers a librarian record
func (s *CatalogService) AddLibrarian(input *LibrarianInput) (*domain.Librarian, error) {
	if err := validation.ValidateNotEmpty(input.Name, "name"); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidateContactNumber(input.Contact); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = newID("L")
	}

	librarian := &domain.Librarian{ID: id, Name: input.Name, Email: input.Email, Contact: input.Contact}
	s.store.AddLibrarian(librarian)
	return librarian, nil
}

// Librarians returns all librarian records
func (s *CatalogService) Librarians() []*domain.Librarian {
	return s.store.Librarians()
}
