package config

import (
	"log"

	"openshelf/internal/core/domain"
	"openshelf/internal/core/services"
)

// Seeder loads demo data into the in-memory stores
type Seeder struct {
	catalog *services.CatalogService
}

// NewSeeder creates a new seeder instance
func NewSeeder(catalog *services.CatalogService) *Seeder {
	return &Seeder{catalog: catalog}
}

// Run executes all seeders
// This is for development/testing only
func (s *Seeder) Run() error {
	log.Println("🌱 Seeding demo data...")

	if err := s.seedItems(); err != nil {
		log.Printf("⚠️ Item seeder skipped: %v", err)
	}
	if err := s.seedPatrons(); err != nil {
		log.Printf("⚠️ Patron seeder skipped: %v", err)
	}
	if err := s.seedLibrarians(); err != nil {
		log.Printf("⚠️ Librarian seeder skipped: %v", err)
	}

	log.Println("✅ Demo data seeding completed")
	return nil
}

func (s *Seeder) seedItems() error {
	if len(s.catalog.Items()) > 0 {
		return nil // Catalog already populated
	}

	items := []services.ItemInput{
		{ID: "B001", Title: "Clean Code", Author: "Robert C. Martin", Category: "Software", ISBN: "9780132350884", Tags: []string{domain.TagRecommended}},
		{ID: "B002", Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Category: "Software", ISBN: "9780201616224", Tags: []string{domain.TagFeatured}},
		{ID: "B003", Title: "Design Patterns", Author: "Erich Gamma", Category: "Software", ISBN: "9780201633610", Tags: []string{domain.TagSpecialEdition}},
		{ID: "B004", Title: "Madol Doova", Author: "Martin Wickramasinghe", Category: "Fiction", ISBN: "9789556652611"},
	}
	for _, in := range items {
		if _, err := s.catalog.AddItem(&in); err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d catalog items", len(items))
	return nil
}

func (s *Seeder) seedPatrons() error {
	if len(s.catalog.Patrons()) > 0 {
		return nil
	}

	patrons := []services.PatronInput{
		{Name: "Amara Silva", Email: "amara@example.com", Contact: "0711234567", Tier: "STUDENT"},
		{Name: "Nimal Perera", Email: "nimal@example.com", Contact: "0719876543", Tier: "FACULTY"},
		{Name: "Kasun Jayawardena", Email: "kasun@example.com", Contact: "0771112223", Tier: "GUEST"},
	}
	for _, in := range patrons {
		if _, err := s.catalog.RegisterPatron(&in); err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d patrons", len(patrons))
	return nil
}

func (s *Seeder) seedLibrarians() error {
	if len(s.catalog.Librarians()) > 0 {
		return nil
	}

	if _, err := s.catalog.AddLibrarian(&services.LibrarianInput{
		Name:    "Sanduni Fernando",
		Email:   "sanduni@openshelf.lk",
		Contact: "0765554443",
	}); err != nil {
		return err
	}

	log.Println("✅ Seeded default librarian")
	return nil
}
