package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openshelf/internal/core/domain"
	"openshelf/internal/core/services"
)

func newCatalogService(f *fixture) *services.CatalogService {
	return services.NewCatalogService(f.catalog, domain.DefaultPolicies())
}

func Test_AddItem_GeneratesIDAndKeepsTags(t *testing.T) {
	f := newFixture(t)
	svc := newCatalogService(f)

	item, err := svc.AddItem(&services.ItemInput{
		Title:  "Domain-Driven Design",
		Author: "Eric Evans",
		Tags:   []string{domain.TagRecommended},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, domain.StateAvailable, item.State)
	assert.Contains(t, item.Describe(), "[RECOMMENDED]")

	// Required fields are enforced.
	_, err = svc.AddItem(&services.ItemInput{Title: " ", Author: "X"})
	assert.EqualError(t, err, "title cannot be empty")

	// Duplicate ids are rejected.
	_, err = svc.AddItem(&services.ItemInput{ID: "B001", Title: "T", Author: "A"})
	assert.ErrorIs(t, err, domain.ErrDuplicateItem)
}

func Test_RemoveItem_RefusedWhileInCirculation(t *testing.T) {
	f := newFixture(t)
	svc := newCatalogService(f)

	_, err := f.circ.Borrow("B001", "U001", day(0))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveItem("B001"), domain.ErrItemInUse)

	_, err = f.circ.Return("B001", "U001", day(1))
	require.NoError(t, err)
	assert.NoError(t, svc.RemoveItem("B001"))
	assert.ErrorIs(t, svc.RemoveItem("B001"), domain.ErrItemNotFound)
}

func Test_RegisterPatron_Validation(t *testing.T) {
	f := newFixture(t)
	svc := newCatalogService(f)

	testCases := []struct {
		name    string
		input   services.PatronInput
		wantErr string
	}{
		{
			"bad email",
			services.PatronInput{Name: "P", Email: "not-an-email", Contact: "0771234567", Tier: "STUDENT"},
			"invalid email format, expected username@domain.extension",
		},
		{
			"bad contact",
			services.PatronInput{Name: "P", Email: "p@example.com", Contact: "077-123", Tier: "STUDENT"},
			"contact number must contain exactly 10 digits",
		},
		{
			"unknown tier",
			services.PatronInput{Name: "P", Email: "p@example.com", Contact: "0771234567", Tier: "WIZARD"},
			"unknown membership tier",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterPatron(&tt.input)
			assert.EqualError(t, err, tt.wantErr)
		})
	}

	patron, err := svc.RegisterPatron(&services.PatronInput{
		Name: "Dilshan Fernando", Email: "dilshan@example.com", Contact: "0712345678", Tier: "guest",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TierGuest, patron.Tier, "tier parsing is case-insensitive")
}

func Test_RemovePatron_RefusedWithActiveLoans(t *testing.T) {
	f := newFixture(t)
	svc := newCatalogService(f)

	_, err := f.circ.Borrow("B001", "U001", day(0))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemovePatron("U001"), domain.ErrPatronHasLoans)

	_, err = f.circ.Return("B001", "U001", day(1))
	require.NoError(t, err)
	assert.NoError(t, svc.RemovePatron("U001"))
}

func Test_SearchItems(t *testing.T) {
	f := newFixture(t)
	svc := newCatalogService(f)

	assert.Len(t, svc.SearchItems(""), 2)
	assert.Len(t, svc.SearchItems("pragmatic"), 1)
	assert.Len(t, svc.SearchItems("MARTIN"), 1, "author match, case-insensitive")
	assert.Empty(t, svc.SearchItems("zz"))
}

func Test_AddLibrarian(t *testing.T) {
	f := newFixture(t)
	svc := newCatalogService(f)

	librarian, err := svc.AddLibrarian(&services.LibrarianInput{
		Name: "Shalini De Mel", Email: "shalini@example.com", Contact: "0719998888",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, librarian.ID)
	assert.Len(t, svc.Librarians(), 1)
}
