package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"openshelf/internal/pkg/validation"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{"john.doe@example.com", true},
		{"student123@university.edu", true},
		{"a+b@host.io", true},
		{"", false},
		{"john@", false},
		{"@example.com", false},
		{"john.doe@", false},
		{"no-at-sign.com", false},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.valid, validation.IsValidEmail(tt.email), tt.email)
	}
}

func TestIsValidContactNumber(t *testing.T) {
	testCases := []struct {
		contact string
		valid   bool
	}{
		{"0771234567", true},
		{"1234567890", true},
		{"123456789", false},
		{"12345678901", false},
		{"077-123-4567", false},
		{"", false},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.valid, validation.IsValidContactNumber(tt.contact), tt.contact)
	}
}

func TestValidateNotEmpty(t *testing.T) {
	assert.NoError(t, validation.ValidateNotEmpty("x", "title"))
	assert.EqualError(t, validation.ValidateNotEmpty("  ", "title"), "title cannot be empty")
}
