// Package validation centralizes input-format checks so every handler
// rejects bad data the same way.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern   = regexp.MustCompile(`^[\w.%+-]+@[\w.-]+\.[a-zA-Z]{2,6}$`)
	contactPattern = regexp.MustCompile(`^\d{10}$`)
)

// IsValidEmail reports whether the email matches username@domain.extension
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidateEmail returns a descriptive error for an invalid email
func ValidateEmail(email string) error {
	if !IsValidEmail(email) {
		return fmt.Errorf("invalid email format, expected username@domain.extension")
	}
	return nil
}

// IsValidContactNumber reports whether the contact number is exactly 10 digits
func IsValidContactNumber(contact string) bool {
	return contactPattern.MatchString(strings.TrimSpace(contact))
}

// ValidateContactNumber returns a descriptive error for an invalid contact number
func ValidateContactNumber(contact string) error {
	if !IsValidContactNumber(contact) {
		return fmt.Errorf("contact number must contain exactly 10 digits")
	}
	return nil
}

// ValidateNotEmpty rejects blank required fields
func ValidateNotEmpty(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}
