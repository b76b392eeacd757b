package invoicing

import (
	"regexp"

	"github.com/invoicing/backend/internal/domain/shared"
)

var (
	phoneRegex = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func validatePartyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validateAddress(address string) error {
	if address == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot be empty")
	}
	if len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 20 characters")
	}
	if !phoneRegex.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 254 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 254 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
