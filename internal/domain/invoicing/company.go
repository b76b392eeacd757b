package invoicing

import (
	"github.com/invoicing/backend/internal/domain/shared"
)

// Company represents the issuing party of an invoice.
// A company can be referenced by any number of invoices.
type Company struct {
	shared.BaseEntity
	Name    string
	Address string
	Phone   string
	Email   string
}

// NewCompany creates a new company with required fields
func NewCompany(name, address, phone, email string) (*Company, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &Company{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		Phone:      phone,
		Email:      email,
	}, nil
}

// Update replaces the company's details after validation
func (c *Company) Update(name, address, phone, email string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}
	if err := validateAddress(address); err != nil {
		return err
	}
	if err := validatePhone(phone); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	c.Name = name
	c.Address = address
	c.Phone = phone
	c.Email = email
	c.Touch()

	return nil
}
