package invoicing

import (
	"github.com/invoicing/backend/internal/domain/shared"
)

// Customer represents the billed party of an invoice.
type Customer struct {
	shared.BaseEntity
	Name    string
	Email   string
	Phone   string
	Address string
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Address:    address,
	}, nil
}

// Update replaces the customer's details after validation
func (c *Customer) Update(name, email, phone, address string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePhone(phone); err != nil {
		return err
	}
	if err := validateAddress(address); err != nil {
		return err
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.Touch()

	return nil
}
