package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicing/backend/internal/domain/invoicing"
)

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null"`
	Address string `gorm:"type:text;not null"`
	Phone   string `gorm:"type:varchar(20);not null"`
	Email   string `gorm:"type:varchar(254);not null"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *invoicing.Company {
	return &invoicing.Company{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Address:    m.Address,
		Phone:      m.Phone,
		Email:      m.Email,
	}
}

// FromDomain populates the persistence model from a domain Company entity.
func (m *CompanyModel) FromDomain(c *invoicing.Company) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Address = c.Address
	m.Phone = c.Phone
	m.Email = c.Email
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *invoicing.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null;index"`
	Email   string `gorm:"type:varchar(254);not null"`
	Phone   string `gorm:"type:varchar(20);not null"`
	Address string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *invoicing.Customer {
	return &invoicing.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *invoicing.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *invoicing.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// InvoiceModel is the persistence model for the Invoice aggregate root.
type InvoiceModel struct {
	BaseModel
	Number         string             `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoice_number"`
	CompanyID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	DateCreated    time.Time          `gorm:"not null;index"`
	DateDue        time.Time          `gorm:"not null"`
	Status         string             `gorm:"type:varchar(20);not null;default:'draft'"`
	Notes          string             `gorm:"type:text"`
	DiscountAmount decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	ShippingAmount decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	Items          []InvoiceItemModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Company        *CompanyModel      `gorm:"foreignKey:CompanyID"`
	Customer       *CustomerModel     `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice aggregate.
// Items keep their stored position order; associated company and
// customer are mapped when loaded.
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	inv := &invoicing.Invoice{
		BaseEntity:     m.BaseModel.ToDomain(),
		Number:         m.Number,
		CompanyID:      m.CompanyID,
		CustomerID:     m.CustomerID,
		DateCreated:    m.DateCreated,
		DateDue:        m.DateDue,
		Status:         invoicing.InvoiceStatus(m.Status),
		Notes:          m.Notes,
		DiscountAmount: m.DiscountAmount,
		ShippingAmount: m.ShippingAmount,
	}

	inv.Items = make([]invoicing.InvoiceItem, len(m.Items))
	for i, item := range m.Items {
		inv.Items[i] = *item.ToDomain()
	}

	if m.Company != nil {
		inv.Company = m.Company.ToDomain()
	}
	if m.Customer != nil {
		inv.Customer = m.Customer.ToDomain()
	}

	return inv
}

// FromDomain populates the persistence model from a domain Invoice
// aggregate, including its items.
func (m *InvoiceModel) FromDomain(inv *invoicing.Invoice) {
	m.FromDomainBaseEntity(inv.BaseEntity)
	m.Number = inv.Number
	m.CompanyID = inv.CompanyID
	m.CustomerID = inv.CustomerID
	m.DateCreated = inv.DateCreated
	m.DateDue = inv.DateDue
	m.Status = string(inv.Status)
	m.Notes = inv.Notes
	m.DiscountAmount = inv.DiscountAmount
	m.ShippingAmount = inv.ShippingAmount

	m.Items = make([]InvoiceItemModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Items[i] = *InvoiceItemModelFromDomain(&item)
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice aggregate.
func InvoiceModelFromDomain(inv *invoicing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceItemModel is the persistence model for the InvoiceItem entity.
type InvoiceItemModel struct {
	BaseModel
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Position    int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain InvoiceItem entity.
func (m *InvoiceItemModel) ToDomain() *invoicing.InvoiceItem {
	return &invoicing.InvoiceItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Position:    m.Position,
	}
}

// InvoiceItemModelFromDomain creates a new persistence model from a domain InvoiceItem entity.
func InvoiceItemModelFromDomain(item *invoicing.InvoiceItem) *InvoiceItemModel {
	m := &InvoiceItemModel{}
	m.FromDomainBaseEntity(item.BaseEntity)
	m.InvoiceID = item.InvoiceID
	m.Description = item.Description
	m.Quantity = item.Quantity
	m.UnitPrice = item.UnitPrice
	m.Position = item.Position
	return m
}
