package partner

import (
	"strings"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
)

// Customer represents a registered customer. Orders and sales may reference
// a customer, but both survive the customer being deleted.
type Customer struct {
	shared.BaseEntity
	FirstName string     `gorm:"type:varchar(100);not null"`
	LastName  string     `gorm:"type:varchar(100);not null"`
	Phone     string     `gorm:"type:varchar(20);index"`
	Email     string     `gorm:"type:varchar(200);index"`
	BirthDate *time.Time `gorm:"type:date"`
	Address   string     `gorm:"type:text"`
	Notes     string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer. CreatedAt doubles as the registration
// timestamp and is never modified afterwards.
func NewCustomer(firstName, lastName string) (*Customer, error) {
	if err := validateName(firstName, "first name"); err != nil {
		return nil, err
	}
	if err := validateName(lastName, "last name"); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  strings.TrimSpace(firstName),
		LastName:   strings.TrimSpace(lastName),
	}, nil
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Update updates the customer's basic information
func (c *Customer) Update(firstName, lastName string) error {
	if err := validateName(firstName, "first name"); err != nil {
		return err
	}
	if err := validateName(lastName, "last name"); err != nil {
		return err
	}

	c.FirstName = strings.TrimSpace(firstName)
	c.LastName = strings.TrimSpace(lastName)
	c.Touch()

	return nil
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(phone, email, address string) error {
	if phone != "" && len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 20 characters")
	}
	if email != "" && len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.TrimSpace(email)
	c.Address = strings.TrimSpace(address)
	c.Touch()

	return nil
}

// SetBirthDate sets the customer's birth date, nil clears it.
func (c *Customer) SetBirthDate(birthDate *time.Time) {
	c.BirthDate = birthDate
	c.Touch()
}

// SetNotes sets free-form notes on the customer.
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.Touch()
}

func validateName(name, field string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer "+field+" is required")
	}
	if len(trimmed) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Customer "+field+" cannot exceed 100 characters")
	}
	return nil
}
