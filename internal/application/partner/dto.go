package partner

import (
	"time"

	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateCustomerRequest represents a request to register a new customer
type CreateCustomerRequest struct {
	FirstName string     `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string     `json:"last_name" binding:"required,min=1,max=100"`
	Phone     string     `json:"phone" binding:"max=20"`
	Email     string     `json:"email" binding:"omitempty,email,max=200"`
	BirthDate *time.Time `json:"birth_date"`
	Address   string     `json:"address" binding:"max=500"`
	Notes     string     `json:"notes"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	FirstName *string    `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string    `json:"last_name" binding:"omitempty,min=1,max=100"`
	Phone     *string    `json:"phone" binding:"omitempty,max=20"`
	Email     *string    `json:"email" binding:"omitempty,email,max=200"`
	BirthDate *time.Time `json:"birth_date"`
	Address   *string    `json:"address" binding:"omitempty,max=500"`
	Notes     *string    `json:"notes"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	FullName     string     `json:"full_name"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Address      string     `json:"address"`
	Notes        string     `json:"notes"`
	RegisteredAt time.Time  `json:"registered_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToCustomerResponse converts a customer entity to a response DTO
func ToCustomerResponse(customer *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:           customer.ID,
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		FullName:     customer.FullName(),
		Phone:        customer.Phone,
		Email:        customer.Email,
		BirthDate:    customer.BirthDate,
		Address:      customer.Address,
		Notes:        customer.Notes,
		RegisteredAt: customer.CreatedAt,
		UpdatedAt:    customer.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of customer entities
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, *ToCustomerResponse(&customers[i]))
	}
	return responses
}
