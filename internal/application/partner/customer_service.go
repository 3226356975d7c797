package partner

import (
	"context"

	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create registers a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" || req.Email != "" || req.Address != "" {
		if err := customer.SetContact(req.Phone, req.Email, req.Address); err != nil {
			return nil, err
		}
	}
	if req.BirthDate != nil {
		customer.SetBirthDate(req.BirthDate)
	}
	if req.Notes != "" {
		customer.SetNotes(req.Notes)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// GetByID returns a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// List returns customers matching the filter with pagination metadata
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[CustomerResponse], error) {
	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.customerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToCustomerResponses(customers), total, filter.Page, filter.Limit())
	return &page, nil
}

// Update updates a customer's details
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	firstName := customer.FirstName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	lastName := customer.LastName
	if req.LastName != nil {
		lastName = *req.LastName
	}
	if err := customer.Update(firstName, lastName); err != nil {
		return nil, err
	}

	if req.Phone != nil || req.Email != nil || req.Address != nil {
		phone := customer.Phone
		if req.Phone != nil {
			phone = *req.Phone
		}
		email := customer.Email
		if req.Email != nil {
			email = *req.Email
		}
		address := customer.Address
		if req.Address != nil {
			address = *req.Address
		}
		if err := customer.SetContact(phone, email, address); err != nil {
			return nil, err
		}
	}
	if req.BirthDate != nil {
		customer.SetBirthDate(req.BirthDate)
	}
	if req.Notes != nil {
		customer.SetNotes(*req.Notes)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// Delete removes a customer. Historical orders and sales keep their rows
// with the customer reference cleared.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
