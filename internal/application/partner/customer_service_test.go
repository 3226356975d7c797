package partner

import (
	"context"
	"testing"

	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestCustomerServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and persists customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

		service := NewCustomerService(repo)
		resp, err := service.Create(ctx, CreateCustomerRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Phone:     "+90 555 000 0000",
			Email:     "ada@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", resp.FullName)
		assert.Equal(t, "+90 555 000 0000", resp.Phone)
		assert.False(t, resp.RegisteredAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid input before saving", func(t *testing.T) {
		repo := new(MockCustomerRepository)

		service := NewCustomerService(repo)
		resp, err := service.Create(ctx, CreateCustomerRequest{FirstName: "", LastName: "Lovelace"})

		assert.Error(t, err)
		assert.Nil(t, resp)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial updates", func(t *testing.T) {
		existing, err := partner.NewCustomer("Ada", "Lovelace")
		require.NoError(t, err)

		repo := new(MockCustomerRepository)
		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)

		service := NewCustomerService(repo)
		newPhone := "+90 555 111 1111"
		resp, err := service.Update(ctx, existing.ID, UpdateCustomerRequest{Phone: &newPhone})

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", resp.FullName)
		assert.Equal(t, newPhone, resp.Phone)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := NewCustomerService(repo)
		_, err := service.Update(ctx, id, UpdateCustomerRequest{})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCustomerServiceList(t *testing.T) {
	ctx := context.Background()

	ada, err := partner.NewCustomer("Ada", "Lovelace")
	require.NoError(t, err)
	grace, err := partner.NewCustomer("Grace", "Hopper")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	filter := shared.DefaultFilter()
	repo.On("FindAll", ctx, filter).Return([]partner.Customer{*ada, *grace}, nil)
	repo.On("Count", ctx, filter).Return(int64(2), nil)

	service := NewCustomerService(repo)
	page, err := service.List(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestCustomerServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing customer", func(t *testing.T) {
		existing, err := partner.NewCustomer("Ada", "Lovelace")
		require.NoError(t, err)

		repo := new(MockCustomerRepository)
		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Delete", ctx, existing.ID).Return(nil)

		service := NewCustomerService(repo)
		assert.NoError(t, service.Delete(ctx, existing.ID))
		repo.AssertExpectations(t)
	})

	t.Run("missing customer is not deleted", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := NewCustomerService(repo)
		assert.ErrorIs(t, service.Delete(ctx, id), shared.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
