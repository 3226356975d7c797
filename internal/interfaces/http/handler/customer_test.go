package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	partnerapp "github.com/backoffice/backend/internal/application/partner"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
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

func newCustomerTestRouter(repo partner.CustomerRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewCustomerHandler(partnerapp.NewCustomerService(repo))
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)
	return engine
}

func TestCustomerHandlerCreate(t *testing.T) {
	t.Run("valid request returns 201", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Customer")).Return(nil)
		engine := newCustomerTestRouter(repo)

		body, _ := json.Marshal(map[string]string{
			"first_name": "Ayşe",
			"last_name":  "Yılmaz",
			"phone":      "+90 555 111 2233",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Ayşe Yılmaz", data["full_name"])
		repo.AssertExpectations(t)
	})

	t.Run("missing first name returns 400", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		engine := newCustomerTestRouter(repo)

		body, _ := json.Marshal(map[string]string{"last_name": "Yılmaz"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerHandlerGetByID(t *testing.T) {
	t.Run("missing customer returns 404", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil, shared.ErrNotFound)
		engine := newCustomerTestRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+uuid.NewString(), nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("malformed ID returns 400 without hitting the repo", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		engine := newCustomerTestRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/not-a-uuid", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestCustomerHandlerList(t *testing.T) {
	repo := new(MockCustomerRepository)
	customer, err := partner.NewCustomer("Mehmet", "Demir")
	require.NoError(t, err)

	repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]partner.Customer{*customer}, nil)
	repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)
	engine := newCustomerTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers?page=1&page_size=10&search=demir", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.PageSize)
}
