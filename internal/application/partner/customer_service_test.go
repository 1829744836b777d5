package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/partner"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Search(ctx context.Context, term string) ([]partner.Customer, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveWithAddress(ctx context.Context, customer *partner.Customer, address *partner.Address) error {
	args := m.Called(ctx, customer, address)
	return args.Error(0)
}

func (m *MockCustomerRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	args := m.Called(ctx, nationalID)
	return args.Bool(0), args.Error(1)
}

func validCustomerRequest() CreateCustomerRequest {
	return CreateCustomerRequest{
		FirstName:  "Pedro",
		LastName:   "Soto",
		NationalID: "12345678-9",
		Phone:      "+56911112222",
		Email:      "pedro@example.com",
		Address: AddressInput{
			Street:     "Av. Providencia 1234",
			PostalCode: "7500000",
		},
	}
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("registers customer with address", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo)

		repo.On("ExistsByNationalID", mock.Anything, "12345678-9").Return(false, nil)
		repo.On("SaveWithAddress", mock.Anything,
			mock.AnythingOfType("*partner.Customer"),
			mock.AnythingOfType("*partner.Address")).Return(nil)

		resp, err := svc.Create(ctx, validCustomerRequest())

		require.NoError(t, err)
		assert.Equal(t, "Pedro", resp.FirstName)
		assert.Equal(t, "12345678-9", resp.NationalID)
		require.NotNil(t, resp.Address)
		assert.Equal(t, "Av. Providencia 1234", resp.Address.Street)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate national ID", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo)

		repo.On("ExistsByNationalID", mock.Anything, "12345678-9").Return(true, nil)

		_, err := svc.Create(ctx, validCustomerRequest())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "SaveWithAddress", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates uniqueness check failure", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo)

		repo.On("ExistsByNationalID", mock.Anything, "12345678-9").
			Return(false, errors.New("connection reset"))

		_, err := svc.Create(ctx, validCustomerRequest())
		assert.EqualError(t, err, "connection reset")
	})

	t.Run("rejects empty street", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo)

		repo.On("ExistsByNationalID", mock.Anything, "12345678-9").Return(false, nil)

		req := validCustomerRequest()
		req.Address.Street = ""

		_, err := svc.Create(ctx, req)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ADDRESS", domainErr.Code)
	})
}

func TestCustomerService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("uses search when a term is present", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo)

		repo.On("Search", mock.Anything, "soto").Return([]partner.Customer{}, nil)

		_, err := svc.List(ctx, CustomerListFilter{Search: "soto"})

		require.NoError(t, err)
		repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("pages through all customers otherwise", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo)

		expectedFilter := shared.DefaultFilter()
		expectedFilter.Page = 3
		repo.On("FindAll", mock.Anything, expectedFilter).Return([]partner.Customer{}, nil)

		_, err := svc.List(ctx, CustomerListFilter{Page: 3})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
