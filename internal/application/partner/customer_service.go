package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/partner"
	"github.com/muebleria/backend/internal/domain/shared"
)

// CustomerService handles customer registration and lookup operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create registers a customer together with its address
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByNationalID(ctx, req.NationalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A customer with this national ID already exists")
	}

	address, err := partner.NewAddress(req.Address.Street, req.Address.Complement, req.Address.PostalCode)
	if err != nil {
		return nil, err
	}

	customer, err := partner.NewCustomer(req.FirstName, req.LastName, req.NationalID, req.Phone, req.Email, address.ID)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.SaveWithAddress(ctx, customer, address); err != nil {
		return nil, err
	}

	customer.Address = address
	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer with its address
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers, optionally filtered by a search term
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, error) {
	if filter.Search != "" {
		customers, err := s.customerRepo.Search(ctx, filter.Search)
		if err != nil {
			return nil, err
		}
		return ToCustomerResponses(customers), nil
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}
