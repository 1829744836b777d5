package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/partner"
	"github.com/muebleria/backend/internal/domain/shared"
)

// SupplierService handles supplier registration and lookup operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	categoryRepo catalog.CategoryRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, categoryRepo catalog.CategoryRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
	}
}

// Create registers a supplier company with its address, contact and supplied
// categories in one transaction
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	for _, categoryID := range req.CategoryIDs {
		if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("NOT_FOUND", "Category not found: "+categoryID.String())
			}
			return nil, err
		}
	}

	address, err := partner.NewAddress(req.Address.Street, req.Address.Complement, req.Address.PostalCode)
	if err != nil {
		return nil, err
	}
	contactAddress, err := partner.NewAddress(req.Contact.Address.Street, req.Contact.Address.Complement, req.Contact.Address.PostalCode)
	if err != nil {
		return nil, err
	}
	contact, err := partner.NewSupplierContact(req.Contact.FirstName, req.Contact.LastName, req.Contact.Phone, req.Contact.Email, contactAddress.ID)
	if err != nil {
		return nil, err
	}
	supplier, err := partner.NewSupplier(req.CompanyName, address.ID, contact.ID, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.SaveGraph(ctx, supplier, address, contact, contactAddress); err != nil {
		return nil, err
	}

	supplier.Address = address
	contact.Address = contactAddress
	supplier.Contact = contact
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier with its associations
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers, optionally filtered by a search term
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) ([]SupplierResponse, error) {
	if filter.Search != "" {
		suppliers, err := s.supplierRepo.Search(ctx, filter.Search)
		if err != nil {
			return nil, err
		}
		return ToSupplierResponses(suppliers), nil
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	suppliers, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponses(suppliers), nil
}
