package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/partner"
)

// AddressInput represents an address in create requests
type AddressInput struct {
	Street     string `json:"street" binding:"required,min=1,max=300"`
	Complement string `json:"complement" binding:"max=200"`
	PostalCode string `json:"postal_code" binding:"max=20"`
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	Street     string `json:"street"`
	Complement string `json:"complement"`
	PostalCode string `json:"postal_code"`
}

// CreateCustomerRequest represents a request to register a customer
type CreateCustomerRequest struct {
	FirstName  string       `json:"first_name" binding:"required,min=1,max=100"`
	LastName   string       `json:"last_name" binding:"required,min=1,max=100"`
	NationalID string       `json:"national_id" binding:"required,min=1,max=20"`
	Phone      string       `json:"phone" binding:"max=30"`
	Email      string       `json:"email" binding:"omitempty,email,max=200"`
	Address    AddressInput `json:"address" binding:"required"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID           uuid.UUID        `json:"id"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	NationalID   string           `json:"national_id"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	RegisteredAt time.Time        `json:"registered_at"`
	Address      *AddressResponse `json:"address,omitempty"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// SellerResponse represents a seller in API responses
type SellerResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// ContactInput represents the supplier contact in create requests
type ContactInput struct {
	FirstName string       `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string       `json:"last_name" binding:"required,min=1,max=100"`
	Phone     string       `json:"phone" binding:"max=30"`
	Email     string       `json:"email" binding:"omitempty,email,max=200"`
	Address   AddressInput `json:"address" binding:"required"`
}

// CreateSupplierRequest represents a request to register a supplier company
type CreateSupplierRequest struct {
	CompanyName string       `json:"company_name" binding:"required,min=1,max=200"`
	Address     AddressInput `json:"address" binding:"required"`
	Contact     ContactInput `json:"contact" binding:"required"`
	CategoryIDs []uuid.UUID  `json:"category_ids" binding:"required,min=1"`
}

// ContactResponse represents the supplier contact in API responses
type ContactResponse struct {
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email"`
	Address   *AddressResponse `json:"address,omitempty"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          uuid.UUID        `json:"id"`
	CompanyName string           `json:"company_name"`
	Address     *AddressResponse `json:"address,omitempty"`
	Contact     *ContactResponse `json:"contact,omitempty"`
	CategoryIDs []uuid.UUID      `json:"category_ids"`
}

// SupplierListFilter represents filter options for the supplier list
type SupplierListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

func toAddressResponse(a *partner.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		Street:     a.Street,
		Complement: a.Complement,
		PostalCode: a.PostalCode,
	}
}

// ToCustomerResponse converts a customer to its response representation
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		NationalID:   c.NationalID,
		Phone:        c.Phone,
		Email:        c.Email,
		RegisteredAt: c.RegisteredAt,
		Address:      toAddressResponse(c.Address),
	}
}

// ToCustomerResponses converts a slice of customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}
	return responses
}

// ToSellerResponses converts a slice of sellers
func ToSellerResponses(sellers []partner.Seller) []SellerResponse {
	responses := make([]SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		responses = append(responses, SellerResponse{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Email:     s.Email,
		})
	}
	return responses
}

// ToSupplierResponse converts a supplier to its response representation
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	resp := SupplierResponse{
		ID:          s.ID,
		CompanyName: s.CompanyName,
		Address:     toAddressResponse(s.Address),
		CategoryIDs: make([]uuid.UUID, 0, len(s.Categories)),
	}
	if s.Contact != nil {
		resp.Contact = &ContactResponse{
			FirstName: s.Contact.FirstName,
			LastName:  s.Contact.LastName,
			Phone:     s.Contact.Phone,
			Email:     s.Contact.Email,
			Address:   toAddressResponse(s.Contact.Address),
		}
	}
	for _, link := range s.Categories {
		resp.CategoryIDs = append(resp.CategoryIDs, link.CategoryID)
	}
	return resp
}

// ToSupplierResponses converts a slice of suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, ToSupplierResponse(&suppliers[i]))
	}
	return responses
}
