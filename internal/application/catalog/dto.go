package catalog

import (
	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to register a furniture product.
// Dimensions are in centimeters.
type CreateProductRequest struct {
	Name         string    `json:"name" binding:"required,min=1,max=200"`
	Height       float64   `json:"height" binding:"gte=0"`
	Width        float64   `json:"width" binding:"gte=0"`
	Depth        float64   `json:"depth" binding:"gte=0"`
	Diagonal     float64   `json:"diagonal" binding:"gte=0"`
	NetPrice     float64   `json:"net_price" binding:"required,gt=0"`
	CategoryID   uuid.UUID `json:"category_id" binding:"required"`
	MaterialID   uuid.UUID `json:"material_id" binding:"required"`
	ColorID      uuid.UUID `json:"color_id" binding:"required"`
	InitialStock int       `json:"initial_stock" binding:"gte=0"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Height   float64   `json:"height"`
	Width    float64   `json:"width"`
	Depth    float64   `json:"depth"`
	Diagonal float64   `json:"diagonal"`
	NetPrice float64   `json:"net_price"`
	Category string    `json:"category,omitempty"`
	Material string    `json:"material,omitempty"`
	Color    string    `json:"color,omitempty"`
}

// LookupResponse represents a lookup entry (category, material, color)
type LookupResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CategoryResponse represents a category with its image
type CategoryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
}

// ToProductResponse converts a product to its response representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Height:   p.Height.InexactFloat64(),
		Width:    p.Width.InexactFloat64(),
		Depth:    p.Depth.InexactFloat64(),
		Diagonal: p.Diagonal.InexactFloat64(),
		NetPrice: p.NetPrice.InexactFloat64(),
	}
	if p.Category != nil {
		resp.Category = p.Category.Name
	}
	if p.Material != nil {
		resp.Material = p.Material.Name
	}
	if p.Color != nil {
		resp.Color = p.Color.Name
	}
	return resp
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}

// ToCategoryResponses converts categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, CategoryResponse{ID: c.ID, Name: c.Name, ImageURL: c.ImageURL})
	}
	return responses
}

// ToMaterialResponses converts materials
func ToMaterialResponses(materials []catalog.Material) []LookupResponse {
	responses := make([]LookupResponse, 0, len(materials))
	for _, m := range materials {
		responses = append(responses, LookupResponse{ID: m.ID, Name: m.Name})
	}
	return responses
}

// ToColorResponses converts colors
func ToColorResponses(colors []catalog.Color) []LookupResponse {
	responses := make([]LookupResponse, 0, len(colors))
	for _, c := range colors {
		responses = append(responses, LookupResponse{ID: c.ID, Name: c.Name})
	}
	return responses
}
