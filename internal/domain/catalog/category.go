package catalog

import (
	"github.com/muebleria/backend/internal/domain/shared"
)

// Category represents a furniture type (chairs, tables, wardrobes, ...)
type Category struct {
	shared.BaseEntity
	Name     string `gorm:"size:100;not null;uniqueIndex"`
	ImageURL string `gorm:"size:500"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new furniture category
func NewCategory(name, imageURL string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		ImageURL:   imageURL,
	}, nil
}

// Material represents a furniture material (wood, metal, ...)
type Material struct {
	shared.BaseEntity
	Name string `gorm:"size:100;not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Material) TableName() string {
	return "materials"
}

// Color represents a furniture finish color
type Color struct {
	shared.BaseEntity
	Name string `gorm:"size:100;not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Color) TableName() string {
	return "colors"
}
