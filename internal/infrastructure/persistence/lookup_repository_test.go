package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/partner"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLookupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Category{}, &catalog.Material{}, &catalog.Color{}, &partner.Seller{})
	require.NoError(t, err)

	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory(name, "")
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)
	return category
}

func TestGormCategoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("finds category by ID", func(t *testing.T) {
		db := setupLookupTestDB(t)
		repo := NewGormCategoryRepository(db)
		seeded := seedCategory(t, db, "Sillas")

		found, err := repo.FindByID(ctx, seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, "Sillas", found.Name)
	})

	t.Run("maps missing category to not found", func(t *testing.T) {
		db := setupLookupTestDB(t)
		repo := NewGormCategoryRepository(db)

		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists categories ordered by name", func(t *testing.T) {
		db := setupLookupTestDB(t)
		repo := NewGormCategoryRepository(db)
		seedCategory(t, db, "Mesas")
		seedCategory(t, db, "Camas")
		seedCategory(t, db, "Sillas")

		categories, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Camas", categories[0].Name)
		assert.Equal(t, "Mesas", categories[1].Name)
		assert.Equal(t, "Sillas", categories[2].Name)
	})
}

func TestGormMaterialRepository_FindAll(t *testing.T) {
	db := setupLookupTestDB(t)
	repo := NewGormMaterialRepository(db)

	for _, name := range []string{"Metal", "Madera"} {
		require.NoError(t, db.Create(&catalog.Material{
			BaseEntity: shared.NewBaseEntity(),
			Name:       name,
		}).Error)
	}

	materials, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, "Madera", materials[0].Name)
	assert.Equal(t, "Metal", materials[1].Name)
}

func TestGormSellerRepository(t *testing.T) {
	ctx := context.Background()

	newSeller := func(first, last string) *partner.Seller {
		return &partner.Seller{
			BaseEntity: shared.NewBaseEntity(),
			FirstName:  first,
			LastName:   last,
		}
	}

	t.Run("finds seller by ID", func(t *testing.T) {
		db := setupLookupTestDB(t)
		repo := NewGormSellerRepository(db)
		seller := newSeller("Maria", "Gonzalez")
		require.NoError(t, db.Create(seller).Error)

		found, err := repo.FindByID(ctx, seller.ID)

		require.NoError(t, err)
		assert.Equal(t, "Maria Gonzalez", found.FullName())
	})

	t.Run("maps missing seller to not found", func(t *testing.T) {
		db := setupLookupTestDB(t)
		repo := NewGormSellerRepository(db)

		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists sellers by last then first name", func(t *testing.T) {
		db := setupLookupTestDB(t)
		repo := NewGormSellerRepository(db)
		require.NoError(t, db.Create(newSeller("Pedro", "Rojas")).Error)
		require.NoError(t, db.Create(newSeller("Ana", "Diaz")).Error)
		require.NoError(t, db.Create(newSeller("Luis", "Diaz")).Error)

		sellers, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, sellers, 3)
		assert.Equal(t, "Ana", sellers[0].FirstName)
		assert.Equal(t, "Luis", sellers[1].FirstName)
		assert.Equal(t, "Rojas", sellers[2].LastName)
	})
}
