package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
	"github.com/muebleria/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockSaleRepository(t *testing.T) (*GormSaleRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormSaleRepository(gormDB), mock, mockDB
}

func inventoryRows(entries ...[2]interface{}) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "product_id", "stock"})
	now := time.Now()
	for _, e := range entries {
		rows.AddRow(uuid.New(), now, now, e[0], e[1])
	}
	return rows
}

func newTestSale(t *testing.T, productID uuid.UUID, quantity int, unitPrice float64) *trade.Sale {
	t.Helper()
	sale, err := trade.NewSale(uuid.New(), uuid.New())
	require.NoError(t, err)
	_, err = sale.AddLine(productID, quantity, valueobject.NewMoneyCLPFromFloat(unitPrice))
	require.NoError(t, err)
	return sale
}

func TestGormSaleRepository_CreateWithStockDeduction(t *testing.T) {
	t.Run("commits sale, lines and deduction together", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		sale := newTestSale(t, productID, 5, 100)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id IN \(\$1\) ORDER BY product_id ASC FOR UPDATE`).
			WithArgs(productID).
			WillReturnRows(inventoryRows([2]interface{}{productID, 5}))
		mock.ExpectExec(`INSERT INTO "sales"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "sale_lines"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "inventory_items" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithStockDeduction(context.Background(), sale,
			[]trade.StockedLine{{ProductID: productID, Quantity: 5}})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("locks and deducts every product", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		firstID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
		secondID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
		sale, err := trade.NewSale(uuid.New(), uuid.New())
		require.NoError(t, err)
		_, err = sale.AddLine(firstID, 1, valueobject.NewMoneyCLPFromFloat(100))
		require.NoError(t, err)
		_, err = sale.AddLine(secondID, 2, valueobject.NewMoneyCLPFromFloat(200))
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id IN \(\$1,\$2\) ORDER BY product_id ASC FOR UPDATE`).
			WithArgs(firstID, secondID).
			WillReturnRows(inventoryRows(
				[2]interface{}{firstID, 10},
				[2]interface{}{secondID, 10},
			))
		mock.ExpectExec(`INSERT INTO "sales"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "sale_lines"`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`UPDATE "inventory_items" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "inventory_items" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.CreateWithStockDeduction(context.Background(), sale,
			[]trade.StockedLine{
				{ProductID: firstID, Quantity: 1},
				{ProductID: secondID, Quantity: 2},
			})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when stock is insufficient", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		sale := newTestSale(t, productID, 6, 100)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id IN \(\$1\) ORDER BY product_id ASC FOR UPDATE`).
			WithArgs(productID).
			WillReturnRows(inventoryRows([2]interface{}{productID, 5}))
		mock.ExpectRollback()

		err := repo.CreateWithStockDeduction(context.Background(), sale,
			[]trade.StockedLine{{ProductID: productID, Quantity: 6}})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when no inventory row exists", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		sale := newTestSale(t, productID, 1, 100)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id IN \(\$1\) ORDER BY product_id ASC FOR UPDATE`).
			WithArgs(productID).
			WillReturnRows(inventoryRows())
		mock.ExpectRollback()

		err := repo.CreateWithStockDeduction(context.Background(), sale,
			[]trade.StockedLine{{ProductID: productID, Quantity: 1}})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the sale insert fails", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		sale := newTestSale(t, productID, 2, 100)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id IN \(\$1\) ORDER BY product_id ASC FOR UPDATE`).
			WithArgs(productID).
			WillReturnRows(inventoryRows([2]interface{}{productID, 5}))
		mock.ExpectExec(`INSERT INTO "sales"`).
			WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		err := repo.CreateWithStockDeduction(context.Background(), sale,
			[]trade.StockedLine{{ProductID: productID, Quantity: 2}})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the deduction touches no row", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		sale := newTestSale(t, productID, 2, 100)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id IN \(\$1\) ORDER BY product_id ASC FOR UPDATE`).
			WithArgs(productID).
			WillReturnRows(inventoryRows([2]interface{}{productID, 5}))
		mock.ExpectExec(`INSERT INTO "sales"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "sale_lines"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "inventory_items" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CreateWithStockDeduction(context.Background(), sale,
			[]trade.StockedLine{{ProductID: productID, Quantity: 2}})

		assert.ErrorIs(t, err, shared.ErrPersistence)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an empty deduction list without opening a transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		sale := newTestSale(t, uuid.New(), 1, 100)

		err := repo.CreateWithStockDeduction(context.Background(), sale, nil)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSaleRepository_FindByID(t *testing.T) {
	t.Run("returns sale with lines preloaded", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		saleID := uuid.New()
		sellerID := uuid.New()
		customerID := uuid.New()
		now := time.Now()

		saleRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "seller_id", "customer_id", "sold_at", "total_price"}).
			AddRow(saleID, now, now, sellerID, customerID, now, "500.00")
		mock.ExpectQuery(`SELECT \* FROM "sales" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(saleID, 1).
			WillReturnRows(saleRows)

		lineRows := sqlmock.NewRows([]string{"id", "sale_id", "product_id", "quantity", "unit_price", "created_at"}).
			AddRow(uuid.New(), saleID, uuid.New(), 5, "100.00", now)
		mock.ExpectQuery(`SELECT \* FROM "sale_lines" WHERE "sale_lines"\."sale_id" = \$1`).
			WithArgs(saleID).
			WillReturnRows(lineRows)

		sale, err := repo.FindByID(context.Background(), saleID)

		require.NoError(t, err)
		assert.Equal(t, saleID, sale.ID)
		require.Len(t, sale.Lines, 1)
		assert.Equal(t, 5, sale.Lines[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing sale to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		saleID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "sales" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(saleID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByID(context.Background(), saleID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSaleRepository_Stats(t *testing.T) {
	repo, mock, mockDB := newMockSaleRepository(t)
	defer mockDB.Close()

	since := time.Now().AddDate(0, 0, -30)

	statsRows := sqlmock.NewRows([]string{"total_sales", "total_revenue", "average_sale"}).
		AddRow(3, 900.0, 300.0)
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_sales, COALESCE\(SUM\(total_price\), 0\) AS total_revenue, COALESCE\(AVG\(total_price\), 0\) AS average_sale FROM "sales" WHERE sold_at >= \$1`).
		WithArgs(since).
		WillReturnRows(statsRows)

	unitsRows := sqlmock.NewRows([]string{"coalesce"}).AddRow(7)
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(sale_lines\.quantity\), 0\) FROM "sale_lines" JOIN sales ON sales\.id = sale_lines\.sale_id WHERE sales\.sold_at >= \$1`).
		WithArgs(since).
		WillReturnRows(unitsRows)

	stats, err := repo.Stats(context.Background(), since)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalSales)
	assert.Equal(t, float64(900), stats.TotalRevenue)
	assert.Equal(t, int64(7), stats.UnitsSold)
	assert.NoError(t, mock.ExpectationsWereMet())
}
