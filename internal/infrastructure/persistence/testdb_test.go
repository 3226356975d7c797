package persistence

import (
	"testing"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an isolated in-memory database with the full schema
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&partner.Customer{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.StockSettings{},
		&trade.Order{},
		&trade.OrderPayment{},
		&trade.Sale{},
		&trade.SaleLineItem{},
		&trade.SalePayment{},
		&finance.ExpenseCategory{},
		&finance.Expense{},
	))

	return db
}
