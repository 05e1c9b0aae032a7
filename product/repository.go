package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
)

// LowStockThreshold is the exclusive stock bound for the low_stock filter.
const LowStockThreshold = 10

// Filter narrows ListProducts. Zero-valued criteria impose no constraint;
// all supplied criteria are ANDed together.
type Filter struct {
	// Case-insensitive substring match.
	Name string
	// Inclusive price bounds.
	PriceGte *decimal.Decimal
	PriceLte *decimal.Decimal
	// Inclusive stock bounds.
	StockGte *int
	StockLte *int
	// LowStock restricts to stock strictly below LowStockThreshold.
	LowStock bool
	// Sort keys applied left to right; "-" prefix for descending.
	// Supported: price, stock, name.
	OrderBy []string
}

// Repository specifies product related database operations.
type Repository interface {
	Store(ctx context.Context, p *entity.Product) (*entity.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs returns the products whose ids appear in ids. Duplicate or
	// unknown ids simply resolve to fewer rows; callers compare counts.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	List(ctx context.Context, f Filter) ([]entity.Product, error)
}
