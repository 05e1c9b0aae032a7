package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
)

// Filter narrows ListOrders. Zero-valued criteria impose no constraint;
// all supplied criteria are ANDed together.
type Filter struct {
	// Inclusive total_amount bounds.
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	// Inclusive order_date bounds.
	OrderDateGte *time.Time
	OrderDateLte *time.Time
	// Case-insensitive substring match on the related customer's name.
	CustomerName string
	// Case-insensitive substring match on any associated product's name.
	ProductName string
	// Orders that include this exact product.
	ProductID *uuid.UUID
	// Sort keys applied left to right; "-" prefix for descending.
	// Supported: order_date, total_amount.
	OrderBy []string
}

// Repository specifies order related database operations.
type Repository interface {
	// Store persists the order and its product associations in one
	// transaction; an order is never visible without its products.
	Store(ctx context.Context, o *entity.Order) (*entity.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, f Filter) ([]entity.Order, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}
