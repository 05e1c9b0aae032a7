package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
)

// CreateOrderRequest carries the data required to create an order.
// OrderDate defaults to the current time when nil. The total is always
// derived from product prices; callers cannot supply it.
type CreateOrderRequest struct {
	CustomerID uuid.UUID
	ProductIDs []uuid.UUID
	OrderDate  *time.Time
}

// Service exposes order-related business operations.
type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)
	ListOrders(ctx context.Context, f Filter) ([]entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
