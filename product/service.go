package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
)

// CreateProductRequest carries the data required to create a product.
// Stock defaults to zero when the caller omits it.
type CreateProductRequest struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// Service exposes product-related business operations.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*entity.Product, error)
	ListProducts(ctx context.Context, f Filter) ([]entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
