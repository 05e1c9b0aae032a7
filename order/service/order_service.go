package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
	customerpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/customer"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	orderpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/order"
	productpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/product"
)

// orderService implements order.Service.
type orderService struct {
	repo      orderpkg.Repository
	customers customerpkg.Repository
	products  productpkg.Repository
}

// NewOrderService constructs an order.Service. Customer and product
// repositories are needed to resolve references before the write.
func NewOrderService(repo orderpkg.Repository, customers customerpkg.Repository, products productpkg.Repository) orderpkg.Service {
	return &orderService{repo: repo, customers: customers, products: products}
}

// CreateOrder resolves the customer and product references, derives the
// total from current product prices in exact decimal arithmetic, and
// persists the order with its associations atomically.
func (s *orderService) CreateOrder(ctx context.Context, req orderpkg.CreateOrderRequest) (*entity.Order, error) {
	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, apperr.New(apperr.CodeCustomerNotFound, "Invalid customer ID.")
		}
		return nil, apperr.Storage(err)
	}
	if len(req.ProductIDs) == 0 {
		return nil, apperr.New(apperr.CodeNoProductsSelected, "At least one product must be selected.")
	}
	products, err := s.products.GetByIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	// A count mismatch covers unknown ids and duplicates in the request;
	// a partially valid list is rejected wholesale.
	if len(products) != len(req.ProductIDs) {
		return nil, apperr.New(apperr.CodeInvalidProductReference, "One or more product IDs are invalid.")
	}

	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	orderDate := time.Now().UTC()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	o := &entity.Order{
		CustomerID:  req.CustomerID,
		Products:    products,
		OrderDate:   orderDate,
		TotalAmount: total,
	}
	created, err := s.repo.Store(ctx, o)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return s.repo.GetByID(ctx, created.ID)
}

func (s *orderService) ListOrders(ctx context.Context, f orderpkg.Filter) ([]entity.Order, error) {
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, err
		}
		return nil, apperr.Storage(err)
	}
	return o, nil
}
