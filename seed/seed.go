// Package seed loads the demo dataset through the regular services so the
// same validation and aggregation paths run as in production traffic.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	customerpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/customer"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/logger"
	orderpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/order"
	productpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/product"
)

func strptr(s string) *string { return &s }

// Run seeds demo customers, products and one order. It is a no-op when
// customers already exist, so restarts do not duplicate data.
func Run(ctx context.Context, customers customerpkg.Service, products productpkg.Service, orders orderpkg.Service, log *logger.Logger) error {
	existing, err := customers.ListCustomers(ctx, customerpkg.Filter{})
	if err != nil {
		return fmt.Errorf("seed: list customers: %w", err)
	}
	if len(existing) > 0 {
		log.Infow("seed skipped, customers already present", "count", len(existing))
		return nil
	}

	alice, err := customers.CreateCustomer(ctx, customerpkg.CreateCustomerRequest{
		Name: "Alice", Email: "alice@example.com", Phone: strptr("+1234567890"),
	})
	if err != nil {
		return fmt.Errorf("seed: create alice: %w", err)
	}
	if _, err := customers.CreateCustomer(ctx, customerpkg.CreateCustomerRequest{
		Name: "Bob", Email: "bob@example.com", Phone: strptr("123-456-7890"),
	}); err != nil {
		return fmt.Errorf("seed: create bob: %w", err)
	}
	if _, err := customers.CreateCustomer(ctx, customerpkg.CreateCustomerRequest{
		Name: "Carol", Email: "carol@example.com",
	}); err != nil {
		return fmt.Errorf("seed: create carol: %w", err)
	}

	laptop, err := products.CreateProduct(ctx, productpkg.CreateProductRequest{
		Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 10,
	})
	if err != nil {
		return fmt.Errorf("seed: create laptop: %w", err)
	}
	mouse, err := products.CreateProduct(ctx, productpkg.CreateProductRequest{
		Name: "Mouse", Price: decimal.RequireFromString("49.99"), Stock: 50,
	})
	if err != nil {
		return fmt.Errorf("seed: create mouse: %w", err)
	}

	ord, err := orders.CreateOrder(ctx, orderpkg.CreateOrderRequest{
		CustomerID: alice.ID,
		ProductIDs: []uuid.UUID{laptop.ID, mouse.ID},
	})
	if err != nil {
		return fmt.Errorf("seed: create order: %w", err)
	}

	log.Infow("database seeded",
		"customers", 3,
		"products", 2,
		"orders", 1,
		"order_total", ord.TotalAmount.StringFixed(2),
	)
	return nil
}
