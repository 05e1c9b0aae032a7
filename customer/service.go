package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
)

// CreateCustomerRequest carries the data required to create a customer.
// Phone is optional; an empty string is treated as absent.
type CreateCustomerRequest struct {
	Name  string
	Email string
	Phone *string
}

// BulkCreateResult always carries both lists, even when one is empty.
// Errors entries reference the failing record's 1-based position.
type BulkCreateResult struct {
	Created []entity.Customer
	Errors  []string
}

// Service exposes customer-related business operations.
type Service interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*entity.Customer, error)
	BulkCreateCustomers(ctx context.Context, reqs []CreateCustomerRequest) (*BulkCreateResult, error)
	ListCustomers(ctx context.Context, f Filter) ([]entity.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}
