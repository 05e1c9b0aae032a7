package customer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
)

// Filter narrows ListCustomers. Zero-valued criteria impose no constraint;
// all supplied criteria are ANDed together.
type Filter struct {
	// Case-insensitive substring matches.
	Name  string
	Email string
	// Inclusive creation-time bounds.
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
	// Prefix match on phone, e.g. "+1".
	PhonePattern string
	// Sort keys applied left to right; "-" prefix for descending.
	// Supported: name, email, created_at.
	OrderBy []string
}

// Repository specifies customer related database operations.
type Repository interface {
	Store(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	List(ctx context.Context, f Filter) ([]entity.Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
	// Transaction runs fn against a repository bound to one database
	// transaction; returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(Repository) error) error
}
