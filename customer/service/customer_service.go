package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
	customerpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/customer"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/validation"
)

// customerService implements customer.Service.
type customerService struct {
	repo customerpkg.Repository
}

// NewCustomerService constructs a customer.Service backed by the provided repository.
func NewCustomerService(repo customerpkg.Repository) customerpkg.Service {
	return &customerService{repo: repo}
}

// CreateCustomer validates and persists a single customer. Validation and
// uniqueness failures come back as *apperr.Error; nothing is written on
// failure.
func (s *customerService) CreateCustomer(ctx context.Context, req customerpkg.CreateCustomerRequest) (*entity.Customer, error) {
	if verr := validation.Customer(req.Name, req.Email, req.Phone); verr != nil {
		return nil, verr
	}
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if exists {
		return nil, apperr.New(apperr.CodeDuplicateEmail, "Email already exists.")
	}
	c := &entity.Customer{Name: req.Name, Email: req.Email, Phone: normalizePhone(req.Phone)}
	created, err := s.repo.Store(ctx, c)
	if err != nil {
		// The unique index on email is the backstop for creates racing
		// past the check above; those surface here as storage failures.
		return nil, apperr.Storage(err)
	}
	return created, nil
}

// BulkCreateCustomers processes records in input order inside one database
// transaction. A failing record is reported with its 1-based position and
// skipped; the batch still commits with whatever succeeded. Only a storage
// failure rolls back and fails the whole batch.
func (s *customerService) BulkCreateCustomers(ctx context.Context, reqs []customerpkg.CreateCustomerRequest) (*customerpkg.BulkCreateResult, error) {
	res := &customerpkg.BulkCreateResult{
		Created: []entity.Customer{},
		Errors:  []string{},
	}
	err := s.repo.Transaction(ctx, func(tx customerpkg.Repository) error {
		for i, req := range reqs {
			pos := i + 1
			if verr := validation.Customer(req.Name, req.Email, req.Phone); verr != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Record %d: %s", pos, verr.Message))
				continue
			}
			// tx sees rows written earlier in this same batch, so
			// in-batch duplicates are caught here too.
			exists, err := tx.EmailExists(ctx, req.Email)
			if err != nil {
				return err
			}
			if exists {
				res.Errors = append(res.Errors, fmt.Sprintf("Record %d: Email already exists.", pos))
				continue
			}
			c := &entity.Customer{Name: req.Name, Email: req.Email, Phone: normalizePhone(req.Phone)}
			created, err := tx.Store(ctx, c)
			if err != nil {
				return err
			}
			res.Created = append(res.Created, *created)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return res, nil
}

func (s *customerService) ListCustomers(ctx context.Context, f customerpkg.Filter) ([]entity.Customer, error) {
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, err
		}
		return nil, apperr.Storage(err)
	}
	return c, nil
}

func normalizePhone(phone *string) *string {
	if phone == nil || *phone == "" {
		return nil
	}
	return phone
}
