package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
	customerpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/customer"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/filters"
)

var customerSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

// GormCustomerRepo implements customer.Repository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.Repository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) Store(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "Customer not found.")
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) List(ctx context.Context, f customerpkg.Filter) ([]entity.Customer, error) {
	q := r.db.WithContext(ctx).Model(&entity.Customer{})
	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", filters.Contains(f.Name))
	}
	if f.Email != "" {
		q = q.Where("LOWER(email) LIKE ?", filters.Contains(f.Email))
	}
	if f.CreatedAtGte != nil {
		q = q.Where("created_at >= ?", *f.CreatedAtGte)
	}
	if f.CreatedAtLte != nil {
		q = q.Where("created_at <= ?", *f.CreatedAtLte)
	}
	if f.PhonePattern != "" {
		q = q.Where("phone LIKE ?", filters.Prefix(f.PhonePattern))
	}
	q = filters.ApplyOrdering(q, f.OrderBy, customerSortColumns)

	var out []entity.Customer
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormCustomerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

func (r *GormCustomerRepo) Transaction(ctx context.Context, fn func(customerpkg.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormCustomerRepo{db: tx})
	})
}
