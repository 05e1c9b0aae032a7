package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/filters"
	orderpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/order"
)

var orderSortColumns = map[string]string{
	"order_date":   "order_date",
	"total_amount": "total_amount",
}

// GormOrderRepo implements order.Repository using GORM.
type GormOrderRepo struct {
	db *gorm.DB
}

func NewGormOrderRepo(db *gorm.DB) orderpkg.Repository {
	return &GormOrderRepo{db: db}
}

// Store creates the order row and its order_products rows. GORM runs the
// insert and the association writes inside a single transaction; Omit keeps
// it from touching the product rows themselves.
func (r *GormOrderRepo) Store(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := r.db.WithContext(ctx).Omit("Products.*").Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "Order not found.")
		}
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepo) List(ctx context.Context, f orderpkg.Filter) ([]entity.Order, error) {
	q := r.db.WithContext(ctx).Model(&entity.Order{}).
		Preload("Customer").
		Preload("Products")

	if f.TotalAmountGte != nil {
		q = q.Where("orders.total_amount >= ?", *f.TotalAmountGte)
	}
	if f.TotalAmountLte != nil {
		q = q.Where("orders.total_amount <= ?", *f.TotalAmountLte)
	}
	if f.OrderDateGte != nil {
		q = q.Where("orders.order_date >= ?", *f.OrderDateGte)
	}
	if f.OrderDateLte != nil {
		q = q.Where("orders.order_date <= ?", *f.OrderDateLte)
	}
	if f.CustomerName != "" {
		q = q.Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("LOWER(customers.name) LIKE ?", filters.Contains(f.CustomerName))
	}
	// The many-to-many joins can match several products per order, so the
	// result set is collapsed back to distinct orders below.
	joined := false
	if f.ProductName != "" {
		q = q.Joins("JOIN order_products op_name ON op_name.order_id = orders.id").
			Joins("JOIN products ON products.id = op_name.product_id").
			Where("LOWER(products.name) LIKE ?", filters.Contains(f.ProductName))
		joined = true
	}
	if f.ProductID != nil {
		q = q.Joins("JOIN order_products op_id ON op_id.order_id = orders.id").
			Where("op_id.product_id = ?", *f.ProductID)
		joined = true
	}
	if joined {
		q = q.Distinct("orders.*")
	}
	q = filters.ApplyOrdering(q, f.OrderBy, orderSortColumns)

	var out []entity.Order
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormOrderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&count).Error
	return count, err
}

// TotalRevenue sums total_amount across all orders. The summation happens
// in decimal space rather than SQL SUM so the result stays exact on every
// backend.
func (r *GormOrderRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&entity.Order{}).Pluck("total_amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}
