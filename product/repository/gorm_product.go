package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/filters"
	productpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/product"
)

var productSortColumns = map[string]string{
	"price": "price",
	"stock": "stock",
	"name":  "name",
}

// GormProductRepo implements product.Repository using GORM.
type GormProductRepo struct {
	db *gorm.DB
}

func NewGormProductRepo(db *gorm.DB) productpkg.Repository {
	return &GormProductRepo{db: db}
}

func (r *GormProductRepo) Store(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "Product not found.")
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var out []entity.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormProductRepo) List(ctx context.Context, f productpkg.Filter) ([]entity.Product, error) {
	q := r.db.WithContext(ctx).Model(&entity.Product{})
	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", filters.Contains(f.Name))
	}
	if f.PriceGte != nil {
		q = q.Where("price >= ?", *f.PriceGte)
	}
	if f.PriceLte != nil {
		q = q.Where("price <= ?", *f.PriceLte)
	}
	if f.StockGte != nil {
		q = q.Where("stock >= ?", *f.StockGte)
	}
	if f.StockLte != nil {
		q = q.Where("stock <= ?", *f.StockLte)
	}
	if f.LowStock {
		q = q.Where("stock < ?", productpkg.LowStockThreshold)
	}
	q = filters.ApplyOrdering(q, f.OrderBy, productSortColumns)

	var out []entity.Product
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
