package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	productpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/product"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/validation"
)

// productService implements product.Service.
type productService struct {
	repo productpkg.Repository
}

// NewProductService constructs a product.Service backed by the provided repository.
func NewProductService(repo productpkg.Repository) productpkg.Service {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, req productpkg.CreateProductRequest) (*entity.Product, error) {
	if verr := validation.Product(req.Price, req.Stock); verr != nil {
		return nil, verr
	}
	p := &entity.Product{Name: req.Name, Price: req.Price, Stock: req.Stock}
	created, err := s.repo.Store(ctx, p)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return created, nil
}

func (s *productService) ListProducts(ctx context.Context, f productpkg.Filter) ([]entity.Product, error) {
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, err
		}
		return nil, apperr.Storage(err)
	}
	return p, nil
}
