package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	productpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/product"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/product/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entity.Customer{}, &entity.Product{}, &entity.Order{}))
	return db
}

func newService(t *testing.T) productpkg.Service {
	return NewProductService(repository.NewGormProductRepo(setupDB(t)))
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func mustCreate(t *testing.T, svc productpkg.Service, name, price string, stock int) *entity.Product {
	t.Helper()
	p, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{
		Name: name, Price: dec(t, price), Stock: stock,
	})
	require.NoError(t, err)
	return p
}

func TestCreateProduct_Success(t *testing.T) {
	svc := newService(t)

	p := mustCreate(t, svc, "Laptop", "999.99", 10)
	assert.True(t, p.Price.Equal(dec(t, "999.99")), "price %s", p.Price)
	assert.Equal(t, 10, p.Stock)

	got, err := svc.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(dec(t, "999.99")), "round-tripped price %s", got.Price)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{
		Name: "Broken", Price: dec(t, "-1.00"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidNumericField, apperr.CodeOf(err))
	assert.Equal(t, "Price must be non-negative.", err.Error())

	list, err := svc.ListProducts(context.Background(), productpkg.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateProduct_NegativeStock(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{
		Name: "Broken", Price: dec(t, "1.00"), Stock: -5,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidNumericField, apperr.CodeOf(err))
	assert.Equal(t, "Stock must be non-negative.", err.Error())
}

func TestListProducts_LowStock(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	mustCreate(t, svc, "Laptop", "999.99", 10)
	mustCreate(t, svc, "Mouse", "49.99", 9)
	mustCreate(t, svc, "Cable", "5.00", 0)
	mustCreate(t, svc, "Monitor", "199.99", 50)

	list, err := svc.ListProducts(ctx, productpkg.Filter{LowStock: true})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, p := range list {
		assert.Less(t, p.Stock, productpkg.LowStockThreshold, "product %s", p.Name)
	}

	// low_stock=false imposes no constraint
	list, err = svc.ListProducts(ctx, productpkg.Filter{LowStock: false})
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestListProducts_OrderByPriceDesc(t *testing.T) {
	svc := newService(t)

	mustCreate(t, svc, "Mouse", "49.99", 9)
	mustCreate(t, svc, "Laptop", "999.99", 10)
	mustCreate(t, svc, "Cable", "5.00", 0)

	list, err := svc.ListProducts(context.Background(), productpkg.Filter{OrderBy: []string{"-price"}})
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i].Price.LessThanOrEqual(list[i-1].Price),
			"prices not non-increasing at %d: %s > %s", i, list[i].Price, list[i-1].Price)
	}
}

func TestListProducts_PriceAndStockRanges(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	mustCreate(t, svc, "Mouse", "49.99", 9)
	mustCreate(t, svc, "Laptop", "999.99", 10)
	mustCreate(t, svc, "Cable", "5.00", 0)

	lo, hi := dec(t, "10.00"), dec(t, "100.00")
	list, err := svc.ListProducts(ctx, productpkg.Filter{PriceGte: &lo, PriceLte: &hi})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mouse", list[0].Name)

	// one-sided bound constrains only that side
	list, err = svc.ListProducts(ctx, productpkg.Filter{PriceGte: &lo})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	min := 1
	list, err = svc.ListProducts(ctx, productpkg.Filter{StockGte: &min})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListProducts_ZeroCriteriaInsertionOrder(t *testing.T) {
	svc := newService(t)

	names := []string{"Zeta", "Alpha", "Mid"}
	for _, n := range names {
		mustCreate(t, svc, n, "1.00", 1)
	}

	list, err := svc.ListProducts(context.Background(), productpkg.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, n := range names {
		assert.Equal(t, n, list[i].Name)
	}
}

func TestListProducts_UnknownSortKeyIgnored(t *testing.T) {
	svc := newService(t)

	mustCreate(t, svc, "B", "2.00", 1)
	mustCreate(t, svc, "A", "1.00", 1)

	list, err := svc.ListProducts(context.Background(), productpkg.Filter{OrderBy: []string{"bogus", "name"}})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}
