package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
	customerpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/customer"
	customerrepo "github.com/Oluwafemi99/alx-backend-graphql-crm/customer/repository"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	orderpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/order"
	orderrepo "github.com/Oluwafemi99/alx-backend-graphql-crm/order/repository"
	productpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/product"
	productrepo "github.com/Oluwafemi99/alx-backend-graphql-crm/product/repository"
)

type fixture struct {
	svc       orderpkg.Service
	orders    orderpkg.Repository
	customers customerpkg.Repository
	products  productpkg.Repository
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entity.Customer{}, &entity.Product{}, &entity.Order{}))

	f := &fixture{
		orders:    orderrepo.NewGormOrderRepo(db),
		customers: customerrepo.NewGormCustomerRepo(db),
		products:  productrepo.NewGormProductRepo(db),
	}
	f.svc = NewOrderService(f.orders, f.customers, f.products)
	return f
}

func (f *fixture) customer(t *testing.T, name, email string) *entity.Customer {
	t.Helper()
	c, err := f.customers.Store(context.Background(), &entity.Customer{Name: name, Email: email})
	require.NoError(t, err)
	return c
}

func (f *fixture) product(t *testing.T, name, price string, stock int) *entity.Product {
	t.Helper()
	p, err := f.products.Store(context.Background(), &entity.Product{
		Name: name, Price: decimal.RequireFromString(price), Stock: stock,
	})
	require.NoError(t, err)
	return p
}

func TestCreateOrder_ExactDecimalTotal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	alice := f.customer(t, "Alice", "alice@example.com")
	laptop := f.product(t, "Laptop", "999.99", 10)
	mouse := f.product(t, "Mouse", "49.99", 50)

	ord, err := f.svc.CreateOrder(ctx, orderpkg.CreateOrderRequest{
		CustomerID: alice.ID,
		ProductIDs: []uuid.UUID{laptop.ID, mouse.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, ord)

	want := decimal.RequireFromString("1049.98")
	assert.True(t, ord.TotalAmount.Equal(want), "total %s, want %s", ord.TotalAmount, want)
	assert.Equal(t, alice.ID, ord.CustomerID)
	assert.Len(t, ord.Products, 2)
	assert.Equal(t, "alice@example.com", ord.Customer.Email)
}

func TestCreateOrder_CustomerNotFoundWritesNothing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	laptop := f.product(t, "Laptop", "999.99", 10)

	_, err := f.svc.CreateOrder(ctx, orderpkg.CreateOrderRequest{
		CustomerID: uuid.New(),
		ProductIDs: []uuid.UUID{laptop.ID},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeCustomerNotFound, apperr.CodeOf(err))
	assert.Equal(t, "Invalid customer ID.", err.Error())

	count, err := f.orders.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCreateOrder_NoProductsSelected(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	alice := f.customer(t, "Alice", "alice@example.com")

	_, err := f.svc.CreateOrder(ctx, orderpkg.CreateOrderRequest{CustomerID: alice.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNoProductsSelected, apperr.CodeOf(err))

	count, err := f.orders.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCreateOrder_UnknownProductRejectedWholesale(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	alice := f.customer(t, "Alice", "alice@example.com")
	laptop := f.product(t, "Laptop", "999.99", 10)

	_, err := f.svc.CreateOrder(ctx, orderpkg.CreateOrderRequest{
		CustomerID: alice.ID,
		ProductIDs: []uuid.UUID{laptop.ID, uuid.New()},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidProductReference, apperr.CodeOf(err))

	count, err := f.orders.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCreateOrder_DuplicateProductIDsRejected(t *testing.T) {
	f := setup(t)

	alice := f.customer(t, "Alice", "alice@example.com")
	laptop := f.product(t, "Laptop", "999.99", 10)

	// duplicates collapse on resolution, which must error, not dedupe
	_, err := f.svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
		CustomerID: alice.ID,
		ProductIDs: []uuid.UUID{laptop.ID, laptop.ID},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidProductReference, apperr.CodeOf(err))
}

func TestCreateOrder_OrderDateDefaultsToNow(t *testing.T) {
	f := setup(t)

	alice := f.customer(t, "Alice", "alice@example.com")
	laptop := f.product(t, "Laptop", "999.99", 10)

	before := time.Now().UTC().Add(-time.Minute)
	ord, err := f.svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
		CustomerID: alice.ID,
		ProductIDs: []uuid.UUID{laptop.ID},
	})
	require.NoError(t, err)
	after := time.Now().UTC().Add(time.Minute)

	assert.True(t, ord.OrderDate.After(before) && ord.OrderDate.Before(after),
		"order date %s outside [%s, %s]", ord.OrderDate, before, after)
}

func TestCreateOrder_SuppliedOrderDateKept(t *testing.T) {
	f := setup(t)

	alice := f.customer(t, "Alice", "alice@example.com")
	laptop := f.product(t, "Laptop", "999.99", 10)

	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ord, err := f.svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
		CustomerID: alice.ID,
		ProductIDs: []uuid.UUID{laptop.ID},
		OrderDate:  &when,
	})
	require.NoError(t, err)
	assert.True(t, ord.OrderDate.Equal(when), "order date %s", ord.OrderDate)
}

func seedOrders(t *testing.T, f *fixture) (alice, bob *entity.Customer, laptop, mouse *entity.Product) {
	t.Helper()
	ctx := context.Background()

	alice = f.customer(t, "Alice", "alice@example.com")
	bob = f.customer(t, "Bob", "bob@example.com")
	laptop = f.product(t, "Laptop", "999.99", 10)
	mouse = f.product(t, "Mouse", "49.99", 50)

	_, err := f.svc.CreateOrder(ctx, orderpkg.CreateOrderRequest{
		CustomerID: alice.ID, ProductIDs: []uuid.UUID{laptop.ID, mouse.ID},
	})
	require.NoError(t, err)
	_, err = f.svc.CreateOrder(ctx, orderpkg.CreateOrderRequest{
		CustomerID: bob.ID, ProductIDs: []uuid.UUID{mouse.ID},
	})
	require.NoError(t, err)
	return alice, bob, laptop, mouse
}

func TestListOrders_CustomerNameJoin(t *testing.T) {
	f := setup(t)
	seedOrders(t, f)

	list, err := f.svc.ListOrders(context.Background(), orderpkg.Filter{CustomerName: "ali"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Customer.Name)
}

func TestListOrders_ProductNameJoinIsDistinct(t *testing.T) {
	f := setup(t)
	alice, _, _, _ := seedOrders(t, f)

	// an order matching on two products must still appear once
	list, err := f.svc.ListOrders(context.Background(), orderpkg.Filter{ProductName: "o"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = f.svc.ListOrders(context.Background(), orderpkg.Filter{ProductName: "laptop"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alice.ID, list[0].CustomerID)
}

func TestListOrders_ProductIDExact(t *testing.T) {
	f := setup(t)
	_, _, laptop, mouse := seedOrders(t, f)

	list, err := f.svc.ListOrders(context.Background(), orderpkg.Filter{ProductID: &laptop.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.svc.ListOrders(context.Background(), orderpkg.Filter{ProductID: &mouse.ID})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListOrders_TotalAmountRange(t *testing.T) {
	f := setup(t)
	seedOrders(t, f)

	lo := decimal.RequireFromString("100.00")
	list, err := f.svc.ListOrders(context.Background(), orderpkg.Filter{TotalAmountGte: &lo})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].TotalAmount.Equal(decimal.RequireFromString("1049.98")))

	hi := decimal.RequireFromString("50.00")
	list, err = f.svc.ListOrders(context.Background(), orderpkg.Filter{TotalAmountLte: &hi})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].TotalAmount.Equal(decimal.RequireFromString("49.99")))
}

func TestListOrders_OrderByTotalDesc(t *testing.T) {
	f := setup(t)
	seedOrders(t, f)

	list, err := f.svc.ListOrders(context.Background(), orderpkg.Filter{OrderBy: []string{"-total_amount"}})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[1].TotalAmount.LessThanOrEqual(list[0].TotalAmount))
}

func TestListOrders_OrderDateRange(t *testing.T) {
	f := setup(t)

	alice := f.customer(t, "Alice", "alice@example.com")
	laptop := f.product(t, "Laptop", "999.99", 10)

	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, when := range []time.Time{old, recent} {
		w := when
		_, err := f.svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
			CustomerID: alice.ID, ProductIDs: []uuid.UUID{laptop.ID}, OrderDate: &w,
		})
		require.NoError(t, err)
	}

	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	list, err := f.svc.ListOrders(context.Background(), orderpkg.Filter{OrderDateGte: &cutoff})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].OrderDate.Equal(recent))
}

func TestListOrders_PreloadsRelations(t *testing.T) {
	f := setup(t)
	seedOrders(t, f)

	list, err := f.svc.ListOrders(context.Background(), orderpkg.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, o := range list {
		assert.NotEmpty(t, o.Customer.Email)
		assert.NotEmpty(t, o.Products)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	f := setup(t)

	_, err := f.svc.GetOrder(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestTotalRevenueAggregate(t *testing.T) {
	f := setup(t)
	seedOrders(t, f)

	revenue, err := f.orders.TotalRevenue(context.Background())
	require.NoError(t, err)
	want := decimal.RequireFromString("1099.97")
	assert.True(t, revenue.Equal(want), "revenue %s, want %s", revenue, want)
}
