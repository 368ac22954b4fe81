// internal/services/suite_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
	"github.com/shopstack/storefront-backend/internal/repository"
)

// testEnv wires every service over a fresh in-memory store.
type testEnv struct {
	store    *kvstore.MemoryStore
	products *repository.ProductRepository
	carts    *repository.CartRepository
	orders   *repository.OrderRepository
	payments *repository.PaymentRepository
	users    *repository.UserRepository

	catalog *CatalogService
	cart    *CartService
	order   *OrderService
	payment *PaymentService
	admin   *AdminService
	user    *UserService
}

func newTestEnv() *testEnv {
	store := kvstore.NewMemoryStore()

	products := repository.NewProductRepository(store)
	categories := repository.NewCategoryRepository(store)
	carts := repository.NewCartRepository(store)
	orders := repository.NewOrderRepository(store)
	payments := repository.NewPaymentRepository(store)
	users := repository.NewUserRepository(store)

	catalog := NewCatalogService(products, categories)

	return &testEnv{
		store:    store,
		products: products,
		carts:    carts,
		orders:   orders,
		payments: payments,
		users:    users,
		catalog:  catalog,
		cart:     NewCartService(carts, products),
		order:    NewOrderService(orders, carts, products),
		payment:  NewPaymentService(payments, orders, &SimulatedGateway{}),
		admin:    NewAdminService(users, orders, products, catalog),
		user:     NewUserService(users),
	}
}

func (e *testEnv) mustCreateProduct(t *testing.T, name string, price float64, stock int) *models.Product {
	t.Helper()
	product, err := e.catalog.CreateProduct(context.Background(), &CreateProductRequest{
		Name:  name,
		Price: price,
		Stock: stock,
	})
	require.NoError(t, err)
	return product
}
