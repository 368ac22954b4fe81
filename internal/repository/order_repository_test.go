// internal/repository/order_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
)

func newOrder(id, userID string) *models.Order {
	return &models.Order{
		ID:        id,
		UserID:    userID,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func TestOrderRepository_OwnerIndexRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewOrderRepository(store)

	order := newOrder("o1", "u1")
	require.NoError(t, repo.Save(ctx, order))
	require.NoError(t, repo.SaveOwnerIndex(ctx, "u1", "o1"))

	orders, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)

	// Another user sees nothing, even with a matching order id suffix.
	orders, err = repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_OwnerIndexIdempotentPerOrder(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewOrderRepository(store)

	require.NoError(t, repo.Save(ctx, newOrder("o1", "u1")))
	require.NoError(t, repo.SaveOwnerIndex(ctx, "u1", "o1"))
	require.NoError(t, repo.SaveOwnerIndex(ctx, "u1", "o1"))

	orders, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderRepository_ListByUserSkipsDanglingIndexEntries(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewOrderRepository(store)

	// Index entry written, order record missing: the shape left behind by
	// an interrupted order creation.
	require.NoError(t, repo.SaveOwnerIndex(ctx, "u1", "ghost"))

	require.NoError(t, repo.Save(ctx, newOrder("o1", "u1")))
	require.NoError(t, repo.SaveOwnerIndex(ctx, "u1", "o1"))

	orders, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}

func TestOrderRepository_ListAllSkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewOrderRepository(store)

	require.NoError(t, repo.Save(ctx, newOrder("o1", "u1")))
	require.NoError(t, store.Put(ctx, "order:broken", []byte("{not json")))

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}

func TestCartRepository_FindReturnsEmptyCartForNewUser(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewCartRepository(store)

	cart, err := repo.Find(ctx, "fresh-user")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
