// internal/repository/order_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
)

// OrderRepository stores orders under order:<orderId> plus a secondary
// owner-index entry order-user:<userId>:<orderId> so per-user listings
// avoid scanning every order.
type OrderRepository struct {
	store kvstore.Store
}

func NewOrderRepository(store kvstore.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	return putJSON(ctx, r.store, orderKeyPrefix+order.ID, order)
}

func (r *OrderRepository) Find(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := getJSON(ctx, r.store, orderKeyPrefix+id, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SaveOwnerIndex records the owner-index entry for an order. The key is
// derived from the order id, so retrying a partially failed order
// creation overwrites the same entry instead of appending a duplicate.
func (r *OrderRepository) SaveOwnerIndex(ctx context.Context, userID, orderID string) error {
	return r.store.Put(ctx, orderUserKeyPrefix+userID+":"+orderID, []byte(orderID))
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	entries, err := r.store.ScanPrefix(ctx, orderKeyPrefix)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(entries))
	for key, data := range entries {
		var order models.Order
		if err := json.Unmarshal(data, &order); err != nil {
			logrus.WithField("key", key).WithError(err).Warn("Skipping malformed order record")
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// ListByUser resolves orders through the owner index. Index entries whose
// order record is missing (interrupted creation) are skipped.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	entries, err := r.store.ScanPrefix(ctx, orderUserKeyPrefix+userID+":")
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(entries))
	for _, orderID := range entries {
		order, err := r.Find(ctx, string(orderID))
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}
