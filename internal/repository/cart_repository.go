// internal/repository/cart_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
)

// CartRepository stores one cart per user under cart:<userId>. Cart
// mutations are read-modify-write on a single key with no concurrency
// control: concurrent writers from the same user (multiple devices) race
// and the last write wins. This relaxed model is intentional.
type CartRepository struct {
	store kvstore.Store
}

func NewCartRepository(store kvstore.Store) *CartRepository {
	return &CartRepository{store: store}
}

// Find returns the user's cart, or an empty cart if none was ever
// written. Carts are created lazily on first add.
func (r *CartRepository) Find(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := getJSON(ctx, r.store, cartKeyPrefix+userID, &cart)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return &models.Cart{Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (r *CartRepository) Save(ctx context.Context, userID string, cart *models.Cart) error {
	return putJSON(ctx, r.store, cartKeyPrefix+userID, cart)
}

// Clear replaces the cart with an empty item list. The record itself is
// kept, matching the order-creation contract.
func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	return r.Save(ctx, userID, &models.Cart{Items: []models.CartItem{}})
}
