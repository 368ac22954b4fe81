// internal/repository/repository.go
//
// Typed repositories over the key-value store. Each repository owns one
// entity type's key-prefix convention; there is no cross-entity
// transactionality, matching the store's single-key atomicity.
package repository

import (
	"context"
	"encoding/json"

	"github.com/shopstack/storefront-backend/internal/kvstore"
)

const (
	productKeyPrefix   = "product:"
	categoryKeyPrefix  = "category:"
	cartKeyPrefix      = "cart:"
	orderKeyPrefix     = "order:"
	orderUserKeyPrefix = "order-user:"
	paymentKeyPrefix   = "payment:"
	userKeyPrefix      = "user:"
)

func putJSON(ctx context.Context, store kvstore.Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Put(ctx, key, data)
}

func getJSON(ctx context.Context, store kvstore.Store, key string, dest interface{}) error {
	data, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
