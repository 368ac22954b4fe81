// internal/repository/product_repository.go
package repository

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
)

type ProductRepository struct {
	store kvstore.Store
}

func NewProductRepository(store kvstore.Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return putJSON(ctx, r.store, productKeyPrefix+product.ID, product)
}

func (r *ProductRepository) Find(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := getJSON(ctx, r.store, productKeyPrefix+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, productKeyPrefix+id)
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	entries, err := r.store.ScanPrefix(ctx, productKeyPrefix)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(entries))
	for key, data := range entries {
		var product models.Product
		if err := json.Unmarshal(data, &product); err != nil {
			logrus.WithField("key", key).WithError(err).Warn("Skipping malformed product record")
			continue
		}
		products = append(products, product)
	}
	return products, nil
}
