// internal/repository/category_repository.go
package repository

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
)

type CategoryRepository struct {
	store kvstore.Store
}

func NewCategoryRepository(store kvstore.Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) Save(ctx context.Context, category *models.Category) error {
	return putJSON(ctx, r.store, categoryKeyPrefix+category.ID, category)
}

func (r *CategoryRepository) Find(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := getJSON(ctx, r.store, categoryKeyPrefix+id, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	entries, err := r.store.ScanPrefix(ctx, categoryKeyPrefix)
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(entries))
	for key, data := range entries {
		var category models.Category
		if err := json.Unmarshal(data, &category); err != nil {
			logrus.WithField("key", key).WithError(err).Warn("Skipping malformed category record")
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}
