// internal/repository/user_repository.go
package repository

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
)

type UserRepository struct {
	store kvstore.Store
}

func NewUserRepository(store kvstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	return putJSON(ctx, r.store, userKeyPrefix+profile.ID, profile)
}

func (r *UserRepository) Find(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := getJSON(ctx, r.store, userKeyPrefix+id, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]models.UserProfile, error) {
	entries, err := r.store.ScanPrefix(ctx, userKeyPrefix)
	if err != nil {
		return nil, err
	}

	profiles := make([]models.UserProfile, 0, len(entries))
	for key, data := range entries {
		var profile models.UserProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			logrus.WithField("key", key).WithError(err).Warn("Skipping malformed user record")
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
