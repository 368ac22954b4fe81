// internal/services/user_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
	"github.com/shopstack/storefront-backend/internal/repository"
	"github.com/shopstack/storefront-backend/internal/utils"
)

type UserService struct {
	users *repository.UserRepository
}

// UpdateProfileRequest deliberately has no role or id field: neither is
// mutable through the profile-update path.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address *string `json:"address,omitempty"`
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetProfile returns the stored profile, creating one from the verified
// claims on first contact.
func (s *UserService) GetProfile(ctx context.Context, claims *utils.JWTClaims) (*models.UserProfile, error) {
	profile, err := s.users.Find(ctx, claims.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	role := models.Role(claims.Role)
	if role != models.RoleAdmin {
		role = models.RoleUser
	}
	profile = &models.UserProfile{
		ID:        claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.users.Find(ctx, userID)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}

	now := time.Now().UTC()
	profile.UpdatedAt = &now

	if err := s.users.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
