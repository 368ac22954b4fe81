// internal/services/cart_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
	"github.com/shopstack/storefront-backend/internal/repository"
)

// CartService mutates one user's cart through single-key
// read-modify-write sequences. Concurrent mutations from the same user
// race with last-write-wins; see CartRepository.
type CartService struct {
	carts    *repository.CartRepository
	products *repository.ProductRepository
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func NewCartService(carts *repository.CartRepository, products *repository.ProductRepository) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

// AddItem appends a new line or accumulates quantity on the existing one,
// keeping at most one line per product. The product must resolve; stock
// is deliberately not a ceiling here.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.products.Find(ctx, productID); err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}

	cart, err := s.carts.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if idx := cart.FindItem(productID); idx >= 0 {
		cart.Items[idx].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		})
	}

	if err := s.carts.Save(ctx, userID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// UpdateQuantity sets the line's quantity; zero or negative removes the
// line. A missing line is a silent no-op so repeated updates are
// idempotent from the client's point of view.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.carts.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	idx := cart.FindItem(productID)
	if idx < 0 {
		return cart, nil
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = quantity
	}

	if err := s.carts.Save(ctx, userID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// RemoveItem drops the line if present; removing an absent line succeeds.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	cart, err := s.carts.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	idx := cart.FindItem(productID)
	if idx < 0 {
		return cart, nil
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	if err := s.carts.Save(ctx, userID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// View joins cart lines with live product data. Lines whose product has
// been deleted are dropped from the view only; the stored cart is left
// as is.
func (s *CartService) View(ctx context.Context, userID string) (*models.CartView, error) {
	cart, err := s.carts.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	view := &models.CartView{Items: []models.CartViewItem{}}
	for _, item := range cart.Items {
		product, err := s.products.Find(ctx, item.ProductID)
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}
		view.Items = append(view.Items, models.CartViewItem{
			CartItem: item,
			Product:  *product,
		})
	}
	return view, nil
}
