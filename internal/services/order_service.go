// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
	"github.com/shopstack/storefront-backend/internal/repository"
	"github.com/shopstack/storefront-backend/internal/utils"
)

// OrderService converts cart snapshots into immutable orders and drives
// them through the status state machine.
type OrderService struct {
	orders   *repository.OrderRepository
	carts    *repository.CartRepository
	products *repository.ProductRepository
}

type CreateOrderRequest struct {
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	PaymentMethod   string `json:"paymentMethod" validate:"required"`
}

type UpdateOrderRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

func NewOrderService(orders *repository.OrderRepository, carts *repository.CartRepository, products *repository.ProductRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		carts:    carts,
		products: products,
	}
}

// CreateOrder snapshots the user's cart into a new pending order.
//
// The write sequence is order record, owner-index entry, cart clear — in
// that fixed order and without a transaction. A failure between writes
// leaves a partial state: the order exists and the caller sees an
// internal error, but retrying is safe because the cart is still
// populated and the owner-index key is derived from the order id.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, req *CreateOrderRequest) (*models.Order, error) {
	cart, err := s.carts.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Snapshot current product name and price per line. Lines whose
	// product has been deleted are skipped, not an error.
	var items []models.OrderItem
	var total float64
	for _, line := range cart.Items {
		product, err := s.products.Find(ctx, line.ProductID)
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}

		subtotal := product.Price * float64(line.Quantity)
		total += subtotal
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    line.Quantity,
			Subtotal:    subtotal,
		})
	}

	// Every line referenced a deleted product: nothing to sell.
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:              utils.NewEntityID(),
		UserID:          userID,
		Items:           items,
		Total:           total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := s.orders.SaveOwnerIndex(ctx, userID, order.ID); err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": order.ID,
			"user_id":  userID,
		}).WithError(err).Error("Order created but owner index write failed")
		return nil, fmt.Errorf("failed to index order: %w", err)
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": order.ID,
			"user_id":  userID,
		}).WithError(err).Error("Order created but cart clear failed")
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	return order, nil
}

// List returns all orders for admins, or the caller's own orders via the
// owner index.
func (s *OrderService) List(ctx context.Context, userID string, isAdmin bool) ([]models.Order, error) {
	if isAdmin {
		return s.orders.ListAll(ctx)
	}
	return s.orders.ListByUser(ctx, userID)
}

// Get returns the order if the caller owns it or is an admin.
func (s *OrderService) Get(ctx context.Context, orderID, userID string, isAdmin bool) (*models.Order, error) {
	order, err := s.orders.Find(ctx, orderID)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	if order.UserID != userID && !isAdmin {
		return nil, ErrForbidden
	}
	return order, nil
}

// SetStatus applies one transition of the order state machine.
//
// The transition table is re-validated on every call and enforced
// server-side, including out of terminal states. Non-admin actors may
// only cancel their own order. Any rejection leaves the stored status
// unchanged.
func (s *OrderService) SetStatus(ctx context.Context, orderID, actorID string, isAdmin bool, target models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.Find(ctx, orderID)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	if order.UserID != actorID && !isAdmin {
		return nil, ErrForbidden
	}
	if !isAdmin && target != models.OrderStatusCancelled {
		return nil, ErrForbidden
	}

	if !models.ValidOrderStatus(target) || !order.Status.CanTransitionTo(target) {
		return nil, ErrInvalidStatus
	}

	now := time.Now().UTC()
	order.Status = target
	order.UpdatedAt = &now

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"status":   target,
		"actor":    actorID,
	}).Info("Order status updated")

	return order, nil
}
