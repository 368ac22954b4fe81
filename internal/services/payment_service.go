// internal/services/payment_service.go
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

type PaymentService struct {
	payments *repository.PaymentRepository
	orders   *repository.OrderRepository
	gateway  PaymentGateway
}

type ProcessPaymentRequest struct {
	OrderID        string                `json:"orderId" validate:"required"`
	PaymentDetails PaymentDetailsRequest `json:"paymentDetails"`
}

type PaymentDetailsRequest struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	Method     string `json:"method"`
}

func NewPaymentService(payments *repository.PaymentRepository, orders *repository.OrderRepository, gateway PaymentGateway) *PaymentService {
	return &PaymentService{
		payments: payments,
		orders:   orders,
		gateway:  gateway,
	}
}

// ProcessPayment charges the order total and records the outcome. At most
// one payment is counted per order: an order whose payment is already
// completed is rejected. The submitted card number is masked before
// anything touches the store.
func (s *PaymentService) ProcessPayment(ctx context.Context, userID string, req *ProcessPaymentRequest) (*models.Payment, *models.Order, error) {
	order, err := s.orders.Find(ctx, req.OrderID)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	if order.UserID != userID {
		return nil, nil, ErrForbidden
	}
	if order.PaymentStatus == models.PaymentStatusCompleted {
		return nil, nil, ErrPaymentCompleted
	}
	// A terminal order (cancelled or delivered) cannot accept payment.
	if order.Status.IsTerminal() {
		return nil, nil, ErrInvalidStatus
	}

	if _, err := s.gateway.Charge(ctx, order.Total, req.PaymentDetails.Method); err != nil {
		return nil, nil, fmt.Errorf("charge failed: %w", err)
	}

	payment := &models.Payment{
		ID:      utils.NewPaymentID(),
		OrderID: order.ID,
		UserID:  userID,
		Amount:  order.Total,
		Status:  models.PaymentStatusCompleted,
		PaymentDetails: models.PaymentDetails{
			CardNumber: utils.MaskCardNumber(req.PaymentDetails.CardNumber),
			CardHolder: req.PaymentDetails.CardHolder,
			Method:     req.PaymentDetails.Method,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, nil, fmt.Errorf("failed to persist payment: %w", err)
	}

	// Second, non-transactional write: a failure here leaves the payment
	// recorded with the order still pending, surfaced as internal.
	now := time.Now().UTC()
	order.PaymentStatus = models.PaymentStatusCompleted
	if order.Status.CanTransitionTo(models.OrderStatusProcessing) {
		order.Status = models.OrderStatusProcessing
	}
	order.UpdatedAt = &now

	if err := s.orders.Save(ctx, order); err != nil {
		logrus.WithFields(logrus.Fields{
			"payment_id": payment.ID,
			"order_id":   order.ID,
		}).WithError(err).Error("Payment recorded but order update failed")
		return nil, nil, fmt.Errorf("failed to update order: %w", err)
	}

	return payment, order, nil
}

// GetPayment returns a payment to its owner.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID, userID string) (*models.Payment, error) {
	payment, err := s.payments.Find(ctx, paymentID)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}

	if payment.UserID != userID {
		return nil, ErrForbidden
	}
	return payment, nil
}
