// internal/repository/payment_repository.go
package repository

import (
	"context"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
)

type PaymentRepository struct {
	store kvstore.Store
}

func NewPaymentRepository(store kvstore.Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

func (r *PaymentRepository) Save(ctx context.Context, payment *models.Payment) error {
	return putJSON(ctx, r.store, paymentKeyPrefix+payment.ID, payment)
}

func (r *PaymentRepository) Find(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := getJSON(ctx, r.store, paymentKeyPrefix+id, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
