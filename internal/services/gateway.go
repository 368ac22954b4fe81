// internal/services/gateway.go
package services

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/shopstack/storefront-backend/internal/config"
	"github.com/shopstack/storefront-backend/internal/utils"
)

// PaymentGateway charges an order total and returns a processor
// reference. Implementations must not retry internally; a declined or
// failed charge surfaces as an error.
type PaymentGateway interface {
	Charge(ctx context.Context, amount float64, method string) (reference string, err error)
}

// NewPaymentGateway picks Stripe when a secret key is configured and the
// simulated processor otherwise.
func NewPaymentGateway(cfg *config.PaymentConfig) PaymentGateway {
	if cfg.StripeSecretKey != "" {
		return NewStripeGateway(cfg)
	}
	return &SimulatedGateway{}
}

// SimulatedGateway approves every charge. This is the storefront's
// default processor: no external calls, no declines.
type SimulatedGateway struct{}

func (g *SimulatedGateway) Charge(ctx context.Context, amount float64, method string) (string, error) {
	return utils.NewPaymentID(), nil
}

// StripeGateway charges through a Stripe PaymentIntent.
type StripeGateway struct {
	currency string
}

func NewStripeGateway(cfg *config.PaymentConfig) *StripeGateway {
	stripe.Key = cfg.StripeSecretKey
	return &StripeGateway{currency: cfg.Currency}
}

// cents converts a float total to integer cents, rounding so totals whose
// float representation lands just below a cent boundary do not lose a cent.
func cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (g *StripeGateway) Charge(ctx context.Context, amount float64, method string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(cents(amount)),
		Currency: stripe.String(g.currency),
	}
	params.AddMetadata("payment_method", method)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ID, nil
}
