// internal/services/payment_service_test.go
package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/storefront-backend/internal/models"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	env *testEnv
	ctx context.Context
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.env = newTestEnv()
	suite.ctx = context.Background()
}

func (suite *PaymentServiceTestSuite) createOrder(userID string) *models.Order {
	suite.T().Helper()
	product := suite.env.mustCreateProduct(suite.T(), "Widget", 25.00, 5)
	_, err := suite.env.cart.AddItem(suite.ctx, userID, product.ID, 2)
	require.NoError(suite.T(), err)
	order, err := suite.env.order.CreateOrder(suite.ctx, userID, &CreateOrderRequest{
		ShippingAddress: "1 Main St",
		PaymentMethod:   "card",
	})
	require.NoError(suite.T(), err)
	return order
}

func (suite *PaymentServiceTestSuite) paymentReq(orderID string) *ProcessPaymentRequest {
	return &ProcessPaymentRequest{
		OrderID: orderID,
		PaymentDetails: PaymentDetailsRequest{
			CardNumber: "4242424242424242",
			CardHolder: "Jo Customer",
			Method:     "card",
		},
	}
}

func (suite *PaymentServiceTestSuite) TestProcessPaymentCompletesOrder() {
	order := suite.createOrder("u1")

	payment, updated, err := suite.env.payment.ProcessPayment(suite.ctx, "u1", suite.paymentReq(order.ID))
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), order.ID, payment.OrderID)
	assert.Equal(suite.T(), "u1", payment.UserID)
	assert.Equal(suite.T(), order.Total, payment.Amount)
	assert.Equal(suite.T(), models.PaymentStatusCompleted, payment.Status)

	assert.Equal(suite.T(), models.PaymentStatusCompleted, updated.PaymentStatus)
	assert.Equal(suite.T(), models.OrderStatusProcessing, updated.Status)

	// Persisted order agrees
	reloaded, err := suite.env.orders.Find(suite.ctx, order.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OrderStatusProcessing, reloaded.Status)
}

func (suite *PaymentServiceTestSuite) TestProcessPaymentMasksCardNumber() {
	order := suite.createOrder("u1")

	payment, _, err := suite.env.payment.ProcessPayment(suite.ctx, "u1", suite.paymentReq(order.ID))
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "**** **** **** 4242", payment.PaymentDetails.CardNumber)
	assert.NotContains(suite.T(), payment.PaymentDetails.CardNumber, "424242424242")

	// The stored record is masked too
	stored, err := suite.env.payments.Find(suite.ctx, payment.ID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), strings.Contains(stored.PaymentDetails.CardNumber, "4242424242"))
}

func (suite *PaymentServiceTestSuite) TestProcessPaymentUnknownOrder() {
	_, _, err := suite.env.payment.ProcessPayment(suite.ctx, "u1", suite.paymentReq("missing"))
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestProcessPaymentEnforcesOwnership() {
	order := suite.createOrder("u1")

	_, _, err := suite.env.payment.ProcessPayment(suite.ctx, "u2", suite.paymentReq(order.ID))
	assert.ErrorIs(suite.T(), err, ErrForbidden)
}

func (suite *PaymentServiceTestSuite) TestSecondPaymentRejected() {
	order := suite.createOrder("u1")

	_, _, err := suite.env.payment.ProcessPayment(suite.ctx, "u1", suite.paymentReq(order.ID))
	require.NoError(suite.T(), err)

	_, _, err = suite.env.payment.ProcessPayment(suite.ctx, "u1", suite.paymentReq(order.ID))
	assert.ErrorIs(suite.T(), err, ErrPaymentCompleted)
}

func (suite *PaymentServiceTestSuite) TestPaymentRejectedOnCancelledOrder() {
	order := suite.createOrder("u1")

	_, err := suite.env.order.SetStatus(suite.ctx, order.ID, "u1", false, models.OrderStatusCancelled)
	require.NoError(suite.T(), err)

	_, _, err = suite.env.payment.ProcessPayment(suite.ctx, "u1", suite.paymentReq(order.ID))
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)

	// The order stays cancelled and no payment was recorded.
	reloaded, err := suite.env.orders.Find(suite.ctx, order.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OrderStatusCancelled, reloaded.Status)
	assert.Equal(suite.T(), models.PaymentStatusPending, reloaded.PaymentStatus)

	records, err := suite.env.store.ScanPrefix(suite.ctx, "payment:")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), records)
}

func (suite *PaymentServiceTestSuite) TestPaymentRejectedOnDeliveredOrder() {
	order := suite.createOrder("u1")

	for _, status := range []models.OrderStatus{
		models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered,
	} {
		_, err := suite.env.order.SetStatus(suite.ctx, order.ID, "admin", true, status)
		require.NoError(suite.T(), err)
	}

	_, _, err := suite.env.payment.ProcessPayment(suite.ctx, "u1", suite.paymentReq(order.ID))
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentOwnerOnly() {
	order := suite.createOrder("u1")
	payment, _, err := suite.env.payment.ProcessPayment(suite.ctx, "u1", suite.paymentReq(order.ID))
	require.NoError(suite.T(), err)

	got, err := suite.env.payment.GetPayment(suite.ctx, payment.ID, "u1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), payment.ID, got.ID)

	_, err = suite.env.payment.GetPayment(suite.ctx, payment.ID, "u2")
	assert.ErrorIs(suite.T(), err, ErrForbidden)

	_, err = suite.env.payment.GetPayment(suite.ctx, "missing", "u1")
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
