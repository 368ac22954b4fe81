// internal/services/order_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/storefront-backend/internal/models"
)

type OrderServiceTestSuite struct {
	suite.Suite
	env *testEnv
	ctx context.Context
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.env = newTestEnv()
	suite.ctx = context.Background()
}

func (suite *OrderServiceTestSuite) checkoutReq() *CreateOrderRequest {
	return &CreateOrderRequest{
		ShippingAddress: "1 Main St",
		PaymentMethod:   "card",
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrderSnapshotsCart() {
	product := suite.env.mustCreateProduct(suite.T(), "Widget", 10.00, 5)
	_, err := suite.env.cart.AddItem(suite.ctx, "u1", product.ID, 2)
	require.NoError(suite.T(), err)

	order, err := suite.env.order.CreateOrder(suite.ctx, "u1", suite.checkoutReq())
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "u1", order.UserID)
	assert.Equal(suite.T(), models.OrderStatusPending, order.Status)
	assert.Equal(suite.T(), models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(suite.T(), 20.00, order.Total)
	require.Len(suite.T(), order.Items, 1)
	assert.Equal(suite.T(), "Widget", order.Items[0].ProductName)
	assert.Equal(suite.T(), 10.00, order.Items[0].Price)
	assert.Equal(suite.T(), 2, order.Items[0].Quantity)
	assert.Equal(suite.T(), 20.00, order.Items[0].Subtotal)

	// Cart emptied, record kept
	cart, err := suite.env.carts.Find(suite.ctx, "u1")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), cart.Items)
}

func (suite *OrderServiceTestSuite) TestCreateOrderTotalSpansLines() {
	first := suite.env.mustCreateProduct(suite.T(), "First", 10.50, 5)
	second := suite.env.mustCreateProduct(suite.T(), "Second", 3.25, 5)

	_, err := suite.env.cart.AddItem(suite.ctx, "u1", first.ID, 2)
	require.NoError(suite.T(), err)
	_, err = suite.env.cart.AddItem(suite.ctx, "u1", second.ID, 4)
	require.NoError(suite.T(), err)

	order, err := suite.env.order.CreateOrder(suite.ctx, "u1", suite.checkoutReq())
	require.NoError(suite.T(), err)

	assert.InDelta(suite.T(), 2*10.50+4*3.25, order.Total, 1e-9)
	assert.Len(suite.T(), order.Items, 2)
}

func (suite *OrderServiceTestSuite) TestCreateOrderEmptyCart() {
	_, err := suite.env.order.CreateOrder(suite.ctx, "u1", suite.checkoutReq())
	assert.ErrorIs(suite.T(), err, ErrEmptyCart)

	cart, findErr := suite.env.carts.Find(suite.ctx, "u1")
	require.NoError(suite.T(), findErr)
	assert.Empty(suite.T(), cart.Items)
}

func (suite *OrderServiceTestSuite) TestCreateOrderSkipsDeletedProducts() {
	kept := suite.env.mustCreateProduct(suite.T(), "Kept", 5.00, 5)
	doomed := suite.env.mustCreateProduct(suite.T(), "Doomed", 50.00, 5)

	_, err := suite.env.cart.AddItem(suite.ctx, "u1", kept.ID, 1)
	require.NoError(suite.T(), err)
	_, err = suite.env.cart.AddItem(suite.ctx, "u1", doomed.ID, 1)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.env.catalog.DeleteProduct(suite.ctx, doomed.ID))

	order, err := suite.env.order.CreateOrder(suite.ctx, "u1", suite.checkoutReq())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), order.Items, 1)
	assert.Equal(suite.T(), kept.ID, order.Items[0].ProductID)
	assert.Equal(suite.T(), 5.00, order.Total)
}

func (suite *OrderServiceTestSuite) TestCreateOrderAllLinesDeleted() {
	doomed := suite.env.mustCreateProduct(suite.T(), "Doomed", 50.00, 5)
	_, err := suite.env.cart.AddItem(suite.ctx, "u1", doomed.ID, 1)
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), suite.env.catalog.DeleteProduct(suite.ctx, doomed.ID))

	_, err = suite.env.order.CreateOrder(suite.ctx, "u1", suite.checkoutReq())
	assert.ErrorIs(suite.T(), err, ErrEmptyCart)
}

func (suite *OrderServiceTestSuite) TestSnapshotInsulatedFromPriceEdits() {
	product := suite.env.mustCreateProduct(suite.T(), "Widget", 10.00, 5)
	_, err := suite.env.cart.AddItem(suite.ctx, "u1", product.ID, 2)
	require.NoError(suite.T(), err)

	order, err := suite.env.order.CreateOrder(suite.ctx, "u1", suite.checkoutReq())
	require.NoError(suite.T(), err)

	newPrice := 99.99
	newName := "Renamed Widget"
	_, err = suite.env.catalog.UpdateProduct(suite.ctx, product.ID, &UpdateProductRequest{Price: &newPrice, Name: &newName})
	require.NoError(suite.T(), err)

	reloaded, err := suite.env.orders.Find(suite.ctx, order.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10.00, reloaded.Items[0].Price)
	assert.Equal(suite.T(), "Widget", reloaded.Items[0].ProductName)
	assert.Equal(suite.T(), 20.00, reloaded.Total)
}

func (suite *OrderServiceTestSuite) createOrder(userID string) *models.Order {
	suite.T().Helper()
	product := suite.env.mustCreateProduct(suite.T(), "Widget", 10.00, 5)
	_, err := suite.env.cart.AddItem(suite.ctx, userID, product.ID, 1)
	require.NoError(suite.T(), err)
	order, err := suite.env.order.CreateOrder(suite.ctx, userID, suite.checkoutReq())
	require.NoError(suite.T(), err)
	return order
}

func (suite *OrderServiceTestSuite) TestListByOwnerUsesIndex() {
	order := suite.createOrder("u1")

	// Another user's order must not leak in
	other := suite.createOrder("u2")

	mine, err := suite.env.order.List(suite.ctx, "u1", false)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), mine, 1)
	assert.Equal(suite.T(), order.ID, mine[0].ID)

	all, err := suite.env.order.List(suite.ctx, "admin-1", true)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), all, 2)
	_ = other
}

func (suite *OrderServiceTestSuite) TestGetEnforcesOwnership() {
	order := suite.createOrder("u1")

	_, err := suite.env.order.Get(suite.ctx, order.ID, "u2", false)
	assert.ErrorIs(suite.T(), err, ErrForbidden)

	got, err := suite.env.order.Get(suite.ctx, order.ID, "u2", true)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), order.ID, got.ID)

	_, err = suite.env.order.Get(suite.ctx, "missing", "u1", false)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestAdminWalksHappyPath() {
	order := suite.createOrder("u1")

	for _, target := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		updated, err := suite.env.order.SetStatus(suite.ctx, order.ID, "admin-1", true, target)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), target, updated.Status)
		require.NotNil(suite.T(), updated.UpdatedAt)
	}
}

func (suite *OrderServiceTestSuite) TestAdminCannotSkipStates() {
	order := suite.createOrder("u1")

	_, err := suite.env.order.SetStatus(suite.ctx, order.ID, "admin-1", true, models.OrderStatusShipped)
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)

	reloaded, findErr := suite.env.orders.Find(suite.ctx, order.ID)
	require.NoError(suite.T(), findErr)
	assert.Equal(suite.T(), models.OrderStatusPending, reloaded.Status)
}

func (suite *OrderServiceTestSuite) TestNonAdminMayOnlyCancel() {
	order := suite.createOrder("u1")

	_, err := suite.env.order.SetStatus(suite.ctx, order.ID, "u1", false, models.OrderStatusProcessing)
	assert.ErrorIs(suite.T(), err, ErrForbidden)

	reloaded, findErr := suite.env.orders.Find(suite.ctx, order.ID)
	require.NoError(suite.T(), findErr)
	assert.Equal(suite.T(), models.OrderStatusPending, reloaded.Status)

	updated, err := suite.env.order.SetStatus(suite.ctx, order.ID, "u1", false, models.OrderStatusCancelled)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OrderStatusCancelled, updated.Status)
}

func (suite *OrderServiceTestSuite) TestNonOwnerCannotTouchOrder() {
	order := suite.createOrder("u1")

	_, err := suite.env.order.SetStatus(suite.ctx, order.ID, "u2", false, models.OrderStatusCancelled)
	assert.ErrorIs(suite.T(), err, ErrForbidden)
}

func (suite *OrderServiceTestSuite) TestDeliveredIsTerminal() {
	order := suite.createOrder("u1")

	for _, target := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		_, err := suite.env.order.SetStatus(suite.ctx, order.ID, "admin-1", true, target)
		require.NoError(suite.T(), err)
	}

	_, err := suite.env.order.SetStatus(suite.ctx, order.ID, "admin-1", true, models.OrderStatusCancelled)
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)

	reloaded, findErr := suite.env.orders.Find(suite.ctx, order.ID)
	require.NoError(suite.T(), findErr)
	assert.Equal(suite.T(), models.OrderStatusDelivered, reloaded.Status)
}

func (suite *OrderServiceTestSuite) TestCancelledIsTerminal() {
	order := suite.createOrder("u1")

	_, err := suite.env.order.SetStatus(suite.ctx, order.ID, "u1", false, models.OrderStatusCancelled)
	require.NoError(suite.T(), err)

	_, err = suite.env.order.SetStatus(suite.ctx, order.ID, "admin-1", true, models.OrderStatusProcessing)
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)

	reloaded, findErr := suite.env.orders.Find(suite.ctx, order.ID)
	require.NoError(suite.T(), findErr)
	assert.Equal(suite.T(), models.OrderStatusCancelled, reloaded.Status)
}

func (suite *OrderServiceTestSuite) TestUnknownTargetStatusRejected() {
	order := suite.createOrder("u1")

	_, err := suite.env.order.SetStatus(suite.ctx, order.ID, "admin-1", true, models.OrderStatus("refunded"))
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
