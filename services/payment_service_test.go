package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/apperr"
)

func seedOrder(t *testing.T, f *fixture, userID uint, total string) *entity.Order {
	t.Helper()
	o := entity.Order{
		TotalAmount:   money(total),
		OrderStatus:   entity.OrderInitialized,
		PaymentStatus: entity.PaymentPending,
		UserID:        userID,
	}
	require.NoError(t, f.DB.Create(&o).Error)
	return &o
}

func TestInitializePaymentUnknownOrder(t *testing.T) {
	f := newFixture(t)
	amount := money("25.00")

	_, err := f.Payment.InitializePayment(context.Background(), 999, &amount)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestInitializePaymentRequiresAmount(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	order := seedOrder(t, f, user.ID, "25.00")

	_, err := f.Payment.InitializePayment(context.Background(), order.ID, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestInitializePaymentRejectsAnyAmountDelta(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	order := seedOrder(t, f, user.ID, "25.00")

	for _, bad := range []string{"20.00", "25.01", "24.99", "0.00", "250.00"} {
		amount := money(bad)
		_, err := f.Payment.InitializePayment(context.Background(), order.ID, &amount)
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument, "amount %s", bad)
	}
	assert.Empty(t, f.Gateway.Calls)
}

func TestInitializePaymentConflictWhenAlreadyPaid(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	order := seedOrder(t, f, user.ID, "25.00")
	require.NoError(t, f.DB.Model(order).Update("payment_status", entity.PaymentCompleted).Error)

	amount := money("25.00")
	_, err := f.Payment.InitializePayment(context.Background(), order.ID, &amount)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestInitializePaymentAuthorizesMinorUnits(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	order := seedOrder(t, f, user.ID, "25.00")

	amount := money("25.00")
	handle, err := f.Payment.InitializePayment(context.Background(), order.ID, &amount)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_secret", handle)

	require.Len(t, f.Gateway.Calls, 1)
	call := f.Gateway.Calls[0]
	assert.EqualValues(t, 2500, call.AmountMinor)
	assert.Equal(t, "usd", call.Currency)
	assert.Contains(t, call.Metadata, "orderId")
}

func TestInitializePaymentWrapsGatewayErrors(t *testing.T) {
	f := newFixture(t)
	f.Gateway.Err = errors.New("gateway unreachable")
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	order := seedOrder(t, f, user.ID, "25.00")

	amount := money("25.00")
	_, err := f.Payment.InitializePayment(context.Background(), order.ID, &amount)
	assert.ErrorIs(t, err, apperr.ErrProcessing)

	// gateway errors never touch order state
	var got entity.Order
	require.NoError(t, f.DB.First(&got, order.ID).Error)
	assert.Equal(t, entity.PaymentPending, got.PaymentStatus)
}

func TestReconcileSuccess(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	order := seedOrder(t, f, user.ID, "25.00")

	err := f.Payment.UpdatePaymentForOrder(order.ID, money("25.00"), "tx1", true, "")
	require.NoError(t, err)

	var got entity.Order
	require.NoError(t, f.DB.First(&got, order.ID).Error)
	assert.Equal(t, entity.OrderConfirmed, got.OrderStatus)
	assert.Equal(t, entity.PaymentCompleted, got.PaymentStatus)

	var payment entity.Payment
	require.NoError(t, f.DB.Where("order_id = ?", order.ID).First(&payment).Error)
	assert.True(t, payment.Success)
	assert.Equal(t, "tx1", payment.TransactionID)
	assert.Equal(t, entity.GatewayStripe, payment.Gateway)
	assert.True(t, payment.Amount.Equal(money("25.00")))

	f.Notifier.Wait()
	require.Equal(t, 1, f.Mailer.Count())
	msg := f.Mailer.Last()
	assert.Contains(t, msg.Subject, "Payment Successful")
	assert.Contains(t, msg.Body, "tx1")
}

func TestReconcileFailure(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	order := seedOrder(t, f, user.ID, "25.00")

	err := f.Payment.UpdatePaymentForOrder(order.ID, money("25.00"), "tx2", false, "card declined")
	require.NoError(t, err)

	var got entity.Order
	require.NoError(t, f.DB.First(&got, order.ID).Error)
	assert.Equal(t, entity.OrderCancelled, got.OrderStatus)
	assert.Equal(t, entity.PaymentFailed, got.PaymentStatus)

	var payment entity.Payment
	require.NoError(t, f.DB.Where("order_id = ?", order.ID).First(&payment).Error)
	assert.False(t, payment.Success)
	assert.Equal(t, "card declined", payment.FailureReason)

	f.Notifier.Wait()
	require.Equal(t, 1, f.Mailer.Count())
	msg := f.Mailer.Last()
	assert.Contains(t, msg.Subject, "Payment Failed")
	assert.Contains(t, msg.Body, "card declined")
}

func TestReconcileUnknownOrder(t *testing.T) {
	f := newFixture(t)

	err := f.Payment.UpdatePaymentForOrder(999, money("25.00"), "tx1", true, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReconcileIsIdempotentForRetriedCallbacks(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	order := seedOrder(t, f, user.ID, "25.00")

	require.NoError(t, f.Payment.UpdatePaymentForOrder(order.ID, money("25.00"), "tx1", true, ""))
	f.Notifier.Wait()

	// retried callback, even with the opposite outcome, must not flip state
	err := f.Payment.UpdatePaymentForOrder(order.ID, money("25.00"), "tx1", false, "late failure")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	var got entity.Order
	require.NoError(t, f.DB.First(&got, order.ID).Error)
	assert.Equal(t, entity.OrderConfirmed, got.OrderStatus)
	assert.Equal(t, entity.PaymentCompleted, got.PaymentStatus)

	// the audit log still records both attempts
	var count int64
	require.NoError(t, f.DB.Model(&entity.Payment{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	// but the customer is notified exactly once
	f.Notifier.Wait()
	assert.Equal(t, 1, f.Mailer.Count())
}

func TestCheckoutThenPaymentScenario(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	itemA := seedMenu(t, f.DB, "Item A", "10.00")
	itemB := seedMenu(t, f.DB, "Item B", "5.00")

	require.NoError(t, f.Cart.AddItem(user.ID, itemA.ID, 2))
	require.NoError(t, f.Cart.AddItem(user.ID, itemB.ID, 1))

	order, err := f.Order.PlaceOrderFromCart(user.ID)
	require.NoError(t, err)
	require.True(t, order.TotalAmount.Equal(money("25.00")))

	view, err := f.Cart.Get(user.ID)
	require.NoError(t, err)
	require.Empty(t, view.Items)

	exact := money("25.00")
	_, err = f.Payment.InitializePayment(context.Background(), order.ID, &exact)
	require.NoError(t, err)

	wrong := money("20.00")
	_, err = f.Payment.InitializePayment(context.Background(), order.ID, &wrong)
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	require.NoError(t, f.Payment.UpdatePaymentForOrder(order.ID, exact, "tx1", true, ""))

	var confirmed entity.Order
	require.NoError(t, f.DB.First(&confirmed, order.ID).Error)
	require.Equal(t, entity.OrderConfirmed, confirmed.OrderStatus)
	require.Equal(t, entity.PaymentCompleted, confirmed.PaymentStatus)

	// repeated failed callback must not cancel a confirmed order
	err = f.Payment.UpdatePaymentForOrder(order.ID, exact, "tx1", false, "late decline")
	require.ErrorIs(t, err, apperr.ErrConflict)

	require.NoError(t, f.DB.First(&confirmed, order.ID).Error)
	require.Equal(t, entity.OrderConfirmed, confirmed.OrderStatus)
	require.Equal(t, entity.PaymentCompleted, confirmed.PaymentStatus)
}

func TestDecimalComparisonIsExact(t *testing.T) {
	// guardrail for the equality used by InitializePayment
	a := decimal.RequireFromString("25.00")
	b := decimal.RequireFromString("25")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(decimal.RequireFromString("25.001")))
}
