package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/apperr"
)

func TestCheckoutRequiresDeliveryAddress(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "")

	_, err := f.Order.PlaceOrderFromCart(user.ID)
	assert.ErrorIs(t, err, apperr.ErrPreconditionFailed)
}

func TestCheckoutWithoutCart(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")

	_, err := f.Order.PlaceOrderFromCart(user.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	menu := seedMenu(t, f.DB, "Burger", "10.00")

	require.NoError(t, f.Cart.AddItem(user.ID, menu.ID, 1))
	require.NoError(t, f.Cart.Clear(user.ID))

	_, err := f.Order.PlaceOrderFromCart(user.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestCheckoutFreezesCartAndClearsIt(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	burger := seedMenu(t, f.DB, "Burger", "10.00")
	fries := seedMenu(t, f.DB, "Fries", "5.00")

	require.NoError(t, f.Cart.AddItem(user.ID, burger.ID, 2))
	require.NoError(t, f.Cart.AddItem(user.ID, fries.ID, 1))

	order, err := f.Order.PlaceOrderFromCart(user.ID)
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(money("25.00")))
	assert.Equal(t, entity.OrderInitialized, order.OrderStatus)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)

	var items []entity.OrderItem
	require.NoError(t, f.DB.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 2)

	// cart left empty, atomically with the order write
	view, err := f.Cart.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.TotalAmount.IsZero())

	// confirmation mail with the payment link
	f.Notifier.Wait()
	require.Equal(t, 1, f.Mailer.Count())
	msg := f.Mailer.Last()
	assert.Equal(t, user.Email, msg.Recipient)
	assert.Contains(t, msg.Subject, "Order Received")
	assert.Contains(t, msg.Body, "http://localhost:3000/pay")
}

func TestCheckoutCommitsSnapshotPrices(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	menu := seedMenu(t, f.DB, "Burger", "10.00")

	require.NoError(t, f.Cart.AddItem(user.ID, menu.ID, 2))

	// catalog price change between add and checkout
	require.NoError(t, f.DB.Model(&entity.Menu{}).Where("id = ?", menu.ID).
		Update("price", money("99.99")).Error)

	order, err := f.Order.PlaceOrderFromCart(user.ID)
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(money("20.00")))

	var item entity.OrderItem
	require.NoError(t, f.DB.Where("order_id = ?", order.ID).First(&item).Error)
	assert.True(t, item.PricePerUnit.Equal(money("10.00")))
}

func TestSecondCheckoutFindsEmptyCart(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	menu := seedMenu(t, f.DB, "Burger", "10.00")

	require.NoError(t, f.Cart.AddItem(user.ID, menu.ID, 1))

	_, err := f.Order.PlaceOrderFromCart(user.ID)
	require.NoError(t, err)

	_, err = f.Order.PlaceOrderFromCart(user.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestCheckoutSurvivesNotificationFailure(t *testing.T) {
	f := newFixture(t)
	f.Mailer.Err = errors.New("smtp down")
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")
	menu := seedMenu(t, f.DB, "Burger", "10.00")

	require.NoError(t, f.Cart.AddItem(user.ID, menu.ID, 1))

	order, err := f.Order.PlaceOrderFromCart(user.ID)
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	// the failed attempt is recorded, not propagated
	f.Notifier.Wait()
	var note entity.Notification
	require.NoError(t, f.DB.First(&note).Error)
	assert.False(t, note.Sent)
	assert.True(t, strings.Contains(note.Subject, "Order Received"))
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	f := newFixture(t)
	user := seedUser(t, f.DB, "a@test.local", "1 Main St")

	newOrder := func(status entity.OrderStatus) *entity.Order {
		o := entity.Order{
			TotalAmount:   money("10.00"),
			OrderStatus:   status,
			PaymentStatus: entity.PaymentPending,
			UserID:        user.ID,
		}
		require.NoError(t, f.DB.Create(&o).Error)
		return &o
	}

	t.Run("confirmed to on the way to delivered", func(t *testing.T) {
		o := newOrder(entity.OrderConfirmed)
		require.NoError(t, f.Order.UpdateOrderStatus(o.ID, entity.OrderOnTheWay))
		require.NoError(t, f.Order.UpdateOrderStatus(o.ID, entity.OrderDelivered))

		var got entity.Order
		require.NoError(t, f.DB.First(&got, o.ID).Error)
		assert.Equal(t, entity.OrderDelivered, got.OrderStatus)
	})

	t.Run("on the way requires confirmed", func(t *testing.T) {
		o := newOrder(entity.OrderInitialized)
		err := f.Order.UpdateOrderStatus(o.ID, entity.OrderOnTheWay)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("failed can be forced", func(t *testing.T) {
		o := newOrder(entity.OrderConfirmed)
		require.NoError(t, f.Order.UpdateOrderStatus(o.ID, entity.OrderFailed))

		var got entity.Order
		require.NoError(t, f.DB.First(&got, o.ID).Error)
		assert.Equal(t, entity.OrderFailed, got.OrderStatus)
	})

	t.Run("payment outcomes are not administrative", func(t *testing.T) {
		o := newOrder(entity.OrderInitialized)
		for _, to := range []entity.OrderStatus{entity.OrderConfirmed, entity.OrderCancelled, entity.OrderInitialized} {
			err := f.Order.UpdateOrderStatus(o.ID, to)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument, "target %s", to)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		err := f.Order.UpdateOrderStatus(99999, entity.OrderFailed)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
