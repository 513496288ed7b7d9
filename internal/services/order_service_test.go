package services

import (
	"testing"
	"time"

	"go-flowershop/internal/models"
	"go-flowershop/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreateOrder(t *testing.T) {
	orders := NewOrderService(seed.Orders())
	at := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	orders.now = fixedClock(at)

	lines := []models.CartLine{
		{Product: product("A", "10", models.CategoryTulip), Quantity: 2},
		{Product: product("B", "5", models.CategoryLotus), Quantity: 1},
	}
	order, err := orders.Create(lines, "1 Petal Road")
	require.NoError(t, err)

	assert.Equal(t, "ORD-004", order.ID)
	assert.True(t, dec("25").Equal(order.TotalPrice))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, at, order.CreatedAt)
	assert.Equal(t, "1 Petal Road", order.ShippingAddress)

	all := orders.ListAll()
	require.Len(t, all, 4)
	assert.Equal(t, order.ID, all[0].ID)
}

func TestCreateOrderSnapshotsLines(t *testing.T) {
	orders := NewOrderService(nil)
	lines := []models.CartLine{{Product: product("A", "10", models.CategoryTulip), Quantity: 2}}

	order, err := orders.Create(lines, "x")
	require.NoError(t, err)
	lines[0].Quantity = 50

	stored, ok := orders.ByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.True(t, dec("20").Equal(stored.TotalPrice))
}

func TestCreateOrderRejectsEmptyLines(t *testing.T) {
	orders := NewOrderService(seed.Orders())

	_, err := orders.Create(nil, "x")
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Len(t, orders.ListAll(), 3)
	assert.Equal(t, int64(1), orders.GetStats()["rejected_orders"])
}

func TestOrderIDsNeverRepeatAfterDelete(t *testing.T) {
	orders := NewOrderService(seed.Orders())
	lines := []models.CartLine{{Product: product("A", "1", models.CategoryTulip), Quantity: 1}}

	first, err := orders.Create(lines, "x")
	require.NoError(t, err)
	require.True(t, orders.Delete(first.ID))
	require.True(t, orders.Delete("ORD-003"))

	second, err := orders.Create(lines, "x")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "ORD-005", second.ID)
}

func TestOrderSetStatusAnyTransition(t *testing.T) {
	orders := NewOrderService(seed.Orders())

	assert.True(t, orders.SetStatus("ORD-001", models.OrderStatusPending))
	o, _ := orders.ByID("ORD-001")
	assert.Equal(t, models.OrderStatusPending, o.Status)

	assert.False(t, orders.SetStatus("ORD-001", models.OrderStatus("lost")))
	assert.False(t, orders.SetStatus("ORD-404", models.OrderStatusShipped))
}

func TestOrderDelete(t *testing.T) {
	orders := NewOrderService(seed.Orders())

	assert.True(t, orders.Delete("ORD-002"))
	assert.False(t, orders.Delete("ORD-002"))
	_, ok := orders.ByID("ORD-002")
	assert.False(t, ok)
	assert.Len(t, orders.ListAll(), 2)
}

func TestCheckout(t *testing.T) {
	orders := NewOrderService(nil)
	cart := NewCartService()
	session := newTestSession(t)
	cart.AddItem(product("A", "10", models.CategoryTulip), 2)

	_, err := orders.Checkout(cart, session, "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.False(t, cart.IsEmpty())

	require.True(t, session.Login("a@b.com", "pw"))
	order, err := orders.Checkout(cart, session, "")
	require.NoError(t, err)

	assert.Equal(t, "ORD-001", order.ID)
	assert.Equal(t, seed.DefaultUser().Address, order.ShippingAddress)
	assert.Equal(t, seed.DefaultUser().Name, order.UserName)
	assert.True(t, cart.IsEmpty())

	_, err = orders.Checkout(cart, session, "")
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestCheckoutFallsBackToShopAddress(t *testing.T) {
	orders := NewOrderService(nil)
	cart := NewCartService()
	session := newTestSession(t)
	require.True(t, session.Signup("Ann", "ann@b.com", "pw"))
	cart.AddItem(product("A", "10", models.CategoryTulip), 1)

	order, err := orders.Checkout(cart, session, "")
	require.NoError(t, err)
	assert.Equal(t, seed.DefaultShippingAddress, order.ShippingAddress)

	cart.AddItem(product("A", "10", models.CategoryTulip), 1)
	order, err = orders.Checkout(cart, session, "9 Stem Street")
	require.NoError(t, err)
	assert.Equal(t, "9 Stem Street", order.ShippingAddress)
}
