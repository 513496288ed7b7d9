package services

import (
	"testing"
	"time"

	"go-flowershop/internal/models"
	"go-flowershop/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdmin() *AdminService {
	return NewAdminService(seed.Users(), seed.Products(), seed.Orders())
}

func TestAdminRevenueExcludesCancelled(t *testing.T) {
	admin := NewAdminService(nil, nil, []models.Order{
		{ID: "a", TotalPrice: dec("10"), Status: models.OrderStatusPending},
		{ID: "b", TotalPrice: dec("20"), Status: models.OrderStatusCancelled},
		{ID: "c", TotalPrice: dec("30"), Status: models.OrderStatusDelivered},
	})

	stats := admin.Stats()
	assert.True(t, dec("40").Equal(stats.Revenue), "got %s", stats.Revenue)
	assert.Equal(t, 3, stats.Orders)
	assert.Equal(t, 1, stats.PendingOrders)
}

func TestAdminStatsFollowMutations(t *testing.T) {
	admin := newTestAdmin()

	stats := admin.Stats()
	assert.Equal(t, 3, stats.Users)
	assert.Equal(t, 8, stats.Products)
	assert.Equal(t, 3, stats.Orders)
	assert.Equal(t, 1, stats.PendingOrders)

	admin.SetOrderStatus("ORD-003", models.OrderStatusCancelled)
	admin.DeleteUser("2")

	stats = admin.Stats()
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 0, stats.PendingOrders)
	assert.True(t, dec("113.96").Equal(stats.Revenue), "got %s", stats.Revenue)
}

func TestAdminUserCRUD(t *testing.T) {
	admin := newTestAdmin()

	a := admin.AddUser(models.User{ID: "ignored", Name: "Rosa", Email: "rosa@example.com"})
	b := admin.AddUser(models.User{Name: "Iris", Email: "iris@example.com", Role: models.RoleAdmin})
	assert.NotEqual(t, "ignored", a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, models.RoleUser, a.Role)
	assert.Len(t, admin.ListUsers(), 5)

	phone := "+1 555"
	updated, ok := admin.UpdateUser(a.ID, models.UserUpdate{Phone: &phone})
	require.True(t, ok)
	assert.Equal(t, "Rosa", updated.Name)
	assert.Equal(t, phone, updated.Phone)

	_, ok = admin.UpdateUser("nobody", models.UserUpdate{Phone: &phone})
	assert.False(t, ok)

	assert.True(t, admin.DeleteUser(a.ID))
	assert.False(t, admin.DeleteUser(a.ID))
	_, ok = admin.GetUser(a.ID)
	assert.False(t, ok)
}

func TestAdminSearchUsers(t *testing.T) {
	admin := newTestAdmin()

	assert.Len(t, admin.SearchUsers(""), 3)
	found := admin.SearchUsers("SMITH")
	require.Len(t, found, 1)
	assert.Equal(t, "2", found[0].ID)
	assert.Len(t, admin.SearchUsers("example.com"), 3)
}

func TestAdminProductCRUDAndStock(t *testing.T) {
	admin := newTestAdmin()

	added := admin.AddProduct(models.Product{Name: "Peony Box", Price: dec("40"), Category: models.CategoryLotus})
	assert.NotEmpty(t, added.ID)

	toggled, ok := admin.ToggleStock(added.ID)
	require.True(t, ok)
	assert.True(t, toggled.InStock)
	toggled, _ = admin.ToggleStock(added.ID)
	assert.False(t, toggled.InStock)

	price := dec("42.50")
	bad := models.Category("cactus")
	updated, ok := admin.UpdateProduct(added.ID, models.ProductUpdate{Price: &price, Category: &bad})
	require.True(t, ok)
	assert.True(t, price.Equal(updated.Price))
	assert.Equal(t, models.CategoryLotus, updated.Category)
	assert.Equal(t, "Peony Box", updated.Name)

	_, ok = admin.ToggleStock("missing")
	assert.False(t, ok)
	assert.True(t, admin.DeleteProduct(added.ID))
	assert.Len(t, admin.ListProducts(), 8)
}

func TestAdminSearchProducts(t *testing.T) {
	admin := newTestAdmin()

	assert.Len(t, admin.SearchProducts(models.ProductFilter{}), 8)
	assert.Len(t, admin.SearchProducts(models.ProductFilter{Category: models.CategoryTulip}), 2)
	out := admin.SearchProducts(models.ProductFilter{Stock: models.StockOut})
	require.Len(t, out, 1)
	assert.Equal(t, "8", out[0].ID)
	assert.Len(t, admin.SearchProducts(models.ProductFilter{Term: "rose"}), 2)
	assert.Len(t, admin.SearchProducts(models.ProductFilter{Term: "tulip", Stock: models.StockIn}), 1)
}

func TestAdminOrders(t *testing.T) {
	admin := newTestAdmin()

	added := admin.AddOrder(models.Order{
		UserName:  "Walk-in",
		Items:     []models.CartLine{{Product: product("x", "3", models.CategoryJasmine), Quantity: 3}},
		CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, models.OrderStatusPending, added.Status)
	assert.True(t, dec("9").Equal(added.TotalPrice))

	newest := admin.SearchOrders(models.OrderFilter{})
	require.Len(t, newest, 4)
	assert.Equal(t, added.ID, newest[0].ID)
	assert.Equal(t, "ORD-001", newest[3].ID)

	johns := admin.SearchOrders(models.OrderFilter{Term: "john"})
	assert.Len(t, johns, 2)
	assert.Len(t, admin.SearchOrders(models.OrderFilter{Status: models.OrderStatusShipped}), 1)

	assert.True(t, admin.SetOrderStatus("ORD-001", models.OrderStatusCancelled))
	assert.False(t, admin.SetOrderStatus("ORD-001", models.OrderStatus("bogus")))
	assert.Equal(t, 1, admin.OrderCountByStatus(models.OrderStatusCancelled))

	addr := "Somewhere"
	o, ok := admin.UpdateOrder("ORD-002", models.OrderUpdate{ShippingAddress: &addr})
	require.True(t, ok)
	assert.Equal(t, addr, o.ShippingAddress)
	assert.Equal(t, models.OrderStatusShipped, o.Status)

	assert.True(t, admin.DeleteOrder("ORD-002"))
	_, ok = admin.GetOrder("ORD-002")
	assert.False(t, ok)
}
