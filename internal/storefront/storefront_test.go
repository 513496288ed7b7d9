package storefront

import (
	"testing"
	"time"

	"go-flowershop/internal/models"
	"go-flowershop/internal/seed"
	"go-flowershop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, ttl time.Duration) *Registry {
	t.Helper()
	verifier, err := services.NewMockVerifier("admin@flowershop.com", "admin123", seed.Admin(), seed.DefaultUser())
	require.NoError(t, err)
	return NewRegistry(seed.Default, verifier, ttl, 0)
}

func TestResolveCreatesAndReuses(t *testing.T) {
	reg := newTestRegistry(t, time.Minute)

	app, id, created := reg.Resolve("")
	require.True(t, created)
	require.NotEmpty(t, id)

	again, sameID, created := reg.Resolve(id)
	assert.False(t, created)
	assert.Equal(t, id, sameID)
	assert.Same(t, app, again)

	_, otherID, created := reg.Resolve("unknown")
	assert.True(t, created)
	assert.NotEqual(t, "unknown", otherID)
	assert.Equal(t, 2, reg.Len())
}

func TestAppsAreIsolated(t *testing.T) {
	reg := newTestRegistry(t, 0)
	a, _, _ := reg.Resolve("")
	b, _, _ := reg.Resolve("")

	p, ok := a.Catalog.ByID("1")
	require.True(t, ok)
	a.Cart.AddItem(p, 1)
	a.Admin.DeleteProduct("1")
	a.Orders.SetStatus("ORD-001", models.OrderStatusCancelled)

	assert.True(t, b.Cart.IsEmpty())
	_, ok = b.Admin.GetProduct("1")
	assert.True(t, ok)
	o, _ := b.Orders.ByID("ORD-001")
	assert.Equal(t, models.OrderStatusDelivered, o.Status)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	reg := newTestRegistry(t, time.Minute)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return start }

	_, stale, _ := reg.Resolve("")
	reg.now = func() time.Time { return start.Add(50 * time.Second) }
	_, fresh, _ := reg.Resolve("")

	removed := reg.Sweep(start.Add(90 * time.Second))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, reg.Len())

	_, id, created := reg.Resolve(fresh)
	assert.False(t, created)
	assert.Equal(t, fresh, id)
	_, _, created = reg.Resolve(stale)
	assert.True(t, created)
}

func TestSweepWithoutTTLKeepsEverything(t *testing.T) {
	reg := newTestRegistry(t, 0)
	reg.Resolve("")

	assert.Equal(t, 0, reg.Sweep(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, reg.Len())
}

func TestResolveEvictsLeastRecentlyUsedAtCapacity(t *testing.T) {
	reg := newTestRegistry(t, 0)
	reg.maxApps = 2
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) { reg.now = func() time.Time { return start.Add(d) } }

	at(0)
	_, first, _ := reg.Resolve("")
	at(time.Second)
	_, second, _ := reg.Resolve("")
	at(2 * time.Second)
	reg.Resolve(first)

	at(3 * time.Second)
	_, third, created := reg.Resolve("")
	require.True(t, created)
	assert.Equal(t, 2, reg.Len())

	_, id, created := reg.Resolve(first)
	assert.False(t, created)
	assert.Equal(t, first, id)
	_, id, created = reg.Resolve(third)
	assert.False(t, created)
	assert.Equal(t, third, id)

	_, _, created = reg.Resolve(second)
	assert.True(t, created)
}
