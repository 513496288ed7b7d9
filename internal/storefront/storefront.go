// Package storefront bundles the domain stores that make up one client's
// application session and keeps track of the live sessions.
package storefront

import (
	"sync"
	"time"

	"go-flowershop/internal/seed"
	"go-flowershop/internal/services"

	"github.com/google/uuid"
)

// App is one client's set of stores. Every App starts from its own copy of the
// fixtures, so nothing is shared between clients.
type App struct {
	Catalog   *services.CatalogService
	Cart      *services.CartService
	Favorites *services.FavoriteService
	Session   *services.SessionService
	Orders    *services.OrderService
	Admin     *services.AdminService
}

func New(fixtures seed.Fixtures, verifier services.Verifier) *App {
	return &App{
		Catalog:   services.NewCatalogService(fixtures.Products),
		Cart:      services.NewCartService(),
		Favorites: services.NewFavoriteService(),
		Session:   services.NewSessionService(verifier),
		Orders:    services.NewOrderService(fixtures.Orders),
		Admin:     services.NewAdminService(fixtures.Users, fixtures.Products, fixtures.Orders),
	}
}

type entry struct {
	app      *App
	lastSeen time.Time
}

// Registry maps session ids to Apps.
type Registry struct {
	mu       sync.Mutex
	apps     map[string]*entry
	fixtures func() seed.Fixtures
	verifier services.Verifier
	idleTTL  time.Duration
	maxApps  int
	now      func() time.Time
}

// NewRegistry builds Apps from fixtures() on demand. Sessions untouched for
// longer than idleTTL are dropped by Sweep; a zero idleTTL keeps them forever.
// At most maxApps sessions live at once (zero means no cap): opening one more
// evicts the least recently used.
func NewRegistry(fixtures func() seed.Fixtures, verifier services.Verifier, idleTTL time.Duration, maxApps int) *Registry {
	return &Registry{
		apps:     make(map[string]*entry),
		fixtures: fixtures,
		verifier: verifier,
		idleTTL:  idleTTL,
		maxApps:  maxApps,
		now:      time.Now,
	}
}

// Resolve returns the App for id. An empty or unknown id gets a new App under
// a freshly generated id; created reports whether that happened.
func (r *Registry) Resolve(id string) (app *App, sessionID string, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.apps[id]; ok && id != "" {
		e.lastSeen = now
		return e.app, id, false
	}

	if r.maxApps > 0 && len(r.apps) >= r.maxApps {
		r.evictOldest()
	}

	sessionID = uuid.NewString()
	app = New(r.fixtures(), r.verifier)
	r.apps[sessionID] = &entry{app: app, lastSeen: now}
	return app, sessionID, true
}

// evictOldest drops the least recently seen session. Callers hold r.mu.
func (r *Registry) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range r.apps {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(r.apps, oldestID)
}

// Sweep drops sessions idle since before now-idleTTL and returns how many went.
func (r *Registry) Sweep(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.apps {
		if now.Sub(e.lastSeen) > r.idleTTL {
			delete(r.apps, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}
