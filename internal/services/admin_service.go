package services

import (
	"sort"
	"strings"
	"sync"

	"go-flowershop/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminService is the back-office view of users, products and orders. Its
// collections are independent of the storefront stores.
type AdminService struct {
	mu       sync.RWMutex
	users    []models.User
	products []models.Product
	orders   []models.Order
}

func NewAdminService(users []models.User, products []models.Product, orders []models.Order) *AdminService {
	s := &AdminService{
		users:    make([]models.User, len(users)),
		products: make([]models.Product, len(products)),
		orders:   make([]models.Order, 0, len(orders)),
	}
	copy(s.users, users)
	copy(s.products, products)
	for _, o := range orders {
		s.orders = append(s.orders, o.Clone())
	}
	return s
}

// ============================================
// USERS
// ============================================

func (s *AdminService) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *AdminService) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// AddUser stores user under a freshly generated id; any id on the input is
// discarded. An invalid role defaults to RoleUser.
func (s *AdminService) AddUser(user models.User) models.User {
	user.ID = uuid.NewString()
	if !user.Role.Valid() {
		user.Role = models.RoleUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	return user
}

func (s *AdminService) UpdateUser(id string, update models.UserUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = update.Apply(s.users[i])
			return s.users[i], true
		}
	}
	return models.User{}, false
}

func (s *AdminService) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// SearchUsers matches term against name and email, ignoring case. An empty
// term returns every user.
func (s *AdminService) SearchUsers(term string) []models.User {
	term = strings.ToLower(strings.TrimSpace(term))
	users := s.ListUsers()
	if term == "" {
		return users
	}

	results := []models.User{}
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			results = append(results, u)
		}
	}
	return results
}

// ============================================
// PRODUCTS
// ============================================

func (s *AdminService) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *AdminService) GetProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *AdminService) AddProduct(product models.Product) models.Product {
	product.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
	return product
}

func (s *AdminService) UpdateProduct(id string, update models.ProductUpdate) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = update.Apply(s.products[i])
			return s.products[i], true
		}
	}
	return models.Product{}, false
}

func (s *AdminService) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleStock flips the in-stock flag of product id.
func (s *AdminService) ToggleStock(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].InStock = !s.products[i].InStock
			return s.products[i], true
		}
	}
	return models.Product{}, false
}

func (s *AdminService) SearchProducts(filter models.ProductFilter) []models.Product {
	term := strings.ToLower(strings.TrimSpace(filter.Term))

	results := []models.Product{}
	for _, p := range s.ListProducts() {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if filter.Category != "" && filter.Category != models.CategoryAll && p.Category != filter.Category {
			continue
		}
		switch filter.Stock {
		case models.StockIn:
			if !p.InStock {
				continue
			}
		case models.StockOut:
			if p.InStock {
				continue
			}
		}
		results = append(results, p)
	}
	return results
}

// ============================================
// ORDERS
// ============================================

func (s *AdminService) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

func (s *AdminService) GetOrder(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return models.Order{}, false
}

// AddOrder stores order under a generated id. A missing status becomes
// pending and a zero total is derived from the items.
func (s *AdminService) AddOrder(order models.Order) models.Order {
	order = order.Clone()
	order.ID = uuid.NewString()
	if !order.Status.Valid() {
		order.Status = models.OrderStatusPending
	}
	if order.TotalPrice.IsZero() {
		order.TotalPrice = models.SumLines(order.Items)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return order.Clone()
}

func (s *AdminService) UpdateOrder(id string, update models.OrderUpdate) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i] = update.Apply(s.orders[i])
			return s.orders[i].Clone(), true
		}
	}
	return models.Order{}, false
}

// SetOrderStatus overwrites the status without checking the transition.
func (s *AdminService) SetOrderStatus(id string, status models.OrderStatus) bool {
	if !status.Valid() {
		return false
	}
	_, ok := s.UpdateOrder(id, models.OrderUpdate{Status: &status})
	return ok
}

func (s *AdminService) DeleteOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}

// SearchOrders matches term against the order id and customer name and
// returns the newest orders first.
func (s *AdminService) SearchOrders(filter models.OrderFilter) []models.Order {
	term := strings.ToLower(strings.TrimSpace(filter.Term))

	results := []models.Order{}
	for _, o := range s.ListOrders() {
		if term != "" &&
			!strings.Contains(strings.ToLower(o.ID), term) &&
			!strings.Contains(strings.ToLower(o.UserName), term) {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		results = append(results, o)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results
}

func (s *AdminService) OrderCountByStatus(status models.OrderStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, o := range s.orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

// ============================================
// STATISTICS
// ============================================

// Stats aggregates the dashboard figures. Revenue counts every order that is
// not cancelled.
func (s *AdminService) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.Stats{
		Users:    len(s.users),
		Products: len(s.products),
		Orders:   len(s.orders),
		Revenue:  decimal.Zero,
	}
	for _, o := range s.orders {
		if o.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
		if o.Status != models.OrderStatusCancelled {
			stats.Revenue = stats.Revenue.Add(o.TotalPrice)
		}
	}
	return stats
}
