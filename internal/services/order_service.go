package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go-flowershop/internal/models"
	"go-flowershop/internal/seed"
)

var (
	ErrEmptyOrder       = errors.New("order has no items")
	ErrNotAuthenticated = errors.New("sign in required")
)

const orderIDPrefix = "ORD-"

// OrderService holds the order history, most recent first.
type OrderService struct {
	mu     sync.RWMutex
	orders []models.Order
	seq    int
	now    func() time.Time

	stats struct {
		sync.RWMutex
		createdOrders  int64
		rejectedOrders int64
	}
}

// NewOrderService starts from initial (kept in the given order). Generated ids
// continue after the highest ORD-NNN found there, so they never repeat.
func NewOrderService(initial []models.Order) *OrderService {
	orders := make([]models.Order, 0, len(initial))
	seq := 0
	for _, o := range initial {
		orders = append(orders, o.Clone())
		if n, ok := parseOrderSeq(o.ID); ok && n > seq {
			seq = n
		}
	}
	return &OrderService{
		orders: orders,
		seq:    seq,
		now:    time.Now,
	}
}

func parseOrderSeq(id string) (int, bool) {
	if !strings.HasPrefix(id, orderIDPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, orderIDPrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Create records a pending order for lines and returns it. The lines are
// copied, so later cart changes never reach the order.
func (s *OrderService) Create(lines []models.CartLine, shippingAddress string) (models.Order, error) {
	return s.create(lines, shippingAddress, nil)
}

func (s *OrderService) create(lines []models.CartLine, shippingAddress string, customer *models.User) (models.Order, error) {
	if len(lines) == 0 {
		s.stats.Lock()
		s.stats.rejectedOrders++
		s.stats.Unlock()
		return models.Order{}, ErrEmptyOrder
	}

	items := models.CloneLines(lines)

	s.mu.Lock()
	s.seq++
	order := models.Order{
		ID:              fmt.Sprintf("%s%03d", orderIDPrefix, s.seq),
		Items:           items,
		TotalPrice:      models.SumLines(items),
		Status:          models.OrderStatusPending,
		CreatedAt:       s.now(),
		ShippingAddress: shippingAddress,
	}
	if customer != nil {
		order.UserID = customer.ID
		order.UserName = customer.Name
	}
	s.orders = append([]models.Order{order}, s.orders...)
	s.mu.Unlock()

	s.stats.Lock()
	s.stats.createdOrders++
	s.stats.Unlock()

	return order.Clone(), nil
}

// Checkout turns the cart into an order for the signed-in user and empties the
// cart. The order ships to address when given, else to the user's address,
// else to the default shop address.
func (s *OrderService) Checkout(cart *CartService, session *SessionService, address string) (models.Order, error) {
	user, ok := session.Current()
	if !ok {
		return models.Order{}, ErrNotAuthenticated
	}

	if address == "" {
		address = user.Address
	}
	if address == "" {
		address = seed.DefaultShippingAddress
	}

	order, err := s.create(cart.Lines(), address, &user)
	if err != nil {
		return models.Order{}, err
	}
	cart.Clear()
	return order, nil
}

// ListAll returns the orders in store order.
func (s *OrderService) ListAll() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

func (s *OrderService) ByID(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return models.Order{}, false
}

// SetStatus overwrites the status of order id; any status may follow any
// other. Unknown statuses and ids are ignored.
func (s *OrderService) SetStatus(id string, status models.OrderStatus) bool {
	if !status.Valid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return true
		}
	}
	return false
}

func (s *OrderService) Delete(id string) bool {
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

// Statistics
func (s *OrderService) GetStats() map[string]int64 {
	s.stats.RLock()
	defer s.stats.RUnlock()

	return map[string]int64{
		"created_orders":  s.stats.createdOrders,
		"rejected_orders": s.stats.rejectedOrders,
	}
}
