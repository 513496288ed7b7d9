package services

import (
	"sync"

	"go-flowershop/internal/models"

	"github.com/shopspring/decimal"
)

// CartService keeps at most one line per product id.
type CartService struct {
	mu    sync.RWMutex
	lines []models.CartLine
}

func NewCartService() *CartService {
	return &CartService{
		lines: []models.CartLine{},
	}
}

// AddItem increments the line for product.ID by quantity, appending a new line
// when none exists. Non-positive quantities are ignored.
func (s *CartService) AddItem(product models.Product, quantity int) {
	if quantity <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			return
		}
	}

	s.lines = append(s.lines, models.CartLine{
		Product:  product,
		Quantity: quantity,
	})
}

func (s *CartService) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *CartService) removeLocked(productID string) {
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
}

// SetQuantity replaces the quantity of an existing line. A quantity <= 0
// removes the line.
func (s *CartService) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}

	for i, line := range s.lines {
		if line.Product.ID == productID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = []models.CartLine{}
}

// Lines returns a snapshot of the cart; later cart mutations do not affect it.
func (s *CartService) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Line returns the line for productID, if any.
func (s *CartService) Line(productID string) (models.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, line := range s.lines {
		if line.Product.ID == productID {
			return line, true
		}
	}
	return models.CartLine{}, false
}

func (s *CartService) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, line := range s.lines {
		n += line.Quantity
	}
	return n
}

func (s *CartService) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.SumLines(s.lines)
}

func (s *CartService) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines) == 0
}
