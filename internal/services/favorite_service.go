package services

import (
	"sync"

	"go-flowershop/internal/models"
)

// FavoriteService tracks liked products as an id set plus the matching
// records; both always hold the same members.
type FavoriteService struct {
	mu       sync.RWMutex
	ids      map[string]struct{}
	products []models.Product
}

func NewFavoriteService() *FavoriteService {
	return &FavoriteService{
		ids:      make(map[string]struct{}),
		products: []models.Product{},
	}
}

func (s *FavoriteService) IsFavorite(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[productID]
	return ok
}

// Toggle flips membership of product and reports whether it is now a favorite.
func (s *FavoriteService) Toggle(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[product.ID]; ok {
		s.removeLocked(product.ID)
		return false
	}

	s.ids[product.ID] = struct{}{}
	s.products = append(s.products, product)
	return true
}

func (s *FavoriteService) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *FavoriteService) removeLocked(productID string) {
	delete(s.ids, productID)
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	s.products = kept
}

// List returns the favorite records in the order they were added.
func (s *FavoriteService) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *FavoriteService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
