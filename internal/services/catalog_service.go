package services

import (
	"sync"

	"go-flowershop/internal/models"
)

// CatalogService holds the browsable product list and the active category filter.
type CatalogService struct {
	mu       sync.RWMutex
	products []models.Product
	filter   models.Category
}

func NewCatalogService(products []models.Product) *CatalogService {
	own := make([]models.Product, len(products))
	copy(own, products)
	return &CatalogService{
		products: own,
		filter:   models.CategoryAll,
	}
}

// List returns every product in insertion order.
func (s *CatalogService) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// SetFilter changes the active filter. Values other than CategoryAll or a known
// category are ignored.
func (s *CatalogService) SetFilter(category models.Category) {
	if category != models.CategoryAll && !category.Valid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = category
}

func (s *CatalogService) Filter() models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Filtered returns the products matching the active filter, order preserved.
func (s *CatalogService) Filtered() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.filter == models.CategoryAll {
		out := make([]models.Product, len(s.products))
		copy(out, s.products)
		return out
	}

	results := []models.Product{}
	for _, product := range s.products {
		if product.Category == s.filter {
			results = append(results, product)
		}
	}
	return results
}

func (s *CatalogService) ByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.products {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}

// Categories lists the filter options, "all" first.
func (s *CatalogService) Categories() []models.CategoryOption {
	options := make([]models.CategoryOption, 0, len(models.Categories)+1)
	options = append(options, models.CategoryOption{Key: models.CategoryAll, Label: models.CategoryAll.Label()})
	for _, c := range models.Categories {
		options = append(options, models.CategoryOption{Key: c, Label: c.Label()})
	}
	return options
}
