package models

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryRedRose   Category = "red-rose"
	CategoryLotus     Category = "lotus"
	CategoryJasmine   Category = "jasmine"
	CategoryTulip     Category = "tulip"
	CategoryOrchid    Category = "orchid"
	CategorySunflower Category = "sunflower"

	// CategoryAll is the catalog filter value that matches every product.
	CategoryAll Category = "all"
)

// Categories lists the product categories in display order.
var Categories = []Category{
	CategoryRedRose,
	CategoryLotus,
	CategoryJasmine,
	CategoryTulip,
	CategoryOrchid,
	CategorySunflower,
}

var categoryLabels = map[Category]string{
	CategoryAll:       "Home",
	CategoryRedRose:   "Red Rose",
	CategoryLotus:     "Lotus",
	CategoryJasmine:   "Jasmine",
	CategoryTulip:     "Tulip",
	CategoryOrchid:    "Orchid",
	CategorySunflower: "Sunflower",
}

// Valid reports whether c is one of the fixed product categories.
// CategoryAll is a filter value, not a product category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) Label() string {
	return categoryLabels[c]
}

type CategoryOption struct {
	Key   Category `json:"key"`
	Label string   `json:"label"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Category    Category        `json:"category"`
	InStock     bool            `json:"in_stock"`
	Rating      float64         `json:"rating"`
}

// ProductUpdate carries the fields an admin edit touches; nil means unchanged.
type ProductUpdate struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"image_url"`
	Category    *Category        `json:"category"`
	InStock     *bool            `json:"in_stock"`
	Rating      *float64         `json:"rating"`
}

// Apply returns p with every non-nil field of u merged in. The id never changes.
func (u ProductUpdate) Apply(p Product) Product {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.Category != nil && u.Category.Valid() {
		p.Category = *u.Category
	}
	if u.InStock != nil {
		p.InStock = *u.InStock
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	return p
}

type StockFilter string

const (
	StockAny StockFilter = ""
	StockIn  StockFilter = "in-stock"
	StockOut StockFilter = "out-of-stock"
)

// ProductFilter narrows the admin product listing. Zero values match everything.
type ProductFilter struct {
	Term     string
	Category Category
	Stock    StockFilter
}
