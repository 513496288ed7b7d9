// Package seed holds the fixture data every storefront workspace starts from.
// Each accessor returns fresh copies so callers may mutate freely.
package seed

import (
	"time"

	"go-flowershop/internal/models"

	"github.com/shopspring/decimal"
)

const DefaultShippingAddress = "123 Flower Street, Garden City"

type Fixtures struct {
	Products []models.Product
	Users    []models.User
	Orders   []models.Order
}

// Default returns the stock storefront fixtures.
func Default() Fixtures {
	return Fixtures{
		Products: Products(),
		Users:    Users(),
		Orders:   Orders(),
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Products() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Minimal Red Tulip Flower Vase",
			Price:       price("18.99"),
			Description: "A single red tulip in a slim glass vase, made for desks and window sills.",
			ImageURL:    "/assets/1.jpg",
			Category:    models.CategoryTulip,
			InStock:     true,
			Rating:      4.5,
		},
		{
			ID:          "2",
			Name:        "Beautiful Red Rose Bouquet",
			Price:       price("29.99"),
			Description: "A stunning bouquet of fresh red roses, perfect for expressing love and admiration.",
			ImageURL:    "/assets/2.webp",
			Category:    models.CategoryRedRose,
			InStock:     true,
			Rating:      4.8,
		},
		{
			ID:          "3",
			Name:        "Pink Lotus Arrangement",
			Price:       price("35.99"),
			Description: "Elegant pink lotus flowers symbolizing purity and enlightenment.",
			ImageURL:    "/assets/3.jpg",
			Category:    models.CategoryLotus,
			InStock:     true,
			Rating:      4.6,
		},
		{
			ID:          "4",
			Name:        "Fresh Jasmine Bundle",
			Price:       price("15.99"),
			Description: "Fragrant jasmine flowers known for their sweet scent and delicate appearance.",
			ImageURL:    "/assets/5.jpeg",
			Category:    models.CategoryJasmine,
			InStock:     true,
			Rating:      4.3,
		},
		{
			ID:          "5",
			Name:        "Purple Orchid Collection",
			Price:       price("45.99"),
			Description: "Exotic purple orchids that add elegance to any space.",
			ImageURL:    "/assets/6.jpg",
			Category:    models.CategoryOrchid,
			InStock:     true,
			Rating:      4.9,
		},
		{
			ID:          "6",
			Name:        "Bright Sunflower Pot",
			Price:       price("22.99"),
			Description: "Cheerful sunflowers that bring warmth and happiness.",
			ImageURL:    "/assets/7.jpg",
			Category:    models.CategorySunflower,
			InStock:     true,
			Rating:      4.4,
		},
		{
			ID:          "7",
			Name:        "White Rose Wedding Set",
			Price:       price("89.99"),
			Description: "Elegant white roses perfect for weddings and special occasions.",
			ImageURL:    "/assets/8.jpg",
			Category:    models.CategoryRedRose,
			InStock:     true,
			Rating:      4.7,
		},
		{
			ID:          "8",
			Name:        "Mixed Tulip Garden",
			Price:       price("32.99"),
			Description: "A colorful mix of tulips to brighten any room.",
			ImageURL:    "/assets/9.jpg",
			Category:    models.CategoryTulip,
			InStock:     false,
			Rating:      4.2,
		},
	}
}

// DefaultUser is the identity handed out for any non-admin mock login.
func DefaultUser() models.User {
	return models.User{
		ID:        "1",
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		Role:      models.RoleUser,
		Phone:     "+1 234 567 890",
		Address:   "123 Flower Street, Garden City, GC 12345",
		AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150",
	}
}

func Admin() models.User {
	return models.User{
		ID:      "admin-1",
		Name:    "Admin",
		Email:   "admin@flowershop.com",
		Role:    models.RoleAdmin,
		Phone:   "+1 000 000 000",
		Address: "Admin Office, Flower Shop HQ",
	}
}

func Users() []models.User {
	return []models.User{
		DefaultUser(),
		{
			ID:      "2",
			Name:    "Jane Smith",
			Email:   "jane.smith@example.com",
			Role:    models.RoleUser,
			Phone:   "+1 234 567 891",
			Address: "456 Garden Ave, Bloom City, BC 67890",
		},
		{
			ID:      "3",
			Name:    "Bob Wilson",
			Email:   "bob.wilson@example.com",
			Role:    models.RoleUser,
			Phone:   "+1 234 567 892",
			Address: "789 Rose Lane, Petal Town, PT 11111",
		},
	}
}

func Orders() []models.Order {
	p := Products()
	day := func(d int) time.Time { return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC) }

	return []models.Order{
		{
			ID:       "ORD-001",
			UserID:   "1",
			UserName: "John Doe",
			Items: []models.CartLine{
				{Product: p[0], Quantity: 2},
				{Product: p[1], Quantity: 1},
			},
			TotalPrice:      price("67.97"),
			Status:          models.OrderStatusDelivered,
			CreatedAt:       day(5),
			ShippingAddress: "123 Flower Street, Garden City, GC 12345",
		},
		{
			ID:       "ORD-002",
			UserID:   "2",
			UserName: "Jane Smith",
			Items: []models.CartLine{
				{Product: p[4], Quantity: 1},
			},
			TotalPrice:      price("45.99"),
			Status:          models.OrderStatusShipped,
			CreatedAt:       day(6),
			ShippingAddress: "456 Garden Ave, Bloom City, BC 67890",
		},
		{
			ID:       "ORD-003",
			UserID:   "1",
			UserName: "John Doe",
			Items: []models.CartLine{
				{Product: p[2], Quantity: 3},
				{Product: p[5], Quantity: 2},
			},
			TotalPrice:      price("153.95"),
			Status:          models.OrderStatusPending,
			CreatedAt:       day(7),
			ShippingAddress: "123 Flower Street, Garden City, GC 12345",
		},
	}
}
