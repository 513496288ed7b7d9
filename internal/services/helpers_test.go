package services

import (
	"go-flowershop/internal/models"

	"github.com/shopspring/decimal"
)

func product(id string, price string, category models.Category) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    decimal.RequireFromString(price),
		Category: category,
		InStock:  true,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
