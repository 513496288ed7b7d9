package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id,omitempty"`
	UserName        string          `json:"user_name,omitempty"`
	Items           []CartLine      `json:"items"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	ShippingAddress string          `json:"shipping_address"`
}

// ItemCount is the number of units across all lines.
func (o Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// Clone returns a copy of o that shares no slice with it.
func (o Order) Clone() Order {
	o.Items = CloneLines(o.Items)
	return o
}

// CloneLines copies a line slice so the result can be stored independently.
func CloneLines(lines []CartLine) []CartLine {
	if lines == nil {
		return nil
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}

// SumLines is Σ price × quantity over lines.
func SumLines(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// OrderUpdate is the admin partial edit of an order.
type OrderUpdate struct {
	Status          *OrderStatus `json:"status"`
	ShippingAddress *string      `json:"shipping_address"`
}

func (u OrderUpdate) Apply(o Order) Order {
	if u.Status != nil && u.Status.Valid() {
		o.Status = *u.Status
	}
	if u.ShippingAddress != nil {
		o.ShippingAddress = *u.ShippingAddress
	}
	return o
}

// OrderFilter narrows the admin order listing. Zero values match everything.
type OrderFilter struct {
	Term   string
	Status OrderStatus
}

type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	Users         int             `json:"users"`
	Products      int             `json:"products"`
	Orders        int             `json:"orders"`
	PendingOrders int             `json:"pending_orders"`
	Revenue       decimal.Decimal `json:"revenue"`
}
