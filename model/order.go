package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is a placed order.
type Order struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	StoreID   int64           `json:"store_id"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UserName  string          `json:"user_name,omitempty"`
	StoreName string          `json:"store_name,omitempty"`
	Items     []OrderItem     `json:"items,omitempty"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ProductName string          `json:"product_name,omitempty"`
	Product     *Product        `json:"product,omitempty"`
}

// OrderLine is the product/quantity pair sent when creating an order.
type OrderLine struct {
	ProductID int64 `json:"product_id" validate:"positive"`
	Quantity  int   `json:"quantity" validate:"min:1"`
}
