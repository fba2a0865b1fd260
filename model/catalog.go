package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductImage is an image attached to a product.
type ProductImage struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	SecureURL    string    `json:"secure_url"`
	PublicID     string    `json:"public_id"`
	IsThumbnail  bool      `json:"is_thumbnail"`
	Type         string    `json:"type"`
	ResourceType string    `json:"resource_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductStockByStore is the stock of a product in a single store.
type ProductStockByStore struct {
	StoreID   int64  `json:"store_id"`
	StoreName string `json:"store_name"`
	Quantity  int    `json:"quantity"`
}

// Product is a catalog item.
type Product struct {
	ID                   int64                 `json:"id"`
	Name                 string                `json:"name"`
	Description          string                `json:"description,omitempty"`
	Price                decimal.Decimal       `json:"price"`
	SKU                  string                `json:"sku,omitempty"`
	CategoryID           *int64                `json:"category_id"`
	CategoryName         string                `json:"category_name,omitempty"`
	TotalStock           int                   `json:"total_stock"`
	Status               Status                `json:"status"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
	Images               []ProductImage        `json:"images,omitempty"`
	ThumbnailURL         *string               `json:"thumbnail_url,omitempty"`
	StockByStore         []ProductStockByStore `json:"stock_by_store,omitempty"`
	StockInSelectedStore *int                  `json:"stock_in_selected_store,omitempty"`
}

// Category groups products.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Store is a physical branch that holds stock and fulfils orders.
type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
