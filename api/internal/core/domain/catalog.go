package domain

import (
	"context"
	"time"
)

// Product is read-only from this service's perspective: it is consumed
// to render the catalog and to enrich outbound WhatsApp messages.
type Product struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	ShortDescription string         `json:"short_description,omitempty"`
	Price            *float64       `json:"price"`
	DiscountPrice    *float64       `json:"discount_price"`
	CategoryID       *string        `json:"category_id"`
	Images           []string       `json:"images"`
	Specifications   map[string]any `json:"specifications"`
	Materials        []string       `json:"materials"`
	Colors           []string       `json:"colors"`
	IsFeatured       bool           `json:"is_featured"`
	IsAvailable      bool           `json:"is_available"`
	StockQuantity    int            `json:"stock_quantity"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CatalogRepository covers every read path of the public site. All of it
// runs on the restricted handle; the core never writes products.
type CatalogRepository interface {
	ListAvailableProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	CountProducts(ctx context.Context) (int64, error)
}
