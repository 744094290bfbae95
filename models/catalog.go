package models

import "time"

// Catalog statuses shared by brands, categories, products and variations.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Brand struct {
	BrandID   int64  `json:"brandId"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (b Brand) EntityID() int64        { return b.BrandID }
func (b Brand) CreatedTime() time.Time { return ParseTimestamp(b.CreatedAt) }
func (b Brand) EntityStatus() string   { return b.Status }

type BrandInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Category groups products. BrandAssigned holds the brand name, not its id.
type Category struct {
	CategoryID    int64  `json:"categoryId"`
	Name          string `json:"name"`
	BrandAssigned string `json:"brandAssigned,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

func (c Category) EntityID() int64        { return c.CategoryID }
func (c Category) CreatedTime() time.Time { return ParseTimestamp(c.CreatedAt) }
func (c Category) EntityStatus() string   { return c.Status }

type CategoryInput struct {
	Name          string `json:"name"`
	BrandAssigned string `json:"brandAssigned,omitempty"`
	Status        string `json:"status"`
}

// Product is a sellable item. Pieces is the quantity in stock.
type Product struct {
	ProductID        int64   `json:"productId"`
	Name             string  `json:"name"`
	CategoryAssigned string  `json:"categoryAssigned"`
	Price            float64 `json:"price"`
	Pieces           int64   `json:"pieces"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"createdAt"`
}

func (p Product) EntityID() int64        { return p.ProductID }
func (p Product) CreatedTime() time.Time { return ParseTimestamp(p.CreatedAt) }
func (p Product) EntityStatus() string   { return p.Status }

type ProductInput struct {
	Name             string  `json:"name"`
	CategoryAssigned string  `json:"categoryAssigned"`
	Price            float64 `json:"price"`
	Pieces           int64   `json:"pieces"`
	Status           string  `json:"status"`
}

// Variation is a priced variant of a product (size, colour, pack).
type Variation struct {
	VariationID     int64   `json:"variationId"`
	Name            string  `json:"name"`
	ProductAssigned string  `json:"productAssigned"`
	Pieces          int64   `json:"pieces"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

func (v Variation) EntityID() int64        { return v.VariationID }
func (v Variation) CreatedTime() time.Time { return ParseTimestamp(v.CreatedAt) }
func (v Variation) EntityStatus() string   { return v.Status }

type VariationInput struct {
	Name            string  `json:"name"`
	ProductAssigned string  `json:"productAssigned"`
	Pieces          int64   `json:"pieces"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
}
