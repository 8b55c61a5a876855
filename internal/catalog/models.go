package catalog

import (
	"storefront/internal/commerce"
	"storefront/internal/i18n"
)

// Query is a product listing request.
type Query struct {
	Term           string
	CollectionSlug string
	FacetValueIDs  []string
	Sort           commerce.SortOrder
	Page           int
}

type ListItem struct {
	ProductID string      `json:"product_id"`
	Name      string      `json:"name"`
	Slug      string      `json:"slug"`
	ImageURL  string      `json:"image_url,omitempty"`
	Price     i18n.Money  `json:"price"`
	PriceTo   *i18n.Money `json:"price_to,omitempty"`
}

type FacetOption struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

type FacetGroup struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Code    string        `json:"code"`
	Options []FacetOption `json:"options"`
}

// Listing is the product listing page payload.
type Listing struct {
	Items      []ListItem           `json:"items"`
	Facets     []FacetGroup         `json:"facets"`
	Collection *commerce.Collection `json:"collection,omitempty"`
	TotalItems int                  `json:"total_items"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

type VariantView struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	SKU        string     `json:"sku"`
	Price      i18n.Money `json:"price"`
	StockLevel string     `json:"stock_level"`
	InCart     int        `json:"in_cart"`
}

// ProductDetail is the product page payload.
type ProductDetail struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Slug        string                `json:"slug"`
	Description string                `json:"description"`
	Images      []string              `json:"images"`
	Variants    []VariantView         `json:"variants"`
	Breadcrumbs []commerce.Breadcrumb `json:"breadcrumbs"`
	Facets      []commerce.FacetValue `json:"facets"`
}
