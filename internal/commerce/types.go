package commerce

import (
	"strconv"
	"time"
)

// Money is an amount in the currency's minor units, as the engine reports it.
type Money int64

// Asset is a product image.
type Asset struct {
	ID      string `json:"id"`
	Preview string `json:"preview"`
}

// -----------------------------------------------------------------------------
// Catalog
// -----------------------------------------------------------------------------

type ProductVariant struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Price        Money  `json:"price"`
	PriceWithTax Money  `json:"priceWithTax"`
	CurrencyCode string `json:"currencyCode"`
	StockLevel   string `json:"stockLevel"`
	Product      struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"product"`
}

type Breadcrumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Collection struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Slug          string       `json:"slug"`
	Description   string       `json:"description,omitempty"`
	FeaturedAsset *Asset       `json:"featuredAsset,omitempty"`
	Parent        *Breadcrumb  `json:"parent,omitempty"`
	Breadcrumbs   []Breadcrumb `json:"breadcrumbs,omitempty"`
}

type FacetValue struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	Facet struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"facet"`
}

type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	FeaturedAsset *Asset           `json:"featuredAsset"`
	Assets        []Asset          `json:"assets"`
	Variants      []ProductVariant `json:"variants"`
	Collections   []Collection     `json:"collections"`
	FacetValues   []FacetValue     `json:"facetValues"`
}

// SortOrder is the search sort option.
type SortOrder string

const (
	SortRelevance SortOrder = ""
	SortNameAsc   SortOrder = "name_asc"
	SortNameDesc  SortOrder = "name_desc"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// SearchInput mirrors the engine's SearchInput.
type SearchInput struct {
	Term           string
	CollectionSlug string
	FacetValueIDs  []string
	Sort           SortOrder
	Skip           int
	Take           int
}

// PriceRange covers both SinglePrice and PriceRange union members.
type PriceRange struct {
	Value Money `json:"value"`
	Min   Money `json:"min"`
	Max   Money `json:"max"`
}

// Low returns the lowest price in the range.
func (p PriceRange) Low() Money {
	if p.Min == 0 && p.Max == 0 {
		return p.Value
	}
	return p.Min
}

type SearchItem struct {
	ProductID    string     `json:"productId"`
	ProductName  string     `json:"productName"`
	Slug         string     `json:"slug"`
	ProductAsset *Asset     `json:"productAsset"`
	PriceWithTax PriceRange `json:"priceWithTax"`
	CurrencyCode string     `json:"currencyCode"`
}

type FacetValueCount struct {
	Count      int        `json:"count"`
	FacetValue FacetValue `json:"facetValue"`
}

type SearchResult struct {
	Items       []SearchItem      `json:"items"`
	TotalItems  int               `json:"totalItems"`
	FacetValues []FacetValueCount `json:"facetValues"`
}

// -----------------------------------------------------------------------------
// Orders
// -----------------------------------------------------------------------------

// Order states the storefront cares about.
const (
	StateAddingItems       = "AddingItems"
	StateArrangingPayment  = "ArrangingPayment"
	StatePaymentAuthorized = "PaymentAuthorized"
	StatePaymentSettled    = "PaymentSettled"
)

// OrderLineCustomFields carries the coupon tag set when a coupon added the line.
type OrderLineCustomFields struct {
	CouponCode *string `json:"couponCode"`
}

type OrderLine struct {
	ID               string                `json:"id"`
	Quantity         int                   `json:"quantity"`
	UnitPrice        Money                 `json:"unitPrice"`
	UnitPriceWithTax Money                 `json:"unitPriceWithTax"`
	LinePrice        Money                 `json:"linePrice"`
	LinePriceWithTax Money                 `json:"linePriceWithTax"`
	FeaturedAsset    *Asset                `json:"featuredAsset"`
	ProductVariant   ProductVariant        `json:"productVariant"`
	CustomFields     OrderLineCustomFields `json:"customFields"`
}

// CouponCode returns the code that added the line, or empty for regular lines.
func (l OrderLine) CouponCode() string {
	if l.CustomFields.CouponCode == nil {
		return ""
	}
	return *l.CustomFields.CouponCode
}

type Discount struct {
	Description      string `json:"description"`
	AmountWithTax    Money  `json:"amountWithTax"`
	Type             string `json:"type"`
	AdjustmentSource string `json:"adjustmentSource"`
}

type ShippingLine struct {
	ShippingMethod struct {
		ID   string `json:"id"`
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"shippingMethod"`
	PriceWithTax Money `json:"priceWithTax"`
}

type OrderAddress struct {
	FullName    string `json:"fullName"`
	Company     string `json:"company,omitempty"`
	StreetLine1 string `json:"streetLine1"`
	StreetLine2 string `json:"streetLine2,omitempty"`
	City        string `json:"city"`
	Province    string `json:"province,omitempty"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type Payment struct {
	ID            string `json:"id"`
	Method        string `json:"method"`
	Amount        Money  `json:"amount"`
	State         string `json:"state"`
	TransactionID string `json:"transactionId"`
}

type OrderCustomer struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type OrderCustomFields struct {
	LoyaltyPointsUsed int `json:"loyaltyPointsUsed"`
}

type Order struct {
	ID              string            `json:"id"`
	Code            string            `json:"code"`
	State           string            `json:"state"`
	Active          bool              `json:"active"`
	CreatedAt       time.Time         `json:"createdAt"`
	OrderPlacedAt   *time.Time        `json:"orderPlacedAt"`
	CurrencyCode    string            `json:"currencyCode"`
	TotalQuantity   int               `json:"totalQuantity"`
	SubTotal        Money             `json:"subTotal"`
	SubTotalWithTax Money             `json:"subTotalWithTax"`
	Shipping        Money             `json:"shipping"`
	ShippingWithTax Money             `json:"shippingWithTax"`
	Total           Money             `json:"total"`
	TotalWithTax    Money             `json:"totalWithTax"`
	CouponCodes     []string          `json:"couponCodes"`
	Discounts       []Discount        `json:"discounts"`
	Lines           []OrderLine       `json:"lines"`
	ShippingLines   []ShippingLine    `json:"shippingLines"`
	ShippingAddress *OrderAddress     `json:"shippingAddress"`
	BillingAddress  *OrderAddress     `json:"billingAddress"`
	Customer        *OrderCustomer    `json:"customer"`
	Payments        []Payment         `json:"payments"`
	CustomFields    OrderCustomFields `json:"customFields"`
}

// Line returns the line with the given id.
func (o *Order) Line(id string) (OrderLine, bool) {
	if o == nil {
		return OrderLine{}, false
	}
	for _, l := range o.Lines {
		if l.ID == id {
			return l, true
		}
	}
	return OrderLine{}, false
}

// HasCoupon reports whether code is applied to the order.
func (o *Order) HasCoupon(code string) bool {
	if o == nil {
		return false
	}
	for _, c := range o.CouponCodes {
		if c == code {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool {
	return o == nil || len(o.Lines) == 0
}

type ShippingMethodQuote struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceWithTax Money  `json:"priceWithTax"`
}

type PaymentMethodQuote struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	IsEligible         bool   `json:"isEligible"`
	EligibilityMessage string `json:"eligibilityMessage"`
}

// -----------------------------------------------------------------------------
// Customers
// -----------------------------------------------------------------------------

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Address struct {
	ID                     string  `json:"id"`
	FullName               string  `json:"fullName"`
	Company                string  `json:"company"`
	StreetLine1            string  `json:"streetLine1"`
	StreetLine2            string  `json:"streetLine2"`
	City                   string  `json:"city"`
	Province               string  `json:"province"`
	PostalCode             string  `json:"postalCode"`
	Country                Country `json:"country"`
	PhoneNumber            string  `json:"phoneNumber"`
	DefaultShippingAddress bool    `json:"defaultShippingAddress"`
	DefaultBillingAddress  bool    `json:"defaultBillingAddress"`
}

type Customer struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
	PhoneNumber  string    `json:"phoneNumber"`
	Addresses    []Address `json:"addresses"`
}

type CurrentUser struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
}

// AddressInput is CreateAddressInput / UpdateAddressInput.
type AddressInput struct {
	ID                     string `json:"id,omitempty"`
	FullName               string `json:"fullName,omitempty"`
	Company                string `json:"company,omitempty"`
	StreetLine1            string `json:"streetLine1"`
	StreetLine2            string `json:"streetLine2,omitempty"`
	City                   string `json:"city,omitempty"`
	Province               string `json:"province,omitempty"`
	PostalCode             string `json:"postalCode,omitempty"`
	CountryCode            string `json:"countryCode"`
	PhoneNumber            string `json:"phoneNumber,omitempty"`
	DefaultShippingAddress *bool  `json:"defaultShippingAddress,omitempty"`
	DefaultBillingAddress  *bool  `json:"defaultBillingAddress,omitempty"`
}

// CustomerInput is CreateCustomerInput / UpdateCustomerInput.
type CustomerInput struct {
	Title        string `json:"title,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

type RegisterInput struct {
	EmailAddress string `json:"emailAddress"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Password     string `json:"password"`
}

type OrderList struct {
	Items      []Order `json:"items"`
	TotalItems int     `json:"totalItems"`
}

// -----------------------------------------------------------------------------
// Promotions
// -----------------------------------------------------------------------------

type ConfigArg struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ConfigurableOperation is a promotion condition or action.
type ConfigurableOperation struct {
	Code string      `json:"code"`
	Args []ConfigArg `json:"args"`
}

// Arg returns the raw string value of a named argument.
func (op ConfigurableOperation) Arg(name string) (string, bool) {
	for _, a := range op.Args {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// IntArg parses a named integer argument.
func (op ConfigurableOperation) IntArg(name string) (int64, bool) {
	v, ok := op.Arg(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// BoolArg parses a named boolean argument.
func (op ConfigurableOperation) BoolArg(name string) bool {
	v, ok := op.Arg(name)
	if !ok {
		return false
	}
	b, _ := strconv.ParseBool(v)
	return b
}

// Promotion is a coupon promotion as listed by the coupon plugin.
type Promotion struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	CouponCode string                  `json:"couponCode"`
	Enabled    bool                    `json:"enabled"`
	StartsAt   *time.Time              `json:"startsAt"`
	EndsAt     *time.Time              `json:"endsAt"`
	Conditions []ConfigurableOperation `json:"conditions"`
	Actions    []ConfigurableOperation `json:"actions"`
}

// -----------------------------------------------------------------------------
// Loyalty
// -----------------------------------------------------------------------------

type LoyaltyTransaction struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	Points      int       `json:"points"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	OrderCode   string    `json:"orderCode"`
}

type LoyaltyTransactionList struct {
	Items      []LoyaltyTransaction `json:"items"`
	TotalItems int                  `json:"totalItems"`
}
