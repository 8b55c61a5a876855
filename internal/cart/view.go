package cart

import (
	"github.com/shopspring/decimal"

	"storefront/internal/commerce"
	"storefront/internal/i18n"
	"storefront/internal/loyalty"
)

type LineView struct {
	ID           string     `json:"id"`
	VariantID    string     `json:"variant_id"`
	ProductName  string     `json:"product_name"`
	VariantName  string     `json:"variant_name"`
	Slug         string     `json:"slug"`
	SKU          string     `json:"sku"`
	ImageURL     string     `json:"image_url,omitempty"`
	Quantity     int        `json:"quantity"`
	UnitPrice    i18n.Money `json:"unit_price"`
	LinePrice    i18n.Money `json:"line_price"`
	CouponCode   string     `json:"coupon_code,omitempty"`
	IsCouponItem bool       `json:"is_coupon_item"`
}

type DiscountView struct {
	Description string     `json:"description"`
	Amount      i18n.Money `json:"amount"`
}

// OrderView is the cart/checkout representation of an order.
type OrderView struct {
	ID                string                  `json:"id"`
	Code              string                  `json:"code"`
	State             string                  `json:"state"`
	Lines             []LineView              `json:"lines"`
	TotalQuantity     int                     `json:"total_quantity"`
	SubTotal          i18n.Money              `json:"sub_total"`
	Shipping          i18n.Money              `json:"shipping"`
	Total             i18n.Money              `json:"total"`
	Discounts         []DiscountView          `json:"discounts,omitempty"`
	CouponCodes       []string                `json:"coupon_codes"`
	LoyaltyPointsUsed int                     `json:"loyalty_points_used"`
	EarnPreview       int                     `json:"earn_preview"`
	ShippingMethod    string                  `json:"shipping_method,omitempty"`
	ShippingAddress   *commerce.OrderAddress  `json:"shipping_address,omitempty"`
	BillingAddress    *commerce.OrderAddress  `json:"billing_address,omitempty"`
	Customer          *commerce.OrderCustomer `json:"customer,omitempty"`
}

// NewOrderView shapes an engine order for the view layer. A nil order yields
// nil (empty cart).
func NewOrderView(o *commerce.Order, locale string, earnRate decimal.Decimal) *OrderView {
	if o == nil {
		return nil
	}
	money := func(m commerce.Money) i18n.Money {
		return i18n.NewMoney(locale, o.CurrencyCode, int64(m))
	}
	v := &OrderView{
		ID:                o.ID,
		Code:              o.Code,
		State:             o.State,
		Lines:             make([]LineView, 0, len(o.Lines)),
		TotalQuantity:     o.TotalQuantity,
		SubTotal:          money(o.SubTotalWithTax),
		Shipping:          money(o.ShippingWithTax),
		Total:             money(o.TotalWithTax),
		CouponCodes:       append([]string{}, o.CouponCodes...),
		LoyaltyPointsUsed: o.CustomFields.LoyaltyPointsUsed,
		EarnPreview:       loyalty.EarnPoints(int64(o.SubTotalWithTax), earnRate),
		ShippingAddress:   o.ShippingAddress,
		BillingAddress:    o.BillingAddress,
		Customer:          o.Customer,
	}
	for _, l := range o.Lines {
		lv := LineView{
			ID:           l.ID,
			VariantID:    l.ProductVariant.ID,
			ProductName:  l.ProductVariant.Product.Name,
			VariantName:  l.ProductVariant.Name,
			Slug:         l.ProductVariant.Product.Slug,
			SKU:          l.ProductVariant.SKU,
			Quantity:     l.Quantity,
			UnitPrice:    money(l.UnitPriceWithTax),
			LinePrice:    money(l.LinePriceWithTax),
			CouponCode:   l.CouponCode(),
			IsCouponItem: l.CouponCode() != "",
		}
		if l.FeaturedAsset != nil {
			lv.ImageURL = l.FeaturedAsset.Preview
		}
		v.Lines = append(v.Lines, lv)
	}
	for _, d := range o.Discounts {
		v.Discounts = append(v.Discounts, DiscountView{Description: d.Description, Amount: money(d.AmountWithTax)})
	}
	if len(o.ShippingLines) > 0 {
		v.ShippingMethod = o.ShippingLines[0].ShippingMethod.Name
	}
	return v
}
