package coupon

import (
	"time"

	"storefront/internal/commerce"
)

var testNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func regularLine(id, variantID string, qty int, price commerce.Money) commerce.OrderLine {
	return commerce.OrderLine{
		ID:               id,
		Quantity:         qty,
		LinePrice:        price,
		LinePriceWithTax: price + price/10,
		ProductVariant:   commerce.ProductVariant{ID: variantID},
	}
}

func couponLine(id, variantID, code string) commerce.OrderLine {
	return commerce.OrderLine{
		ID:             id,
		Quantity:       1,
		ProductVariant: commerce.ProductVariant{ID: variantID},
		CustomFields:   commerce.OrderLineCustomFields{CouponCode: strPtr(code)},
	}
}

func arg(name, value string) commerce.ConfigArg {
	return commerce.ConfigArg{Name: name, Value: value}
}

func giftPromotion(code string, minimum string, gifts string) commerce.Promotion {
	p := commerce.Promotion{
		ID:         "promo-" + code,
		Name:       code + " gift",
		CouponCode: code,
		Enabled:    true,
		Actions: []commerce.ConfigurableOperation{{
			Code: "free_gift",
			Args: []commerce.ConfigArg{arg("productVariantIds", gifts)},
		}},
	}
	if minimum != "" {
		p.Conditions = append(p.Conditions, commerce.ConfigurableOperation{
			Code: "minimum_order_amount",
			Args: []commerce.ConfigArg{arg("amount", minimum), arg("taxInclusive", "false")},
		})
	}
	return p
}
