package coupon

import (
	"time"

	"storefront/internal/commerce"
)

// Reason explains why a code or line is removed.
type Reason string

const (
	ReasonOnlyCouponItems        Reason = "only_coupon_items"
	ReasonCouponNotApplied       Reason = "coupon_not_applied"
	ReasonCouponExpired          Reason = "coupon_expired"
	ReasonBelowMinimumAmount     Reason = "below_minimum_amount"
	ReasonProductsConditionUnmet Reason = "products_condition_unmet"
)

type CodeRemoval struct {
	Code   string `json:"code"`
	Reason Reason `json:"reason"`
}

type LineRemoval struct {
	LineID     string `json:"line_id"`
	VariantID  string `json:"variant_id"`
	CouponCode string `json:"coupon_code"`
	Reason     Reason `json:"reason"`
}

// Removals is the outcome of planning: codes to remove first, then lines.
type Removals struct {
	Codes []CodeRemoval `json:"codes,omitempty"`
	Lines []LineRemoval `json:"lines,omitempty"`
}

func (r Removals) Empty() bool {
	return len(r.Codes) == 0 && len(r.Lines) == 0
}

// Plan decides which applied coupon codes and coupon-added lines must go.
// Coupon codes without a known rule are left to the engine.
func Plan(order *commerce.Order, rules Rules, now time.Time) Removals {
	var out Removals
	if order.IsEmpty() {
		return out
	}

	var couponLines []commerce.OrderLine
	regular := 0
	for _, l := range order.Lines {
		if l.CouponCode() != "" {
			couponLines = append(couponLines, l)
		} else {
			regular++
		}
	}

	if regular == 0 {
		for _, code := range uniqueCodes(order.CouponCodes) {
			out.Codes = append(out.Codes, CodeRemoval{Code: code, Reason: ReasonOnlyCouponItems})
		}
		for _, l := range couponLines {
			out.Lines = append(out.Lines, lineRemoval(l, ReasonOnlyCouponItems))
		}
		return out
	}

	removed := make(map[string]Reason)
	for _, code := range uniqueCodes(order.CouponCodes) {
		rule, ok := rules[code]
		if !ok {
			continue
		}
		if reason := Evaluate(order, rule, now); reason != "" {
			removed[code] = reason
			out.Codes = append(out.Codes, CodeRemoval{Code: code, Reason: reason})
		}
	}

	for _, l := range couponLines {
		code := l.CouponCode()
		if reason, ok := removed[code]; ok {
			out.Lines = append(out.Lines, lineRemoval(l, reason))
			continue
		}
		if !order.HasCoupon(code) {
			out.Lines = append(out.Lines, lineRemoval(l, ReasonCouponNotApplied))
		}
	}
	return out
}

// Evaluate checks a coupon's conditions against the order's regular lines and
// returns the first failing reason, or "" when the coupon holds.
func Evaluate(order *commerce.Order, rule Rule, now time.Time) Reason {
	if !rule.Active(now) {
		return ReasonCouponExpired
	}
	if m := rule.MinimumAmount; m != nil {
		if regularTotal(order, m.TaxInclusive) < m.Amount {
			return ReasonBelowMinimumAmount
		}
	}
	if c := rule.ContainsProducts; c != nil {
		if matchingQuantity(order, c.VariantIDs) < c.Minimum {
			return ReasonProductsConditionUnmet
		}
	}
	return ""
}

// regularTotal sums lines the shopper added; coupon products never count
// toward their own threshold.
func regularTotal(order *commerce.Order, taxInclusive bool) int64 {
	if order == nil {
		return 0
	}
	var total int64
	for _, l := range order.Lines {
		if l.CouponCode() != "" {
			continue
		}
		if taxInclusive {
			total += int64(l.LinePriceWithTax)
		} else {
			total += int64(l.LinePrice)
		}
	}
	return total
}

func matchingQuantity(order *commerce.Order, variantIDs []string) int {
	if order == nil {
		return 0
	}
	want := make(map[string]bool, len(variantIDs))
	for _, id := range variantIDs {
		want[id] = true
	}
	qty := 0
	for _, l := range order.Lines {
		if l.CouponCode() == "" && want[l.ProductVariant.ID] {
			qty += l.Quantity
		}
	}
	return qty
}

func lineRemoval(l commerce.OrderLine, reason Reason) LineRemoval {
	return LineRemoval{
		LineID:     l.ID,
		VariantID:  l.ProductVariant.ID,
		CouponCode: l.CouponCode(),
		Reason:     reason,
	}
}

func uniqueCodes(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
