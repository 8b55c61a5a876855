// Package coupon keeps coupon-added cart lines consistent with the coupons
// applied to the active order. The engine stays authoritative: this package
// only removes lines and codes the engine would no longer honour.
package coupon

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront/internal/commerce"
)

// Engine operation codes the rules understand.
const (
	conditionMinimumAmount    = "minimum_order_amount"
	conditionContainsProducts = "contains_products"
	argVariantIDs             = "productVariantIds"
)

// MinimumAmount is the minimum_order_amount condition.
type MinimumAmount struct {
	Amount       int64
	TaxInclusive bool
}

// ContainsProducts is the contains_products condition.
type ContainsProducts struct {
	Minimum    int
	VariantIDs []string
}

// Rule is the storefront's reading of one coupon promotion. Conditions the
// storefront does not understand are absent and count as satisfied.
type Rule struct {
	Code        string
	PromotionID string
	Name        string
	Enabled     bool
	StartsAt    *time.Time
	EndsAt      *time.Time

	MinimumAmount    *MinimumAmount
	ContainsProducts *ContainsProducts

	// LinkedVariantIDs are the "coupon products" added to the cart with the
	// code applied.
	LinkedVariantIDs []string
}

// Active reports whether the coupon can be honoured at now.
func (r Rule) Active(now time.Time) bool {
	if !r.Enabled {
		return false
	}
	if r.StartsAt != nil && now.Before(*r.StartsAt) {
		return false
	}
	if r.EndsAt != nil && !now.Before(*r.EndsAt) {
		return false
	}
	return true
}

// Links reports whether variantID is one of the coupon's products.
func (r Rule) Links(variantID string) bool {
	for _, id := range r.LinkedVariantIDs {
		if id == variantID {
			return true
		}
	}
	return false
}

// Rules indexes rules by coupon code.
type Rules map[string]Rule

// ParseRules reads every promotion that carries a coupon code. Malformed
// condition arguments are reported and the condition is dropped, leaving the
// engine to enforce it.
func ParseRules(promotions []commerce.Promotion) (Rules, []error) {
	rules := make(Rules, len(promotions))
	var problems []error
	for _, p := range promotions {
		if p.CouponCode == "" {
			continue
		}
		rule, errs := ParseRule(p)
		rules[rule.Code] = rule
		problems = append(problems, errs...)
	}
	return rules, problems
}

// ParseRule converts a single promotion.
func ParseRule(p commerce.Promotion) (Rule, []error) {
	rule := Rule{
		Code:        p.CouponCode,
		PromotionID: p.ID,
		Name:        p.Name,
		Enabled:     p.Enabled,
		StartsAt:    p.StartsAt,
		EndsAt:      p.EndsAt,
	}
	var errs []error
	for _, c := range p.Conditions {
		switch c.Code {
		case conditionMinimumAmount:
			amount, ok := c.IntArg("amount")
			if !ok {
				errs = append(errs, fmt.Errorf("coupon %s: %s without a numeric amount", p.CouponCode, c.Code))
				continue
			}
			rule.MinimumAmount = &MinimumAmount{Amount: amount, TaxInclusive: c.BoolArg("taxInclusive")}
		case conditionContainsProducts:
			minimum, ok := c.IntArg("minimum")
			if !ok {
				minimum = 1
			}
			raw, _ := c.Arg(argVariantIDs)
			ids, err := parseIDList(raw)
			if err != nil {
				errs = append(errs, fmt.Errorf("coupon %s: %s: %w", p.CouponCode, c.Code, err))
				continue
			}
			rule.ContainsProducts = &ContainsProducts{Minimum: int(minimum), VariantIDs: ids}
		}
	}
	for _, a := range p.Actions {
		raw, ok := a.Arg(argVariantIDs)
		if !ok {
			continue
		}
		ids, err := parseIDList(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("coupon %s: %s: %w", p.CouponCode, a.Code, err))
			continue
		}
		rule.LinkedVariantIDs = appendUnique(rule.LinkedVariantIDs, ids...)
	}
	return rule, errs
}

// parseIDList accepts the engine's JSON-encoded id arrays, which carry ids
// either as strings or as numbers.
func parseIDList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decode id list %q: %w", raw, err)
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		switch id := v.(type) {
		case string:
			ids = append(ids, id)
		case float64:
			ids = append(ids, strconv.FormatFloat(id, 'f', -1, 64))
		default:
			return nil, fmt.Errorf("unexpected id %v in %q", v, raw)
		}
	}
	return ids, nil
}

func appendUnique(dst []string, ids ...string) []string {
	for _, id := range ids {
		dup := false
		for _, existing := range dst {
			if existing == id {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, id)
		}
	}
	return dst
}
