package commerce

import "context"

const couponPromotionsQuery = `
query CouponPromotions {
  couponPromotions { ...Promotion }
}` + promotionFragment

// CouponPromotions lists the channel's coupon promotions with their conditions
// and actions. Served by the engine's coupon plugin.
func (c *Client) CouponPromotions(ctx context.Context) ([]Promotion, error) {
	var out struct {
		Promotions []Promotion `json:"couponPromotions"`
	}
	if err := c.Do(ctx, "CouponPromotions", couponPromotionsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Promotions, nil
}
