package commerce

import "context"

// Operations served by the engine's loyalty plugin.

const loyaltyBalanceQuery = `
query LoyaltyBalance {
  loyaltyPointsBalance
}`

func (c *Client) LoyaltyBalance(ctx context.Context) (int, error) {
	var out struct {
		Balance int `json:"loyaltyPointsBalance"`
	}
	if err := c.Do(ctx, "LoyaltyBalance", loyaltyBalanceQuery, nil, &out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

const loyaltyTransactionsQuery = `
query LoyaltyTransactions($options: LoyaltyPointsTransactionListOptions) {
  loyaltyPointsTransactions(options: $options) {
    totalItems
    items { id createdAt points type description orderCode }
  }
}`

func (c *Client) LoyaltyTransactions(ctx context.Context, skip, take int) (*LoyaltyTransactionList, error) {
	vars := map[string]any{"options": map[string]any{
		"skip": skip,
		"take": take,
		"sort": map[string]string{"createdAt": "DESC"},
	}}
	var out struct {
		List LoyaltyTransactionList `json:"loyaltyPointsTransactions"`
	}
	if err := c.Do(ctx, "LoyaltyTransactions", loyaltyTransactionsQuery, vars, &out); err != nil {
		return nil, err
	}
	return &out.List, nil
}

const applyLoyaltyMutation = `
mutation ApplyLoyaltyPoints($points: Int!) {
  applyLoyaltyPointsToActiveOrder(amount: $points) {
    ...ActiveOrder
    ...ErrorResult
  }
}` + orderFragment + errorResultFragment

func (c *Client) ApplyLoyaltyPoints(ctx context.Context, points int) (*Order, error) {
	return c.orderMutation(ctx, "ApplyLoyaltyPoints", applyLoyaltyMutation, "applyLoyaltyPointsToActiveOrder",
		map[string]any{"points": points})
}

const removeLoyaltyMutation = `
mutation RemoveLoyaltyPoints {
  removeLoyaltyPointsFromActiveOrder { ...ActiveOrder }
}` + orderFragment

func (c *Client) RemoveLoyaltyPoints(ctx context.Context) (*Order, error) {
	return c.orderMutation(ctx, "RemoveLoyaltyPoints", removeLoyaltyMutation, "removeLoyaltyPointsFromActiveOrder", nil)
}
