package commerce

import (
	"context"
	"encoding/json"

	dErrors "storefront/pkg/domain-errors"
)

const activeOrderQuery = `
query ActiveOrder {
  activeOrder { ...ActiveOrder }
}` + orderFragment

// ActiveOrder returns the session's active order, or nil when there is none.
func (c *Client) ActiveOrder(ctx context.Context) (*Order, error) {
	var out struct {
		ActiveOrder *Order `json:"activeOrder"`
	}
	if err := c.Do(ctx, "ActiveOrder", activeOrderQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.ActiveOrder, nil
}

// orderMutation runs a mutation whose single field is an Order|ErrorResult union.
func (c *Client) orderMutation(ctx context.Context, operation, query, field string, vars map[string]any) (*Order, error) {
	var out map[string]json.RawMessage
	if err := c.Do(ctx, operation, query, vars, &out); err != nil {
		return nil, err
	}
	order, err := decodeResult[Order](out[field])
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, dErrors.New(dErrors.CodeUpstream, operation+" returned no order")
	}
	return order, nil
}

const addItemMutation = `
mutation AddItemToOrder($variantId: ID!, $quantity: Int!, $customFields: OrderLineCustomFieldsInput) {
  addItemToOrder(productVariantId: $variantId, quantity: $quantity, customFields: $customFields) {
    ...ActiveOrder
    ...ErrorResult
  }
}` + orderFragment + errorResultFragment

// AddItemToOrder adds a variant. A non-empty couponCode tags the line as added
// by that coupon.
func (c *Client) AddItemToOrder(ctx context.Context, variantID string, quantity int, couponCode string) (*Order, error) {
	vars := map[string]any{"variantId": variantID, "quantity": quantity}
	if couponCode != "" {
		vars["customFields"] = map[string]any{"couponCode": couponCode}
	}
	return c.orderMutation(ctx, "AddItemToOrder", addItemMutation, "addItemToOrder", vars)
}

const adjustLineMutation = `
mutation AdjustOrderLine($lineId: ID!, $quantity: Int!) {
  adjustOrderLine(orderLineId: $lineId, quantity: $quantity) {
    ...ActiveOrder
    ...ErrorResult
  }
}` + orderFragment + errorResultFragment

func (c *Client) AdjustOrderLine(ctx context.Context, lineID string, quantity int) (*Order, error) {
	return c.orderMutation(ctx, "AdjustOrderLine", adjustLineMutation, "adjustOrderLine",
		map[string]any{"lineId": lineID, "quantity": quantity})
}

const removeLineMutation = `
mutation RemoveOrderLine($lineId: ID!) {
  removeOrderLine(orderLineId: $lineId) {
    ...ActiveOrder
    ...ErrorResult
  }
}` + orderFragment + errorResultFragment

func (c *Client) RemoveOrderLine(ctx context.Context, lineID string) (*Order, error) {
	return c.orderMutation(ctx, "RemoveOrderLine", removeLineMutation, "removeOrderLine",
		map[string]any{"lineId": lineID})
}

const applyCouponMutation = `
mutation ApplyCouponCode($code: String!) {
  applyCouponCode(couponCode: $code) {
    ...ActiveOrder
    ...ErrorResult
  }
}` + orderFragment + errorResultFragment

func (c *Client) ApplyCouponCode(ctx context.Context, code string) (*Order, error) {
	return c.orderMutation(ctx, "ApplyCouponCode", applyCouponMutation, "applyCouponCode",
		map[string]any{"code": code})
}

const removeCouponMutation = `
mutation RemoveCouponCode($code: String!) {
  removeCouponCode(couponCode: $code) { ...ActiveOrder }
}` + orderFragment

func (c *Client) RemoveCouponCode(ctx context.Context, code string) (*Order, error) {
	return c.orderMutation(ctx, "RemoveCouponCode", removeCouponMutation, "removeCouponCode",
		map[string]any{"code": code})
}

const setCustomerMutation = `
mutation SetCustomerForOrder($input: CreateCustomerInput!) {
  setCustomerForOrder(input: $input) {
    ...ActiveOrder
    ...ErrorResult
  }
}` + orderFragment + errorResultFragment

func (c *Client) SetCustomerForOrder(ctx context.Context, in CustomerInput) (*Order, error) {
	return c.orderMutation(ctx, "SetCustomerForOrder", setCustomerMutation, "setCustomerForOrder",
		map[string]any{"input": in})
}

const setShippingAddressMutation = `
mutation SetShippingAddress($input: CreateAddressInput!) {
  setOrderShippingAddress(input: $input) {
    ...ActiveOrder
    ...ErrorResult
  }
}` + orderFragment + errorResultFragment

func (c *Client) SetShippingAddress(ctx context.Context, in AddressInput) (*Order, error) {
	in.ID = ""
	return c.orderMutation(ctx, "SetShippingAddress", setShippingAddressMutation, "setOrderShippingAddress",
		map[string]any{"input": in})
}

const setBillingAddressMutation = `
mutation SetBillingAddress($input: CreateAddressInput!) {
  setOrderBillingAddress(input: $input) {
    ...ActiveOrder
    ...ErrorResult
  }
}` + orderFragment + errorResultFragment

func (c *Client) SetBillingAddress(ctx context.Context, in AddressInput) (*Order, error) {
	in.ID = ""
	return c.orderMutation(ctx, "SetBillingAddress", setBillingAddressMutation, "setOrderBillingAddress",
		map[string]any{"input": in})
}

const eligibleShippingQuery = `
query EligibleShippingMethods {
  eligibleShippingMethods { id code name description priceWithTax }
}`

func (c *Client) EligibleShippingMethods(ctx context.Context) ([]ShippingMethodQuote, error) {
	var out struct {
		Methods []ShippingMethodQuote `json:"eligibleShippingMethods"`
	}
	if err := c.Do(ctx, "EligibleShippingMethods", eligibleShippingQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Methods, nil
}

const setShippingMethodMutation = `
mutation SetShippingMethod($ids: [ID!]!) {
  setOrderShippingMethod(shippingMethodId: $ids) {
    ...ActiveOrder
    ...ErrorResult
  }
}` + orderFragment + errorResultFragment

func (c *Client) SetShippingMethod(ctx context.Context, methodID string) (*Order, error) {
	return c.orderMutation(ctx, "SetShippingMethod", setShippingMethodMutation, "setOrderShippingMethod",
		map[string]any{"ids": []string{methodID}})
}

const eligiblePaymentQuery = `
query EligiblePaymentMethods {
  eligiblePaymentMethods { id code name description isEligible eligibilityMessage }
}`

func (c *Client) EligiblePaymentMethods(ctx context.Context) ([]PaymentMethodQuote, error) {
	var out struct {
		Methods []PaymentMethodQuote `json:"eligiblePaymentMethods"`
	}
	if err := c.Do(ctx, "EligiblePaymentMethods", eligiblePaymentQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Methods, nil
}

const nextStatesQuery = `
query NextOrderStates {
  nextOrderStates
}`

func (c *Client) NextOrderStates(ctx context.Context) ([]string, error) {
	var out struct {
		States []string `json:"nextOrderStates"`
	}
	if err := c.Do(ctx, "NextOrderStates", nextStatesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.States, nil
}

const transitionMutation = `
mutation TransitionOrderToState($state: String!) {
  transitionOrderToState(state: $state) {
    ...ActiveOrder
    ...ErrorResult
    ... on OrderStateTransitionError { transitionError }
  }
}` + orderFragment + errorResultFragment

func (c *Client) TransitionOrderToState(ctx context.Context, state string) (*Order, error) {
	return c.orderMutation(ctx, "TransitionOrderToState", transitionMutation, "transitionOrderToState",
		map[string]any{"state": state})
}

const addPaymentMutation = `
mutation AddPaymentToOrder($input: PaymentInput!) {
  addPaymentToOrder(input: $input) {
    ...ActiveOrder
    ...ErrorResult
    ... on PaymentFailedError { paymentErrorMessage }
    ... on PaymentDeclinedError { paymentErrorMessage }
  }
}` + orderFragment + errorResultFragment

// AddPaymentToOrder settles the active order with a payment method.
func (c *Client) AddPaymentToOrder(ctx context.Context, method string, metadata map[string]any) (*Order, error) {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return c.orderMutation(ctx, "AddPaymentToOrder", addPaymentMutation, "addPaymentToOrder",
		map[string]any{"input": map[string]any{"method": method, "metadata": metadata}})
}

const orderByCodeQuery = `
query OrderByCode($code: String!) {
  orderByCode(code: $code) { ...ActiveOrder }
}` + orderFragment

// OrderByCode returns a placed order. The engine only reveals it to its owner.
func (c *Client) OrderByCode(ctx context.Context, code string) (*Order, error) {
	var out struct {
		Order *Order `json:"orderByCode"`
	}
	if err := c.Do(ctx, "OrderByCode", orderByCodeQuery, map[string]any{"code": code}, &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}
