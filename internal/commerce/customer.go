package commerce

import (
	"context"
	"encoding/json"

	dErrors "storefront/pkg/domain-errors"
)

const loginMutation = `
mutation Login($username: String!, $password: String!, $rememberMe: Boolean) {
  login(username: $username, password: $password, rememberMe: $rememberMe) {
    ... on CurrentUser { id identifier }
    ...ErrorResult
  }
}` + errorResultFragment

// Login authenticates with native credentials. The engine answers with a new
// bearer token in the response header, which the client reports to the session.
func (c *Client) Login(ctx context.Context, email, password string, rememberMe bool) (*CurrentUser, error) {
	var out struct {
		Login json.RawMessage `json:"login"`
	}
	vars := map[string]any{"username": email, "password": password, "rememberMe": rememberMe}
	if err := c.Do(ctx, "Login", loginMutation, vars, &out); err != nil {
		return nil, err
	}
	return decodeResult[CurrentUser](out.Login)
}

const logoutMutation = `
mutation Logout {
  logout { success }
}`

func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, "Logout", logoutMutation, nil, nil)
}

const registerMutation = `
mutation Register($input: RegisterCustomerInput!) {
  registerCustomerAccount(input: $input) {
    ... on Success { success }
    ...ErrorResult
  }
}` + errorResultFragment

func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	var out struct {
		Result json.RawMessage `json:"registerCustomerAccount"`
	}
	if err := c.Do(ctx, "Register", registerMutation, map[string]any{"input": in}, &out); err != nil {
		return err
	}
	return checkResult(out.Result)
}

const verifyMutation = `
mutation Verify($token: String!, $password: String) {
  verifyCustomerAccount(token: $token, password: $password) {
    ... on CurrentUser { id identifier }
    ...ErrorResult
  }
}` + errorResultFragment

// VerifyAccount confirms a registration token. password is only needed when
// the account was registered without one.
func (c *Client) VerifyAccount(ctx context.Context, token, password string) (*CurrentUser, error) {
	vars := map[string]any{"token": token}
	if password != "" {
		vars["password"] = password
	}
	var out struct {
		Result json.RawMessage `json:"verifyCustomerAccount"`
	}
	if err := c.Do(ctx, "VerifyAccount", verifyMutation, vars, &out); err != nil {
		return nil, err
	}
	return decodeResult[CurrentUser](out.Result)
}

const requestResetMutation = `
mutation RequestPasswordReset($email: String!) {
  requestPasswordReset(emailAddress: $email) {
    ... on Success { success }
    ...ErrorResult
  }
}` + errorResultFragment

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	var out struct {
		Result json.RawMessage `json:"requestPasswordReset"`
	}
	if err := c.Do(ctx, "RequestPasswordReset", requestResetMutation, map[string]any{"email": email}, &out); err != nil {
		return err
	}
	return checkResult(out.Result)
}

const resetPasswordMutation = `
mutation ResetPassword($token: String!, $password: String!) {
  resetPassword(token: $token, password: $password) {
    ... on CurrentUser { id identifier }
    ...ErrorResult
  }
}` + errorResultFragment

func (c *Client) ResetPassword(ctx context.Context, token, password string) (*CurrentUser, error) {
	var out struct {
		Result json.RawMessage `json:"resetPassword"`
	}
	vars := map[string]any{"token": token, "password": password}
	if err := c.Do(ctx, "ResetPassword", resetPasswordMutation, vars, &out); err != nil {
		return nil, err
	}
	return decodeResult[CurrentUser](out.Result)
}

const activeCustomerQuery = `
query ActiveCustomer {
  activeCustomer {
    ...Customer
    addresses { ...Address }
  }
}` + customerFragment + addressFragment

// ActiveCustomer returns the logged-in customer, or nil for guests.
func (c *Client) ActiveCustomer(ctx context.Context) (*Customer, error) {
	var out struct {
		Customer *Customer `json:"activeCustomer"`
	}
	if err := c.Do(ctx, "ActiveCustomer", activeCustomerQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Customer, nil
}

const updateCustomerMutation = `
mutation UpdateCustomer($input: UpdateCustomerInput!) {
  updateCustomer(input: $input) { ...Customer }
}` + customerFragment

func (c *Client) UpdateCustomer(ctx context.Context, in CustomerInput) (*Customer, error) {
	in.EmailAddress = ""
	var out struct {
		Customer Customer `json:"updateCustomer"`
	}
	if err := c.Do(ctx, "UpdateCustomer", updateCustomerMutation, map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return &out.Customer, nil
}

const updatePasswordMutation = `
mutation UpdatePassword($current: String!, $next: String!) {
  updateCustomerPassword(currentPassword: $current, newPassword: $next) {
    ... on Success { success }
    ...ErrorResult
  }
}` + errorResultFragment

func (c *Client) UpdatePassword(ctx context.Context, current, next string) error {
	var out struct {
		Result json.RawMessage `json:"updateCustomerPassword"`
	}
	vars := map[string]any{"current": current, "next": next}
	if err := c.Do(ctx, "UpdatePassword", updatePasswordMutation, vars, &out); err != nil {
		return err
	}
	return checkResult(out.Result)
}

const createAddressMutation = `
mutation CreateAddress($input: CreateAddressInput!) {
  createCustomerAddress(input: $input) { ...Address }
}` + addressFragment

func (c *Client) CreateAddress(ctx context.Context, in AddressInput) (*Address, error) {
	in.ID = ""
	var out struct {
		Address Address `json:"createCustomerAddress"`
	}
	if err := c.Do(ctx, "CreateAddress", createAddressMutation, map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return &out.Address, nil
}

const updateAddressMutation = `
mutation UpdateAddress($input: UpdateAddressInput!) {
  updateCustomerAddress(input: $input) { ...Address }
}` + addressFragment

func (c *Client) UpdateAddress(ctx context.Context, in AddressInput) (*Address, error) {
	if in.ID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "address id is required")
	}
	var out struct {
		Address Address `json:"updateCustomerAddress"`
	}
	if err := c.Do(ctx, "UpdateAddress", updateAddressMutation, map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return &out.Address, nil
}

const deleteAddressMutation = `
mutation DeleteAddress($id: ID!) {
  deleteCustomerAddress(id: $id) { success }
}`

func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	var out struct {
		Result struct {
			Success bool `json:"success"`
		} `json:"deleteCustomerAddress"`
	}
	if err := c.Do(ctx, "DeleteAddress", deleteAddressMutation, map[string]any{"id": id}, &out); err != nil {
		return err
	}
	if !out.Result.Success {
		return dErrors.New(dErrors.CodeNotFound, "address not found")
	}
	return nil
}

const customerOrdersQuery = `
query CustomerOrders($options: OrderListOptions) {
  activeCustomer {
    orders(options: $options) {
      totalItems
      items { ...ActiveOrder }
    }
  }
}` + orderFragment

// CustomerOrders lists the customer's placed orders, newest first.
func (c *Client) CustomerOrders(ctx context.Context, skip, take int) (*OrderList, error) {
	vars := map[string]any{"options": map[string]any{
		"skip":   skip,
		"take":   take,
		"sort":   map[string]string{"createdAt": "DESC"},
		"filter": map[string]any{"active": map[string]bool{"eq": false}},
	}}
	var out struct {
		Customer *struct {
			Orders OrderList `json:"orders"`
		} `json:"activeCustomer"`
	}
	if err := c.Do(ctx, "CustomerOrders", customerOrdersQuery, vars, &out); err != nil {
		return nil, err
	}
	if out.Customer == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return &out.Customer.Orders, nil
}
