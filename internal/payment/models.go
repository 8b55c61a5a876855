package payment

import "time"

type Status string

// An attempt moves pending -> processing when a confirmation claims it, then
// to confirmed or failed. Only the claimant talks to the gateway.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusConfirmed  Status = "confirmed"
	StatusFailed     Status = "failed"
)

// Attempt is one hand-over of an order to the gateway. GatewayOrderID is the
// id the gateway sees; it is fresh per attempt so a retried checkout never
// collides with an earlier, failed attempt for the same order.
type Attempt struct {
	GatewayOrderID string
	OrderCode      string
	SessionID      string
	Amount         int64
	Currency       string
	Method         string
	Status         Status
	PaymentKey     string
	FailureCode    string
	FailureMessage string
	CouponCodes    []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Checkout is what the client-side gateway widget needs to open a payment.
type Checkout struct {
	Method        string `json:"method"`
	ClientKey     string `json:"client_key"`
	OrderID       string `json:"order_id"`
	OrderName     string `json:"order_name"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	SuccessURL    string `json:"success_url"`
	FailURL       string `json:"fail_url"`
}

// Receipt is the gateway's answer to a successful confirmation.
type Receipt struct {
	PaymentKey  string    `json:"paymentKey"`
	OrderID     string    `json:"orderId"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	TotalAmount int64     `json:"totalAmount"`
	ApprovedAt  time.Time `json:"approvedAt"`
}
