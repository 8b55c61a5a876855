// Package events publishes storefront business events (cart changes, coupon
// reconciliation, payments, sign-ins) to pluggable sinks.
package events

import (
	"context"
	"time"

	"storefront/pkg/requestcontext"
)

// Type names a storefront event.
type Type string

const (
	CartItemAdded          Type = "cart.item_added"
	CartLineRemoved        Type = "cart.line_removed"
	CouponApplied          Type = "coupon.applied"
	CouponReconciled       Type = "coupon.reconciled"
	CheckoutPaymentStarted Type = "checkout.payment_started"
	PaymentConfirmed       Type = "payment.confirmed"
	PaymentFailed          Type = "payment.failed"
	CustomerLoggedIn       Type = "customer.logged_in"
	CustomerRegistered     Type = "customer.registered"
)

// Event is transport-agnostic; sinks decide the encoding.
type Event struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	OrderCode  string         `json:"order_code,omitempty"`
	CustomerID string         `json:"customer_id,omitempty"`
	SessionID  string         `json:"session_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Key is the partitioning key: events of one order stay ordered, otherwise
// events of one session.
func (e Event) Key() string {
	if e.OrderCode != "" {
		return e.OrderCode
	}
	return e.SessionID
}

// Sink persists or forwards events.
type Sink interface {
	Write(ctx context.Context, event Event) error
	Close() error
}

// Emitter is what domain services depend on.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// Publish emits ev through e, filling the session id from the request
// context. Delivery failures are logged by the publisher and never surface to
// the calling request.
func Publish(ctx context.Context, e Emitter, ev Event) {
	if e == nil {
		return
	}
	if ev.SessionID == "" {
		ev.SessionID = requestcontext.SessionID(ctx)
	}
	_ = e.Emit(ctx, ev)
}
