package payment

import (
	"context"
	"time"
)

// Store is the payment attempt ledger. Implementations return sentinel errors:
// ErrNotFound for unknown ids, ErrConflict for duplicate ids, ErrAlreadyUsed
// when a payment key is already bound to another attempt and ErrInvalidState
// when the transition is not allowed from the attempt's current status.
//
// Claim is a compare-and-set from pending to processing that binds the
// payment key. MarkConfirmed and MarkFailed accept pending or processing.
type Store interface {
	Create(ctx context.Context, a *Attempt) error
	Get(ctx context.Context, gatewayOrderID string) (*Attempt, error)
	Claim(ctx context.Context, gatewayOrderID, paymentKey string, at time.Time) error
	MarkConfirmed(ctx context.Context, gatewayOrderID, paymentKey string, at time.Time) error
	MarkFailed(ctx context.Context, gatewayOrderID, code, message string, at time.Time) error
}
