// Package store holds the payment attempt ledger implementations.
package store

import (
	"context"
	"sync"
	"time"

	"storefront/internal/payment"
	"storefront/pkg/platform/sentinel"
)

// Memory keeps attempts in process. Attempts are lost on restart, which only
// matters for payments in flight at that moment.
type Memory struct {
	mu       sync.Mutex
	attempts map[string]payment.Attempt
}

func NewMemory() *Memory {
	return &Memory{attempts: make(map[string]payment.Attempt)}
}

func (m *Memory) Create(_ context.Context, a *payment.Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.attempts[a.GatewayOrderID]; ok {
		return sentinel.ErrConflict
	}
	cp := *a
	cp.CouponCodes = append([]string(nil), a.CouponCodes...)
	m.attempts[a.GatewayOrderID] = cp
	return nil
}

func (m *Memory) Get(_ context.Context, gatewayOrderID string) (*payment.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[gatewayOrderID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	a.CouponCodes = append([]string(nil), a.CouponCodes...)
	return &a, nil
}

func (m *Memory) Claim(_ context.Context, gatewayOrderID, paymentKey string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, err := m.bindKey(gatewayOrderID, paymentKey)
	if err != nil {
		return err
	}
	if a.Status != payment.StatusPending {
		return sentinel.ErrInvalidState
	}
	a.Status = payment.StatusProcessing
	a.PaymentKey = paymentKey
	a.UpdatedAt = at
	m.attempts[gatewayOrderID] = a
	return nil
}

func (m *Memory) MarkConfirmed(_ context.Context, gatewayOrderID, paymentKey string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, err := m.bindKey(gatewayOrderID, paymentKey)
	if err != nil {
		return err
	}
	if !isOpen(a.Status) {
		return sentinel.ErrInvalidState
	}
	a.Status = payment.StatusConfirmed
	a.PaymentKey = paymentKey
	a.UpdatedAt = at
	m.attempts[gatewayOrderID] = a
	return nil
}

func (m *Memory) MarkFailed(_ context.Context, gatewayOrderID, code, message string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[gatewayOrderID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if !isOpen(a.Status) {
		return sentinel.ErrInvalidState
	}
	a.Status = payment.StatusFailed
	a.FailureCode = code
	a.FailureMessage = message
	a.UpdatedAt = at
	m.attempts[gatewayOrderID] = a
	return nil
}

// bindKey loads an attempt and checks no other attempt holds paymentKey.
// Callers hold m.mu.
func (m *Memory) bindKey(gatewayOrderID, paymentKey string) (payment.Attempt, error) {
	a, ok := m.attempts[gatewayOrderID]
	if !ok {
		return payment.Attempt{}, sentinel.ErrNotFound
	}
	for id, other := range m.attempts {
		if id != gatewayOrderID && other.PaymentKey == paymentKey {
			return payment.Attempt{}, sentinel.ErrAlreadyUsed
		}
	}
	return a, nil
}

func isOpen(s payment.Status) bool {
	return s == payment.StatusPending || s == payment.StatusProcessing
}
