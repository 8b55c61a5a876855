// Package session keeps per-visitor state (engine bearer token, locale, flash
// messages, in-flight gateway payment) behind a signed cookie.
package session

import (
	"context"
	"sync"
	"time"
)

// FlashKind classifies toast messages.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashInfo    FlashKind = "info"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot message shown on the next page load.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// PendingPayment tracks a payment handed to the gateway and not yet confirmed.
type PendingPayment struct {
	OrderCode      string    `json:"order_code"`
	GatewayOrderID string    `json:"gateway_order_id"`
	Amount         int64     `json:"amount"`
	Method         string    `json:"method"`
	StartedAt      time.Time `json:"started_at"`
}

// Record is the persisted form of a session.
type Record struct {
	ID             string          `json:"id"`
	AuthToken      string          `json:"auth_token,omitempty"`
	Locale         string          `json:"locale,omitempty"`
	Flash          []Flash         `json:"flash,omitempty"`
	PendingPayment *PendingPayment `json:"pending_payment,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Session is the request-bound view of a Record. Mutations mark it dirty so
// the middleware only writes back when something changed.
type Session struct {
	mu     sync.Mutex
	record Record
	dirty  bool
	isNew  bool
}

// newSession wraps a record. Fresh sessions start clean so visitors that never
// store anything do not create records.
func newSession(rec Record, isNew bool) *Session {
	return &Session{record: rec, isNew: isNew}
}

// IsNew reports whether the session was created for this request.
func (s *Session) IsNew() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isNew
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.ID
}

func (s *Session) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Locale
}

func (s *Session) SetLocale(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record.Locale != locale {
		s.record.Locale = locale
		s.dirty = true
	}
}

// AuthToken is the engine bearer token persisted with the session.
func (s *Session) AuthToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.AuthToken
}

func (s *Session) setAuthToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record.AuthToken != token {
		s.record.AuthToken = token
		s.dirty = true
	}
}

// AddFlash queues a message for the next page load.
func (s *Session) AddFlash(kind FlashKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.Flash = append(s.record.Flash, Flash{Kind: kind, Message: message})
	s.dirty = true
}

// TakeFlash returns and clears queued messages.
func (s *Session) TakeFlash() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.record.Flash) == 0 {
		return nil
	}
	out := s.record.Flash
	s.record.Flash = nil
	s.dirty = true
	return out
}

func (s *Session) PendingPayment() *PendingPayment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record.PendingPayment == nil {
		return nil
	}
	p := *s.record.PendingPayment
	return &p
}

// SetPendingPayment records or (with nil) clears the in-flight payment.
func (s *Session) SetPendingPayment(p *PendingPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil && s.record.PendingPayment == nil {
		return
	}
	if p != nil {
		cp := *p
		p = &cp
	}
	s.record.PendingPayment = p
	s.dirty = true
}

func (s *Session) snapshot() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record, s.dirty
}

func (s *Session) markClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
	s.isNew = false
}

type contextKey struct{}

// FromContext returns the request's session, or nil outside the middleware.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok {
		return s
	}
	return nil
}

// WithSession binds a session to ctx. The middleware uses it; tests may too.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// NewForTest builds a detached session from a record.
func NewForTest(rec Record) *Session {
	return newSession(rec, false)
}
