package models

import "time"

// EndpointClass groups routes that share one limit.
type EndpointClass string

const (
	// ClassAuth covers credential endpoints: login, register, verify and
	// password reset.
	ClassAuth EndpointClass = "auth"
	// ClassCart covers cart and coupon mutations.
	ClassCart EndpointClass = "cart"
)

// Limit is the number of requests allowed per sliding window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// RateLimitResult represents the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when not allowed
}

type RateLimitExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}
