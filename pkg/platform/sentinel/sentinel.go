package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores (session, catalog cache,
// payment ledger) return these, optionally wrapped, and services translate
// them into domain errors.
//
//   - ErrNotFound: record does not exist
//   - ErrConflict: record already exists with different content
//   - ErrExpired: session or payment attempt outlived its TTL
//   - ErrAlreadyUsed: payment key already confirmed
//   - ErrInvalidState: attempt is in the wrong state for the operation
//   - ErrUnavailable: backing store temporarily unavailable
//
// Validation failures belong in pkg/domain-errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrExpired      = errors.New("expired")
	ErrAlreadyUsed  = errors.New("already used")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
