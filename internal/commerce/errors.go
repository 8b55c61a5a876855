package commerce

import (
	"encoding/json"

	dErrors "storefront/pkg/domain-errors"
)

// Engine ErrorResult codes the storefront branches on.
const (
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS_ERROR"
	ErrCodeNotVerified         = "NOT_VERIFIED_ERROR"
	ErrCodeEmailConflict       = "EMAIL_ADDRESS_CONFLICT_ERROR"
	ErrCodeAlreadyLoggedIn     = "ALREADY_LOGGED_IN_ERROR"
	ErrCodeNativeAuthStrategy  = "NATIVE_AUTH_STRATEGY_ERROR"
	ErrCodeCouponInvalid       = "COUPON_CODE_INVALID_ERROR"
	ErrCodeCouponExpired       = "COUPON_CODE_EXPIRED_ERROR"
	ErrCodeCouponLimit         = "COUPON_CODE_LIMIT_ERROR"
	ErrCodeInsufficientStock   = "INSUFFICIENT_STOCK_ERROR"
	ErrCodeOrderModification   = "ORDER_MODIFICATION_ERROR"
	ErrCodeOrderLimit          = "ORDER_LIMIT_ERROR"
	ErrCodeNegativeQuantity    = "NEGATIVE_QUANTITY_ERROR"
	ErrCodeNoActiveOrder       = "NO_ACTIVE_ORDER_ERROR"
	ErrCodeStateTransition     = "ORDER_STATE_TRANSITION_ERROR"
	ErrCodeIneligibleShipping  = "INELIGIBLE_SHIPPING_METHOD_ERROR"
	ErrCodeIneligiblePayment   = "INELIGIBLE_PAYMENT_METHOD_ERROR"
	ErrCodePaymentFailed       = "PAYMENT_FAILED_ERROR"
	ErrCodePaymentDeclined     = "PAYMENT_DECLINED_ERROR"
	ErrCodeOrderPaymentState   = "ORDER_PAYMENT_STATE_ERROR"
	ErrCodePasswordValidation  = "PASSWORD_VALIDATION_ERROR"
	ErrCodeMissingPassword     = "MISSING_PASSWORD_ERROR"
	ErrCodePasswordAlreadySet  = "PASSWORD_ALREADY_SET_ERROR"
	ErrCodeVerificationInvalid = "VERIFICATION_TOKEN_INVALID_ERROR"
	ErrCodeVerificationExpired = "VERIFICATION_TOKEN_EXPIRED_ERROR"
	ErrCodeResetTokenInvalid   = "PASSWORD_RESET_TOKEN_INVALID_ERROR"
	ErrCodeResetTokenExpired   = "PASSWORD_RESET_TOKEN_EXPIRED_ERROR"
	ErrCodeLoyaltyPoints       = "LOYALTY_POINTS_ERROR"
)

// ErrorResult is the engine's union error member.
type ErrorResult struct {
	Typename  string `json:"__typename"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	// OrderStateTransitionError detail.
	TransitionError string `json:"transitionError,omitempty"`
	// PaymentFailedError / PaymentDeclinedError detail.
	PaymentErrorMessage string `json:"paymentErrorMessage,omitempty"`
}

// Err converts the result into a domain error carrying the engine's errorCode
// as its reason.
func (e ErrorResult) Err() error {
	msg := e.Message
	switch {
	case e.TransitionError != "":
		msg = e.TransitionError
	case e.PaymentErrorMessage != "":
		msg = e.PaymentErrorMessage
	}
	if msg == "" {
		msg = "commerce engine rejected the request"
	}
	return dErrors.WithReason(codeFor(e.ErrorCode), e.ErrorCode, msg)
}

func codeFor(errorCode string) dErrors.Code {
	switch errorCode {
	case ErrCodeInvalidCredentials:
		return dErrors.CodeUnauthorized
	case ErrCodeNotVerified:
		return dErrors.CodeForbidden
	case ErrCodeEmailConflict, ErrCodeAlreadyLoggedIn, ErrCodeOrderPaymentState, ErrCodePasswordAlreadySet:
		return dErrors.CodeConflict
	case ErrCodeNoActiveOrder:
		return dErrors.CodeNotFound
	case ErrCodeNativeAuthStrategy:
		return dErrors.CodeUnavailable
	case ErrCodeCouponInvalid, ErrCodeCouponExpired, ErrCodeCouponLimit,
		ErrCodeInsufficientStock, ErrCodeOrderModification, ErrCodeOrderLimit,
		ErrCodeNegativeQuantity, ErrCodeStateTransition, ErrCodeIneligibleShipping,
		ErrCodeIneligiblePayment, ErrCodePaymentFailed, ErrCodePaymentDeclined,
		ErrCodePasswordValidation, ErrCodeMissingPassword,
		ErrCodeVerificationInvalid, ErrCodeVerificationExpired,
		ErrCodeResetTokenInvalid, ErrCodeResetTokenExpired, ErrCodeLoyaltyPoints:
		return dErrors.CodeValidation
	default:
		return dErrors.CodeUpstream
	}
}

// decodeResult decodes a union field that is either T or an ErrorResult.
func decodeResult[T any](raw json.RawMessage) (*T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var head ErrorResult
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "malformed commerce response")
	}
	if head.ErrorCode != "" {
		return nil, head.Err()
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "malformed commerce response")
	}
	return &out, nil
}

// checkResult is decodeResult for union results whose success member carries
// nothing the caller needs (Success, CurrentUser).
func checkResult(raw json.RawMessage) error {
	_, err := decodeResult[struct{}](raw)
	return err
}
