// Package payment hands orders to the third-party payment gateway and settles
// them with the commerce engine once the gateway confirms.
//
// Flow: Prepare records a pending attempt and returns the widget payload; the
// gateway redirects the shopper to the success or fail URL; Confirm approves
// the payment at the gateway and adds it to the order. If the engine then
// refuses the payment, the gateway payment is cancelled so the shopper is not
// charged for an order that does not exist.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"storefront/internal/commerce"
	"storefront/internal/events"
	"storefront/internal/session"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/platform/sentinel"
	"storefront/pkg/requestcontext"
)

// Failure reasons recorded on attempts and returned to clients.
const (
	ReasonAmountMismatch  = "amount_mismatch"
	ReasonAttemptClosed   = "payment_attempt_closed"
	ReasonGatewayRejected = "gateway_rejected"
	ReasonInProgress      = "payment_in_progress"
	ReasonOrderRejected   = "order_rejected_payment"
)

const maxOrderNameLength = 100

// Commerce is the slice of the engine client payments need.
type Commerce interface {
	AddPaymentToOrder(ctx context.Context, method string, metadata map[string]any) (*commerce.Order, error)
	TransitionOrderToState(ctx context.Context, state string) (*commerce.Order, error)
	OrderByCode(ctx context.Context, code string) (*commerce.Order, error)
}

// Gateway is the payment provider's server API.
type Gateway interface {
	Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (*Receipt, error)
	Cancel(ctx context.Context, paymentKey, reason string) error
}

// Config is the client-facing gateway setup.
type Config struct {
	ClientKey  string
	SuccessURL string
	FailURL    string
}

type Service struct {
	commerce Commerce
	gateway  Gateway
	store    Store
	cfg      Config
	events   events.Emitter
	metrics  *Metrics
	logger   *slog.Logger
}

type Option func(*Service)

func WithEvents(e events.Emitter) Option {
	return func(s *Service) {
		s.events = e
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(c Commerce, gw Gateway, store Store, cfg Config, opts ...Option) *Service {
	s := &Service{
		commerce: c,
		gateway:  gw,
		store:    store,
		cfg:      cfg,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepare records a pending attempt for an order already in ArrangingPayment
// and returns what the gateway widget needs.
func (s *Service) Prepare(ctx context.Context, order *commerce.Order, method string) (*Checkout, error) {
	if order.IsEmpty() {
		return nil, dErrors.New(dErrors.CodeValidation, "the cart is empty")
	}
	now := requestcontext.Now(ctx)
	attempt := &Attempt{
		GatewayOrderID: uuid.NewString(),
		OrderCode:      order.Code,
		SessionID:      requestcontext.SessionID(ctx),
		Amount:         int64(order.TotalWithTax),
		Currency:       order.CurrencyCode,
		Method:         method,
		Status:         StatusPending,
		CouponCodes:    order.CouponCodes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Create(ctx, attempt); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record payment attempt")
	}
	s.metrics.prepared()

	if sess := session.FromContext(ctx); sess != nil {
		sess.SetPendingPayment(&session.PendingPayment{
			OrderCode:      order.Code,
			GatewayOrderID: attempt.GatewayOrderID,
			Amount:         attempt.Amount,
			Method:         method,
			StartedAt:      now,
		})
	}

	out := &Checkout{
		Method:     method,
		ClientKey:  s.cfg.ClientKey,
		OrderID:    attempt.GatewayOrderID,
		OrderName:  orderName(order),
		Amount:     attempt.Amount,
		Currency:   order.CurrencyCode,
		SuccessURL: s.cfg.SuccessURL,
		FailURL:    s.cfg.FailURL,
	}
	if c := order.Customer; c != nil {
		out.CustomerEmail = c.EmailAddress
		out.CustomerName = c.FirstName + " " + c.LastName
	}
	return out, nil
}

// Confirm settles a payment the gateway reported as authorised. Repeating a
// successful confirmation with the same payment key returns the placed order.
// Only the caller that claims the attempt talks to the gateway; concurrent
// repeats get the placed order or a payment_in_progress conflict.
func (s *Service) Confirm(ctx context.Context, paymentKey, gatewayOrderID string, amount int64) (*commerce.Order, error) {
	attempt, err := s.attempt(ctx, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != StatusPending {
		return s.settled(ctx, attempt, paymentKey)
	}

	if amount != attempt.Amount {
		s.logger.WarnContext(ctx, "payment amount mismatch",
			"order_code", attempt.OrderCode,
			"expected", attempt.Amount,
			"received", amount,
		)
		s.fail(ctx, attempt, ReasonAmountMismatch, "payment amount does not match the order")
		s.metrics.confirmation("amount_mismatch")
		return nil, dErrors.WithReason(dErrors.CodeValidation, ReasonAmountMismatch, "payment amount does not match the order")
	}

	if err := s.store.Claim(ctx, gatewayOrderID, paymentKey, requestcontext.Now(ctx)); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrInvalidState):
			current, err := s.attempt(ctx, gatewayOrderID)
			if err != nil {
				return nil, err
			}
			return s.settled(ctx, current, paymentKey)
		case errors.Is(err, sentinel.ErrAlreadyUsed):
			return nil, dErrors.WithReason(dErrors.CodeConflict, ReasonAttemptClosed, "payment key was already used")
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to claim payment attempt")
		}
	}

	if _, err := s.gateway.Confirm(ctx, paymentKey, gatewayOrderID, amount); err != nil {
		s.fail(ctx, attempt, dErrors.ReasonOf(err), dErrors.MessageOf(err))
		s.metrics.confirmation("gateway_rejected")
		s.reopenOrder(ctx, attempt.OrderCode)
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			return nil, dErrors.WithReason(dErrors.CodeValidation, ReasonGatewayRejected, dErrors.MessageOf(err))
		}
		return nil, err
	}

	order, err := s.commerce.AddPaymentToOrder(ctx, attempt.Method, map[string]any{
		"paymentKey": paymentKey,
		"orderId":    gatewayOrderID,
		"amount":     amount,
	})
	if err != nil {
		s.compensate(ctx, attempt, paymentKey, err)
		return nil, dErrors.WithReason(dErrors.CodeConflict, ReasonOrderRejected,
			"the order could not be completed; the payment was cancelled")
	}

	if err := s.store.MarkConfirmed(ctx, gatewayOrderID, paymentKey, requestcontext.Now(ctx)); err != nil {
		// The engine holds the payment; the ledger is only bookkeeping.
		s.logger.ErrorContext(ctx, "failed to record confirmed payment",
			"order_code", attempt.OrderCode,
			"gateway_order_id", gatewayOrderID,
			"error", err,
		)
	}
	s.clearPending(ctx)
	s.metrics.confirmation("confirmed")
	events.Publish(ctx, s.events, events.Event{
		Type:      events.PaymentConfirmed,
		OrderCode: attempt.OrderCode,
		Payload: map[string]any{
			"gateway_order_id": gatewayOrderID,
			"amount":           amount,
			"currency":         attempt.Currency,
			"method":           attempt.Method,
		},
	})
	s.logger.InfoContext(ctx, "payment confirmed",
		"order_code", attempt.OrderCode,
		"gateway_order_id", gatewayOrderID,
	)
	return order, nil
}

// settled answers a confirmation for an attempt someone else already claimed
// or closed. A processing attempt whose order the engine already holds as
// paid is a replay; the ledger is caught up on the way.
func (s *Service) settled(ctx context.Context, attempt *Attempt, paymentKey string) (*commerce.Order, error) {
	switch attempt.Status {
	case StatusFailed:
		return nil, dErrors.WithReason(dErrors.CodeConflict, ReasonAttemptClosed, "payment attempt is closed")
	case StatusConfirmed, StatusProcessing:
		if attempt.PaymentKey != paymentKey {
			return nil, dErrors.WithReason(dErrors.CodeConflict, ReasonAttemptClosed, "payment was already completed")
		}
	}

	order, err := s.commerce.OrderByCode(ctx, attempt.OrderCode)
	if err != nil {
		return nil, err
	}
	if attempt.Status == StatusProcessing {
		if !isPaid(order) {
			s.metrics.confirmation("in_progress")
			return nil, dErrors.WithReason(dErrors.CodeConflict, ReasonInProgress, "payment is still being processed")
		}
		if err := s.store.MarkConfirmed(ctx, attempt.GatewayOrderID, paymentKey, requestcontext.Now(ctx)); err != nil {
			s.logger.ErrorContext(ctx, "failed to record confirmed payment",
				"order_code", attempt.OrderCode,
				"gateway_order_id", attempt.GatewayOrderID,
				"error", err,
			)
		}
	}
	s.clearPending(ctx)
	s.metrics.confirmation("replayed")
	return order, nil
}

func isPaid(order *commerce.Order) bool {
	if order == nil {
		return false
	}
	return order.State == commerce.StatePaymentAuthorized || order.State == commerce.StatePaymentSettled
}

// Fail handles the gateway's fail redirect: the attempt is closed, the order
// goes back to AddingItems so the cart is editable again, and the gateway's
// message is flashed to the shopper.
func (s *Service) Fail(ctx context.Context, gatewayOrderID, code, message string) error {
	attempt, err := s.attempt(ctx, gatewayOrderID)
	if err != nil {
		return err
	}
	switch attempt.Status {
	case StatusConfirmed:
		return dErrors.WithReason(dErrors.CodeConflict, ReasonAttemptClosed, "payment was already completed")
	case StatusProcessing:
		return dErrors.WithReason(dErrors.CodeConflict, ReasonInProgress, "payment is still being processed")
	case StatusPending:
		s.fail(ctx, attempt, code, message)
	}
	s.reopenOrder(ctx, attempt.OrderCode)
	s.clearPending(ctx)

	if message == "" {
		message = "Payment was not completed"
	}
	if sess := session.FromContext(ctx); sess != nil {
		sess.AddFlash(session.FlashError, message)
	}
	return nil
}

func (s *Service) attempt(ctx context.Context, gatewayOrderID string) (*Attempt, error) {
	attempt, err := s.store.Get(ctx, gatewayOrderID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "payment attempt not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load payment attempt")
	}
	// Attempts are only visible to the session that started them.
	if attempt.SessionID != "" && attempt.SessionID != requestcontext.SessionID(ctx) {
		return nil, dErrors.New(dErrors.CodeNotFound, "payment attempt not found")
	}
	return attempt, nil
}

func (s *Service) fail(ctx context.Context, attempt *Attempt, code, message string) {
	if err := s.store.MarkFailed(ctx, attempt.GatewayOrderID, code, message, requestcontext.Now(ctx)); err != nil {
		s.logger.ErrorContext(ctx, "failed to record failed payment",
			"gateway_order_id", attempt.GatewayOrderID,
			"error", err,
		)
	}
	events.Publish(ctx, s.events, events.Event{
		Type:      events.PaymentFailed,
		OrderCode: attempt.OrderCode,
		Payload: map[string]any{
			"gateway_order_id": attempt.GatewayOrderID,
			"code":             code,
			"message":          message,
		},
	})
}

// compensate cancels a gateway payment the engine would not accept.
func (s *Service) compensate(ctx context.Context, attempt *Attempt, paymentKey string, cause error) {
	s.logger.ErrorContext(ctx, "engine rejected confirmed payment, cancelling at gateway",
		"order_code", attempt.OrderCode,
		"gateway_order_id", attempt.GatewayOrderID,
		"error", cause,
	)
	result := "cancelled"
	if err := s.gateway.Cancel(ctx, paymentKey, "order could not be completed"); err != nil {
		result = "failed"
		s.logger.ErrorContext(ctx, "gateway cancellation failed; manual refund required",
			"order_code", attempt.OrderCode,
			"gateway_order_id", attempt.GatewayOrderID,
			"error", err,
		)
	}
	s.metrics.compensation(result)
	s.metrics.confirmation("order_rejected")
	s.fail(ctx, attempt, ReasonOrderRejected, dErrors.MessageOf(cause))
	s.reopenOrder(ctx, attempt.OrderCode)
}

func (s *Service) reopenOrder(ctx context.Context, orderCode string) {
	if _, err := s.commerce.TransitionOrderToState(ctx, commerce.StateAddingItems); err != nil {
		s.logger.WarnContext(ctx, "failed to return order to AddingItems",
			"order_code", orderCode,
			"error", err,
		)
	}
}

func (s *Service) clearPending(ctx context.Context) {
	if sess := session.FromContext(ctx); sess != nil {
		sess.SetPendingPayment(nil)
	}
}

// orderName is the product summary shown in the gateway widget, e.g.
// "Linen Shirt and 2 more".
func orderName(order *commerce.Order) string {
	first := order.Lines[0].ProductVariant.Name
	if first == "" {
		first = order.Lines[0].ProductVariant.Product.Name
	}
	name := first
	if n := len(order.Lines) - 1; n > 0 {
		name = fmt.Sprintf("%s and %d more", first, n)
	}
	if utf8.RuneCountInString(name) > maxOrderNameLength {
		name = string([]rune(name)[:maxOrderNameLength])
	}
	return name
}
