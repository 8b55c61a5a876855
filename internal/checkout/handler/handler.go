package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/commerce"
	"storefront/internal/forms"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/platform/httputil"
	"storefront/pkg/requestcontext"
)

// Service defines the checkout loader and its steps.
type Service interface {
	Load(ctx context.Context) (*checkout.View, error)
	SetCustomer(ctx context.Context, in commerce.CustomerInput) (*checkout.View, error)
	SetAddress(ctx context.Context, shipping commerce.AddressInput, billing *commerce.AddressInput) (*checkout.View, error)
	SetShippingMethod(ctx context.Context, methodID string) (*checkout.View, error)
	StartPayment(ctx context.Context, method string) (*checkout.PaymentStart, error)
	Confirmation(ctx context.Context, code string) (*cart.OrderView, error)
}

type Handler struct {
	checkout Service
	logger   *slog.Logger
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{checkout: svc, logger: logger}
}

// Register wires checkout routes. Paths are registered individually so the
// payment gateway handler can own /checkout/payment/*.
func (h *Handler) Register(r chi.Router) {
	r.Get("/checkout", h.handleLoad)
	r.Post("/checkout/customer", h.handleSetCustomer)
	r.Post("/checkout/address", h.handleSetAddress)
	r.Post("/checkout/shipping-method", h.handleSetShippingMethod)
	r.Post("/checkout/payment", h.handleStartPayment)
	r.Get("/checkout/confirmation/{code}", h.handleConfirmation)
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	view, err := h.checkout.Load(r.Context())
	h.respond(w, r, "load checkout", view, err)
}

func (h *Handler) handleSetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[forms.GuestCustomer](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	view, err := h.checkout.SetCustomer(ctx, req.Input())
	h.respond(w, r, "set customer", view, err)
}

func (h *Handler) handleSetAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[AddressRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	var billing *commerce.AddressInput
	if req.Billing != nil {
		in := req.Billing.Input()
		billing = &in
	}
	view, err := h.checkout.SetAddress(ctx, req.Shipping.Input(), billing)
	h.respond(w, r, "set address", view, err)
}

func (h *Handler) handleSetShippingMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ShippingMethodRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	view, err := h.checkout.SetShippingMethod(ctx, req.MethodID)
	h.respond(w, r, "set shipping method", view, err)
}

func (h *Handler) handleStartPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[PaymentRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	start, err := h.checkout.StartPayment(ctx, req.Method)
	if err != nil {
		h.fail(w, r, "start payment", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, start)
}

func (h *Handler) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.Confirmation(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.fail(w, r, "load confirmation", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, action string, view *checkout.View, err error) {
	if err != nil {
		h.fail(w, r, action, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	ctx := r.Context()
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeConflict, dErrors.CodeNotFound:
		h.logger.InfoContext(ctx, "checkout request rejected",
			"action", action,
			"reason", dErrors.ReasonOf(err),
		)
	default:
		h.logger.ErrorContext(ctx, "checkout request failed",
			"action", action,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
