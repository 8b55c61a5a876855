package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"storefront/internal/commerce"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/platform/httputil"
	"storefront/pkg/requestcontext"
)

// Service defines the gateway redirect targets.
type Service interface {
	Confirm(ctx context.Context, paymentKey, gatewayOrderID string, amount int64) (*commerce.Order, error)
	Fail(ctx context.Context, gatewayOrderID, code, message string) error
}

type Handler struct {
	payments Service
	logger   *slog.Logger
}

func New(payments Service, logger *slog.Logger) *Handler {
	return &Handler{payments: payments, logger: logger}
}

// Register wires the URLs the gateway redirects the shopper to.
func (h *Handler) Register(r chi.Router) {
	r.Get("/checkout/payment/success", h.handleSuccess)
	r.Get("/checkout/payment/fail", h.handleFail)
}

type ConfirmationResponse struct {
	OrderCode string `json:"order_code"`
	State     string `json:"state"`
	Redirect  string `json:"redirect"`
}

type FailureResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func (h *Handler) handleSuccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	paymentKey := strings.TrimSpace(q.Get("paymentKey"))
	orderID := strings.TrimSpace(q.Get("orderId"))
	amount, err := strconv.ParseInt(q.Get("amount"), 10, 64)
	if paymentKey == "" || orderID == "" || err != nil || amount <= 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "paymentKey, orderId and a positive amount are required"))
		return
	}

	order, err := h.payments.Confirm(ctx, paymentKey, orderID, amount)
	if err != nil {
		h.logger.ErrorContext(ctx, "payment confirmation failed",
			"request_id", requestcontext.RequestID(ctx),
			"gateway_order_id", orderID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ConfirmationResponse{
		OrderCode: order.Code,
		State:     order.State,
		Redirect:  "/checkout/confirmation/" + order.Code,
	})
}

func (h *Handler) handleFail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	orderID := strings.TrimSpace(q.Get("orderId"))
	code := q.Get("code")
	message := q.Get("message")
	if orderID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "orderId is required"))
		return
	}

	if err := h.payments.Fail(ctx, orderID, code, message); err != nil {
		h.logger.WarnContext(ctx, "payment failure handling failed",
			"request_id", requestcontext.RequestID(ctx),
			"gateway_order_id", orderID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FailureResponse{Code: code, Message: message, Redirect: "/checkout"})
}
