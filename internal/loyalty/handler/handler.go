package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/internal/cart"
	"storefront/internal/commerce"
	"storefront/internal/loyalty"
	"storefront/internal/session"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/platform/httputil"
	"storefront/pkg/requestcontext"
)

// Service defines the loyalty operations exposed over HTTP.
type Service interface {
	Summary(ctx context.Context) (*loyalty.Summary, error)
	History(ctx context.Context, page int) (*loyalty.History, error)
	Apply(ctx context.Context, points int) (*commerce.Order, error)
	Remove(ctx context.Context) (*commerce.Order, error)
	Policy() loyalty.Policy
}

type Handler struct {
	loyalty Service
	logger  *slog.Logger
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{loyalty: svc, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/loyalty", func(r chi.Router) {
		r.Get("/", h.handleSummary)
		r.Get("/history", h.handleHistory)
		r.Post("/points", h.handleApply)
		r.Delete("/points", h.handleRemove)
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.loyalty.Summary(r.Context())
	if err != nil {
		h.fail(w, r, "load loyalty summary", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "page must be a positive integer"))
			return
		}
		page = n
	}
	history, err := h.loyalty.History(r.Context(), page)
	if err != nil {
		h.fail(w, r, "load loyalty history", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, history)
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ApplyPointsRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	order, err := h.loyalty.Apply(ctx, req.Points)
	if err != nil {
		h.fail(w, r, "apply loyalty points", err)
		return
	}
	if sess := session.FromContext(ctx); sess != nil {
		sess.AddFlash(session.FlashSuccess, "Loyalty points applied")
	}
	h.writeOrder(w, ctx, order)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	order, err := h.loyalty.Remove(r.Context())
	if err != nil {
		h.fail(w, r, "remove loyalty points", err)
		return
	}
	h.writeOrder(w, r.Context(), order)
}

func (h *Handler) writeOrder(w http.ResponseWriter, ctx context.Context, order *commerce.Order) {
	view := cart.NewOrderView(order, requestcontext.Locale(ctx), h.loyalty.Policy().EarnRate)
	httputil.WriteJSON(w, http.StatusOK, cart.View{Order: view})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	ctx := r.Context()
	if dErrors.HasCode(err, dErrors.CodeValidation) || dErrors.HasCode(err, dErrors.CodeUnauthorized) {
		h.logger.InfoContext(ctx, "loyalty request rejected", "action", action, "reason", dErrors.ReasonOf(err))
	} else {
		h.logger.ErrorContext(ctx, "loyalty request failed",
			"action", action,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
