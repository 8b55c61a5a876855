package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/cart"
	"storefront/internal/session"
	"storefront/pkg/platform/httputil"
	"storefront/pkg/requestcontext"
)

// Service defines the cart loader and actions.
type Service interface {
	Get(ctx context.Context) (*cart.View, error)
	AddItem(ctx context.Context, variantID string, quantity int) (*cart.View, error)
	AdjustLine(ctx context.Context, lineID string, quantity int) (*cart.View, error)
	RemoveLine(ctx context.Context, lineID string) (*cart.View, error)
	ApplyCoupon(ctx context.Context, code string) (*cart.View, error)
	RemoveCoupon(ctx context.Context, code string) (*cart.View, error)
}

type Handler struct {
	cart   Service
	logger *slog.Logger
}

func New(cart Service, logger *slog.Logger) *Handler {
	return &Handler{cart: cart, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Post("/items", h.handleAddItem)
		r.Patch("/lines/{id}", h.handleAdjustLine)
		r.Delete("/lines/{id}", h.handleRemoveLine)
		r.Post("/coupons", h.handleApplyCoupon)
		r.Delete("/coupons/{code}", h.handleRemoveCoupon)
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.cart.Get(r.Context())
	h.respond(w, r, "load cart", view, err)
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[AddItemRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	view, err := h.cart.AddItem(ctx, req.VariantID, req.Quantity)
	h.respond(w, r, "add item", view, err)
}

func (h *Handler) handleAdjustLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[AdjustLineRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	view, err := h.cart.AdjustLine(ctx, chi.URLParam(r, "id"), *req.Quantity)
	h.respond(w, r, "adjust line", view, err)
}

func (h *Handler) handleRemoveLine(w http.ResponseWriter, r *http.Request) {
	view, err := h.cart.RemoveLine(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, "remove line", view, err)
}

func (h *Handler) handleApplyCoupon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ApplyCouponRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	view, err := h.cart.ApplyCoupon(ctx, req.Code)
	if err == nil {
		flash(ctx, session.FlashSuccess, "Coupon applied")
	}
	h.respond(w, r, "apply coupon", view, err)
}

func (h *Handler) handleRemoveCoupon(w http.ResponseWriter, r *http.Request) {
	view, err := h.cart.RemoveCoupon(r.Context(), chi.URLParam(r, "code"))
	h.respond(w, r, "remove coupon", view, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, action string, view *cart.View, err error) {
	ctx := r.Context()
	if err != nil {
		h.logger.WarnContext(ctx, "cart action failed",
			"action", action,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if view.Adjustment != nil {
		flash(ctx, session.FlashInfo, "Your cart changed: coupon items that no longer apply were removed")
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func flash(ctx context.Context, kind session.FlashKind, msg string) {
	if sess := session.FromContext(ctx); sess != nil {
		sess.AddFlash(kind, msg)
	}
}
