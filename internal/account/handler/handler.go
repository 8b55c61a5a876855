package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/internal/account"
	"storefront/internal/cart"
	"storefront/internal/commerce"
	"storefront/internal/forms"
	"storefront/internal/session"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/platform/httputil"
	"storefront/pkg/platform/middleware/auth"
	"storefront/pkg/requestcontext"
)

// Service defines the account operations exposed over HTTP.
type Service interface {
	Login(ctx context.Context, email, password string, rememberMe bool) (*commerce.CurrentUser, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, in commerce.RegisterInput) error
	Verify(ctx context.Context, token, password string) (*commerce.CurrentUser, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) (*commerce.CurrentUser, error)
	Overview(ctx context.Context) (*account.Overview, error)
	Profile(ctx context.Context) (*commerce.Customer, error)
	UpdateProfile(ctx context.Context, in commerce.CustomerInput) (*commerce.Customer, error)
	ChangePassword(ctx context.Context, current, next string) error
	Addresses(ctx context.Context) ([]commerce.Address, error)
	CreateAddress(ctx context.Context, in commerce.AddressInput) (*commerce.Address, error)
	UpdateAddress(ctx context.Context, id string, in commerce.AddressInput) (*commerce.Address, error)
	DeleteAddress(ctx context.Context, id string) error
	Orders(ctx context.Context, page int) (*account.OrderPage, error)
	Order(ctx context.Context, code string) (*cart.OrderView, error)
}

type Handler struct {
	account     Service
	logger      *slog.Logger
	authLimiter func(http.Handler) http.Handler
}

type Option func(*Handler)

// WithAuthLimiter throttles the credential endpoints (login, register,
// verification and password reset).
func WithAuthLimiter(mw func(http.Handler) http.Handler) Option {
	return func(h *Handler) {
		h.authLimiter = mw
	}
}

func New(svc Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{account: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type UserResponse struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/account", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if h.authLimiter != nil {
				r.Use(h.authLimiter)
			}
			r.Post("/login", h.handleLogin)
			r.Post("/register", h.handleRegister)
			r.Post("/verify", h.handleVerify)
			r.Post("/password-reset", h.handleRequestPasswordReset)
			r.Post("/password-reset/confirm", h.handleResetPassword)
		})
		r.Post("/logout", h.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(h.logger))
			r.Get("/", h.handleOverview)
			r.Get("/profile", h.handleProfile)
			r.Put("/profile", h.handleUpdateProfile)
			r.Put("/password", h.handleChangePassword)
			r.Get("/addresses", h.handleAddresses)
			r.Post("/addresses", h.handleCreateAddress)
			r.Put("/addresses/{id}", h.handleUpdateAddress)
			r.Delete("/addresses/{id}", h.handleDeleteAddress)
			r.Get("/orders", h.handleOrders)
			r.Get("/orders/{code}", h.handleOrder)
		})
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[LoginRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	user, err := h.account.Login(ctx, req.Email, req.Password, req.RememberMe)
	if err != nil {
		h.fail(w, r, "login", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, UserResponse{ID: user.ID, Identifier: user.Identifier})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.account.Logout(ctx); err != nil {
		h.fail(w, r, "logout", err)
		return
	}
	flash(ctx, session.FlashInfo, "You have been signed out")
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{Status: "signed_out"})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[RegisterRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.account.Register(ctx, req.Input()); err != nil {
		h.fail(w, r, "register", err)
		return
	}
	flash(ctx, session.FlashSuccess, "Check your email to verify your account")
	httputil.WriteJSON(w, http.StatusCreated, StatusResponse{Status: "verification_sent"})
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	user, err := h.account.Verify(ctx, req.Token, req.Password)
	if err != nil {
		h.fail(w, r, "verify", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, UserResponse{ID: user.ID, Identifier: user.Identifier})
}

func (h *Handler) handleRequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[PasswordResetRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.account.RequestPasswordReset(ctx, req.Email); err != nil {
		h.fail(w, r, "request password reset", err)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, StatusResponse{Status: "reset_requested"})
}

func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[PasswordResetConfirmRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	user, err := h.account.ResetPassword(ctx, req.Token, req.Password)
	if err != nil {
		h.fail(w, r, "reset password", err)
		return
	}
	flash(ctx, session.FlashSuccess, "Your password has been reset")
	httputil.WriteJSON(w, http.StatusOK, UserResponse{ID: user.ID, Identifier: user.Identifier})
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.account.Overview(r.Context())
	h.respond(w, r, "load overview", overview, err)
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	customer, err := h.account.Profile(r.Context())
	h.respond(w, r, "load profile", customer, err)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[forms.Profile](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	customer, err := h.account.UpdateProfile(ctx, req.Input())
	h.respond(w, r, "update profile", customer, err)
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ChangePasswordRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.account.ChangePassword(ctx, req.CurrentPassword, req.NewPassword); err != nil {
		h.fail(w, r, "change password", err)
		return
	}
	flash(ctx, session.FlashSuccess, "Password updated")
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{Status: "password_updated"})
}

func (h *Handler) handleAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.account.Addresses(r.Context())
	h.respond(w, r, "list addresses", addresses, err)
}

func (h *Handler) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[forms.Address](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	address, err := h.account.CreateAddress(ctx, req.Input())
	if err != nil {
		h.fail(w, r, "create address", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, address)
}

func (h *Handler) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[forms.Address](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	address, err := h.account.UpdateAddress(ctx, chi.URLParam(r, "id"), req.Input())
	h.respond(w, r, "update address", address, err)
}

func (h *Handler) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.account.DeleteAddress(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "delete address", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleOrders(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "page must be a positive integer"))
			return
		}
		page = n
	}
	orders, err := h.account.Orders(r.Context(), page)
	h.respond(w, r, "list orders", orders, err)
}

func (h *Handler) handleOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.account.Order(r.Context(), chi.URLParam(r, "code"))
	h.respond(w, r, "load order", order, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, action string, body any, err error) {
	if err != nil {
		h.fail(w, r, action, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, body)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	ctx := r.Context()
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeUnauthorized, dErrors.CodeForbidden,
		dErrors.CodeConflict, dErrors.CodeNotFound:
		h.logger.InfoContext(ctx, "account request rejected",
			"action", action,
			"reason", dErrors.ReasonOf(err),
		)
	default:
		h.logger.ErrorContext(ctx, "account request failed",
			"action", action,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

func flash(ctx context.Context, kind session.FlashKind, msg string) {
	if sess := session.FromContext(ctx); sess != nil {
		sess.AddFlash(kind, msg)
	}
}
