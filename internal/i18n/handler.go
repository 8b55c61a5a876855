package i18n

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/session"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/platform/httputil"
	"storefront/pkg/requestcontext"
)

// Handler exposes the locale switcher.
type Handler struct {
	resolver *Resolver
	logger   *slog.Logger
}

func NewHandler(resolver *Resolver, logger *slog.Logger) *Handler {
	return &Handler{resolver: resolver, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/locale", h.HandleGet)
	r.Put("/locale", h.HandleSet)
}

type LocaleResponse struct {
	Locale    string   `json:"locale"`
	Supported []string `json:"supported"`
}

type SetLocaleRequest struct {
	Locale string `json:"locale"`
}

func (r *SetLocaleRequest) Validate() error {
	if r.Locale == "" {
		return dErrors.New(dErrors.CodeValidation, "locale is required")
	}
	return nil
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LocaleResponse{
		Locale:    requestcontext.Locale(r.Context()),
		Supported: h.resolver.Supported(),
	})
}

func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[SetLocaleRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if !h.resolver.IsSupported(req.Locale) {
		httputil.WriteError(w, dErrors.WithReason(dErrors.CodeValidation, "unsupported_locale", "locale is not supported"))
		return
	}
	locale, _ := h.resolver.normalize(req.Locale)
	if sess := session.FromContext(ctx); sess != nil {
		sess.SetLocale(locale)
	}
	httputil.WriteJSON(w, http.StatusOK, LocaleResponse{Locale: locale, Supported: h.resolver.Supported()})
}
