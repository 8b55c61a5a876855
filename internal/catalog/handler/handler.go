package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"storefront/internal/catalog"
	"storefront/internal/commerce"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/platform/httputil"
	"storefront/pkg/requestcontext"
)

// Service defines the catalog loaders.
type Service interface {
	Search(ctx context.Context, q catalog.Query) (*catalog.Listing, error)
	ProductDetail(ctx context.Context, slug string) (*catalog.ProductDetail, error)
	Collections(ctx context.Context) ([]commerce.Collection, error)
}

type Handler struct {
	catalog Service
	logger  *slog.Logger
}

func New(catalog Service, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/products", h.handleSearch)
	r.Get("/products/{slug}", h.handleProduct)
	r.Get("/collections", h.handleCollections)
}

var sortOrders = map[string]commerce.SortOrder{
	"":           commerce.SortRelevance,
	"name_asc":   commerce.SortNameAsc,
	"name_desc":  commerce.SortNameDesc,
	"price_asc":  commerce.SortPriceAsc,
	"price_desc": commerce.SortPriceDesc,
}

// parseQuery reads ?q=&collection=&facets=1,2&sort=&page=.
func parseQuery(r *http.Request) (catalog.Query, error) {
	v := r.URL.Query()
	q := catalog.Query{
		Term:           strings.TrimSpace(v.Get("q")),
		CollectionSlug: v.Get("collection"),
	}
	for _, raw := range v["facets"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				q.FacetValueIDs = append(q.FacetValueIDs, id)
			}
		}
	}
	sort, ok := sortOrders[v.Get("sort")]
	if !ok {
		return q, dErrors.New(dErrors.CodeValidation, "unknown sort order")
	}
	q.Sort = sort
	if p := v.Get("page"); p != "" {
		page, err := strconv.Atoi(p)
		if err != nil || page < 1 {
			return q, dErrors.New(dErrors.CodeValidation, "page must be a positive integer")
		}
		q.Page = page
	}
	return q, nil
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q, err := parseQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	listing, err := h.catalog.Search(ctx, q)
	if err != nil {
		h.fail(ctx, w, "product search failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing)
}

func (h *Handler) handleProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	detail, err := h.catalog.ProductDetail(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "product detail failed", err, "slug", slug)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	collections, err := h.catalog.Collections(ctx)
	if err != nil {
		h.fail(ctx, w, "collections failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"collections": collections})
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "request_id", requestcontext.RequestID(ctx), "error", err)
	if dErrors.HasCode(err, dErrors.CodeNotFound) {
		h.logger.InfoContext(ctx, msg, attrs...)
	} else {
		h.logger.ErrorContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}
