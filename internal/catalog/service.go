// Package catalog serves product listings, product detail pages and the
// collection tree.
package catalog

import (
	"context"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"storefront/internal/commerce"
	"storefront/internal/i18n"
	"storefront/pkg/platform/middleware/metadata"
	"storefront/pkg/requestcontext"
)

// Commerce is the slice of the engine client the catalog needs.
type Commerce interface {
	Search(ctx context.Context, in commerce.SearchInput) (*commerce.SearchResult, error)
	Product(ctx context.Context, slug string) (*commerce.Product, error)
	Collections(ctx context.Context) ([]commerce.Collection, error)
	Collection(ctx context.Context, slug string) (*commerce.Collection, error)
	ActiveOrder(ctx context.Context) (*commerce.Order, error)
}

// CollectionCache stores the collection tree per locale.
type CollectionCache interface {
	Get(ctx context.Context, locale string) ([]commerce.Collection, bool, error)
	Set(ctx context.Context, locale string, collections []commerce.Collection, ttl time.Duration) error
}

// Service builds catalog view models.
type Service struct {
	commerce        Commerce
	cache           CollectionCache
	cacheTTL        time.Duration
	mobilePageSize  int
	desktopPageSize int
	metrics         *Metrics
	logger          *slog.Logger
}

type Option func(*Service)

func WithCache(cache CollectionCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

func WithPageSizes(mobile, desktop int) Option {
	return func(s *Service) {
		if mobile > 0 {
			s.mobilePageSize = mobile
		}
		if desktop > 0 {
			s.desktopPageSize = desktop
		}
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

func NewService(c Commerce, opts ...Option) *Service {
	s := &Service{
		commerce:        c,
		mobilePageSize:  12,
		desktopPageSize: 24,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PageSize returns the listing page size for the request's device class.
func (s *Service) PageSize(ctx context.Context) int {
	if requestcontext.DeviceClass(ctx) == metadata.DeviceMobile {
		return s.mobilePageSize
	}
	return s.desktopPageSize
}

// Search runs a listing query. Pages are 1-based; out-of-range pages return an
// empty item list rather than an error.
func (s *Service) Search(ctx context.Context, q Query) (*Listing, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := s.PageSize(ctx)

	var (
		result     *commerce.SearchResult
		collection *commerce.Collection
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result, err = s.commerce.Search(gctx, commerce.SearchInput{
			Term:           q.Term,
			CollectionSlug: q.CollectionSlug,
			FacetValueIDs:  q.FacetValueIDs,
			Sort:           q.Sort,
			Skip:           (page - 1) * size,
			Take:           size,
		})
		return err
	})
	if q.CollectionSlug != "" {
		g.Go(func() error {
			var err error
			collection, err = s.commerce.Collection(gctx, q.CollectionSlug)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	locale := requestcontext.Locale(ctx)
	listing := &Listing{
		Items:      make([]ListItem, 0, len(result.Items)),
		Facets:     groupFacets(result.FacetValues, q.FacetValueIDs),
		Collection: collection,
		TotalItems: result.TotalItems,
		Page:       page,
		PageSize:   size,
		TotalPages: int(math.Ceil(float64(result.TotalItems) / float64(size))),
	}
	for _, item := range result.Items {
		li := ListItem{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Slug:      item.Slug,
			Price:     i18n.NewMoney(locale, item.CurrencyCode, int64(item.PriceWithTax.Low())),
		}
		if item.ProductAsset != nil {
			li.ImageURL = item.ProductAsset.Preview
		}
		if p := item.PriceWithTax; p.Max > p.Min {
			to := i18n.NewMoney(locale, item.CurrencyCode, int64(p.Max))
			li.PriceTo = &to
		}
		listing.Items = append(listing.Items, li)
	}
	return listing, nil
}

func groupFacets(counts []commerce.FacetValueCount, selected []string) []FacetGroup {
	active := make(map[string]bool, len(selected))
	for _, id := range selected {
		active[id] = true
	}
	var groups []FacetGroup
	index := make(map[string]int)
	for _, c := range counts {
		fv := c.FacetValue
		i, ok := index[fv.Facet.ID]
		if !ok {
			i = len(groups)
			index[fv.Facet.ID] = i
			groups = append(groups, FacetGroup{ID: fv.Facet.ID, Name: fv.Facet.Name, Code: fv.Facet.Code})
		}
		groups[i].Options = append(groups[i].Options, FacetOption{
			ID:     fv.ID,
			Name:   fv.Name,
			Code:   fv.Code,
			Count:  c.Count,
			Active: active[fv.ID],
		})
	}
	return groups
}

// ProductDetail loads a product together with how many of each variant the
// visitor already has in the cart. A failed cart lookup degrades to zero
// quantities.
func (s *Service) ProductDetail(ctx context.Context, slug string) (*ProductDetail, error) {
	var (
		product *commerce.Product
		order   *commerce.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = s.commerce.Product(gctx, slug)
		return err
	})
	g.Go(func() error {
		var err error
		order, err = s.commerce.ActiveOrder(gctx)
		if err != nil {
			s.logger.WarnContext(gctx, "active order unavailable for product page",
				"slug", slug,
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			order = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	inCart := make(map[string]int)
	if order != nil {
		for _, l := range order.Lines {
			if l.CouponCode() != "" {
				continue
			}
			inCart[l.ProductVariant.ID] += l.Quantity
		}
	}

	locale := requestcontext.Locale(ctx)
	detail := &ProductDetail{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Facets:      product.FacetValues,
		Breadcrumbs: breadcrumbs(product),
	}
	if product.FeaturedAsset != nil {
		detail.Images = append(detail.Images, product.FeaturedAsset.Preview)
	}
	for _, a := range product.Assets {
		if product.FeaturedAsset != nil && a.ID == product.FeaturedAsset.ID {
			continue
		}
		detail.Images = append(detail.Images, a.Preview)
	}
	for _, v := range product.Variants {
		detail.Variants = append(detail.Variants, VariantView{
			ID:         v.ID,
			Name:       v.Name,
			SKU:        v.SKU,
			Price:      i18n.NewMoney(locale, v.CurrencyCode, int64(v.PriceWithTax)),
			StockLevel: v.StockLevel,
			InCart:     inCart[v.ID],
		})
	}
	return detail, nil
}

// breadcrumbs picks the deepest collection the product belongs to and drops
// the engine's synthetic root entry.
func breadcrumbs(p *commerce.Product) []commerce.Breadcrumb {
	var deepest []commerce.Breadcrumb
	for _, c := range p.Collections {
		if len(c.Breadcrumbs) > len(deepest) {
			deepest = c.Breadcrumbs
		}
	}
	out := make([]commerce.Breadcrumb, 0, len(deepest))
	for _, b := range deepest {
		if b.Slug == "" || b.Name == "__root_collection__" {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Collections returns the collection tree for the current locale, served from
// cache when one is configured. Cache errors fall through to the engine.
func (s *Service) Collections(ctx context.Context) ([]commerce.Collection, error) {
	locale := requestcontext.Locale(ctx)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, locale)
		switch {
		case err != nil:
			s.metrics.lookup("error")
			s.logger.WarnContext(ctx, "collection cache read failed",
				"locale", locale,
				"error", err,
			)
		case ok:
			s.metrics.lookup("hit")
			return cached, nil
		default:
			s.metrics.lookup("miss")
		}
	}

	collections, err := s.commerce.Collections(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, locale, collections, s.cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "collection cache write failed",
				"locale", locale,
				"error", err,
			)
		}
	}
	return collections, nil
}
