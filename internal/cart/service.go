// Package cart implements the cart loader and its actions. Every mutation is
// followed by coupon reconciliation.
package cart

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/commerce"
	"storefront/internal/coupon"
	"storefront/internal/events"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

// Commerce is the slice of the engine client the cart needs.
type Commerce interface {
	ActiveOrder(ctx context.Context) (*commerce.Order, error)
	AddItemToOrder(ctx context.Context, variantID string, quantity int, couponCode string) (*commerce.Order, error)
	AdjustOrderLine(ctx context.Context, lineID string, quantity int) (*commerce.Order, error)
	RemoveOrderLine(ctx context.Context, lineID string) (*commerce.Order, error)
	ApplyCouponCode(ctx context.Context, code string) (*commerce.Order, error)
	RemoveCouponCode(ctx context.Context, code string) (*commerce.Order, error)
}

// Reconciler is implemented by *coupon.Reconciler.
type Reconciler interface {
	ReconcileOrder(ctx context.Context, order *commerce.Order) *coupon.Result
	Rule(ctx context.Context, code string) (coupon.Rule, bool, error)
}

// Reasons attached to cart validation errors.
const (
	ReasonCouponLineLocked          = "coupon_line_locked"
	ReasonCouponProductsUnavailable = "coupon_products_unavailable"
	ReasonCouponNotApplied          = "coupon_not_applied"
)

// Adjustment describes what reconciliation changed, for a toast.
type Adjustment struct {
	RemovedCodes []string `json:"removed_codes,omitempty"`
	RemovedLines []string `json:"removed_lines,omitempty"`
}

// View is the cart payload.
type View struct {
	Order      *OrderView  `json:"order"`
	Adjustment *Adjustment `json:"adjustment,omitempty"`
}

type Service struct {
	commerce   Commerce
	reconciler Reconciler
	events     events.Emitter
	earnRate   decimal.Decimal
	logger     *slog.Logger
}

type Option func(*Service)

func WithEvents(e events.Emitter) Option {
	return func(s *Service) {
		s.events = e
	}
}

func WithEarnRate(rate decimal.Decimal) Option {
	return func(s *Service) {
		s.earnRate = rate
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(c Commerce, reconciler Reconciler, opts ...Option) *Service {
	s := &Service{
		commerce:   c,
		reconciler: reconciler,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get loads the cart, reconciling coupons first so the shopper never sees a
// coupon product the engine would not honour.
func (s *Service) Get(ctx context.Context) (*View, error) {
	order, err := s.commerce.ActiveOrder(ctx)
	if err != nil {
		return nil, err
	}
	return s.settle(ctx, order), nil
}

// AddItem adds a regular line.
func (s *Service) AddItem(ctx context.Context, variantID string, quantity int) (*View, error) {
	if variantID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "variant id is required")
	}
	if quantity < 1 {
		return nil, dErrors.New(dErrors.CodeValidation, "quantity must be at least 1")
	}
	order, err := s.commerce.AddItemToOrder(ctx, variantID, quantity, "")
	if err != nil {
		return nil, err
	}
	events.Publish(ctx, s.events, events.Event{
		Type:      events.CartItemAdded,
		OrderCode: order.Code,
		Payload:   map[string]any{"variant_id": variantID, "quantity": quantity},
	})
	return s.settle(ctx, order), nil
}

// AdjustLine sets a regular line's quantity; zero removes it.
func (s *Service) AdjustLine(ctx context.Context, lineID string, quantity int) (*View, error) {
	if quantity < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "quantity must not be negative")
	}
	if _, err := s.regularLine(ctx, lineID); err != nil {
		return nil, err
	}
	if quantity == 0 {
		return s.removeLine(ctx, lineID)
	}
	order, err := s.commerce.AdjustOrderLine(ctx, lineID, quantity)
	if err != nil {
		return nil, err
	}
	return s.settle(ctx, order), nil
}

// RemoveLine removes a regular line. Coupon products go away with their
// coupon, not individually.
func (s *Service) RemoveLine(ctx context.Context, lineID string) (*View, error) {
	if _, err := s.regularLine(ctx, lineID); err != nil {
		return nil, err
	}
	return s.removeLine(ctx, lineID)
}

func (s *Service) removeLine(ctx context.Context, lineID string) (*View, error) {
	order, err := s.commerce.RemoveOrderLine(ctx, lineID)
	if err != nil {
		return nil, err
	}
	events.Publish(ctx, s.events, events.Event{
		Type:      events.CartLineRemoved,
		OrderCode: order.Code,
		Payload:   map[string]any{"line_id": lineID},
	})
	return s.settle(ctx, order), nil
}

func (s *Service) regularLine(ctx context.Context, lineID string) (commerce.OrderLine, error) {
	order, err := s.commerce.ActiveOrder(ctx)
	if err != nil {
		return commerce.OrderLine{}, err
	}
	line, ok := order.Line(lineID)
	if !ok {
		return commerce.OrderLine{}, dErrors.New(dErrors.CodeNotFound, "cart line not found")
	}
	if line.CouponCode() != "" {
		return commerce.OrderLine{}, dErrors.WithReason(dErrors.CodeValidation, ReasonCouponLineLocked,
			"coupon products cannot be changed; remove the coupon instead")
	}
	return line, nil
}

// ApplyCoupon applies a code, checks the storefront-side conditions and adds
// the coupon's products. If a product cannot be added the code is rolled back.
func (s *Service) ApplyCoupon(ctx context.Context, code string) (*View, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "coupon code is required")
	}

	order, err := s.commerce.ApplyCouponCode(ctx, code)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnavailable) || dErrors.HasCode(err, dErrors.CodeTimeout) {
			return nil, err
		}
		return nil, dErrors.WithReason(dErrors.CodeValidation, dErrors.ReasonOf(err), couponMessage(err))
	}

	rule, known, err := s.reconciler.Rule(ctx, code)
	if err != nil {
		s.logger.WarnContext(ctx, "coupon rules unavailable, trusting engine",
			"coupon_code", code,
			"error", err,
		)
	}
	if known {
		if reason := coupon.Evaluate(order, rule, requestcontext.Now(ctx)); reason != "" {
			s.rollbackCoupon(ctx, code, nil)
			return nil, dErrors.WithReason(dErrors.CodeValidation, string(reason), conditionMessage(reason))
		}

		var added []string
		for _, variantID := range rule.LinkedVariantIDs {
			if hasCouponProduct(order, variantID, code) {
				continue
			}
			before := lineIDs(order)
			updated, err := s.commerce.AddItemToOrder(ctx, variantID, 1, code)
			if err != nil {
				s.logger.ErrorContext(ctx, "failed to add coupon product",
					"coupon_code", code,
					"variant_id", variantID,
					"error", err,
				)
				s.rollbackCoupon(ctx, code, added)
				return nil, dErrors.WithReason(dErrors.CodeUnavailable, ReasonCouponProductsUnavailable,
					"the coupon's products are not available right now")
			}
			added = append(added, newLineIDs(before, updated)...)
			order = updated
		}
	}

	events.Publish(ctx, s.events, events.Event{
		Type:      events.CouponApplied,
		OrderCode: order.Code,
		Payload:   map[string]any{"coupon_code": code},
	})
	return s.settle(ctx, order), nil
}

// rollbackCoupon undoes a partial coupon application. Failures are logged;
// the next reconciliation pass removes any leftovers.
func (s *Service) rollbackCoupon(ctx context.Context, code string, lineIDs []string) {
	for _, id := range lineIDs {
		if _, err := s.commerce.RemoveOrderLine(ctx, id); err != nil {
			s.logger.ErrorContext(ctx, "coupon rollback: failed to remove line",
				"coupon_code", code,
				"line_id", id,
				"error", err,
			)
		}
	}
	if _, err := s.commerce.RemoveCouponCode(ctx, code); err != nil {
		s.logger.ErrorContext(ctx, "coupon rollback: failed to remove code",
			"coupon_code", code,
			"error", err,
		)
	}
}

// RemoveCoupon removes a code and every line it added.
func (s *Service) RemoveCoupon(ctx context.Context, code string) (*View, error) {
	order, err := s.commerce.ActiveOrder(ctx)
	if err != nil {
		return nil, err
	}
	if !order.HasCoupon(code) {
		return nil, dErrors.WithReason(dErrors.CodeNotFound, ReasonCouponNotApplied, "coupon is not applied")
	}
	updated, err := s.commerce.RemoveCouponCode(ctx, code)
	if err != nil {
		return nil, err
	}
	order = updated
	for _, l := range updated.Lines {
		if l.CouponCode() != code {
			continue
		}
		next, err := s.commerce.RemoveOrderLine(ctx, l.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to remove coupon line",
				"coupon_code", code,
				"line_id", l.ID,
				"error", err,
			)
			continue
		}
		order = next
	}
	return s.settle(ctx, order), nil
}

// settle reconciles and shapes the result.
func (s *Service) settle(ctx context.Context, order *commerce.Order) *View {
	view := &View{}
	if s.reconciler != nil && !order.IsEmpty() {
		res := s.reconciler.ReconcileOrder(ctx, order)
		order = res.Order
		if res.Changed() {
			view.Adjustment = &Adjustment{RemovedCodes: res.RemovedCodes, RemovedLines: res.RemovedLines}
		}
	}
	view.Order = NewOrderView(order, requestcontext.Locale(ctx), s.earnRate)
	return view
}

func hasCouponProduct(order *commerce.Order, variantID, code string) bool {
	for _, l := range order.Lines {
		if l.ProductVariant.ID == variantID && l.CouponCode() == code {
			return true
		}
	}
	return false
}

func lineIDs(order *commerce.Order) map[string]bool {
	ids := make(map[string]bool, len(order.Lines))
	for _, l := range order.Lines {
		ids[l.ID] = true
	}
	return ids
}

func newLineIDs(before map[string]bool, order *commerce.Order) []string {
	var out []string
	if order == nil {
		return out
	}
	for _, l := range order.Lines {
		if !before[l.ID] {
			out = append(out, l.ID)
		}
	}
	return out
}

func couponMessage(err error) string {
	if msg := dErrors.MessageOf(err); msg != "" {
		return msg
	}
	return "coupon could not be applied"
}

func conditionMessage(reason coupon.Reason) string {
	switch reason {
	case coupon.ReasonCouponExpired:
		return "this coupon has expired"
	case coupon.ReasonBelowMinimumAmount:
		return "your order does not reach this coupon's minimum amount"
	case coupon.ReasonProductsConditionUnmet:
		return "your order does not contain the products this coupon requires"
	default:
		return "coupon conditions are not met"
	}
}
