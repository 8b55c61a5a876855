package coupon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/commerce"
	"storefront/internal/events"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

// Commerce is the slice of the engine client reconciliation needs.
type Commerce interface {
	CouponPromotions(ctx context.Context) ([]commerce.Promotion, error)
	ActiveOrder(ctx context.Context) (*commerce.Order, error)
	RemoveCouponCode(ctx context.Context, code string) (*commerce.Order, error)
	RemoveOrderLine(ctx context.Context, lineID string) (*commerce.Order, error)
}

// Result reports what a reconciliation pass did. Errors are informational;
// reconciliation never fails the surrounding request.
type Result struct {
	Planned      Removals
	RemovedCodes []string
	RemovedLines []string
	Errors       []error
	// Order is the latest order state seen, nil when there is no active order.
	Order *commerce.Order
}

// Changed reports whether anything was removed.
func (r *Result) Changed() bool {
	return len(r.RemovedCodes) > 0 || len(r.RemovedLines) > 0
}

// Reconciler applies coupon removal plans against the engine.
type Reconciler struct {
	commerce Commerce
	logger   *slog.Logger
	metrics  *Metrics
	events   events.Emitter

	rulesTTL time.Duration
	mu       sync.Mutex
	rules    Rules
	rulesAt  time.Time
	clockNow func() time.Time
}

type Option func(*Reconciler)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(r *Reconciler) {
		r.metrics = m
	}
}

func WithEvents(e events.Emitter) Option {
	return func(r *Reconciler) {
		r.events = e
	}
}

// WithRulesTTL caches parsed coupon rules for ttl. Zero disables caching.
func WithRulesTTL(ttl time.Duration) Option {
	return func(r *Reconciler) {
		r.rulesTTL = ttl
	}
}

// WithClock drives the rules cache expiry.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.clockNow = now
	}
}

func NewReconciler(c Commerce, opts ...Option) *Reconciler {
	r := &Reconciler{
		commerce: c,
		logger:   slog.Default(),
		clockNow: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// now is the request time, so one request evaluates expiry consistently.
func (r *Reconciler) now(ctx context.Context) time.Time {
	return requestcontext.Now(ctx)
}

// Rules returns the current coupon rules, from cache when fresh.
func (r *Reconciler) Rules(ctx context.Context) (Rules, error) {
	if r.rulesTTL > 0 {
		r.mu.Lock()
		if r.rules != nil && r.clockNow().Sub(r.rulesAt) < r.rulesTTL {
			rules := r.rules
			r.mu.Unlock()
			return rules, nil
		}
		r.mu.Unlock()
	}

	promotions, err := r.commerce.CouponPromotions(ctx)
	if err != nil {
		return nil, err
	}
	rules, problems := ParseRules(promotions)
	r.metrics.rulesSkipped(len(problems))
	for _, p := range problems {
		r.logger.WarnContext(ctx, "coupon condition ignored", "error", p)
	}

	if r.rulesTTL > 0 {
		r.mu.Lock()
		r.rules = rules
		r.rulesAt = r.clockNow()
		r.mu.Unlock()
	}
	return rules, nil
}

// Rule looks up the rule for a coupon code. ok is false for codes the
// storefront has no rule for.
func (r *Reconciler) Rule(ctx context.Context, code string) (Rule, bool, error) {
	rules, err := r.Rules(ctx)
	if err != nil {
		return Rule{}, false, err
	}
	rule, ok := rules[code]
	return rule, ok, nil
}

// Evaluate checks whether code's conditions hold for order. Unknown codes
// pass; the engine already accepted them.
func (r *Reconciler) Evaluate(ctx context.Context, order *commerce.Order, code string) (Reason, error) {
	rule, ok, err := r.Rule(ctx, code)
	if err != nil || !ok {
		return "", err
	}
	return Evaluate(order, rule, r.now(ctx)), nil
}

// Reconcile fetches the active order and brings it in line with its coupons.
func (r *Reconciler) Reconcile(ctx context.Context) *Result {
	order, err := r.commerce.ActiveOrder(ctx)
	if err != nil {
		r.metrics.failure("active_order")
		r.logger.WarnContext(ctx, "coupon reconciliation skipped, active order unavailable",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return &Result{Errors: []error{fmt.Errorf("load active order: %w", err)}}
	}
	return r.ReconcileOrder(ctx, order)
}

// ReconcileOrder reconciles an order the caller has just loaded or mutated.
// Codes are removed before lines so the engine recalculates discounts first.
func (r *Reconciler) ReconcileOrder(ctx context.Context, order *commerce.Order) *Result {
	start := time.Now()
	defer r.metrics.observeRun(start)

	res := &Result{Order: order}
	if order.IsEmpty() {
		return res
	}

	rules, err := r.Rules(ctx)
	if err != nil {
		// Without rules the structural checks still apply.
		r.metrics.failure("rules")
		r.logger.WarnContext(ctx, "coupon rules unavailable, reconciling structurally",
			"order_code", order.Code,
			"error", err,
		)
		res.Errors = append(res.Errors, fmt.Errorf("load coupon rules: %w", err))
		rules = Rules{}
	}

	res.Planned = Plan(order, rules, r.now(ctx))
	if res.Planned.Empty() {
		return res
	}

	for _, c := range res.Planned.Codes {
		updated, err := r.commerce.RemoveCouponCode(ctx, c.Code)
		if err != nil {
			r.metrics.failure("remove_code")
			r.logger.ErrorContext(ctx, "failed to remove coupon code",
				"order_code", order.Code,
				"coupon_code", c.Code,
				"reason", c.Reason,
				"error", err,
			)
			res.Errors = append(res.Errors, fmt.Errorf("remove coupon %s: %w", c.Code, err))
			continue
		}
		r.metrics.removal("code", c.Reason)
		res.RemovedCodes = append(res.RemovedCodes, c.Code)
		if updated != nil {
			res.Order = updated
		}
	}

	for _, l := range res.Planned.Lines {
		if _, still := res.Order.Line(l.LineID); !still {
			// The engine dropped it together with the code.
			res.RemovedLines = append(res.RemovedLines, l.LineID)
			r.metrics.removal("line", l.Reason)
			continue
		}
		updated, err := r.commerce.RemoveOrderLine(ctx, l.LineID)
		if err != nil {
			if dErrors.HasCode(err, dErrors.CodeNotFound) {
				res.RemovedLines = append(res.RemovedLines, l.LineID)
				continue
			}
			r.metrics.failure("remove_line")
			r.logger.ErrorContext(ctx, "failed to remove coupon line",
				"order_code", order.Code,
				"line_id", l.LineID,
				"coupon_code", l.CouponCode,
				"reason", l.Reason,
				"error", err,
			)
			res.Errors = append(res.Errors, fmt.Errorf("remove line %s: %w", l.LineID, err))
			continue
		}
		r.metrics.removal("line", l.Reason)
		res.RemovedLines = append(res.RemovedLines, l.LineID)
		if updated != nil {
			res.Order = updated
		}
	}

	if res.Changed() {
		r.logger.InfoContext(ctx, "coupon reconciliation applied",
			"order_code", order.Code,
			"removed_codes", res.RemovedCodes,
			"removed_lines", res.RemovedLines,
		)
		events.Publish(ctx, r.events, events.Event{
			Type:      events.CouponReconciled,
			OrderCode: order.Code,
			Payload: map[string]any{
				"removed_codes": res.RemovedCodes,
				"removed_lines": res.RemovedLines,
				"planned":       res.Planned,
			},
		})
	}
	return res
}
