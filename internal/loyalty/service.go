// Package loyalty exposes the customer's loyalty points: balance, history and
// redemption against the active order. One point redeems one minor currency
// unit; the engine's loyalty plugin applies the discount.
package loyalty

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"storefront/internal/commerce"
	dErrors "storefront/pkg/domain-errors"
)

const (
	recentTransactions = 5
	historyPageSize    = 10
)

// Reasons attached to rejected redemptions.
const (
	ReasonNotPositive    = "points_not_positive"
	ReasonNotMultiple    = "points_not_multiple_of_unit"
	ReasonBelowMinimum   = "points_below_minimum"
	ReasonExceedsBalance = "points_exceed_balance"
	ReasonExceedsOrder   = "points_exceed_order_total"
	ReasonNoActiveOrder  = "no_active_order"
)

// Commerce is the slice of the engine client loyalty needs.
type Commerce interface {
	ActiveCustomer(ctx context.Context) (*commerce.Customer, error)
	ActiveOrder(ctx context.Context) (*commerce.Order, error)
	LoyaltyBalance(ctx context.Context) (int, error)
	LoyaltyTransactions(ctx context.Context, skip, take int) (*commerce.LoyaltyTransactionList, error)
	ApplyLoyaltyPoints(ctx context.Context, points int) (*commerce.Order, error)
	RemoveLoyaltyPoints(ctx context.Context) (*commerce.Order, error)
}

// Policy holds the redemption rules.
type Policy struct {
	Unit     int
	Minimum  int
	EarnRate decimal.Decimal
}

// ParsePolicy builds a Policy from configuration values.
func ParsePolicy(unit, minimum int, earnRate string) (Policy, error) {
	rate, err := decimal.NewFromString(earnRate)
	if err != nil {
		return Policy{}, fmt.Errorf("parse earn rate %q: %w", earnRate, err)
	}
	if unit <= 0 {
		return Policy{}, fmt.Errorf("loyalty unit must be positive, got %d", unit)
	}
	return Policy{Unit: unit, Minimum: minimum, EarnRate: rate}, nil
}

// Check validates a redemption of points against balance and the amount
// still payable on the order.
func (p Policy) Check(points, balance int, payable int64) error {
	switch {
	case points <= 0:
		return dErrors.WithReason(dErrors.CodeValidation, ReasonNotPositive, "points must be positive")
	case points%p.Unit != 0:
		return dErrors.WithReason(dErrors.CodeValidation, ReasonNotMultiple,
			fmt.Sprintf("points must be a multiple of %d", p.Unit))
	case points < p.Minimum:
		return dErrors.WithReason(dErrors.CodeValidation, ReasonBelowMinimum,
			fmt.Sprintf("at least %d points must be used", p.Minimum))
	case points > balance:
		return dErrors.WithReason(dErrors.CodeValidation, ReasonExceedsBalance, "not enough points")
	case int64(points) > payable:
		return dErrors.WithReason(dErrors.CodeValidation, ReasonExceedsOrder, "points exceed the order total")
	}
	return nil
}

type Summary struct {
	Balance     int                           `json:"balance"`
	Recent      []commerce.LoyaltyTransaction `json:"recent"`
	Applied     int                           `json:"applied"`
	EarnPreview int                           `json:"earn_preview"`
	Unit        int                           `json:"unit"`
	Minimum     int                           `json:"minimum"`
}

type History struct {
	Items      []commerce.LoyaltyTransaction `json:"items"`
	Page       int                           `json:"page"`
	TotalPages int                           `json:"total_pages"`
	TotalItems int                           `json:"total_items"`
}

type Service struct {
	commerce Commerce
	policy   Policy
	logger   *slog.Logger
}

func NewService(c Commerce, policy Policy, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{commerce: c, policy: policy, logger: logger}
}

func (s *Service) Policy() Policy { return s.policy }

func (s *Service) requireCustomer(ctx context.Context) (*commerce.Customer, error) {
	customer, err := s.commerce.ActiveCustomer(ctx)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "sign in to use loyalty points")
	}
	return customer, nil
}

// Summary loads balance, recent activity and the active order's points.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	if _, err := s.requireCustomer(ctx); err != nil {
		return nil, err
	}
	out := &Summary{Unit: s.policy.Unit, Minimum: s.policy.Minimum}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		balance, err := s.commerce.LoyaltyBalance(gctx)
		out.Balance = balance
		return err
	})
	g.Go(func() error {
		list, err := s.commerce.LoyaltyTransactions(gctx, 0, recentTransactions)
		if err != nil {
			return err
		}
		out.Recent = list.Items
		return nil
	})
	g.Go(func() error {
		order, err := s.commerce.ActiveOrder(gctx)
		if err != nil {
			return err
		}
		if order != nil {
			out.Applied = order.CustomFields.LoyaltyPointsUsed
			out.EarnPreview = EarnPoints(int64(order.SubTotalWithTax), s.policy.EarnRate)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply redeems points against the active order.
func (s *Service) Apply(ctx context.Context, points int) (*commerce.Order, error) {
	if _, err := s.requireCustomer(ctx); err != nil {
		return nil, err
	}

	var (
		balance int
		order   *commerce.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = s.commerce.LoyaltyBalance(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		order, err = s.commerce.ActiveOrder(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if order.IsEmpty() {
		return nil, dErrors.WithReason(dErrors.CodeValidation, ReasonNoActiveOrder, "the cart is empty")
	}

	// Points already applied are released when the new amount replaces them.
	payable := int64(order.TotalWithTax) + int64(order.CustomFields.LoyaltyPointsUsed)
	if err := s.policy.Check(points, balance, payable); err != nil {
		return nil, err
	}

	updated, err := s.commerce.ApplyLoyaltyPoints(ctx, points)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "loyalty points applied",
		"order_code", updated.Code,
		"points", points,
	)
	return updated, nil
}

// Remove releases any points applied to the active order.
func (s *Service) Remove(ctx context.Context) (*commerce.Order, error) {
	if _, err := s.requireCustomer(ctx); err != nil {
		return nil, err
	}
	return s.commerce.RemoveLoyaltyPoints(ctx)
}

// History pages through loyalty transactions, newest first. Pages are 1-based.
func (s *Service) History(ctx context.Context, page int) (*History, error) {
	if _, err := s.requireCustomer(ctx); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	list, err := s.commerce.LoyaltyTransactions(ctx, (page-1)*historyPageSize, historyPageSize)
	if err != nil {
		return nil, err
	}
	return &History{
		Items:      list.Items,
		Page:       page,
		TotalItems: list.TotalItems,
		TotalPages: int(math.Ceil(float64(list.TotalItems) / historyPageSize)),
	}, nil
}
