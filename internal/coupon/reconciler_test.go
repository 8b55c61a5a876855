package coupon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront/internal/commerce"
	"storefront/internal/coupon/mocks"
	"storefront/internal/events"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

//go:generate mockgen -source=reconciler.go -destination=mocks/commerce-mocks.go -package=mocks Commerce

type ReconcilerSuite struct {
	suite.Suite
	ctx      context.Context
	commerce *mocks.MockCommerce
	sink     *events.MemorySink
	rec      *Reconciler
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerSuite))
}

func (s *ReconcilerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.commerce = mocks.NewMockCommerce(ctrl)
	s.sink = events.NewMemorySink()
	s.ctx = requestcontext.WithTime(context.Background(), testNow)
	s.rec = NewReconciler(s.commerce,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithEvents(events.NewPublisher(s.sink)),
	)
}

func (s *ReconcilerSuite) TestNothingToDo() {
	order := &commerce.Order{
		Code:        "ORD1",
		CouponCodes: []string{"GIFT"},
		Lines:       []commerce.OrderLine{regularLine("l1", "v1", 1, 1000), couponLine("l2", "g1", "GIFT")},
	}
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(order, nil)
	s.commerce.EXPECT().CouponPromotions(gomock.Any()).Return([]commerce.Promotion{giftPromotion("GIFT", "", `["g1"]`)}, nil)

	res := s.rec.Reconcile(s.ctx)

	s.False(res.Changed())
	s.Empty(res.Errors)
	s.Same(order, res.Order)
	s.Empty(s.sink.Events())
}

func (s *ReconcilerSuite) TestEmptyCartSkipsRuleLookup() {
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(nil, nil)

	res := s.rec.Reconcile(s.ctx)

	s.False(res.Changed())
	s.Nil(res.Order)
}

func (s *ReconcilerSuite) TestBelowMinimumRemovesCodeThenLine() {
	order := &commerce.Order{
		Code:        "ORD1",
		CouponCodes: []string{"MIN50"},
		Lines:       []commerce.OrderLine{regularLine("l1", "v1", 1, 4000), couponLine("l2", "g2", "MIN50")},
	}
	afterCode := &commerce.Order{
		Code:  "ORD1",
		Lines: []commerce.OrderLine{regularLine("l1", "v1", 1, 4000), couponLine("l2", "g2", "MIN50")},
	}
	afterLine := &commerce.Order{Code: "ORD1", Lines: []commerce.OrderLine{regularLine("l1", "v1", 1, 4000)}}

	s.commerce.EXPECT().CouponPromotions(gomock.Any()).Return([]commerce.Promotion{giftPromotion("MIN50", "5000", `["g2"]`)}, nil)
	gomock.InOrder(
		s.commerce.EXPECT().RemoveCouponCode(gomock.Any(), "MIN50").Return(afterCode, nil),
		s.commerce.EXPECT().RemoveOrderLine(gomock.Any(), "l2").Return(afterLine, nil),
	)

	res := s.rec.ReconcileOrder(s.ctx, order)

	s.Equal([]string{"MIN50"}, res.RemovedCodes)
	s.Equal([]string{"l2"}, res.RemovedLines)
	s.Same(afterLine, res.Order)
	s.Empty(res.Errors)

	published := s.sink.OfType(events.CouponReconciled)
	s.Require().Len(published, 1)
	s.Equal("ORD1", published[0].OrderCode)
}

func (s *ReconcilerSuite) TestLineAlreadyGoneAfterCodeRemoval() {
	order := &commerce.Order{
		CouponCodes: []string{"MIN50"},
		Lines:       []commerce.OrderLine{regularLine("l1", "v1", 1, 100), couponLine("l2", "g2", "MIN50")},
	}
	afterCode := &commerce.Order{Lines: []commerce.OrderLine{regularLine("l1", "v1", 1, 100)}}

	s.commerce.EXPECT().CouponPromotions(gomock.Any()).Return([]commerce.Promotion{giftPromotion("MIN50", "5000", `["g2"]`)}, nil)
	s.commerce.EXPECT().RemoveCouponCode(gomock.Any(), "MIN50").Return(afterCode, nil)

	res := s.rec.ReconcileOrder(s.ctx, order)

	s.Equal([]string{"l2"}, res.RemovedLines)
	s.Empty(res.Errors)
}

func (s *ReconcilerSuite) TestFailuresAreRecordedNotReturned() {
	order := &commerce.Order{
		CouponCodes: []string{"GIFT"},
		Lines:       []commerce.OrderLine{couponLine("l2", "g1", "GIFT"), couponLine("l3", "g1", "GIFT")},
	}
	s.commerce.EXPECT().CouponPromotions(gomock.Any()).Return(nil, nil)
	s.commerce.EXPECT().RemoveCouponCode(gomock.Any(), "GIFT").Return(nil, errors.New("engine timeout"))
	s.commerce.EXPECT().RemoveOrderLine(gomock.Any(), "l2").Return(nil, dErrors.New(dErrors.CodeUpstream, "boom"))
	s.commerce.EXPECT().RemoveOrderLine(gomock.Any(), "l3").Return(&commerce.Order{}, nil)

	res := s.rec.ReconcileOrder(s.ctx, order)

	s.Len(res.Errors, 2)
	s.Empty(res.RemovedCodes)
	s.Equal([]string{"l3"}, res.RemovedLines, "later steps still run after a failure")
}

func (s *ReconcilerSuite) TestRulesUnavailableStillAppliesStructuralChecks() {
	order := &commerce.Order{
		Lines: []commerce.OrderLine{regularLine("l1", "v1", 1, 100), couponLine("l2", "g1", "GONE")},
	}
	s.commerce.EXPECT().CouponPromotions(gomock.Any()).Return(nil, errors.New("plugin missing"))
	s.commerce.EXPECT().RemoveOrderLine(gomock.Any(), "l2").Return(&commerce.Order{}, nil)

	res := s.rec.ReconcileOrder(s.ctx, order)

	s.Len(res.Errors, 1)
	s.Equal([]string{"l2"}, res.RemovedLines)
}

func (s *ReconcilerSuite) TestActiveOrderFailure() {
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeUnavailable, "down"))

	res := s.rec.Reconcile(s.ctx)

	s.Len(res.Errors, 1)
	s.False(res.Changed())
}

func (s *ReconcilerSuite) TestEvaluate() {
	order := &commerce.Order{Lines: []commerce.OrderLine{regularLine("l1", "v1", 1, 100)}}
	s.commerce.EXPECT().CouponPromotions(gomock.Any()).Return([]commerce.Promotion{giftPromotion("MIN50", "5000", `["g2"]`)}, nil).Times(2)

	reason, err := s.rec.Evaluate(s.ctx, order, "MIN50")
	s.Require().NoError(err)
	s.Equal(ReasonBelowMinimumAmount, reason)

	reason, err = s.rec.Evaluate(s.ctx, order, "UNKNOWN")
	s.Require().NoError(err)
	s.Equal(Reason(""), reason)
}

func TestReconciler_RulesAreCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCommerce(ctrl)
	clock := testNow
	rec := NewReconciler(c,
		WithRulesTTL(time.Minute),
		WithClock(func() time.Time { return clock }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	c.EXPECT().CouponPromotions(gomock.Any()).Return([]commerce.Promotion{giftPromotion("GIFT", "", `["g1"]`)}, nil).Times(2)

	for range 3 {
		_, ok, err := rec.Rule(context.Background(), "GIFT")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	clock = clock.Add(time.Minute)
	_, _, err := rec.Rule(context.Background(), "GIFT")
	require.NoError(t, err)
}
