package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront/internal/cart/mocks"
	"storefront/internal/commerce"
	"storefront/internal/coupon"
	"storefront/internal/events"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/cart-mocks.go -package=mocks Commerce,Reconciler

type CartServiceSuite struct {
	suite.Suite
	ctx        context.Context
	commerce   *mocks.MockCommerce
	reconciler *mocks.MockReconciler
	sink       *events.MemorySink
	svc        *Service
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceSuite))
}

func (s *CartServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.commerce = mocks.NewMockCommerce(ctrl)
	s.reconciler = mocks.NewMockReconciler(ctrl)
	s.sink = events.NewMemorySink()
	s.ctx = requestcontext.WithLocale(
		requestcontext.WithTime(context.Background(), time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
		"en",
	)
	s.svc = NewService(s.commerce, s.reconciler,
		WithEvents(events.NewPublisher(s.sink)),
		WithEarnRate(decimal.RequireFromString("0.01")),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

// passthrough makes reconciliation a no-op.
func (s *CartServiceSuite) passthrough() {
	s.reconciler.EXPECT().ReconcileOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *commerce.Order) *coupon.Result {
			return &coupon.Result{Order: o}
		}).AnyTimes()
}

func ptr(s string) *string { return &s }

func line(id, variantID string, qty int) commerce.OrderLine {
	return commerce.OrderLine{ID: id, Quantity: qty, ProductVariant: commerce.ProductVariant{ID: variantID}}
}

func giftLine(id, variantID, code string) commerce.OrderLine {
	l := line(id, variantID, 1)
	l.CustomFields.CouponCode = ptr(code)
	return l
}

func (s *CartServiceSuite) TestGet_EmptyCart() {
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(nil, nil)

	view, err := s.svc.Get(s.ctx)

	s.Require().NoError(err)
	s.Nil(view.Order)
	s.Nil(view.Adjustment)
}

func (s *CartServiceSuite) TestGet_ReportsReconciliation() {
	order := &commerce.Order{Code: "A", CurrencyCode: "USD", SubTotalWithTax: 12345, Lines: []commerce.OrderLine{line("l1", "v1", 1), giftLine("l2", "g1", "GIFT")}}
	after := &commerce.Order{Code: "A", CurrencyCode: "USD", SubTotalWithTax: 12345, Lines: []commerce.OrderLine{line("l1", "v1", 1)}}
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(order, nil)
	s.reconciler.EXPECT().ReconcileOrder(gomock.Any(), order).Return(&coupon.Result{Order: after, RemovedLines: []string{"l2"}})

	view, err := s.svc.Get(s.ctx)

	s.Require().NoError(err)
	s.Require().NotNil(view.Adjustment)
	s.Equal([]string{"l2"}, view.Adjustment.RemovedLines)
	s.Len(view.Order.Lines, 1)
	s.Equal(123, view.Order.EarnPreview)
}

func (s *CartServiceSuite) TestAddItem() {
	s.passthrough()
	order := &commerce.Order{Code: "A", Lines: []commerce.OrderLine{line("l1", "v1", 2)}}
	s.commerce.EXPECT().AddItemToOrder(gomock.Any(), "v1", 2, "").Return(order, nil)

	view, err := s.svc.AddItem(s.ctx, "v1", 2)

	s.Require().NoError(err)
	s.Equal(2, view.Order.Lines[0].Quantity)
	s.Len(s.sink.OfType(events.CartItemAdded), 1)
}

func (s *CartServiceSuite) TestAddItem_Validation() {
	_, err := s.svc.AddItem(s.ctx, "v1", 0)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.svc.AddItem(s.ctx, "", 1)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *CartServiceSuite) TestAdjustLine_ZeroRemoves() {
	s.passthrough()
	order := &commerce.Order{Code: "A", Lines: []commerce.OrderLine{line("l1", "v1", 2), line("l3", "v3", 1)}}
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(order, nil)
	s.commerce.EXPECT().RemoveOrderLine(gomock.Any(), "l1").Return(&commerce.Order{Code: "A", Lines: []commerce.OrderLine{line("l3", "v3", 1)}}, nil)

	view, err := s.svc.AdjustLine(s.ctx, "l1", 0)

	s.Require().NoError(err)
	s.Len(view.Order.Lines, 1)
	s.Len(s.sink.OfType(events.CartLineRemoved), 1)
}

func (s *CartServiceSuite) TestAdjustLine_Quantity() {
	s.passthrough()
	order := &commerce.Order{Lines: []commerce.OrderLine{line("l1", "v1", 2)}}
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(order, nil)
	s.commerce.EXPECT().AdjustOrderLine(gomock.Any(), "l1", 5).Return(&commerce.Order{Lines: []commerce.OrderLine{line("l1", "v1", 5)}}, nil)

	view, err := s.svc.AdjustLine(s.ctx, "l1", 5)

	s.Require().NoError(err)
	s.Equal(5, view.Order.Lines[0].Quantity)
}

func (s *CartServiceSuite) TestCouponLinesAreLocked() {
	order := &commerce.Order{Lines: []commerce.OrderLine{line("l1", "v1", 1), giftLine("l2", "g1", "GIFT")}}
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(order, nil).Times(2)

	_, err := s.svc.AdjustLine(s.ctx, "l2", 3)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal(ReasonCouponLineLocked, dErrors.ReasonOf(err))

	_, err = s.svc.RemoveLine(s.ctx, "l2")
	s.Equal(ReasonCouponLineLocked, dErrors.ReasonOf(err))
}

func (s *CartServiceSuite) TestRemoveLine_Unknown() {
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(&commerce.Order{Lines: []commerce.OrderLine{line("l1", "v1", 1)}}, nil)

	_, err := s.svc.RemoveLine(s.ctx, "nope")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func giftRule() coupon.Rule {
	return coupon.Rule{
		Code:             "GIFT",
		Enabled:          true,
		MinimumAmount:    &coupon.MinimumAmount{Amount: 1000},
		LinkedVariantIDs: []string{"g1", "g2"},
	}
}

func (s *CartServiceSuite) TestApplyCoupon_AddsMissingProducts() {
	s.passthrough()
	applied := &commerce.Order{
		Code:        "A",
		CouponCodes: []string{"GIFT"},
		Lines: []commerce.OrderLine{
			{ID: "l1", Quantity: 1, LinePrice: 5000, ProductVariant: commerce.ProductVariant{ID: "v1"}},
			giftLine("l2", "g1", "GIFT"),
		},
	}
	withGift := &commerce.Order{Code: "A", CouponCodes: []string{"GIFT"}, Lines: append(append([]commerce.OrderLine{}, applied.Lines...), giftLine("l3", "g2", "GIFT"))}

	s.commerce.EXPECT().ApplyCouponCode(gomock.Any(), "GIFT").Return(applied, nil)
	s.reconciler.EXPECT().Rule(gomock.Any(), "GIFT").Return(giftRule(), true, nil)
	s.commerce.EXPECT().AddItemToOrder(gomock.Any(), "g2", 1, "GIFT").Return(withGift, nil)

	view, err := s.svc.ApplyCoupon(s.ctx, " GIFT ")

	s.Require().NoError(err)
	s.Len(view.Order.Lines, 3)
	s.True(view.Order.Lines[2].IsCouponItem)
	s.Len(s.sink.OfType(events.CouponApplied), 1)
}

func (s *CartServiceSuite) TestApplyCoupon_EngineRejects() {
	s.commerce.EXPECT().ApplyCouponCode(gomock.Any(), "BAD").
		Return(nil, dErrors.WithReason(dErrors.CodeValidation, "COUPON_CODE_INVALID_ERROR", "Coupon code \"BAD\" is not valid"))

	_, err := s.svc.ApplyCoupon(s.ctx, "BAD")

	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal("COUPON_CODE_INVALID_ERROR", dErrors.ReasonOf(err))
}

func (s *CartServiceSuite) TestApplyCoupon_EngineUnavailablePassesThrough() {
	s.commerce.EXPECT().ApplyCouponCode(gomock.Any(), "GIFT").
		Return(nil, dErrors.New(dErrors.CodeUnavailable, "commerce engine unavailable"))

	_, err := s.svc.ApplyCoupon(s.ctx, "GIFT")
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *CartServiceSuite) TestApplyCoupon_ConditionNotMetRemovesCode() {
	applied := &commerce.Order{CouponCodes: []string{"GIFT"}, Lines: []commerce.OrderLine{{ID: "l1", Quantity: 1, LinePrice: 500, ProductVariant: commerce.ProductVariant{ID: "v1"}}}}
	s.commerce.EXPECT().ApplyCouponCode(gomock.Any(), "GIFT").Return(applied, nil)
	s.reconciler.EXPECT().Rule(gomock.Any(), "GIFT").Return(giftRule(), true, nil)
	s.commerce.EXPECT().RemoveCouponCode(gomock.Any(), "GIFT").Return(&commerce.Order{}, nil)

	_, err := s.svc.ApplyCoupon(s.ctx, "GIFT")

	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal(string(coupon.ReasonBelowMinimumAmount), dErrors.ReasonOf(err))
}

func (s *CartServiceSuite) TestApplyCoupon_FailedProductAddRollsBack() {
	applied := &commerce.Order{CouponCodes: []string{"GIFT"}, Lines: []commerce.OrderLine{{ID: "l1", Quantity: 1, LinePrice: 5000, ProductVariant: commerce.ProductVariant{ID: "v1"}}}}
	withFirst := &commerce.Order{CouponCodes: []string{"GIFT"}, Lines: append(append([]commerce.OrderLine{}, applied.Lines...), giftLine("l9", "g1", "GIFT"))}

	s.commerce.EXPECT().ApplyCouponCode(gomock.Any(), "GIFT").Return(applied, nil)
	s.reconciler.EXPECT().Rule(gomock.Any(), "GIFT").Return(giftRule(), true, nil)
	gomock.InOrder(
		s.commerce.EXPECT().AddItemToOrder(gomock.Any(), "g1", 1, "GIFT").Return(withFirst, nil),
		s.commerce.EXPECT().AddItemToOrder(gomock.Any(), "g2", 1, "GIFT").
			Return(nil, dErrors.WithReason(dErrors.CodeValidation, "INSUFFICIENT_STOCK_ERROR", "out of stock")),
		s.commerce.EXPECT().RemoveOrderLine(gomock.Any(), "l9").Return(applied, nil),
		s.commerce.EXPECT().RemoveCouponCode(gomock.Any(), "GIFT").Return(&commerce.Order{}, nil),
	)

	_, err := s.svc.ApplyCoupon(s.ctx, "GIFT")

	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.Equal(ReasonCouponProductsUnavailable, dErrors.ReasonOf(err))
	s.Empty(s.sink.OfType(events.CouponApplied))
}

func (s *CartServiceSuite) TestApplyCoupon_RulesUnavailableTrustsEngine() {
	s.passthrough()
	applied := &commerce.Order{CouponCodes: []string{"GIFT"}, Lines: []commerce.OrderLine{line("l1", "v1", 1)}}
	s.commerce.EXPECT().ApplyCouponCode(gomock.Any(), "GIFT").Return(applied, nil)
	s.reconciler.EXPECT().Rule(gomock.Any(), "GIFT").Return(coupon.Rule{}, false, errors.New("plugin down"))

	view, err := s.svc.ApplyCoupon(s.ctx, "GIFT")

	s.Require().NoError(err)
	s.Equal([]string{"GIFT"}, view.Order.CouponCodes)
}

func (s *CartServiceSuite) TestRemoveCoupon() {
	s.passthrough()
	order := &commerce.Order{CouponCodes: []string{"GIFT"}, Lines: []commerce.OrderLine{line("l1", "v1", 1), giftLine("l2", "g1", "GIFT")}}
	afterCode := &commerce.Order{Lines: order.Lines}
	afterLine := &commerce.Order{Lines: []commerce.OrderLine{line("l1", "v1", 1)}}

	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(order, nil)
	s.commerce.EXPECT().RemoveCouponCode(gomock.Any(), "GIFT").Return(afterCode, nil)
	s.commerce.EXPECT().RemoveOrderLine(gomock.Any(), "l2").Return(afterLine, nil)

	view, err := s.svc.RemoveCoupon(s.ctx, "GIFT")

	s.Require().NoError(err)
	s.Len(view.Order.Lines, 1)
	s.Empty(view.Order.CouponCodes)
}

func (s *CartServiceSuite) TestRemoveCoupon_NotApplied() {
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(&commerce.Order{Lines: []commerce.OrderLine{line("l1", "v1", 1)}}, nil)

	_, err := s.svc.RemoveCoupon(s.ctx, "GIFT")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
