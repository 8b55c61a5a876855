package loyalty

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront/internal/commerce"
	"storefront/internal/loyalty/mocks"
	dErrors "storefront/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/loyalty-mocks.go -package=mocks Commerce

type LoyaltyServiceSuite struct {
	suite.Suite
	ctx      context.Context
	commerce *mocks.MockCommerce
	svc      *Service
}

func TestLoyaltyServiceSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyServiceSuite))
}

func (s *LoyaltyServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.commerce = mocks.NewMockCommerce(ctrl)
	s.ctx = context.Background()
	policy, err := ParsePolicy(100, 1000, "0.01")
	s.Require().NoError(err)
	s.svc = NewService(s.commerce, policy, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *LoyaltyServiceSuite) signedIn() {
	s.commerce.EXPECT().ActiveCustomer(gomock.Any()).Return(&commerce.Customer{ID: "c1"}, nil)
}

func orderWith(total, applied int) *commerce.Order {
	o := &commerce.Order{
		Code:            "ORD",
		CurrencyCode:    "USD",
		SubTotalWithTax: commerce.Money(total + applied),
		TotalWithTax:    commerce.Money(total),
		Lines:           []commerce.OrderLine{{ID: "l1", Quantity: 1}},
	}
	o.CustomFields.LoyaltyPointsUsed = applied
	return o
}

func (s *LoyaltyServiceSuite) TestGuestsAreUnauthorized() {
	s.commerce.EXPECT().ActiveCustomer(gomock.Any()).Return(nil, nil).Times(4)

	_, err := s.svc.Summary(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	_, err = s.svc.Apply(s.ctx, 1000)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	_, err = s.svc.Remove(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	_, err = s.svc.History(s.ctx, 1)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *LoyaltyServiceSuite) TestSummary() {
	s.signedIn()
	s.commerce.EXPECT().LoyaltyBalance(gomock.Any()).Return(2500, nil)
	s.commerce.EXPECT().LoyaltyTransactions(gomock.Any(), 0, 5).
		Return(&commerce.LoyaltyTransactionList{Items: []commerce.LoyaltyTransaction{{ID: "t1", Points: 120}}, TotalItems: 1}, nil)
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(orderWith(9000, 1000), nil)

	summary, err := s.svc.Summary(s.ctx)

	s.Require().NoError(err)
	s.Equal(2500, summary.Balance)
	s.Len(summary.Recent, 1)
	s.Equal(1000, summary.Applied)
	s.Equal(100, summary.EarnPreview)
	s.Equal(100, summary.Unit)
	s.Equal(1000, summary.Minimum)
}

func (s *LoyaltyServiceSuite) TestSummary_NoActiveOrder() {
	s.signedIn()
	s.commerce.EXPECT().LoyaltyBalance(gomock.Any()).Return(0, nil)
	s.commerce.EXPECT().LoyaltyTransactions(gomock.Any(), 0, 5).Return(&commerce.LoyaltyTransactionList{}, nil)
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(nil, nil)

	summary, err := s.svc.Summary(s.ctx)

	s.Require().NoError(err)
	s.Zero(summary.Applied)
	s.Zero(summary.EarnPreview)
}

func (s *LoyaltyServiceSuite) TestSummary_PropagatesEngineError() {
	s.signedIn()
	boom := dErrors.New(dErrors.CodeUnavailable, "engine down")
	s.commerce.EXPECT().LoyaltyBalance(gomock.Any()).Return(0, boom)
	s.commerce.EXPECT().LoyaltyTransactions(gomock.Any(), 0, 5).Return(&commerce.LoyaltyTransactionList{}, nil).AnyTimes()
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := s.svc.Summary(s.ctx)

	s.True(errors.Is(err, boom))
}

func (s *LoyaltyServiceSuite) TestApply() {
	s.signedIn()
	s.commerce.EXPECT().LoyaltyBalance(gomock.Any()).Return(5000, nil)
	s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(orderWith(2000, 1000), nil)
	s.commerce.EXPECT().ApplyLoyaltyPoints(gomock.Any(), 3000).Return(orderWith(0, 3000), nil)

	order, err := s.svc.Apply(s.ctx, 3000)

	s.Require().NoError(err)
	s.Equal(3000, order.CustomFields.LoyaltyPointsUsed)
}

func (s *LoyaltyServiceSuite) TestApply_Rejections() {
	cases := []struct {
		name    string
		points  int
		balance int
		order   *commerce.Order
		reason  string
	}{
		{"multiple of unit", 1050, 5000, orderWith(9000, 0), ReasonNotMultiple},
		{"below minimum", 500, 5000, orderWith(9000, 0), ReasonBelowMinimum},
		{"over balance", 2000, 1500, orderWith(9000, 0), ReasonExceedsBalance},
		{"over order total", 3000, 5000, orderWith(2000, 0), ReasonExceedsOrder},
		{"empty cart", 1000, 5000, nil, ReasonNoActiveOrder},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.signedIn()
			s.commerce.EXPECT().LoyaltyBalance(gomock.Any()).Return(tc.balance, nil)
			s.commerce.EXPECT().ActiveOrder(gomock.Any()).Return(tc.order, nil)

			_, err := s.svc.Apply(s.ctx, tc.points)

			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
			s.Equal(tc.reason, dErrors.ReasonOf(err))
		})
	}
}

func (s *LoyaltyServiceSuite) TestRemove() {
	s.signedIn()
	s.commerce.EXPECT().RemoveLoyaltyPoints(gomock.Any()).Return(orderWith(9000, 0), nil)

	order, err := s.svc.Remove(s.ctx)

	s.Require().NoError(err)
	s.Zero(order.CustomFields.LoyaltyPointsUsed)
}

func (s *LoyaltyServiceSuite) TestHistory_Pages() {
	s.signedIn()
	s.commerce.EXPECT().LoyaltyTransactions(gomock.Any(), 20, 10).
		Return(&commerce.LoyaltyTransactionList{Items: make([]commerce.LoyaltyTransaction, 3), TotalItems: 23}, nil)

	history, err := s.svc.History(s.ctx, 3)

	s.Require().NoError(err)
	s.Equal(3, history.Page)
	s.Equal(3, history.TotalPages)
	s.Equal(23, history.TotalItems)
	s.Len(history.Items, 3)
}

func (s *LoyaltyServiceSuite) TestHistory_ClampsPage() {
	s.signedIn()
	s.commerce.EXPECT().LoyaltyTransactions(gomock.Any(), 0, 10).Return(&commerce.LoyaltyTransactionList{}, nil)

	history, err := s.svc.History(s.ctx, 0)

	s.Require().NoError(err)
	s.Equal(1, history.Page)
	s.Zero(history.TotalPages)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy(100, 1000, "0.05")
	require.NoError(t, err)
	assert.True(t, p.EarnRate.Equal(decimal.RequireFromString("0.05")))

	_, err = ParsePolicy(100, 1000, "five percent")
	assert.Error(t, err)
	_, err = ParsePolicy(0, 1000, "0.01")
	assert.Error(t, err)
}

func TestPolicyCheck_NotPositive(t *testing.T) {
	p := Policy{Unit: 100, Minimum: 0}
	for _, points := range []int{0, -100} {
		err := p.Check(points, 1000, 1000)
		assert.Equal(t, ReasonNotPositive, dErrors.ReasonOf(err))
	}
	assert.NoError(t, p.Check(100, 100, 100))
}

func TestEarnPoints(t *testing.T) {
	rate := decimal.RequireFromString("0.01")
	assert.Equal(t, 123, EarnPoints(12399, rate))
	assert.Equal(t, 0, EarnPoints(0, rate))
	assert.Equal(t, 0, EarnPoints(12399, decimal.Zero))
}
