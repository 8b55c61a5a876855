package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront/internal/account/mocks"
	"storefront/internal/commerce"
	"storefront/internal/events"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/account-mocks.go -package=mocks Commerce

type AccountServiceSuite struct {
	suite.Suite
	ctx      context.Context
	box      *requestcontext.AuthTokenBox
	commerce *mocks.MockCommerce
	sink     *events.MemorySink
	svc      *Service
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.commerce = mocks.NewMockCommerce(ctrl)
	s.sink = events.NewMemorySink()
	s.box = requestcontext.NewAuthTokenBox("tok-1")
	s.ctx = requestcontext.WithAuthTokenBox(requestcontext.WithLocale(context.Background(), "en"), s.box)
	s.svc = NewService(s.commerce,
		WithEvents(events.NewPublisher(s.sink)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func (s *AccountServiceSuite) TestLogin() {
	s.commerce.EXPECT().Login(gomock.Any(), "ada@example.com", "secret-pass", true).
		Return(&commerce.CurrentUser{ID: "u1", Identifier: "ada@example.com"}, nil)

	user, err := s.svc.Login(s.ctx, "ada@example.com", "secret-pass", true)

	s.Require().NoError(err)
	s.Equal("u1", user.ID)
	logins := s.sink.OfType(events.CustomerLoggedIn)
	s.Require().Len(logins, 1)
	s.Equal("u1", logins[0].CustomerID)
}

func (s *AccountServiceSuite) TestLogin_InvalidCredentials() {
	s.commerce.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials"))

	_, err := s.svc.Login(s.ctx, "ada@example.com", "wrong", false)

	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	s.Empty(s.sink.Events())
}

func (s *AccountServiceSuite) TestLogout_ClearsTokenEvenWhenEngineFails() {
	s.commerce.EXPECT().Logout(gomock.Any()).Return(errors.New("engine down"))

	s.Require().NoError(s.svc.Logout(s.ctx))
	s.Empty(requestcontext.AuthToken(s.ctx))
	s.True(s.box.Changed())
}

func (s *AccountServiceSuite) TestRegister() {
	in := commerce.RegisterInput{EmailAddress: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Password: "long-enough"}
	s.commerce.EXPECT().Register(gomock.Any(), in).Return(nil)

	s.Require().NoError(s.svc.Register(s.ctx, in))
	s.Len(s.sink.OfType(events.CustomerRegistered), 1)
}

func (s *AccountServiceSuite) TestVerify() {
	s.commerce.EXPECT().VerifyAccount(gomock.Any(), "vtok", "").
		Return(&commerce.CurrentUser{ID: "u1"}, nil)

	user, err := s.svc.Verify(s.ctx, "vtok", "")

	s.Require().NoError(err)
	s.Equal("u1", user.ID)
	s.Len(s.sink.OfType(events.CustomerLoggedIn), 1)
}

func (s *AccountServiceSuite) TestRequestPasswordReset_HidesUnknownEmail() {
	s.commerce.EXPECT().RequestPasswordReset(gomock.Any(), "ghost@example.com").
		Return(dErrors.New(dErrors.CodeNotFound, "no such customer"))

	s.NoError(s.svc.RequestPasswordReset(s.ctx, "ghost@example.com"))
}

func (s *AccountServiceSuite) TestRequestPasswordReset_PropagatesOutage() {
	s.commerce.EXPECT().RequestPasswordReset(gomock.Any(), gomock.Any()).
		Return(dErrors.New(dErrors.CodeUnavailable, "engine unavailable"))

	err := s.svc.RequestPasswordReset(s.ctx, "ada@example.com")
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *AccountServiceSuite) TestOverview() {
	s.commerce.EXPECT().ActiveCustomer(gomock.Any()).
		Return(&commerce.Customer{ID: "c1", FirstName: "Ada"}, nil)
	s.commerce.EXPECT().CustomerOrders(gomock.Any(), 0, recentOrders).
		Return(&commerce.OrderList{
			Items:      []commerce.Order{{Code: "ORD1", CurrencyCode: "USD", TotalWithTax: 1250, TotalQuantity: 2}},
			TotalItems: 7,
		}, nil)

	overview, err := s.svc.Overview(s.ctx)

	s.Require().NoError(err)
	s.Equal("c1", overview.Customer.ID)
	s.Equal(7, overview.TotalOrders)
	s.Require().Len(overview.RecentOrders, 1)
	s.Equal("ORD1", overview.RecentOrders[0].Code)
	s.Contains(overview.RecentOrders[0].Total.Formatted, "12.50")
}

func (s *AccountServiceSuite) TestOverview_GuestIsUnauthorized() {
	s.commerce.EXPECT().ActiveCustomer(gomock.Any()).Return(nil, nil)
	s.commerce.EXPECT().CustomerOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&commerce.OrderList{}, nil)

	_, err := s.svc.Overview(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *AccountServiceSuite) TestChangePassword() {
	s.Run("same password rejected", func() {
		err := s.svc.ChangePassword(s.ctx, "same-pass", "same-pass")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
	s.Run("delegates to engine", func() {
		s.commerce.EXPECT().UpdatePassword(gomock.Any(), "old-pass", "new-pass").Return(nil)
		s.NoError(s.svc.ChangePassword(s.ctx, "old-pass", "new-pass"))
	})
}

func (s *AccountServiceSuite) TestAddresses() {
	s.Run("empty book is an empty slice", func() {
		s.commerce.EXPECT().ActiveCustomer(gomock.Any()).Return(&commerce.Customer{ID: "c1"}, nil)
		addresses, err := s.svc.Addresses(s.ctx)
		s.Require().NoError(err)
		s.NotNil(addresses)
		s.Empty(addresses)
	})
	s.Run("guest", func() {
		s.commerce.EXPECT().ActiveCustomer(gomock.Any()).Return(nil, nil)
		_, err := s.svc.Addresses(s.ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *AccountServiceSuite) TestUpdateAddress_SetsID() {
	s.commerce.EXPECT().UpdateAddress(gomock.Any(), commerce.AddressInput{ID: "a1", City: "London"}).
		Return(&commerce.Address{ID: "a1"}, nil)

	addr, err := s.svc.UpdateAddress(s.ctx, "a1", commerce.AddressInput{City: "London"})

	s.Require().NoError(err)
	s.Equal("a1", addr.ID)
}

func (s *AccountServiceSuite) TestOrders_Paging() {
	s.commerce.EXPECT().CustomerOrders(gomock.Any(), 10, orderPageSize).
		Return(&commerce.OrderList{Items: []commerce.Order{{Code: "ORD11"}}, TotalItems: 21}, nil)

	page, err := s.svc.Orders(s.ctx, 2)

	s.Require().NoError(err)
	s.Equal(2, page.Page)
	s.Equal(3, page.TotalPages)
	s.Equal(21, page.TotalItems)
}

func (s *AccountServiceSuite) TestOrders_ClampsPage() {
	s.commerce.EXPECT().CustomerOrders(gomock.Any(), 0, orderPageSize).
		Return(&commerce.OrderList{}, nil)

	page, err := s.svc.Orders(s.ctx, -3)

	s.Require().NoError(err)
	s.Equal(1, page.Page)
	s.Equal(0, page.TotalPages)
	s.NotNil(page.Items)
}

func (s *AccountServiceSuite) TestOrder() {
	s.Run("found", func() {
		s.commerce.EXPECT().OrderByCode(gomock.Any(), "ORD1").
			Return(&commerce.Order{Code: "ORD1", CurrencyCode: "USD"}, nil)
		view, err := s.svc.Order(s.ctx, "ORD1")
		s.Require().NoError(err)
		s.Equal("ORD1", view.Code)
	})
	s.Run("foreign order is not found", func() {
		s.commerce.EXPECT().OrderByCode(gomock.Any(), "ORD2").
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "forbidden"))
		_, err := s.svc.Order(s.ctx, "ORD2")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
	s.Run("missing", func() {
		s.commerce.EXPECT().OrderByCode(gomock.Any(), "ORD3").Return(nil, nil)
		_, err := s.svc.Order(s.ctx, "ORD3")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
