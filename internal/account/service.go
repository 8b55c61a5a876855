// Package account covers customer authentication and the account pages:
// profile, password, address book and order history. Authentication is the
// engine's; the storefront only carries its bearer token in the session.
package account

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"storefront/internal/cart"
	"storefront/internal/commerce"
	"storefront/internal/events"
	"storefront/internal/i18n"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

const (
	recentOrders  = 5
	orderPageSize = 10
)

// Commerce is the slice of the engine client the account pages need.
type Commerce interface {
	Login(ctx context.Context, email, password string, rememberMe bool) (*commerce.CurrentUser, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, in commerce.RegisterInput) error
	VerifyAccount(ctx context.Context, token, password string) (*commerce.CurrentUser, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) (*commerce.CurrentUser, error)
	ActiveCustomer(ctx context.Context) (*commerce.Customer, error)
	UpdateCustomer(ctx context.Context, in commerce.CustomerInput) (*commerce.Customer, error)
	UpdatePassword(ctx context.Context, current, next string) error
	CreateAddress(ctx context.Context, in commerce.AddressInput) (*commerce.Address, error)
	UpdateAddress(ctx context.Context, in commerce.AddressInput) (*commerce.Address, error)
	DeleteAddress(ctx context.Context, id string) error
	CustomerOrders(ctx context.Context, skip, take int) (*commerce.OrderList, error)
	OrderByCode(ctx context.Context, code string) (*commerce.Order, error)
}

type OrderSummary struct {
	Code          string     `json:"code"`
	State         string     `json:"state"`
	PlacedAt      *time.Time `json:"placed_at,omitempty"`
	TotalQuantity int        `json:"total_quantity"`
	Total         i18n.Money `json:"total"`
}

type Overview struct {
	Customer     *commerce.Customer `json:"customer"`
	RecentOrders []OrderSummary     `json:"recent_orders"`
	TotalOrders  int                `json:"total_orders"`
}

type OrderPage struct {
	Items      []OrderSummary `json:"items"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	TotalItems int            `json:"total_items"`
}

type Service struct {
	commerce Commerce
	events   events.Emitter
	earnRate decimal.Decimal
	logger   *slog.Logger
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

func NewService(c Commerce, opts ...Option) *Service {
	s := &Service{commerce: c, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login signs the customer in. The engine's new bearer token reaches the
// session through the request's token box.
func (s *Service) Login(ctx context.Context, email, password string, rememberMe bool) (*commerce.CurrentUser, error) {
	user, err := s.commerce.Login(ctx, email, password, rememberMe)
	if err != nil {
		return nil, err
	}
	events.Publish(ctx, s.events, events.Event{
		Type:       events.CustomerLoggedIn,
		CustomerID: user.ID,
		Payload:    map[string]any{"remember_me": rememberMe},
	})
	s.logger.InfoContext(ctx, "customer logged in",
		"request_id", requestcontext.RequestID(ctx),
		"user_id", user.ID,
	)
	return user, nil
}

// Logout ends the engine session. The stored token is dropped even if the
// engine call fails so the shopper is signed out locally.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.commerce.Logout(ctx); err != nil {
		s.logger.WarnContext(ctx, "engine logout failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	requestcontext.ClearAuthToken(ctx)
	return nil
}

func (s *Service) Register(ctx context.Context, in commerce.RegisterInput) error {
	if err := s.commerce.Register(ctx, in); err != nil {
		return err
	}
	events.Publish(ctx, s.events, events.Event{Type: events.CustomerRegistered})
	return nil
}

// Verify confirms a registration token; the engine signs the customer in.
func (s *Service) Verify(ctx context.Context, token, password string) (*commerce.CurrentUser, error) {
	user, err := s.commerce.VerifyAccount(ctx, token, password)
	if err != nil {
		return nil, err
	}
	events.Publish(ctx, s.events, events.Event{
		Type:       events.CustomerLoggedIn,
		CustomerID: user.ID,
		Payload:    map[string]any{"via": "verification"},
	})
	return user, nil
}

// RequestPasswordReset always succeeds from the caller's point of view for
// unknown addresses so the endpoint cannot be used to probe for accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	err := s.commerce.RequestPasswordReset(ctx, email)
	if err != nil && dErrors.HasCode(err, dErrors.CodeNotFound) {
		return nil
	}
	return err
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) (*commerce.CurrentUser, error) {
	return s.commerce.ResetPassword(ctx, token, password)
}

// Overview loads the customer and their latest orders in parallel.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var (
		customer *commerce.Customer
		orders   *commerce.OrderList
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customer, err = s.commerce.ActiveCustomer(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.commerce.CustomerOrders(gctx, 0, recentOrders)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errUnauthorized()
	}
	return &Overview{
		Customer:     customer,
		RecentOrders: s.summaries(ctx, orders.Items),
		TotalOrders:  orders.TotalItems,
	}, nil
}

func (s *Service) Profile(ctx context.Context) (*commerce.Customer, error) {
	return s.customer(ctx)
}

func (s *Service) UpdateProfile(ctx context.Context, in commerce.CustomerInput) (*commerce.Customer, error) {
	return s.commerce.UpdateCustomer(ctx, in)
}

func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	if current == next {
		return dErrors.New(dErrors.CodeValidation, "the new password must differ from the current one")
	}
	return s.commerce.UpdatePassword(ctx, current, next)
}

func (s *Service) Addresses(ctx context.Context) ([]commerce.Address, error) {
	customer, err := s.customer(ctx)
	if err != nil {
		return nil, err
	}
	if customer.Addresses == nil {
		return []commerce.Address{}, nil
	}
	return customer.Addresses, nil
}

func (s *Service) CreateAddress(ctx context.Context, in commerce.AddressInput) (*commerce.Address, error) {
	return s.commerce.CreateAddress(ctx, in)
}

func (s *Service) UpdateAddress(ctx context.Context, id string, in commerce.AddressInput) (*commerce.Address, error) {
	in.ID = id
	return s.commerce.UpdateAddress(ctx, in)
}

func (s *Service) DeleteAddress(ctx context.Context, id string) error {
	return s.commerce.DeleteAddress(ctx, id)
}

// Orders pages through placed orders. Pages are 1-based.
func (s *Service) Orders(ctx context.Context, page int) (*OrderPage, error) {
	if page < 1 {
		page = 1
	}
	list, err := s.commerce.CustomerOrders(ctx, (page-1)*orderPageSize, orderPageSize)
	if err != nil {
		return nil, err
	}
	return &OrderPage{
		Items:      s.summaries(ctx, list.Items),
		Page:       page,
		TotalItems: list.TotalItems,
		TotalPages: int(math.Ceil(float64(list.TotalItems) / orderPageSize)),
	}, nil
}

// Order loads one placed order. Orders the engine will not show this
// customer are reported as missing.
func (s *Service) Order(ctx context.Context, code string) (*cart.OrderView, error) {
	order, err := s.commerce.OrderByCode(ctx, code)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeForbidden) || dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			return nil, dErrors.New(dErrors.CodeNotFound, "order not found")
		}
		return nil, err
	}
	if order == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "order not found")
	}
	return cart.NewOrderView(order, requestcontext.Locale(ctx), s.earnRate), nil
}

func (s *Service) customer(ctx context.Context) (*commerce.Customer, error) {
	customer, err := s.commerce.ActiveCustomer(ctx)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errUnauthorized()
	}
	return customer, nil
}

func (s *Service) summaries(ctx context.Context, orders []commerce.Order) []OrderSummary {
	locale := requestcontext.Locale(ctx)
	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderSummary{
			Code:          o.Code,
			State:         o.State,
			PlacedAt:      o.OrderPlacedAt,
			TotalQuantity: o.TotalQuantity,
			Total:         i18n.NewMoney(locale, o.CurrencyCode, int64(o.TotalWithTax)),
		})
	}
	return out
}

func errUnauthorized() error {
	return dErrors.New(dErrors.CodeUnauthorized, "sign in to continue")
}
