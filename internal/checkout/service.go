// Package checkout drives the multi-step checkout: customer details,
// addresses, shipping method and payment hand-over.
package checkout

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"storefront/internal/cart"
	"storefront/internal/commerce"
	"storefront/internal/coupon"
	"storefront/internal/events"
	"storefront/internal/i18n"
	"storefront/internal/payment"
	"storefront/internal/session"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

// Reasons attached to checkout validation errors.
const (
	ReasonEmptyCart          = "empty_cart"
	ReasonIncomplete         = "checkout_incomplete"
	ReasonAlreadySignedIn    = "already_signed_in"
	ReasonCartAdjusted       = "cart_adjusted"
	ReasonMethodUnavailable  = "payment_method_unavailable"
	ReasonShippingNotAllowed = "shipping_method_unavailable"
)

// Commerce is the slice of the engine client checkout needs.
type Commerce interface {
	ActiveOrder(ctx context.Context) (*commerce.Order, error)
	ActiveCustomer(ctx context.Context) (*commerce.Customer, error)
	EligibleShippingMethods(ctx context.Context) ([]commerce.ShippingMethodQuote, error)
	EligiblePaymentMethods(ctx context.Context) ([]commerce.PaymentMethodQuote, error)
	SetCustomerForOrder(ctx context.Context, in commerce.CustomerInput) (*commerce.Order, error)
	SetShippingAddress(ctx context.Context, in commerce.AddressInput) (*commerce.Order, error)
	SetBillingAddress(ctx context.Context, in commerce.AddressInput) (*commerce.Order, error)
	SetShippingMethod(ctx context.Context, methodID string) (*commerce.Order, error)
	TransitionOrderToState(ctx context.Context, state string) (*commerce.Order, error)
	AddPaymentToOrder(ctx context.Context, method string, metadata map[string]any) (*commerce.Order, error)
	OrderByCode(ctx context.Context, code string) (*commerce.Order, error)
}

// Reconciler is implemented by *coupon.Reconciler.
type Reconciler interface {
	ReconcileOrder(ctx context.Context, order *commerce.Order) *coupon.Result
}

// Payments is implemented by *payment.Service.
type Payments interface {
	Prepare(ctx context.Context, order *commerce.Order, method string) (*payment.Checkout, error)
}

type ShippingMethodView struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       i18n.Money `json:"price"`
}

type PaymentMethodView struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Eligible           bool   `json:"eligible"`
	EligibilityMessage string `json:"eligibility_message,omitempty"`
	Gateway            bool   `json:"gateway"`
}

// View is the checkout loader payload.
type View struct {
	Order           *cart.OrderView      `json:"order"`
	Adjustment      *cart.Adjustment     `json:"adjustment,omitempty"`
	Progress        Progress             `json:"progress"`
	LoggedIn        bool                 `json:"logged_in"`
	ShippingMethods []ShippingMethodView `json:"shipping_methods"`
	PaymentMethods  []PaymentMethodView  `json:"payment_methods"`
	Addresses       []commerce.Address   `json:"addresses,omitempty"`
}

// PaymentStart tells the client what to do next: open the gateway widget
// (Gateway set) or go to the confirmation page (OrderCode set).
type PaymentStart struct {
	Method    string            `json:"method"`
	Gateway   *payment.Checkout `json:"gateway,omitempty"`
	OrderCode string            `json:"order_code,omitempty"`
	Redirect  string            `json:"redirect,omitempty"`
}

type Service struct {
	commerce       Commerce
	reconciler     Reconciler
	payments       Payments
	gatewayMethods []string
	events         events.Emitter
	earnRate       decimal.Decimal
	logger         *slog.Logger
}

type Option func(*Service)

// WithGatewayMethods names the payment method codes settled through the
// external gateway. Other methods are added to the order directly.
func WithGatewayMethods(codes ...string) Option {
	return func(s *Service) {
		s.gatewayMethods = codes
	}
}

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

func NewService(c Commerce, reconciler Reconciler, payments Payments, opts ...Option) *Service {
	s := &Service{
		commerce:   c,
		reconciler: reconciler,
		payments:   payments,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches everything the checkout page needs in parallel, then
// reconciles coupons on the order.
func (s *Service) Load(ctx context.Context) (*View, error) {
	var (
		order    *commerce.Order
		customer *commerce.Customer
		shipping []commerce.ShippingMethodQuote
		payments []commerce.PaymentMethodQuote
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		order, err = s.commerce.ActiveOrder(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customer, err = s.commerce.ActiveCustomer(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		shipping, err = s.commerce.EligibleShippingMethods(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.commerce.EligiblePaymentMethods(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &View{LoggedIn: customer != nil}
	if customer != nil {
		view.Addresses = customer.Addresses
	}
	if !order.IsEmpty() {
		res := s.reconciler.ReconcileOrder(ctx, order)
		order = res.Order
		if res.Changed() {
			view.Adjustment = &cart.Adjustment{RemovedCodes: res.RemovedCodes, RemovedLines: res.RemovedLines}
		}
	}
	s.fill(ctx, view, order)

	locale := requestcontext.Locale(ctx)
	view.ShippingMethods = make([]ShippingMethodView, 0, len(shipping))
	for _, m := range shipping {
		currency := ""
		if order != nil {
			currency = order.CurrencyCode
		}
		view.ShippingMethods = append(view.ShippingMethods, ShippingMethodView{
			ID:          m.ID,
			Code:        m.Code,
			Name:        m.Name,
			Description: m.Description,
			Price:       i18n.NewMoney(locale, currency, int64(m.PriceWithTax)),
		})
	}
	view.PaymentMethods = make([]PaymentMethodView, 0, len(payments))
	for _, m := range payments {
		view.PaymentMethods = append(view.PaymentMethods, PaymentMethodView{
			Code:               m.Code,
			Name:               m.Name,
			Description:        m.Description,
			Eligible:           m.IsEligible,
			EligibilityMessage: m.EligibilityMessage,
			Gateway:            s.isGateway(m.Code),
		})
	}
	return view, nil
}

// SetCustomer attaches guest details to the order. Signed-in customers are
// already attached by the engine.
func (s *Service) SetCustomer(ctx context.Context, in commerce.CustomerInput) (*View, error) {
	customer, err := s.commerce.ActiveCustomer(ctx)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return nil, dErrors.WithReason(dErrors.CodeValidation, ReasonAlreadySignedIn, "signed-in customers cannot set guest details")
	}
	order, err := s.commerce.SetCustomerForOrder(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.orderView(ctx, order, false), nil
}

// SetAddress sets the shipping address and the billing address, which
// defaults to the shipping address.
func (s *Service) SetAddress(ctx context.Context, shipping commerce.AddressInput, billing *commerce.AddressInput) (*View, error) {
	if _, err := s.commerce.SetShippingAddress(ctx, shipping); err != nil {
		return nil, err
	}
	if billing == nil {
		billing = &shipping
	}
	order, err := s.commerce.SetBillingAddress(ctx, *billing)
	if err != nil {
		return nil, err
	}
	return s.orderView(ctx, order, order.Customer != nil), nil
}

func (s *Service) SetShippingMethod(ctx context.Context, methodID string) (*View, error) {
	methods, err := s.commerce.EligibleShippingMethods(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(methods, func(m commerce.ShippingMethodQuote) bool { return m.ID == methodID }) {
		return nil, dErrors.WithReason(dErrors.CodeValidation, ReasonShippingNotAllowed, "shipping method is not available for this order")
	}
	order, err := s.commerce.SetShippingMethod(ctx, methodID)
	if err != nil {
		return nil, err
	}
	return s.orderView(ctx, order, order.Customer != nil), nil
}

// StartPayment moves the order to ArrangingPayment and either settles it with
// an offline method or prepares the gateway hand-over. Coupons are reconciled
// first; if that changes the cart the shopper has to review it again.
func (s *Service) StartPayment(ctx context.Context, method string) (*PaymentStart, error) {
	order, err := s.commerce.ActiveOrder(ctx)
	if err != nil {
		return nil, err
	}
	if order.IsEmpty() {
		return nil, dErrors.WithReason(dErrors.CodeValidation, ReasonEmptyCart, "the cart is empty")
	}

	res := s.reconciler.ReconcileOrder(ctx, order)
	if res.Changed() {
		if sess := session.FromContext(ctx); sess != nil {
			sess.AddFlash(session.FlashInfo, "Your cart changed: coupon items that no longer apply were removed")
		}
		return nil, dErrors.WithReason(dErrors.CodeConflict, ReasonCartAdjusted, "the cart changed; please review it before paying")
	}
	order = res.Order
	if order.IsEmpty() {
		return nil, dErrors.WithReason(dErrors.CodeValidation, ReasonEmptyCart, "the cart is empty")
	}

	if step := CurrentStep(order, order.Customer != nil); step != StepPayment {
		return nil, dErrors.WithReason(dErrors.CodeValidation, ReasonIncomplete, "complete the "+string(step)+" step first")
	}

	methods, err := s.commerce.EligiblePaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(methods, func(m commerce.PaymentMethodQuote) bool { return m.Code == method && m.IsEligible }) {
		return nil, dErrors.WithReason(dErrors.CodeValidation, ReasonMethodUnavailable, "payment method is not available for this order")
	}

	if order.State != commerce.StateArrangingPayment {
		order, err = s.commerce.TransitionOrderToState(ctx, commerce.StateArrangingPayment)
		if err != nil {
			return nil, err
		}
	}

	events.Publish(ctx, s.events, events.Event{
		Type:      events.CheckoutPaymentStarted,
		OrderCode: order.Code,
		Payload: map[string]any{
			"method": method,
			"amount": int64(order.TotalWithTax),
		},
	})

	if s.isGateway(method) {
		checkout, err := s.payments.Prepare(ctx, order, method)
		if err != nil {
			s.reopen(ctx, order.Code)
			return nil, err
		}
		return &PaymentStart{Method: method, Gateway: checkout}, nil
	}

	placed, err := s.commerce.AddPaymentToOrder(ctx, method, nil)
	if err != nil {
		s.reopen(ctx, order.Code)
		return nil, err
	}
	s.logger.InfoContext(ctx, "order placed",
		"order_code", placed.Code,
		"method", method,
	)
	return &PaymentStart{
		Method:    method,
		OrderCode: placed.Code,
		Redirect:  "/checkout/confirmation/" + placed.Code,
	}, nil
}

// Confirmation loads a placed order. The engine only reveals orders to the
// customer or guest session that placed them; anything else is a 404.
func (s *Service) Confirmation(ctx context.Context, code string) (*cart.OrderView, error) {
	order, err := s.commerce.OrderByCode(ctx, code)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) || dErrors.HasCode(err, dErrors.CodeForbidden) {
			return nil, dErrors.New(dErrors.CodeNotFound, "order not found")
		}
		return nil, err
	}
	if order == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "order not found")
	}
	return cart.NewOrderView(order, requestcontext.Locale(ctx), s.earnRate), nil
}

func (s *Service) reopen(ctx context.Context, orderCode string) {
	if _, err := s.commerce.TransitionOrderToState(ctx, commerce.StateAddingItems); err != nil {
		s.logger.WarnContext(ctx, "failed to return order to AddingItems",
			"order_code", orderCode,
			"error", err,
		)
	}
}

func (s *Service) isGateway(method string) bool {
	return slices.Contains(s.gatewayMethods, method)
}

func (s *Service) orderView(ctx context.Context, order *commerce.Order, loggedIn bool) *View {
	view := &View{LoggedIn: loggedIn}
	s.fill(ctx, view, order)
	return view
}

func (s *Service) fill(ctx context.Context, view *View, order *commerce.Order) {
	view.Order = cart.NewOrderView(order, requestcontext.Locale(ctx), s.earnRate)
	view.Progress = NewProgress(order, view.LoggedIn)
}
