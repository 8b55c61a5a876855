// Package gateway is the client for the third-party payment gateway's
// server-side API. The browser widget collects the payment; the storefront
// confirms it here with the secret key and cancels it when the order cannot
// be completed.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"storefront/internal/payment"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

const maxResponseBytes = 1 << 20

type Client struct {
	baseURL    *url.URL
	secretKey  string
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cl *Client) {
		cl.tracer = tp.Tracer("storefront/payment/gateway")
	}
}

func New(baseURL, secretKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("gateway url %q must be absolute", baseURL)
	}
	c := &Client{
		baseURL:    u,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.Default(),
		tracer:     otel.Tracer("storefront/payment/gateway"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type confirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

type cancelRequest struct {
	CancelReason string `json:"cancelReason"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Confirm approves a payment the customer authorised in the widget. The
// payment key doubles as idempotency key so a retried confirmation cannot
// charge twice.
func (c *Client) Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (*payment.Receipt, error) {
	var receipt payment.Receipt
	err := c.call(ctx, "confirm", "/v1/payments/confirm", paymentKey,
		confirmRequest{PaymentKey: paymentKey, OrderID: orderID, Amount: amount}, &receipt)
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Cancel voids a confirmed payment.
func (c *Client) Cancel(ctx context.Context, paymentKey, reason string) error {
	path := "/v1/payments/" + url.PathEscape(paymentKey) + "/cancel"
	return c.call(ctx, "cancel", path, "cancel-"+paymentKey, cancelRequest{CancelReason: reason}, nil)
}

func (c *Client) call(ctx context.Context, operation, path, idempotencyKey string, in, out any) error {
	ctx, span := c.tracer.Start(ctx, "payment.gateway."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("payment.operation", operation)),
	)
	defer span.End()

	err := c.do(ctx, path, idempotencyKey, in, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		c.logger.WarnContext(ctx, "payment gateway call failed",
			"request_id", requestcontext.RequestID(ctx),
			"operation", operation,
			"error", err,
		)
	}
	return err
}

func (c *Client) do(ctx context.Context, path, idempotencyKey string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode gateway request")
	}
	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to build gateway request")
	}
	req.SetBasicAuth(c.secretKey, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "payment gateway timed out")
		}
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "payment gateway unreachable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, "failed to read gateway response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var e errorResponse
		_ = json.Unmarshal(raw, &e)
		if e.Message == "" {
			e.Message = fmt.Sprintf("payment gateway returned %d", resp.StatusCode)
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return dErrors.WithReason(dErrors.CodeUpstream, e.Code, e.Message)
		}
		return dErrors.WithReason(dErrors.CodeValidation, e.Code, e.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, "malformed gateway response")
	}
	return nil
}
