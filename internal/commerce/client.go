// Package commerce is the storefront's client for the commerce engine's
// GraphQL Shop API. It owns transport concerns (channel token, bearer token
// round trip, language selection, circuit breaking, tracing) and exposes one
// typed method per engine operation.
package commerce

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

	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/platform/circuit"
	"storefront/pkg/requestcontext"
)

const (
	headerChannelToken = "vendure-token"
	headerAuthToken    = "vendure-auth-token"

	maxResponseBytes = 8 << 20
)

// Client talks to the Shop API.
type Client struct {
	endpoint     *url.URL
	channelToken string
	httpClient   *http.Client
	breaker      *circuit.Breaker
	logger       *slog.Logger
	metrics      *Metrics
	tracer       trace.Tracer
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

func WithMetrics(m *Metrics) Option {
	return func(cl *Client) {
		cl.metrics = m
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(cl *Client) {
		cl.breaker = b
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cl *Client) {
		cl.tracer = tp.Tracer("storefront/commerce")
	}
}

// New creates a Shop API client.
func New(endpoint, channelToken string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse commerce endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("commerce endpoint %q must be absolute", endpoint)
	}
	c := &Client{
		endpoint:     u,
		channelToken: channelToken,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       slog.Default(),
		tracer:       otel.Tracer("storefront/commerce"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type graphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Do executes one GraphQL operation and decodes its data into out.
func (c *Client) Do(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	ctx, span := c.tracer.Start(ctx, "commerce."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("graphql.operation.name", operation)),
	)
	defer span.End()

	start := time.Now()
	err := c.do(ctx, operation, query, vars, out)
	c.metrics.observe(operation, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		c.logger.DebugContext(ctx, "commerce operation failed",
			"request_id", requestcontext.RequestID(ctx),
			"operation", operation,
			"error", err,
		)
	}
	return err
}

func (c *Client) do(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	if c.breaker != nil && !c.breaker.Allow() {
		return dErrors.New(dErrors.CodeUnavailable, "commerce engine unavailable")
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars, OperationName: operation})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode commerce request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(ctx), bytes.NewReader(body))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to build commerce request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.channelToken != "" {
		req.Header.Set(headerChannelToken, c.channelToken)
	}
	if token := requestcontext.AuthToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure(ctx)
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "commerce engine timed out")
		}
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "commerce engine unreachable")
	}
	defer resp.Body.Close()

	requestcontext.ReportAuthToken(ctx, resp.Header.Get(headerAuthToken))

	if resp.StatusCode >= http.StatusInternalServerError {
		c.recordFailure(ctx)
		return dErrors.New(dErrors.CodeUpstream, fmt.Sprintf("commerce engine returned %d", resp.StatusCode))
	}
	c.recordSuccess()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, "failed to read commerce response")
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, fmt.Sprintf("malformed commerce response (status %d)", resp.StatusCode))
	}
	if len(envelope.Errors) > 0 {
		return graphQLErr(envelope.Errors)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return dErrors.New(dErrors.CodeUpstream, fmt.Sprintf("commerce engine returned %d", resp.StatusCode))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, "malformed commerce response")
	}
	return nil
}

func (c *Client) requestURL(ctx context.Context) string {
	u := *c.endpoint
	if locale := requestcontext.Locale(ctx); locale != "" {
		q := u.Query()
		q.Set("languageCode", locale)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (c *Client) recordFailure(ctx context.Context) {
	if c.breaker == nil {
		return
	}
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.metrics.incrementBreakerOpened()
		c.logger.WarnContext(ctx, "commerce circuit breaker opened",
			"breaker", c.breaker.Name(),
		)
	}
}

func (c *Client) recordSuccess() {
	if c.breaker == nil {
		return
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.Info("commerce circuit breaker closed", "breaker", c.breaker.Name())
	}
}

func graphQLErr(errs []graphQLError) error {
	first := errs[0]
	switch first.Extensions.Code {
	case "FORBIDDEN":
		return dErrors.WithReason(dErrors.CodeUnauthorized, first.Extensions.Code, "not authorized for this operation")
	case "ENTITY_NOT_FOUND":
		return dErrors.WithReason(dErrors.CodeNotFound, first.Extensions.Code, first.Message)
	case "USER_INPUT_ERROR", "BAD_USER_INPUT":
		return dErrors.WithReason(dErrors.CodeValidation, first.Extensions.Code, first.Message)
	}
	return dErrors.WithReason(dErrors.CodeUpstream, first.Extensions.Code, first.Message)
}

// Health runs a trivial query so readiness checks cover the engine.
func (c *Client) Health(ctx context.Context) error {
	var out struct {
		ActiveChannel struct {
			Code string `json:"code"`
		} `json:"activeChannel"`
	}
	return c.Do(ctx, "Health", `query Health { activeChannel { code } }`, nil, &out)
}
