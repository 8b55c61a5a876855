package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrBufferFull is returned by Emit in async mode when the event was dropped.
var ErrBufferFull = errors.New("event buffer full")

// ErrClosed is returned by Emit after Close.
var ErrClosed = errors.New("event publisher closed")

// Publisher stamps events and hands them to a sink, either synchronously or
// through a bounded buffer drained by a background worker.
type Publisher struct {
	sink    Sink
	logger  *slog.Logger
	metrics *Metrics
	now     func() time.Time

	buffer int
	queue  chan Event
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to async mode with a buffer of n
// events. Events emitted while the buffer is full are dropped.
func WithAsyncBuffer(n int) Option {
	return func(p *Publisher) {
		p.buffer = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		p.now = now
	}
}

func NewPublisher(sink Sink, opts ...Option) *Publisher {
	p := &Publisher{
		sink:   sink,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer > 0 {
		p.queue = make(chan Event, p.buffer)
		p.wg.Add(1)
		go p.run()
	}
	return p
}

// Emit stamps the event with an id and timestamp when missing and delivers
// it. In sync mode the sink error is returned; in async mode only buffer
// exhaustion is reported.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if p == nil {
		return nil
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now().UTC()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	if p.queue == nil {
		return p.write(ctx, event)
	}

	select {
	case p.queue <- event:
		return nil
	default:
		p.metrics.incDropped()
		p.logger.WarnContext(ctx, "event dropped, buffer full",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return ErrBufferFull
	}
}

func (p *Publisher) write(ctx context.Context, event Event) error {
	start := time.Now()
	err := p.sink.Write(ctx, event)
	p.metrics.observeWrite(time.Since(start).Seconds())
	if err != nil {
		p.metrics.incSinkFailure()
		p.logger.ErrorContext(ctx, "event sink write failed",
			"event_type", event.Type,
			"event_id", event.ID,
			"error", err,
		)
		return err
	}
	p.metrics.incEmitted(event.Type)
	return nil
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for event := range p.queue {
		// Request contexts are gone by the time the worker runs.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = p.write(ctx, event)
		cancel()
	}
}

// Close stops accepting events, drains the buffer and closes the sink.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	if p.queue != nil {
		close(p.queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
	return p.sink.Close()
}
