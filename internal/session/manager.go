package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/pkg/requestcontext"
)

// Manager loads the session for each request and commits changes before the
// response headers go out.
type Manager struct {
	store      Store
	codec      *Codec
	ttl        time.Duration
	cookieName string
	secure     bool
	logger     *slog.Logger
}

type Option func(*Manager)

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func WithCookieName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.cookieName = name
		}
	}
}

func WithSecureCookie(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager. Defaults: 30 day TTL, cookie "__session".
func NewManager(store Store, secret string, opts ...Option) *Manager {
	m := &Manager{
		store:      store,
		ttl:        30 * 24 * time.Hour,
		cookieName: "__session",
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.codec = NewCodec(secret, m.ttl)
	return m
}

// Middleware binds the session, its id and the engine token box to the
// request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		now := requestcontext.Now(ctx)

		sess := m.load(ctx, r, now)
		box := requestcontext.NewAuthTokenBox(sess.AuthToken())

		ctx = WithSession(ctx, sess)
		ctx = requestcontext.WithSessionID(ctx, sess.ID())
		ctx = requestcontext.WithAuthTokenBox(ctx, box)

		cw := &commitWriter{ResponseWriter: w}
		cw.commit = func() { m.commit(ctx, w, sess, box, now) }

		next.ServeHTTP(cw, r.WithContext(ctx))
		cw.ensureCommitted()
	})
}

func (m *Manager) load(ctx context.Context, r *http.Request, now time.Time) *Session {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		sid, err := m.codec.Decode(cookie.Value, now)
		if err != nil {
			m.logger.DebugContext(ctx, "discarding invalid session cookie",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		} else {
			rec, err := m.store.Load(ctx, sid)
			if err == nil {
				return newSession(*rec, false)
			}
			m.logger.DebugContext(ctx, "session record unavailable",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
	}
	return newSession(Record{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}, true)
}

func (m *Manager) commit(ctx context.Context, w http.ResponseWriter, sess *Session, box *requestcontext.AuthTokenBox, now time.Time) {
	if box.Changed() {
		sess.setAuthToken(box.Token())
	}
	rec, dirty := sess.snapshot()
	if !dirty {
		return
	}
	rec.UpdatedAt = now
	if err := m.store.Save(ctx, rec, m.ttl); err != nil {
		// The response still goes out; the visitor keeps the previous state.
		m.logger.ErrorContext(ctx, "failed to save session",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return
	}
	value, err := m.codec.Encode(rec.ID, now)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to sign session cookie",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	sess.markClean()
}

// commitWriter runs commit once, right before the first header write.
type commitWriter struct {
	http.ResponseWriter
	once   sync.Once
	commit func()
}

func (c *commitWriter) ensureCommitted() {
	c.once.Do(c.commit)
}

func (c *commitWriter) WriteHeader(code int) {
	c.ensureCommitted()
	c.ResponseWriter.WriteHeader(code)
}

func (c *commitWriter) Write(b []byte) (int, error) {
	c.ensureCommitted()
	return c.ResponseWriter.Write(b)
}

func (c *commitWriter) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}
