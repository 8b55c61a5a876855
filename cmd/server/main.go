package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel"

	"storefront/internal/account"
	accounthandler "storefront/internal/account/handler"
	"storefront/internal/cart"
	carthandler "storefront/internal/cart/handler"
	"storefront/internal/catalog"
	"storefront/internal/catalog/cache"
	cataloghandler "storefront/internal/catalog/handler"
	"storefront/internal/checkout"
	checkouthandler "storefront/internal/checkout/handler"
	"storefront/internal/commerce"
	"storefront/internal/coupon"
	"storefront/internal/events"
	"storefront/internal/i18n"
	"storefront/internal/loyalty"
	loyaltyhandler "storefront/internal/loyalty/handler"
	"storefront/internal/payment"
	"storefront/internal/payment/gateway"
	paymenthandler "storefront/internal/payment/handler"
	paymentstore "storefront/internal/payment/store"
	"storefront/internal/platform/config"
	"storefront/internal/platform/httpserver"
	"storefront/internal/platform/kafka"
	"storefront/internal/platform/logger"
	"storefront/internal/platform/metrics"
	"storefront/internal/platform/postgres"
	platformredis "storefront/internal/platform/redis"
	ratelimitmetrics "storefront/internal/ratelimit/metrics"
	ratelimit "storefront/internal/ratelimit/middleware"
	"storefront/internal/ratelimit/models"
	"storefront/internal/ratelimit/store/bucket"
	"storefront/internal/session"
	httptransport "storefront/internal/transport/http"
	"storefront/pkg/platform/circuit"
)

// main wires infrastructure, domain services and the router, then serves
// until SIGINT or SIGTERM.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := openInfra(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize infrastructure", "error", err)
		os.Exit(1)
	}
	defer deps.close(log)

	router, err := buildRouter(ctx, cfg, log, deps)
	if err != nil {
		log.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	srv := httpserver.New(cfg.Addr, router, log)
	go func() {
		log.Info("starting storefront", "addr", cfg.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

type infra struct {
	redis     *platformredis.Client
	db        *sql.DB
	kafka     *kgo.Client
	publisher *events.Publisher
}

func openInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	in := &infra{}

	rc, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	in.redis = rc

	db, err := postgres.Open(ctx, cfg.Postgres)
	if err != nil {
		in.close(log)
		return nil, err
	}
	if db != nil {
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			in.close(log)
			return nil, err
		}
	}
	in.db = db

	kc, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		in.close(log)
		return nil, err
	}
	in.kafka = kc

	var sink events.Sink = events.NewLogSink(log)
	if kc != nil {
		if err := kafka.EnsureTopic(ctx, kc, cfg.Kafka.Topic, 3, 1); err != nil {
			log.Warn("could not ensure event topic", "topic", cfg.Kafka.Topic, "error", err)
		}
		sink = events.NewKafkaSink(kc, cfg.Kafka.Topic)
	}
	in.publisher = events.NewPublisher(sink,
		events.WithAsyncBuffer(cfg.Events.AsyncBuffer),
		events.WithLogger(log),
		events.WithMetrics(events.NewMetrics()),
	)
	return in, nil
}

// close releases resources in reverse order of creation. The publisher owns
// the kafka client through its sink.
func (in *infra) close(log *slog.Logger) {
	if in.publisher != nil {
		if err := in.publisher.Close(); err != nil {
			log.Warn("event publisher close failed", "error", err)
		}
	} else if in.kafka != nil {
		in.kafka.Close()
	}
	if in.db != nil {
		_ = in.db.Close()
	}
	if in.redis != nil {
		_ = in.redis.Close()
	}
}

func buildRouter(ctx context.Context, cfg config.Server, log *slog.Logger, in *infra) (http.Handler, error) {
	tp := otel.GetTracerProvider()

	engine, err := commerce.New(cfg.Commerce.APIURL, cfg.Commerce.ChannelToken,
		commerce.WithHTTPClient(&http.Client{Timeout: cfg.Commerce.Timeout}),
		commerce.WithLogger(log),
		commerce.WithMetrics(commerce.NewMetrics()),
		commerce.WithBreaker(circuit.New("commerce",
			circuit.WithFailureThreshold(cfg.Commerce.FailureThreshold),
			circuit.WithCooldown(cfg.Commerce.BreakerCooldown),
		)),
		commerce.WithTracerProvider(tp),
	)
	if err != nil {
		return nil, err
	}

	resolver, err := i18n.NewResolver(cfg.I18n.SupportedLocales, cfg.I18n.DefaultLocale)
	if err != nil {
		return nil, err
	}
	policy, err := loyalty.ParsePolicy(cfg.Loyalty.Unit, cfg.Loyalty.Minimum, cfg.Loyalty.EarnRate)
	if err != nil {
		return nil, err
	}

	var (
		sessionStore session.Store = session.NewInMemoryStore()
		collections  catalog.CollectionCache
		buckets      ratelimit.BucketStore
	)
	checks := []httptransport.Check{{Name: "commerce", Probe: engine.Health}}
	if in.redis != nil {
		sessionStore = session.NewRedisStore(in.redis.Client)
		collections = cache.NewRedis(in.redis.Client)
		buckets = bucket.NewRedisBucketStore(in.redis.Client)
		checks = append(checks, httptransport.Check{Name: "redis", Probe: in.redis.Health})
	} else {
		collections = cache.NewMemory()
		mem := bucket.NewInMemoryBucketStore()
		mem.StartSweeper(ctx, time.Minute)
		buckets = mem
	}
	if in.db != nil {
		checks = append(checks, httptransport.Check{Name: "postgres", Probe: in.db.PingContext})
	}
	if in.kafka != nil {
		checks = append(checks, httptransport.Check{Name: "kafka", Probe: func(ctx context.Context) error {
			return kafka.Health(ctx, in.kafka)
		}})
	}

	var attempts payment.Store = paymentstore.NewMemory()
	if in.db != nil {
		attempts = paymentstore.NewPostgres(in.db)
	}

	sessions := session.NewManager(sessionStore, cfg.Session.Secret,
		session.WithTTL(cfg.Session.TTL),
		session.WithCookieName(cfg.Session.CookieName),
		session.WithSecureCookie(cfg.Session.Secure),
		session.WithLogger(log),
	)
	limiter := ratelimit.New(buckets, log,
		ratelimit.WithDisabled(cfg.RateLimit.Disabled),
		ratelimit.WithLimit(models.ClassAuth, models.Limit{Requests: cfg.RateLimit.AuthLimit, Window: cfg.RateLimit.AuthWindow}),
		ratelimit.WithLimit(models.ClassCart, models.Limit{Requests: cfg.RateLimit.CartLimit, Window: cfg.RateLimit.CartWindow}),
		ratelimit.WithMetrics(ratelimitmetrics.New()),
	)

	reconciler := coupon.NewReconciler(engine,
		coupon.WithLogger(log),
		coupon.WithMetrics(coupon.NewMetrics()),
		coupon.WithEvents(in.publisher),
	)
	catalogSvc := catalog.NewService(engine,
		catalog.WithCache(collections, cfg.Catalog.CollectionsTTL),
		catalog.WithPageSizes(cfg.Catalog.MobilePageSize, cfg.Catalog.DesktopPageSize),
		catalog.WithMetrics(catalog.NewMetrics()),
		catalog.WithLogger(log),
	)
	cartSvc := cart.NewService(engine, reconciler,
		cart.WithEvents(in.publisher),
		cart.WithEarnRate(policy.EarnRate),
		cart.WithLogger(log),
	)

	gw, err := gateway.New(cfg.Payment.GatewayURL, cfg.Payment.SecretKey,
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.Payment.Timeout}),
		gateway.WithLogger(log),
		gateway.WithTracerProvider(tp),
	)
	if err != nil {
		return nil, err
	}
	paymentCfg := payment.Config{
		ClientKey:  cfg.Payment.ClientKey,
		SuccessURL: cfg.Payment.SuccessURL,
		FailURL:    cfg.Payment.FailURL,
	}
	paymentSvc := payment.NewService(engine, gw, attempts, paymentCfg,
		payment.WithEvents(in.publisher),
		payment.WithMetrics(payment.NewMetrics()),
		payment.WithLogger(log),
	)
	checkoutSvc := checkout.NewService(engine, reconciler, paymentSvc,
		checkout.WithGatewayMethods(cfg.Payment.GatewayMethods...),
		checkout.WithEvents(in.publisher),
		checkout.WithEarnRate(policy.EarnRate),
		checkout.WithLogger(log),
	)
	accountSvc := account.NewService(engine,
		account.WithEvents(in.publisher),
		account.WithEarnRate(policy.EarnRate),
		account.WithLogger(log),
	)
	loyaltySvc := loyalty.NewService(engine, policy, log)

	return httptransport.NewRouter(httptransport.Config{
		Logger:         log,
		Latency:        metrics.New(),
		Sessions:       sessions.Middleware,
		Locales:        resolver,
		RateLimiter:    limiter,
		Checks:         checks,
		RequestTimeout: 30 * time.Second,
	}, httptransport.Handlers{
		Catalog:  cataloghandler.New(catalogSvc, log),
		Cart:     carthandler.New(cartSvc, log),
		Checkout: checkouthandler.New(checkoutSvc, log),
		Payment:  paymenthandler.New(paymentSvc, log),
		Account: accounthandler.New(accountSvc, log,
			accounthandler.WithAuthLimiter(limiter.RateLimit(models.ClassAuth))),
		Loyalty: loyaltyhandler.New(loyaltySvc, log),
		Locale:  i18n.NewHandler(resolver, log),
	}), nil
}
