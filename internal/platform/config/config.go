package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"

	strs "storefront/pkg/platform/strings"
)

// Server captures process-level configuration. Every field has a development
// default so `go run ./cmd/server` works against a local commerce engine.
type Server struct {
	Addr        string
	Environment string
	LogLevel    string
	LogFormat   string

	Commerce  CommerceConfig
	Session   SessionConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
	Kafka     KafkaConfig
	Payment   PaymentConfig
	I18n      I18nConfig
	Catalog   CatalogConfig
	Loyalty   LoyaltyConfig
	RateLimit RateLimitConfig
	Events    EventsConfig
}

// CommerceConfig points at the engine's Shop API.
type CommerceConfig struct {
	APIURL           string
	ChannelToken     string
	Timeout          time.Duration
	FailureThreshold int
	BreakerCooldown  time.Duration
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// RedisConfig is optional; an empty URL selects in-memory stores.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig is optional; an empty DSN keeps the payment ledger in memory.
type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// KafkaConfig is optional; no brokers means events are only logged.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

type PaymentConfig struct {
	GatewayURL     string
	SecretKey      string
	ClientKey      string
	GatewayMethods []string
	SuccessURL     string
	FailURL        string
	Timeout        time.Duration
}

type I18nConfig struct {
	SupportedLocales []string
	DefaultLocale    string
}

type CatalogConfig struct {
	CollectionsTTL  time.Duration
	MobilePageSize  int
	DesktopPageSize int
}

type LoyaltyConfig struct {
	Unit     int
	Minimum  int
	EarnRate string
}

type RateLimitConfig struct {
	Disabled   bool
	AuthLimit  int
	AuthWindow time.Duration
	CartLimit  int
	CartWindow time.Duration
}

type EventsConfig struct {
	AsyncBuffer int
}

const devSessionSecret = "dev-session-secret-change-in-production"

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:        getEnv("STOREFRONT_ADDR", ":8080"),
		Environment: getEnv("STOREFRONT_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		Commerce: CommerceConfig{
			APIURL:           getEnv("COMMERCE_API_URL", "http://localhost:3000/shop-api"),
			ChannelToken:     os.Getenv("COMMERCE_CHANNEL_TOKEN"),
			Timeout:          getDuration("COMMERCE_TIMEOUT", 10*time.Second),
			FailureThreshold: getInt("COMMERCE_BREAKER_FAILURES", 5),
			BreakerCooldown:  getDuration("COMMERCE_BREAKER_COOLDOWN", 10*time.Second),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", devSessionSecret),
			TTL:        getDuration("SESSION_TTL", 30*24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE", "__session"),
			Secure:     getBool("SESSION_SECURE", false),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			DSN:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    getInt("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers:  getList("KAFKA_BROKERS", nil),
			Topic:    getEnv("KAFKA_TOPIC", "storefront.events"),
			ClientID: getEnv("KAFKA_CLIENT_ID", "storefront"),
		},
		Payment: PaymentConfig{
			GatewayURL:     getEnv("PAYMENT_GATEWAY_URL", "https://api.tosspayments.com"),
			SecretKey:      os.Getenv("PAYMENT_SECRET_KEY"),
			ClientKey:      os.Getenv("PAYMENT_CLIENT_KEY"),
			GatewayMethods: getLowerList("PAYMENT_GATEWAY_METHODS", []string{"toss-payments"}),
			SuccessURL:     getEnv("PAYMENT_SUCCESS_URL", "http://localhost:8080/checkout/payment/success"),
			FailURL:        getEnv("PAYMENT_FAIL_URL", "http://localhost:8080/checkout/payment/fail"),
			Timeout:        getDuration("PAYMENT_TIMEOUT", 15*time.Second),
		},
		I18n: I18nConfig{
			SupportedLocales: getLowerList("SUPPORTED_LOCALES", []string{"en", "ko"}),
			DefaultLocale:    getEnv("DEFAULT_LOCALE", "en"),
		},
		Catalog: CatalogConfig{
			CollectionsTTL:  getDuration("CATALOG_COLLECTIONS_TTL", 5*time.Minute),
			MobilePageSize:  getInt("CATALOG_MOBILE_PAGE_SIZE", 12),
			DesktopPageSize: getInt("CATALOG_DESKTOP_PAGE_SIZE", 24),
		},
		Loyalty: LoyaltyConfig{
			Unit:     getInt("LOYALTY_POINT_UNIT", 100),
			Minimum:  getInt("LOYALTY_MIN_POINTS", 1000),
			EarnRate: getEnv("LOYALTY_EARN_RATE", "0.01"),
		},
		RateLimit: RateLimitConfig{
			Disabled:   getBool("RATE_LIMIT_DISABLED", false),
			AuthLimit:  getInt("RATE_LIMIT_AUTH", 10),
			AuthWindow: getDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
			CartLimit:  getInt("RATE_LIMIT_CART", 60),
			CartWindow: getDuration("RATE_LIMIT_CART_WINDOW", time.Minute),
		},
		Events: EventsConfig{
			AsyncBuffer: getInt("EVENTS_ASYNC_BUFFER", 256),
		},
	}
}

// IsProduction reports whether the process runs in production mode.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// Validate rejects configuration the server cannot run with.
func (s Server) Validate() error {
	var errs []error
	if s.Commerce.APIURL == "" {
		errs = append(errs, errors.New("COMMERCE_API_URL is required"))
	} else if !govalidator.IsURL(s.Commerce.APIURL) {
		errs = append(errs, fmt.Errorf("COMMERCE_API_URL %q is not a valid URL", s.Commerce.APIURL))
	}
	if s.IsProduction() {
		if len(s.Session.Secret) < 32 || s.Session.Secret == devSessionSecret {
			errs = append(errs, errors.New("SESSION_SECRET must be at least 32 characters in production"))
		}
		if s.Payment.SecretKey == "" {
			errs = append(errs, errors.New("PAYMENT_SECRET_KEY is required in production"))
		}
	}
	if len(s.I18n.SupportedLocales) == 0 {
		errs = append(errs, errors.New("SUPPORTED_LOCALES must not be empty"))
	} else if !slices.Contains(s.I18n.SupportedLocales, s.I18n.DefaultLocale) {
		errs = append(errs, fmt.Errorf("DEFAULT_LOCALE %q is not in SUPPORTED_LOCALES", s.I18n.DefaultLocale))
	}
	if s.Loyalty.Unit <= 0 {
		errs = append(errs, errors.New("LOYALTY_POINT_UNIT must be positive"))
	}
	if !govalidator.IsFloat(s.Loyalty.EarnRate) {
		errs = append(errs, fmt.Errorf("LOYALTY_EARN_RATE %q is not a number", s.Loyalty.EarnRate))
	}
	if s.Catalog.MobilePageSize <= 0 || s.Catalog.DesktopPageSize <= 0 {
		errs = append(errs, errors.New("catalog page sizes must be positive"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return strs.DedupeAndTrim(strings.Split(v, ","))
}

// getLowerList is getList for case-insensitive identifiers.
func getLowerList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return strs.DedupeAndTrimLower(strings.Split(v, ","))
}
