package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("STOREFRONT_ADDR", "")
	t.Setenv("SUPPORTED_LOCALES", "")

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "__session", cfg.Session.CookieName)
	assert.Equal(t, []string{"en", "ko"}, cfg.I18n.SupportedLocales)
	assert.Equal(t, 12, cfg.Catalog.MobilePageSize)
	assert.Equal(t, 24, cfg.Catalog.DesktopPageSize)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("LOYALTY_POINT_UNIT", "50")
	t.Setenv("RATE_LIMIT_DISABLED", "true")
	t.Setenv("SUPPORTED_LOCALES", "EN, ko,en")

	cfg := FromEnv()
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 50, cfg.Loyalty.Unit)
	assert.True(t, cfg.RateLimit.Disabled)
	assert.Equal(t, []string{"en", "ko"}, cfg.I18n.SupportedLocales)
}

func TestFromEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("CATALOG_MOBILE_PAGE_SIZE", "twelve")
	t.Setenv("COMMERCE_TIMEOUT", "soon")

	cfg := FromEnv()
	assert.Equal(t, 12, cfg.Catalog.MobilePageSize)
	assert.Equal(t, 10*time.Second, cfg.Commerce.Timeout)
}

func TestValidate(t *testing.T) {
	t.Run("unknown default locale", func(t *testing.T) {
		cfg := FromEnv()
		cfg.I18n.DefaultLocale = "fr"
		assert.ErrorContains(t, cfg.Validate(), "DEFAULT_LOCALE")
	})

	t.Run("production requires a real session secret", func(t *testing.T) {
		cfg := FromEnv()
		cfg.Environment = "production"
		cfg.Payment.SecretKey = "test_sk"
		assert.ErrorContains(t, cfg.Validate(), "SESSION_SECRET")

		cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("empty commerce url", func(t *testing.T) {
		cfg := FromEnv()
		cfg.Commerce.APIURL = ""
		assert.ErrorContains(t, cfg.Validate(), "COMMERCE_API_URL")
	})

	t.Run("bad earn rate", func(t *testing.T) {
		cfg := FromEnv()
		cfg.Loyalty.EarnRate = "one percent"
		assert.ErrorContains(t, cfg.Validate(), "LOYALTY_EARN_RATE")
	})
}
