package httptransport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/i18n"
	"storefront/internal/session"
	"storefront/pkg/testutil"
)

func TestRouterLocaleSwitch(t *testing.T) {
	resolver, err := i18n.NewResolver([]string{"en", "ko"}, "en")
	require.NoError(t, err)
	router := NewRouter(Config{Logger: discardLogger(), Locales: resolver}, Handlers{
		Locale: i18n.NewHandler(resolver, discardLogger()),
	})

	testutil.Given(t, "a visitor with a stored session", func(t *testing.T) {
		testutil.When(t, "they switch to a supported locale", func(t *testing.T) {
			req, sess := testutil.WithSession(
				testutil.NewJSONRequest(t, http.MethodPut, "/api/locale", map[string]string{"locale": "KO"}),
				session.Record{ID: "sess-1"},
			)
			rr := testutil.DoRequest(router, req)

			testutil.Then(t, "the locale is remembered in the session", func(t *testing.T) {
				require.Equal(t, http.StatusOK, rr.Code)
				body := testutil.UnmarshalResponse[i18n.LocaleResponse](t, rr)
				assert.Equal(t, "ko", body.Locale)
				assert.Equal(t, "ko", sess.Locale())
			})
		})

		testutil.When(t, "they ask for an unsupported locale", func(t *testing.T) {
			req, _ := testutil.WithSession(
				testutil.NewJSONRequest(t, http.MethodPut, "/api/locale", map[string]string{"locale": "fr"}),
				session.Record{ID: "sess-2"},
			)
			rr := testutil.DoRequest(router, req)

			testutil.Then(t, "the request is rejected", func(t *testing.T) {
				testutil.AssertError(t, rr, http.StatusBadRequest, "validation_error", "unsupported_locale")
			})
		})
	})

	testutil.Given(t, "a visitor sending Accept-Language", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodGet, "/api/locale", nil)
		req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9")
		rr := testutil.DoRequest(router, req)

		testutil.Then(t, "the matching locale is used", func(t *testing.T) {
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "ko", rr.Header().Get("Content-Language"))
		})
	})
}
