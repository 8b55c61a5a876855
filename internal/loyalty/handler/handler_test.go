package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront/internal/commerce"
	"storefront/internal/loyalty"
	"storefront/internal/loyalty/handler/mocks"
	"storefront/internal/session"
	dErrors "storefront/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/loyalty-mocks.go -package=mocks Service

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	svc := mocks.NewMockService(gomock.NewController(t))
	svc.EXPECT().Policy().Return(loyalty.Policy{Unit: 100, Minimum: 1000, EarnRate: decimal.RequireFromString("0.01")}).AnyTimes()
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSummary(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Summary(gomock.Any()).Return(&loyalty.Summary{Balance: 2500, Unit: 100, Minimum: 1000}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/loyalty/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":2500`)
}

func TestSummary_Guest(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Summary(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeUnauthorized, "sign in to use loyalty points"))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/loyalty/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHistory_Page(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().History(gomock.Any(), 2).Return(&loyalty.History{Page: 2, TotalPages: 3}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/loyalty/history?page=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page":2`)

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/loyalty/history?page=zero", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApply_FlashesAndReturnsCart(t *testing.T) {
	router, svc := newTestRouter(t)
	order := &commerce.Order{Code: "ORD", CurrencyCode: "USD", SubTotalWithTax: 5000, TotalWithTax: 4000}
	order.CustomFields.LoyaltyPointsUsed = 1000
	svc.EXPECT().Apply(gomock.Any(), 1000).Return(order, nil)

	sess := session.NewForTest(session.Record{})
	req := httptest.NewRequest(http.MethodPost, "/loyalty/points", strings.NewReader(`{"points":1000}`))
	req = req.WithContext(session.WithSession(req.Context(), sess))
	rec := serve(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"loyalty_points_used":1000`)
	flashes := sess.TakeFlash()
	require.Len(t, flashes, 1)
	assert.Equal(t, session.FlashSuccess, flashes[0].Kind)
}

func TestApply_RejectsNonPositive(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/loyalty/points", strings.NewReader(`{"points":0}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApply_ServiceRejection(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Apply(gomock.Any(), 1100).
		Return(nil, dErrors.WithReason(dErrors.CodeValidation, loyalty.ReasonExceedsBalance, "not enough points"))

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/loyalty/points", strings.NewReader(`{"points":1100}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not enough points")
}

func TestRemove(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Remove(gomock.Any()).Return(&commerce.Order{Code: "ORD", CurrencyCode: "USD"}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodDelete, "/loyalty/points", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
