package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront/internal/cart"
	"storefront/internal/cart/handler/mocks"
	"storefront/internal/session"
	dErrors "storefront/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/cart-mocks.go -package=mocks Service

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func serve(router http.Handler, method, path, body string, sess *session.Session) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if sess != nil {
		req = req.WithContext(session.WithSession(req.Context(), sess))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddItem_DefaultsQuantity(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().AddItem(gomock.Any(), "42", 1).Return(&cart.View{Order: &cart.OrderView{Code: "A"}}, nil)

	rec := serve(router, http.MethodPost, "/cart/items", `{"variant_id":" 42 "}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"A"`)
}

func TestAddItem_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, body := range []string{`{"quantity":1}`, `{"variant_id":"1","quantity":-2}`, `{"variant_id":"1","quantity":1000}`, `not json`} {
		rec := serve(router, http.MethodPost, "/cart/items", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestAdjustLine_RequiresQuantity(t *testing.T) {
	router, svc := newTestRouter(t)

	rec := serve(router, http.MethodPatch, "/cart/lines/l1", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.EXPECT().AdjustLine(gomock.Any(), "l1", 0).Return(&cart.View{}, nil)
	rec = serve(router, http.MethodPatch, "/cart/lines/l1", `{"quantity":0}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRemoveLine_CouponLineLocked(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().RemoveLine(gomock.Any(), "l2").
		Return(nil, dErrors.WithReason(dErrors.CodeValidation, cart.ReasonCouponLineLocked, "coupon products cannot be changed"))

	rec := serve(router, http.MethodDelete, "/cart/lines/l2", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), cart.ReasonCouponLineLocked)
}

func TestApplyCoupon_FlashesSuccess(t *testing.T) {
	router, svc := newTestRouter(t)
	sess := session.NewForTest(session.Record{ID: "s1"})
	svc.EXPECT().ApplyCoupon(gomock.Any(), "WELCOME").Return(&cart.View{}, nil)

	rec := serve(router, http.MethodPost, "/cart/coupons", `{"code":"WELCOME"}`, sess)

	require.Equal(t, http.StatusOK, rec.Code)
	flashes := sess.TakeFlash()
	require.Len(t, flashes, 1)
	assert.Equal(t, session.FlashSuccess, flashes[0].Kind)
}

func TestGet_AdjustmentFlashesInfo(t *testing.T) {
	router, svc := newTestRouter(t)
	sess := session.NewForTest(session.Record{ID: "s1"})
	svc.EXPECT().Get(gomock.Any()).Return(&cart.View{Adjustment: &cart.Adjustment{RemovedLines: []string{"l2"}}}, nil)

	rec := serve(router, http.MethodGet, "/cart/", "", sess)

	require.Equal(t, http.StatusOK, rec.Code)
	flashes := sess.TakeFlash()
	require.Len(t, flashes, 1)
	assert.Equal(t, session.FlashInfo, flashes[0].Kind)
}

func TestRemoveCoupon(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().RemoveCoupon(gomock.Any(), "WELCOME").Return(&cart.View{}, nil)

	rec := serve(router, http.MethodDelete, "/cart/coupons/WELCOME", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
