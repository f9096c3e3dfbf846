package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hpvvs/salesops_backend/internal/core/services"
	"github.com/hpvvs/salesops_backend/internal/platform/config"
	"github.com/hpvvs/salesops_backend/internal/platform/metrics"
	"github.com/hpvvs/salesops_backend/internal/repositories/database/memory"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, featurePayments bool) *application {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	cfg := &config.Config{
		Port:                 "0",
		Location:             loc,
		FeaturePayments:      featurePayments,
		PaymentsFeeTolerance: decimal.RequireFromString("0.02"),
		PaymentsSubmittedBy:  "payments-service",
		RateLimit:            "100-M",
		CORSAllowedOrigins:   []string{"*"},
	}
	m := metrics.NewLedgerMetrics()
	return &application{
		cfg:      cfg,
		logger:   newLogger("error"),
		metrics:  m,
		services: services.NewServiceContainer(cfg, memory.NewRepositoryProvider(), m),
		timeUtil: timeutil.FromLocation(loc),
		close:    func() {},
	}
}

func serve(t *testing.T, app *application, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	router, err := newRouter(app)
	require.NoError(t, err)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const receiptJSON = `{"anchorType":"SO","soNumber":"SO-1","docType":"Sales Receipt",
"paymentDateTime":"2024-07-01T08:00:00-07:00","amountGross":150.00,"feeAmount":2.50,"method":"Card"}`

func TestRouterRecordsAndSummarizes(t *testing.T) {
	app := newTestApp(t, true)
	router, err := newRouter(app)
	require.NoError(t, err)

	for _, want := range []string{`"status":"CREATED"`, `"status":"UPDATED"`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/record", strings.NewReader(receiptJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), want)
		assert.Contains(t, w.Body.String(), `"docNumber":"SO-RECEIPT-SALESRECEIPT-1719846000000-5D0F9119"`)
		assert.Contains(t, w.Body.String(), `"amountGross":150.00`)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/payments/summary?soNumber=SO-1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPayments":147.50`)
	assert.Contains(t, w.Body.String(), `"byMethod":{"Card":147.50}`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `ledger_record_total{status="updated"} 1`)
}

func TestRouterHealth(t *testing.T) {
	w := serve(t, newTestApp(t, true), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouterPaymentsFeatureFlag(t *testing.T) {
	w := serve(t, newTestApp(t, false), http.MethodPost, "/api/v1/payments/record", receiptJSON)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterRejectsBadRateLimit(t *testing.T) {
	app := newTestApp(t, true)
	app.cfg.RateLimit = "lots"
	_, err := newRouter(app)
	assert.Error(t, err)
}

func TestReadSubmission(t *testing.T) {
	req, err := readSubmission(strings.NewReader(receiptJSON), "-")
	require.NoError(t, err)
	assert.Equal(t, "SO", req.AnchorType)
	assert.Equal(t, "147.5", req.AmountGross.Sub(*req.FeeAmount).String())

	_, err = readSubmission(strings.NewReader("not json"), "-")
	assert.Error(t, err)
}

func TestNewLoggerLevels(t *testing.T) {
	assert.True(t, newLogger("debug").Enabled(context.Background(), -4))
	assert.False(t, newLogger("warn").Enabled(context.Background(), 0))
	assert.True(t, newLogger("").Enabled(context.Background(), 0))
}
