package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/WailSalutem-Health-Care/ward-service/internal/telemetry"
	"github.com/WailSalutem-Health-Care/ward-service/internal/testutil"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestSetupRouter_Routes(t *testing.T) {
	router := SetupRouter(Deps{})

	testCases := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/app/info", http.StatusOK},
		{http.MethodGet, "/staff/profile", http.StatusNotFound},
		{http.MethodGet, "/staff/profile/edit", http.StatusOK},
		{http.MethodGet, "/patients", http.StatusOK},
		{http.MethodGet, "/patients/B1", http.StatusNotFound},
		{http.MethodGet, "/beds", http.StatusOK},
		{http.MethodGet, "/beds/B1", http.StatusOK},
		{http.MethodGet, "/shifts", http.StatusOK},
		{http.MethodDelete, "/beds", http.StatusMethodNotAllowed},
		{http.MethodGet, "/organizations", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestAppInfo_UsesConfiguredText(t *testing.T) {
	notifier := &testutil.RecordingNotifier{}
	router := SetupRouter(Deps{AppInfo: "Ward 7 demo", Notifier: notifier})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/info", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Ward 7 demo")
	assert.Equal(t, "Ward 7 demo", notifier.Last())
}

func TestAppInfo_Default(t *testing.T) {
	rr := httptest.NewRecorder()
	SetupRouter(Deps{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/info", nil))

	assert.Contains(t, rr.Body.String(), view.MsgDefaultAppInfo)
}

func TestNewHandler_Preflight(t *testing.T) {
	handler := NewHandler(Deps{AllowedOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/staff/register", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogging_RecordsRouteTemplate(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(provider.Meter("test"))
	require.NoError(t, err)

	router := SetupRouter(Deps{Metrics: metrics})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/beds/B7", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	found := false
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || !strings.HasPrefix(m.Name, "http_server_requests") {
				continue
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value("http_route"); ok && v.AsString() == "/beds/{bedNo}" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "expected a request counted under /beds/{bedNo}")
}
