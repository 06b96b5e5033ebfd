package httpapi_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/UnknownOlympus/olhovivo/internal/httpapi"
	"github.com/UnknownOlympus/olhovivo/internal/metrics"
	"github.com/UnknownOlympus/olhovivo/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
)

type testAPI struct {
	service *mocks.Service
	metrics *metrics.Metrics
	handler http.Handler
}

func newTestAPI(t *testing.T, rateLimit int) *testAPI {
	t.Helper()

	svc := mocks.NewService(t)
	m := metrics.NewMetrics(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &testAPI{
		service: svc,
		metrics: m,
		handler: httpapi.NewRestAPI(svc, logger, m, rateLimit).Handler(),
	}
}

func (ta *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ta.handler.ServeHTTP(rec, req)

	return rec
}
