package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cuentas-api/pkg/metrics"
)

func TestHandler_ExponeCollectors(t *testing.T) {
	metrics.RecordRequest(http.MethodGet, "/businesses/get/:userId", "200", 12*time.Millisecond)
	metrics.RecordRequest(http.MethodGet, "", "404", time.Millisecond)
	metrics.RecordOwnershipCheck(metrics.OwnershipRejected)
	metrics.RecordStoreOperation("business.list", 0, true)
	done := metrics.RequestStarted()
	done()

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	raw, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `cuentas_http_requests_total{method="GET",route="/businesses/get/:userId",status="200"} 1`)
	assert.Contains(t, body, `route="unmatched"`)
	assert.Contains(t, body, `cuentas_ownership_checks_total{result="rejected"}`)
	assert.Contains(t, body, `cuentas_store_operation_duration_seconds_count{operation="business.list",success="true"} 1`)
	assert.Contains(t, body, "cuentas_http_inflight_requests 0")
	assert.Contains(t, body, "go_goroutines")
}
