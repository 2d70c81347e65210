package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.ObserveReport("revenue", OutcomeOK)
	r.ObserveReport("revenue", OutcomeOK)
	r.ObserveReport("tax-summary", OutcomeClientError)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `quotations_report_requests_total{outcome="ok",report="revenue"} 2`)
	assert.Contains(t, string(body), `quotations_report_requests_total{outcome="client_error",report="tax-summary"} 1`)
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() { r.ObserveReport("revenue", OutcomeOK) })
}
