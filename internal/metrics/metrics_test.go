package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.RecordCreated()
	m.RecordCreated()
	m.StatusChanged("completed")
	m.StatusChanged("failed")
	m.StatusChanged("completed")
	m.RecordDeleted(DeletionSourcePurge)
	m.DeletionRequested()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recordsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordsDeleted.WithLabelValues(DeletionSourcePurge)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.recordsDeleted.WithLabelValues(DeletionSourceAPI)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deletionRequests))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordCreated()
		m.StatusChanged("processing")
		m.RecordDeleted(DeletionSourceAPI)
		m.DeletionRequested()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "derma_records_records_created_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
