package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("slot-service", reg)

	m.ObserveHTTPRequest("POST", "/api/v1/therapists/{therapistId}/slots", 200, 15*time.Millisecond)
	m.ObserveDBQuery("exec", time.Millisecond, nil)
	m.ObserveDBQuery("exec", time.Millisecond, errors.New("boom"))
	m.ObserveDBQuery("query_row", time.Millisecond, sql.ErrNoRows)
	m.ObserveSlotsPersisted(5, 2)
	m.ObserveGeneration("ok")
	m.SetDBStats(sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("slot-service", "POST", "/api/v1/therapists/{therapistId}/slots", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("slot-service", "exec")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("slot-service", "query_row")))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.slotsPersisted.WithLabelValues("slot-service", "created")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.slotsPersisted.WithLabelValues("slot-service", "ignored")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.generationOutcomes.WithLabelValues("slot-service", "ok")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.dbConnections.WithLabelValues("slot-service", "idle")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTPRequest("GET", "/", 200, time.Second)
	m.ObserveDBQuery("query", time.Second, nil)
	m.ObserveSlotsPersisted(1, 1)
	m.ObserveGeneration("ok")
	m.SetDBStats(sql.DBStats{})
}
