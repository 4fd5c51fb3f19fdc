package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "schedule-service")

	m.ObserveHTTP("GET", "/api/v1/x", "200", 10*time.Millisecond)
	m.ObserveHTTP("GET", "/api/v1/x", "200", 20*time.Millisecond)
	m.ObserveQuery("select", time.Millisecond, errors.New("boom"))
	m.AddMaterialized(MaterializeInserted, 3)
	m.AddMaterialized(MaterializeDegraded, 0)
	m.AddWindows("service_windows", 5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/x", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SlotsMaterialized.WithLabelValues(MaterializeInserted)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SlotsMaterialized.WithLabelValues(MaterializeDegraded)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.WindowsGenerated.WithLabelValues("service_windows")))
}

func TestMetrics_NilSafeHelpers(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.AddMaterialized(MaterializeMatched, 1)
		m.AddWindows("available_slots", 1)
	})
}
