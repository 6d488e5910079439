package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTP_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewHTTP(reg, "bank")

	h.Observe("GET", "/api/accounts/:no", 200, 10*time.Millisecond)
	h.Observe("GET", "/api/accounts/:no", 200, 20*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(h.requests.WithLabelValues("GET", "/api/accounts/:no", "200")), 0)
}

func TestEvents_NilSafe(t *testing.T) {
	var e *Events
	assert.NotPanics(t, func() {
		e.Published(ResultOK)
		e.Consumed("transaction-events", ResultOK)
	})
}

func TestEvents_Counters(t *testing.T) {
	e := NewEvents(prometheus.NewRegistry())
	e.Published(ResultDeadLetter)

	assert.InDelta(t, 1, testutil.ToFloat64(e.published.WithLabelValues(ResultDeadLetter)), 0)
}
