// Package metrics prometheus метрики сервисов.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bank"

type HTTP struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTP(reg prometheus.Registerer, service string) *HTTP {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": service}
	return &HTTP{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Number of handled HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (h *HTTP) Observe(method, route string, status int, elapsed time.Duration) {
	if h == nil {
		return
	}
	h.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

const (
	ResultOK         = "ok"
	ResultFailed     = "failed"
	ResultDeadLetter = "dead_letter"
)

type Events struct {
	published *prometheus.CounterVec
	consumed  *prometheus.CounterVec
}

func NewEvents(reg prometheus.Registerer) *Events {
	factory := promauto.With(reg)
	return &Events{
		published: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Transaction events handed to the broker, by result.",
		}, []string{"result"}),
		consumed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "consumed_total",
			Help:      "Consumed messages, by topic and result.",
		}, []string{"topic", "result"}),
	}
}

func (e *Events) Published(result string) {
	if e == nil {
		return
	}
	e.published.WithLabelValues(result).Inc()
}

func (e *Events) Consumed(topic, result string) {
	if e == nil {
		return
	}
	e.consumed.WithLabelValues(topic, result).Inc()
}
