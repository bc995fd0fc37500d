package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the service's prometheus registry and instruments.
type Collector struct {
	reg *prometheus.Registry

	PredictionRequests prometheus.Counter
	PredictionFailures prometheus.Counter

	LegSource *prometheus.CounterVec // source label: historical|schedule|default

	ChainLength        prometheus.Histogram
	PredictionDuration prometheus.Histogram

	TripLogsCreated   prometheus.Counter
	SessionsCompleted prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		PredictionRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "commutesync_predictions_total",
			Help: "Total prediction requests served.",
		}),
		PredictionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "commutesync_prediction_failures_total",
			Help: "Total prediction requests that failed validation or fetching.",
		}),
		LegSource: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "commutesync_leg_estimates_total",
			Help: "Leg estimates by data source.",
		}, []string{"source"}),
		ChainLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "commutesync_prediction_chain_legs",
			Help:    "Number of legs per prediction request.",
			Buckets: prometheus.LinearBuckets(1, 1, 8),
		}),
		PredictionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "commutesync_prediction_duration_seconds",
			Help:    "Duration of prediction computations including data fetches.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		TripLogsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "commutesync_trip_logs_created_total",
			Help: "Total trip logs persisted.",
		}),
		SessionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "commutesync_logger_sessions_completed_total",
			Help: "Total logger sessions converted into trip logs.",
		}),
	}

	reg.MustRegister(
		c.PredictionRequests, c.PredictionFailures,
		c.LegSource,
		c.ChainLength, c.PredictionDuration,
		c.TripLogsCreated, c.SessionsCompleted,
	)

	return c
}

// Handler exposes the registry for mounting at /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
