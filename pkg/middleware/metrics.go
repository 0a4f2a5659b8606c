package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fieldwork-dev/fieldwork/pkg/event"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "fieldwork").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "fieldwork",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for form events.
type metrics struct {
	eventsTotal      *prometheus.CounterVec
	eventDuration    *prometheus.HistogramVec
	fieldValidations *prometheus.CounterVec
	submissions      *prometheus.CounterVec
}

// globalMetrics is the singleton metrics instance, created on first call to
// Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of form events processed",
			ConstLabels: config.ConstLabels,
		}, []string{"form", "type", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event processing duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"form", "type"}),

		fieldValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "field_validations_total",
			Help:        "Total number of per-field validation passes",
			ConstLabels: config.ConstLabels,
		}, []string{"form", "field", "status"}),

		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "submissions_total",
			Help:        "Total number of form submissions",
			ConstLabels: config.ConstLabels,
		}, []string{"form", "status"}),
	}
}

// Prometheus creates middleware that collects Prometheus metrics for form
// events.
//
// Metrics collected:
//   - fieldwork_events_total: Counter of events by form, type and status
//   - fieldwork_event_duration_seconds: Histogram of event processing duration
//   - fieldwork_field_validations_total: Counter of per-field validation passes
//     (recorded via MetricsObserver attached to the engine)
//   - fieldwork_submissions_total: Counter of submissions by form and status
//
// Expose the metrics endpoint with promhttp.Handler().
func Prometheus(opts ...MetricsOption) Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next Handler) Handler {
		return func(ctx context.Context, evt event.Event) error {
			start := time.Now()
			err := next(ctx, evt)
			m.eventDuration.WithLabelValues(evt.Form, string(evt.Type)).
				Observe(time.Since(start).Seconds())

			status := "success"
			if err != nil {
				status = "error"
			}
			m.eventsTotal.WithLabelValues(evt.Form, string(evt.Type), status).Inc()
			return err
		}
	}
}

// MetricsObserver adapts the global metrics to the form engine's Observer
// interface. Safe to attach before Prometheus() has run; recordings are
// dropped until the metrics exist.
type MetricsObserver struct{}

// FieldValidated records a per-field validation outcome.
func (MetricsObserver) FieldValidated(formName, field string, valid bool) {
	if globalMetrics == nil {
		return
	}
	globalMetrics.fieldValidations.WithLabelValues(formName, field, validity(valid)).Inc()
}

// Submitted records a submission outcome.
func (MetricsObserver) Submitted(formName string, valid bool) {
	if globalMetrics == nil {
		return
	}
	globalMetrics.submissions.WithLabelValues(formName, validity(valid)).Inc()
}

func validity(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
