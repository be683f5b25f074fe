package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Domain operation metrics
	DraftSavesTotal         *prometheus.CounterVec
	FlaggingOperationsTotal *prometheus.CounterVec
	RegistrationsTotal      *prometheus.CounterVec
	CentralAPISyncsTotal    *prometheus.CounterVec

	// Database operation metrics
	DBOperationDuration *prometheus.HistogramVec
)

// Init registers all Prometheus metrics under the given prefix.
// Must be called once before the middleware or recorders are used.
func Init(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DraftSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_draft_saves_total",
			Help: "Total number of turnover draft saves",
		},
		[]string{"kind", "outcome"}, // kind: save|autosave, outcome: created|updated|error
	)

	FlaggingOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_flagging_operations_total",
			Help: "Total number of entry flagging operations",
		},
		[]string{"operation"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_team_registrations_total",
			Help: "Total number of team registration transitions",
		},
		[]string{"transition"}, // submitted|approved|rejected
	)

	CentralAPISyncsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_central_api_syncs_total",
			Help: "Total number of Central API sync attempts",
		},
		[]string{"outcome"},
	)

	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operation string) func(start time.Time) {
	return func(start time.Time) {
		if DBOperationDuration != nil {
			DBOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		}
	}
}

// RecordDraftSave increments the draft save counter
func RecordDraftSave(kind, outcome string) {
	if DraftSavesTotal != nil {
		DraftSavesTotal.WithLabelValues(kind, outcome).Inc()
	}
}

// RecordFlaggingOperation increments the flagging operations counter
func RecordFlaggingOperation(operation string) {
	if FlaggingOperationsTotal != nil {
		FlaggingOperationsTotal.WithLabelValues(operation).Inc()
	}
}

// RecordRegistration increments the registration transitions counter
func RecordRegistration(transition string) {
	if RegistrationsTotal != nil {
		RegistrationsTotal.WithLabelValues(transition).Inc()
	}
}

// RecordCentralAPISync increments the Central API sync counter
func RecordCentralAPISync(outcome string) {
	if CentralAPISyncsTotal != nil {
		CentralAPISyncsTotal.WithLabelValues(outcome).Inc()
	}
}
