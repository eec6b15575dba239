package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterWorkoutCommits     prometheus.Counter
	CounterPersonalRecords    prometheus.Counter
	CounterSnapshotsDelivered *prometheus.CounterVec
	CounterSubReplacements    prometheus.Counter
	CounterHandleRequestPanic prometheus.Counter
	CounterCatalogSyncRetries prometheus.Counter

	// gauges
	GaugeRequests            prometheus.Gauge
	GaugeLifeSignal          prometheus.Gauge
	GaugeActiveSubscriptions prometheus.Gauge

	// histograms
	HistInitialLoadDuration  prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("fitsync", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitsync", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterWorkoutCommits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_commits",
		Help:      "The total number of committed workouts",
	})
	counterPersonalRecords := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "personal_records",
		Help:      "The total number of sets flagged as personal records",
	})
	counterSnapshotsDelivered := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "snapshots_delivered",
		Help:      "The total number of realtime snapshots delivered, per kind",
	}, []string{"kind"})
	counterSubReplacements := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "subscription_replacements",
		Help:      "Number of realtime subscriptions replaced by a newer one of the same kind",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterCatalogSyncRetries := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "catalog_sync_retries",
		Help:      "Number of exercise catalog sync (commit phase two) retries",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "current_requests",
		Help:        "Current number of requests served",
		ConstLabels: nil,
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Indicates whether the service is up and serving",
	})
	gaugeActiveSubscriptions := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_subscriptions",
		Help:      "Current number of live realtime store subscriptions",
	})

	histInitialLoadDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "initial_load_duration_seconds",
		Help:      "Duration of the initial user data load fan-out",
		Buckets:   prometheus.DefBuckets,
	})
	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Duration of served requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	return &Manager{
		CounterRequests:           counterRequests,
		CounterWorkoutCommits:     counterWorkoutCommits,
		CounterPersonalRecords:    counterPersonalRecords,
		CounterSnapshotsDelivered: counterSnapshotsDelivered,
		CounterSubReplacements:    counterSubReplacements,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		CounterCatalogSyncRetries: counterCatalogSyncRetries,
		GaugeRequests:             gaugeRequests,
		GaugeLifeSignal:           gaugeLifeSignal,
		GaugeActiveSubscriptions:  gaugeActiveSubscriptions,
		HistInitialLoadDuration:   histInitialLoadDuration,
		HistogramRequestDuration:  histogramRequestDuration,
	}
}
