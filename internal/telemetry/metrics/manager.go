package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterSchedules          prometheus.Counter
	CounterMilestonesDetected prometheus.Counter
	CounterPRsDetected        prometheus.Counter
	CounterHandleRequestPanic prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("coachcore", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("coachcore", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterSchedules := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "schedules_generated",
		Help:      "The total number of generated training schedules",
	})
	counterMilestonesDetected := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "milestones_detected",
		Help:      "The total number of newly detected milestones",
	})
	counterPRsDetected := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "prs_detected",
		Help:      "The total number of detected personal records",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0000001, 0.0000002, 0.0000003, 0.0000004, 0.0000005,
				0.000001, 0.0000025, 0.000005, 0.0000075, 0.00001,
				0.0001, 0.001, 0.01, 0.1, 1, 10, 60,
			},
			Name: "request_duration_seconds",
			Help: "Total duration of requests in seconds",
		},
	)

	return &Manager{
		CounterRequests:           counterRequests,
		CounterSchedules:          counterSchedules,
		CounterMilestonesDetected: counterMilestonesDetected,
		CounterPRsDetected:        counterPRsDetected,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		GaugeRequests:             gaugeRequests,
		GaugeLifeSignal:           gaugeLifeSignal,
		HistRequestDuration:       histReqDuration,
	}
}
