package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/teamdraw/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector never touches the registry.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	allocations        *prometheus.CounterVec
	allocationDuration *prometheus.HistogramVec
	rosterSize         prometheus.Gauge
	teamCount          prometheus.Gauge

	publishes        prometheus.Counter
	publishedVersion prometheus.Gauge
	publishedKeys    prometheus.Gauge
	clears           prometheus.Counter
	eventsDropped    prometheus.Counter

	lookups *prometheus.CounterVec

	mirrorOps      *prometheus.CounterVec
	mirrorDuration *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "teamdraw" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "teamdraw"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.allocations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "runs_total",
			Help:      "Total allocation runs by strategy.",
		}, []string{"strategy"})
		p.allocationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "duration_seconds",
			Help:      "Allocation run duration in seconds by strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100us .. ~1.6s
		}, []string{"strategy"})
		p.rosterSize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "roster_size",
			Help:      "Number of people in the most recent allocation.",
		})
		p.teamCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "teams",
			Help:      "Number of teams in the most recent allocation.",
		})

		p.publishes = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "publishes_total",
			Help:      "Total partitions published.",
		})
		p.publishedVersion = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "published_version",
			Help:      "Version of the currently published partition.",
		})
		p.publishedKeys = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "lookup_keys",
			Help:      "Number of lookup keys in the published corpus (0 when cleared).",
		})
		p.clears = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "clears_total",
			Help:      "Total times the published partition was withdrawn.",
		})
		p.eventsDropped = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "events_dropped_total",
			Help:      "Store notifications dropped because a subscriber was slow.",
		})

		p.lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "lookup",
			Name:      "queries_total",
			Help:      "Total participant queries by outcome.",
		}, []string{"status"})

		p.mirrorOps = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "mirror",
			Name:      "operations_total",
			Help:      "Total KV mirror operations by operation and outcome.",
		}, []string{"operation", "success"})
		p.mirrorDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "mirror",
			Name:      "operation_duration_seconds",
			Help:      "KV mirror operation latency in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation"})

		p.reg.MustRegister(p.allocations)
		p.reg.MustRegister(p.allocationDuration)
		p.reg.MustRegister(p.rosterSize)
		p.reg.MustRegister(p.teamCount)
		p.reg.MustRegister(p.publishes)
		p.reg.MustRegister(p.publishedVersion)
		p.reg.MustRegister(p.publishedKeys)
		p.reg.MustRegister(p.clears)
		p.reg.MustRegister(p.eventsDropped)
		p.reg.MustRegister(p.lookups)
		p.reg.MustRegister(p.mirrorOps)
		p.reg.MustRegister(p.mirrorDuration)
	})
}

// AllocationMetrics implementation

// RecordAllocation counts the run and records its duration and dimensions.
func (p *PrometheusCollector) RecordAllocation(strategy string, teams, people int, duration float64) {
	p.ensureRegistered()
	p.allocations.WithLabelValues(strategy).Inc()
	p.allocationDuration.WithLabelValues(strategy).Observe(duration)
	p.teamCount.Set(float64(teams))
	p.rosterSize.Set(float64(people))
}

// StoreMetrics implementation

// RecordPublish counts the publish and sets the version and key gauges.
func (p *PrometheusCollector) RecordPublish(version int64, keys int) {
	p.ensureRegistered()
	p.publishes.Inc()
	p.publishedVersion.Set(float64(version))
	p.publishedKeys.Set(float64(keys))
}

// RecordClear counts the clear and resets the key gauge.
func (p *PrometheusCollector) RecordClear() {
	p.ensureRegistered()
	p.clears.Inc()
	p.publishedKeys.Set(0)
}

// RecordEventDropped increments the dropped notification counter.
func (p *PrometheusCollector) RecordEventDropped() {
	p.ensureRegistered()
	p.eventsDropped.Inc()
}

// LookupMetrics implementation

// RecordLookup counts a query by outcome.
func (p *PrometheusCollector) RecordLookup(status types.LookupStatus) {
	p.ensureRegistered()
	p.lookups.WithLabelValues(status.String()).Inc()
}

// MirrorMetrics implementation

// RecordMirrorOperation counts the operation and observes its latency.
func (p *PrometheusCollector) RecordMirrorOperation(operation string, duration float64, success bool) {
	p.ensureRegistered()
	p.mirrorOps.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
	p.mirrorDuration.WithLabelValues(operation).Observe(duration)
}
