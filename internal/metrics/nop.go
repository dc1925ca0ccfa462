package metrics

import "github.com/arloliu/teamdraw/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	metrics := metrics.NewNop()
//	mgr, err := teamdraw.NewManager(&cfg, teamdraw.WithMetrics(metrics))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AllocationMetrics implementation

// RecordAllocation discards the allocation metric.
func (n *NopMetrics) RecordAllocation(_ /* strategy */ string, _ /* teams */, _ /* people */ int, _ /* duration */ float64) {
	// No-op
}

// StoreMetrics implementation

// RecordPublish discards the publish metric.
func (n *NopMetrics) RecordPublish(_ /* version */ int64, _ /* keys */ int) {
	// No-op
}

// RecordClear discards the clear metric.
func (n *NopMetrics) RecordClear() {
	// No-op
}

// RecordEventDropped discards the dropped event metric.
func (n *NopMetrics) RecordEventDropped() {
	// No-op
}

// LookupMetrics implementation

// RecordLookup discards the lookup metric.
func (n *NopMetrics) RecordLookup(_ /* status */ types.LookupStatus) {
	// No-op
}

// MirrorMetrics implementation

// RecordMirrorOperation discards the mirror operation metric.
func (n *NopMetrics) RecordMirrorOperation(_ /* operation */ string, _ /* duration */ float64, _ /* success */ bool) {
	// No-op
}
