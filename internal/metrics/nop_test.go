package metrics

import (
	"testing"

	"github.com/arloliu/teamdraw/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_AllMethods(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordAllocation("department", 7, 50, 0.01)
		metrics.RecordAllocation("", 0, 0, -1)
		metrics.RecordPublish(3, 100)
		metrics.RecordClear()
		metrics.RecordEventDropped()
		metrics.RecordLookup(types.LookupFound)
		metrics.RecordLookup(types.LookupStatus(99))
		metrics.RecordMirrorOperation("put", 0.002, true)
	})
}
