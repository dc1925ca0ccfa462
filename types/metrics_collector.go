package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called concurrently from reader goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	AllocationMetrics
	StoreMetrics
	LookupMetrics
	MirrorMetrics
}

// AllocationMetrics defines metrics for allocation runs.
type AllocationMetrics interface {
	// RecordAllocation records one allocation run.
	//
	// Parameters:
	//   - strategy: Strategy name ("department", "round_robin")
	//   - teams: Number of teams requested
	//   - people: Roster size
	//   - duration: Time taken in seconds
	RecordAllocation(strategy string, teams, people int, duration float64)
}

// StoreMetrics defines metrics for the published result store.
type StoreMetrics interface {
	// RecordPublish records a publish and the size of the resulting index.
	//
	// Parameters:
	//   - version: Published version
	//   - keys: Number of lookup keys in the corpus
	RecordPublish(version int64, keys int)

	// RecordClear records that the published partition was withdrawn.
	RecordClear()

	// RecordEventDropped records a store notification dropped because a subscriber was slow.
	RecordEventDropped()
}

// LookupMetrics defines metrics for participant queries.
type LookupMetrics interface {
	// RecordLookup records one query outcome.
	//
	// Parameters:
	//   - status: Outcome of the query
	RecordLookup(status LookupStatus)
}

// MirrorMetrics defines metrics for the NATS KV mirror.
type MirrorMetrics interface {
	// RecordMirrorOperation records a KV operation.
	//
	// Parameters:
	//   - operation: Operation type ("put", "get", "delete", "apply")
	//   - duration: Time taken in seconds
	//   - success: true if the operation succeeded
	RecordMirrorOperation(operation string, duration float64, success bool)
}
