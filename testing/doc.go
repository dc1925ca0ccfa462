// Package testing provides test utilities for the teamdraw library.
//
// It follows Go's convention of shipping test helpers in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: In-process NATS server with JetStream for mirror tests
//   - CreateJetStreamKV: In-memory KV bucket on that server
//   - RequireBalancedPartition, RequireLookupRoundTrip: Allocation and lookup invariants
//   - NewTestLogger: Logger writing through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    drawtest "github.com/arloliu/teamdraw/testing"
//	)
//
//	func TestMirror(t *testing.T) {
//	    _, nc := drawtest.StartEmbeddedNATS(t)
//	    kv := drawtest.CreateJetStreamKV(t, nc, "teamdraw-published")
//	    // ...
//	}
package testing
