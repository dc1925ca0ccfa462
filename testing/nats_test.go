package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartEmbeddedNATS(t *testing.T) {
	ns, nc := StartEmbeddedNATS(t)

	require.NotNil(t, ns)
	require.True(t, nc.IsConnected())
	require.True(t, ns.ReadyForConnections(1*time.Second))
}

// TestStartEmbeddedNATS_Parallel verifies parallel servers do not collide on ports.
func TestStartEmbeddedNATS_Parallel(t *testing.T) {
	t.Parallel()

	for range 3 {
		t.Run("parallel", func(t *testing.T) {
			t.Parallel()

			_, nc := StartEmbeddedNATS(t)
			require.True(t, nc.IsConnected())
		})
	}
}

func TestCreateJetStreamKV(t *testing.T) {
	_, nc := StartEmbeddedNATS(t)
	kv := CreateJetStreamKV(t, nc, "test-bucket")

	_, err := kv.Put(t.Context(), "published", []byte(`{"version":1}`))
	require.NoError(t, err)

	entry, err := kv.Get(t.Context(), "published")
	require.NoError(t, err)
	require.JSONEq(t, `{"version":1}`, string(entry.Value()))
	require.Equal(t, "test-bucket", kv.Bucket())
}
