package kvutil

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	drawtest "github.com/arloliu/teamdraw/testing"
)

func TestPublishedBucketConfig(t *testing.T) {
	cfg := PublishedBucketConfig("draws", 0)

	require.Equal(t, "draws", cfg.Bucket)
	require.Equal(t, uint8(1), cfg.History)
	require.Equal(t, 1, cfg.Replicas)
	require.Zero(t, cfg.TTL, "published draws must not expire")

	require.Equal(t, 3, PublishedBucketConfig("draws", 3).Replicas)
}

func TestEnsureKVBucketWithRetry(t *testing.T) {
	_, nc := drawtest.StartEmbeddedNATS(t)

	ctx := context.Background()
	js, err := jetstream.New(nc)
	require.NoError(t, err)

	t.Run("creates bucket on first try", func(t *testing.T) {
		cfg := PublishedBucketConfig("test-retry-bucket-1", 1)
		cfg.Storage = jetstream.MemoryStorage

		kv, err := EnsureKVBucketWithRetry(ctx, js, cfg, 3)

		require.NoError(t, err)
		require.Equal(t, "test-retry-bucket-1", kv.Bucket())
	})

	t.Run("opens an existing bucket", func(t *testing.T) {
		cfg := jetstream.KeyValueConfig{Bucket: "test-retry-bucket-2", History: 1, Storage: jetstream.MemoryStorage}
		first, err := js.CreateKeyValue(ctx, cfg)
		require.NoError(t, err)
		_, err = first.Put(ctx, "published", []byte("v1"))
		require.NoError(t, err)

		second, err := EnsureKVBucketWithRetry(ctx, js, cfg, 3)
		require.NoError(t, err)

		entry, err := second.Get(ctx, "published")
		require.NoError(t, err)
		require.Equal(t, "v1", string(entry.Value()))
	})

	t.Run("organizer and followers race to create", func(t *testing.T) {
		cfg := jetstream.KeyValueConfig{Bucket: "test-retry-bucket-3", History: 1, Storage: jetstream.MemoryStorage}

		var g errgroup.Group
		for range 10 {
			g.Go(func() error {
				_, err := EnsureKVBucketWithRetry(ctx, js, cfg, 5)
				return err
			})
		}

		require.NoError(t, g.Wait())
	})

	t.Run("expired context fails", func(t *testing.T) {
		shortCtx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		<-shortCtx.Done()

		cfg := jetstream.KeyValueConfig{Bucket: "test-retry-bucket-4", History: 1}

		_, err := EnsureKVBucketWithRetry(shortCtx, js, cfg, 3)

		require.Error(t, err)
		require.Contains(t, err.Error(), "context")
	})
}
