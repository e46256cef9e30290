package blobstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/spatialtx/datastore/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Badger {
	t.Helper()
	s, err := Open("", WithInMemory())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadger_PutGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)

	t.Run("round-trip", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		data := []byte("jpeg bytes")
		require.NoError(s.Put(ctx, "images", "figure-1.jpg", data, "image/jpeg"))
		got, err := s.Get(ctx, "images", "figure-1.jpg")
		require.NoError(err)
		assert.Equal(data, got)
	})
	t.Run("overwrite", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		require.NoError(s.Put(ctx, "images", "figure-2.jpg", []byte("v1"), "image/jpeg"))
		require.NoError(s.Put(ctx, "images", "figure-2.jpg", []byte("v2"), "image/jpeg"))
		got, err := s.Get(ctx, "images", "figure-2.jpg")
		require.NoError(err)
		assert.Equal([]byte("v2"), got)
	})
	t.Run("absent", func(t *testing.T) {
		_, err := s.Get(ctx, "images", "nope.jpg")
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
	t.Run("missing-key", func(t *testing.T) {
		err := s.Put(ctx, "images", "", []byte("x"), "")
		require.Error(t, err)
		assert.True(t, errors.IsInvalidParameterError(err))
	})
}

func TestBadger_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)
	for _, key := range []string{
		"experiments/pexp_1/input.fq",
		"experiments/pexp_1/output.bam",
		"experiments/pexp_2/input.fq",
	} {
		require.NoError(t, s.Put(ctx, "pipeline", key, []byte(key), "application/octet-stream"))
	}

	t.Run("whole-bucket", func(t *testing.T) {
		got, err := s.List(ctx, "pipeline", "")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
	t.Run("prefix", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		got, err := s.List(ctx, "pipeline", "experiments/pexp_1/")
		require.NoError(err)
		require.Len(got, 2)
		assert.Equal("experiments/pexp_1/input.fq", got[0].Key)
		assert.Equal("experiments/pexp_1/output.bam", got[1].Key)
		assert.Equal(int64(len("experiments/pexp_1/input.fq")), got[0].Size)
	})
	t.Run("empty-is-not-nil", func(t *testing.T) {
		got, err := s.List(ctx, "empty-bucket", "")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
	t.Run("buckets-are-isolated", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "images", "experiments/red.jpg", []byte("x"), "image/jpeg"))
		got, err := s.List(ctx, "pipeline", "")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestBadger_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("delete-one-absent-ok", func(t *testing.T) {
		s := testStore(t)
		require.NoError(t, s.DeleteOne(ctx, "images", "never-existed.jpg"))
	})
	t.Run("delete-many", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		s := testStore(t)
		var keys []string
		for i := 0; i < 20; i++ {
			key := fmt.Sprintf("figure-%d.jpg", i)
			keys = append(keys, key)
			require.NoError(s.Put(ctx, "images", key, []byte("x"), "image/jpeg"))
		}
		// absent keys mixed in are skipped silently
		keys = append(keys, "ghost-1.jpg", "ghost-2.jpg")
		require.NoError(s.DeleteMany(ctx, "images", keys))
		got, err := s.List(ctx, "images", "")
		require.NoError(err)
		assert.Empty(got)
	})
	t.Run("delete-many-empty", func(t *testing.T) {
		s := testStore(t)
		require.NoError(t, s.DeleteMany(ctx, "images", nil))
	})
}
