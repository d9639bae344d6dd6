package cache

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	total uint
	err   error
	calls int
}

func (f *fakeCounter) Count(context.Context) (uint, error) {
	f.calls++
	return f.total, f.err
}

// brokenStore fails every operation.
type brokenStore struct{ err error }

func (b brokenStore) Get(context.Context, string) (uint, bool, error)        { return 0, false, b.err }
func (b brokenStore) Set(context.Context, string, uint, time.Duration) error { return b.err }
func (b brokenStore) Invalidate(context.Context, string) error               { return b.err }
func (b brokenStore) Close() error                                           { return nil }

func TestCachedCounter_CachesTotal(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	src := &fakeCounter{total: 95}
	c := NewCachedCounter(src, store, "articles", time.Minute, zerolog.New(io.Discard))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n, err := c.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint(95), n)
	}
	assert.Equal(t, 1, src.calls)

	src.total = 96
	require.NoError(t, c.Invalidate(ctx))
	n, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(96), n)
	assert.Equal(t, 2, src.calls)
}

func TestCachedCounter_SourceErrorNotCached(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	boom := errors.New("count failed")
	src := &fakeCounter{err: boom}
	c := NewCachedCounter(src, store, "articles", time.Minute, zerolog.New(io.Discard))

	_, err := c.Count(context.Background())
	assert.ErrorIs(t, err, boom)

	_, ok, _ := store.Get(context.Background(), "articles")
	assert.False(t, ok)
}

func TestCachedCounter_BrokenStoreFallsBack(t *testing.T) {
	src := &fakeCounter{total: 12}
	c := NewCachedCounter(src, brokenStore{err: errors.New("redis down")}, "articles", time.Minute, zerolog.New(io.Discard))

	n, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(12), n)
	assert.Equal(t, 1, src.calls)
}

func TestCachedCounter_NopStoreAlwaysCounts(t *testing.T) {
	src := &fakeCounter{total: 5}
	c := NewCachedCounter(src, nopStore{}, "articles", time.Minute, zerolog.New(io.Discard))

	_, _ = c.Count(context.Background())
	_, _ = c.Count(context.Background())
	assert.Equal(t, 2, src.calls)
}
