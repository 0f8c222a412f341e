package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedRoutine struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func useMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	useMiniRedis(t)
	ctx := context.Background()

	var missing cachedRoutine
	found, err := GetJSON(ctx, RoutineKey(1), &missing)
	require.NoError(t, err)
	assert.False(t, found)

	stored := cachedRoutine{ID: 1, Title: "Push Day"}
	require.NoError(t, SetJSON(ctx, RoutineKey(1), stored, RoutineTTL))

	var loaded cachedRoutine
	found, err = GetJSON(ctx, RoutineKey(1), &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored, loaded)
}

func TestAside(t *testing.T) {
	useMiniRedis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedRoutine) func() error {
		return func() error {
			fetches++
			*dest = cachedRoutine{ID: 7, Title: "Pull Day"}
			return nil
		}
	}

	var first cachedRoutine
	require.NoError(t, Aside(ctx, RoutineKey(7), &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Pull Day", first.Title)

	// Second read is served from the cache.
	var second cachedRoutine
	require.NoError(t, Aside(ctx, RoutineKey(7), &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)

	// Invalidation forces a refetch.
	InvalidateRoutine(ctx, 7)
	var third cachedRoutine
	require.NoError(t, Aside(ctx, RoutineKey(7), &third, time.Minute, fetch(&third)))
	assert.Equal(t, 2, fetches)
}

func TestAside_NilClientFallsThrough(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var dest cachedRoutine
	fetch := func() error {
		fetches++
		dest = cachedRoutine{ID: 3, Title: "Leg Day"}
		return nil
	}

	require.NoError(t, Aside(ctx, RoutineKey(3), &dest, time.Minute, fetch))
	require.NoError(t, Aside(ctx, RoutineKey(3), &dest, time.Minute, fetch))
	// Without Redis every read goes to the fetcher.
	assert.Equal(t, 2, fetches)
	assert.Equal(t, "Leg Day", dest.Title)
}

func TestInvalidateRoutine_DropsListToo(t *testing.T) {
	mr := useMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, RoutineKey(9), cachedRoutine{ID: 9}, time.Minute))
	require.NoError(t, SetJSON(ctx, RoutineListKey, []cachedRoutine{{ID: 9}}, time.Minute))

	InvalidateRoutine(ctx, 9)

	assert.False(t, mr.Exists(RoutineKey(9)))
	assert.False(t, mr.Exists(RoutineListKey))
}
