package storage_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/nicolagi/guestbook/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStoreImplementations(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(*testing.T) (storage.ListStore, func())
	}{
		/*
			{
				name: "ListStore implementation backed by a live Redis",
				setup: func(t *testing.T) (s storage.ListStore, teardown func()) {
					client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
					return storage.NewRedisListStore(client), func() {
						_ = client.Close()
					}
				},
			},
		*/
		{
			name: "ListStore implementation backed by a map",
			setup: func(*testing.T) (s storage.ListStore, teardown func()) {
				return storage.NewMemoryListStore(), func() {
					// Nothing to do.
				}
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, teardown := tc.setup(t)
			defer teardown()
			testListStore(t, store)
		})
	}
}

func testListStore(t *testing.T, store storage.ListStore) {
	ctx := context.Background()
	t.Run("empty list for a key never appended to", func(t *testing.T) {
		entries, err := store.Range(ctx, "never-written")
		require.Nil(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
	t.Run("appends accumulate in order", func(t *testing.T) {
		var want []string
		for i := 0; i < 10; i++ {
			value := fmt.Sprintf("entry-%d", i)
			want = append(want, value)
			got, err := store.Append(ctx, "ordered", value)
			require.Nil(t, err)
			assert.Equal(t, want, got)
		}
		got, err := store.Range(ctx, "ordered")
		require.Nil(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("reads are idempotent", func(t *testing.T) {
		_, err := store.Append(ctx, "stable", "only-entry")
		require.Nil(t, err)
		first, err := store.Range(ctx, "stable")
		require.Nil(t, err)
		second, err := store.Range(ctx, "stable")
		require.Nil(t, err)
		assert.Equal(t, first, second)
	})
	t.Run("mutating a returned list should not affect stored entries", func(t *testing.T) {
		_, err := store.Append(ctx, "aliased", "old value")
		require.Nil(t, err)
		before, err := store.Range(ctx, "aliased")
		require.Nil(t, err)
		before[0] = "new value"
		after, err := store.Range(ctx, "aliased")
		require.Nil(t, err)
		assert.Equal(t, []string{"old value"}, after)
	})
	t.Run("concurrent appends lose no entries", func(t *testing.T) {
		const writers = 50
		var wg sync.WaitGroup
		wg.Add(writers)
		for i := 0; i < writers; i++ {
			go func(i int) {
				defer wg.Done()
				_, err := store.Append(ctx, "contended", fmt.Sprintf("writer-%d", i))
				assert.Nil(t, err)
			}(i)
		}
		wg.Wait()
		entries, err := store.Range(ctx, "contended")
		require.Nil(t, err)
		require.Len(t, entries, writers)
		seen := make(map[string]bool, writers)
		for _, e := range entries {
			seen[e] = true
		}
		assert.Len(t, seen, writers)
	})
}
