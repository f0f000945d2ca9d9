package storage

import (
	"context"
	"sync"
)

// MemoryInfo is what MemoryListStore reports as backend info. It doubles as
// the notice served when no external store is reachable.
const MemoryInfo = "In-memory store (no Redis connection)"

// MemoryListStore is a ListStore implementation powered by a map, used as the
// process-local fallback when no external store is reachable, and in tests.
// It holds no state across process restarts, and each process instance has
// its own independent contents.
type MemoryListStore struct {
	sync.Mutex
	m map[string][]string
}

func NewMemoryListStore() *MemoryListStore {
	return &MemoryListStore{
		m: make(map[string][]string),
	}
}

func (s *MemoryListStore) Range(ctx context.Context, key string) ([]string, error) {
	s.Lock()
	defer s.Unlock()
	return dup(s.m[key]), nil
}

func (s *MemoryListStore) Append(ctx context.Context, key string, value string) ([]string, error) {
	s.Lock()
	defer s.Unlock()
	s.m[key] = append(s.m[key], value)
	return dup(s.m[key]), nil
}

func (s *MemoryListStore) Info(ctx context.Context) (string, error) {
	return MemoryInfo, nil
}

// Len reports how many entries are stored at key.
func (s *MemoryListStore) Len(key string) int {
	s.Lock()
	defer s.Unlock()
	return len(s.m[key])
}

func dup(entries []string) []string {
	out := make([]string, len(entries))
	copy(out, entries)
	return out
}
