// Package mem implements an in-memory settings store.
package mem

import (
	"context"
	"sort"
	"sync"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store"
)

var _ setsync.KV = &Store{}

// Store is a memory-based implementation of a settings store.
type Store struct {
	mu     sync.Mutex
	values map[string][]byte
}

// New produces a new Store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Load gets the value at `path`.
func (s *Store) Load(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.values[path]; ok {
		return v, nil
	}
	return nil, setsync.ErrNotFound
}

// Save stores `value` at `path`, replacing any value already there.
func (s *Store) Save(_ context.Context, path string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.values[path] = v
	return nil
}

// Paths produces all stored paths after `start`, in lexicographic order.
func (s *Store) Paths(ctx context.Context, start string, f func(string) error) error {
	s.mu.Lock()
	paths := make([]string, 0, len(s.values))
	for path := range s.values {
		paths = append(paths, path)
	}
	s.mu.Unlock()

	sort.Strings(paths)
	index := sort.SearchStrings(paths, start)
	for index < len(paths) && paths[index] == start {
		index++
	}

	for i := index; i < len(paths); i++ {
		err := f(paths[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	store.Register("mem", func(context.Context, map[string]interface{}) (setsync.KV, error) {
		return New(), nil
	})
}
