// Package lru implements a settings store that acts as a
// least-recently-used read cache for a nested store.
package lru

import (
	"context"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store"
)

var _ setsync.KV = &Store{}

// Store implements a memory-based least-recently-used cache for a
// settings store.
// Writes pass through to the nested store and refresh the cache.
type Store struct {
	c  *lru.Cache // path -> []byte
	kv setsync.KV
}

// New produces a new Store backed by `kv` and caching up to `size`
// values.
func New(kv setsync.KV, size int) (*Store, error) {
	c, err := lru.New(size)
	return &Store{kv: kv, c: c}, err
}

// Load gets the value at `path`.
func (s *Store) Load(ctx context.Context, path string) ([]byte, error) {
	if got, ok := s.c.Get(path); ok {
		return got.([]byte), nil
	}
	v, err := s.kv.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	s.c.Add(path, v)
	return v, nil
}

// Save stores `value` at `path`, replacing any value already there.
func (s *Store) Save(ctx context.Context, path string, value []byte) error {
	err := s.kv.Save(ctx, path, value)
	if err != nil {
		return err
	}
	s.c.Add(path, value)
	return nil
}

func init() {
	store.Register("lru", func(ctx context.Context, conf map[string]interface{}) (setsync.KV, error) {
		size, ok := conf["size"].(int)
		if !ok {
			return nil, errors.New(`missing "size" parameter`)
		}
		nested, ok := conf["nested"].(map[string]interface{})
		if !ok {
			return nil, errors.New(`missing "nested" parameter`)
		}
		nestedType, ok := nested["type"].(string)
		if !ok {
			return nil, errors.New(`"nested" parameter missing "type"`)
		}
		nestedStore, err := store.Create(ctx, nestedType, nested)
		if err != nil {
			return nil, errors.Wrap(err, "creating nested store")
		}
		return New(nestedStore, size)
	})
}
