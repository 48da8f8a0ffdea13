// Package mirror implements a settings store that delegates reads and
// writes to a set of nested stores.
package mirror

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store"
)

var _ setsync.KV = &Store{}

// Store is a settings store that writes to every nested store and reads
// from the first one to answer.
// A write must succeed on all nested stores before Save returns,
// and an error from any causes Save to fail;
// stores that already wrote stay written.
type Store struct {
	nested []setsync.KV
}

// New produces a new Store.
// The set of nested stores must be non-empty.
func New(nested []setsync.KV) *Store {
	return &Store{nested: nested}
}

// Load gets the value at `path`.
// It delegates the request to all of the nested stores,
// returning the result from the first one to respond without error
// and canceling the request to the others.
// If all nested stores respond with an error,
// one of those errors is returned.
func (s *Store) Load(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		v   []byte
		err error
	}

	// Sized so that every nested goroutine can deliver its result and
	// exit even after an early return below.
	ch := make(chan result, len(s.nested))

	for _, kv := range s.nested {
		kv := kv
		go func() {
			v, err := kv.Load(ctx, path)
			ch <- result{v: v, err: err}
		}()
	}

	var err error
	for i := 0; i < len(s.nested); i++ {
		res := <-ch
		if res.err == nil {
			return res.v, nil
		}
		err = res.err
	}
	return nil, err
}

// Save stores `value` at `path` in every nested store.
func (s *Store) Save(ctx context.Context, path string, value []byte) error {
	var g errgroup.Group
	for _, kv := range s.nested {
		kv := kv
		g.Go(func() error {
			return kv.Save(ctx, path, value)
		})
	}
	return g.Wait()
}

func init() {
	store.Register("mirror", func(ctx context.Context, conf map[string]interface{}) (setsync.KV, error) {
		// A JSON-decoded config presents the list as []interface{}.
		items, ok := conf["nested"].([]interface{})
		if !ok {
			return nil, errors.New(`missing "nested" parameter`)
		}
		var nested []setsync.KV
		for _, raw := range items {
			item, ok := raw.(map[string]interface{})
			if !ok {
				return nil, errors.New(`"nested" item is not an object`)
			}
			itemType, ok := item["type"].(string)
			if !ok {
				return nil, errors.New(`"nested" item missing "type"`)
			}
			kv, err := store.Create(ctx, itemType, item)
			if err != nil {
				return nil, errors.Wrap(err, "creating nested store")
			}
			nested = append(nested, kv)
		}
		if len(nested) == 0 {
			return nil, errors.New(`"nested" parameter is empty`)
		}
		return New(nested), nil
	})
}
