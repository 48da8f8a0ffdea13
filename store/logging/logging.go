// Package logging implements a settings store that delegates everything
// to a nested store, logging operations as they happen.
package logging

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store"
)

var _ setsync.KV = &Store{}

type Store struct {
	kv setsync.KV
}

func New(kv setsync.KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) Load(ctx context.Context, path string) ([]byte, error) {
	v, err := s.kv.Load(ctx, path)
	if err != nil {
		log.Printf("ERROR Load %s: %s", path, err)
	} else {
		log.Printf("Load %s (%d bytes)", path, len(v))
	}
	return v, err
}

func (s *Store) Save(ctx context.Context, path string, value []byte) error {
	err := s.kv.Save(ctx, path, value)
	if err != nil {
		log.Printf("ERROR Save %s: %s", path, err)
	} else {
		log.Printf("Save %s (%d bytes)", path, len(value))
	}
	return err
}

func (s *Store) Paths(ctx context.Context, start string, f func(string) error) error {
	lister, ok := s.kv.(setsync.Lister)
	if !ok {
		return errors.New("nested store cannot list paths")
	}
	log.Printf("Paths, start=%s", start)
	return lister.Paths(ctx, start, func(path string) error {
		err := f(path)
		if err != nil {
			log.Printf("  ERROR in Paths: %s: %s", path, err)
		} else {
			log.Printf("  Paths: %s", path)
		}
		return err
	})
}

func init() {
	store.Register("logging", func(ctx context.Context, conf map[string]interface{}) (setsync.KV, error) {
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
		return New(nestedStore), nil
	})
}
