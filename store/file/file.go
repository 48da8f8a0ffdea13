// Package file implements a settings store as files under a directory.
package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bobg/flock"
	"github.com/pkg/errors"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store"
)

var _ setsync.KV = &Store{}

// Store is a file-based implementation of a settings store.
// Each path is kept in its own file beneath the root directory.
// Writes to the manifest file are serialized with a file lock,
// since the manifest is the one path that concurrent processes mutate.
type Store struct {
	root    string
	flocker flock.Locker
}

// New produces a new Store storing data beneath `root`.
func New(root string) *Store {
	return &Store{root: root}
}

func (s *Store) path(path string) string {
	return filepath.Join(s.root, path)
}

// Load gets the value at `path`.
func (s *Store) Load(_ context.Context, path string) ([]byte, error) {
	full := s.path(path)
	v, err := os.ReadFile(full)
	if os.IsNotExist(err) {
		return nil, setsync.ErrNotFound
	}
	return v, errors.Wrapf(err, "reading %s", full)
}

// Save stores `value` at `path`, replacing any value already there.
func (s *Store) Save(_ context.Context, path string, value []byte) error {
	full := s.path(path)

	err := os.MkdirAll(filepath.Dir(full), 0755)
	if err != nil {
		return errors.Wrapf(err, "ensuring dir for %s exists", full)
	}

	if path == setsync.ManifestPath {
		err = s.flocker.Lock(full)
		if err != nil {
			return errors.Wrapf(err, "locking %s", full)
		}
		defer s.flocker.Unlock(full)
	}

	return errors.Wrapf(os.WriteFile(full, value, 0644), "writing %s", full)
}

// Paths produces all stored paths after `start`, in lexicographic order.
// Paths are reported relative to the store root,
// with filepath separators normalized to "/".
func (s *Store) Paths(_ context.Context, start string, f func(string) error) error {
	err := filepath.Walk(s.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return errors.Wrapf(err, "relativizing %s", p)
		}
		rel = filepath.ToSlash(rel)
		if rel <= start {
			return nil
		}
		return f(rel)
	})
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func init() {
	store.Register("file", func(_ context.Context, conf map[string]interface{}) (setsync.KV, error) {
		root, ok := conf["root"].(string)
		if !ok {
			return nil, errors.New(`missing "root" parameter`)
		}
		return New(root), nil
	})
}
