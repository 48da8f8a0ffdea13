package setsync

import (
	"context"
	"errors"
)

// KV is the contract a storage backend must meet to hold one side of a
// settings store.
// The manifest lives at the fixed path ManifestPath;
// each section's content lives at the path equal to the section's name.
type KV interface {
	// Load gets the value at `path`.
	// It returns ErrNotFound if no value is stored there.
	Load(ctx context.Context, path string) ([]byte, error)

	// Save stores `value` at `path`,
	// replacing any value already there.
	Save(ctx context.Context, path string, value []byte) error
}

// Lister is an optional extension of KV for backends that can enumerate
// their paths.
type Lister interface {
	// Paths calls f for each stored path after `start`,
	// in lexicographic order.
	// If f returns an error, Paths exits with that error.
	Paths(ctx context.Context, start string, f func(path string) error) error
}

// ManifestPath is the well-known path at which a settings store's
// manifest is kept.
const ManifestPath = "manifest"

// ErrNotFound is the error returned
// when a KV tries to access a non-existent path.
var ErrNotFound = errors.New("not found")
