// Package store maps store-type names to factories,
// so that a settings store of any registered kind can be built from a
// decoded config object.
// Store packages register themselves at init time;
// importing one (even blankly) makes its type name available to Create.
package store

import (
	"context"
	"fmt"

	"github.com/bobg/setsync"
)

// Factory builds a settings store from a config object,
// typically one unmarshaled from JSON.
// Interpretation of the config fields is up to each store type.
type Factory func(context.Context, map[string]interface{}) (setsync.KV, error)

var registry = make(map[string]Factory)

// Register associates a store-type name with a factory.
// It is normally called from a store package's init function.
func Register(key string, f Factory) {
	registry[key] = f
}

// Create builds a store of the named registered type from the given
// config.
func Create(ctx context.Context, key string, conf map[string]interface{}) (setsync.KV, error) {
	f, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("key %s not found in registry", key)
	}
	return f(ctx, conf)
}
