// Package testutil has utilities for testing settings-store backends.
package testutil

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bobg/setsync"
)

// ReadWrite permits testing a KV implementation
// by saving some values to it,
// then loading them back out to make sure they're the same.
func ReadWrite(ctx context.Context, t *testing.T, kv setsync.KV) {
	_, err := kv.Load(ctx, "nonexistent")
	if !errors.Is(err, setsync.ErrNotFound) {
		t.Errorf("loading a missing path: got error %v, want ErrNotFound", err)
	}

	pairs := map[string][]byte{
		"alpha":       []byte("first value"),
		"beta":        []byte(`{"some": "json"}`),
		"gamma/delta": {0, 1, 2, 0xfe, 0xff},
	}

	for path, value := range pairs {
		err = kv.Save(ctx, path, value)
		if err != nil {
			t.Fatalf("saving %s: %s", path, err)
		}
	}

	for path, want := range pairs {
		got, err := kv.Load(ctx, path)
		if err != nil {
			t.Fatalf("loading %s: %s", path, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("loading %s: got %v, want %v", path, got, want)
		}
	}

	// Values are mutable: a second save replaces the first.
	err = kv.Save(ctx, "alpha", []byte("second value"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := kv.Load(ctx, "alpha")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second value" {
		t.Errorf(`reloading alpha: got %q, want "second value"`, got)
	}
}

// Paths permits testing a Lister implementation:
// saved paths must come back in lexicographic order,
// starting strictly after the requested one.
func Paths(ctx context.Context, t *testing.T, kv setsync.KV) {
	lister, ok := kv.(setsync.Lister)
	if !ok {
		t.Fatalf("%T is not a Lister", kv)
	}

	for _, path := range []string{"c", "a", "b", "d"} {
		err := kv.Save(ctx, path, []byte(path))
		if err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		start string
		want  []string
	}{
		{start: "", want: []string{"a", "b", "c", "d"}},
		{start: "a", want: []string{"b", "c", "d"}},
		{start: "bb", want: []string{"c", "d"}},
		{start: "d", want: nil},
	}

	for _, c := range cases {
		var got []string
		err := lister.Paths(ctx, c.start, func(path string) error {
			got = append(got, path)
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Paths(start=%q) mismatch (-want +got):\n%s", c.start, diff)
		}
	}
}
