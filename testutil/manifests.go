package testutil

import (
	"context"
	"testing"

	"github.com/bobg/setsync"
)

// PopulateLocal writes a manifest and matching section contents into a
// KV acting as the local side of a sync.
func PopulateLocal(ctx context.Context, t *testing.T, kv setsync.KV, m *setsync.Manifest, contents map[string][]byte) {
	t.Helper()

	b, err := m.Encode()
	if err != nil {
		t.Fatal(err)
	}
	err = kv.Save(ctx, setsync.ManifestPath, b)
	if err != nil {
		t.Fatal(err)
	}
	for name, content := range contents {
		err = kv.Save(ctx, name, content)
		if err != nil {
			t.Fatal(err)
		}
	}
}

// LoadManifest reads the manifest back out of a KV.
func LoadManifest(ctx context.Context, t *testing.T, kv setsync.KV) *setsync.Manifest {
	t.Helper()

	b, err := kv.Load(ctx, setsync.ManifestPath)
	if err != nil {
		t.Fatal(err)
	}
	m, err := setsync.ParseManifest(b)
	if err != nil {
		t.Fatal(err)
	}
	return m
}
