package setsync

import (
	"context"

	"github.com/pkg/errors"
)

// Local is the contract the orchestrator needs from the local settings
// store.
// Unlike the remote side, which is an arbitrary KV,
// the local store speaks in manifests and sections directly,
// and its manifest is assumed structurally valid
// (it is owned by this application instance).
type Local interface {
	// Manifest loads the local manifest.
	Manifest(ctx context.Context) (*Manifest, error)

	// SaveManifest replaces the local manifest.
	SaveManifest(ctx context.Context, m *Manifest) error

	// Section loads the content of the named section.
	Section(ctx context.Context, name string) ([]byte, error)

	// SaveSection replaces the content of the named section.
	SaveSection(ctx context.Context, name string, content []byte) error
}

// NewLocal adapts any KV backend into a Local,
// keeping the manifest at ManifestPath and each section at its own name
// (the same layout the remote side uses).
func NewLocal(kv KV) Local {
	return kvLocal{kv: kv}
}

type kvLocal struct {
	kv KV
}

func (l kvLocal) Manifest(ctx context.Context) (*Manifest, error) {
	b, err := l.kv.Load(ctx, ManifestPath)
	if err != nil {
		return nil, errors.Wrap(err, "loading manifest")
	}
	return ParseManifest(b)
}

func (l kvLocal) SaveManifest(ctx context.Context, m *Manifest) error {
	b, err := m.Encode()
	if err != nil {
		return err
	}
	return errors.Wrap(l.kv.Save(ctx, ManifestPath, b), "saving manifest")
}

func (l kvLocal) Section(ctx context.Context, name string) ([]byte, error) {
	content, err := l.kv.Load(ctx, name)
	return content, errors.Wrapf(err, "loading section %s", name)
}

func (l kvLocal) SaveSection(ctx context.Context, name string, content []byte) error {
	return errors.Wrapf(l.kv.Save(ctx, name, content), "saving section %s", name)
}
