package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/bobg/setsync"
)

// put writes a section's content from stdin to the local store and
// advances its timestamp in the local manifest,
// adding the section to the manifest if it isn't listed yet.
// The next sync will consider pushing it.
func (c maincmd) put(ctx context.Context, fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	args = fs.Args()
	if len(args) == 0 {
		return errors.New("missing section name")
	}
	name := args[0]
	if name == setsync.ManifestPath {
		return errors.New("section name collides with the manifest path")
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return errors.Wrap(err, "reading stdin")
	}

	local := setsync.NewLocal(c.local)

	m, err := local.Manifest(ctx)
	if err != nil {
		return err
	}

	err = local.SaveSection(ctx, name, content)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	if s := m.Section(name); s != nil {
		s.Timestamp = now
	} else {
		m.Sections = append(m.Sections, setsync.Section{Name: name, Timestamp: now})
	}
	m.Timestamp = now

	err = local.SaveManifest(ctx, m)
	if err != nil {
		return err
	}

	log.Printf("wrote section %s (%d bytes)", name, len(content))
	return nil
}
