package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"github.com/bobg/setsync"
)

// show prints a manifest.
func (c maincmd) show(ctx context.Context, fs *flag.FlagSet, args []string) error {
	remote := fs.Bool("remote", false, "show the remote manifest instead of the local one")
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	kv, err := c.side(*remote)
	if err != nil {
		return err
	}

	b, err := kv.Load(ctx, setsync.ManifestPath)
	if err != nil {
		return errors.Wrap(err, "loading manifest")
	}
	m, err := setsync.ParseManifest(b)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(m), "encoding manifest to stdout")
}
