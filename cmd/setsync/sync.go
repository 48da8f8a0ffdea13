package main

import (
	"context"
	"flag"

	"github.com/pkg/errors"
)

// sync runs one reconciliation of the local store against the remote.
func (c maincmd) sync(ctx context.Context, fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}
	return c.svc.Synchronize(ctx)
}
