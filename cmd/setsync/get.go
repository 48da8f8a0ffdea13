package main

import (
	"context"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// get prints a section's content.
func (c maincmd) get(ctx context.Context, fs *flag.FlagSet, args []string) error {
	remote := fs.Bool("remote", false, "read from the remote store instead of the local one")
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	args = fs.Args()
	if len(args) == 0 {
		return errors.New("missing section name")
	}

	kv, err := c.side(*remote)
	if err != nil {
		return err
	}

	content, err := kv.Load(ctx, args[0])
	if err != nil {
		return errors.Wrapf(err, "loading section %s", args[0])
	}
	_, err = os.Stdout.Write(content)
	return errors.Wrap(err, "writing section to stdout")
}
