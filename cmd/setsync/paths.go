package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pkg/errors"

	"github.com/bobg/setsync"
)

// paths lists the paths stored in a store, one per line.
func (c maincmd) paths(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var (
		remote = fs.Bool("remote", false, "list the remote store instead of the local one")
		start  = fs.String("start", "", "list paths after this one")
	)
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	kv, err := c.side(*remote)
	if err != nil {
		return err
	}

	lister, ok := kv.(setsync.Lister)
	if !ok {
		return errors.Errorf("%T cannot list paths", kv)
	}

	return lister.Paths(ctx, *start, func(path string) error {
		fmt.Println(path)
		return nil
	})
}
