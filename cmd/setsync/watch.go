package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/rjeczalik/notify"
)

// watch re-runs synchronization whenever files under a directory
// change, and once immediately on startup.
// It runs until interrupted.
func (c maincmd) watch(ctx context.Context, fs *flag.FlagSet, args []string) error {
	dir := fs.String("dir", "", "directory whose changes trigger a sync")
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}
	if *dir == "" {
		return errors.New("must specify -dir")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		sig := <-sigCh
		log.Printf("got signal %s", sig)
		cancel()
	}()

	fsch := make(chan notify.EventInfo, 100)
	err = notify.Watch(*dir+"/...", fsch, notify.All)
	if err != nil {
		return errors.Wrapf(err, "watching %s/...", *dir)
	}
	defer notify.Stop(fsch)

	err = c.svc.Synchronize(ctx)
	if err != nil {
		log.Printf("ERROR in initial sync: %s", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Print("context canceled, exiting watcher")
			return nil

		case ev, ok := <-fsch:
			if !ok {
				log.Print("file-events channel closed, exiting watcher")
				return nil
			}
			err = c.svc.Synchronize(ctx)
			if err != nil {
				log.Printf("ERROR syncing after change to %s: %s", ev.Path(), err)
			}
		}
	}
}
