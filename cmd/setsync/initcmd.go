package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/bobg/setsync"
)

// initcmd writes a fresh manifest to the local store.
func (c maincmd) initcmd(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var (
		minCompat = fs.Int("min-compatible", 1, "oldest protocol version this manifest's writer understands")
		protocol  = fs.Int("protocol", 1, "protocol version of the write-capable sync format")
		appID     = fs.String("app-id", "", "application id to record in the manifest")
	)
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	m := &setsync.Manifest{
		MinCompatibleVersion: *minCompat,
		ProtocolVersion:      *protocol,
		Timestamp:            time.Now().UnixMilli(),
		AppID:                *appID,
	}

	err = setsync.NewLocal(c.local).SaveManifest(ctx, m)
	if err != nil {
		return err
	}

	log.Printf("wrote manifest (min-compatible=%d, protocol=%d)", *minCompat, *protocol)
	return nil
}
