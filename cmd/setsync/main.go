// Command setsync is a CLI interface to synchronized settings stores.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/bobg/subcmd"

	"github.com/bobg/setsync"
	_ "github.com/bobg/setsync/store/file"
	_ "github.com/bobg/setsync/store/gcs"
	_ "github.com/bobg/setsync/store/logging"
	_ "github.com/bobg/setsync/store/lru"
	_ "github.com/bobg/setsync/store/mem"
	_ "github.com/bobg/setsync/store/mirror"
	_ "github.com/bobg/setsync/store/pg"
	_ "github.com/bobg/setsync/store/sqlite3"
)

type maincmd struct {
	local  setsync.KV
	remote setsync.KV
	svc    *setsync.Service
}

func main() {
	config := flag.String("config", "setsyncconf.json", "path to config file")
	flag.Parse()

	if *config == "" {
		log.Fatal("Config value not set")
	}

	ctx := context.Background()

	conf, err := readConfig(*config)
	if err != nil {
		log.Fatalf("Reading config file %s: %s", *config, err)
	}

	local, err := storeFromConf(ctx, conf.Local)
	if err != nil {
		log.Fatalf("Creating local store: %s", err)
	}

	svc := setsync.NewService(setsync.NewLocal(local), nil)

	var remote setsync.KV
	if conf.Remote != nil {
		remote, err = storeFromConf(ctx, conf.Remote)
		if err != nil {
			log.Fatalf("Creating remote store: %s", err)
		}
		svc.SetSyncProvider(remote)
	}

	err = subcmd.Run(ctx, maincmd{local: local, remote: remote, svc: svc}, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
}

func (c maincmd) Subcmds() map[string]subcmd.Subcmd {
	return map[string]subcmd.Subcmd{
		"init":  c.initcmd,
		"show":  c.show,
		"get":   c.get,
		"put":   c.put,
		"paths": c.paths,
		"sync":  c.sync,
		"watch": c.watch,
	}
}

// side picks the local or remote store for subcommands that can
// address either.
func (c maincmd) side(remote bool) (setsync.KV, error) {
	if !remote {
		return c.local, nil
	}
	if c.remote == nil {
		return nil, errNoRemote
	}
	return c.remote, nil
}
