package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store"
)

var errNoRemote = errors.New(`config file has no "remote" store`)

type config struct {
	AppID  string                 `json:"app-id"`
	Local  map[string]interface{} `json:"local"`
	Remote map[string]interface{} `json:"remote"`
}

func readConfig(filename string) (*config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening config file")
	}
	defer f.Close()

	var conf config
	err = json.NewDecoder(f).Decode(&conf)
	if err != nil {
		return nil, errors.Wrap(err, "decoding config file")
	}
	if conf.Local == nil {
		return nil, errors.New(`config file missing "local" store`)
	}
	return &conf, nil
}

func storeFromConf(ctx context.Context, conf map[string]interface{}) (setsync.KV, error) {
	typ, ok := conf["type"].(string)
	if !ok {
		return nil, errors.New("store config missing `type` parameter")
	}
	return store.Create(ctx, typ, conf)
}
