// Package gcs implements a settings store on Google Cloud Storage.
package gcs

import (
	"context"
	stderrs "errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store"
)

var _ setsync.KV = &Store{}

// Store is a Google Cloud Storage-based implementation of a settings
// store.
// Each path is kept in its own bucket object.
// Unlike content-addressed blobs, settings values are mutable,
// so writes are unconditional overwrites.
type Store struct {
	bucket *storage.BucketHandle
}

// New produces a new Store.
func New(bucket *storage.BucketHandle) *Store {
	return &Store{bucket: bucket}
}

// Load gets the value at `path`.
func (s *Store) Load(ctx context.Context, path string) ([]byte, error) {
	r, err := s.bucket.Object(path).NewReader(ctx)
	if stderrs.Is(err, storage.ErrObjectNotExist) {
		return nil, setsync.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading info of object %s", path)
	}
	defer r.Close()

	v, err := io.ReadAll(r)
	return v, errors.Wrapf(err, "reading contents of object %s", path)
}

// Save stores `value` at `path`, replacing any value already there.
func (s *Store) Save(ctx context.Context, path string, value []byte) error {
	w := s.bucket.Object(path).NewWriter(ctx)
	_, err := w.Write(value)
	if err != nil {
		w.Close()
		return errors.Wrapf(err, "writing object %s", path)
	}
	return errors.Wrapf(w.Close(), "closing object %s", path)
}

// Paths produces all stored paths after `start`, in lexicographic order.
func (s *Store) Paths(ctx context.Context, start string, f func(string) error) error {
	iter := s.bucket.Objects(ctx, &storage.Query{StartOffset: start})
	for {
		attrs, err := iter.Next()
		if stderrs.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "iterating over objects")
		}
		if attrs.Name <= start {
			continue
		}
		err = f(attrs.Name)
		if err != nil {
			return err
		}
	}
}

func init() {
	store.Register("gcs", func(ctx context.Context, conf map[string]interface{}) (setsync.KV, error) {
		var options []option.ClientOption
		creds, ok := conf["creds"].(string)
		if !ok {
			return nil, errors.New(`missing "creds" parameter`)
		}
		bucketName, ok := conf["bucket"].(string)
		if !ok {
			return nil, errors.New(`missing "bucket" parameter`)
		}
		options = append(options, option.WithCredentialsFile(creds))
		c, err := storage.NewClient(ctx, options...)
		if err != nil {
			return nil, errors.Wrap(err, "creating cloud storage client")
		}
		return New(c.Bucket(bucketName)), nil
	})
}
