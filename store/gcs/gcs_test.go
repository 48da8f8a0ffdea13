package gcs

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/bobg/setsync/testutil"
)

const (
	credsVar = "SETSYNC_GCS_TESTING_CREDS"
	projVar  = "SETSYNC_GCS_TESTING_PROJECT"
)

func TestStore(t *testing.T) {
	var (
		creds     = os.Getenv(credsVar)
		projectID = os.Getenv(projVar)
	)
	if creds == "" || projectID == "" {
		t.Skipf("to run %s, set %s to the name of a credentials file and %s to a project ID", t.Name(), credsVar, projVar)
	}

	var r [30]byte
	_, err := rand.Read(r[:])
	if err != nil {
		t.Fatal(err)
	}
	bucketName := hex.EncodeToString(r[:])

	ctx := context.Background()

	c, err := storage.NewClient(ctx, option.WithCredentialsFile(creds))
	if err != nil {
		t.Fatal(err)
	}

	bucket := c.Bucket(bucketName)
	err = bucket.Create(ctx, projectID, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		it := bucket.Objects(ctx, nil)
		for {
			attrs, err := it.Next()
			if err != nil {
				break
			}
			bucket.Object(attrs.Name).Delete(ctx)
		}
		bucket.Delete(ctx)
	}()

	s := New(bucket)
	testutil.ReadWrite(ctx, t, s)
	testutil.Paths(ctx, t, s)
}
