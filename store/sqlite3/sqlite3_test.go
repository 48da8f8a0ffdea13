package sqlite3

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bobg/setsync/testutil"
)

func TestStore(t *testing.T) {
	withStore(t, func(ctx context.Context, store *Store) {
		testutil.ReadWrite(ctx, t, store)
	})
}

func TestPaths(t *testing.T) {
	withStore(t, func(ctx context.Context, store *Store) {
		testutil.Paths(ctx, t, store)
	})
}

func withStore(t *testing.T, f func(context.Context, *Store)) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	store, err := New(ctx, db)
	if err != nil {
		t.Fatal(err)
	}

	f(ctx, store)
}
