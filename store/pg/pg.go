// Package pg implements a settings store in a Postgresql database.
package pg

import (
	"context"
	"database/sql"
	stderrs "errors"

	"github.com/bobg/sqlutil"
	_ "github.com/lib/pq" // register the postgres type for sql.Open
	"github.com/pkg/errors"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store"
)

var _ setsync.KV = &Store{}

// Store is a Postgresql-based settings store.
type Store struct {
	db *sql.DB
}

// Schema is the SQL that New executes.
// It creates the `settings` table if it does not exist.
// (If it does exist, it must have the columns and constraints described
// here.)
const Schema = `
CREATE TABLE IF NOT EXISTS settings (
  path TEXT PRIMARY KEY NOT NULL,
  value BYTEA NOT NULL
);
`

// New produces a new Store using `db` for storage.
// It expects to create the table `settings`,
// or for that table already to exist with the correct schema.
// (See variable Schema.)
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	_, err := db.ExecContext(ctx, Schema)
	return &Store{db: db}, err
}

// Load gets the value at `path`.
func (s *Store) Load(ctx context.Context, path string) ([]byte, error) {
	const q = `SELECT value FROM settings WHERE path = $1`

	var v []byte
	err := s.db.QueryRowContext(ctx, q, path).Scan(&v)
	if stderrs.Is(err, sql.ErrNoRows) {
		return nil, setsync.ErrNotFound
	}
	return v, errors.Wrapf(err, "querying path %s", path)
}

// Save stores `value` at `path`, replacing any value already there.
func (s *Store) Save(ctx context.Context, path string, value []byte) error {
	const q = `INSERT INTO settings (path, value) VALUES ($1, $2) ON CONFLICT (path) DO UPDATE SET value = $2`

	_, err := s.db.ExecContext(ctx, q, path, value)
	return errors.Wrapf(err, "upserting path %s", path)
}

// Paths produces all stored paths after `start`, in lexicographic order.
func (s *Store) Paths(ctx context.Context, start string, f func(string) error) error {
	const q = `SELECT path FROM settings WHERE path > $1 ORDER BY path`
	return sqlutil.ForQueryRows(ctx, s.db, q, start, func(path string) error {
		return f(path)
	})
}

func init() {
	store.Register("pg", func(ctx context.Context, conf map[string]interface{}) (setsync.KV, error) {
		conn, ok := conf["conn"].(string)
		if !ok {
			return nil, errors.New(`missing "conn" parameter`)
		}
		db, err := sql.Open("postgres", conn)
		if err != nil {
			return nil, errors.Wrap(err, "opening db")
		}
		return New(ctx, db)
	})
}
