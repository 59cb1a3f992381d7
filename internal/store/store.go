// Package store persists game state in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a key has no stored value of the requested kind.
var ErrNotFound = errors.New("not found")

// Store wraps the database connection and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for open and migration messages.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string, opts ...Option) (*Store, error) {
	s := &Store{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas and in-memory databases are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s.db = db
	s.drv = entsql.OpenDB(dialect.SQLite, db)

	if err := s.migrate(context.Background()); err != nil {
		s.drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	s.log.Info("store opened", zap.String("dsn", dsn))
	return s, nil
}

// OpenMemory opens a private in-memory database. Nothing survives Close.
func OpenMemory(opts ...Option) (*Store, error) {
	return Open(":memory:", opts...)
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// KV returns the key-value repository backed by this store.
func (s *Store) KV() *KVRepo {
	return &KVRepo{drv: s.drv}
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{drv: s.drv}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		name TEXT PRIMARY KEY,
		int_value INTEGER,
		blob_value BLOB,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		game_type TEXT NOT NULL,
		level INTEGER NOT NULL,
		question TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		chosen_answer TEXT NOT NULL,
		correct INTEGER NOT NULL,
		response_ms INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS answer_events_game_type ON answer_events (game_type, id)`,
}

// migrate creates the tables if they don't exist yet.
func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if err := s.drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return err
		}
	}
	s.log.Debug("schema ready", zap.Int("statements", len(schema)))
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. HAPPYMATH_DB environment variable
// 2. $XDG_DATA_HOME/happymath/happymath.db
// 3. ~/.local/share/happymath/happymath.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("HAPPYMATH_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "happymath", "happymath.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
