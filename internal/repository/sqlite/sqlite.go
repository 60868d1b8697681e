// Package sqlite implements the repository interfaces on SQLite.
//
// We use modernc.org/sqlite rather than the CGo-based driver: it is a
// pure Go translation of SQLite, so the binary cross-compiles anywhere
// Go runs and tests need no C toolchain. The blank import below
// registers the driver with database/sql under the name "sqlite".
//
// The store is the only shared resource in the system; the uniqueness
// constraint on notes.slug and the author foreign keys are enforced
// here, not re-implemented in application code.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB pool and exposes one repository per entity. All
// four share the same pool; the server owns the DB and closes it on
// shutdown.
type DB struct {
	conn *sql.DB

	News     *NewsRepo
	Comments *CommentRepo
	Notes    *NoteRepo
	Users    *UserRepo
}

// New opens the database at dbPath (":memory:" for a throwaway
// in-process database, which the tests use) and runs migrations.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// One connection only: SQLite serialises writes anyway, PRAGMAs
	// apply per connection, and a pooled ":memory:" DSN would give
	// every connection its own empty database.
	conn.SetMaxOpenConns(1)

	// sql.Open only creates the pool; Ping forces a real connection so
	// a bad path fails here instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight — the normal
	// situation for a web server.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// SQLite ships with foreign keys off; comments and notes reference
	// users and news, so turn them on.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	db.News = &NewsRepo{conn: conn}
	db.Comments = &CommentRepo{conn: conn}
	db.Notes = &NoteRepo{conn: conn}
	db.Users = &UserRepo{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps it
// idempotent; this runs on every start.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS news (
			id    TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			text  TEXT NOT NULL DEFAULT '',
			date  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_news_date ON news(date);
	`)
	if err != nil {
		return fmt.Errorf("creating news table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS comments (
			id        TEXT PRIMARY KEY,
			news_id   TEXT NOT NULL REFERENCES news(id) ON DELETE CASCADE,
			author_id TEXT NOT NULL REFERENCES users(id),
			text      TEXT NOT NULL,
			created   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_comments_news_created ON comments(news_id, created);
	`)
	if err != nil {
		return fmt.Errorf("creating comments table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS notes (
			id        TEXT PRIMARY KEY,
			title     TEXT NOT NULL,
			text      TEXT NOT NULL DEFAULT '',
			slug      TEXT NOT NULL UNIQUE,
			author_id TEXT NOT NULL REFERENCES users(id),
			created   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_notes_author ON notes(author_id);
	`)
	if err != nil {
		return fmt.Errorf("creating notes table: %w", err)
	}

	return nil
}
