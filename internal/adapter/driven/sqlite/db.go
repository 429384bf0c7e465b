// Package sqlite persists the like/comment interaction mirror. Unlike the
// content collections, the mirror takes unauthenticated public writes, so it
// lives in SQLite instead of the flat-file content store.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the interaction database connection. Writes are serialized through
// a single connection; WAL mode keeps concurrent readers cheap.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens (creating if needed) the interaction database at path with WAL
// mode, a busy timeout, and foreign keys enabled.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)",
		path,
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open interaction db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping interaction db: %w", err)
	}

	return &DB{conn: conn, path: path}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("close interaction db: %w", err)
	}
	return nil
}
