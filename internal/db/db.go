// Package db provides SQL storage for the template catalog on PostgreSQL or SQLite.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite" // register sqlite as database/sql driver
)

// Dialect identifies the SQL backend.
type Dialect string

const (
	// DialectPostgres uses pgx through database/sql
	DialectPostgres Dialect = "postgres"
	// DialectSQLite uses the pure Go modernc.org/sqlite driver
	DialectSQLite Dialect = "sqlite"
)

// DefaultPingTimeout bounds the connectivity check in Connect.
const DefaultPingTimeout = 5 * time.Second

// ParseDialect validates a driver name from configuration.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q (expected postgres or sqlite)", name)
	}
}

// DB wraps a database/sql handle with its dialect
type DB struct {
	sql     *sql.DB
	pool    *pgxpool.Pool
	dialect Dialect
}

// New wraps an existing handle. Close releases it.
func New(handle *sql.DB, dialect Dialect) *DB {
	return &DB{sql: handle, dialect: dialect}
}

// Connect establishes a connection to the database and verifies it.
func Connect(ctx context.Context, dialect Dialect, databaseURL string) (*DB, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("database URL is empty")
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		pool, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		db = &DB{sql: stdlib.OpenDBFromPool(pool), pool: pool, dialect: dialect}
	case DialectSQLite:
		handle, err := sql.Open("sqlite", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// SQLite allows a single writer
		handle.SetMaxOpenConns(1)
		db = &DB{sql: handle, dialect: dialect}
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()
	if err := db.sql.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.sql != nil {
		_ = db.sql.Close()
	}
	if db.pool != nil {
		db.pool.Close()
	}
}

// Dialect returns the backend the handle talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// rebind rewrites ? placeholders into the dialect's form.
func (db *DB) rebind(query string) string {
	if db.dialect != DialectPostgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
