package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect identifies the SQL backend behind a DB
type Dialect string

const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "pgx"
)

// DefaultSQLitePath is used when DATABASE_URL is empty
const DefaultSQLitePath = "portfolio.db"

// DB wraps the connection pool together with its dialect
type DB struct {
	*sql.DB
	Dialect Dialect
}

// ParseURL maps a DATABASE_URL value onto a dialect and a driver DSN
func ParseURL(databaseURL string) (Dialect, string, error) {
	raw := strings.TrimSpace(databaseURL)

	switch {
	case raw == "":
		return SQLite, DefaultSQLitePath, nil
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return Postgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		return sqliteDSN(strings.TrimPrefix(raw, "sqlite://"))
	case strings.HasPrefix(raw, "sqlite:"):
		return sqliteDSN(strings.TrimPrefix(raw, "sqlite:"))
	case strings.Contains(raw, "://"):
		return "", "", fmt.Errorf("unsupported database url scheme: %s", raw[:strings.Index(raw, "://")])
	default:
		return sqliteDSN(raw)
	}
}

// sqliteDSN turns a path with optional query options into a go-sqlite3 DSN
func sqliteDSN(path string) (Dialect, string, error) {
	if path == "" {
		return "", "", fmt.Errorf("sqlite database path is empty")
	}
	if strings.Contains(path, "?") && !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return SQLite, path, nil
}

// Open connects to the database named by databaseURL
func Open(databaseURL string) (*DB, error) {
	dialect, dsn, err := ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == SQLite {
		// One connection serializes access to the backing file
		sqlDB.SetMaxOpenConns(1)
	}

	// Test the connection
	if err = sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if dialect == SQLite {
		if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return &DB{DB: sqlDB, Dialect: dialect}, nil
}

// Initialize opens the database connection and runs migrations
func Initialize(databaseURL string) (*DB, error) {
	db, err := Open(databaseURL)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Rebind rewrites ? placeholders into the form the dialect expects
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Rebind rewrites a query for this connection's dialect
func (db *DB) Rebind(query string) string {
	return db.Dialect.Rebind(query)
}
