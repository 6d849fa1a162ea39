package turso

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/srsadmin/internal/migrate"
	"github.com/emiliopalmerini/srsadmin/internal/ports"
)

// remoteConnString adds authToken to the query of a remote database URL.
func remoteConnString(dbURL, authToken string) (string, error) {
	if authToken == "" {
		return dbURL, nil
	}
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}
	query := u.Query()
	query.Set("authToken", authToken)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// DB wraps the registry database handle.
type DB struct {
	*sql.DB
}

// Open connects to a libsql database. file: URLs are opened locally and their
// parent directory is created; any other URL is treated as a remote libsql
// server authenticated with authToken.
func Open(dbURL, authToken string) (*DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	connStr := dbURL
	if path, ok := strings.CutPrefix(dbURL, "file:"); ok {
		if dir := filepath.Dir(path); dir != "." && !strings.Contains(path, ":memory:") {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	} else {
		var err error
		if connStr, err = remoteConnString(dbURL, authToken); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if !strings.HasPrefix(dbURL, "file:") {
		// Remote servers close idle Hrana streams; stale pooled
		// connections then fail with "stream not found".
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(0)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Migrate brings the schema up to date.
func (d *DB) Migrate(ctx context.Context, logger ports.Logger) error {
	return migrate.RunAll(ctx, d.DB, logger)
}
