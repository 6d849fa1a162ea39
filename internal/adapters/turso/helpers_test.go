package turso_test

import (
	"context"
	"testing"

	"github.com/emiliopalmerini/srsadmin/internal/adapters/logging"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/turso"
)

func testDB(t *testing.T) *turso.DB {
	t.Helper()

	db, err := turso.Open("file::memory:", "")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Migrate(context.Background(), logging.Nop()); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}
