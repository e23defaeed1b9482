// Package dbtest opens a migrated in-memory SQLite database for tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rtharindu/echannaling-admin/db"
)

// New returns a fresh database that is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	return NewWithLogger(t, zerolog.Nop())
}

func NewWithLogger(t testing.TB, log zerolog.Logger) *gorm.DB {
	t.Helper()

	// One connection keeps the in-memory database alive and serializes
	// concurrent queries.
	client, err := db.Open(sqlite.Open(":memory:"), db.Options{MaxOpenConns: 1, MaxIdleConns: 1}, log)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(client.DB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client.DB
}

// Break closes the underlying connection pool so every later query fails.
func Break(t testing.TB, gdb *gorm.DB) {
	t.Helper()
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	_ = sqlDB.Close()
}
