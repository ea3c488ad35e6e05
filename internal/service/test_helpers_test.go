package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fittrack/fittrack-cli/internal/db"
	"github.com/fittrack/fittrack-cli/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fittrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return store.New(sqldb, nil)
}

func testNow(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
}
