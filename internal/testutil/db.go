// Package testutil holds fixtures shared by the store, service and handler
// tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/codr1/designtokens/internal/db"
)

// NewTestDB returns a migrated SQLite database in the test's temp dir.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.NewFile(filepath.Join(t.TempDir(), "palette.db"))
	if err != nil {
		t.Fatalf("open palette db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// NewTestRedis starts an in-process Redis and returns a client for it. The
// server is returned so tests can inspect keys or simulate outages.
func NewTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
