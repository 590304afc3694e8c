package db

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	dbgen "github.com/codr1/designtokens/internal/db/generated"
)

func TestEnsureForeignKeysEnabledDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "file.db", want: "file.db?_fk=1"},
		{dsn: "file.db?cache=shared", want: "file.db?cache=shared&_fk=1"},
		{dsn: "file.db?_fk=0", want: "file.db?_fk=0"},
	}
	for _, test := range tests {
		if got := ensureForeignKeysEnabledDSN(test.dsn); got != test.want {
			t.Fatalf("ensureForeignKeysEnabledDSN(%q) = %q, want %q", test.dsn, got, test.want)
		}
	}
}

func TestNew_CascadeDeletesEntries(t *testing.T) {
	database, err := New(filepath.Join(t.TempDir(), "cascade.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	ctx := context.Background()
	now := time.Now().UTC()
	if _, err := database.Queries.CreateColorGroup(ctx, dbgen.CreateColorGroupParams{ID: "g1", Name: "Greens", CreatedAt: now}); err != nil {
		t.Fatalf("create group: %v", err)
	}
	if _, err := database.Queries.CreateColorEntry(ctx, dbgen.CreateColorEntryParams{
		ID: "e1", GroupID: "g1", Name: "green.100", Value: "#00FF00", Position: 0, CreatedAt: now,
	}); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	deleted, err := database.Queries.DeleteColorGroup(ctx, "g1")
	if err != nil {
		t.Fatalf("delete group: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted rows = %d, want 1", deleted)
	}

	count, err := database.Queries.CountColorEntries(ctx, "g1")
	if err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 0 {
		t.Fatalf("entries after cascade = %d, want 0", count)
	}
}

func TestMigrate_UpDownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "migrate.db")

	status, err := Migrate(path, "up")
	if err != nil {
		t.Fatalf("Migrate(up) error = %v", err)
	}
	if status.Version != 2 || status.Dirty {
		t.Fatalf("status after up = %+v, want version 2 clean", status)
	}

	status, err = Migrate(path, "down")
	if err != nil {
		t.Fatalf("Migrate(down) error = %v", err)
	}
	if status.Version != 0 {
		t.Fatalf("status after down = %+v, want version 0", status)
	}

	if _, err := Migrate(path, "sideways"); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

var queryNamePattern = regexp.MustCompile(`(?m)-- name: \w+ :\w+$`)

func TestGeneratedQueriesMatchSources(t *testing.T) {
	for _, source := range []string{"color_entries.sql", "color_groups.sql"} {
		sql, err := os.ReadFile(filepath.Join("queries", source))
		if err != nil {
			t.Fatalf("read %s: %v", source, err)
		}
		goSrc, err := os.ReadFile(filepath.Join("generated", source+".go"))
		if err != nil {
			t.Fatalf("read generated %s: %v", source, err)
		}

		names := queryNamePattern.FindAllString(string(sql), -1)
		if len(names) == 0 {
			t.Fatalf("%s declares no queries", source)
		}
		for _, name := range names {
			if !strings.Contains(string(goSrc), name) {
				t.Errorf("generated/%s.go is missing %q", source, name)
			}
		}
		if got, want := len(queryNamePattern.FindAllString(string(goSrc), -1)), len(names); got != want {
			t.Errorf("generated/%s.go has %d queries, %s has %d", source, got, source, want)
		}
	}
}
