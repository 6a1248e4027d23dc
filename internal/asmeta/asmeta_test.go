package asmeta

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func seedDB(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	stmts := []string{
		"CREATE TABLE as_org (asn INTEGER, org TEXT, country TEXT)",
		"INSERT INTO as_org VALUES (1, 'Example Org', 'US')",
		"INSERT INTO as_org VALUES (2, 'Other Org', 'FR')",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Exec(%q): %v", stmt, err)
		}
	}
}

func TestLoadAndLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asmeta.sqlite3")
	seedDB(t, path)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	info, ok := store.Lookup(1)
	if !ok || info.Org != "Example Org" || info.Country != "US" {
		t.Fatalf("Lookup(1) = %+v, %v", info, ok)
	}

	if _, ok := store.Lookup(999); ok {
		t.Fatalf("expected Lookup(999) to miss")
	}
}
