package testutil

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/jrsteele09/go-employee-server/internal/db"
)

// OpenInMemoryDB opens a migrated in-memory SQLite database unique to the calling test.
// The shared cache keeps the data alive across the pooled connections that each store
// operation acquires and releases.
func OpenInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
