package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/claude/wgerfetch/internal/storage"
)

const onePage = `{"count": 1, "next": null, "results": [
  {"id": 73, "category": {"name": "Chest"}, "equipment": [{"name": "Barbell"}],
   "translations": [{"name": "Bench Press", "description": "<p>Lower the bar.</p>", "language": 2}]}
]}`

func newAPI(t *testing.T, status int) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/v2/exerciseinfo/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(onePage)) //nolint:errcheck
	})
	return httptest.NewServer(r)
}

// setOutputs points the run at a fake API and temp outputs through the env overrides.
func setOutputs(t *testing.T, baseURL string) (jsonPath, sqlitePath string) {
	t.Helper()
	dir := t.TempDir()
	jsonPath = filepath.Join(dir, "wger_exercises.json")
	sqlitePath = filepath.Join(dir, "exercises.db")
	t.Setenv("WGER_API_BASE_URL", baseURL+"/api/v2")
	t.Setenv("WGER_OUTPUT_PATH", jsonPath)
	t.Setenv("WGER_OUTPUT_SQLITE", sqlitePath)
	t.Setenv("WGER_DB_HOST", "")
	return jsonPath, sqlitePath
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestRunWritesOutputs verifies a full run writes the JSON file and the SQLite export.
func TestRunWritesOutputs(t *testing.T) {
	ts := newAPI(t, http.StatusOK)
	defer ts.Close()
	jsonPath, sqlitePath := setOutputs(t, ts.URL)

	if err := run(options{migrationsPath: "migrations"}, quietLogger()); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(jsonPath); err != nil {
		t.Errorf("json output: %v", err)
	}
	db, err := storage.OpenSQLite(sqlitePath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	n, err := db.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("sqlite rows = %d, want 1", n)
	}
}

// TestRunFetchFailure verifies that a failed fetch is returned as an error and
// leaves the JSON output unwritten.
func TestRunFetchFailure(t *testing.T) {
	ts := newAPI(t, http.StatusBadGateway)
	defer ts.Close()
	jsonPath, sqlitePath := setOutputs(t, ts.URL)

	if err := run(options{migrationsPath: "migrations"}, quietLogger()); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(jsonPath); !os.IsNotExist(err) {
		t.Errorf("json output exists after failed run: %v", err)
	}

	db, err := storage.OpenSQLite(sqlitePath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	n, err := db.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("sqlite rows = %d, want 0", n)
	}
}

// TestRunDryRun verifies that a dry run writes nothing.
func TestRunDryRun(t *testing.T) {
	ts := newAPI(t, http.StatusOK)
	defer ts.Close()
	jsonPath, sqlitePath := setOutputs(t, ts.URL)

	if err := run(options{dryRun: true}, quietLogger()); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{jsonPath, sqlitePath} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s exists after dry run: %v", p, err)
		}
	}
}
