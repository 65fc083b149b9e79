package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/claude/wgerfetch/internal/models"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS exercises (
	row_id             INTEGER PRIMARY KEY,
	run_id             TEXT NOT NULL,
	exercise_id        TEXT NOT NULL,
	name               TEXT NOT NULL,
	original_name      TEXT NOT NULL,
	alt_names          TEXT NOT NULL,
	force              TEXT NOT NULL,
	level              TEXT NOT NULL,
	mechanic           TEXT NOT NULL,
	equipment          TEXT NOT NULL,
	primary_muscles    TEXT NOT NULL,
	secondary_muscles  TEXT NOT NULL,
	instructions       TEXT NOT NULL,
	category           TEXT NOT NULL,
	app_category       TEXT NOT NULL,
	license_name       TEXT NOT NULL,
	license_url        TEXT NOT NULL,
	exercise_author    TEXT NOT NULL,
	translation_author TEXT NOT NULL,
	source             TEXT NOT NULL
)`

// SQLiteSink stores the catalog in an exercises table of a SQLite file.
// List fields are stored as JSON text.
type SQLiteSink struct {
	db   *sql.DB
	path string
}

// Compile-time check: SQLiteSink satisfies Sink.
var _ Sink = (*SQLiteSink)(nil)

// OpenSQLite opens (or creates) the SQLite database at path.
func OpenSQLite(path string) (*SQLiteSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating sqlite dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating exercises table: %w", err)
	}
	return &SQLiteSink{db: db, path: path}, nil
}

func (s *SQLiteSink) Name() string { return "sqlite:" + s.path }

// Write replaces the table contents with exercises in a single transaction.
func (s *SQLiteSink) Write(ctx context.Context, runID string, exercises []models.Exercise) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM exercises`); err != nil {
		return fmt.Errorf("clearing exercises: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO exercises (row_id, run_id, exercise_id, name,
		original_name, alt_names, force, level, mechanic, equipment, primary_muscles,
		secondary_muscles, instructions, category, app_category, license_name, license_url,
		exercise_author, translation_author, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, ex := range exercises {
		altNames, err := jsonText(ex.AltNames)
		if err != nil {
			return err
		}
		primary, err := jsonText(ex.PrimaryMuscles)
		if err != nil {
			return err
		}
		secondary, err := jsonText(ex.SecondaryMuscles)
		if err != nil {
			return err
		}
		instructions, err := jsonText(ex.Instructions)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, i+1, runID, ex.ID, ex.Name,
			ex.OriginalName, altNames, ex.Force, ex.Level, ex.Mechanic, ex.Equipment, primary,
			secondary, instructions, ex.Category, ex.AppCategory, ex.License.Name, ex.License.URL,
			ex.License.ExerciseAuthor, ex.License.TranslationAuthor, ex.License.Source); err != nil {
			return fmt.Errorf("inserting exercise %s: %w", ex.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing exercises: %w", err)
	}
	return nil
}

// Count returns the number of stored exercises.
func (s *SQLiteSink) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&n)
	return n, err
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

func jsonText(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding list column: %w", err)
	}
	return string(data), nil
}
