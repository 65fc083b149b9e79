package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/claude/wgerfetch/internal/models"
)

// exerciseColumns is the number of bind parameters per inserted row.
const exerciseColumns = 20

// insertChunk keeps a single INSERT below the Postgres bind parameter limit.
const insertChunk = 1000

// DB wraps a pgxpool.Pool and stores the catalog in the exercises table.
type DB struct {
	Pool *pgxpool.Pool
}

// Compile-time check: DB satisfies Sink.
var _ Sink = (*DB)(nil)

// New creates a new DB with a connection pool.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{Pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (db *DB) Name() string { return "postgres" }

// Write replaces the exercises table contents in one transaction.
func (db *DB) Write(ctx context.Context, runID string, exercises []models.Exercise) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM exercises`); err != nil {
		return fmt.Errorf("clearing exercises: %w", err)
	}

	for start := 0; start < len(exercises); start += insertChunk {
		end := min(start+insertChunk, len(exercises))
		query, args := buildExerciseInsert(runID, start, exercises[start:end])
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting exercises %d-%d: %w", start, end, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing exercises: %w", err)
	}
	return nil
}

// buildExerciseInsert builds a multi-row INSERT for rows numbered from offset+1.
func buildExerciseInsert(runID string, offset int, exercises []models.Exercise) (string, []any) {
	query := `INSERT INTO exercises (row_id, run_id, exercise_id, name, original_name, alt_names,
		force, level, mechanic, equipment, primary_muscles, secondary_muscles, instructions,
		category, app_category, license_name, license_url, exercise_author, translation_author,
		source) VALUES `
	args := make([]any, 0, len(exercises)*exerciseColumns)
	valueStrings := make([]string, 0, len(exercises))

	for i, ex := range exercises {
		base := i * exerciseColumns
		placeholders := make([]string, exerciseColumns)
		for c := range placeholders {
			placeholders[c] = fmt.Sprintf("$%d", base+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		args = append(args, offset+i+1, runID, ex.ID, ex.Name, ex.OriginalName, nonNil(ex.AltNames),
			ex.Force, ex.Level, ex.Mechanic, ex.Equipment, nonNil(ex.PrimaryMuscles),
			nonNil(ex.SecondaryMuscles), nonNil(ex.Instructions), ex.Category, ex.AppCategory,
			ex.License.Name, ex.License.URL, ex.License.ExerciseAuthor, ex.License.TranslationAuthor,
			ex.License.Source)
	}

	return query + strings.Join(valueStrings, ","), args
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
