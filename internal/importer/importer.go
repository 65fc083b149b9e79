package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/claude/wgerfetch/internal/convert"
	"github.com/claude/wgerfetch/internal/models"
	"github.com/claude/wgerfetch/internal/storage"
)

// Fetcher returns the raw exerciseinfo records of the source API.
type Fetcher interface {
	FetchExercises(ctx context.Context) ([]json.RawMessage, error)
}

// Stats tracks conversion progress.
type Stats struct {
	RunID string

	RecordsFetched int
	Converted      int
	Skipped        int // no translation in the requested language
	Errored        int

	Categories []string
	Equipment  []string
}

// Importer converts the wger exercise catalog to the curlsapp format.
type Importer struct {
	fetcher  Fetcher
	sinks    []storage.Sink
	language int
	dryRun   bool
	log      *slog.Logger
	stats    Stats
}

// New creates a new Importer. Each run gets a fresh run id attached to its log lines.
func New(fetcher Fetcher, sinks []storage.Sink, language int, dryRun bool, log *slog.Logger) *Importer {
	runID := uuid.NewString()
	return &Importer{
		fetcher:  fetcher,
		sinks:    sinks,
		language: language,
		dryRun:   dryRun,
		log:      log.With("run_id", runID),
		stats:    Stats{RunID: runID},
	}
}

// Run fetches all records, converts them and writes the result to every sink.
// A fetch or sink failure aborts the run; a failing record is logged and skipped.
func (imp *Importer) Run(ctx context.Context) (*Stats, error) {
	imp.log.Info("fetching exercises from wger API")
	records, err := imp.fetcher.FetchExercises(ctx)
	if err != nil {
		return &imp.stats, fmt.Errorf("fetching exercises: %w", err)
	}
	imp.stats.RecordsFetched = len(records)
	imp.log.Info("processing exercises", "count", len(records))

	exercises := imp.convertAll(records)
	imp.stats.Converted = len(exercises)
	imp.stats.Categories, imp.stats.Equipment = distinctValues(exercises)
	imp.log.Info("transformed exercises",
		"converted", imp.stats.Converted,
		"skipped", imp.stats.Skipped,
		"errored", imp.stats.Errored,
	)

	if imp.dryRun {
		return &imp.stats, nil
	}

	for _, sink := range imp.sinks {
		if err := sink.Write(ctx, imp.stats.RunID, exercises); err != nil {
			return &imp.stats, fmt.Errorf("writing %s: %w", sink.Name(), err)
		}
		imp.log.Info("exercises saved", "sink", sink.Name(), "count", len(exercises))
	}

	return &imp.stats, nil
}

// convertAll converts records in order. Records without a translation are
// dropped silently; failing records are logged and counted.
func (imp *Importer) convertAll(records []json.RawMessage) []models.Exercise {
	exercises := make([]models.Exercise, 0, len(records))
	for _, raw := range records {
		ex, ok, err := imp.convertRecord(raw)
		if err != nil {
			imp.log.Warn("error processing exercise", "exercise_id", sourceID(raw), "error", err)
			imp.stats.Errored++
			continue
		}
		if !ok {
			imp.stats.Skipped++
			continue
		}
		exercises = append(exercises, ex)
	}
	return exercises
}

// convertRecord decodes and transforms one record. A panic during conversion is
// returned as an error so the batch can continue.
func (imp *Importer) convertRecord(raw json.RawMessage) (ex models.Exercise, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	src, err := convert.Decode(raw)
	if err != nil {
		return models.Exercise{}, false, err
	}
	ex, ok = convert.Transform(src, imp.language)
	return ex, ok, nil
}

// sourceID returns the wger id of a raw record, or "unknown".
func sourceID(raw json.RawMessage) string {
	var rec struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &rec); err != nil || len(rec.ID) == 0 || string(rec.ID) == "null" {
		return "unknown"
	}
	var s string
	if err := json.Unmarshal(rec.ID, &s); err == nil {
		return s
	}
	return string(rec.ID)
}

// distinctValues returns the sorted distinct app categories and equipment values.
func distinctValues(exercises []models.Exercise) (categories, equipment []string) {
	catSet := map[string]bool{}
	eqSet := map[string]bool{}
	for _, ex := range exercises {
		catSet[ex.AppCategory] = true
		eqSet[ex.Equipment] = true
	}
	return sortedKeys(catSet), sortedKeys(eqSet)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
