package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/claude/wgerfetch/internal/models"
)

func sampleExercise(id string) models.Exercise {
	return models.Exercise{
		Name:             "Kniebeuge – Squat <deep> & slow",
		AltNames:         []string{},
		Force:            "push",
		Level:            "intermediate",
		Mechanic:         "compound",
		Equipment:        "barbell",
		PrimaryMuscles:   []string{"quadriceps"},
		SecondaryMuscles: []string{},
		Instructions:     []string{"Stand tall."},
		Category:         "strength",
		ID:               id,
		OriginalName:     "Squat",
		AppCategory:      "legs",
		License:          models.License{Name: "CC-BY-SA 4", Source: "wger.de"},
	}
}

// TestEncodeJSONEmpty verifies that an empty or nil catalog is written as [].
func TestEncodeJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[]" {
		t.Errorf("got %q, want []", buf.String())
	}
}

// TestEncodeJSONVerbatimText verifies that non-ASCII and HTML characters are not
// escaped, indentation is two spaces, and there is no trailing newline.
func TestEncodeJSONVerbatimText(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, []models.Exercise{sampleExercise("squat")}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, `"name": "Kniebeuge – Squat <deep> & slow"`) {
		t.Errorf("name not written verbatim:\n%s", out)
	}
	if !strings.HasPrefix(out, "[\n  {\n    \"name\"") {
		t.Errorf("unexpected indentation:\n%s", out)
	}
	if !strings.Contains(out, `"altNames": [],`) {
		t.Errorf("empty altNames should be [], got:\n%s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("output should not end with a newline")
	}
}

// TestJSONFileOverwrites verifies that a second write fully replaces the file.
func TestJSONFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wger_exercises.json")
	sink := &JSONFile{Path: path}
	ctx := context.Background()

	if err := sink.Write(ctx, "run-1", []models.Exercise{sampleExercise("a"), sampleExercise("b")}); err != nil {
		t.Fatal(err)
	}
	if err := sink.Write(ctx, "run-2", nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("file = %q, want []", data)
	}
}
