package convert

import (
	"encoding/json"
	"testing"

	"github.com/claude/wgerfetch/internal/models"
)

// TestExtractMissingTranslation verifies that a record without an English
// translation is reported as not found rather than as an error.
func TestExtractMissingTranslation(t *testing.T) {
	name := "Bizepscurls"
	ex := models.WgerExercise{
		Translations: []models.WgerTranslation{{Name: &name, Language: 1}},
	}
	if _, ok := Extract(ex, models.LanguageEnglish); ok {
		t.Fatal("expected no English translation")
	}
}

// TestExtractDefaults verifies that absent or null optional fields fall back to
// their documented defaults instead of failing.
func TestExtractDefaults(t *testing.T) {
	raw := `{"category": null, "license": {"url": "https://example.com"}, "license_author": null,
		"translations": [{"language": 2, "description": null}]}`
	var ex models.WgerExercise
	if err := json.Unmarshal([]byte(raw), &ex); err != nil {
		t.Fatal(err)
	}

	f, ok := Extract(ex, models.LanguageEnglish)
	if !ok {
		t.Fatal("expected English translation")
	}
	if f.Name != "Unknown Exercise" {
		t.Errorf("name = %q, want Unknown Exercise", f.Name)
	}
	if f.Description != "" {
		t.Errorf("description = %q, want empty", f.Description)
	}
	if f.Category != "Other" {
		t.Errorf("category = %q, want Other", f.Category)
	}
	if f.LicenseName != "Unknown" {
		t.Errorf("license name = %q, want Unknown", f.LicenseName)
	}
	if f.LicenseURL != "https://example.com" {
		t.Errorf("license url = %q", f.LicenseURL)
	}
	if f.ExerciseAuthor != "" || f.TranslationAuthor != "" {
		t.Errorf("authors = %q/%q, want empty", f.ExerciseAuthor, f.TranslationAuthor)
	}
	if f.Equipment == nil || len(f.Equipment) != 0 {
		t.Errorf("equipment = %#v, want empty slice", f.Equipment)
	}
}

// TestExtractFirstEnglishTranslation verifies that the first matching translation wins.
func TestExtractFirstEnglishTranslation(t *testing.T) {
	first, second := "Squat", "Back Squat"
	ex := models.WgerExercise{
		Translations: []models.WgerTranslation{
			{Name: &first, Language: 2},
			{Name: &second, Language: 2},
		},
	}
	f, ok := Extract(ex, models.LanguageEnglish)
	if !ok || f.Name != "Squat" {
		t.Errorf("Extract() = %q, %v, want Squat, true", f.Name, ok)
	}
}
