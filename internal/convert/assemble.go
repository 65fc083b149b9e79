package convert

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/claude/wgerfetch/internal/models"
	"github.com/claude/wgerfetch/internal/taxonomy"
)

const maxInstructions = 10

var (
	tagRe               = regexp.MustCompile(`<[^>]+>`)
	trailingParenRe     = regexp.MustCompile(`\([^)]*\)$`)
	skippedLinePrefixes = []string{"Tip:", "Note:"}
)

// Decode parses one raw exerciseinfo result.
func Decode(raw json.RawMessage) (models.WgerExercise, error) {
	var ex models.WgerExercise
	if err := json.Unmarshal(raw, &ex); err != nil {
		return ex, fmt.Errorf("decoding exercise: %w", err)
	}
	return ex, nil
}

// Transform converts a wger exercise to the curlsapp format. It returns false
// when the record has no translation in the requested language.
func Transform(ex models.WgerExercise, language int) (models.Exercise, bool) {
	f, ok := Extract(ex, language)
	if !ok {
		return models.Exercise{}, false
	}

	primary := uniqueMuscles(f.PrimaryMuscles)
	secondary := make([]string, 0, len(f.SecondaryMuscles))
	for _, m := range f.SecondaryMuscles {
		secondary = append(secondary, taxonomy.MapMuscle(m))
	}

	equipment := taxonomy.MapEquipment(f.Equipment)
	name := f.Name
	if len(f.Equipment) > 0 && equipment != taxonomy.BodyOnly {
		name = fmt.Sprintf("%s (%s)", f.Name, f.Equipment[0])
	}

	return models.Exercise{
		Name:             name,
		AltNames:         []string{},
		Force:            taxonomy.Force(f.Name, primary),
		Level:            taxonomy.Level(f.Description, f.Name),
		Mechanic:         taxonomy.Mechanic(f.Name, len(primary)+len(secondary)),
		Equipment:        equipment,
		PrimaryMuscles:   primary,
		SecondaryMuscles: secondary,
		Instructions:     Instructions(f.Description),
		Category:         models.ExerciseCategory,
		ID:               GenerateID(f.Name),
		OriginalName:     f.Name,
		AppCategory:      taxonomy.MapCategory(f.Category),
		License: models.License{
			Name:              f.LicenseName,
			URL:               f.LicenseURL,
			ExerciseAuthor:    f.ExerciseAuthor,
			TranslationAuthor: f.TranslationAuthor,
			Source:            models.LicenseSource,
		},
	}, true
}

// uniqueMuscles maps muscles and drops repeats, keeping first occurrences in order.
func uniqueMuscles(muscles []models.WgerMuscle) []string {
	out := make([]string, 0, len(muscles))
	seen := make(map[string]bool, len(muscles))
	for _, m := range muscles {
		mapped := taxonomy.MapMuscle(m)
		if seen[mapped] {
			continue
		}
		seen[mapped] = true
		out = append(out, mapped)
	}
	return out
}

// GenerateID builds a snake_case identifier from an exercise name. A trailing
// parenthetical such as "(Barbell)" is dropped first. The result contains only
// lower-case ASCII letters, digits and underscores. Any Unicode space separates
// words.
func GenerateID(name string) string {
	clean := trailingParenRe.ReplaceAllString(strings.TrimRightFunc(name, unicode.IsSpace), "")
	clean = strings.Map(keepIDRune, clean)
	return strings.ToLower(strings.Join(strings.Fields(clean), "_"))
}

func keepIDRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return r
	case unicode.IsSpace(r):
		return ' '
	}
	return -1
}

// Instructions converts an HTML description into at most ten instruction steps.
// Tags are removed, entities decoded, and blank lines or lines starting with
// "Tip:" or "Note:" dropped.
func Instructions(description string) []string {
	steps := []string{}
	if description == "" {
		return steps
	}

	text := html.UnescapeString(tagRe.ReplaceAllString(description, ""))
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || hasAnyPrefix(line, skippedLinePrefixes) {
			continue
		}
		steps = append(steps, line)
		if len(steps) == maxInstructions {
			break
		}
	}
	return steps
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
