package taxonomy

import (
	"slices"
	"strings"
)

// Force values.
const (
	ForcePush   = "push"
	ForcePull   = "pull"
	ForceStatic = "static"
)

// Mechanic values.
const (
	MechanicCompound  = "compound"
	MechanicIsolation = "isolation"
)

// Level values.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Keyword lists are matched as substrings of lower-cased text. Order of the
// checks in each classifier is part of its behaviour.
var (
	staticWords    = []string{"stretch", "hold", "plank", "static"}
	pullMuscles    = []string{"lats", "middle back", "biceps", "traps"}
	pullWords      = []string{"pull", "row", "chin-up", "pulldown", "curl"}
	isolationWords = []string{"curl", "extension", "fly", "raise", "flye"}
	beginnerWords  = []string{"beginner", "basic", "easy", "simple"}
	advancedWords  = []string{"advanced", "expert", "difficult", "complex"}
)

// Force classifies an exercise as static, pull or push from its name and
// mapped primary muscles. Static keywords win over everything else.
func Force(name string, primaryMuscles []string) string {
	lower := strings.ToLower(name)
	if containsAny(lower, staticWords...) {
		return ForceStatic
	}
	for _, m := range pullMuscles {
		if slices.Contains(primaryMuscles, m) {
			return ForcePull
		}
	}
	if containsAny(lower, pullWords...) {
		return ForcePull
	}
	return ForcePush
}

// Mechanic classifies an exercise as isolation or compound. Isolation keywords
// in the name take precedence over the muscle count.
func Mechanic(name string, muscleCount int) string {
	if containsAny(strings.ToLower(name), isolationWords...) {
		return MechanicIsolation
	}
	if muscleCount >= 2 {
		return MechanicCompound
	}
	return MechanicIsolation
}

// Level guesses difficulty from the raw description and the name.
func Level(description, name string) string {
	text := strings.ToLower(description + " " + name)
	switch {
	case containsAny(text, beginnerWords...):
		return LevelBeginner
	case containsAny(text, advancedWords...):
		return LevelAdvanced
	default:
		return LevelIntermediate
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
