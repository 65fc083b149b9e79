package taxonomy

import (
	"strings"

	"github.com/claude/wgerfetch/internal/models"
)

// Tokens emitted when no better value is available.
const (
	Other    = "other"
	BodyOnly = "body only"
)

// muscleMap maps wger muscle names (mostly Latin) to curlsapp muscle groups.
var muscleMap = map[string]string{
	"Biceps brachii":              "biceps",
	"Anterior deltoid":            "shoulders",
	"Pectoralis major":            "chest",
	"Triceps brachii":             "triceps",
	"Rectus abdominis":            "abdominals",
	"Gastrocnemius":               "calves",
	"Gluteus maximus":             "glutes",
	"Trapezius":                   "traps",
	"Quadriceps femoris":          "quadriceps",
	"Biceps femoris":              "hamstrings",
	"Latissimus dorsi":            "lats",
	"Soleus":                      "calves",
	"Obliquus externus abdominis": "abdominals",
	"Deltoid":                     "shoulders",
	"Rhomboideus major":           "middle back",
	"Teres major":                 "lats",
	"Infraspinatus":               "shoulders",
	"Brachialis":                  "biceps",
	"Brachioradialis":             "forearms",
	"Tibialis anterior":           "shins",
	"Erector spinae":              "lower back",
}

// equipmentMap maps wger equipment names to curlsapp equipment.
var equipmentMap = map[string]string{
	"Barbell":                    "barbell",
	"SZ-Bar":                     "barbell",
	"Dumbbell":                   "dumbbell",
	"Kettlebell":                 "kettlebell",
	"Pull-up bar":                "pull-up bar",
	"none (bodyweight exercise)": BodyOnly,
	"Swiss Ball":                 "exercise ball",
	"Gym mat":                    BodyOnly,
	"Bench":                      BodyOnly,
	"Incline bench":              BodyOnly,
	"Resistance band":            "bands",
	"Cable":                      "cable",
}

// categoryMap maps wger categories to curlsapp app categories.
var categoryMap = map[string]string{
	"Arms":      "arms",
	"Legs":      "legs",
	"Abs":       "abs",
	"Chest":     "chest",
	"Back":      "back",
	"Shoulders": "shoulders",
	"Calves":    "calves",
}

// MapMuscle returns the curlsapp muscle for a wger muscle reference.
// Unknown muscles fall back to the lower-cased English name, then the lower-cased name.
func MapMuscle(m models.WgerMuscle) string {
	if mapped, ok := muscleMap[m.Name]; ok {
		return mapped
	}
	fallback := strings.ToLower(m.Name)
	if m.NameEn != "" {
		fallback = strings.ToLower(m.NameEn)
	}
	return orOther(fallback)
}

// MapEquipment returns the curlsapp equipment for an exercise's equipment list.
// Only the first entry is considered; an empty list means "body only".
func MapEquipment(names []string) string {
	if len(names) == 0 {
		return BodyOnly
	}
	first := names[0]
	if mapped, ok := equipmentMap[first]; ok {
		return mapped
	}
	return orOther(strings.ToLower(first))
}

// MapCategory returns the curlsapp app category for a wger category name.
func MapCategory(name string) string {
	if mapped, ok := categoryMap[name]; ok {
		return mapped
	}
	return orOther(strings.ToLower(name))
}

func orOther(s string) string {
	if s == "" {
		return Other
	}
	return s
}
