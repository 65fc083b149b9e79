package models

// Fixed values of every emitted record.
const (
	ExerciseCategory = "strength"
	LicenseSource    = "wger.de"
)

// Exercise is one entry of the curlsapp exercise database.
// Field order matches the JSON layout the app ships with.
type Exercise struct {
	Name             string   `json:"name"`
	AltNames         []string `json:"altNames"`
	Force            string   `json:"force"`
	Level            string   `json:"level"`
	Mechanic         string   `json:"mechanic"`
	Equipment        string   `json:"equipment"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	Category         string   `json:"category"`
	ID               string   `json:"id"`
	OriginalName     string   `json:"original_name"`
	AppCategory      string   `json:"app_category"`
	License          License  `json:"license"`
}

// License carries the attribution wger requires for redistributed exercises.
type License struct {
	Name              string `json:"license_name"`
	URL               string `json:"license_url"`
	ExerciseAuthor    string `json:"exercise_author"`
	TranslationAuthor string `json:"translation_author"`
	Source            string `json:"source"`
}
