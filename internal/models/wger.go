package models

import "encoding/json"

// LanguageEnglish is the wger language id of English translations.
const LanguageEnglish = 2

// WgerPage is one page of a wger listing endpoint.
// Next holds the absolute URL of the following page, or null on the last one.
type WgerPage struct {
	Count   int               `json:"count"`
	Next    *string           `json:"next"`
	Results []json.RawMessage `json:"results"`
}

// WgerExercise is a record from /api/v2/exerciseinfo/ with all references nested.
// Every field is optional; JSON null decodes to the zero value.
type WgerExercise struct {
	ID               *int              `json:"id"`
	UUID             string            `json:"uuid"`
	Category         *WgerCategory     `json:"category"`
	Muscles          []WgerMuscle      `json:"muscles"`
	MusclesSecondary []WgerMuscle      `json:"muscles_secondary"`
	Equipment        []WgerEquipment   `json:"equipment"`
	License          *WgerLicense      `json:"license"`
	LicenseAuthor    string            `json:"license_author"`
	Translations     []WgerTranslation `json:"translations"`
}

// WgerTranslation is the per-language name and description of an exercise.
type WgerTranslation struct {
	ID            int     `json:"id"`
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Language      int     `json:"language"`
	LicenseAuthor string  `json:"license_author"`
}

// WgerCategory is an exercise category ("Arms", "Legs", ...).
type WgerCategory struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

// WgerMuscle is a muscle reference. Name is usually the Latin name, NameEn the common English one.
type WgerMuscle struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	NameEn  string `json:"name_en"`
	IsFront bool   `json:"is_front"`
}

// WgerEquipment is an equipment reference.
type WgerEquipment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// WgerLicense is the license attached to an exercise.
type WgerLicense struct {
	ID        int     `json:"id"`
	FullName  string  `json:"full_name"`
	ShortName *string `json:"short_name"`
	URL       string  `json:"url"`
}

// Translation returns the first translation in the given language, or nil.
func (e WgerExercise) Translation(language int) *WgerTranslation {
	for i := range e.Translations {
		if e.Translations[i].Language == language {
			return &e.Translations[i]
		}
	}
	return nil
}
