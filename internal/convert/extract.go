package convert

import "github.com/claude/wgerfetch/internal/models"

// Defaults for fields missing from a wger record.
const (
	defaultCategory    = "Other"
	defaultName        = "Unknown Exercise"
	defaultLicenseName = "Unknown"
)

// Fields holds the values pulled out of one wger record, with defaults applied.
type Fields struct {
	Name              string
	Description       string
	Category          string
	PrimaryMuscles    []models.WgerMuscle
	SecondaryMuscles  []models.WgerMuscle
	Equipment         []string
	LicenseName       string
	LicenseURL        string
	ExerciseAuthor    string
	TranslationAuthor string
}

// Extract selects the translation in the given language and flattens the nested
// references of the record. It reports false when the record has no such
// translation; that is a skip, not an error.
func Extract(ex models.WgerExercise, language int) (Fields, bool) {
	tr := ex.Translation(language)
	if tr == nil {
		return Fields{}, false
	}

	f := Fields{
		Name:              deref(tr.Name, defaultName),
		Description:       deref(tr.Description, ""),
		Category:          defaultCategory,
		PrimaryMuscles:    ex.Muscles,
		SecondaryMuscles:  ex.MusclesSecondary,
		Equipment:         make([]string, 0, len(ex.Equipment)),
		LicenseName:       defaultLicenseName,
		ExerciseAuthor:    ex.LicenseAuthor,
		TranslationAuthor: tr.LicenseAuthor,
	}
	if ex.Category != nil {
		f.Category = deref(ex.Category.Name, defaultCategory)
	}
	for _, eq := range ex.Equipment {
		f.Equipment = append(f.Equipment, eq.Name)
	}
	if ex.License != nil {
		f.LicenseName = deref(ex.License.ShortName, defaultLicenseName)
		f.LicenseURL = ex.License.URL
	}
	return f, true
}

func deref(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
