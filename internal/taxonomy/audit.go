package taxonomy

import (
	"fmt"
	"sort"
)

// Kind names one of the three vocabularies.
type Kind string

const (
	KindMuscle    Kind = "muscle"
	KindEquipment Kind = "equipment"
	KindCategory  Kind = "category"
)

// Audit returns the source terms of the given vocabulary that have no table
// entry and would be mapped by the lower-casing fallback. The result is sorted
// and free of duplicates; empty terms are ignored.
func Audit(kind Kind, terms []string) ([]string, error) {
	var table map[string]string
	switch kind {
	case KindMuscle:
		table = muscleMap
	case KindEquipment:
		table = equipmentMap
	case KindCategory:
		table = categoryMap
	default:
		return nil, fmt.Errorf("unknown vocabulary %q", kind)
	}

	seen := map[string]bool{}
	unmapped := []string{}
	for _, t := range terms {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		if _, ok := table[t]; !ok {
			unmapped = append(unmapped, t)
		}
	}
	sort.Strings(unmapped)
	return unmapped, nil
}
