package reconcile

import (
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/normalize"
)

// Patch is the set of fields one source is authoritative for
type Patch struct {
	Source string
	Fields models.UserRecord
}

// Merge overlays patches onto a copy of base in order, later patches winning
// for the same field. Base and patches are folded to canonical keys first so
// a field sent under another alias still replaces the cached one. Absent
// values (nil, "", false) in a patch never erase what is already there.
func Merge(base models.UserRecord, patches ...Patch) models.UserRecord {
	merged := normalize.Canonical(base)
	if merged == nil {
		merged = models.UserRecord{}
	}

	for _, patch := range patches {
		for key, value := range normalize.Canonical(patch.Fields) {
			if normalize.Stringify(value) == "" {
				continue
			}
			merged[key] = value
		}
	}

	return merged
}
