package models

import "encoding/json"

// UserRecord is the backend's user object. The backend enforces no fixed
// schema and has used several spellings for the same field over time, so
// the record is kept as a loose field map and read through internal/normalize.
type UserRecord map[string]interface{}

// Clone returns a shallow copy of the record
func (u UserRecord) Clone() UserRecord {
	if u == nil {
		return nil
	}
	out := make(UserRecord, len(u))
	for k, v := range u {
		out[k] = v
	}
	return out
}

// Equal reports whether both records encode to the same JSON document
func (u UserRecord) Equal(other UserRecord) bool {
	a, errA := json.Marshal(u)
	b, errB := json.Marshal(other)
	return errA == nil && errB == nil && string(a) == string(b)
}
