package admin

import (
	"encoding/json"
)

// Identifiable is satisfied by every record stored in an AppState collection
type Identifiable interface {
	GetID() string
}

// UpdateByID replaces the matching record with a shallow merge of its
// existing fields and the fields present in partial (JSON). Non-matching
// records pass through unchanged and order is preserved. Returns false when
// no record matches.
func UpdateByID[T Identifiable](list []T, id string, partial []byte) ([]T, bool, error) {
	out := make([]T, len(list))
	copy(out, list)

	for i := range out {
		if out[i].GetID() != id {
			continue
		}
		// Unmarshalling onto a copy of the existing record overwrites exactly
		// the top-level fields present in the payload.
		merged := out[i]
		if err := json.Unmarshal(partial, &merged); err != nil {
			return list, false, err
		}
		out[i] = merged
		return out, true, nil
	}
	return list, false, nil
}

// DeleteByID filters out the matching record, preserving the order of the
// remainder. Returns false when no record matches.
func DeleteByID[T Identifiable](list []T, id string) ([]T, bool) {
	out := make([]T, 0, len(list))
	found := false
	for _, item := range list {
		if item.GetID() == id {
			found = true
			continue
		}
		out = append(out, item)
	}
	return out, found
}

// Prepend inserts the item at the head of the list
func Prepend[T any](list []T, item T) []T {
	return append([]T{item}, list...)
}
