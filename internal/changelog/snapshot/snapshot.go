// Package snapshot holds the string-coerced before/after views of an entity
// that the diff detector compares, plus the read-only context lookups the
// narration engine needs (time zones, related display names).
package snapshot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Snapshot is a field → value view of an entity's tracked fields at one point
// in time. Values are string-coerced scalars; nil means SQL NULL. Fields the
// caller never set are treated as NULL by the diff detector.
type Snapshot map[string]*string

// New builds an empty snapshot.
func New() Snapshot {
	return make(Snapshot)
}

// Set coerces v to its scalar string form and stores it under field.
// Supported inputs mirror what the persistence layer hands the lifecycle
// hook: strings, integers, floats, bools, time.Time, pointers to any of
// those, and nil for NULL.
func (s Snapshot) Set(field string, v any) Snapshot {
	s[field] = Coerce(v)
	return s
}

// SetJoined stores a many-to-many association as the sorted, comma-joined
// set of related display names. Association changes are detected by
// comparing these joined sets, since no scalar column changes.
func (s Snapshot) SetJoined(field string, names []string) Snapshot {
	if names == nil {
		s[field] = nil
		return s
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	joined := strings.Join(sorted, ", ")
	s[field] = &joined
	return s
}

// Get returns the value for field and whether it is non-NULL.
func (s Snapshot) Get(field string) (string, bool) {
	v, ok := s[field]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Value returns the raw nullable value for field.
func (s Snapshot) Value(field string) *string {
	return s[field]
}

// Coerce turns an arbitrary scalar into its audit string form.
func Coerce(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case *string:
		return t
	case string:
		return &t
	case bool:
		s := strconv.FormatBool(t)
		return &s
	case time.Time:
		s := t.UTC().Format(time.RFC3339)
		return &s
	case *time.Time:
		if t == nil {
			return nil
		}
		return Coerce(*t)
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s
	case float32:
		s := strconv.FormatFloat(float64(t), 'f', -1, 32)
		return &s
	default:
		s := fmt.Sprintf("%v", t)
		return &s
	}
}

// Equal compares two nullable values; two NULLs are equal.
func Equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
