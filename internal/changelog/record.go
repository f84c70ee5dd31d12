package changelog

import (
	"time"

	"github.com/google/uuid"
)

// Editor is the user attributed as the actor of a change. Every step of the
// pipeline requires one; a write without an editor produces no audit output.
type Editor struct {
	ID   string
	Name string
}

// Zero reports whether no editor was supplied.
func (e Editor) Zero() bool {
	return e.ID == ""
}

// Record is one audit entry describing a single column's change for one
// entity write. It is created once, immutably; attaching per-locale text is
// part of creation, not a later mutation.
type Record struct {
	ID        uuid.UUID
	SubjectID string
	Kind      Kind

	// Column is the semantic field or action name. Not necessarily a
	// database column: composite actions such as "subtask", "image" or
	// "dispatched" use it as a label.
	Column   string
	OldValue *string
	NewValue *string

	EditorID   string
	EditorName string
	EditorKind string

	// Seq orders records within one commit batch. CreatedAt is additionally
	// kept strictly increasing in Seq order so that timestamp-sorted reads
	// display stably.
	Seq       int
	CreatedAt time.Time

	// DedupKey makes the insert idempotent across redelivery of the same
	// commit callback.
	DedupKey string

	// Aux carries template parameters that do not fit the old/new shape,
	// e.g. a related company name used only for interpolation.
	Aux map[string]string

	// Text maps locale code to the rendered sentence for that locale.
	Text map[string]string
}

// EditorKindUser is the only editor kind the platform attributes changes to.
const EditorKindUser = "user"

// StrPtr is a convenience for building nullable old/new values.
func StrPtr(s string) *string { return &s }

// StrOrEmpty dereferences a nullable value for display and logging.
func StrOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
