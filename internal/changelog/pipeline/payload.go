package pipeline

import (
	"encoding/json"
	"time"

	"chronicle/internal/changelog"
)

// recordPayload is the broadcast wire shape. Text carries every locale so
// subscribers need no knowledge of each other's languages.
type recordPayload struct {
	ID          string            `json:"id"`
	SubjectID   string            `json:"subjectId"`
	SubjectType string            `json:"subjectType"`
	Column      string            `json:"column"`
	OldValue    *string           `json:"oldValue"`
	NewValue    *string           `json:"newValue"`
	EditorID    string            `json:"editorId"`
	EditorName  string            `json:"editorName"`
	Seq         int               `json:"seq"`
	CreatedAt   time.Time         `json:"createdAt"`
	Aux         map[string]string `json:"auxiliary,omitempty"`
	Text        map[string]string `json:"text"`
}

func marshalRecord(rec *changelog.Record) ([]byte, error) {
	return json.Marshal(recordPayload{
		ID:          rec.ID.String(),
		SubjectID:   rec.SubjectID,
		SubjectType: rec.Kind.String(),
		Column:      rec.Column,
		OldValue:    rec.OldValue,
		NewValue:    rec.NewValue,
		EditorID:    rec.EditorID,
		EditorName:  rec.EditorName,
		Seq:         rec.Seq,
		CreatedAt:   rec.CreatedAt,
		Aux:         rec.Aux,
		Text:        rec.Text,
	})
}
