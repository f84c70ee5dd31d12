package pipeline

import (
	"context"
	"fmt"
	"time"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/diff"
	"chronicle/internal/changelog/narrate"
	"chronicle/internal/changelog/store"
)

// Entry is the query API view of one record, with the text already resolved
// to the requesting user's locale.
type Entry struct {
	ID        string            `json:"id"`
	Column    string            `json:"column"`
	OldValue  *string           `json:"oldValue"`
	NewValue  *string           `json:"newValue"`
	Text      string            `json:"text"`
	EditorID  string            `json:"editorId"`
	CreatedAt time.Time         `json:"createdAt"`
	Aux       map[string]string `json:"auxiliary,omitempty"`
}

// Page wraps one page of entries.
type Page struct {
	Entries  []Entry `json:"entries"`
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// ChangeLogs serves the read path: paginated records, newest first, with
// the sentence for the requesting user's locale. Records persisted before a
// locale existed render lazily through the same renderer the write path
// uses, so both paths always agree.
func (p *Pipeline) ChangeLogs(ctx context.Context, subjectID string, kinds []changelog.Kind, locale string, page, pageSize int) (*Page, error) {
	recs, total, err := p.store.List(ctx, store.Filter{
		SubjectID: subjectID,
		Kinds:     kinds,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list change logs: %w", err)
	}

	resolved := p.renderer.Resolve(locale)
	entries := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, Entry{
			ID:        rec.ID.String(),
			Column:    rec.Column,
			OldValue:  rec.OldValue,
			NewValue:  rec.NewValue,
			Text:      p.textFor(ctx, rec, resolved),
			EditorID:  rec.EditorID,
			CreatedAt: rec.CreatedAt,
			Aux:       rec.Aux,
		})
	}
	if page < 1 {
		page = 1
	}
	return &Page{Entries: entries, Total: total, Page: page, PageSize: pageSize}, nil
}

func (p *Pipeline) textFor(ctx context.Context, rec *changelog.Record, locale string) string {
	if text, ok := rec.Text[locale]; ok && text != "" {
		return text
	}
	n := p.engine.Narrate(ctx,
		narrate.Input{Kind: rec.Kind, SubjectID: rec.SubjectID, Aux: rec.Aux},
		diff.Change{Column: rec.Column, Old: rec.OldValue, New: rec.NewValue},
	)
	return p.renderer.Render(locale, rec.Kind, n)
}

// CreateChangeLog records an ad hoc audit entry that no lifecycle hook
// produced, e.g. a composite action logged directly by a controller. Unlike
// the hook path it runs inline and reports errors to the caller.
func (p *Pipeline) CreateChangeLog(ctx context.Context, kind changelog.Kind, subjectID, column string, oldValue, newValue *string, editor changelog.Editor, aux map[string]string) (*changelog.Record, error) {
	if editor.Zero() {
		return nil, fmt.Errorf("editor is required")
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown entity kind")
	}

	n := p.engine.Narrate(ctx,
		narrate.Input{Kind: kind, SubjectID: subjectID, Editor: editor, Aux: aux},
		diff.Change{Column: column, Old: oldValue, New: newValue},
	)
	rec := &changelog.Record{
		SubjectID:  subjectID,
		Kind:       kind,
		Column:     n.Column,
		OldValue:   n.Old,
		NewValue:   n.New,
		EditorID:   editor.ID,
		EditorName: editor.Name,
		EditorKind: changelog.EditorKindUser,
		Aux:        aux,
		Text:       p.renderer.RenderAll(kind, n),
	}

	stored, err := p.store.CreateOne(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("persist change log: %w", err)
	}

	if payload, err := marshalRecord(stored); err == nil {
		if err := p.publisher.PublishRecord(ctx, stored.Kind, stored.SubjectID, eventsFor(stored.Kind), payload); err != nil {
			p.logger.ErrorContext(ctx, "publish change log",
				"record_id", stored.ID,
				"error", err,
			)
		}
	}
	return stored, nil
}
