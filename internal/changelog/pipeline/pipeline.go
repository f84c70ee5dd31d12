// Package pipeline wires the change-log stages together: diff detection,
// narration, persistence, locale rendering, and fan-out. It is invoked from
// entity lifecycle hooks before commit and does all real work in the
// commit-deferred callback, so audit output can never roll back or delay the
// business write.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/diff"
	"chronicle/internal/changelog/i18n"
	"chronicle/internal/changelog/narrate"
	"chronicle/internal/changelog/publish"
	"chronicle/internal/changelog/snapshot"
	"chronicle/internal/changelog/store"
	"chronicle/internal/changelog/txhook"
)

// Change describes one entity write as the lifecycle hook sees it.
type Change struct {
	Kind      changelog.Kind
	SubjectID string

	// EventID scopes context lookups for event-owned entities; empty
	// otherwise.
	EventID string

	// Prior is the previously-fetched snapshot; nil for creations.
	Prior   snapshot.Snapshot
	Current snapshot.Snapshot

	Editor changelog.Editor

	// Aux carries structured narration parameters attached at detection
	// time (file names, version labels, related display names).
	Aux map[string]string

	// TxID identifies the owning transaction; it seeds the idempotency key
	// so redelivered callbacks cannot duplicate records.
	TxID string
}

// Pipeline owns the full write path. All dependencies are passed in
// explicitly; nothing is resolved from ambient global state.
type Pipeline struct {
	store     store.Store
	engine    *narrate.Engine
	renderer  *i18n.Renderer
	publisher *publish.Publisher
	look      snapshot.Lookup
	logger    *slog.Logger
}

func New(st store.Store, engine *narrate.Engine, renderer *i18n.Renderer, pub *publish.Publisher, look snapshot.Lookup, logger *slog.Logger) *Pipeline {
	if look == nil {
		look = snapshot.NopLookup{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		store:     st,
		engine:    engine,
		renderer:  renderer,
		publisher: pub,
		look:      look,
		logger:    logger,
	}
}

// OnAfterWrite is the entity lifecycle hook entry point, fired after a
// create/update/destroy but before commit. Without an editor or without a
// commit hook in context the whole pipeline is a silent skip, not an error.
func (p *Pipeline) OnAfterWrite(ctx context.Context, ch Change) {
	p.OnAfterBulkWrite(ctx, []Change{ch})
}

// OnAfterBulkWrite registers one commit callback covering several writes in
// the same transaction, e.g. assigning many users to an event at once. The
// resulting records share a batch, so their timestamps order stably, and
// each publishes to its own routed channel.
func (p *Pipeline) OnAfterBulkWrite(ctx context.Context, changes []Change) {
	if len(changes) == 0 {
		return
	}
	if changes[0].Editor.Zero() {
		p.logger.DebugContext(ctx, "change without editor, skipping audit",
			"kind", changes[0].Kind.String(),
		)
		return
	}
	hook, ok := txhook.From(ctx)
	if !ok {
		// No transaction scope means audit was not requested for this write.
		return
	}
	hook.AfterCommit(func(cbCtx context.Context) error {
		return p.run(cbCtx, changes)
	})
}

// run executes after commit: detect, narrate, persist, render, publish.
// Returning an error here only produces a log line in the hook runner.
func (p *Pipeline) run(ctx context.Context, changes []Change) error {
	ctx, span := otel.Tracer("chronicle/pipeline").Start(ctx, "changelog.run")
	defer span.End()

	var (
		recs       []*changelog.Record
		narrations []narrate.Narration
	)
	for _, ch := range changes {
		in := narrate.Input{
			Kind:      ch.Kind,
			SubjectID: ch.SubjectID,
			EventID:   ch.EventID,
			Editor:    ch.Editor,
			Aux:       ch.Aux,
		}
		for _, detected := range diff.Detect(ctx, p.look, ch.Kind, ch.Prior, ch.Current) {
			n := p.engine.Narrate(ctx, in, detected)
			recs = append(recs, p.buildRecord(ch, n, len(recs)))
			narrations = append(narrations, n)
		}
	}
	if len(recs) == 0 {
		return nil
	}
	span.SetAttributes(attribute.Int("records", len(recs)))

	// Pre-render every locale before persisting so the stored record and
	// the broadcast payload carry identical text.
	for i, rec := range recs {
		rec.Text = p.renderer.RenderAll(rec.Kind, narrations[i])
	}

	stored, err := p.store.CreateMany(ctx, recs)
	if err != nil {
		return fmt.Errorf("persist change logs: %w", err)
	}

	for _, rec := range stored {
		payload, err := marshalRecord(rec)
		if err != nil {
			p.logger.ErrorContext(ctx, "marshal change log payload",
				"record_id", rec.ID,
				"error", err,
			)
			continue
		}
		if err := p.publisher.PublishRecord(ctx, rec.Kind, rec.SubjectID, eventsFor(rec.Kind), payload); err != nil {
			p.logger.ErrorContext(ctx, "publish change log",
				"record_id", rec.ID,
				"kind", rec.Kind.String(),
				"error", err,
			)
		}
	}
	return nil
}

func (p *Pipeline) buildRecord(ch Change, n narrate.Narration, seq int) *changelog.Record {
	rec := &changelog.Record{
		SubjectID:  ch.SubjectID,
		Kind:       ch.Kind,
		Column:     n.Column,
		OldValue:   n.Old,
		NewValue:   n.New,
		EditorID:   ch.Editor.ID,
		EditorName: ch.Editor.Name,
		EditorKind: changelog.EditorKindUser,
		Aux:        ch.Aux,
	}
	if ch.TxID != "" {
		rec.DedupKey = fmt.Sprintf("%s:%s:%s:%d", ch.TxID, ch.SubjectID, n.Column, seq)
	}
	return rec
}

// eventsFor names the realtime events the frontend binds per kind.
func eventsFor(kind changelog.Kind) []string {
	switch kind {
	case changelog.KindEventUser:
		return []string{"user-status-update"}
	case changelog.KindIncident:
		return []string{"new-changelog", "incident-update"}
	default:
		return []string{"new-changelog"}
	}
}
