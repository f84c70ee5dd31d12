// Package narrate maps a detected column change to a narration action and
// its template parameters. Dispatch is two-level: first on entity kind, then
// on column within the kind. Unmapped pairs fall back to the generic
// set_to/updated_from narration; nothing here ever returns an error.
package narrate

import (
	"context"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/diff"
	"chronicle/internal/changelog/snapshot"
)

// Input carries the write-level context shared by every change in one commit.
type Input struct {
	Kind      changelog.Kind
	SubjectID string

	// EventID scopes time-zone lookups for incident timestamps. Empty when
	// the entity is not event-scoped.
	EventID string

	Editor changelog.Editor

	// Aux is the open parameter bag attached at detection time. The event
	// version and CAD rules read their structured payload from here instead
	// of re-parsing rendered text.
	Aux map[string]string
}

// Narration is one narratable change: the action picks the sentence
// template, Params interpolate literally, and LabelParams hold catalog keys
// that the renderer resolves per locale (status and priority labels).
type Narration struct {
	Column string
	Action changelog.Action
	Old    *string
	New    *string

	Params      map[string]string
	LabelParams map[string]string
}

// Engine decides narrations. It is handed its lookup dependency explicitly;
// model-layer code never resolves it from ambient state.
type Engine struct {
	look snapshot.Lookup
}

func NewEngine(look snapshot.Lookup) *Engine {
	if look == nil {
		look = snapshot.NopLookup{}
	}
	return &Engine{look: look}
}

// Narrate maps one detected change to its narration. The switch lists every
// kind explicitly; kinds without bespoke rules share the generic narration.
func (e *Engine) Narrate(ctx context.Context, in Input, ch diff.Change) Narration {
	switch in.Kind {
	case changelog.KindIncident:
		return e.incident(ctx, in, ch)
	case changelog.KindTask, changelog.KindSubtask, changelog.KindEventSubtask, changelog.KindTaskAttachment:
		return e.task(ctx, in, ch)
	case changelog.KindEvent, changelog.KindEventCad, changelog.KindEventNote:
		return e.event(in, ch)
	case changelog.KindCompany, changelog.KindSubcompany:
		return e.company(ch)
	case changelog.KindIncidentType, changelog.KindIncidentTypeTranslation:
		return e.incidentType(in, ch)
	case changelog.KindLegalGroup, changelog.KindLegalChat:
		return e.legalGroup(ctx, in, ch)
	case changelog.KindEventUser:
		return e.eventUser(in, ch)
	case changelog.KindUserCompanyRole:
		return e.userCompanyRole(ch)
	case changelog.KindUser, changelog.KindTaskCategory, changelog.KindIncidentZone,
		changelog.KindIncidentDivision, changelog.KindIncidentMessage,
		changelog.KindDepartment, changelog.KindDivision, changelog.KindVendor,
		changelog.KindVendorPosition, changelog.KindInventory,
		changelog.KindInventoryZone, changelog.KindReservation,
		changelog.KindCamper, changelog.KindMessageGroup:
		return generic(ch)
	}
	return generic(ch)
}

// generic is the fallback narration for any unmapped (kind, column) pair:
// first value seen narrates as set_to, later transitions as updated_from.
func generic(ch diff.Change) Narration {
	action := changelog.ActionUpdatedFrom
	if ch.Old == nil {
		action = changelog.ActionSetTo
	}
	return Narration{
		Column: ch.Column,
		Action: action,
		Old:    ch.Old,
		New:    ch.New,
	}
}

// displayName resolves a related entity's label, degrading to the raw id
// when the lookup cannot answer.
func (e *Engine) displayName(ctx context.Context, kind string, id *string) *string {
	if id == nil {
		return nil
	}
	name, err := e.look.DisplayName(ctx, kind, *id)
	if err != nil || name == "" {
		return id
	}
	return &name
}
