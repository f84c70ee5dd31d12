package narrate

import (
	"context"
	"time"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/diff"
)

// Incident status and priority are stored as numeric codes; sentences use
// the localized labels, so narration emits catalog keys and the renderer
// resolves them per locale.
var incidentStatusKeys = map[string]string{
	"0": "incident.status.open",
	"1": "incident.status.dispatched",
	"2": "incident.status.responding",
	"3": "incident.status.arrived",
	"4": "incident.status.resolved",
}

var incidentPriorityKeys = map[string]string{
	"0": "incident.priority.low",
	"1": "incident.priority.medium",
	"2": "incident.priority.high",
	"3": "incident.priority.critical",
}

func (e *Engine) incident(ctx context.Context, in Input, ch diff.Change) Narration {
	switch ch.Column {
	case "status":
		return labeledTransition(ch, incidentStatusKeys)
	case "priority":
		return labeledTransition(ch, incidentPriorityKeys)
	case "logged_date_time":
		return e.loggedDateTime(ctx, in, ch)
	case "incident_zone":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionChangeTo,
			Old:    e.displayName(ctx, "incident_zone", ch.Old),
			New:    e.displayName(ctx, "incident_zone", ch.New),
		}
	case "location":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionLocation,
			Old:    ch.Old,
			New:    ch.New,
		}
	case "incident_division":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionChangeTo,
			Old:    ch.Old,
			New:    ch.New,
		}
	case "dispatched":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionDispatched,
			New:    ch.New,
			Params: map[string]string{"staff": in.Aux["staff_name"]},
		}
	case "resolved_status":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionResolved,
			Old:    ch.Old,
			New:    ch.New,
		}
	}
	return generic(ch)
}

// loggedDateTime renders the incident's logged timestamp in the owning
// event's time zone. Lookup or parse failures keep the raw values.
func (e *Engine) loggedDateTime(ctx context.Context, in Input, ch diff.Change) Narration {
	n := generic(ch)
	tz, err := e.look.EventTimezone(ctx, in.EventID)
	if err != nil || tz == "" {
		return n
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return n
	}
	n.Old = localize(ch.Old, loc)
	n.New = localize(ch.New, loc)
	return n
}

func localize(v *string, loc *time.Location) *string {
	if v == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return v
	}
	s := t.In(loc).Format("01/02/2006 03:04 PM")
	return &s
}

// labeledTransition narrates a code change through a code → catalog-key
// table. Codes without a label fall back to their raw value.
func labeledTransition(ch diff.Change, keys map[string]string) Narration {
	n := generic(ch)
	n.LabelParams = map[string]string{}
	if ch.Old != nil {
		if key, ok := keys[*ch.Old]; ok {
			n.LabelParams["old"] = key
		}
	}
	if ch.New != nil {
		if key, ok := keys[*ch.New]; ok {
			n.LabelParams["new"] = key
		}
	}
	return n
}
