package narrate

import (
	"context"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/diff"
)

func (e *Engine) company(ch diff.Change) Narration {
	switch ch.Column {
	case "active":
		return onOff(ch)
	}
	return generic(ch)
}

func (e *Engine) userCompanyRole(ch diff.Change) Narration {
	switch ch.Column {
	case "role":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionChangeTo,
			Old:    ch.Old,
			New:    ch.New,
		}
	case "blocked":
		// Blocking a user disables their access, so the flag narrates
		// inverted relative to its raw value.
		action := changelog.ActionEnabled
		if ch.New != nil && *ch.New == "true" {
			action = changelog.ActionDisabled
		}
		return Narration{
			Column: ch.Column,
			Action: action,
			Old:    ch.Old,
			New:    ch.New,
		}
	}
	return generic(ch)
}

var incidentTypePriorityKeys = incidentPriorityKeys

func (e *Engine) incidentType(in Input, ch diff.Change) Narration {
	switch ch.Column {
	case "default_priority":
		return labeledTransition(ch, incidentTypePriorityKeys)
	case "translation":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionChangeTo,
			Old:    ch.Old,
			New:    ch.New,
			Params: map[string]string{"language": in.Aux["language"]},
		}
	}
	return generic(ch)
}

func (e *Engine) legalGroup(ctx context.Context, in Input, ch diff.Change) Narration {
	switch ch.Column {
	case "status":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionChangeTo,
			Old:    ch.Old,
			New:    ch.New,
		}
	case "assignee":
		n := Narration{Column: ch.Column, Old: ch.Old, New: ch.New}
		switch {
		case ch.Old == nil && ch.New != nil:
			n.Action = changelog.ActionAssigned
		case ch.Old != nil && ch.New == nil:
			n.Action = changelog.ActionUnassigned
		default:
			n.Action = changelog.ActionReassigned
		}
		return n
	}
	return generic(ch)
}
