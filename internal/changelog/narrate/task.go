package narrate

import (
	"context"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/diff"
)

var taskPriorityKeys = map[string]string{
	"0": "task.priority.low",
	"1": "task.priority.medium",
	"2": "task.priority.high",
}

func (e *Engine) task(ctx context.Context, in Input, ch diff.Change) Narration {
	switch ch.Column {
	case "department":
		return e.department(ctx, ch)
	case "priority":
		return labeledTransition(ch, taskPriorityKeys)
	case "subtask":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionSubtask,
			New:    ch.New,
			Params: map[string]string{"subtask": changelog.StrOrEmpty(ch.New)},
		}
	case "image":
		action := changelog.ActionImage
		if ch.New == nil {
			action = changelog.ActionRemoved
		}
		return Narration{
			Column: ch.Column,
			Action: action,
			Old:    ch.Old,
			New:    ch.New,
			Params: map[string]string{"file": in.Aux["file_name"]},
		}
	case "category":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionChangeTo,
			Old:    e.displayName(ctx, "task_category", ch.Old),
			New:    e.displayName(ctx, "task_category", ch.New),
		}
	case "completed":
		return onOff(ch)
	}
	return generic(ch)
}

// department is a three-way branch: the same column transition narrates as
// assigned, unassigned, or reassigned depending on which side is NULL.
func (e *Engine) department(ctx context.Context, ch diff.Change) Narration {
	oldName := e.displayName(ctx, "department", ch.Old)
	newName := e.displayName(ctx, "department", ch.New)

	n := Narration{Column: ch.Column, Old: oldName, New: newName}
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

// onOff narrates boolean flips as enabled/disabled.
func onOff(ch diff.Change) Narration {
	action := changelog.ActionDisabled
	if ch.New != nil && *ch.New == "true" {
		action = changelog.ActionEnabled
	}
	return Narration{
		Column: ch.Column,
		Action: action,
		Old:    ch.Old,
		New:    ch.New,
	}
}
