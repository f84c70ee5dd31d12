package narrate

import (
	"chronicle/internal/changelog"
	"chronicle/internal/changelog/diff"
)

// Event version and CAD uploads carry their parameters as a structured
// payload in the input aux bag, attached at detection time. Earlier designs
// re-derived them by regex-matching the rendered English sentence; that path
// is gone on purpose.
func (e *Engine) event(in Input, ch diff.Change) Narration {
	switch ch.Column {
	case "current_version":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionNewVersion,
			Old:    ch.Old,
			New:    ch.New,
			Params: map[string]string{
				"version": changelog.StrOrEmpty(ch.New),
				"subject": in.Aux["subject_label"],
			},
		}
	case "event_cad":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionUploadedCad,
			Old:    ch.Old,
			New:    ch.New,
			Params: map[string]string{
				"file":    in.Aux["file_name"],
				"version": in.Aux["version"],
			},
		}
	case "status":
		return Narration{
			Column: ch.Column,
			Action: changelog.ActionChangeTo,
			Old:    ch.Old,
			New:    ch.New,
		}
	}
	return generic(ch)
}

func (e *Engine) eventUser(in Input, ch diff.Change) Narration {
	switch ch.Column {
	case "event":
		action := changelog.ActionAddedTo
		if ch.New == nil {
			action = changelog.ActionRemovedFrom
		}
		return Narration{
			Column: ch.Column,
			Action: action,
			Old:    ch.Old,
			New:    ch.New,
			Params: map[string]string{"event": changelog.StrOrEmpty(ch.New)},
		}
	}
	return generic(ch)
}
