package changelog

// Action selects the sentence template used to narrate a change. The
// vocabulary is small and closed; per-kind rules pick from it and anything
// unmapped falls back to ActionSetTo/ActionUpdatedFrom.
type Action string

const (
	ActionCreated     Action = "created"
	ActionSetTo       Action = "set_to"
	ActionUpdatedFrom Action = "updated_from"
	ActionChangeTo    Action = "change_to"
	ActionAssigned    Action = "assigned"
	ActionUnassigned  Action = "unassigned"
	ActionReassigned  Action = "reassigned"
	ActionEnabled     Action = "enabled"
	ActionDisabled    Action = "disabled"
	ActionRemoved     Action = "removed"
	ActionDispatched  Action = "dispatched"
	ActionResolved    Action = "resolved"
	ActionAddedTo     Action = "added_to"
	ActionRemovedFrom Action = "removed_from"
	ActionSubtask     Action = "subtask"
	ActionImage       Action = "image"
	ActionNewVersion  Action = "new_version"
	ActionUploadedCad Action = "uploaded_cad"
	ActionLocation    Action = "location"
)
