package publish

import "chronicle/internal/changelog"

// route is a static channel mapping for one entity kind. Scoped routes
// append the entity id so delivery stays per-aggregate; the rest are global.
// Kinds with an empty name never broadcast, which is valid and deliberate.
type route struct {
	name   string
	scoped bool
}

var routes = [changelog.KindCount]route{
	changelog.KindCompany:      {name: "company-changelog-channel"},
	changelog.KindSubcompany:   {name: "company-changelog-channel"},
	changelog.KindEvent:        {name: "events-channel", scoped: true},
	changelog.KindEventCad:     {name: "events-channel", scoped: true},
	changelog.KindEventUser:    {name: "user-status-channel", scoped: true},
	changelog.KindTask:         {name: "task-changelog-channel"},
	changelog.KindSubtask:      {name: "task-changelog-channel"},
	changelog.KindIncident:     {name: "incident-changelog-channel"},
	changelog.KindIncidentType: {name: "incident-type-channel"},
	changelog.KindUser:         {name: "user-changelog-channel"},
	changelog.KindLegalGroup:   {name: "legal-group-channel", scoped: true},
}

// ChannelFor resolves the broadcast channel for one record. The second
// return is false for kinds without a routing entry; callers treat that as
// a silent no-op, never a configuration error.
func ChannelFor(kind changelog.Kind, subjectID string) (string, bool) {
	if !kind.Valid() {
		return "", false
	}
	r := routes[kind]
	if r.name == "" {
		return "", false
	}
	if r.scoped {
		return r.name + "-" + subjectID, true
	}
	return r.name, true
}
