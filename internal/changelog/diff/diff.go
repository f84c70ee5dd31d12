// Package diff detects which semantically-tracked columns changed between an
// entity's prior snapshot and its current state. Emission order follows the
// per-kind mapping table, not detection order, because it becomes narration
// order downstream.
package diff

import (
	"context"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/snapshot"
)

// Change is one detected column change, ready for narration.
type Change struct {
	Column string
	Old    *string
	New    *string
}

type mapping struct {
	field  string
	column string
}

// tables maps raw entity fields to the semantic columns eligible for audit
// narration, per kind, in declared order. Fields absent from a kind's table
// are silently ignored even when changed. Kinds without a table never emit.
var tables = [changelog.KindCount][]mapping{
	changelog.KindCompany: {
		{"name", "name"},
		{"url", "url"},
		{"contact_name", "contact_name"},
		{"contact_email", "contact_email"},
		{"contact_phone", "contact_phone"},
		{"country", "country"},
		{"timezone", "timezone"},
		{"active", "active"},
	},
	changelog.KindSubcompany: {
		{"name", "name"},
		{"parent_company_name", "parent_company"},
	},
	changelog.KindEvent: {
		{"name", "name"},
		{"venue_name", "venue_name"},
		{"start_date", "start_date"},
		{"end_date", "end_date"},
		{"timezone", "timezone"},
		{"status", "status"},
		{"current_version", "current_version"},
		{"event_cad", "event_cad"},
		{"expected_attendance", "expected_attendance"},
	},
	changelog.KindTask: {
		{"name", "name"},
		{"description", "description"},
		{"deadline", "deadline"},
		{"status", "status"},
		{"priority", "priority"},
		{"department_id", "department"},
		{"task_category_id", "category"},
		{"task_list_name", "list"},
		{"image_url", "image"},
		{"subtask_name", "subtask"},
	},
	changelog.KindSubtask: {
		{"name", "name"},
		{"deadline", "deadline"},
		{"completed", "completed"},
	},
	changelog.KindIncident: {
		{"status", "status"},
		{"priority", "priority"},
		{"description", "description"},
		{"logged_date_time", "logged_date_time"},
		{"incident_type_name", "incident_type"},
		{"incident_zone_id", "incident_zone"},
		{"division_names", "incident_division"},
		{"department_name", "department"},
		{"reporter_name", "reporter"},
		{"resolved_status", "resolved_status"},
	},
	changelog.KindIncidentType: {
		{"name", "name"},
		{"default_priority", "default_priority"},
		{"color", "color"},
	},
	changelog.KindIncidentTypeTranslation: {
		{"translation", "translation"},
		{"language", "language"},
	},
	changelog.KindUser: {
		{"name", "name"},
		{"email", "email"},
		{"cell", "cell"},
		{"status", "status"},
		{"role", "role"},
		{"language", "language"},
	},
	changelog.KindUserCompanyRole: {
		{"role", "role"},
		{"blocked", "blocked"},
	},
	changelog.KindEventUser: {
		{"event_name", "event"},
		{"status", "status"},
	},
	changelog.KindLegalGroup: {
		{"status", "status"},
		{"note", "note"},
		{"assignee_name", "assignee"},
	},
	changelog.KindDepartment: {
		{"name", "name"},
	},
	changelog.KindDivision: {
		{"name", "name"},
	},
	changelog.KindVendor: {
		{"name", "name"},
		{"type", "type"},
		{"contact_email", "contact_email"},
	},
	changelog.KindInventory: {
		{"name", "name"},
		{"unique_code", "unique_code"},
		{"inventory_zone_name", "inventory_zone"},
	},
	changelog.KindReservation: {
		{"status", "status"},
		{"camper_name", "camper"},
	},
	// Remaining kinds carry no tracked columns; their writes never narrate.
}

// compositeRule derives an extra synthetic column from one detected change.
// The incident zone rule is the load-bearing case: a foreign-key change also
// emits a location column whose values are the zones' coordinates.
type compositeRule struct {
	trigger string
	derive  func(ctx context.Context, look snapshot.Lookup, prior, current snapshot.Snapshot) (Change, bool)
}

var composites = [changelog.KindCount][]compositeRule{
	changelog.KindIncident: {
		{
			trigger: "incident_zone",
			derive: func(ctx context.Context, look snapshot.Lookup, prior, current snapshot.Snapshot) (Change, bool) {
				old := zoneLocation(ctx, look, prior.Value("incident_zone_id"))
				next := zoneLocation(ctx, look, current.Value("incident_zone_id"))
				if snapshot.Equal(old, next) {
					return Change{}, false
				}
				return Change{Column: "location", Old: old, New: next}, true
			},
		},
	},
}

func zoneLocation(ctx context.Context, look snapshot.Lookup, zoneID *string) *string {
	if zoneID == nil || look == nil {
		return nil
	}
	loc, err := look.ZoneLocation(ctx, *zoneID)
	if err != nil || loc == "" {
		return nil
	}
	return &loc
}

// Detect returns the semantic columns whose values differ between prior and
// current, in mapping-table order, with composite columns appended right
// after the change that triggered them. A nil prior snapshot means the
// entity was just created; every non-NULL current field then counts as a
// change from NULL.
func Detect(ctx context.Context, look snapshot.Lookup, kind changelog.Kind, prior, current snapshot.Snapshot) []Change {
	if !kind.Valid() || current == nil {
		return nil
	}
	if prior == nil {
		prior = snapshot.New()
	}

	var changes []Change
	for _, m := range tables[kind] {
		old := prior.Value(m.field)
		next := current.Value(m.field)
		if snapshot.Equal(old, next) {
			continue
		}
		changes = append(changes, Change{Column: m.column, Old: old, New: next})
		for _, rule := range composites[kind] {
			if rule.trigger != m.column {
				continue
			}
			if derived, ok := rule.derive(ctx, look, prior, current); ok {
				changes = append(changes, derived)
			}
		}
	}
	return changes
}

// Tracked reports whether kind audits any columns at all.
func Tracked(kind changelog.Kind) bool {
	return kind.Valid() && len(tables[kind]) > 0
}
