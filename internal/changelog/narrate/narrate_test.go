package narrate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/diff"
	"chronicle/internal/changelog/narrate"
	"chronicle/internal/changelog/snapshot"
)

type fakeLookup struct {
	snapshot.NopLookup
	names     map[string]string
	timezones map[string]string
}

func (f *fakeLookup) DisplayName(_ context.Context, _ string, id string) (string, error) {
	return f.names[id], nil
}

func (f *fakeLookup) EventTimezone(_ context.Context, eventID string) (string, error) {
	return f.timezones[eventID], nil
}

func change(column string, old, new *string) diff.Change {
	return diff.Change{Column: column, Old: old, New: new}
}

func TestGenericFallback(t *testing.T) {
	engine := narrate.NewEngine(nil)
	ctx := context.Background()

	t.Run("first value narrates as set_to", func(t *testing.T) {
		n := engine.Narrate(ctx,
			narrate.Input{Kind: changelog.KindCompany},
			change("name", nil, changelog.StrPtr("Acme")),
		)
		assert.Equal(t, changelog.ActionSetTo, n.Action)
	})

	t.Run("transition narrates as updated_from", func(t *testing.T) {
		n := engine.Narrate(ctx,
			narrate.Input{Kind: changelog.KindCompany},
			change("name", changelog.StrPtr("Acme"), changelog.StrPtr("Acme Corp")),
		)
		assert.Equal(t, changelog.ActionUpdatedFrom, n.Action)
		assert.Equal(t, "Acme", *n.Old)
		assert.Equal(t, "Acme Corp", *n.New)
	})

	t.Run("unmapped column on a bespoke kind still falls back", func(t *testing.T) {
		n := engine.Narrate(ctx,
			narrate.Input{Kind: changelog.KindIncident},
			change("reporter", changelog.StrPtr("a"), changelog.StrPtr("b")),
		)
		assert.Equal(t, changelog.ActionUpdatedFrom, n.Action)
	})
}

func TestEveryKindNarratesWithoutPanicking(t *testing.T) {
	engine := narrate.NewEngine(nil)
	ctx := context.Background()
	for _, kind := range changelog.AllKinds() {
		n := engine.Narrate(ctx,
			narrate.Input{Kind: kind},
			change("status", changelog.StrPtr("0"), changelog.StrPtr("1")),
		)
		assert.NotEmpty(t, n.Action, "kind %s", kind)
	}
}

func TestIncidentStatusUsesLabelKeys(t *testing.T) {
	engine := narrate.NewEngine(nil)

	n := engine.Narrate(context.Background(),
		narrate.Input{Kind: changelog.KindIncident},
		change("status", changelog.StrPtr("0"), changelog.StrPtr("1")),
	)
	assert.Equal(t, changelog.ActionUpdatedFrom, n.Action)
	assert.Equal(t, "incident.status.open", n.LabelParams["old"])
	assert.Equal(t, "incident.status.dispatched", n.LabelParams["new"])
}

func TestIncidentUnknownStatusCodeKeepsRawValue(t *testing.T) {
	engine := narrate.NewEngine(nil)

	n := engine.Narrate(context.Background(),
		narrate.Input{Kind: changelog.KindIncident},
		change("status", changelog.StrPtr("0"), changelog.StrPtr("99")),
	)
	_, hasNew := n.LabelParams["new"]
	assert.False(t, hasNew)
	assert.Equal(t, "99", *n.New)
}

func TestIncidentLoggedDateTimeRendersInEventTimezone(t *testing.T) {
	look := &fakeLookup{timezones: map[string]string{"ev1": "America/New_York"}}
	engine := narrate.NewEngine(look)

	n := engine.Narrate(context.Background(),
		narrate.Input{Kind: changelog.KindIncident, EventID: "ev1"},
		change("logged_date_time", nil, changelog.StrPtr("2026-07-04T16:30:00Z")),
	)
	require.NotNil(t, n.New)
	// 16:30 UTC is 12:30 in New York during DST.
	assert.Equal(t, "07/04/2026 12:30 PM", *n.New)
}

func TestTaskDepartmentThreeWayBranch(t *testing.T) {
	look := &fakeLookup{names: map[string]string{"d1": "Medical", "d2": "Security"}}
	engine := narrate.NewEngine(look)
	ctx := context.Background()
	in := narrate.Input{Kind: changelog.KindTask}

	t.Run("newly assigned", func(t *testing.T) {
		n := engine.Narrate(ctx, in, change("department", nil, changelog.StrPtr("d1")))
		assert.Equal(t, changelog.ActionAssigned, n.Action)
		assert.Equal(t, "Medical", *n.New)
	})

	t.Run("unassigned", func(t *testing.T) {
		n := engine.Narrate(ctx, in, change("department", changelog.StrPtr("d1"), nil))
		assert.Equal(t, changelog.ActionUnassigned, n.Action)
		assert.Equal(t, "Medical", *n.Old)
	})

	t.Run("reassigned", func(t *testing.T) {
		n := engine.Narrate(ctx, in, change("department", changelog.StrPtr("d1"), changelog.StrPtr("d2")))
		assert.Equal(t, changelog.ActionReassigned, n.Action)
		assert.Equal(t, "Medical", *n.Old)
		assert.Equal(t, "Security", *n.New)
	})
}

func TestEventVersionCarriesStructuredParams(t *testing.T) {
	engine := narrate.NewEngine(nil)

	n := engine.Narrate(context.Background(),
		narrate.Input{
			Kind: changelog.KindEvent,
			Aux:  map[string]string{"subject_label": "Summer Fest"},
		},
		change("current_version", changelog.StrPtr("3"), changelog.StrPtr("4")),
	)
	assert.Equal(t, changelog.ActionNewVersion, n.Action)
	assert.Equal(t, "4", n.Params["version"])
	assert.Equal(t, "Summer Fest", n.Params["subject"])
}

func TestEventCadParamsComeFromAux(t *testing.T) {
	engine := narrate.NewEngine(nil)

	n := engine.Narrate(context.Background(),
		narrate.Input{
			Kind: changelog.KindEvent,
			Aux:  map[string]string{"file_name": "site-plan.pdf", "version": "2"},
		},
		change("event_cad", nil, changelog.StrPtr("cad-42")),
	)
	assert.Equal(t, changelog.ActionUploadedCad, n.Action)
	assert.Equal(t, "site-plan.pdf", n.Params["file"])
	assert.Equal(t, "2", n.Params["version"])
}

func TestEventUserAddedToEvent(t *testing.T) {
	engine := narrate.NewEngine(nil)

	n := engine.Narrate(context.Background(),
		narrate.Input{Kind: changelog.KindEventUser},
		change("event", nil, changelog.StrPtr("Summer Fest")),
	)
	assert.Equal(t, changelog.ActionAddedTo, n.Action)
	assert.Equal(t, "Summer Fest", n.Params["event"])
}

func TestCompanyActiveFlag(t *testing.T) {
	engine := narrate.NewEngine(nil)
	ctx := context.Background()

	n := engine.Narrate(ctx,
		narrate.Input{Kind: changelog.KindCompany},
		change("active", changelog.StrPtr("true"), changelog.StrPtr("false")),
	)
	assert.Equal(t, changelog.ActionDisabled, n.Action)

	n = engine.Narrate(ctx,
		narrate.Input{Kind: changelog.KindCompany},
		change("active", changelog.StrPtr("false"), changelog.StrPtr("true")),
	)
	assert.Equal(t, changelog.ActionEnabled, n.Action)
}

func TestLegalGroupAssignee(t *testing.T) {
	engine := narrate.NewEngine(nil)

	n := engine.Narrate(context.Background(),
		narrate.Input{Kind: changelog.KindLegalGroup},
		change("assignee", changelog.StrPtr("Jane"), changelog.StrPtr("Omar")),
	)
	assert.Equal(t, changelog.ActionReassigned, n.Action)
}
