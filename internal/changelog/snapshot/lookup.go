package snapshot

import "context"

// Lookup resolves display context from the primary persistence layer, which
// is outside this subsystem. Implementations must be read-only; failures are
// tolerated by callers (the pipeline degrades to raw values).
type Lookup interface {
	// EventTimezone returns the IANA time zone configured on an event, used
	// to render incident logged timestamps in local time.
	EventTimezone(ctx context.Context, eventID string) (string, error)

	// ZoneLocation returns the "lat,lng" coordinate string of an incident
	// zone, used for the synthetic location column.
	ZoneLocation(ctx context.Context, zoneID string) (string, error)

	// DisplayName returns the human label for a related entity, e.g. a
	// department or company name interpolated into a sentence.
	DisplayName(ctx context.Context, kind string, id string) (string, error)
}

// NopLookup satisfies Lookup with empty answers. Useful for tests and for
// write paths that carry all context in the snapshot itself.
type NopLookup struct{}

func (NopLookup) EventTimezone(context.Context, string) (string, error) { return "", nil }
func (NopLookup) ZoneLocation(context.Context, string) (string, error)  { return "", nil }
func (NopLookup) DisplayName(context.Context, string, string) (string, error) {
	return "", nil
}
