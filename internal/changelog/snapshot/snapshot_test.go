package snapshot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronicle/internal/changelog/snapshot"
)

func TestCoerce(t *testing.T) {
	str := "hello"
	when := time.Date(2026, 7, 4, 16, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want *string
	}{
		{"nil is NULL", nil, nil},
		{"string", "hello", &str},
		{"string pointer passes through", &str, &str},
		{"bool true", true, ptr("true")},
		{"bool false", false, ptr("false")},
		{"time formats as RFC3339 UTC", when, ptr("2026-07-04T16:30:00Z")},
		{"nil time pointer is NULL", (*time.Time)(nil), nil},
		{"float drops trailing zeros", 12.50, ptr("12.5")},
		{"int via default path", 42, ptr("42")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := snapshot.Coerce(tc.in)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func TestCoerceTimeNormalizesZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	local := time.Date(2026, 7, 4, 12, 30, 0, 0, loc)

	got := snapshot.Coerce(local)
	require.NotNil(t, got)
	assert.Equal(t, "2026-07-04T16:30:00Z", *got)
}

func TestSetJoinedSortsNames(t *testing.T) {
	s := snapshot.New().SetJoined("division_names", []string{"South", "East", "North"})
	v, ok := s.Get("division_names")
	require.True(t, ok)
	assert.Equal(t, "East, North, South", v)

	s.SetJoined("division_names", nil)
	_, ok = s.Get("division_names")
	assert.False(t, ok)
}

func TestGetDistinguishesMissingFromNull(t *testing.T) {
	s := snapshot.New().Set("url", nil)

	_, ok := s.Get("url")
	assert.False(t, ok)
	_, ok = s.Get("never_set")
	assert.False(t, ok)

	assert.Nil(t, s.Value("url"))
	assert.Nil(t, s.Value("never_set"))
}

func TestEqual(t *testing.T) {
	assert.True(t, snapshot.Equal(nil, nil))
	assert.True(t, snapshot.Equal(ptr("a"), ptr("a")))
	assert.False(t, snapshot.Equal(ptr("a"), ptr("b")))
	assert.False(t, snapshot.Equal(nil, ptr("a")))
	assert.False(t, snapshot.Equal(ptr("a"), nil))
}

func ptr(s string) *string { return &s }
