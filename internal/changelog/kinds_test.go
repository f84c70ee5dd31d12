package changelog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronicle/internal/changelog"
)

func TestKindNamesRoundTrip(t *testing.T) {
	for _, kind := range changelog.AllKinds() {
		name := kind.String()
		require.NotEmpty(t, name, "kind %d has no wire name", int(kind))

		parsed, err := changelog.ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
}

func TestKindNamesAreUnique(t *testing.T) {
	seen := make(map[string]changelog.Kind)
	for _, kind := range changelog.AllKinds() {
		name := kind.String()
		if prev, dup := seen[name]; dup {
			t.Fatalf("kinds %v and %v share the wire name %q", prev, kind, name)
		}
		seen[name] = kind
	}
}

func TestParseKindRejectsUnknownNames(t *testing.T) {
	_, err := changelog.ParseKind("martian")
	assert.Error(t, err)

	_, err = changelog.ParseKind("")
	assert.Error(t, err)
}

func TestKindValid(t *testing.T) {
	assert.True(t, changelog.KindCompany.Valid())
	assert.True(t, changelog.KindMessageGroup.Valid())
	assert.False(t, changelog.Kind(-1).Valid())
	assert.False(t, changelog.Kind(changelog.KindCount).Valid())
}

func TestInvalidKindStringIsDiagnostic(t *testing.T) {
	assert.Equal(t, "kind(-1)", changelog.Kind(-1).String())
}
