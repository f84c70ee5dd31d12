package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/store"
)

func record(subjectID string, kind changelog.Kind, column string) *changelog.Record {
	return &changelog.Record{
		SubjectID: subjectID,
		Kind:      kind,
		Column:    column,
		NewValue:  changelog.StrPtr("v"),
		EditorID:  "ed1",
	}
}

func TestCreateManyStampsStrictlyIncreasingTimestamps(t *testing.T) {
	s := store.NewInMemory()

	batch := []*changelog.Record{
		record("c1", changelog.KindCompany, "name"),
		record("c1", changelog.KindCompany, "url"),
		record("c1", changelog.KindCompany, "country"),
	}
	out, err := s.CreateMany(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, out, 3)

	for i := 1; i < len(out); i++ {
		assert.True(t, out[i].CreatedAt.After(out[i-1].CreatedAt),
			"record %d must be stamped after record %d", i, i-1)
		assert.Equal(t, i, out[i].Seq)
	}
}

func TestCreateManyIsIdempotentOnDedupKey(t *testing.T) {
	s := store.NewInMemory()
	ctx := context.Background()

	batch := func() []*changelog.Record {
		recs := []*changelog.Record{
			record("c1", changelog.KindCompany, "name"),
			record("c1", changelog.KindCompany, "url"),
		}
		for i, rec := range recs {
			rec.DedupKey = fmt.Sprintf("tx-1:c1:%s:%d", rec.Column, i)
		}
		return recs
	}

	_, err := s.CreateMany(ctx, batch())
	require.NoError(t, err)
	_, err = s.CreateMany(ctx, batch())
	require.NoError(t, err)

	_, total, err := s.List(ctx, store.Filter{SubjectID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestListNewestFirstWithPagination(t *testing.T) {
	s := store.NewInMemory()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.CreateOne(ctx, record("c1", changelog.KindCompany, fmt.Sprintf("col%d", i)))
		require.NoError(t, err)
	}

	page1, total, err := s.List(ctx, store.Filter{SubjectID: "c1", Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "col4", page1[0].Column)
	assert.Equal(t, "col3", page1[1].Column)

	page3, total, err := s.List(ctx, store.Filter{SubjectID: "c1", Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page3, 1)
	assert.Equal(t, "col0", page3[0].Column)

	beyond, total, err := s.List(ctx, store.Filter{SubjectID: "c1", Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, beyond)
}

func TestListFiltersByKind(t *testing.T) {
	s := store.NewInMemory()
	ctx := context.Background()

	_, err := s.CreateMany(ctx, []*changelog.Record{
		record("s1", changelog.KindTask, "status"),
		record("s1", changelog.KindIncident, "status"),
		record("s1", changelog.KindCompany, "name"),
	})
	require.NoError(t, err)

	got, total, err := s.List(ctx, store.Filter{
		SubjectID: "s1",
		Kinds:     []changelog.Kind{changelog.KindTask, changelog.KindIncident},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, rec := range got {
		assert.Contains(t, []changelog.Kind{changelog.KindTask, changelog.KindIncident}, rec.Kind)
	}
}

func TestListHidesLocationWhenUserKindRequested(t *testing.T) {
	s := store.NewInMemory()
	ctx := context.Background()

	_, err := s.CreateMany(ctx, []*changelog.Record{
		record("u1", changelog.KindUser, "name"),
		record("u1", changelog.KindUser, "location"),
		record("u1", changelog.KindIncident, "location"),
	})
	require.NoError(t, err)

	withUser, total, err := s.List(ctx, store.Filter{
		SubjectID: "u1",
		Kinds:     []changelog.Kind{changelog.KindUser, changelog.KindIncident},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	for _, rec := range withUser {
		assert.NotEqual(t, "location", rec.Column)
	}

	// Without the user kind in the filter, location rows stay visible.
	incidentOnly, total, err := s.List(ctx, store.Filter{
		SubjectID: "u1",
		Kinds:     []changelog.Kind{changelog.KindIncident},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, incidentOnly, 1)
	assert.Equal(t, "location", incidentOnly[0].Column)
}

func TestListReturnsCopies(t *testing.T) {
	s := store.NewInMemory()
	ctx := context.Background()

	rec := record("c1", changelog.KindCompany, "name")
	rec.Aux = map[string]string{"k": "v"}
	_, err := s.CreateOne(ctx, rec)
	require.NoError(t, err)

	got, _, err := s.List(ctx, store.Filter{SubjectID: "c1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	got[0].Aux["k"] = "mutated"
	got[0].Column = "mutated"

	again, _, err := s.List(ctx, store.Filter{SubjectID: "c1"})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "name", again[0].Column)
	assert.Equal(t, "v", again[0].Aux["k"])
}
