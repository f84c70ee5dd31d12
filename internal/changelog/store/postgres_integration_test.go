//go:build integration

package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/store"
	"chronicle/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.Require().NoError(store.Migrate(context.Background(), s.pg.Pool))
	s.store = store.NewPostgres(s.pg.Pool)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(context.Background()))
}

func (s *PostgresStoreSuite) TestCreateManyAndListRoundTrip() {
	ctx := context.Background()

	batch := []*changelog.Record{
		{
			SubjectID:  "c1",
			Kind:       changelog.KindCompany,
			Column:     "name",
			OldValue:   changelog.StrPtr("Acme"),
			NewValue:   changelog.StrPtr("Acme Corp"),
			EditorID:   "u-1",
			EditorName: "Jane",
			Aux:        map[string]string{"source": "api"},
			Text:       map[string]string{"en": "Name has been updated from 'Acme' to 'Acme Corp'"},
		},
		{
			SubjectID: "c1",
			Kind:      changelog.KindCompany,
			Column:    "url",
			NewValue:  changelog.StrPtr("acme.example"),
			EditorID:  "u-1",
		},
	}
	_, err := s.store.CreateMany(ctx, batch)
	s.Require().NoError(err)

	recs, total, err := s.store.List(ctx, store.Filter{SubjectID: "c1"})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Require().Len(recs, 2)

	// Newest first: the later batch entry comes back on top.
	s.Equal("url", recs[0].Column)
	s.Equal("name", recs[1].Column)
	s.True(recs[0].CreatedAt.After(recs[1].CreatedAt))
	s.Equal(map[string]string{"source": "api"}, recs[1].Aux)
	s.Equal("Name has been updated from 'Acme' to 'Acme Corp'", recs[1].Text["en"])
}

func (s *PostgresStoreSuite) TestDedupKeyConflictIsSilentlyDropped() {
	ctx := context.Background()

	rec := func() *changelog.Record {
		return &changelog.Record{
			SubjectID: "c1",
			Kind:      changelog.KindCompany,
			Column:    "name",
			NewValue:  changelog.StrPtr("Acme"),
			EditorID:  "u-1",
			DedupKey:  "tx-1:c1:name:0",
		}
	}
	_, err := s.store.CreateOne(ctx, rec())
	s.Require().NoError(err)
	_, err = s.store.CreateOne(ctx, rec())
	s.Require().NoError(err)

	_, total, err := s.store.List(ctx, store.Filter{SubjectID: "c1"})
	s.Require().NoError(err)
	s.Equal(1, total)
}

func (s *PostgresStoreSuite) TestListFiltersKindsAndLocation() {
	ctx := context.Background()

	_, err := s.store.CreateMany(ctx, []*changelog.Record{
		{SubjectID: "u1", Kind: changelog.KindUser, Column: "name", NewValue: changelog.StrPtr("Jane"), EditorID: "e"},
		{SubjectID: "u1", Kind: changelog.KindUser, Column: "location", NewValue: changelog.StrPtr("55,12"), EditorID: "e"},
		{SubjectID: "u1", Kind: changelog.KindIncident, Column: "status", NewValue: changelog.StrPtr("1"), EditorID: "e"},
	})
	s.Require().NoError(err)

	recs, total, err := s.store.List(ctx, store.Filter{
		SubjectID: "u1",
		Kinds:     []changelog.Kind{changelog.KindUser},
	})
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Require().Len(recs, 1)
	s.Equal("name", recs[0].Column)
}

func (s *PostgresStoreSuite) TestPagination() {
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := s.store.CreateOne(ctx, &changelog.Record{
			SubjectID: "c1",
			Kind:      changelog.KindCompany,
			Column:    fmt.Sprintf("col%d", i),
			NewValue:  changelog.StrPtr("v"),
			EditorID:  "e",
		})
		s.Require().NoError(err)
	}

	page2, total, err := s.store.List(ctx, store.Filter{SubjectID: "c1", Page: 2, PageSize: 3})
	s.Require().NoError(err)
	s.Equal(7, total)
	s.Require().Len(page2, 3)
	s.Equal("col3", page2[0].Column)
}
