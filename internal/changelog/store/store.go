// Package store persists change-log records. Postgres is the production
// implementation; the in-memory store backs unit tests and single-node dev.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"chronicle/internal/changelog"
)

var recordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "chronicle_changelog_records_created_total",
	Help: "Change-log records persisted, by entity kind",
}, []string{"kind"})

// batchStep keeps stored timestamps strictly increasing inside one commit
// batch even when the clock resolution is coarser than the batch size. Seq
// is the authoritative order; the offset only stabilizes timestamp-sorted
// display.
const batchStep = 10 * time.Millisecond

// Filter selects records for the query API.
type Filter struct {
	SubjectID string
	Kinds     []changelog.Kind
	Page      int
	PageSize  int
}

// Store is the change-log persistence boundary. CreateMany guarantees that
// returned records carry strictly increasing CreatedAt in input order and
// that re-inserting the same dedup keys is a no-op.
type Store interface {
	CreateOne(ctx context.Context, rec *changelog.Record) (*changelog.Record, error)
	CreateMany(ctx context.Context, recs []*changelog.Record) ([]*changelog.Record, error)
	List(ctx context.Context, f Filter) ([]*changelog.Record, int, error)
}

// stamp assigns ids, batch sequence numbers, ordered timestamps, and dedup
// keys to a batch before insert.
func stamp(recs []*changelog.Record, now time.Time) {
	for i, rec := range recs {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		rec.Seq = i
		rec.CreatedAt = now.Add(time.Duration(i) * batchStep)
		if rec.EditorKind == "" {
			rec.EditorKind = changelog.EditorKindUser
		}
		if rec.DedupKey == "" {
			rec.DedupKey = fmt.Sprintf("%s:%s:%s:%d", rec.ID, rec.SubjectID, rec.Column, i)
		}
	}
}

// excludesLocation reports whether the fixed query rule applies: records
// whose column is "location" are hidden whenever the user kind is among the
// requested subject kinds.
func (f Filter) excludesLocation() bool {
	for _, k := range f.Kinds {
		if k == changelog.KindUser {
			return true
		}
	}
	return false
}

func (f Filter) normalized() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		f.PageSize = 25
	}
	return f
}
