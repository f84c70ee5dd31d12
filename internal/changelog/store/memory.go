package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"chronicle/internal/changelog"
)

// InMemoryStore keeps records in process memory. Safe for concurrent use.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []*changelog.Record
	byDedup map[string]*changelog.Record
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{byDedup: make(map[string]*changelog.Record)}
}

func (s *InMemoryStore) CreateOne(ctx context.Context, rec *changelog.Record) (*changelog.Record, error) {
	out, err := s.CreateMany(ctx, []*changelog.Record{rec})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func (s *InMemoryStore) CreateMany(_ context.Context, recs []*changelog.Record) ([]*changelog.Record, error) {
	stamp(recs, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		if _, dup := s.byDedup[rec.DedupKey]; dup {
			continue
		}
		stored := cloneRecord(rec)
		s.records = append(s.records, stored)
		s.byDedup[stored.DedupKey] = stored
		recordsCreated.WithLabelValues(rec.Kind.String()).Inc()
	}
	return recs, nil
}

func (s *InMemoryStore) List(_ context.Context, f Filter) ([]*changelog.Record, int, error) {
	f = f.normalized()

	s.mu.RLock()
	var matched []*changelog.Record
	for _, rec := range s.records {
		if !matches(rec, f) {
			continue
		}
		matched = append(matched, cloneRecord(rec))
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].Seq > matched[j].Seq
	})

	total := len(matched)
	start := (f.Page - 1) * f.PageSize
	if start >= total {
		return nil, total, nil
	}
	end := start + f.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matches(rec *changelog.Record, f Filter) bool {
	if f.SubjectID != "" && rec.SubjectID != f.SubjectID {
		return false
	}
	if len(f.Kinds) > 0 {
		found := false
		for _, k := range f.Kinds {
			if rec.Kind == k {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.excludesLocation() && rec.Column == "location" {
		return false
	}
	return true
}

func cloneRecord(rec *changelog.Record) *changelog.Record {
	out := *rec
	if rec.Aux != nil {
		out.Aux = make(map[string]string, len(rec.Aux))
		for k, v := range rec.Aux {
			out.Aux[k] = v
		}
	}
	if rec.Text != nil {
		out.Text = make(map[string]string, len(rec.Text))
		for k, v := range rec.Text {
			out.Text[k] = v
		}
	}
	return &out
}
