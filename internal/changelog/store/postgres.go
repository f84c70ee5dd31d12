package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chronicle/internal/changelog"
)

// PostgresStore persists records in the change_logs table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the change_logs schema. Idempotent; run at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS change_logs (
			id           UUID PRIMARY KEY,
			subject_id   TEXT NOT NULL,
			subject_kind TEXT NOT NULL,
			col          TEXT NOT NULL,
			old_value    TEXT,
			new_value    TEXT,
			editor_id    TEXT NOT NULL,
			editor_name  TEXT NOT NULL,
			editor_kind  TEXT NOT NULL,
			seq          INT NOT NULL,
			dedup_key    TEXT NOT NULL UNIQUE,
			aux          JSONB,
			rendered     JSONB,
			created_at   TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS change_logs_subject_idx
			ON change_logs (subject_id, subject_kind, created_at DESC);
	`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("migrate change_logs: %w", err)
	}
	return nil
}

const insertSQL = `
	INSERT INTO change_logs (
		id, subject_id, subject_kind, col, old_value, new_value,
		editor_id, editor_name, editor_kind, seq, dedup_key, aux, rendered, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (dedup_key) DO NOTHING
`

func (s *PostgresStore) CreateOne(ctx context.Context, rec *changelog.Record) (*changelog.Record, error) {
	out, err := s.CreateMany(ctx, []*changelog.Record{rec})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// CreateMany inserts a batch in one transaction. Timestamps are assigned
// here, strictly increasing in input order, and the dedup key makes retried
// callbacks idempotent.
func (s *PostgresStore) CreateMany(ctx context.Context, recs []*changelog.Record) ([]*changelog.Record, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	stamp(recs, time.Now())

	batch := &pgx.Batch{}
	for _, rec := range recs {
		aux, err := marshalMap(rec.Aux)
		if err != nil {
			return nil, fmt.Errorf("marshal aux: %w", err)
		}
		rendered, err := marshalMap(rec.Text)
		if err != nil {
			return nil, fmt.Errorf("marshal rendered text: %w", err)
		}
		batch.Queue(insertSQL,
			rec.ID, rec.SubjectID, rec.Kind.String(), rec.Column,
			rec.OldValue, rec.NewValue,
			rec.EditorID, rec.EditorName, rec.EditorKind,
			rec.Seq, rec.DedupKey, aux, rendered, rec.CreatedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range recs {
		if _, err := br.Exec(); err != nil {
			return nil, fmt.Errorf("insert change log: %w", err)
		}
	}
	for _, rec := range recs {
		recordsCreated.WithLabelValues(rec.Kind.String()).Inc()
	}
	return recs, nil
}

func (s *PostgresStore) List(ctx context.Context, f Filter) ([]*changelog.Record, int, error) {
	f = f.normalized()

	where := "WHERE subject_id = $1"
	args := []any{f.SubjectID}
	if len(f.Kinds) > 0 {
		names := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			names[i] = k.String()
		}
		args = append(args, names)
		where += fmt.Sprintf(" AND subject_kind = ANY($%d)", len(args))
	}
	if f.excludesLocation() {
		where += " AND col <> 'location'"
	}

	var total int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM change_logs "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count change logs: %w", err)
	}

	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)
	query := fmt.Sprintf(`
		SELECT id, subject_id, subject_kind, col, old_value, new_value,
		       editor_id, editor_name, editor_kind, seq, dedup_key, aux, rendered, created_at
		FROM change_logs %s
		ORDER BY created_at DESC, seq DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query change logs: %w", err)
	}
	defer rows.Close()

	var recs []*changelog.Record
	for rows.Next() {
		var (
			rec      changelog.Record
			kindName string
			aux      []byte
			rendered []byte
		)
		err := rows.Scan(
			&rec.ID, &rec.SubjectID, &kindName, &rec.Column,
			&rec.OldValue, &rec.NewValue,
			&rec.EditorID, &rec.EditorName, &rec.EditorKind,
			&rec.Seq, &rec.DedupKey, &aux, &rendered, &rec.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan change log: %w", err)
		}
		kind, err := changelog.ParseKind(kindName)
		if err != nil {
			return nil, 0, fmt.Errorf("scan change log: %w", err)
		}
		rec.Kind = kind
		if rec.Aux, err = unmarshalMap(aux); err != nil {
			return nil, 0, fmt.Errorf("unmarshal aux: %w", err)
		}
		if rec.Text, err = unmarshalMap(rendered); err != nil {
			return nil, 0, fmt.Errorf("unmarshal rendered text: %w", err)
		}
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate change logs: %w", err)
	}
	return recs, total, nil
}

func marshalMap(m map[string]string) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func unmarshalMap(b []byte) (map[string]string, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
