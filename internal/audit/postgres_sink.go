package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresSink inserts audit entries into event_logs. Only the trail is
// stored; entity data stays in memory.
type PostgresSink struct {
	db execer
}

func NewPostgresSink(db execer) *PostgresSink {
	return &PostgresSink{db: db}
}

func (s *PostgresSink) Name() string { return "postgres" }

func (s *PostgresSink) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS event_logs (
			id          BIGSERIAL PRIMARY KEY,
			entity_kind TEXT        NOT NULL,
			event_type  TEXT        NOT NULL,
			entity_id   BIGINT      NOT NULL,
			payload     JSONB,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create event_logs: %w", err)
	}
	return nil
}

func (s *PostgresSink) Write(ctx context.Context, e Entry) error {
	var payload []byte
	if len(e.Payload) > 0 {
		payload = e.Payload
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO event_logs (entity_kind, event_type, entity_id, payload, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()))
	`, e.Kind, e.Action, e.EntityID, payload, nullableTime(e.At))
	if err != nil {
		return fmt.Errorf("insert event log: %w", err)
	}
	return nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
