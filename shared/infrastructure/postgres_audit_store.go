package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/shared/models"
	"github.com/ticketera/ticket-platform/shared/saga"
)

var _ saga.AuditRecorder = (*PostgresAuditStore)(nil)

// PostgresAuditStore persists saga audit trails in the saga_audit_log table
type PostgresAuditStore struct {
	db *sqlx.DB
}

// NewPostgresAuditStore creates a new PostgresAuditStore
func NewPostgresAuditStore(db *sqlx.DB) *PostgresAuditStore {
	return &PostgresAuditStore{db: db}
}

// postgresAuditEvent represents an audit row in database
type postgresAuditEvent struct {
	SagaID     string         `db:"saga_id"`
	SagaName   string         `db:"saga_name"`
	Sequence   int            `db:"sequence"`
	Step       string         `db:"step"`
	Tag        string         `db:"tag"`
	Transition string         `db:"transition"`
	Outcome    string         `db:"outcome"`
	Error      sql.NullString `db:"error"`
	OccurredAt time.Time      `db:"occurred_at"`
}

// Record appends an event. Replays of the same (saga_id, sequence) are ignored.
func (s *PostgresAuditStore) Record(ctx context.Context, event saga.AuditEvent) error {
	query := `
		INSERT INTO saga_audit_log (
			saga_id, saga_name, sequence, step, tag, transition, outcome, error, occurred_at
		) VALUES (
			:saga_id, :saga_name, :sequence, :step, :tag, :transition, :outcome, :error, :occurred_at
		)
		ON CONFLICT (saga_id, sequence) DO NOTHING`

	_, err := s.db.NamedExecContext(ctx, query, toPostgresAuditEvent(event))
	if err != nil {
		return errors.Wrap(err, "failed to insert audit event")
	}

	return nil
}

// History returns the audit trail of a saga instance in sequence order
func (s *PostgresAuditStore) History(ctx context.Context, sagaID models.ID) ([]saga.AuditEvent, error) {
	query := `
		SELECT saga_id, saga_name, sequence, step, tag, transition, outcome, error, occurred_at
		FROM saga_audit_log
		WHERE saga_id = $1
		ORDER BY sequence ASC`

	var rows []postgresAuditEvent
	if err := s.db.SelectContext(ctx, &rows, query, sagaID.String()); err != nil {
		return nil, errors.Wrap(err, "failed to get audit trail")
	}

	trail := make([]saga.AuditEvent, len(rows))
	for i, row := range rows {
		trail[i] = row.toDomain()
	}

	return trail, nil
}

func toPostgresAuditEvent(event saga.AuditEvent) *postgresAuditEvent {
	return &postgresAuditEvent{
		SagaID:     event.SagaID.String(),
		SagaName:   event.Saga,
		Sequence:   event.Sequence,
		Step:       event.Step,
		Tag:        string(event.Tag),
		Transition: string(event.Transition),
		Outcome:    event.Outcome,
		Error:      sql.NullString{String: event.Error, Valid: event.Error != ""},
		OccurredAt: event.Timestamp,
	}
}

func (row postgresAuditEvent) toDomain() saga.AuditEvent {
	return saga.AuditEvent{
		SagaID:     models.ID(row.SagaID),
		Saga:       row.SagaName,
		Sequence:   row.Sequence,
		Step:       row.Step,
		Tag:        saga.Tag(row.Tag),
		Transition: saga.Transition(row.Transition),
		Outcome:    row.Outcome,
		Error:      row.Error.String,
		Timestamp:  row.OccurredAt.UTC(),
	}
}
