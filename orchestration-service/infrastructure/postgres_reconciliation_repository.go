package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/shared/models"
)

var _ domain.ReconciliationRepository = (*PostgresReconciliationRepository)(nil)

// PostgresReconciliationRepository implements ReconciliationRepository using PostgreSQL
type PostgresReconciliationRepository struct {
	db *sqlx.DB
}

// NewPostgresReconciliationRepository creates a new PostgresReconciliationRepository
func NewPostgresReconciliationRepository(db *sqlx.DB) *PostgresReconciliationRepository {
	return &PostgresReconciliationRepository{db: db}
}

// postgresReconciliationCase represents a reconciliation case in database
type postgresReconciliationCase struct {
	SagaID       string         `db:"saga_id"`
	SagaName     string         `db:"saga_name"`
	UserID       int64          `db:"user_id"`
	TicketTypeID int64          `db:"ticket_type_id"`
	Quantity     int            `db:"quantity"`
	Amount       int64          `db:"amount"`
	PaymentID    sql.NullString `db:"payment_id"`
	FailedStep   string         `db:"failed_step"`
	Reason       string         `db:"reason"`
	Status       string         `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
}

// Save inserts a case. A case already stored for the same saga is kept.
func (r *PostgresReconciliationRepository) Save(ctx context.Context, c *domain.ReconciliationCase) error {
	query := `
		INSERT INTO reconciliation_cases (
			saga_id, saga_name, user_id, ticket_type_id, quantity, amount,
			payment_id, failed_step, reason, status, created_at
		) VALUES (
			:saga_id, :saga_name, :user_id, :ticket_type_id, :quantity, :amount,
			:payment_id, :failed_step, :reason, :status, :created_at
		)
		ON CONFLICT (saga_id) DO NOTHING`

	_, err := r.db.NamedExecContext(ctx, query, toPostgresReconciliationCase(c))
	if err != nil {
		return errors.Wrap(err, "failed to insert reconciliation case")
	}

	return nil
}

// ListByStatus returns the oldest cases first
func (r *PostgresReconciliationRepository) ListByStatus(ctx context.Context, status domain.ReconciliationStatus, limit int) ([]*domain.ReconciliationCase, error) {
	query := `
		SELECT saga_id, saga_name, user_id, ticket_type_id, quantity, amount,
			   payment_id, failed_step, reason, status, created_at
		FROM reconciliation_cases
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2`

	var rows []postgresReconciliationCase
	if err := r.db.SelectContext(ctx, &rows, query, string(status), limit); err != nil {
		return nil, errors.Wrap(err, "failed to list reconciliation cases")
	}

	cases := make([]*domain.ReconciliationCase, len(rows))
	for i := range rows {
		cases[i] = rows[i].toDomain()
	}

	return cases, nil
}

func toPostgresReconciliationCase(c *domain.ReconciliationCase) *postgresReconciliationCase {
	return &postgresReconciliationCase{
		SagaID:       c.SagaID.String(),
		SagaName:     c.Saga,
		UserID:       c.UserID,
		TicketTypeID: c.TicketTypeID,
		Quantity:     c.Quantity,
		Amount:       c.Amount.Amount,
		PaymentID:    sql.NullString{String: c.PaymentID, Valid: c.PaymentID != ""},
		FailedStep:   c.FailedStep,
		Reason:       c.Reason,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
	}
}

func (row *postgresReconciliationCase) toDomain() *domain.ReconciliationCase {
	return &domain.ReconciliationCase{
		SagaID:       models.ID(row.SagaID),
		Saga:         row.SagaName,
		UserID:       row.UserID,
		TicketTypeID: row.TicketTypeID,
		Quantity:     row.Quantity,
		Amount:       models.NewMoney(row.Amount),
		PaymentID:    row.PaymentID.String,
		FailedStep:   row.FailedStep,
		Reason:       row.Reason,
		Status:       domain.ReconciliationStatus(row.Status),
		CreatedAt:    row.CreatedAt.UTC(),
	}
}
