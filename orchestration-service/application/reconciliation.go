package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/shared/events"
	"github.com/ticketera/ticket-platform/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const defaultReconciliationListLimit = 100

// ReconciliationAlerter publishes cases that need an operator. Publishing is
// best-effort: a failure is logged and the case stays in the audit trail.
type ReconciliationAlerter struct {
	publisher events.Publisher
	logger    *zap.Logger
	timeout   time.Duration
}

type ReconciliationAlerterOption func(*ReconciliationAlerter)

// WithPublishTimeout bounds the publish of one alert
func WithPublishTimeout(timeout time.Duration) ReconciliationAlerterOption {
	return func(a *ReconciliationAlerter) {
		if timeout > 0 {
			a.timeout = timeout
		}
	}
}

func NewReconciliationAlerter(publisher events.Publisher, logger *zap.Logger, opts ...ReconciliationAlerterOption) *ReconciliationAlerter {
	a := &ReconciliationAlerter{
		publisher: publisher,
		logger:    logger.Named("reconciliation"),
		timeout:   defaultNotificationTimeout,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Raise logs the case and publishes it on the reconciliation topic
func (a *ReconciliationAlerter) Raise(ctx context.Context, c *domain.ReconciliationCase) {
	fields := []zap.Field{
		zap.String("saga_id", c.SagaID.String()),
		zap.String("saga", c.Saga),
		zap.String("failed_step", c.FailedStep),
		zap.String("payment_id", c.PaymentID),
		zap.String("reason", c.Reason),
	}
	a.logger.Error("manual reconciliation required", fields...)

	telemetry.RecordCounter(ctx, "saga_reconciliations_total", "Sagas escalated to manual reconciliation", 1,
		attribute.String("saga", c.Saga),
		attribute.String("failed_step", c.FailedStep),
	)

	if a.publisher == nil {
		return
	}

	evt := events.NewEvent(c.SagaID, events.ReconciliationRequiredTopic, c).
		WithCorrelationID(c.SagaID).
		WithMetadata("saga", c.Saga)

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
	defer cancel()

	if err := a.publisher.Publish(publishCtx, evt); err != nil {
		a.logger.Error("failed to publish reconciliation case", append(fields, zap.Error(err))...)
	}
}

// RecordReconciliationCase stores cases consumed from the reconciliation topic
type RecordReconciliationCase struct {
	repository domain.ReconciliationRepository
	logger     *zap.Logger
}

func NewRecordReconciliationCase(repository domain.ReconciliationRepository, logger *zap.Logger) *RecordReconciliationCase {
	return &RecordReconciliationCase{repository: repository, logger: logger}
}

// Execute stores the case carried by evt. Redelivered events are no-ops.
func (uc *RecordReconciliationCase) Execute(ctx context.Context, evt *events.Event) error {
	var c domain.ReconciliationCase
	if err := evt.UnmarshalPayload(&c); err != nil {
		return errors.Wrap(err, "failed to decode reconciliation case")
	}

	if c.SagaID.IsZero() {
		c.SagaID = evt.AggregateID
	}
	if c.SagaID.IsZero() {
		return errors.Wrap(domain.ErrInvalidRequest, "reconciliation case has no saga id")
	}
	if c.Status == "" {
		c.Status = domain.ReconciliationOpen
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = evt.Timestamp
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	if err := uc.repository.Save(ctx, &c); err != nil {
		return errors.Wrap(err, "failed to save reconciliation case")
	}

	uc.logger.Info("reconciliation case recorded",
		zap.String("saga_id", c.SagaID.String()),
		zap.String("payment_id", c.PaymentID),
	)

	return nil
}

// ListReconciliationCasesQuery filters the operator queue
type ListReconciliationCasesQuery struct {
	Status domain.ReconciliationStatus
	Limit  int
}

// ListReconciliationCases returns cases waiting for an operator
type ListReconciliationCases struct {
	repository domain.ReconciliationRepository
}

func NewListReconciliationCases(repository domain.ReconciliationRepository) *ListReconciliationCases {
	return &ListReconciliationCases{repository: repository}
}

func (uc *ListReconciliationCases) Execute(ctx context.Context, query ListReconciliationCasesQuery) ([]*domain.ReconciliationCase, error) {
	status := query.Status
	if status == "" {
		status = domain.ReconciliationOpen
	}
	if status != domain.ReconciliationOpen && status != domain.ReconciliationResolved {
		return nil, errors.Wrapf(domain.ErrInvalidRequest, "unknown status %q", status)
	}

	limit := query.Limit
	if limit <= 0 || limit > defaultReconciliationListLimit {
		limit = defaultReconciliationListLimit
	}

	cases, err := uc.repository.ListByStatus(ctx, status, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reconciliation cases")
	}

	return cases, nil
}
