package saga

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/shared/events"
	"github.com/ticketera/ticket-platform/shared/models"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Transition names a state change of a saga instance.
type Transition string

const (
	TransitionSagaStarted           Transition = "saga.started"
	TransitionStepStarted           Transition = "step.started"
	TransitionStepSucceeded         Transition = "step.succeeded"
	TransitionStepFailed            Transition = "step.failed"
	TransitionCompensationStarted   Transition = "compensation.started"
	TransitionCompensationSucceeded Transition = "compensation.succeeded"
	TransitionCompensationFailed    Transition = "compensation.failed"
	TransitionCompensationSkipped   Transition = "compensation.skipped"
	TransitionSagaCompleted         Transition = "saga.completed"
	TransitionSagaFailed            Transition = "saga.failed"
)

// Audit outcomes for step and compensation transitions. Saga terminal
// transitions carry the Status instead.
const (
	OutcomeStarted = "started"
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// AuditEvent is one entry of a saga's audit trail. Sequence starts at 1 and
// increases by one for every event of the same instance.
type AuditEvent struct {
	SagaID     models.ID  `json:"saga_id" db:"saga_id"`
	Saga       string     `json:"saga" db:"saga_name"`
	Sequence   int        `json:"sequence" db:"sequence"`
	Step       string     `json:"step,omitempty" db:"step"`
	Tag        Tag        `json:"tag,omitempty" db:"tag"`
	Transition Transition `json:"transition" db:"transition"`
	Outcome    string     `json:"outcome" db:"outcome"`
	Error      string     `json:"error,omitempty" db:"error"`
	Timestamp  time.Time  `json:"timestamp" db:"occurred_at"`
}

// AuditRecorder persists audit events. Implementations must be safe for
// concurrent use; a failed Record never changes a saga's verdict.
type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent) error
}

// MultiRecorder fans events out to every recorder and joins their errors.
type MultiRecorder []AuditRecorder

// NewMultiRecorder creates a MultiRecorder skipping nil recorders
func NewMultiRecorder(recorders ...AuditRecorder) MultiRecorder {
	multi := make(MultiRecorder, 0, len(recorders))
	for _, recorder := range recorders {
		if recorder != nil {
			multi = append(multi, recorder)
		}
	}
	return multi
}

func (m MultiRecorder) Record(ctx context.Context, event AuditEvent) error {
	var err error
	for _, recorder := range m {
		err = multierr.Append(err, recorder.Record(ctx, event))
	}
	return err
}

// LogRecorder writes audit events as structured log lines.
type LogRecorder struct {
	logger *zap.Logger
}

func NewLogRecorder(logger *zap.Logger) *LogRecorder {
	return &LogRecorder{logger: logger.Named("saga.audit")}
}

func (r *LogRecorder) Record(_ context.Context, event AuditEvent) error {
	fields := []zap.Field{
		zap.String("saga_id", event.SagaID.String()),
		zap.String("saga", event.Saga),
		zap.Int("sequence", event.Sequence),
		zap.String("transition", string(event.Transition)),
		zap.String("outcome", event.Outcome),
	}
	if event.Step != "" {
		fields = append(fields, zap.String("step", event.Step), zap.String("tag", string(event.Tag)))
	}
	if event.Error != "" {
		fields = append(fields, zap.String("error", event.Error))
	}

	r.logger.Info("saga transition", fields...)
	return nil
}

// MemoryRecorder keeps audit events in memory.
type MemoryRecorder struct {
	mu     sync.RWMutex
	events []AuditEvent
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Record(_ context.Context, event AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of every recorded event in arrival order
func (r *MemoryRecorder) Events() []AuditEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}

// History returns the events of one saga instance in sequence order
func (r *MemoryRecorder) History(_ context.Context, sagaID models.ID) ([]AuditEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []AuditEvent
	for _, event := range r.events {
		if event.SagaID == sagaID {
			out = append(out, event)
		}
	}
	return out, nil
}

// EventRecorder publishes audit events to the saga audit topic.
type EventRecorder struct {
	publisher events.Publisher
}

func NewEventRecorder(publisher events.Publisher) *EventRecorder {
	return &EventRecorder{publisher: publisher}
}

func (r *EventRecorder) Record(ctx context.Context, event AuditEvent) error {
	evt := events.NewEvent(event.SagaID, events.SagaAuditTopic, event).
		WithCorrelationID(event.SagaID).
		WithMetadata("transition", string(event.Transition)).
		WithMetadata("sequence", strconv.Itoa(event.Sequence))

	if err := r.publisher.Publish(ctx, evt); err != nil {
		return errors.Wrap(err, "failed to publish audit event")
	}
	return nil
}
