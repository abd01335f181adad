package saga

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/shared/models"
	"github.com/ticketera/ticket-platform/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const defaultStepTimeout = 10 * time.Second

// Orchestrator executes saga definitions. It holds no per-run state, so one
// instance serves any number of concurrent runs.
type Orchestrator struct {
	recorder    AuditRecorder
	logger      *zap.Logger
	stepTimeout time.Duration
	now         func() time.Time
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithStepTimeout sets the default timeout of every step invocation
func WithStepTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		if timeout > 0 {
			o.stepTimeout = timeout
		}
	}
}

// WithClock overrides the clock used to stamp audit events
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// NewOrchestrator creates a new Orchestrator. Transitions are always written
// to the logger; recorder receives them as well when it is not nil.
func NewOrchestrator(recorder AuditRecorder, logger *zap.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	logRecorder := NewLogRecorder(logger)
	if recorder == nil {
		recorder = logRecorder
	} else {
		recorder = NewMultiRecorder(logRecorder, recorder)
	}

	o := &Orchestrator{
		recorder:    recorder,
		logger:      logger,
		stepTimeout: defaultStepTimeout,
		now:         func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Run executes the definition to a terminal state. Forward actions run in
// order; when a non best-effort step fails before the saga is committed, the
// compensations of the executed steps run in reverse order. Cancelling ctx
// does not interrupt a started run. The returned error is only set for an
// invalid definition.
func (o *Orchestrator) Run(ctx context.Context, sagaID models.ID, def *Definition) (*Outcome, error) {
	if err := def.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid saga definition")
	}

	if sagaID.IsZero() {
		sagaID = models.GenerateUUID()
	}

	r := &run{
		orchestrator: o,
		id:           sagaID,
		def:          def,
		logger: o.logger.With(
			zap.String("saga_id", sagaID.String()),
			zap.String("saga", def.Name),
		),
	}

	return r.execute(context.WithoutCancel(ctx)), nil
}

// run is the state of one saga instance
type run struct {
	orchestrator *Orchestrator
	id           models.ID
	def          *Definition
	logger       *zap.Logger
	sequence     int
}

func (r *run) execute(ctx context.Context) *Outcome {
	r.record(ctx, AuditEvent{Transition: TransitionSagaStarted, Outcome: OutcomeStarted})

	executed := make([]Step, 0, len(r.def.Steps))
	committed := false

	for _, step := range r.def.Steps {
		err := r.forward(ctx, step)
		if err == nil {
			executed = append(executed, step)
			if step.Tag == TagCritical {
				committed = true
			}
			continue
		}

		if step.Tag == TagBestEffort {
			continue
		}

		return r.fail(ctx, &Failure{
			Step:      step.Name,
			Tag:       step.Tag,
			Err:       err,
			Committed: committed,
		}, executed)
	}

	outcome := &Outcome{
		SagaID: r.id,
		Saga:   r.def.Name,
		Status: StatusCompleted,
	}

	r.record(ctx, AuditEvent{Transition: TransitionSagaCompleted, Outcome: string(StatusCompleted)})
	r.logger.Info("saga completed")
	r.countRun(ctx, outcome)

	return outcome
}

func (r *run) forward(ctx context.Context, step Step) error {
	r.record(ctx, AuditEvent{Step: step.Name, Tag: step.Tag, Transition: TransitionStepStarted, Outcome: OutcomeStarted})

	err := r.invoke(ctx, step, "execute", step.Execute)
	if err != nil {
		r.record(ctx, AuditEvent{
			Step:       step.Name,
			Tag:        step.Tag,
			Transition: TransitionStepFailed,
			Outcome:    OutcomeFailure,
			Error:      err.Error(),
		})

		if step.Tag == TagBestEffort {
			r.logger.Warn("best-effort step failed, continuing", stepFields(step, err)...)
		} else {
			r.logger.Error("step failed", stepFields(step, err)...)
		}
		return err
	}

	r.record(ctx, AuditEvent{Step: step.Name, Tag: step.Tag, Transition: TransitionStepSucceeded, Outcome: OutcomeSuccess})
	return nil
}

func (r *run) fail(ctx context.Context, failure *Failure, executed []Step) *Outcome {
	outcome := &Outcome{
		SagaID:  r.id,
		Saga:    r.def.Name,
		Failure: failure,
	}

	if failure.Committed {
		outcome.RequiresManualReconciliation = true
		r.logger.Error("step failed after the saga was committed, manual reconciliation required",
			stepFields(Step{Name: failure.Step, Tag: failure.Tag}, failure.Err)...)
	} else {
		outcome.CompensationErrors = r.unwind(ctx, executed)
		if len(outcome.CompensationErrors) > 0 {
			outcome.RequiresManualReconciliation = true
		}
	}

	if r.def.OnFailure != nil {
		for _, step := range r.def.OnFailure(failure) {
			if step.Execute == nil {
				continue
			}
			step.Tag = TagBestEffort
			step.Compensate = nil
			_ = r.forward(ctx, step)
		}
	}

	outcome.Status = StatusCompensated
	if outcome.RequiresManualReconciliation {
		outcome.Status = StatusReconciliationRequired
	}

	r.record(ctx, AuditEvent{
		Step:       failure.Step,
		Tag:        failure.Tag,
		Transition: TransitionSagaFailed,
		Outcome:    string(outcome.Status),
		Error:      failure.Err.Error(),
	})
	r.logger.Warn("saga failed",
		zap.String("failed_step", failure.Step),
		zap.String("status", string(outcome.Status)),
		zap.Bool("requires_manual_reconciliation", outcome.RequiresManualReconciliation),
		zap.Error(failure.Err),
	)
	r.countRun(ctx, outcome)

	return outcome
}

// unwind compensates executed steps in strict reverse order. A failed
// compensation never stops the remaining ones.
func (r *run) unwind(ctx context.Context, executed []Step) []error {
	var errs []error

	for i := len(executed) - 1; i >= 0; i-- {
		step := executed[i]
		if step.Compensate == nil {
			continue
		}

		if step.CompensationOwed != nil && !step.CompensationOwed() {
			r.record(ctx, AuditEvent{Step: step.Name, Tag: step.Tag, Transition: TransitionCompensationSkipped, Outcome: OutcomeSkipped})
			r.logger.Info("compensation not owed, skipping", zap.String("step", step.Name))
			continue
		}

		r.record(ctx, AuditEvent{Step: step.Name, Tag: step.Tag, Transition: TransitionCompensationStarted, Outcome: OutcomeStarted})

		if err := r.invoke(ctx, step, "compensate", step.Compensate); err != nil {
			r.record(ctx, AuditEvent{
				Step:       step.Name,
				Tag:        step.Tag,
				Transition: TransitionCompensationFailed,
				Outcome:    OutcomeFailure,
				Error:      err.Error(),
			})
			r.logger.Error("compensation failed, manual reconciliation required", stepFields(step, err)...)
			r.countCompensation(ctx, step, OutcomeFailure)
			errs = append(errs, errors.Wrapf(err, "compensation of step %s failed", step.Name))
			continue
		}

		r.record(ctx, AuditEvent{Step: step.Name, Tag: step.Tag, Transition: TransitionCompensationSucceeded, Outcome: OutcomeSuccess})
		r.logger.Info("compensation succeeded", zap.String("step", step.Name))
		r.countCompensation(ctx, step, OutcomeSuccess)
	}

	return errs
}

// invoke runs one action under its own timeout and span, turning panics and
// deadlines into errors.
func (r *run) invoke(ctx context.Context, step Step, phase string, action Action) (err error) {
	timeout := step.Timeout
	if timeout <= 0 {
		timeout = r.orchestrator.stepTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ctx, span := telemetry.StartSpan(ctx, "saga."+r.def.Name+"."+step.Name+"."+phase)
	defer span.End()

	span.SetAttributes(
		attribute.String("saga.id", r.id.String()),
		attribute.String("saga.step", step.Name),
		attribute.String("saga.tag", string(step.Tag)),
	)

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("step %s panicked: %v", step.Name, p)
		}

		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = errors.Wrapf(err, "step %s timed out after %s", step.Name, timeout)
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		telemetry.RecordHistogram(ctx, "saga_step_duration_seconds", "Duration of saga step invocations",
			time.Since(start).Seconds(),
			attribute.String("saga", r.def.Name),
			attribute.String("step", step.Name),
			attribute.String("tag", string(step.Tag)),
			attribute.String("phase", phase),
		)
	}()

	return action(ctx)
}

func (r *run) record(ctx context.Context, event AuditEvent) {
	r.sequence++
	event.SagaID = r.id
	event.Saga = r.def.Name
	event.Sequence = r.sequence
	event.Timestamp = r.orchestrator.now()

	if err := r.orchestrator.recorder.Record(ctx, event); err != nil {
		r.logger.Error("failed to record audit event",
			zap.Int("sequence", event.Sequence),
			zap.String("transition", string(event.Transition)),
			zap.Error(err),
		)
	}
}

func (r *run) countRun(ctx context.Context, outcome *Outcome) {
	telemetry.RecordCounter(ctx, "saga_runs_total", "Saga runs by terminal status", 1,
		attribute.String("saga", r.def.Name),
		attribute.String("status", string(outcome.Status)),
	)
}

func (r *run) countCompensation(ctx context.Context, step Step, result string) {
	telemetry.RecordCounter(ctx, "saga_compensations_total", "Compensating actions by result", 1,
		attribute.String("saga", r.def.Name),
		attribute.String("step", step.Name),
		attribute.String("result", result),
	)
}

func stepFields(step Step, err error) []zap.Field {
	return []zap.Field{
		zap.String("step", step.Name),
		zap.String("tag", string(step.Tag)),
		zap.Error(err),
	}
}
