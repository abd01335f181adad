// Package saga runs multi-service workflows as an ordered list of steps, each
// paired with an optional compensating action, and writes an ordered audit
// trail of every transition.
package saga

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/shared/models"
)

// Tag classifies how the engine treats a step's failure.
type Tag string

const (
	// TagReadOnly steps mutate nothing; a failure aborts without compensation.
	TagReadOnly Tag = "read-only"
	// TagCompensable steps leave an effect that must be undone if a later step fails.
	TagCompensable Tag = "compensable"
	// TagCritical steps are the point of no return: once one succeeds, later
	// failures are escalated to manual reconciliation instead of compensated.
	TagCritical Tag = "critical"
	// TagBestEffort steps never affect the saga verdict.
	TagBestEffort Tag = "best-effort"
)

func (t Tag) valid() bool {
	switch t {
	case TagReadOnly, TagCompensable, TagCritical, TagBestEffort:
		return true
	}
	return false
}

// Action is a forward or compensating action of a step.
type Action func(ctx context.Context) error

// Step is one unit of work in a saga.
type Step struct {
	Name       string
	Tag        Tag
	Execute    Action
	Compensate Action

	// CompensationOwed reports whether the step's effect is still outstanding.
	// When nil the effect of an executed step is always considered owed.
	CompensationOwed func() bool

	// Timeout bounds each invocation of Execute and Compensate. Zero means
	// the orchestrator default.
	Timeout time.Duration
}

// Definition is an ordered list of steps plus the follow-ups to run when the
// saga fails.
type Definition struct {
	Name  string
	Steps []Step

	// OnFailure returns best-effort steps to run once unwinding is done.
	OnFailure func(failure *Failure) []Step
}

// Validate checks the structural rules of the definition.
func (d *Definition) Validate() error {
	if d == nil {
		return errors.New("definition is nil")
	}
	if d.Name == "" {
		return errors.New("saga name is required")
	}
	if len(d.Steps) == 0 {
		return errors.Errorf("saga %s has no steps", d.Name)
	}

	seen := make(map[string]struct{}, len(d.Steps))
	for i, step := range d.Steps {
		if step.Name == "" {
			return errors.Errorf("step %d of saga %s has no name", i, d.Name)
		}
		if _, ok := seen[step.Name]; ok {
			return errors.Errorf("step %s is declared twice in saga %s", step.Name, d.Name)
		}
		seen[step.Name] = struct{}{}

		if !step.Tag.valid() {
			return errors.Errorf("step %s has unknown tag %q", step.Name, step.Tag)
		}
		if step.Execute == nil {
			return errors.Errorf("step %s has no forward action", step.Name)
		}
		if step.Tag == TagCompensable && step.Compensate == nil {
			return errors.Errorf("compensable step %s has no compensating action", step.Name)
		}
		if step.Tag != TagCompensable && step.Compensate != nil {
			return errors.Errorf("step %s is %s and cannot declare a compensating action", step.Name, step.Tag)
		}
	}

	return nil
}

// Status is the terminal state of a saga run.
type Status string

const (
	StatusCompleted              Status = "completed"
	StatusCompensated            Status = "compensated"
	StatusReconciliationRequired Status = "reconciliation_required"
)

// Failure describes the step that stopped the saga.
type Failure struct {
	Step string
	Tag  Tag
	Err  error

	// Committed is true when the failure happened after a critical step had
	// already succeeded.
	Committed bool
}

// Outcome is the result of a saga run.
type Outcome struct {
	SagaID                       models.ID
	Saga                         string
	Status                       Status
	Failure                      *Failure
	CompensationErrors           []error
	RequiresManualReconciliation bool
}

// Succeeded reports whether every non best-effort step completed.
func (o *Outcome) Succeeded() bool {
	return o.Status == StatusCompleted
}

// Err returns the error of the failed step, if any.
func (o *Outcome) Err() error {
	if o.Failure == nil {
		return nil
	}
	return o.Failure.Err
}
