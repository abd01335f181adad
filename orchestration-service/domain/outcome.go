package domain

import "github.com/ticketera/ticket-platform/shared/models"

// SagaResult is the verdict reported to the caller
type SagaResult string

const (
	SagaSuccess SagaResult = "SUCCESS"
	SagaFailed  SagaResult = "FAILED"
)

// FailureKind classifies a failed saga for the entry point
type FailureKind string

const (
	FailureNone              FailureKind = ""
	FailureInvalidRequest    FailureKind = "invalid_request"
	FailureNotFound          FailureKind = "not_found"
	FailureInsufficientStock FailureKind = "insufficient_stock"
	FailurePaymentRejected   FailureKind = "payment_rejected"
	FailureTicketNotCreated  FailureKind = "ticket_not_created"
	FailureCollaborator      FailureKind = "collaborator_error"
)

// SagaOutcome is the orchestrator's final report. RequiresManualReconciliation
// is for operational alerting and never shown to end users.
type SagaOutcome struct {
	SagaID                       models.ID
	Result                       SagaResult
	Ticket                       *Ticket
	User                         *User
	FailureReason                string
	FailureKind                  FailureKind
	RequiresManualReconciliation bool
}

func (o *SagaOutcome) Succeeded() bool {
	return o.Result == SagaSuccess
}
