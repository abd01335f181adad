package domain

import (
	"context"
	"time"

	"github.com/ticketera/ticket-platform/shared/models"
)

// ReconciliationStatus is the state of a case in the operator queue
type ReconciliationStatus string

const (
	ReconciliationOpen     ReconciliationStatus = "open"
	ReconciliationResolved ReconciliationStatus = "resolved"
)

// ReconciliationCase is an inconsistency a saga could not resolve on its own
type ReconciliationCase struct {
	SagaID       models.ID            `json:"sagaId"`
	Saga         string               `json:"saga"`
	UserID       int64                `json:"userId"`
	TicketTypeID int64                `json:"ticketTypeId"`
	Quantity     int                  `json:"quantity"`
	Amount       models.Money         `json:"amount"`
	PaymentID    string               `json:"paymentId,omitempty"`
	FailedStep   string               `json:"failedStep"`
	Reason       string               `json:"reason"`
	Status       ReconciliationStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// ReconciliationRepository stores reconciliation cases
type ReconciliationRepository interface {
	// Save stores a case; saving the same saga twice keeps the first one
	Save(ctx context.Context, c *ReconciliationCase) error
	ListByStatus(ctx context.Context, status ReconciliationStatus, limit int) ([]*ReconciliationCase, error)
}
