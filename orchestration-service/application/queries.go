package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/shared/models"
	"github.com/ticketera/ticket-platform/shared/saga"
)

// GetUserTickets lists the tickets bought by a user
type GetUserTickets struct {
	ticketing domain.TicketingPort
}

func NewGetUserTickets(ticketing domain.TicketingPort) *GetUserTickets {
	return &GetUserTickets{ticketing: ticketing}
}

func (uc *GetUserTickets) Execute(ctx context.Context, userID int64) ([]*domain.Ticket, error) {
	if userID <= 0 {
		return nil, errors.Wrap(domain.ErrInvalidRequest, "user id is required")
	}

	tickets, err := uc.ticketing.GetTicketsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user tickets")
	}

	return tickets, nil
}

// GetSagaAuditTrail returns every recorded transition of a saga instance
type GetSagaAuditTrail struct {
	trail domain.AuditTrail
}

func NewGetSagaAuditTrail(trail domain.AuditTrail) *GetSagaAuditTrail {
	return &GetSagaAuditTrail{trail: trail}
}

func (uc *GetSagaAuditTrail) Execute(ctx context.Context, sagaID string) ([]saga.AuditEvent, error) {
	id, err := models.NewID(sagaID)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidRequest, err.Error())
	}

	history, err := uc.trail.History(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get audit trail")
	}

	if len(history) == 0 {
		return nil, errors.Wrapf(domain.ErrNotFound, "saga %s", sagaID)
	}

	return history, nil
}
