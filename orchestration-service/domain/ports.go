package domain

import (
	"context"

	"github.com/ticketera/ticket-platform/shared/models"
	"github.com/ticketera/ticket-platform/shared/saga"
)

// InventoryPort is the event/inventory service. DecreaseQuantity must be an
// atomic decrement with a floor check and fail with ErrInsufficientStock.
type InventoryPort interface {
	GetTicketType(ctx context.Context, id int64) (*TicketTypeSnapshot, error)
	GetEvent(ctx context.Context, id int64) (*EventDetails, error)
	DecreaseQuantity(ctx context.Context, adj StockAdjustment) error
	IncreaseQuantity(ctx context.Context, adj StockAdjustment) error
}

// PaymentPort returns a REJECTED outcome, not an error, for declined charges
type PaymentPort interface {
	AuthorizePayment(ctx context.Context, auth PaymentAuthorization) (*PaymentOutcome, error)
}

type TicketingPort interface {
	CreateTicket(ctx context.Context, req CreateTicketRequest) (*Ticket, error)
	GetTicketsByUser(ctx context.Context, userID int64) ([]*Ticket, error)
}

type NotificationPort interface {
	SendNotification(ctx context.Context, n Notification) error
}

type UserPort interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*User, error)
}

// AuditTrail reads back the transitions of a saga instance
type AuditTrail interface {
	History(ctx context.Context, sagaID models.ID) ([]saga.AuditEvent, error)
}
