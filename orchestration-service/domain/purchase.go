package domain

import (
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/shared/models"
)

// PaymentMethod is forwarded verbatim to the payment port
type PaymentMethod struct {
	CardNumber string `json:"cardNumber"`
	CVV        string `json:"cvv"`
	ExpiryDate string `json:"expiryDate"`
	CardHolder string `json:"cardHolder"`
}

// PurchaseRequest is what a buyer asks the orchestrator for
type PurchaseRequest struct {
	TicketTypeID  int64         `json:"ticketTypeId"`
	Quantity      int           `json:"quantity"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Validate checks the request before any port is called
func (r PurchaseRequest) Validate() error {
	if r.TicketTypeID <= 0 {
		return errors.Wrap(ErrInvalidRequest, "ticket type id must be positive")
	}
	if r.Quantity < 1 {
		return errors.Wrap(ErrInvalidRequest, "quantity must be at least 1")
	}
	return nil
}

// Buyer identifies the authenticated caller, as enriched by the gateway
type Buyer struct {
	UserID int64
	Email  string
}

func (b Buyer) Validate() error {
	if b.UserID <= 0 {
		return errors.Wrap(ErrInvalidRequest, "user id is required")
	}
	if b.Email == "" {
		return errors.Wrap(ErrInvalidRequest, "user email is required")
	}
	return nil
}

// TicketTypeSnapshot is the ticket type as read at saga start
type TicketTypeSnapshot struct {
	ID                int64
	EventID           int64
	Name              string
	UnitPrice         models.Money
	AvailableQuantity int
}

// HasStock reports whether quantity units are available
func (t TicketTypeSnapshot) HasStock(quantity int) bool {
	return t.AvailableQuantity >= quantity
}

// EventDetails is the event a ticket type belongs to
type EventDetails struct {
	ID   int64
	Name string
	Date time.Time
}

// StockAdjustment is a decrease or increase of a ticket type's stock
type StockAdjustment struct {
	TicketTypeID   int64
	Quantity       int
	IdempotencyKey string
}

// PaymentStatus is the verdict of the payment port
type PaymentStatus string

const (
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentRejected PaymentStatus = "REJECTED"
)

// PaymentAuthorization is a charge request
type PaymentAuthorization struct {
	Amount         models.Money
	PaymentMethod  PaymentMethod
	IdempotencyKey string
}

// PaymentOutcome is produced by the payment port. PaymentID links a ticket
// to the charge that paid for it.
type PaymentOutcome struct {
	PaymentID string
	Status    PaymentStatus
	Amount    models.Money
	Reason    string
}

func (p PaymentOutcome) Approved() bool {
	return p.Status == PaymentApproved
}

// TicketStatus is the lifecycle state of a ticket
type TicketStatus string

const (
	TicketPaid      TicketStatus = "PAID"
	TicketCancelled TicketStatus = "CANCELLED"
)

// CreateTicketRequest asks the ticketing port to persist a sold ticket.
// TicketID is a proposal; the ticket returned by the port is authoritative.
type CreateTicketRequest struct {
	TicketID       string
	UserID         int64
	TicketTypeID   int64
	EventName      string
	TicketTypeName string
	Quantity       int
	UnitPrice      models.Money
	PaymentID      string
	IdempotencyKey string
}

// Ticket is owned by the ticketing service
type Ticket struct {
	TicketID       string
	UserID         int64
	TicketTypeID   int64
	EventName      string
	TicketTypeName string
	Quantity       int
	UnitPrice      models.Money
	TotalPaid      models.Money
	PaymentID      string
	Status         TicketStatus
	PurchasedAt    time.Time
}
