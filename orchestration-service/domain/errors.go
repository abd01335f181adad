package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentRejected   = errors.New("payment rejected")
	ErrTicketNotCreated  = errors.New("ticket not created")
)

// InsufficientStockError carries the stock seen when the check failed
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente. Disponibles: %d", e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// PaymentRejectedError is the expected business outcome of a declined charge
type PaymentRejectedError struct {
	PaymentID string
	Reason    string
}

func (e *PaymentRejectedError) Error() string {
	return "Pago rechazado: " + e.Reason
}

func (e *PaymentRejectedError) Unwrap() error {
	return ErrPaymentRejected
}

// TicketNotCreatedError is raised when a charge was approved but no ticket exists
type TicketNotCreatedError struct {
	PaymentID string
	Err       error
}

func (e *TicketNotCreatedError) Error() string {
	return "Error crítico: pago procesado pero ticket no creado. Payment ID: " + e.PaymentID
}

func (e *TicketNotCreatedError) Unwrap() error {
	return ErrTicketNotCreated
}

// RequestRejectedError is a collaborator refusing a request on its merits.
// The message comes from the collaborator and is safe to show to the user.
type RequestRejectedError struct {
	Message string
}

func (e *RequestRejectedError) Error() string {
	if e.Message == "" {
		return "Solicitud rechazada"
	}
	return e.Message
}

func (e *RequestRejectedError) Unwrap() error {
	return ErrInvalidRequest
}
