package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFailureMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "insufficient stock",
			err:      &InsufficientStockError{Available: 1, Requested: 5},
			sentinel: ErrInsufficientStock,
			message:  "Stock insuficiente. Disponibles: 1",
		},
		{
			name:     "payment rejected",
			err:      &PaymentRejectedError{PaymentID: "PAY-1", Reason: "Monto excede el límite"},
			sentinel: ErrPaymentRejected,
			message:  "Pago rechazado: Monto excede el límite",
		},
		{
			name:     "ticket not created",
			err:      &TicketNotCreatedError{PaymentID: "PAY-ABC12345", Err: errors.New("503")},
			sentinel: ErrTicketNotCreated,
			message:  "Error crítico: pago procesado pero ticket no creado. Payment ID: PAY-ABC12345",
		},
		{
			name:     "request rejected",
			err:      &RequestRejectedError{Message: "El email ya está registrado"},
			sentinel: ErrInvalidRequest,
			message:  "El email ya está registrado",
		},
		{
			name:     "request rejected without message",
			err:      &RequestRejectedError{},
			sentinel: ErrInvalidRequest,
			message:  "Solicitud rechazada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := errors.Wrap(tt.err, "step failed")

			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestPurchaseRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     PurchaseRequest
		wantErr bool
	}{
		{name: "valid", req: PurchaseRequest{TicketTypeID: 1, Quantity: 1}},
		{name: "zero quantity", req: PurchaseRequest{TicketTypeID: 1, Quantity: 0}, wantErr: true},
		{name: "negative quantity", req: PurchaseRequest{TicketTypeID: 1, Quantity: -2}, wantErr: true},
		{name: "missing ticket type", req: PurchaseRequest{Quantity: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			assert.NoError(t, err)
		})
	}
}
