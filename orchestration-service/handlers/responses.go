package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ticketera/ticket-platform/orchestration-service/domain"
)

const (
	reconciliationMessage = "No pudimos completar tu compra. Nuestro equipo revisará la operación; conserva la referencia."
	unavailableMessage    = "El servicio no está disponible en este momento. Intenta nuevamente más tarde."
)

// ticketResponse keeps the field names the web client reads
type ticketResponse struct {
	TicketID       string  `json:"ticketId"`
	EventName      string  `json:"eventoNombre"`
	TicketTypeName string  `json:"tipoEntrada"`
	Quantity       int     `json:"cantidad"`
	UnitPrice      float64 `json:"precioUnitario"`
	Total          float64 `json:"total"`
	PaymentID      string  `json:"paymentId"`
	Status         string  `json:"estado"`
	PurchasedAt    string  `json:"fechaCompra,omitempty"`
}

type purchaseResponse struct {
	SagaID string `json:"sagaId"`
	ticketResponse
}

type failureResponse struct {
	Result  domain.SagaResult `json:"estado"`
	Message string            `json:"mensaje"`
	SagaID  string            `json:"sagaId,omitempty"`
}

type registerResponse struct {
	Success bool   `json:"exitoso"`
	Message string `json:"mensaje"`
	SagaID  string `json:"sagaId,omitempty"`
	UserID  int64  `json:"usuarioId,omitempty"`
	Name    string `json:"nombre,omitempty"`
	Email   string `json:"email,omitempty"`
	Token   string `json:"token,omitempty"`
}

type messageResponse struct {
	Message string `json:"mensaje"`
}

var ticketStatusNames = map[domain.TicketStatus]string{
	domain.TicketPaid:      "PAGADO",
	domain.TicketCancelled: "CANCELADO",
}

func toTicketResponse(ticket *domain.Ticket) ticketResponse {
	status, ok := ticketStatusNames[ticket.Status]
	if !ok {
		status = string(ticket.Status)
	}

	resp := ticketResponse{
		TicketID:       ticket.TicketID,
		EventName:      ticket.EventName,
		TicketTypeName: ticket.TicketTypeName,
		Quantity:       ticket.Quantity,
		UnitPrice:      ticket.UnitPrice.Float(),
		Total:          ticket.TotalPaid.Float(),
		PaymentID:      ticket.PaymentID,
		Status:         status,
	}
	if !ticket.PurchasedAt.IsZero() {
		resp.PurchasedAt = ticket.PurchasedAt.Format(time.RFC3339)
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// failureStatus maps a failed saga to the HTTP status of the entry point
func failureStatus(kind domain.FailureKind) int {
	switch kind {
	case domain.FailureInvalidRequest:
		return http.StatusBadRequest
	case domain.FailureNotFound:
		return http.StatusNotFound
	case domain.FailurePaymentRejected:
		return http.StatusPaymentRequired
	case domain.FailureInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// failureMessage is what the user sees for a failed saga. Only business
// failures keep their reason; the rest get a generic message and the caller
// logs the reason.
func failureMessage(outcome *domain.SagaOutcome) (message string, public bool) {
	if outcome.RequiresManualReconciliation {
		return reconciliationMessage, false
	}

	switch outcome.FailureKind {
	case domain.FailureInvalidRequest,
		domain.FailureNotFound,
		domain.FailurePaymentRejected,
		domain.FailureInsufficientStock:
		return outcome.FailureReason, true
	default:
		return unavailableMessage, false
	}
}
