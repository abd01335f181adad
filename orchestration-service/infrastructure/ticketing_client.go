package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/shared/models"
)

var _ domain.TicketingPort = (*TicketingClient)(nil)

// TicketingClient implements TicketingPort against the ticket service
type TicketingClient struct {
	http *jsonClient
}

// NewTicketingClient creates a new TicketingClient
func NewTicketingClient(baseURL string, timeout time.Duration) *TicketingClient {
	return &TicketingClient{http: newJSONClient("ticket-service", baseURL, timeout)}
}

type createTicketRequest struct {
	TicketID       string  `json:"ticketId"`
	UserID         int64   `json:"usuarioId"`
	TicketTypeID   int64   `json:"tipoEntradaId"`
	EventName      string  `json:"eventoNombre"`
	TicketTypeName string  `json:"tipoEntradaNombre"`
	Quantity       int     `json:"cantidad"`
	UnitPrice      float64 `json:"precioUnitario"`
	PaymentID      string  `json:"paymentId"`
}

type ticketResponse struct {
	TicketID       string  `json:"ticketId"`
	UserID         int64   `json:"usuarioId"`
	TicketTypeID   int64   `json:"tipoEntradaId"`
	EventName      string  `json:"eventoNombre"`
	TicketTypeName string  `json:"tipoEntradaNombre"`
	TicketType     string  `json:"tipoEntrada"`
	Quantity       int     `json:"cantidad"`
	UnitPrice      float64 `json:"precioUnitario"`
	TotalPaid      float64 `json:"totalPagado"`
	Total          float64 `json:"total"`
	PaymentID      string  `json:"paymentId"`
	Status         string  `json:"estado"`
	PurchasedAt    string  `json:"fechaCompra"`
}

var ticketStatuses = map[string]domain.TicketStatus{
	"PAGADO":    domain.TicketPaid,
	"CANCELADO": domain.TicketCancelled,
}

func (c *TicketingClient) CreateTicket(ctx context.Context, req domain.CreateTicketRequest) (*domain.Ticket, error) {
	var resp ticketResponse
	err := c.http.call(ctx, request{
		method: http.MethodPost,
		path:   "/api/tickets",
		body: createTicketRequest{
			TicketID:       req.TicketID,
			UserID:         req.UserID,
			TicketTypeID:   req.TicketTypeID,
			EventName:      req.EventName,
			TicketTypeName: req.TicketTypeName,
			Quantity:       req.Quantity,
			UnitPrice:      req.UnitPrice.Float(),
			PaymentID:      req.PaymentID,
		},
		idempotencyKey: req.IdempotencyKey,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.TicketID == "" {
		return nil, errors.New("ticket service returned no ticket id")
	}

	return resp.toDomain()
}

func (c *TicketingClient) GetTicketsByUser(ctx context.Context, userID int64) ([]*domain.Ticket, error) {
	var resp []ticketResponse
	err := c.http.call(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/tickets/user/%d", userID),
	}, &resp)
	if err != nil {
		return nil, err
	}

	tickets := make([]*domain.Ticket, 0, len(resp))
	for _, r := range resp {
		ticket, err := r.toDomain()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ticket %s", r.TicketID)
		}
		if ticket.UserID == 0 {
			ticket.UserID = userID
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

func (r ticketResponse) toDomain() (*domain.Ticket, error) {
	unitPrice, err := models.NewMoneyFromFloat(r.UnitPrice)
	if err != nil {
		return nil, errors.Wrap(err, "invalid unit price")
	}

	total := r.TotalPaid
	if total == 0 {
		total = r.Total
	}
	totalPaid, err := models.NewMoneyFromFloat(total)
	if err != nil {
		return nil, errors.Wrap(err, "invalid total")
	}
	if totalPaid.IsZero() {
		totalPaid = unitPrice.Multiply(r.Quantity)
	}

	status, ok := ticketStatuses[r.Status]
	if !ok {
		status = domain.TicketStatus(r.Status)
	}
	if r.Status == "" {
		status = domain.TicketPaid
	}

	typeName := r.TicketTypeName
	if typeName == "" {
		typeName = r.TicketType
	}

	ticket := &domain.Ticket{
		TicketID:       r.TicketID,
		UserID:         r.UserID,
		TicketTypeID:   r.TicketTypeID,
		EventName:      r.EventName,
		TicketTypeName: typeName,
		Quantity:       r.Quantity,
		UnitPrice:      unitPrice,
		TotalPaid:      totalPaid,
		PaymentID:      r.PaymentID,
		Status:         status,
	}

	if r.PurchasedAt != "" {
		purchasedAt, err := parseServiceTime(r.PurchasedAt)
		if err != nil {
			return nil, errors.Wrap(err, "invalid purchase date")
		}
		ticket.PurchasedAt = purchasedAt
	}

	return ticket, nil
}
