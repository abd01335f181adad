package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/shared/models"
)

var _ domain.InventoryPort = (*InventoryClient)(nil)

// InventoryClient implements InventoryPort against the event service
type InventoryClient struct {
	http *jsonClient
}

// NewInventoryClient creates a new InventoryClient
func NewInventoryClient(baseURL string, timeout time.Duration) *InventoryClient {
	return &InventoryClient{http: newJSONClient("event-service", baseURL, timeout)}
}

type ticketTypeResponse struct {
	ID                int64   `json:"id"`
	EventID           int64   `json:"eventoId"`
	Name              string  `json:"nombre"`
	Price             float64 `json:"precio"`
	AvailableQuantity int     `json:"cantidadDisponible"`
}

type eventResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"nombre"`
	EventDate string `json:"fechaEvento"`
}

type quantityRequest struct {
	Quantity int `json:"cantidad"`
}

type stockConflictResponse struct {
	Message           string `json:"mensaje"`
	AvailableQuantity *int   `json:"cantidadDisponible"`
}

func (c *InventoryClient) GetTicketType(ctx context.Context, id int64) (*domain.TicketTypeSnapshot, error) {
	var resp ticketTypeResponse
	err := c.http.call(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/eventos/tipos-entrada/%d", id),
	}, &resp)
	if err != nil {
		return nil, err
	}

	price, err := models.NewMoneyFromFloat(resp.Price)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid price for ticket type %d", id)
	}

	return &domain.TicketTypeSnapshot{
		ID:                id,
		EventID:           resp.EventID,
		Name:              resp.Name,
		UnitPrice:         price,
		AvailableQuantity: resp.AvailableQuantity,
	}, nil
}

func (c *InventoryClient) GetEvent(ctx context.Context, id int64) (*domain.EventDetails, error) {
	var resp eventResponse
	err := c.http.call(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/eventos/%d", id),
	}, &resp)
	if err != nil {
		return nil, err
	}

	event := &domain.EventDetails{ID: id, Name: resp.Name}
	if resp.EventDate != "" {
		date, err := parseServiceTime(resp.EventDate)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid date for event %d", id)
		}
		event.Date = date
	}

	return event, nil
}

// DecreaseQuantity reserves stock. The event service answers 409 when the
// floor check fails.
func (c *InventoryClient) DecreaseQuantity(ctx context.Context, adj domain.StockAdjustment) error {
	req := request{
		method:         http.MethodPut,
		path:           fmt.Sprintf("/api/eventos/tipos-entrada/%d/decrease", adj.TicketTypeID),
		body:           quantityRequest{Quantity: adj.Quantity},
		idempotencyKey: adj.IdempotencyKey,
	}

	resp, err := c.http.do(ctx, req)
	if err != nil {
		return err
	}

	switch {
	case resp.ok():
		return nil
	case resp.statusCode == http.StatusConflict:
		return insufficientStock(resp.body, adj.Quantity)
	default:
		return c.http.statusError(req, resp)
	}
}

// IncreaseQuantity gives reserved stock back
func (c *InventoryClient) IncreaseQuantity(ctx context.Context, adj domain.StockAdjustment) error {
	return c.http.call(ctx, request{
		method:         http.MethodPut,
		path:           fmt.Sprintf("/api/eventos/tipos-entrada/%d/increase", adj.TicketTypeID),
		body:           quantityRequest{Quantity: adj.Quantity},
		idempotencyKey: adj.IdempotencyKey,
	}, nil)
}

func insufficientStock(body []byte, requested int) error {
	var conflict stockConflictResponse
	if err := json.Unmarshal(body, &conflict); err != nil || conflict.AvailableQuantity == nil {
		return errors.Wrapf(domain.ErrInsufficientStock, "reservation of %d refused", requested)
	}

	return &domain.InsufficientStockError{
		Available: *conflict.AvailableQuantity,
		Requested: requested,
	}
}
