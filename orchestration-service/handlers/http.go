package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/application"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"go.uber.org/zap"
)

// OrchestrationHandlers contains the orchestration HTTP handlers
type OrchestrationHandlers struct {
	purchaseTicket      *application.PurchaseTicket
	registerUser        *application.RegisterUser
	getUserTickets      *application.GetUserTickets
	listReconciliations *application.ListReconciliationCases
	getAuditTrail       *application.GetSagaAuditTrail
	logger              *zap.Logger
}

// NewOrchestrationHandlers creates new orchestration handlers
func NewOrchestrationHandlers(
	purchaseTicket *application.PurchaseTicket,
	registerUser *application.RegisterUser,
	getUserTickets *application.GetUserTickets,
	listReconciliations *application.ListReconciliationCases,
	getAuditTrail *application.GetSagaAuditTrail,
	logger *zap.Logger,
) *OrchestrationHandlers {
	return &OrchestrationHandlers{
		purchaseTicket:      purchaseTicket,
		registerUser:        registerUser,
		getUserTickets:      getUserTickets,
		listReconciliations: listReconciliations,
		getAuditTrail:       getAuditTrail,
		logger:              logger.Named("http"),
	}
}

// purchaseTicketRequest also accepts the field names of the legacy web client
type purchaseTicketRequest struct {
	TicketTypeID       int64                `json:"ticketTypeId"`
	Quantity           int                  `json:"quantity"`
	LegacyTicketTypeID int64                `json:"tipoEntradaId"`
	LegacyQuantity     int                  `json:"cantidad"`
	PaymentMethod      domain.PaymentMethod `json:"paymentMethod"`
}

func (r purchaseTicketRequest) toDomain() domain.PurchaseRequest {
	req := domain.PurchaseRequest{
		TicketTypeID:  r.TicketTypeID,
		Quantity:      r.Quantity,
		PaymentMethod: r.PaymentMethod,
	}
	if req.TicketTypeID == 0 {
		req.TicketTypeID = r.LegacyTicketTypeID
	}
	if req.Quantity == 0 {
		req.Quantity = r.LegacyQuantity
	}
	return req
}

// PurchaseTicket handles ticket purchase requests
func (h *OrchestrationHandlers) PurchaseTicket(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	var body purchaseTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := h.purchaseTicket.Execute(r.Context(), &application.PurchaseTicketCommand{
		UserID:    identity.UserID,
		UserEmail: identity.Email,
		Request:   body.toDomain(),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	if outcome.Succeeded() {
		writeJSON(w, http.StatusOK, purchaseResponse{
			SagaID:         outcome.SagaID.String(),
			ticketResponse: toTicketResponse(outcome.Ticket),
		})
		return
	}

	message := h.failureMessage(outcome)

	writeJSON(w, failureStatus(outcome.FailureKind), failureResponse{
		Result:  outcome.Result,
		Message: message,
		SagaID:  outcome.SagaID.String(),
	})
}

// failureMessage logs the reasons that are not shown to the user
func (h *OrchestrationHandlers) failureMessage(outcome *domain.SagaOutcome) string {
	message, public := failureMessage(outcome)
	if !public {
		h.logger.Error("saga failed",
			zap.String("saga_id", outcome.SagaID.String()),
			zap.String("failure_kind", string(outcome.FailureKind)),
			zap.String("reason", outcome.FailureReason),
			zap.Bool("requires_manual_reconciliation", outcome.RequiresManualReconciliation),
		)
	}
	return message
}

// RegisterUser handles user registration requests
func (h *OrchestrationHandlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := h.registerUser.Execute(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if !outcome.Succeeded() {
		writeJSON(w, failureStatus(outcome.FailureKind), registerResponse{
			Success: false,
			Message: h.failureMessage(outcome),
			SagaID:  outcome.SagaID.String(),
		})
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{
		Success: true,
		Message: "Usuario registrado exitosamente",
		SagaID:  outcome.SagaID.String(),
		UserID:  outcome.User.ID,
		Name:    outcome.User.Name,
		Email:   outcome.User.Email,
		Token:   outcome.User.Token,
	})
}

// MyTickets lists the tickets of the calling user
func (h *OrchestrationHandlers) MyTickets(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	tickets, err := h.getUserTickets.Execute(r.Context(), identity.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response := make([]ticketResponse, len(tickets))
	for i, ticket := range tickets {
		response[i] = toTicketResponse(ticket)
	}

	writeJSON(w, http.StatusOK, response)
}

// ListReconciliations returns the operator queue
func (h *OrchestrationHandlers) ListReconciliations(w http.ResponseWriter, r *http.Request) {
	query := application.ListReconciliationCasesQuery{
		Status: domain.ReconciliationStatus(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		query.Limit = limit
	}

	cases, err := h.listReconciliations.Execute(r.Context(), query)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if cases == nil {
		cases = []*domain.ReconciliationCase{}
	}
	writeJSON(w, http.StatusOK, cases)
}

// SagaAuditTrail returns every transition recorded for a saga
func (h *OrchestrationHandlers) SagaAuditTrail(w http.ResponseWriter, r *http.Request) {
	history, err := h.getAuditTrail.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

func (h *OrchestrationHandlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

// RegisterRoutes registers orchestration routes
func (h *OrchestrationHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/orchestration", func(r chi.Router) {
		r.Post("/register", h.RegisterUser)

		r.Group(func(r chi.Router) {
			r.Use(RequireUser)
			r.Get("/my-tickets", h.MyTickets)
			r.With(RequireEmail).Post("/purchase-ticket", h.PurchaseTicket)
		})

		r.Get("/reconciliations", h.ListReconciliations)
		r.Get("/sagas/{id}/audit", h.SagaAuditTrail)
	})
}
