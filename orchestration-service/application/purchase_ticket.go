package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/shared/models"
	"github.com/ticketera/ticket-platform/shared/saga"
	"github.com/ticketera/ticket-platform/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const PurchaseSagaName = "ticket-purchase"

// Step names of the purchase saga, as they appear in the audit trail
const (
	StepFetchTicketType       = "fetch-ticket-type"
	StepValidateStock         = "validate-stock"
	StepFetchEvent            = "fetch-event"
	StepReserveStock          = "reserve-stock"
	StepAuthorizePayment      = "authorize-payment"
	StepCreateTicket          = "create-ticket"
	StepNotifyPurchase        = "notify-purchase"
	StepNotifyPaymentRejected = "notify-payment-rejected"
)

const defaultNotificationTimeout = 3 * time.Second

// PurchaseTicketCommand represents the command to buy tickets
type PurchaseTicketCommand struct {
	UserID    int64
	UserEmail string
	Request   domain.PurchaseRequest
}

// PurchaseTicket runs the ticket purchase saga
type PurchaseTicket struct {
	inventory     domain.InventoryPort
	payments      domain.PaymentPort
	ticketing     domain.TicketingPort
	notifications domain.NotificationPort
	orchestrator  *saga.Orchestrator
	alerts        *ReconciliationAlerter
	logger        *zap.Logger

	notificationTimeout time.Duration
}

type PurchaseTicketOption func(*PurchaseTicket)

// WithNotificationTimeout bounds the best-effort notification calls
func WithNotificationTimeout(timeout time.Duration) PurchaseTicketOption {
	return func(uc *PurchaseTicket) {
		if timeout > 0 {
			uc.notificationTimeout = timeout
		}
	}
}

// NewPurchaseTicket creates a new PurchaseTicket use case
func NewPurchaseTicket(
	inventory domain.InventoryPort,
	payments domain.PaymentPort,
	ticketing domain.TicketingPort,
	notifications domain.NotificationPort,
	orchestrator *saga.Orchestrator,
	alerts *ReconciliationAlerter,
	logger *zap.Logger,
	opts ...PurchaseTicketOption,
) *PurchaseTicket {
	uc := &PurchaseTicket{
		inventory:           inventory,
		payments:            payments,
		ticketing:           ticketing,
		notifications:       notifications,
		orchestrator:        orchestrator,
		alerts:              alerts,
		logger:              logger.Named("purchase"),
		notificationTimeout: defaultNotificationTimeout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Execute validates the command and drives the saga to a terminal state.
// The error is only set for requests rejected before the saga starts.
func (uc *PurchaseTicket) Execute(ctx context.Context, cmd *PurchaseTicketCommand) (*domain.SagaOutcome, error) {
	buyer := domain.Buyer{UserID: cmd.UserID, Email: cmd.UserEmail}
	if err := buyer.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid command")
	}
	if err := cmd.Request.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid command")
	}

	run := &purchaseRun{
		uc:          uc,
		sagaID:      models.GenerateUUID(),
		buyer:       buyer,
		request:     cmd.Request,
		reservation: domain.NewReservationEffect(cmd.Request.TicketTypeID, cmd.Request.Quantity),
	}

	ctx, span := telemetry.StartSpan(ctx, "PurchaseTicket.Execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("saga.id", run.sagaID.String()),
		attribute.Int64("ticket_type.id", cmd.Request.TicketTypeID),
		attribute.Int("quantity", cmd.Request.Quantity),
	)

	sagaOutcome, err := uc.orchestrator.Run(ctx, run.sagaID, run.definition())
	if err != nil {
		return nil, errors.Wrap(err, "failed to run purchase saga")
	}

	outcome := run.outcome(sagaOutcome)

	if outcome.RequiresManualReconciliation {
		uc.alerts.Raise(ctx, run.reconciliationCase(sagaOutcome))
	}

	telemetry.RecordCounter(ctx, "ticket_purchases_total", "Ticket purchase sagas by result", 1,
		attribute.String("result", string(outcome.Result)),
		attribute.String("failure_kind", string(outcome.FailureKind)),
		attribute.Bool("manual_reconciliation", outcome.RequiresManualReconciliation),
	)

	return outcome, nil
}

// purchaseRun holds the progress of one purchase saga instance
type purchaseRun struct {
	uc      *PurchaseTicket
	sagaID  models.ID
	buyer   domain.Buyer
	request domain.PurchaseRequest

	ticketType  *domain.TicketTypeSnapshot
	event       *domain.EventDetails
	reservation *domain.ReservationEffect
	amount      models.Money
	payment     *domain.PaymentOutcome
	ticket      *domain.Ticket
}

func (r *purchaseRun) definition() *saga.Definition {
	return &saga.Definition{
		Name: PurchaseSagaName,
		Steps: []saga.Step{
			{Name: StepFetchTicketType, Tag: saga.TagReadOnly, Execute: r.fetchTicketType},
			{Name: StepValidateStock, Tag: saga.TagReadOnly, Execute: r.validateStock},
			{Name: StepFetchEvent, Tag: saga.TagReadOnly, Execute: r.fetchEvent},
			{
				Name:             StepReserveStock,
				Tag:              saga.TagCompensable,
				Execute:          r.reserveStock,
				Compensate:       r.releaseStock,
				CompensationOwed: r.reservation.Active,
			},
			{Name: StepAuthorizePayment, Tag: saga.TagCritical, Execute: r.authorizePayment},
			{Name: StepCreateTicket, Tag: saga.TagCritical, Execute: r.createTicket},
			{
				Name:    StepNotifyPurchase,
				Tag:     saga.TagBestEffort,
				Execute: r.notifyPurchase,
				Timeout: r.uc.notificationTimeout,
			},
		},
		OnFailure: r.onFailure,
	}
}

func (r *purchaseRun) fetchTicketType(ctx context.Context) error {
	ticketType, err := r.uc.inventory.GetTicketType(ctx, r.request.TicketTypeID)
	if err != nil {
		return errors.Wrap(err, "No se pudo obtener el tipo de entrada")
	}

	r.ticketType = ticketType
	return nil
}

func (r *purchaseRun) validateStock(_ context.Context) error {
	if !r.ticketType.HasStock(r.request.Quantity) {
		return &domain.InsufficientStockError{
			Available: r.ticketType.AvailableQuantity,
			Requested: r.request.Quantity,
		}
	}
	return nil
}

func (r *purchaseRun) fetchEvent(ctx context.Context) error {
	event, err := r.uc.inventory.GetEvent(ctx, r.ticketType.EventID)
	if err != nil {
		return errors.Wrap(err, "No se pudo obtener el evento")
	}

	r.event = event
	return nil
}

func (r *purchaseRun) reserveStock(ctx context.Context) error {
	err := r.uc.inventory.DecreaseQuantity(ctx, domain.StockAdjustment{
		TicketTypeID:   r.request.TicketTypeID,
		Quantity:       r.request.Quantity,
		IdempotencyKey: r.idempotencyKey("reserve"),
	})
	if err != nil {
		return errors.Wrap(err, "No se pudo reservar las entradas")
	}

	return r.reservation.Activate()
}

func (r *purchaseRun) releaseStock(ctx context.Context) error {
	err := r.uc.inventory.IncreaseQuantity(ctx, domain.StockAdjustment{
		TicketTypeID:   r.request.TicketTypeID,
		Quantity:       r.request.Quantity,
		IdempotencyKey: r.idempotencyKey("release"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to release reserved stock")
	}

	return r.reservation.Compensate()
}

func (r *purchaseRun) authorizePayment(ctx context.Context) error {
	r.amount = r.ticketType.UnitPrice.Multiply(r.request.Quantity)

	payment, err := r.uc.payments.AuthorizePayment(ctx, domain.PaymentAuthorization{
		Amount:         r.amount,
		PaymentMethod:  r.request.PaymentMethod,
		IdempotencyKey: r.idempotencyKey("payment"),
	})
	if err != nil {
		return errors.Wrap(err, "Error procesando pago")
	}

	r.payment = payment
	if !payment.Approved() {
		return &domain.PaymentRejectedError{PaymentID: payment.PaymentID, Reason: payment.Reason}
	}

	return nil
}

func (r *purchaseRun) createTicket(ctx context.Context) error {
	ticketID, err := domain.NewTicketID()
	if err != nil {
		return &domain.TicketNotCreatedError{PaymentID: r.payment.PaymentID, Err: err}
	}

	ticket, err := r.uc.ticketing.CreateTicket(ctx, domain.CreateTicketRequest{
		TicketID:       ticketID,
		UserID:         r.buyer.UserID,
		TicketTypeID:   r.request.TicketTypeID,
		EventName:      r.event.Name,
		TicketTypeName: r.ticketType.Name,
		Quantity:       r.request.Quantity,
		UnitPrice:      r.ticketType.UnitPrice,
		PaymentID:      r.payment.PaymentID,
		IdempotencyKey: r.idempotencyKey("ticket"),
	})
	if err != nil {
		return &domain.TicketNotCreatedError{PaymentID: r.payment.PaymentID, Err: err}
	}

	r.ticket = ticket
	if err := r.reservation.Retire(); err != nil {
		r.uc.logger.Error("reservation could not be retired",
			zap.String("saga_id", r.sagaID.String()),
			zap.Error(err),
		)
	}

	return nil
}

func (r *purchaseRun) notifyPurchase(ctx context.Context) error {
	return r.uc.notifications.SendNotification(ctx,
		domain.TicketPurchasedNotification(r.buyer.Email, r.ticket, *r.event))
}

func (r *purchaseRun) onFailure(failure *saga.Failure) []saga.Step {
	var rejected *domain.PaymentRejectedError
	if !errors.As(failure.Err, &rejected) {
		return nil
	}

	return []saga.Step{{
		Name:    StepNotifyPaymentRejected,
		Timeout: r.uc.notificationTimeout,
		Execute: func(ctx context.Context) error {
			eventName := ""
			if r.event != nil {
				eventName = r.event.Name
			}
			return r.uc.notifications.SendNotification(ctx,
				domain.PaymentRejectedNotification(r.buyer.Email, eventName, r.amount, rejected.Reason))
		},
	}}
}

func (r *purchaseRun) idempotencyKey(operation string) string {
	return r.sagaID.String() + ":" + operation
}

func (r *purchaseRun) outcome(result *saga.Outcome) *domain.SagaOutcome {
	if result.Succeeded() {
		return &domain.SagaOutcome{
			SagaID: r.sagaID,
			Result: domain.SagaSuccess,
			Ticket: r.ticket,
		}
	}

	return &domain.SagaOutcome{
		SagaID:                       r.sagaID,
		Result:                       domain.SagaFailed,
		FailureReason:                result.Err().Error(),
		FailureKind:                  classifyFailure(result.Err()),
		RequiresManualReconciliation: result.RequiresManualReconciliation,
	}
}

func (r *purchaseRun) reconciliationCase(result *saga.Outcome) *domain.ReconciliationCase {
	reason := result.Err().Error()
	for _, err := range result.CompensationErrors {
		reason += "; " + err.Error()
	}

	c := &domain.ReconciliationCase{
		SagaID:       r.sagaID,
		Saga:         PurchaseSagaName,
		UserID:       r.buyer.UserID,
		TicketTypeID: r.request.TicketTypeID,
		Quantity:     r.request.Quantity,
		Amount:       r.amount,
		FailedStep:   result.Failure.Step,
		Reason:       reason,
		Status:       domain.ReconciliationOpen,
		CreatedAt:    time.Now().UTC(),
	}
	if r.payment != nil {
		c.PaymentID = r.payment.PaymentID
	}

	return c
}

// classifyFailure maps a step error to the kind the entry point reports
func classifyFailure(err error) domain.FailureKind {
	switch {
	case err == nil:
		return domain.FailureNone
	case errors.Is(err, domain.ErrInsufficientStock):
		return domain.FailureInsufficientStock
	case errors.Is(err, domain.ErrPaymentRejected):
		return domain.FailurePaymentRejected
	case errors.Is(err, domain.ErrTicketNotCreated):
		return domain.FailureTicketNotCreated
	case errors.Is(err, domain.ErrNotFound):
		return domain.FailureNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		return domain.FailureInvalidRequest
	default:
		return domain.FailureCollaborator
	}
}
