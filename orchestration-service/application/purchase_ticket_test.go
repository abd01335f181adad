package application

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/orchestration-service/mocks"
	"github.com/ticketera/ticket-platform/shared/events"
	"github.com/ticketera/ticket-platform/shared/models"
	"github.com/ticketera/ticket-platform/shared/saga"
	"go.uber.org/zap"
)

const (
	testUserID    = int64(42)
	testUserEmail = "ana@example.com"
	testPaymentID = "PAY-ABC12345"
)

func ticketTypeFixture(unitPrice int64, available int) *domain.TicketTypeSnapshot {
	return &domain.TicketTypeSnapshot{
		ID:                7,
		EventID:           3,
		Name:              "Campo",
		UnitPrice:         models.NewMoney(unitPrice),
		AvailableQuantity: available,
	}
}

func eventFixture() *domain.EventDetails {
	return &domain.EventDetails{ID: 3, Name: "Rock Fest", Date: time.Date(2026, 12, 1, 21, 0, 0, 0, time.UTC)}
}

// ticketFromRequest mimics the ticketing service persisting the request
func ticketFromRequest(_ context.Context, req domain.CreateTicketRequest) (*domain.Ticket, error) {
	return &domain.Ticket{
		TicketID:       req.TicketID,
		UserID:         req.UserID,
		TicketTypeID:   req.TicketTypeID,
		EventName:      req.EventName,
		TicketTypeName: req.TicketTypeName,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		TotalPaid:      req.UnitPrice.Multiply(req.Quantity),
		PaymentID:      req.PaymentID,
		Status:         domain.TicketPaid,
		PurchasedAt:    time.Now().UTC(),
	}, nil
}

func adjustment(quantity int, operation string) interface{} {
	return mock.MatchedBy(func(adj domain.StockAdjustment) bool {
		return adj.TicketTypeID == 7 && adj.Quantity == quantity && strings.HasSuffix(adj.IdempotencyKey, ":"+operation)
	})
}

func notificationOfType(kind domain.NotificationType) interface{} {
	return mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == kind && n.Recipient == testUserEmail
	})
}

func reconciliationEvent() interface{} {
	return mock.MatchedBy(func(evt *events.Event) bool {
		return evt.Topic == events.ReconciliationRequiredTopic
	})
}

type purchaseMocks struct {
	inventory     *mocks.MockInventoryPort
	payments      *mocks.MockPaymentPort
	ticketing     *mocks.MockTicketingPort
	notifications *mocks.MockNotificationPort
	publisher     *mocks.MockPublisher
}

func newPurchaseMocks(t *testing.T) *purchaseMocks {
	return &purchaseMocks{
		inventory:     mocks.NewMockInventoryPort(t),
		payments:      mocks.NewMockPaymentPort(t),
		ticketing:     mocks.NewMockTicketingPort(t),
		notifications: mocks.NewMockNotificationPort(t),
		publisher:     mocks.NewMockPublisher(t),
	}
}

func newPurchaseTicket(m *purchaseMocks, inventory domain.InventoryPort, recorder saga.AuditRecorder) *PurchaseTicket {
	logger := zap.NewNop()
	return NewPurchaseTicket(
		inventory,
		m.payments,
		m.ticketing,
		m.notifications,
		saga.NewOrchestrator(recorder, logger, saga.WithStepTimeout(time.Second)),
		NewReconciliationAlerter(m.publisher, logger),
		logger,
		WithNotificationTimeout(100*time.Millisecond),
	)
}

func TestPurchaseTicket_Execute(t *testing.T) {
	approved := &domain.PaymentOutcome{PaymentID: testPaymentID, Status: domain.PaymentApproved, Amount: models.NewMoney(10000)}
	// ticket handed out by the ticketing service in the notification failure case
	var issued *domain.Ticket

	tests := []struct {
		name           string
		quantity       int
		setupMocks     func(m *purchaseMocks)
		expectedResult domain.SagaResult
		expectedKind   domain.FailureKind
		expectedReason string
		expectedManual bool
		checkTicket    func(t *testing.T, ticket *domain.Ticket)
	}{
		{
			name:     "happy path",
			quantity: 2,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(5000, 10), nil).Once()
				m.inventory.EXPECT().GetEvent(mock.Anything, int64(3)).Return(eventFixture(), nil).Once()
				m.inventory.EXPECT().DecreaseQuantity(mock.Anything, adjustment(2, "reserve")).Return(nil).Once()
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.MatchedBy(func(auth domain.PaymentAuthorization) bool {
					return auth.Amount == models.NewMoney(10000) && strings.HasSuffix(auth.IdempotencyKey, ":payment")
				})).Return(approved, nil).Once()
				m.ticketing.EXPECT().CreateTicket(mock.Anything, mock.MatchedBy(func(req domain.CreateTicketRequest) bool {
					return req.PaymentID == testPaymentID &&
						req.UserID == testUserID &&
						req.EventName == "Rock Fest" &&
						req.TicketTypeName == "Campo" &&
						domain.IsValidTicketID(req.TicketID)
				})).RunAndReturn(ticketFromRequest).Once()
				m.notifications.EXPECT().SendNotification(mock.Anything, notificationOfType(domain.NotificationTicketPurchased)).Return(nil).Once()
			},
			expectedResult: domain.SagaSuccess,
			checkTicket: func(t *testing.T, ticket *domain.Ticket) {
				assert.Equal(t, models.NewMoney(10000), ticket.TotalPaid)
				assert.Equal(t, testPaymentID, ticket.PaymentID)
				assert.Equal(t, domain.TicketPaid, ticket.Status)
				assert.True(t, domain.IsValidTicketID(ticket.TicketID))
			},
		},
		{
			name:     "insufficient stock makes no mutating calls",
			quantity: 5,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(5000, 1), nil).Once()
			},
			expectedResult: domain.SagaFailed,
			expectedKind:   domain.FailureInsufficientStock,
			expectedReason: "Stock insuficiente. Disponibles: 1",
		},
		{
			name:     "payment rejected restores stock and notifies",
			quantity: 2,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(75000, 10), nil).Once()
				m.inventory.EXPECT().GetEvent(mock.Anything, int64(3)).Return(eventFixture(), nil).Once()
				m.inventory.EXPECT().DecreaseQuantity(mock.Anything, adjustment(2, "reserve")).Return(nil).Once()
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).Return(&domain.PaymentOutcome{
					PaymentID: "PAY-REJ00001",
					Status:    domain.PaymentRejected,
					Amount:    models.NewMoney(150000),
					Reason:    "Monto excede el límite permitido",
				}, nil).Once()
				m.inventory.EXPECT().IncreaseQuantity(mock.Anything, adjustment(2, "release")).Return(nil).Once()
				m.notifications.EXPECT().SendNotification(mock.Anything, notificationOfType(domain.NotificationPaymentRejected)).Return(nil).Once()
			},
			expectedResult: domain.SagaFailed,
			expectedKind:   domain.FailurePaymentRejected,
			expectedReason: "Pago rechazado: Monto excede el límite permitido",
		},
		{
			name:     "ticket creation failure after approved payment",
			quantity: 2,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(5000, 10), nil).Once()
				m.inventory.EXPECT().GetEvent(mock.Anything, int64(3)).Return(eventFixture(), nil).Once()
				m.inventory.EXPECT().DecreaseQuantity(mock.Anything, adjustment(2, "reserve")).Return(nil).Once()
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).Return(approved, nil).Once()
				m.ticketing.EXPECT().CreateTicket(mock.Anything, mock.Anything).Return(nil, errors.New("ticket-service unavailable")).Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					c, ok := evt.Data.(*domain.ReconciliationCase)
					return ok &&
						evt.Topic == events.ReconciliationRequiredTopic &&
						c.PaymentID == testPaymentID &&
						c.FailedStep == StepCreateTicket
				})).Return(nil).Once()
			},
			expectedResult: domain.SagaFailed,
			expectedKind:   domain.FailureTicketNotCreated,
			expectedReason: "Error crítico: pago procesado pero ticket no creado. Payment ID: PAY-ABC12345",
			expectedManual: true,
		},
		{
			name:     "failed compensation escalates to manual reconciliation",
			quantity: 2,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(75000, 10), nil).Once()
				m.inventory.EXPECT().GetEvent(mock.Anything, int64(3)).Return(eventFixture(), nil).Once()
				m.inventory.EXPECT().DecreaseQuantity(mock.Anything, adjustment(2, "reserve")).Return(nil).Once()
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).Return(&domain.PaymentOutcome{
					PaymentID: "PAY-REJ00002",
					Status:    domain.PaymentRejected,
					Reason:    "Fondos insuficientes",
				}, nil).Once()
				m.inventory.EXPECT().IncreaseQuantity(mock.Anything, adjustment(2, "release")).Return(errors.New("event-service timeout")).Once()
				m.notifications.EXPECT().SendNotification(mock.Anything, notificationOfType(domain.NotificationPaymentRejected)).Return(nil).Once()
				m.publisher.EXPECT().Publish(mock.Anything, reconciliationEvent()).Return(nil).Once()
			},
			expectedResult: domain.SagaFailed,
			expectedKind:   domain.FailurePaymentRejected,
			expectedReason: "Pago rechazado: Fondos insuficientes",
			expectedManual: true,
		},
		{
			name:     "payment port error compensates the reservation",
			quantity: 1,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(5000, 10), nil).Once()
				m.inventory.EXPECT().GetEvent(mock.Anything, int64(3)).Return(eventFixture(), nil).Once()
				m.inventory.EXPECT().DecreaseQuantity(mock.Anything, adjustment(1, "reserve")).Return(nil).Once()
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).Return(nil, errors.New("502 bad gateway")).Once()
				m.inventory.EXPECT().IncreaseQuantity(mock.Anything, adjustment(1, "release")).Return(nil).Once()
			},
			expectedResult: domain.SagaFailed,
			expectedKind:   domain.FailureCollaborator,
			expectedReason: "Error procesando pago: 502 bad gateway",
		},
		{
			name:     "reservation refused by inventory",
			quantity: 2,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(5000, 10), nil).Once()
				m.inventory.EXPECT().GetEvent(mock.Anything, int64(3)).Return(eventFixture(), nil).Once()
				m.inventory.EXPECT().DecreaseQuantity(mock.Anything, adjustment(2, "reserve")).
					Return(&domain.InsufficientStockError{Available: 1, Requested: 2}).Once()
			},
			expectedResult: domain.SagaFailed,
			expectedKind:   domain.FailureInsufficientStock,
			expectedReason: "No se pudo reservar las entradas: Stock insuficiente. Disponibles: 1",
		},
		{
			name:     "unknown ticket type",
			quantity: 1,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(nil, errors.Wrap(domain.ErrNotFound, "ticket type 7")).Once()
			},
			expectedResult: domain.SagaFailed,
			expectedKind:   domain.FailureNotFound,
			expectedReason: "No se pudo obtener el tipo de entrada",
		},
		{
			name:     "event lookup failure aborts before reserving",
			quantity: 1,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(5000, 10), nil).Once()
				m.inventory.EXPECT().GetEvent(mock.Anything, int64(3)).Return(nil, errors.New("connection refused")).Once()
			},
			expectedResult: domain.SagaFailed,
			expectedKind:   domain.FailureCollaborator,
			expectedReason: "No se pudo obtener el evento",
		},
		{
			name:     "notification failure keeps the sale",
			quantity: 2,
			setupMocks: func(m *purchaseMocks) {
				m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(5000, 10), nil).Once()
				m.inventory.EXPECT().GetEvent(mock.Anything, int64(3)).Return(eventFixture(), nil).Once()
				m.inventory.EXPECT().DecreaseQuantity(mock.Anything, adjustment(2, "reserve")).Return(nil).Once()
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).Return(approved, nil).Once()
				m.ticketing.EXPECT().CreateTicket(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, req domain.CreateTicketRequest) (*domain.Ticket, error) {
						issued, _ = ticketFromRequest(ctx, req)
						copied := *issued
						return &copied, nil
					}).Once()
				m.notifications.EXPECT().SendNotification(mock.Anything, mock.Anything).Return(errors.New("sns down")).Once()
			},
			expectedResult: domain.SagaSuccess,
			checkTicket: func(t *testing.T, ticket *domain.Ticket) {
				require.NotNil(t, issued)
				assert.Equal(t, *issued, *ticket)
				assert.Equal(t, models.NewMoney(10000), ticket.TotalPaid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPurchaseMocks(t)
			tt.setupMocks(m)

			uc := newPurchaseTicket(m, m.inventory, nil)

			outcome, err := uc.Execute(context.Background(), &PurchaseTicketCommand{
				UserID:    testUserID,
				UserEmail: testUserEmail,
				Request:   domain.PurchaseRequest{TicketTypeID: 7, Quantity: tt.quantity},
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, outcome.Result)
			assert.Equal(t, tt.expectedKind, outcome.FailureKind)
			assert.Equal(t, tt.expectedManual, outcome.RequiresManualReconciliation)
			assert.False(t, outcome.SagaID.IsZero())

			if tt.expectedReason != "" {
				assert.Contains(t, outcome.FailureReason, tt.expectedReason)
			}
			if tt.checkTicket != nil {
				require.NotNil(t, outcome.Ticket)
				tt.checkTicket(t, outcome.Ticket)
			} else {
				assert.Nil(t, outcome.Ticket)
			}
		})
	}
}

func TestPurchaseTicket_Execute_InvalidCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  *PurchaseTicketCommand
	}{
		{name: "missing user id", cmd: &PurchaseTicketCommand{UserEmail: testUserEmail, Request: domain.PurchaseRequest{TicketTypeID: 7, Quantity: 1}}},
		{name: "missing email", cmd: &PurchaseTicketCommand{UserID: testUserID, Request: domain.PurchaseRequest{TicketTypeID: 7, Quantity: 1}}},
		{name: "zero quantity", cmd: &PurchaseTicketCommand{UserID: testUserID, UserEmail: testUserEmail, Request: domain.PurchaseRequest{TicketTypeID: 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPurchaseMocks(t)
			uc := newPurchaseTicket(m, m.inventory, nil)

			outcome, err := uc.Execute(context.Background(), tt.cmd)

			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
			assert.Nil(t, outcome)
		})
	}
}

func TestPurchaseTicket_Execute_AuditTrail(t *testing.T) {
	m := newPurchaseMocks(t)
	m.inventory.EXPECT().GetTicketType(mock.Anything, int64(7)).Return(ticketTypeFixture(5000, 10), nil).Once()
	m.inventory.EXPECT().GetEvent(mock.Anything, int64(3)).Return(eventFixture(), nil).Once()
	m.inventory.EXPECT().DecreaseQuantity(mock.Anything, mock.Anything).Return(nil).Once()
	m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).
		Return(&domain.PaymentOutcome{PaymentID: testPaymentID, Status: domain.PaymentApproved}, nil).Once()
	m.ticketing.EXPECT().CreateTicket(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
	m.publisher.EXPECT().Publish(mock.Anything, reconciliationEvent()).Return(errors.New("sns down")).Once()

	recorder := saga.NewMemoryRecorder()
	uc := newPurchaseTicket(m, m.inventory, recorder)

	outcome, err := uc.Execute(context.Background(), &PurchaseTicketCommand{
		UserID:    testUserID,
		UserEmail: testUserEmail,
		Request:   domain.PurchaseRequest{TicketTypeID: 7, Quantity: 1},
	})
	require.NoError(t, err)
	assert.True(t, outcome.RequiresManualReconciliation)

	history, err := recorder.History(context.Background(), outcome.SagaID)
	require.NoError(t, err)
	require.NotEmpty(t, history)

	var steps []string
	for i, event := range history {
		assert.Equal(t, i+1, event.Sequence)
		assert.Equal(t, PurchaseSagaName, event.Saga)
		if event.Transition == saga.TransitionStepSucceeded || event.Transition == saga.TransitionStepFailed {
			steps = append(steps, event.Step+"="+event.Outcome)
		}
		assert.NotEqual(t, saga.TransitionCompensationStarted, event.Transition)
	}

	assert.Equal(t, []string{
		StepFetchTicketType + "=success",
		StepValidateStock + "=success",
		StepFetchEvent + "=success",
		StepReserveStock + "=success",
		StepAuthorizePayment + "=success",
		StepCreateTicket + "=failure",
	}, steps)

	last := history[len(history)-1]
	assert.Equal(t, saga.TransitionSagaFailed, last.Transition)
	assert.Equal(t, string(saga.StatusReconciliationRequired), last.Outcome)
	assert.Equal(t, saga.TagCritical, last.Tag)
}

// fakeInventory is a stateful inventory enforcing the floor check
type fakeInventory struct {
	mu            sync.Mutex
	available     int
	failIncrease  bool
	decreaseCalls int
	increaseCalls int
}

func (f *fakeInventory) GetTicketType(_ context.Context, id int64) (*domain.TicketTypeSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ticketTypeFixture(5000, f.available), nil
}

func (f *fakeInventory) GetEvent(context.Context, int64) (*domain.EventDetails, error) {
	return eventFixture(), nil
}

func (f *fakeInventory) DecreaseQuantity(_ context.Context, adj domain.StockAdjustment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.decreaseCalls++
	if f.available < adj.Quantity {
		return &domain.InsufficientStockError{Available: f.available, Requested: adj.Quantity}
	}
	f.available -= adj.Quantity
	return nil
}

func (f *fakeInventory) IncreaseQuantity(_ context.Context, adj domain.StockAdjustment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.increaseCalls++
	if f.failIncrease {
		return errors.New("event-service unavailable")
	}
	f.available += adj.Quantity
	return nil
}

func TestPurchaseTicket_CompensationCompleteness(t *testing.T) {
	tests := []struct {
		name             string
		failIncrease     bool
		setupMocks       func(m *purchaseMocks)
		expectedStock    int
		expectedManual   bool
		expectedIncrease int
	}{
		{
			name: "payment rejected",
			setupMocks: func(m *purchaseMocks) {
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).
					Return(&domain.PaymentOutcome{PaymentID: "PAY-X", Status: domain.PaymentRejected, Reason: "no"}, nil).Once()
				m.notifications.EXPECT().SendNotification(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStock:    10,
			expectedIncrease: 1,
		},
		{
			name: "payment port error",
			setupMocks: func(m *purchaseMocks) {
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
			},
			expectedStock:    10,
			expectedIncrease: 1,
		},
		{
			name:         "increase fails",
			failIncrease: true,
			setupMocks: func(m *purchaseMocks) {
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
				m.publisher.EXPECT().Publish(mock.Anything, reconciliationEvent()).Return(nil).Once()
			},
			expectedStock:    7,
			expectedManual:   true,
			expectedIncrease: 1,
		},
		{
			name: "success keeps the reservation",
			setupMocks: func(m *purchaseMocks) {
				m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).
					Return(&domain.PaymentOutcome{PaymentID: testPaymentID, Status: domain.PaymentApproved}, nil).Once()
				m.ticketing.EXPECT().CreateTicket(mock.Anything, mock.Anything).RunAndReturn(ticketFromRequest).Once()
				m.notifications.EXPECT().SendNotification(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStock:    7,
			expectedIncrease: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inventory := &fakeInventory{available: 10, failIncrease: tt.failIncrease}
			m := newPurchaseMocks(t)
			tt.setupMocks(m)

			outcome, err := newPurchaseTicket(m, inventory, nil).Execute(context.Background(), &PurchaseTicketCommand{
				UserID:    testUserID,
				UserEmail: testUserEmail,
				Request:   domain.PurchaseRequest{TicketTypeID: 7, Quantity: 3},
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStock, inventory.available)
			assert.Equal(t, 1, inventory.decreaseCalls)
			assert.Equal(t, tt.expectedIncrease, inventory.increaseCalls)
			assert.Equal(t, tt.expectedManual, outcome.RequiresManualReconciliation)
		})
	}
}

func TestPurchaseTicket_ConcurrentRunsAreIsolated(t *testing.T) {
	inventory := &fakeInventory{available: 5}
	m := newPurchaseMocks(t)
	m.payments.EXPECT().AuthorizePayment(mock.Anything, mock.Anything).
		Return(&domain.PaymentOutcome{PaymentID: testPaymentID, Status: domain.PaymentApproved}, nil)
	m.ticketing.EXPECT().CreateTicket(mock.Anything, mock.Anything).RunAndReturn(ticketFromRequest)
	m.notifications.EXPECT().SendNotification(mock.Anything, mock.Anything).Return(nil)

	uc := newPurchaseTicket(m, inventory, nil)

	const buyers = 8
	outcomes := make([]*domain.SagaOutcome, buyers)

	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcome, err := uc.Execute(context.Background(), &PurchaseTicketCommand{
				UserID:    int64(i + 1),
				UserEmail: testUserEmail,
				Request:   domain.PurchaseRequest{TicketTypeID: 7, Quantity: 1},
			})
			assert.NoError(t, err)
			outcomes[i] = outcome
		}(i)
	}
	wg.Wait()

	sold := 0
	ids := make(map[string]struct{})
	for _, outcome := range outcomes {
		require.NotNil(t, outcome)
		if outcome.Succeeded() {
			sold++
			ids[outcome.Ticket.TicketID] = struct{}{}
		} else {
			assert.Equal(t, domain.FailureInsufficientStock, outcome.FailureKind)
		}
	}

	assert.Equal(t, 5, sold)
	assert.Len(t, ids, sold)
	assert.Equal(t, 0, inventory.available)
}
