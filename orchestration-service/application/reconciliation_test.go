package application

import (
	"context"
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
	"go.uber.org/zap"
)

func reconciliationCaseFixture() *domain.ReconciliationCase {
	return &domain.ReconciliationCase{
		SagaID:       models.GenerateUUID(),
		Saga:         PurchaseSagaName,
		UserID:       testUserID,
		TicketTypeID: 7,
		Quantity:     2,
		Amount:       models.NewMoney(10000),
		PaymentID:    testPaymentID,
		FailedStep:   StepCreateTicket,
		Reason:       "Error crítico: pago procesado pero ticket no creado. Payment ID: " + testPaymentID,
		Status:       domain.ReconciliationOpen,
		CreatedAt:    time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReconciliationAlerter_Raise(t *testing.T) {
	t.Run("publishes the case", func(t *testing.T) {
		c := reconciliationCaseFixture()
		publisher := mocks.NewMockPublisher(t)
		publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
			saga, _ := evt.Metadata.Get("saga")
			return evt.Topic == events.ReconciliationRequiredTopic &&
				evt.AggregateID == c.SagaID &&
				evt.CorrelationID == c.SagaID &&
				saga == PurchaseSagaName
		})).Return(nil).Once()

		NewReconciliationAlerter(publisher, zap.NewNop()).Raise(context.Background(), c)
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		publisher := mocks.NewMockPublisher(t)
		publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("sns down")).Once()

		assert.NotPanics(t, func() {
			NewReconciliationAlerter(publisher, zap.NewNop()).Raise(context.Background(), reconciliationCaseFixture())
		})
	})

	t.Run("hung publish is cut off by the timeout", func(t *testing.T) {
		publisher := mocks.NewMockPublisher(t)
		publisher.EXPECT().Publish(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ ...*events.Event) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				<-ctx.Done()
				return ctx.Err()
			}).Once()

		alerter := NewReconciliationAlerter(publisher, zap.NewNop(), WithPublishTimeout(50*time.Millisecond))

		done := make(chan struct{})
		go func() {
			alerter.Raise(context.Background(), reconciliationCaseFixture())
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Raise did not return after the publish timeout")
		}
	})

	t.Run("caller cancellation does not abort the publish", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		publisher := mocks.NewMockPublisher(t)
		publisher.EXPECT().Publish(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ ...*events.Event) error {
				assert.NoError(t, ctx.Err())
				return nil
			}).Once()

		NewReconciliationAlerter(publisher, zap.NewNop()).Raise(ctx, reconciliationCaseFixture())
	})

	t.Run("works without a publisher", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewReconciliationAlerter(nil, zap.NewNop()).Raise(context.Background(), reconciliationCaseFixture())
		})
	})
}

func TestRecordReconciliationCase_Execute(t *testing.T) {
	c := reconciliationCaseFixture()
	payload, err := events.NewEvent(c.SagaID, events.ReconciliationRequiredTopic, c).MarshalPayload()
	require.NoError(t, err)

	bare := &domain.ReconciliationCase{PaymentID: testPaymentID, FailedStep: StepCreateTicket}
	bareEventTime := time.Date(2026, 10, 2, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		event         *events.Event
		setupMocks    func(repo *mocks.MockReconciliationRepository)
		expectedError string
	}{
		{
			name: "stores a decoded case",
			event: &events.Event{
				AggregateID: c.SagaID,
				Topic:       events.ReconciliationRequiredTopic,
				Data:        payload,
			},
			setupMocks: func(repo *mocks.MockReconciliationRepository) {
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(saved *domain.ReconciliationCase) bool {
					return saved.SagaID == c.SagaID &&
						saved.PaymentID == testPaymentID &&
						saved.Amount == models.NewMoney(10000) &&
						saved.CreatedAt.Equal(c.CreatedAt)
				})).Return(nil).Once()
			},
		},
		{
			name: "fills defaults from the event",
			event: &events.Event{
				AggregateID: c.SagaID,
				Topic:       events.ReconciliationRequiredTopic,
				Data:        bare,
				Timestamp:   bareEventTime,
			},
			setupMocks: func(repo *mocks.MockReconciliationRepository) {
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(saved *domain.ReconciliationCase) bool {
					return saved.SagaID == c.SagaID &&
						saved.Status == domain.ReconciliationOpen &&
						saved.CreatedAt.Equal(bareEventTime)
				})).Return(nil).Once()
			},
		},
		{
			name: "rejects a case without saga id",
			event: &events.Event{
				Topic: events.ReconciliationRequiredTopic,
				Data:  bare,
			},
			setupMocks:    func(repo *mocks.MockReconciliationRepository) {},
			expectedError: "reconciliation case has no saga id: invalid request",
		},
		{
			name: "propagates repository errors",
			event: &events.Event{
				AggregateID: c.SagaID,
				Topic:       events.ReconciliationRequiredTopic,
				Data:        c,
			},
			setupMocks: func(repo *mocks.MockReconciliationRepository) {
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			expectedError: "failed to save reconciliation case: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockReconciliationRepository(t)
			tt.setupMocks(repo)

			err := NewRecordReconciliationCase(repo, zap.NewNop()).Execute(context.Background(), tt.event)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestListReconciliationCases_Execute(t *testing.T) {
	cases := []*domain.ReconciliationCase{reconciliationCaseFixture()}

	tests := []struct {
		name          string
		query         ListReconciliationCasesQuery
		setupMocks    func(repo *mocks.MockReconciliationRepository)
		expectedError error
	}{
		{
			name:  "defaults to open cases",
			query: ListReconciliationCasesQuery{},
			setupMocks: func(repo *mocks.MockReconciliationRepository) {
				repo.EXPECT().ListByStatus(mock.Anything, domain.ReconciliationOpen, 100).Return(cases, nil).Once()
			},
		},
		{
			name:  "caps the limit",
			query: ListReconciliationCasesQuery{Status: domain.ReconciliationResolved, Limit: 5000},
			setupMocks: func(repo *mocks.MockReconciliationRepository) {
				repo.EXPECT().ListByStatus(mock.Anything, domain.ReconciliationResolved, 100).Return(cases, nil).Once()
			},
		},
		{
			name:  "keeps a small limit",
			query: ListReconciliationCasesQuery{Limit: 10},
			setupMocks: func(repo *mocks.MockReconciliationRepository) {
				repo.EXPECT().ListByStatus(mock.Anything, domain.ReconciliationOpen, 10).Return(cases, nil).Once()
			},
		},
		{
			name:          "unknown status",
			query:         ListReconciliationCasesQuery{Status: "pending"},
			setupMocks:    func(repo *mocks.MockReconciliationRepository) {},
			expectedError: domain.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockReconciliationRepository(t)
			tt.setupMocks(repo)

			result, err := NewListReconciliationCases(repo).Execute(context.Background(), tt.query)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, cases, result)
		})
	}
}
