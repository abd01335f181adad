package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/orchestration-service/mocks"
	"github.com/ticketera/ticket-platform/shared/models"
	"github.com/ticketera/ticket-platform/shared/saga"
)

func TestGetUserTickets_Execute(t *testing.T) {
	tickets := []*domain.Ticket{{TicketID: "TKT-AB12CD34", UserID: testUserID, Status: domain.TicketPaid}}

	tests := []struct {
		name          string
		userID        int64
		setupMocks    func(ticketing *mocks.MockTicketingPort)
		expected      []*domain.Ticket
		expectedError error
	}{
		{
			name:   "returns the user's tickets",
			userID: testUserID,
			setupMocks: func(ticketing *mocks.MockTicketingPort) {
				ticketing.EXPECT().GetTicketsByUser(mock.Anything, testUserID).Return(tickets, nil).Once()
			},
			expected: tickets,
		},
		{
			name:          "rejects a missing user",
			userID:        0,
			setupMocks:    func(ticketing *mocks.MockTicketingPort) {},
			expectedError: domain.ErrInvalidRequest,
		},
		{
			name:   "propagates ticketing errors",
			userID: testUserID,
			setupMocks: func(ticketing *mocks.MockTicketingPort) {
				ticketing.EXPECT().GetTicketsByUser(mock.Anything, testUserID).Return(nil, domain.ErrNotFound).Once()
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticketing := mocks.NewMockTicketingPort(t)
			tt.setupMocks(ticketing)

			result, err := NewGetUserTickets(ticketing).Execute(context.Background(), tt.userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetSagaAuditTrail_Execute(t *testing.T) {
	sagaID := models.GenerateUUID()
	history := []saga.AuditEvent{
		{SagaID: sagaID, Saga: PurchaseSagaName, Sequence: 1, Transition: saga.TransitionSagaStarted, Outcome: saga.OutcomeStarted},
	}

	tests := []struct {
		name          string
		sagaID        string
		setupMocks    func(trail *mocks.MockAuditTrail)
		expectedError error
	}{
		{
			name:   "returns the history",
			sagaID: sagaID.String(),
			setupMocks: func(trail *mocks.MockAuditTrail) {
				trail.EXPECT().History(mock.Anything, sagaID).Return(history, nil).Once()
			},
		},
		{
			name:          "malformed saga id",
			sagaID:        "not-a-uuid",
			setupMocks:    func(trail *mocks.MockAuditTrail) {},
			expectedError: domain.ErrInvalidRequest,
		},
		{
			name:   "unknown saga",
			sagaID: sagaID.String(),
			setupMocks: func(trail *mocks.MockAuditTrail) {
				trail.EXPECT().History(mock.Anything, sagaID).Return(nil, nil).Once()
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:   "store failure",
			sagaID: sagaID.String(),
			setupMocks: func(trail *mocks.MockAuditTrail) {
				trail.EXPECT().History(mock.Anything, sagaID).Return(nil, errors.New("db down")).Once()
			},
			expectedError: errors.New("failed to get audit trail: db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail := mocks.NewMockAuditTrail(t)
			tt.setupMocks(trail)

			result, err := NewGetSagaAuditTrail(trail).Execute(context.Background(), tt.sagaID)

			switch {
			case tt.expectedError == nil:
				assert.NoError(t, err)
				assert.Equal(t, history, result)
			case errors.Is(tt.expectedError, domain.ErrInvalidRequest), errors.Is(tt.expectedError, domain.ErrNotFound):
				assert.ErrorIs(t, err, tt.expectedError)
			default:
				assert.EqualError(t, err, tt.expectedError.Error())
			}
		})
	}
}
