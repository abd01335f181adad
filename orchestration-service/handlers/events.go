package handlers

import (
	"github.com/ticketera/ticket-platform/orchestration-service/application"
	"github.com/ticketera/ticket-platform/shared/events"
	sharedinfra "github.com/ticketera/ticket-platform/shared/infrastructure"
	"go.uber.org/zap"
)

const eventHandlerID = "orchestration-service-event-handler"

// NewEventHandlers routes the events the service consumes from its queue
func NewEventHandlers(recordCase *application.RecordReconciliationCase, logger *zap.Logger) *sharedinfra.EventRouter {
	return sharedinfra.NewEventRouter(eventHandlerID, logger.Named("events")).
		Register(events.ReconciliationRequiredTopic,
			sharedinfra.NewEventHandlerFunc("record-reconciliation-case", recordCase.Execute))
}
