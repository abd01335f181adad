package infrastructure

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/shared/events"
	"github.com/ticketera/ticket-platform/shared/models"
)

var _ domain.NotificationPort = (*EventNotificationSender)(nil)

// EventNotificationSender implements NotificationPort by publishing
// notification.requested events; the notification service consumes them.
type EventNotificationSender struct {
	publisher events.Publisher
}

// NewEventNotificationSender creates a new EventNotificationSender
func NewEventNotificationSender(publisher events.Publisher) *EventNotificationSender {
	return &EventNotificationSender{publisher: publisher}
}

func (s *EventNotificationSender) SendNotification(ctx context.Context, n domain.Notification) error {
	if n.Recipient == "" {
		return errors.Wrap(domain.ErrInvalidRequest, "notification without recipient")
	}

	evt := events.NewEvent(models.GenerateUUID(), events.NotificationRequestedTopic, n).
		WithMetadata("tipo", string(n.Type))

	if err := s.publisher.Publish(ctx, evt); err != nil {
		return errors.Wrap(err, "failed to publish notification")
	}

	return nil
}
