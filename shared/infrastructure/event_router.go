package infrastructure

import (
	"context"
	"sync"

	"github.com/ticketera/ticket-platform/shared/events"
	"go.uber.org/zap"
)

var _ EventHandler = (*EventRouter)(nil)

type route struct {
	pattern events.Topic
	handler EventHandler
}

// EventRouter dispatches consumed events to the handlers whose topic
// pattern matches. Events no handler claims are acknowledged and dropped.
type EventRouter struct {
	id     string
	mu     sync.RWMutex
	routes []route
	logger *zap.Logger
}

func NewEventRouter(id string, logger *zap.Logger) *EventRouter {
	return &EventRouter{id: id, logger: logger}
}

// Register adds a handler for every topic matching pattern
func (r *EventRouter) Register(pattern events.Topic, handler EventHandler) *EventRouter {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.routes = append(r.routes, route{pattern: pattern, handler: handler})
	return r
}

func (r *EventRouter) HandlerID() string {
	return r.id
}

// Handle runs every matching handler and returns the first error
func (r *EventRouter) Handle(ctx context.Context, event *events.Event) error {
	r.mu.RLock()
	routes := append([]route(nil), r.routes...)
	r.mu.RUnlock()

	matched := false
	for _, rt := range routes {
		if !event.Topic.Matches(rt.pattern) {
			continue
		}

		matched = true
		if err := rt.handler.Handle(ctx, event); err != nil {
			return err
		}
	}

	if !matched {
		r.logger.Debug("no handler for event",
			zap.String("event_id", event.ID.String()),
			zap.String("topic", event.Topic.String()),
		)
	}

	return nil
}
