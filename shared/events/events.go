package events

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/ticketera/ticket-platform/shared/models"
)

var (
	ErrInvalidTopic    = errors.New("invalid topic")
	ErrInvalidReceiver = errors.New("receiver should be a pointer")
)

// Topic represents an event topic with pattern matching support.
// "*" matches exactly one dot-separated segment, a leading or trailing "#"
// matches any suffix or prefix.
type Topic string

func NewTopic(topic string) (Topic, error) {
	if topic == "" {
		return "", ErrInvalidTopic
	}
	return Topic(topic), nil
}

func (t Topic) Matches(pattern Topic) bool {
	topicStr := t.String()
	patternStr := pattern.String()

	if patternStr == "#" {
		return true
	}

	if strings.HasPrefix(patternStr, "#") && strings.HasSuffix(patternStr, "#") {
		return strings.Contains(topicStr, strings.Trim(patternStr, "#"))
	}

	if strings.HasPrefix(patternStr, "#") {
		return strings.HasSuffix(topicStr, strings.TrimPrefix(patternStr, "#"))
	}

	if strings.HasSuffix(patternStr, "#") {
		return strings.HasPrefix(topicStr, strings.TrimSuffix(patternStr, "#"))
	}

	return matchPattern(strings.Split(patternStr, "."), strings.Split(topicStr, "."))
}

func (t Topic) String() string {
	return string(t)
}

func matchPattern(patternParts, topicParts []string) bool {
	if len(patternParts) != len(topicParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != topicParts[i] {
			return false
		}
	}

	return true
}

// Metadata represents event metadata
type Metadata map[string]string

func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Metadata) Set(key string, value string) {
	m[key] = value
}

func (m Metadata) Merge(metadata Metadata) Metadata {
	if m == nil {
		m = make(Metadata)
	}
	for k, v := range metadata {
		m[k] = v
	}
	return m
}

// Matches reports whether every key of o is present in m with the same value
func (m Metadata) Matches(o Metadata) bool {
	for k, v := range o {
		if m[k] != v {
			return false
		}
	}
	return true
}

func (m Metadata) Clone() Metadata {
	clone := Metadata{}
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Event is the envelope published to and consumed from the message bus
type Event struct {
	ID            models.ID   `json:"id"`
	AggregateID   models.ID   `json:"aggregate_id"`
	Topic         Topic       `json:"topic"`
	Version       string      `json:"version"`
	Data          interface{} `json:"data"`
	Metadata      Metadata    `json:"metadata"`
	Timestamp     time.Time   `json:"timestamp"`
	CorrelationID models.ID   `json:"correlation_id,omitempty"`
}

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, events ...*Event) error
}

// EventHandler handles consumed events
type EventHandler interface {
	Handle(ctx context.Context, event *Event) error
}

// NewEvent creates a new event for the given aggregate
func NewEvent(aggregateID models.ID, topic Topic, data interface{}) *Event {
	return &Event{
		ID:          models.GenerateUUID(),
		AggregateID: aggregateID,
		Topic:       topic,
		Version:     "1.0",
		Data:        data,
		Metadata:    make(Metadata),
		Timestamp:   time.Now().UTC(),
	}
}

// WithCorrelationID sets correlation ID
func (e *Event) WithCorrelationID(correlationID models.ID) *Event {
	e.CorrelationID = correlationID
	return e
}

// WithMetadata adds metadata
func (e *Event) WithMetadata(key string, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(Metadata)
	}
	e.Metadata.Set(key, value)
	return e
}

// Matches reports whether the event belongs to topic and carries metadata
func (e *Event) Matches(topic Topic, metadata Metadata) bool {
	return e.Topic.Matches(topic) && e.Metadata.Matches(metadata)
}

// MarshalPayload marshals the event payload
func (e *Event) MarshalPayload() (json.RawMessage, error) {
	switch data := e.Data.(type) {
	case json.RawMessage:
		return data, nil
	case []byte:
		return data, nil
	}

	return json.Marshal(e.Data)
}

// UnmarshalPayload unmarshals the event payload into the given pointer
func (e *Event) UnmarshalPayload(v interface{}) error {
	vValue := reflect.ValueOf(v)
	if vValue.Kind() != reflect.Ptr || vValue.IsNil() {
		return ErrInvalidReceiver
	}

	if e.Data != nil {
		payloadValue := reflect.ValueOf(e.Data)
		if vValue.Elem().Type() == payloadValue.Type() {
			vValue.Elem().Set(payloadValue)
			return nil
		}
	}

	raw, err := e.MarshalPayload()
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, v)
}

// Envelope is the wire form of an Event on the message bus
type Envelope struct {
	ID            string          `json:"id"`
	AggregateID   string          `json:"aggregate_id,omitempty"`
	Topic         string          `json:"topic"`
	Version       string          `json:"version,omitempty"`
	Metadata      Metadata        `json:"metadata"`
	Payload       json.RawMessage `json:"payload"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id,omitempty"`
}

// ToEnvelope marshals the event payload into its wire form
func (e *Event) ToEnvelope() (*Envelope, error) {
	payload, err := e.MarshalPayload()
	if err != nil {
		return nil, err
	}

	return &Envelope{
		ID:            e.ID.String(),
		AggregateID:   e.AggregateID.String(),
		Topic:         e.Topic.String(),
		Version:       e.Version,
		Metadata:      e.Metadata,
		Payload:       payload,
		Timestamp:     e.Timestamp,
		CorrelationID: e.CorrelationID.String(),
	}, nil
}

// ToEvent rebuilds an event from its wire form. The payload stays raw until
// the consumer calls UnmarshalPayload.
func (env *Envelope) ToEvent() (*Event, error) {
	topic, err := NewTopic(env.Topic)
	if err != nil {
		return nil, err
	}

	metadata := env.Metadata
	if metadata == nil {
		metadata = Metadata{}
	}

	return &Event{
		ID:            models.ID(env.ID),
		AggregateID:   models.ID(env.AggregateID),
		Topic:         topic,
		Version:       env.Version,
		Data:          env.Payload,
		Metadata:      metadata,
		Timestamp:     env.Timestamp,
		CorrelationID: models.ID(env.CorrelationID),
	}, nil
}

const (
	// NotificationRequestedTopic carries fire-and-forget user notifications
	NotificationRequestedTopic Topic = "notification.requested"

	// SagaAuditTopic carries every saga step transition
	SagaAuditTopic Topic = "saga.audit"

	// ReconciliationRequiredTopic is published when a saga leaves an inconsistency
	// that only an operator or batch process can resolve
	ReconciliationRequiredTopic Topic = "saga.reconciliation.required"
)
