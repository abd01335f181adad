package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_Matches(t *testing.T) {
	tests := []struct {
		topic    Topic
		pattern  Topic
		expected bool
	}{
		{topic: "saga.reconciliation.required", pattern: "saga.reconciliation.required", expected: true},
		{topic: "saga.reconciliation.required", pattern: "saga.*.required", expected: true},
		{topic: "saga.reconciliation.required", pattern: "saga.*", expected: false},
		{topic: "saga.reconciliation.required", pattern: "saga.#", expected: true},
		{topic: "saga.reconciliation.required", pattern: "#.required", expected: true},
		{topic: "saga.reconciliation.required", pattern: "#reconciliation#", expected: true},
		{topic: "notification.requested", pattern: "saga.#", expected: false},
		{topic: "notification.requested", pattern: "#", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.topic.String()+" "+tt.pattern.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.topic.Matches(tt.pattern))
		})
	}
}

func TestEvent_UnmarshalPayload(t *testing.T) {
	type payload struct {
		Reason string `json:"reason"`
	}

	t.Run("same type is assigned directly", func(t *testing.T) {
		event := NewEvent("agg", ReconciliationRequiredTopic, payload{Reason: "x"})

		var got payload
		require.NoError(t, event.UnmarshalPayload(&got))
		assert.Equal(t, "x", got.Reason)
	})

	t.Run("raw json is decoded", func(t *testing.T) {
		event := NewEvent("agg", ReconciliationRequiredTopic, json.RawMessage(`{"reason":"y"}`))

		var got payload
		require.NoError(t, event.UnmarshalPayload(&got))
		assert.Equal(t, "y", got.Reason)
	})

	t.Run("generic map is re-encoded", func(t *testing.T) {
		event := NewEvent("agg", ReconciliationRequiredTopic, map[string]interface{}{"reason": "z"})

		var got payload
		require.NoError(t, event.UnmarshalPayload(&got))
		assert.Equal(t, "z", got.Reason)
	})

	t.Run("non pointer receiver", func(t *testing.T) {
		event := NewEvent("agg", ReconciliationRequiredTopic, payload{})

		assert.ErrorIs(t, event.UnmarshalPayload(payload{}), ErrInvalidReceiver)
	})
}

func TestEnvelope_ToEvent(t *testing.T) {
	t.Run("keeps payload raw until unmarshalled", func(t *testing.T) {
		evt := NewEvent("saga-1", ReconciliationRequiredTopic, map[string]string{"payment_id": "PAY-1"}).
			WithCorrelationID("saga-1").
			WithMetadata("source", "test")

		env, err := evt.ToEnvelope()
		require.NoError(t, err)

		body, err := json.Marshal(env)
		require.NoError(t, err)

		var decoded Envelope
		require.NoError(t, json.Unmarshal(body, &decoded))

		got, err := decoded.ToEvent()
		require.NoError(t, err)

		assert.Equal(t, evt.ID, got.ID)
		assert.Equal(t, ReconciliationRequiredTopic, got.Topic)
		assert.True(t, got.Matches("saga.#", Metadata{"source": "test"}))

		var payload map[string]string
		require.NoError(t, got.UnmarshalPayload(&payload))
		assert.Equal(t, "PAY-1", payload["payment_id"])
	})

	t.Run("rejects empty topic", func(t *testing.T) {
		_, err := (&Envelope{ID: "1"}).ToEvent()
		assert.ErrorIs(t, err, ErrInvalidTopic)
	})
}
