package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketID_FormatAndUniqueness(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id, err := NewTicketID()
		require.NoError(t, err)
		require.True(t, IsValidTicketID(id), id)

		_, dup := seen[id]
		require.False(t, dup, "duplicate ticket id %s", id)
		seen[id] = struct{}{}
	}
}

func TestIsValidTicketID(t *testing.T) {
	tests := map[string]bool{
		"TKT-ABC12345":  true,
		"TKT-00000000":  true,
		"TKT-abc12345":  false,
		"TKT-ABC1234":   false,
		"TKT-ABC123456": false,
		"PAY-ABC12345":  false,
		"":              false,
	}

	for id, expected := range tests {
		t.Run(id, func(t *testing.T) {
			assert.Equal(t, expected, IsValidTicketID(id))
		})
	}
}
