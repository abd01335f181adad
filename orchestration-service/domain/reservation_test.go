package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationEffect_Transitions(t *testing.T) {
	tests := []struct {
		name          string
		apply         func(r *ReservationEffect) error
		expectedState ReservationState
		expectedErr   bool
	}{
		{
			name:          "activate from pending",
			apply:         func(r *ReservationEffect) error { return r.Activate() },
			expectedState: ReservationActive,
		},
		{
			name: "retire after activation",
			apply: func(r *ReservationEffect) error {
				require.NoError(t, r.Activate())
				return r.Retire()
			},
			expectedState: ReservationRetired,
		},
		{
			name: "compensate after activation",
			apply: func(r *ReservationEffect) error {
				require.NoError(t, r.Activate())
				return r.Compensate()
			},
			expectedState: ReservationCompensated,
		},
		{
			name:          "compensate without activation",
			apply:         func(r *ReservationEffect) error { return r.Compensate() },
			expectedState: ReservationPending,
			expectedErr:   true,
		},
		{
			name: "compensate twice",
			apply: func(r *ReservationEffect) error {
				require.NoError(t, r.Activate())
				require.NoError(t, r.Compensate())
				return r.Compensate()
			},
			expectedState: ReservationCompensated,
			expectedErr:   true,
		},
		{
			name: "compensate a retired reservation",
			apply: func(r *ReservationEffect) error {
				require.NoError(t, r.Activate())
				require.NoError(t, r.Retire())
				return r.Compensate()
			},
			expectedState: ReservationRetired,
			expectedErr:   true,
		},
		{
			name: "activate twice",
			apply: func(r *ReservationEffect) error {
				require.NoError(t, r.Activate())
				return r.Activate()
			},
			expectedState: ReservationActive,
			expectedErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReservationEffect(7, 2)

			err := tt.apply(r)

			if tt.expectedErr {
				assert.ErrorIs(t, err, ErrIllegalReservationTransition)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedState, r.State())
			assert.Equal(t, tt.expectedState == ReservationActive, r.Active())
		})
	}
}
