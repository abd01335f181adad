package domain

import (
	"sync"

	"github.com/pkg/errors"
)

// ReservationState is the state of a stock reservation made by a saga
type ReservationState string

const (
	ReservationPending     ReservationState = "pending"
	ReservationActive      ReservationState = "active"
	ReservationRetired     ReservationState = "retired"
	ReservationCompensated ReservationState = "compensated"
)

var ErrIllegalReservationTransition = errors.New("illegal reservation transition")

// ReservationEffect tracks whether a stock decrease still has to be undone.
// It moves pending -> active -> (retired | compensated) and never back.
type ReservationEffect struct {
	mu           sync.Mutex
	TicketTypeID int64
	Quantity     int
	state        ReservationState
}

func NewReservationEffect(ticketTypeID int64, quantity int) *ReservationEffect {
	return &ReservationEffect{
		TicketTypeID: ticketTypeID,
		Quantity:     quantity,
		state:        ReservationPending,
	}
}

func (r *ReservationEffect) State() ReservationState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Active reports whether compensation is owed
func (r *ReservationEffect) Active() bool {
	return r.State() == ReservationActive
}

// Activate records that the decrease took effect
func (r *ReservationEffect) Activate() error {
	return r.transition(ReservationPending, ReservationActive)
}

// Retire makes the decrease permanent once the ticket exists
func (r *ReservationEffect) Retire() error {
	return r.transition(ReservationActive, ReservationRetired)
}

// Compensate records that the stock was given back
func (r *ReservationEffect) Compensate() error {
	return r.transition(ReservationActive, ReservationCompensated)
}

func (r *ReservationEffect) transition(from, to ReservationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != from {
		return errors.Wrapf(ErrIllegalReservationTransition, "cannot move reservation from %s to %s", r.state, to)
	}

	r.state = to
	return nil
}
