package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ID represents a unique identifier
type ID string

// GenerateUUID creates a new UUID
func GenerateUUID() ID {
	return ID(uuid.New().String())
}

// NewID creates an ID from string
func NewID(id string) (ID, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.Wrap(err, "invalid id")
	}
	return ID(id), nil
}

// String returns string representation
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty
func (id ID) IsZero() bool {
	return id == ""
}

// Timestamps represents creation and update times
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimestamps creates new timestamps
func NewTimestamps() Timestamps {
	now := time.Now().UTC()
	return Timestamps{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update updates the UpdatedAt timestamp
func (t Timestamps) Update() Timestamps {
	t.UpdatedAt = time.Now().UTC()
	return t
}

// Money represents a non-negative monetary amount in cents.
type Money struct {
	Amount int64 `json:"amount"` // Amount in cents
}

// NewMoney creates a money value from cents
func NewMoney(cents int64) Money {
	return Money{Amount: cents}
}

// NewMoneyFromFloat converts a decimal amount (as sent by the services) to cents
func NewMoneyFromFloat(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, errors.New("amount is not a number")
	}
	if value < 0 {
		return Money{}, errors.New("amount must not be negative")
	}
	return Money{Amount: int64(math.Round(value * 100))}, nil
}

// Float returns the decimal representation used on the wire
func (m Money) Float() float64 {
	return float64(m.Amount) / 100
}

// Multiply returns the money value times quantity
func (m Money) Multiply(quantity int) Money {
	return Money{Amount: m.Amount * int64(quantity)}
}

// IsZero checks if money is zero
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// IsPositive checks if money is positive
func (m Money) IsPositive() bool {
	return m.Amount > 0
}

// String formats the amount as a decimal with two places
func (m Money) String() string {
	sign := ""
	amount := m.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
