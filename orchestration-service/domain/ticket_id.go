package domain

import (
	"crypto/rand"
	"math/big"
	"regexp"

	"github.com/pkg/errors"
)

const (
	ticketIDPrefix   = "TKT-"
	ticketIDLength   = 8
	ticketIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ticketIDPattern = regexp.MustCompile(`^TKT-[A-Z0-9]{8}$`)

// NewTicketID returns a random id of the form TKT-XXXXXXXX
func NewTicketID() (string, error) {
	buf := make([]byte, ticketIDLength)
	max := big.NewInt(int64(len(ticketIDAlphabet)))

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate ticket id")
		}
		buf[i] = ticketIDAlphabet[n.Int64()]
	}

	return ticketIDPrefix + string(buf), nil
}

func IsValidTicketID(id string) bool {
	return ticketIDPattern.MatchString(id)
}
