package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

const (
	UserIDHeader    = "X-User-ID"
	UserEmailHeader = "X-User-Email"
)

type identityKey struct{}

// Identity is the caller as enriched by the gateway
type Identity struct {
	UserID int64
	Email  string
}

func identityFromContext(ctx context.Context) Identity {
	identity, _ := ctx.Value(identityKey{}).(Identity)
	return identity
}

// RequireUser rejects requests without a valid X-User-ID header
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(UserIDHeader)), 10, 64)
		if err != nil || userID <= 0 {
			writeMessage(w, http.StatusBadRequest, "Header X-User-ID es requerido")
			return
		}

		identity := identityFromContext(r.Context())
		identity.UserID = userID
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, identity)))
	})
}

// RequireEmail rejects requests without the X-User-Email header
func RequireEmail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.Header.Get(UserEmailHeader))
		if email == "" {
			writeMessage(w, http.StatusBadRequest, "Header X-User-Email es requerido")
			return
		}

		identity := identityFromContext(r.Context())
		identity.Email = email
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, identity)))
	})
}
