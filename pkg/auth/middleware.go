// Package auth provides bearer-token authentication for the simulation
// service and token resolution for its clients.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/snark87/quantum-simulator/pkg/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// PrincipalKey is the context key under which the authenticated principal is stored
const PrincipalKey contextKey = "principal"

// Principal identifies an authenticated caller
type Principal struct {
	ID string
}

var (
	// ErrNoAuthHeader is returned when no Authorization header is present in the request
	ErrNoAuthHeader = errors.New("no authorization header provided")
	// ErrInvalidAuthFormat is returned when the Authorization header format is incorrect
	ErrInvalidAuthFormat = errors.New("invalid authorization header format")
	// ErrInvalidToken is returned when the provided authentication token is invalid
	ErrInvalidToken = errors.New("invalid authentication token")
)

// Authenticate returns middleware that requires "Authorization: Bearer <token>".
// An empty token disables the check.
func Authenticate(token string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := validate(r.Header.Get("Authorization"), token)
			if err != nil {
				handleAuthError(w, r, err, log)
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext extracts the authenticated principal from the request context
func PrincipalFromContext(ctx context.Context) *Principal {
	p, ok := ctx.Value(PrincipalKey).(*Principal)
	if !ok {
		return nil
	}
	return p
}

// ParseBearer extracts the token from an Authorization header value
func ParseBearer(header string) (string, error) {
	if header == "" {
		return "", ErrNoAuthHeader
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidAuthFormat
	}

	return parts[1], nil
}

func validate(header, expected string) (*Principal, error) {
	presented, err := ParseBearer(header)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
		return nil, ErrInvalidToken
	}

	return &Principal{ID: "token"}, nil
}

// handleAuthError responds with 401 and logs the failure
func handleAuthError(w http.ResponseWriter, r *http.Request, err error, log logger.Logger) {
	log.WithFields(map[string]interface{}{
		"path":        r.URL.Path,
		"method":      r.Method,
		"remote_addr": r.RemoteAddr,
	}).Infof("Authentication failed: %v", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if _, writeErr := w.Write([]byte(`{"error":"Authentication required"}`)); writeErr != nil {
		log.Errorf("Failed to write error response: %v", writeErr)
	}
}
