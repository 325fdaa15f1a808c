package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snark87/quantum-simulator/pkg/logger"
)

func quietLogger() logger.Logger {
	return logger.NewWithConfig(logger.Config{Writer: io.Discard, NoColor: true})
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid", "Bearer abc", "abc", nil},
		{"missing", "", "", ErrNoAuthHeader},
		{"wrong scheme", "Basic abc", "", ErrInvalidAuthFormat},
		{"no token", "Bearer", "", ErrInvalidAuthFormat},
		{"extra parts", "Bearer a b", "", ErrInvalidAuthFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearer(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	var seen *Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Authenticate("s3cret", quietLogger())(next)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer s3cret", http.StatusNoContent},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"no header", "", http.StatusUnauthorized},
		{"bad format", "s3cret", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Authentication required"}`, rec.Body.String())
				assert.Nil(t, seen)
			} else {
				require.NotNil(t, seen)
				assert.Equal(t, "token", seen.ID)
			}
		})
	}
}

func TestAuthenticateDisabledWithoutToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Authenticate("", quietLogger())(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveToken(t *testing.T) {
	t.Setenv(EnvAPIToken, "from-env")

	assert.Equal(t, "explicit", ResolveToken("explicit"))
	assert.Equal(t, "from-env", ResolveToken(""))

	t.Setenv(EnvAPIToken, "")
	assert.Empty(t, ResolveToken(""))
}
