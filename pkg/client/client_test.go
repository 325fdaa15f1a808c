package client

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snark87/quantum-simulator/pkg/config"
	"github.com/snark87/quantum-simulator/pkg/logger"
	"github.com/snark87/quantum-simulator/pkg/server"
	"github.com/snark87/quantum-simulator/pkg/simulation"
)

func quietLogger() logger.Logger {
	return logger.NewWithConfig(logger.Config{Writer: io.Discard, NoColor: true})
}

func startService(t *testing.T, token string) *httptest.Server {
	t.Helper()
	s := server.New(config.ServerSettings{
		AllowedOrigins: []string{"*"},
		AuthToken:      token,
	}, quietLogger())

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func newClient(t *testing.T, baseURL, token string) *Simulator {
	t.Helper()
	c, err := NewClient(Config{BaseURL: baseURL, Token: token, Timeout: 5 * time.Second, Logger: quietLogger()})
	require.NoError(t, err)
	return c
}

func TestNewClientRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"://nope", "ftp://example.com", "localhost:8080"} {
		_, err := NewClient(Config{BaseURL: raw})
		assert.Error(t, err, raw)
	}
}

func TestHealth(t *testing.T) {
	ts := startService(t, "")

	health, err := newClient(t, ts.URL+"/", "").Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}

func TestSimulateDefault(t *testing.T) {
	ts := startService(t, "")

	resp, err := newClient(t, ts.URL, "").Simulate(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, simulation.Result{Status: simulation.StatusSuccess, Message: simulation.MessageCompleted}, resp.Result())
	assert.Equal(t, *simulation.DefaultConfig(), resp.Config)
}

func TestSimulateWithConfig(t *testing.T) {
	ts := startService(t, "tok")
	cfg := &simulation.Config{Name: "test-sim", Iterations: 10, DebugMode: true}

	resp, err := newClient(t, ts.URL, "tok").Simulate(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, *cfg, resp.Config)
	assert.Equal(t, simulation.StatusSuccess, resp.Status)
}

func TestSimulateUnauthorized(t *testing.T) {
	ts := startService(t, "tok")

	_, err := newClient(t, ts.URL, "wrong").Simulate(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Contains(t, err.Error(), "Authentication required")
}

func TestSimulateCancelledContext(t *testing.T) {
	ts := startService(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(t, ts.URL, "").Simulate(ctx, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
