package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/snark87/quantum-simulator/pkg/logger"
	"github.com/snark87/quantum-simulator/pkg/models"
	"github.com/snark87/quantum-simulator/pkg/simulation"
)

// ErrUnexpectedStatus is wrapped by errors for HTTP responses >= 400
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Simulator is a client for a running quantum-sim service
type Simulator struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        logger.Logger
}

// Config holds the configuration for the Simulator client
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Logger  logger.Logger
}

// NewClient creates a new Simulator client with the given configuration
func NewClient(cfg Config) (*Simulator, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Simulator{
		baseURL: strings.TrimRight(u.String(), "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}, nil
}

// Health checks that the service is up
func (c *Simulator) Health(ctx context.Context) (*models.HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}

	var health models.HealthResponse
	if err := c.decodeResponse(resp, &health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &health, nil
}

// Simulate runs a simulation remotely. A nil cfg asks the service for its defaults.
func (c *Simulator) Simulate(ctx context.Context, cfg *simulation.Config) (*models.SimulateResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/simulate", models.SimulateRequest{Config: cfg})
	if err != nil {
		return nil, err
	}

	var result models.SimulateResponse
	if err := c.decodeResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to decode simulate response: %w", err)
	}
	return &result, nil
}

// doRequest performs an HTTP request with authentication and error handling
func (c *Simulator) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer c.closeBody(resp.Body)
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}

	return resp, nil
}

// decodeResponse decodes a JSON response into v
func (c *Simulator) decodeResponse(resp *http.Response, v interface{}) error {
	defer c.closeBody(resp.Body)

	if v == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *Simulator) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		c.log.Errorf("failed to close response body: %v", err)
	}
}
