package adminapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/emiliopalmerini/srsadmin/internal/adapters/logging"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/otel"
	"github.com/emiliopalmerini/srsadmin/internal/domain"
	"github.com/emiliopalmerini/srsadmin/internal/ports"
)

// Admin endpoints of the SQL-REST server.
const (
	ListPath   = "/v1/admin/experiment/list"
	CreatePath = "/v1/admin/experiment"
)

// Operation names used for metrics and logs.
const (
	opList   = "experiment.list"
	opCreate = "experiment.create"
)

// APIError represents a non-2xx response from the admin API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the SQL-REST admin API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
	metrics    ports.MetricsExporter
}

var _ ports.ExperimentAPI = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP timeout for the client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request outcomes.
func WithLogger(l ports.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMetrics sets the exporter that records request latency and outcome.
func WithMetrics(m ports.MetricsExporter) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new admin API client.
// The baseURL should be the server root (e.g., "http://localhost:8080").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:  logging.Nop(),
		metrics: otel.NewNoOpExporter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListExperiments fetches the experiment list.
func (c *Client) ListExperiments(ctx context.Context) (experiments []domain.Experiment, err error) {
	start := time.Now()
	defer func() { c.observe(ctx, opList, start, err) }()

	resp, err := c.get(ctx, ListPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, parseError(resp)
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse experiment list: %w", err)
	}
	result := make([]domain.Experiment, 0, len(raw))
	for _, elem := range raw {
		result = append(result, decodeExperiment(elem))
	}
	return result, nil
}

// decodeExperiment keeps every list element. Objects map field by field;
// anything else is carried under the "value" key.
func decodeExperiment(elem json.RawMessage) domain.Experiment {
	var fields map[string]any
	if err := json.Unmarshal(elem, &fields); err == nil && fields != nil {
		return domain.Experiment(fields)
	}
	var v any
	_ = json.Unmarshal(elem, &v)
	return domain.Experiment{"value": v}
}

// CreateExperiment registers an experiment under name and returns its token.
func (c *Client) CreateExperiment(ctx context.Context, name string) (created *domain.CreatedExperiment, err error) {
	start := time.Now()
	defer func() { c.observe(ctx, opCreate, start, err) }()

	query := url.Values{}
	query.Set("name", name)

	resp, err := c.get(ctx, CreatePath+"?"+query.Encode())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, parseError(resp)
	}

	var result domain.CreatedExperiment
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse created experiment: %w", err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("create response carries no token")
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach admin API at %s: %w", c.baseURL, err)
	}
	return resp, nil
}

func (c *Client) observe(ctx context.Context, op string, start time.Time, err error) {
	elapsed := time.Since(start)
	c.metrics.RecordRequest(ctx, op, elapsed, err)
	if err != nil {
		c.logger.Debug("admin request failed", "operation", op, "duration", elapsed, "error", err)
		return
	}
	c.logger.Debug("admin request completed", "operation", op, "duration", elapsed)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func parseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if msg := firstNonEmpty(errResp.Message, errResp.Error); msg != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: msg}
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
