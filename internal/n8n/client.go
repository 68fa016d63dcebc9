// Package n8n provides convenience methods to trigger n8n workflows either
// via public webhooks or through the authenticated REST API.
package n8n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"relay/internal/forward"
	"relay/internal/infra"
)

// ErrMissingAPIKey indicates that an authenticated call was attempted
// without credentials.
var ErrMissingAPIKey = errors.New("n8n: api key is required")

const apiKeyHeader = "X-N8N-API-KEY"

// Options configures the n8n client.
type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client calls an n8n instance. Webhook triggers are public; workflow
// operations require the API key.
type Client struct {
	rest    *resty.Client
	baseURL string
	apiKey  string
	logger  *infra.Logger
}

// CallResult is the normalized outcome of an n8n call that received a
// response. Success mirrors the HTTP status class.
type CallResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Status  int    `json:"status"`
	Data    any    `json:"data"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	rest := resty.New().SetTimeout(timeout)
	if opts.HTTPClient != nil {
		rest = resty.NewWithClient(opts.HTTPClient).SetTimeout(timeout)
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:5678"
	}
	logger := opts.Logger
	if logger == nil {
		discard := infra.Logger(zerolog.New(io.Discard))
		logger = &discard
	}
	return &Client{
		rest:    rest,
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(opts.APIKey),
		logger:  logger,
	}
}

// HasAPIKey reports whether authenticated REST calls are possible.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// TriggerWebhook posts payload to a public webhook. Absolute URLs pass
// through untouched; anything else joins the configured base URL.
func (c *Client) TriggerWebhook(ctx context.Context, pathOrURL string, payload any) (*CallResult, error) {
	url := pathOrURL
	if !strings.HasPrefix(url, "http") {
		url = c.baseURL + "/" + strings.TrimLeft(url, "/")
	}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	return c.normalize(url, resp, err)
}

// RunWorkflow executes a workflow via the authenticated REST API.
func (c *Client) RunWorkflow(ctx context.Context, workflowID string, payload any) (*CallResult, error) {
	if !c.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}
	url := fmt.Sprintf("%s/api/v1/workflows/%s/run", c.baseURL, workflowID)
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(apiKeyHeader, c.apiKey).
		SetBody(map[string]any{"workflowData": payload}).
		Post(url)
	return c.normalize(url, resp, err)
}

// GetWorkflow fetches workflow metadata via the authenticated REST API.
func (c *Client) GetWorkflow(ctx context.Context, workflowID string) (*CallResult, error) {
	if !c.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}
	url := fmt.Sprintf("%s/api/v1/workflows/%s", c.baseURL, workflowID)
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, c.apiKey).
		Get(url)
	return c.normalize(url, resp, err)
}

// normalize folds resty outcomes into the shared delivery taxonomy: transport
// failures become NO_RESPONSE errors, while any received response becomes a
// CallResult regardless of status.
func (c *Client) normalize(url string, resp *resty.Response, err error) (*CallResult, error) {
	if err != nil {
		return nil, &forward.AttemptError{Kind: forward.KindNoResponse, Target: url, Err: err}
	}
	data := forward.ParseResponseBody(resp.Header().Get("Content-Type"), resp.Body())
	result := &CallResult{
		Success: !resp.IsError(),
		URL:     url,
		Status:  resp.StatusCode(),
		Data:    data,
	}
	if resp.IsError() {
		c.logger.Warn().Str("url", url).Int("status", resp.StatusCode()).Msg("n8n: call failed")
	}
	return result, nil
}
