package forward

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"relay/internal/infra"
)

// ErrorKind classifies why a delivery attempt failed.
type ErrorKind string

const (
	// KindNoResponse means the request went out but no response came back
	// (connection failure or timeout).
	KindNoResponse ErrorKind = "NO_RESPONSE"
	// KindHTTPError means the upstream answered with a non-2xx status.
	KindHTTPError ErrorKind = "HTTP_ERROR"
	// KindRequestSetupError means the request could not be built at all.
	KindRequestSetupError ErrorKind = "REQUEST_SETUP_ERROR"
)

// Target roles, sourced from configuration.
const (
	RoleDirect = "direct"
	RoleProxy  = "proxy"
)

// Target is one candidate upstream endpoint for a delivery.
type Target struct {
	URL  string
	Role string
}

// Result is the normalized outcome of a successful delivery. Body holds
// decoded JSON when the upstream says it sent JSON, otherwise the raw text.
type Result struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Body    any    `json:"body"`
	Target  string `json:"target"`
}

// AttemptError carries the classification of one failed delivery attempt.
type AttemptError struct {
	Kind       ErrorKind
	Target     string
	Status     int
	StatusText string
	Body       any
	Err        error
}

func (e *AttemptError) Error() string {
	switch e.Kind {
	case KindHTTPError:
		return fmt.Sprintf("forward: %s returned %d %s", e.Target, e.Status, e.StatusText)
	case KindRequestSetupError:
		return fmt.Sprintf("forward: build request for %s: %v", e.Target, e.Err)
	default:
		return fmt.Sprintf("forward: no response from %s: %v", e.Target, e.Err)
	}
}

func (e *AttemptError) Unwrap() error { return e.Err }

// Options configures the delivery attempter.
type Options struct {
	HTTPClient     *http.Client
	SharedSecret   string
	RequestTimeout time.Duration
	Logger         *infra.Logger
}

// Attempter performs single HTTP POST deliveries with a bounded per-attempt
// timeout. Retry semantics live entirely in Fallback.
type Attempter struct {
	httpClient *http.Client
	secret     string
	timeout    time.Duration
	logger     *infra.Logger
}

// NewAttempter constructs an attempter with sane defaults and injected
// dependencies.
func NewAttempter(opts Options) *Attempter {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		discard := infra.Logger(zerolog.New(io.Discard))
		logger = &discard
	}
	return &Attempter{
		httpClient: httpClient,
		secret:     opts.SharedSecret,
		timeout:    timeout,
		logger:     logger,
	}
}

// Deliver posts body to the target exactly once and classifies the outcome.
// The per-attempt timeout is the sole cancellation trigger: when it elapses
// the attempt is reported as NO_RESPONSE.
func (a *Attempter) Deliver(ctx context.Context, target Target, contentType string, body []byte) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, bytes.NewReader(body))
	if err != nil {
		return nil, &AttemptError{Kind: KindRequestSetupError, Target: target.URL, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	if a.secret != "" {
		req.Header.Set("X-Form-Secret", a.secret)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &AttemptError{Kind: KindNoResponse, Target: target.URL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AttemptError{Kind: KindNoResponse, Target: target.URL, Err: err}
	}
	parsed := ParseResponseBody(resp.Header.Get("Content-Type"), raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AttemptError{
			Kind:       KindHTTPError,
			Target:     target.URL,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       parsed,
		}
	}

	a.logger.Debug().
		Str("target", target.URL).
		Str("role", target.Role).
		Int("status", resp.StatusCode).
		Msg("forward: delivered")
	return &Result{Success: true, Status: resp.StatusCode, Body: parsed, Target: target.URL}, nil
}

// ParseResponseBody decodes JSON bodies and leaves everything else as opaque
// text. A body that claims to be JSON but does not parse is kept as text.
func ParseResponseBody(contentType string, raw []byte) any {
	if strings.Contains(strings.ToLower(contentType), "json") {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err == nil {
			return decoded
		}
	}
	return string(raw)
}
