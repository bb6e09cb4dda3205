package pairing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RequestIDHeader is propagated on outbound requests when the context carries
// a request id.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// ContextWithRequestID stores id on ctx for propagation by Client.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if strings.TrimSpace(id) == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id stored by ContextWithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header on outbound requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(ua)
	}
}

// WithLogger attaches a logger for exchange diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client is the HTTP Submitter. It posts JSON and classifies the response.
type Client struct {
	http      *http.Client
	timeout   time.Duration
	userAgent string
	logger    *zap.Logger
}

var _ Submitter = (*Client)(nil)

// NewClient builds a Client with the supplied options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// FindPairs posts req to endpoint. The body is decoded as JSON regardless of
// the status code. Non-2xx responses become *ServiceError; failures to send,
// read or decode become *TransportError.
func (c *Client) FindPairs(ctx context.Context, endpoint string, req SearchRequest) ([]PairResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := c.newRequest(ctx, endpoint, req)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}

	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn("pairing request failed",
			zap.String("endpoint", endpoint),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return nil, &TransportError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	c.logger.Debug("pairing response",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeServiceError(resp.StatusCode, body)
	}

	var pairs []PairResult
	if err := json.Unmarshal(body, &pairs); err != nil {
		return nil, &TransportError{Op: "decode response", Err: fmt.Errorf("decode response: %w", err)}
	}
	if pairs == nil {
		pairs = []PairResult{}
	}
	return pairs, nil
}

func (c *Client) newRequest(ctx context.Context, endpoint string, payload SearchRequest) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}
	return req, nil
}

// decodeServiceError reads {"error": "..."} from a failed response. A body
// that is not JSON is a transport failure; a JSON body without an error
// string falls back to UnknownErrorMessage.
func decodeServiceError(status int, body []byte) error {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return &TransportError{Op: "decode response", Err: fmt.Errorf("decode response: %w", err)}
	}
	reason := ""
	if obj, ok := raw.(map[string]any); ok {
		if msg, ok := obj["error"].(string); ok {
			reason = strings.TrimSpace(msg)
		}
	}
	if reason == "" {
		reason = UnknownErrorMessage
	}
	return &ServiceError{StatusCode: status, Reason: reason}
}
