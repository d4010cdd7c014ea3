package session

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

const defaultRequestTimeout = 10 * time.Second

// apiFailure is the structured failure body the storefront API sends with
// non-2xx responses
type apiFailure struct {
	Msg string `json:"msg"`
}

// Client is the HTTP transport for the storefront API. It authenticates
// requests from the shared Credentials context, so installing or clearing a
// session token never mutates client internals.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials *Credentials
	logger      Logger
}

var _ Transport = (*Client)(nil)

// ClientOption customizes transport construction
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClientLogger overrides the transport logger
func WithClientLogger(logger Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient returns a transport rooted at baseURL. Credentials may be shared
// with a store so login and logout control the Authorization header.
func NewClient(baseURL string, credentials *Credentials, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: credentials,
		httpClient:  &http.Client{Timeout: defaultRequestTimeout},
		logger:      defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.credentials == nil {
		c.credentials = NewCredentials()
	}

	return c
}

// Get implements Transport
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post implements Transport
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put implements Transport
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete implements Transport
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to encode request body").
				WithMetadata(map[string]any{"path": path})
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return transportError(err, path)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth, ok := c.credentials.Authorization(); ok {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("%s %s transport failure: %v", method, path, err)
		return transportError(err, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err, path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var failure apiFailure
		if err := json.Unmarshal(raw, &failure); err == nil && failure.Msg != "" {
			return serverError(failure.Msg, resp.StatusCode, path)
		}
		c.logger.Debug("%s %s -> %d without structured message", method, path, resp.StatusCode)
		return statusError(resp.StatusCode, path)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to decode response body").
			WithTextCode(textCodeDecodeFailed).
			WithMetadata(map[string]any{
				"status": resp.StatusCode,
				"path":   path,
			})
	}

	return nil
}
