package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Client provides a typed interface to the papertrade REST API. All calls go
// through a single request path that attaches the bearer token before send,
// decodes the response envelope, and tears the session down on a 401.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         oauth2.TokenSource
	store          CredentialStore
	onUnauthorized func()
	logger         zerolog.Logger
	validate       *validator.Validate
}

// ClientOption mutates client construction.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCredentialStore wires the persisted credential store. The token is read
// from the store at send time for every request, and the store is cleared
// when the server answers 401.
func WithCredentialStore(store CredentialStore) ClientOption {
	return func(c *Client) {
		c.store = store
		c.tokens = &StoreTokenSource{Store: store}
	}
}

// WithTokenSource overrides the token source, bypassing the credential store
// for outgoing requests. Useful for tests and CI.
func WithTokenSource(source oauth2.TokenSource) ClientOption {
	return func(c *Client) {
		c.tokens = source
	}
}

// WithUnauthorizedHook registers a callback invoked after a 401 response has
// cleared the credential store. The frontends use it to reset their in-memory
// session before reporting the login boundary to the user.
func WithUnauthorizedHook(hook func()) ClientOption {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

// WithLogger enables structured request/response logging.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a papertrade API client for the server at baseURL.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	c := &Client{
		baseURL:  baseURL,
		logger:   zerolog.Nop(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, fn := range optFns {
		fn(c)
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Status    string          `json:"status"`
	Code      string          `json:"code,omitempty"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Details   map[string]any  `json:"details,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do performs one API call. Errors without a *APIError in their chain are
// transport-level failures for which no response was received.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("invalid request path %q: %w", path, err)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	c.logger.Debug().Str("method", method).Str("url", u).Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("url", u).Msg("api request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().Str("method", method).Str("url", u).Int("status", resp.StatusCode).Msg("api response")

	c.interceptUnauthorized(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// getRaw fetches a non-envelope response, such as a file export. The request
// still carries the bearer token and a 401 still tears the session down.
func (c *Client) getRaw(ctx context.Context, path string) ([]byte, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.interceptUnauthorized(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

// decodeAPIError builds an *APIError from an error response body. Bodies that
// do not follow the envelope still produce an error with the HTTP status.
func decodeAPIError(status int, raw []byte) error {
	apiErr := &APIError{HTTPStatus: status}
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Code = env.Code
		apiErr.Message = env.Message
		apiErr.Details = env.Details
	}
	return apiErr
}
