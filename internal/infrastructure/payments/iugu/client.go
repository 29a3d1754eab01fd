package iugu

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
)

// DefaultBaseURL is the production Iugu API root.
const DefaultBaseURL = "https://api.iugu.com/v1/"

var ErrMissingAPIToken = errors.New("missing IUGU_API_TOKEN")

// Config configures a gateway client. Credentials are read once here and
// never mutated afterwards; concurrent orchestration runs share the client.
type Config struct {
	APIToken  string
	AccountID string
	// BaseURL overrides DefaultBaseURL (used by tests and sandboxes).
	BaseURL string
	// TestMode is sent as the `test` flag on token creation. Default false.
	TestMode bool
	// HTTPClient is the transport used for every call. Defaults to
	// http.DefaultClient; no retry or timeout is added on top of it.
	HTTPClient *http.Client
}

// Client talks to the Iugu payment gateway. The unexported methods are the
// generic REST transport; the typed operations live in customers.go,
// charges.go and invoices.go.
type Client struct {
	baseURL    string
	apiToken   string
	accountID  string
	testMode   bool
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, ErrMissingAPIToken
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		apiToken:   cfg.APIToken,
		accountID:  cfg.AccountID,
		testMode:   cfg.TestMode,
		httpClient: httpClient,
	}, nil
}

// TransportError reports a failed HTTP round trip. Nothing can be assumed
// about whether the gateway-side effect occurred.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("iugu: %s: transport failure: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError reports a completed HTTP call whose body signals a gateway
// business error. Payload carries the raw gateway response for the caller to
// interpret.
type ResponseError struct {
	Path       string
	StatusCode int
	Payload    json.RawMessage
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("iugu: %s: gateway error (status %d): %s", e.Path, e.StatusCode, string(e.Payload))
}

func (c *Client) post(ctx context.Context, path string, body map[string]any, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body map[string]any, out any) error {
	return c.send(ctx, http.MethodPut, path, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, path, out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.sendQuery(ctx, http.MethodGet, path, query, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.sendQuery(ctx, http.MethodDelete, path, query, out)
}

func (c *Client) sendQuery(ctx context.Context, method, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || hasGatewayErrors(raw) {
		return &ResponseError{Path: path, StatusCode: resp.StatusCode, Payload: raw}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ResponseError{Path: path, StatusCode: resp.StatusCode, Payload: raw}
	}
	return nil
}

// hasGatewayErrors detects Iugu's convention of signaling business failures
// through an `errors` field, sometimes on a 200 response.
func hasGatewayErrors(raw []byte) bool {
	var envelope struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return false
	}
	trimmed := strings.TrimSpace(string(envelope.Errors))
	switch trimmed {
	case "", "null", `""`, "{}", "[]":
		return false
	}
	return true
}
