// Package client is a Go SDK for the Marquee backend-for-frontend. It wraps the
// REST surface, decoding the uniform response envelope into typed values or
// an *Error carrying the message which should be shown to the user.
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

	"github.com/hbomb79/Marquee/pkg/logger"
)

const UnexpectedErrorMessage = "An unexpected error occurred"

var log = logger.Get("Client")

type (
	// Error is returned for any request which did not succeed. Message is
	// always suitable for display.
	Error struct {
		Status  int
		Code    string
		Message string
		Err     error
	}

	envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Code    string          `json:"code"`
		Data    json.RawMessage `json:"data"`
	}

	Client struct {
		baseURL     string
		identityURL string
		http        *http.Client
	}

	Option func(*Client)
)

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("marquee request failed: %s", e.Message)
	}

	return fmt.Sprintf("marquee request failed (status %d): %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsStatus returns true if the error is an *Error with the status provided.
func IsStatus(err error, status int) bool {
	var clientErr *Error
	return errors.As(err, &clientErr) && clientErr.Status == status
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

// WithIdentityURL sets the URL of the identity provider, which is required
// to build social login URLs.
func WithIdentityURL(identityURL string) Option {
	return func(c *Client) { c.identityURL = strings.TrimRight(identityURL, "/") }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// OAuthURL returns the URL the user should be sent to in order to sign in
// with the social provider given. Once complete, the identity provider
// redirects to redirectTo with the session in the URL fragment, which should
// then be handed to Session.SetSession.
func (c *Client) OAuthURL(provider string, redirectTo string) (string, error) {
	if c.identityURL == "" {
		return "", errors.New("identity URL must be configured to build OAuth URLs")
	}
	if provider == "" {
		return "", errors.New("OAuth provider must not be empty")
	}

	query := url.Values{"provider": {provider}}
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}

	return c.identityURL + "/auth/v1/authorize?" + query.Encode(), nil
}

func (c *Client) get(ctx context.Context, path string, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, jsonBody(nil), out)
}

func (c *Client) post(ctx context.Context, path string, token string, in any, out any) error {
	return c.do(ctx, http.MethodPost, path, token, jsonBody(in), out)
}

func (c *Client) put(ctx context.Context, path string, token string, in any, out any) error {
	return c.do(ctx, http.MethodPut, path, token, jsonBody(in), out)
}

func (c *Client) patch(ctx context.Context, path string, token string, in any, out any) error {
	return c.do(ctx, http.MethodPatch, path, token, jsonBody(in), out)
}

func (c *Client) delete(ctx context.Context, path string, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, jsonBody(nil), nil)
}

type requestBody struct {
	reader      io.Reader
	contentType string
	err         error
}

func jsonBody(in any) requestBody {
	if in == nil {
		return requestBody{}
	}

	encoded, err := json.Marshal(in)
	if err != nil {
		return requestBody{err: err}
	}

	return requestBody{reader: bytes.NewReader(encoded), contentType: "application/json"}
}

// do performs the request and decodes the envelope. If out is nil, any
// data in the envelope is discarded.
func (c *Client) do(ctx context.Context, method string, path string, token string, body requestBody, out any) error {
	if body.err != nil {
		return fmt.Errorf("failed to encode %s %s request body: %w", method, path, body.err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body.reader)
	if err != nil {
		return fmt.Errorf("failed to construct %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body.contentType != "" {
		req.Header.Set("Content-Type", body.contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warnf("%s %s failed: %v\n", method, path, err)
		return &Error{Message: UnexpectedErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: UnexpectedErrorMessage, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		log.Warnf("Response (%d) from %s %s is not an envelope: %v\n", resp.StatusCode, method, path, err)
		return &Error{Status: resp.StatusCode, Message: UnexpectedErrorMessage, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		message := env.Message
		if message == "" {
			message = UnexpectedErrorMessage
		}

		return &Error{Status: resp.StatusCode, Code: env.Code, Message: message}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("response data from %s %s could not be unmarshalled: %w", method, path, err)
	}

	return nil
}
