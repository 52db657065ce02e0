package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/pkg/logger"
)

const (
	otpPath       = "/auth/v1/otp"
	verifyPath    = "/auth/v1/verify"
	tokenPath     = "/auth/v1/token"
	userPath      = "/auth/v1/user"
	recoverPath   = "/auth/v1/recover"
	logoutPath    = "/auth/v1/logout"
	healthPath    = "/auth/v1/health"
	adminUserPath = "/auth/v1/admin/users/%s"
)

var log = logger.Get("Identity")

// Client is a thin REST client for a GoTrue compatible identity provider. It
// never stores session state itself: every user-scoped call requires the
// caller to supply the access token.
type Client struct {
	config  Config
	baseURL string
	http    *http.Client
}

func New(config Config) *Client {
	return NewWithHTTPClient(config, &http.Client{Timeout: config.Timeout})
}

func NewWithHTTPClient(config Config, httpClient *http.Client) *Client {
	return &Client{
		config:  config,
		baseURL: strings.TrimRight(config.URL, "/"),
		http:    httpClient,
	}
}

// SendOTP asks the provider to dispatch a one-time-passcode to the email
// address provided. If createUser is true the provider will create the
// identity if one does not already exist.
func (c *Client) SendOTP(ctx context.Context, email string, createUser bool) error {
	body := map[string]any{"email": email, "create_user": createUser}
	return c.do(ctx, http.MethodPost, otpPath, nil, "", body, nil)
}

// VerifyOTP verifies the token provided against the email. On success the provider
// returns a new session for the (possibly newly created) user.
func (c *Client) VerifyOTP(ctx context.Context, email string, token string, otpType OTPType) (*Session, error) {
	body := map[string]any{"email": email, "token": token, "type": otpType}

	var session Session
	if err := c.do(ctx, http.MethodPost, verifyPath, nil, "", body, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email string, password string) (*Session, error) {
	body := map[string]any{"email": email, "password": password}
	query := url.Values{"grant_type": {"password"}}

	var session Session
	if err := c.do(ctx, http.MethodPost, tokenPath, query, "", body, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	body := map[string]any{"refresh_token": refreshToken}
	query := url.Values{"grant_type": {"refresh_token"}}

	var session Session
	if err := c.do(ctx, http.MethodPost, tokenPath, query, "", body, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// GetUser resolves the user which owns the access token provided. This is the
// canonical way to validate a bearer token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, userPath, nil, accessToken, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser updates the user that owns the access token. Changing the
// email triggers a confirmation email, redirecting to redirectTo (if provided).
func (c *Client) UpdateUser(ctx context.Context, accessToken string, attrs UserAttributes, redirectTo string) (*User, error) {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": {redirectTo}}
	}

	var user User
	if err := c.do(ctx, http.MethodPut, userPath, query, accessToken, attrs, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) ResetPasswordForEmail(ctx context.Context, email string, redirectTo string) error {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": {redirectTo}}
	}

	return c.do(ctx, http.MethodPost, recoverPath, query, "", map[string]any{"email": email}, nil)
}

// Logout revokes the refresh tokens for the session(s) covered by
// the scope. The access token itself remains valid until it expires.
func (c *Client) Logout(ctx context.Context, accessToken string, scope LogoutScope) error {
	query := url.Values{"scope": {string(scope)}}
	return c.do(ctx, http.MethodPost, logoutPath, query, accessToken, nil, nil)
}

// AdminUpdateUserByID updates a user using the service key, bypassing
// any confirmation flows the provider may have.
func (c *Client) AdminUpdateUserByID(ctx context.Context, userID uuid.UUID, attrs UserAttributes) (*User, error) {
	var user User
	path := fmt.Sprintf(adminUserPath, userID)
	if err := c.do(ctx, http.MethodPut, path, nil, c.config.ServiceKey, attrs, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Health checks that the provider is reachable and accepts our service key.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, healthPath, nil, "", nil, nil)
}

// do performs a request against the provider. If bearer is empty, the
// Authorization header is omitted. If out is nil, the response body is discarded.
func (c *Client) do(ctx context.Context, method string, path string, query url.Values, bearer string, in any, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to construct %s %s request: %w", method, path, err)
	}
	req.Header.Set("apikey", c.config.ServiceKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform %s %s against identity provider: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorBody
		if len(respBody) > 0 {
			if err := json.Unmarshal(respBody, &body); err != nil {
				log.Warnf("Non-OK (%d) response from %s %s could not be decoded: %v\n", resp.StatusCode, method, path, err)
			}
		}

		return body.toError(resp.StatusCode)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("response JSON from %s %s could not be unmarshalled: %w", method, path, err)
	}

	return nil
}
