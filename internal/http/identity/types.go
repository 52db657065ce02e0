package identity

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type (
	OTPType     string
	LogoutScope string

	// Config describes how to reach the identity provider. The service key is
	// sent as the apikey on every request, and as the bearer for admin calls.
	Config struct {
		URL        string        `yaml:"url" env:"IDENTITY_URL" env-required:"true"`
		ServiceKey string        `yaml:"service_key" env:"IDENTITY_SERVICE_KEY" env-required:"true"`
		JWTSecret  string        `yaml:"jwt_secret" env:"IDENTITY_JWT_SECRET"`
		Timeout    time.Duration `yaml:"timeout" env:"IDENTITY_TIMEOUT" env-default:"10s"`
	}

	User struct {
		ID               uuid.UUID      `json:"id"`
		Aud              string         `json:"aud,omitempty"`
		Role             string         `json:"role,omitempty"`
		Email            string         `json:"email"`
		Phone            string         `json:"phone,omitempty"`
		NewEmail         string         `json:"new_email,omitempty"`
		EmailConfirmedAt *time.Time     `json:"email_confirmed_at,omitempty"`
		LastSignInAt     *time.Time     `json:"last_sign_in_at,omitempty"`
		UserMetadata     map[string]any `json:"user_metadata"`
		AppMetadata      map[string]any `json:"app_metadata"`
		CreatedAt        time.Time      `json:"created_at"`
		UpdatedAt        time.Time      `json:"updated_at"`
	}

	Session struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int    `json:"expires_in"`
		ExpiresAt    int64  `json:"expires_at,omitempty"`
		User         *User  `json:"user,omitempty"`
	}

	// UserAttributes is the payload for user updates. Empty values
	// are omitted so that only the provided attributes change.
	UserAttributes struct {
		Email    string         `json:"email,omitempty"`
		Phone    string         `json:"phone,omitempty"`
		Password string         `json:"password,omitempty"`
		Data     map[string]any `json:"data,omitempty"`
	}

	// Error is returned for any non-2xx response from the provider.
	Error struct {
		Status  int
		Code    string
		Message string
	}

	// errorBody understands both the legacy {error, error_description} and
	// newer {code, error_code, msg} error shapes.
	errorBody struct {
		Code             any    `json:"code"`
		ErrorCode        string `json:"error_code"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Err              string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
)

const (
	OTPTypeEmail    OTPType = "email"
	OTPTypeRecovery OTPType = "recovery"
	OTPTypeSignup   OTPType = "signup"

	ScopeLocal  LogoutScope = "local"
	ScopeGlobal LogoutScope = "global"
	ScopeOthers LogoutScope = "others"
)

func (e *Error) Error() string {
	return fmt.Sprintf("identity provider error (status %d, code %q): %s", e.Status, e.Code, e.Message)
}

func (body *errorBody) toError(status int) *Error {
	out := &Error{Status: status}
	switch {
	case body.ErrorCode != "":
		out.Code = body.ErrorCode
	case body.Err != "":
		out.Code = body.Err
	default:
		if c, ok := body.Code.(string); ok {
			out.Code = c
		}
	}

	for _, m := range []string{body.Msg, body.ErrorDescription, body.Message, body.Err} {
		if m != "" {
			out.Message = m
			break
		}
	}
	if out.Message == "" {
		out.Message = http.StatusText(status)
	}

	return out
}

// IsClientError returns true if the error provided is an identity provider
// error representing a rejected request (4xx), as opposed to
// an outage or transport failure.
func IsClientError(err error) bool {
	var idErr *Error
	if errors.As(err, &idErr) {
		return idErr.Status >= 400 && idErr.Status < 500
	}

	return false
}

// MessageOf returns the provider supplied message if err is
// an identity Error, else the fallback.
func MessageOf(err error, fallback string) string {
	var idErr *Error
	if errors.As(err, &idErr) && idErr.Message != "" {
		return idErr.Message
	}

	return fallback
}

// MetadataString returns the string value for the metadata key provided, or an
// empty string if the key is missing or is not a string.
func (u *User) MetadataString(key string) string {
	if u == nil || u.UserMetadata == nil {
		return ""
	}
	if v, ok := u.UserMetadata[key].(string); ok {
		return v
	}

	return ""
}

// String omits the service key and JWT secret so the config can be logged.
func (c Config) String() string {
	return fmt.Sprintf("{URL:%s ServiceKey:%s JWTSecret:%s Timeout:%s}", c.URL, redact(c.ServiceKey), redact(c.JWTSecret), c.Timeout)
}

func (c Config) GoString() string { return "identity.Config" + c.String() }

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "[redacted]"
}
