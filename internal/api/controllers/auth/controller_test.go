package auth_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	authController "github.com/hbomb79/Marquee/internal/api/controllers/auth"
	"github.com/hbomb79/Marquee/internal/api/controllers/auth/mocks"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/auth"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubAuthProvider struct {
	user    *jwt.AuthenticatedUser
	revoked []string
}

func (s *stubAuthProvider) GetAuthenticatedUserFromContext(echo.Context) (*jwt.AuthenticatedUser, error) {
	if s.user == nil {
		return nil, errors.New("no user")
	}
	return s.user, nil
}

func (s *stubAuthProvider) RevokeToken(token string) { s.revoked = append(s.revoked, token) }

func newServer(t *testing.T, provider *stubAuthProvider) (*echo.Echo, *mocks.MockService) {
	t.Helper()
	service := mocks.NewMockService(t)

	ec := echo.New()
	ec.HTTPErrorHandler = gen.GetHTTPErrorHandler(ec.DefaultHTTPErrorHandler)
	authController.New(service, provider).SetRoutes(ec.Group("/api/auth"))

	return ec, service
}

func do(ec *echo.Echo, method string, path string, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ec.ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func Test_Login_WrongPassword(t *testing.T) {
	ec, service := newServer(t, &stubAuthProvider{})
	service.EXPECT().Login(mock.Anything, "a@b.com", "wrong").Return(nil, fault.Auth("Invalid credentials")).Once()

	rec, body := do(ec, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid credentials", body["message"])
	assert.NotContains(t, body, "data", "no session must be returned on failure")
}

func Test_Login_Success(t *testing.T) {
	ec, service := newServer(t, &stubAuthProvider{})
	userID := uuid.New()
	service.EXPECT().Login(mock.Anything, "a@b.com", "secret").Return(&auth.Result{
		User:    &identity.User{ID: userID, Email: "a@b.com"},
		Session: &identity.Session{AccessToken: "access", RefreshToken: "refresh"},
	}, nil).Once()

	rec, body := do(ec, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "access", data["session"].(map[string]any)["access_token"])
	assert.Equal(t, userID.String(), data["user"].(map[string]any)["id"])
}

func Test_MalformedBody(t *testing.T) {
	ec, _ := newServer(t, &stubAuthProvider{})

	rec, body := do(ec, http.MethodPost, "/api/auth/login", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Malformed request body", body["message"])
}

func Test_SignupVerifyOTP_Conflict(t *testing.T) {
	ec, service := newServer(t, &stubAuthProvider{})
	service.EXPECT().SignupVerifyOTP(mock.Anything, auth.SignupRequest{
		Email: "a@b.com", Token: "123456", Password: "pw", FirstName: "Ada", LastName: "Lovelace", Phone: "+1",
	}).Return(nil, fault.Conflict("User already registered. Please login.")).Once()

	rec, body := do(ec, http.MethodPost, "/api/auth/signup/verify-otp",
		`{"email":"a@b.com","token":"123456","password":"pw","firstName":"Ada","lastName":"Lovelace","phone":"+1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User already registered. Please login.", body["message"])
	assert.Equal(t, "CONFLICT", body["code"])
}

func Test_ProviderErrorCauseIsNotLeaked(t *testing.T) {
	ec, service := newServer(t, &stubAuthProvider{})
	service.EXPECT().SignupSendOTP(mock.Anything, "a@b.com").Return(fault.Provider("Failed to send OTP", errors.New("dial tcp: connection refused"))).Once()

	rec, body := do(ec, http.MethodPost, "/api/auth/signup/send-otp", `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to send OTP", body["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func Test_Logout_RevokesToken(t *testing.T) {
	provider := &stubAuthProvider{user: &jwt.AuthenticatedUser{User: &identity.User{ID: uuid.New()}, Token: "access"}}
	ec, service := newServer(t, provider)
	service.EXPECT().Logout(mock.Anything, "access").Return(nil).Once()

	rec, body := do(ec, http.MethodPost, "/api/auth/logout", ``)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []string{"access"}, provider.revoked)
}

func Test_ResetPassword_RequiresUser(t *testing.T) {
	ec, _ := newServer(t, &stubAuthProvider{})

	rec, body := do(ec, http.MethodPost, "/api/auth/forgot-password/reset", `{"newPassword":"pw"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", body["message"])
}

func Test_ResetPassword(t *testing.T) {
	provider := &stubAuthProvider{user: &jwt.AuthenticatedUser{User: &identity.User{ID: uuid.New()}, Token: "recovery"}}
	ec, service := newServer(t, provider)
	service.EXPECT().ResetPassword(mock.Anything, "recovery", "new-password").Return(nil).Once()

	rec, body := do(ec, http.MethodPost, "/api/auth/forgot-password/reset", `{"newPassword":"new-password"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"updated": true}, body["data"])
}
