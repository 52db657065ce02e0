package profile_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	profileController "github.com/hbomb79/Marquee/internal/api/controllers/profile"
	"github.com/hbomb79/Marquee/internal/api/controllers/profile/mocks"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/internal/profile"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubAuthProvider struct{ user *jwt.AuthenticatedUser }

func (s *stubAuthProvider) GetAuthenticatedUserFromContext(echo.Context) (*jwt.AuthenticatedUser, error) {
	if s.user == nil {
		return nil, errors.New("no user")
	}
	return s.user, nil
}

func newServer(t *testing.T, user *identity.User) (*echo.Echo, *mocks.MockService) {
	t.Helper()
	service := mocks.NewMockService(t)
	provider := &stubAuthProvider{}
	if user != nil {
		provider.user = &jwt.AuthenticatedUser{User: user, Token: "access"}
	}

	ec := echo.New()
	ec.HTTPErrorHandler = gen.GetHTTPErrorHandler(ec.DefaultHTTPErrorHandler)
	profileController.New(service, provider).SetRoutes(ec.Group("/api/profile"))

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

func ptr[T any](v T) *T { return &v }

func Test_GetCurrent(t *testing.T) {
	user := &identity.User{ID: uuid.New(), Email: "a@b.com"}
	ec, service := newServer(t, user)
	service.EXPECT().GetOrCreate(mock.Anything, user).Return(&profile.Profile{UserID: user.ID, FirstName: ptr("Ada")}, nil).Twice()

	for _, route := range []struct{ method, path string }{{http.MethodGet, "/api/profile/me"}, {http.MethodPost, "/api/profile/ensure"}} {
		rec, body := do(ec, route.method, route.path, "")
		require.Equal(t, http.StatusOK, rec.Code, route.path)
		assert.Equal(t, "Profile fetched", body["message"])

		data := body["data"].(map[string]any)
		assert.Equal(t, "a@b.com", data["user"].(map[string]any)["email"])
		assert.Equal(t, "Ada", data["profile"].(map[string]any)["first_name"])
	}
}

func Test_Update_ForbiddenField(t *testing.T) {
	user := &identity.User{ID: uuid.New()}
	ec, service := newServer(t, user)
	service.EXPECT().Update(mock.Anything, user.ID, map[string]any{"role": "admin"}).
		Return(nil, fault.Validation("Field(s) not allowed: role")).Once()

	rec, body := do(ec, http.MethodPatch, "/api/profile/update", `{"role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Field(s) not allowed: role", body["message"])
}

func Test_Update_MalformedBody(t *testing.T) {
	ec, _ := newServer(t, &identity.User{ID: uuid.New()})

	rec, body := do(ec, http.MethodPatch, "/api/profile/update", `{"bio":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Malformed request body", body["message"])
}

func Test_ChangePassword(t *testing.T) {
	user := &identity.User{ID: uuid.New()}

	t.Run("Logout others defaults to false", func(t *testing.T) {
		ec, service := newServer(t, user)
		service.EXPECT().ChangePassword(mock.Anything, user.ID, "access", "n3w-password", false).Return(nil).Once()

		rec, body := do(ec, http.MethodPost, "/api/profile/password/change", `{"newPassword":"n3w-password"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["data"].(map[string]any)["loggedOutOthers"])
	})

	t.Run("Logout others", func(t *testing.T) {
		ec, service := newServer(t, user)
		service.EXPECT().ChangePassword(mock.Anything, user.ID, "access", "n3w-password", true).Return(nil).Once()

		rec, body := do(ec, http.MethodPost, "/api/profile/password/change", `{"newPassword":"n3w-password","logoutOthers":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["data"].(map[string]any)["loggedOutOthers"])
	})
}

func Test_RequestEmailChange_UsesCallerToken(t *testing.T) {
	ec, service := newServer(t, &identity.User{ID: uuid.New()})
	service.EXPECT().RequestEmailChange(mock.Anything, "access", "new@b.com").Return(nil).Once()

	rec, body := do(ec, http.MethodPost, "/api/profile/email/request", `{"email":"new@b.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Confirmation email sent", body["message"])
}

func Test_Unauthenticated(t *testing.T) {
	ec, _ := newServer(t, nil)

	rec, body := do(ec, http.MethodGet, "/api/profile/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized", body["message"])
}
