package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/api"
	profileMocks "github.com/hbomb79/Marquee/internal/api/controllers/profile/mocks"
	jwtMocks "github.com/hbomb79/Marquee/internal/api/jwt/mocks"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type harness struct {
	gateway  *api.RestGateway
	identity *jwtMocks.MockIdentityProvider
	profiles *profileMocks.MockService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	identityProvider := jwtMocks.NewMockIdentityProvider(t)
	profiles := profileMocks.NewMockService(t)

	config := &api.RestConfig{
		HostAddr:      "127.0.0.1:0",
		CorsOrigins:   []string{"http://localhost:5173"},
		TokenCacheTTL: 30 * time.Second,
		AuthRateLimit: 1,
		AuthRateBurst: 1,
	}

	gateway := api.NewRestGateway(config, identityProvider, "", api.Services{Profile: profiles}, nil)
	return &harness{gateway: gateway, identity: identityProvider, profiles: profiles}
}

func (h *harness) do(method string, target string, token string, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.gateway.ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func Test_Health(t *testing.T) {
	h := newHarness(t)

	rec, body := h.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Service healthy", body["message"])
	assert.Equal(t, map[string]any{"status": "ok"}, body["data"])
}

func Test_ProtectedRoute_MissingToken(t *testing.T) {
	h := newHarness(t)

	rec, body := h.do(http.MethodGet, "/api/profile/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized", body["message"])
}

func Test_ProtectedRoute_RejectedToken(t *testing.T) {
	h := newHarness(t)
	h.identity.EXPECT().GetUser(mock.Anything, "bad-token").Return(nil, &identity.Error{Status: http.StatusUnauthorized, Message: "invalid JWT"}).Once()

	rec, body := h.do(http.MethodGet, "/api/profile/me", "bad-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", body["message"])
	assert.NotContains(t, rec.Body.String(), "invalid JWT")
}

func Test_ProtectedRoute_ValidToken(t *testing.T) {
	h := newHarness(t)
	user := &identity.User{ID: uuid.New(), Email: "a@b.com"}
	first := "Ada"
	h.identity.EXPECT().GetUser(mock.Anything, "good-token").Return(user, nil).Once()
	h.profiles.EXPECT().GetOrCreate(mock.Anything, user).Return(&profile.Profile{UserID: user.ID, FirstName: &first}, nil).Twice()

	for range 2 {
		rec, body := h.do(http.MethodGet, "/api/profile/me", "good-token", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, true, body["success"])

		data := body["data"].(map[string]any)
		assert.Equal(t, user.ID.String(), data["user"].(map[string]any)["id"])
		assert.Equal(t, "Ada", data["profile"].(map[string]any)["first_name"])
	}
}

func Test_PublicRoute_SkipsAuthentication(t *testing.T) {
	h := newHarness(t)

	// No auth service is configured, so the request must fail on the malformed
	// body before ever reaching it, and without any provider lookup.
	rec, body := h.do(http.MethodPost, "/api/auth/login", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Malformed request body", body["message"])
}

func Test_AuthRoutesAreRateLimited(t *testing.T) {
	h := newHarness(t)

	rec, _ := h.do(http.MethodPost, "/api/auth/login", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := h.do(http.MethodPost, "/api/auth/login", "", `{"email":`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests, please slow down", body["message"])
}

func Test_UnknownRoute(t *testing.T) {
	h := newHarness(t)

	rec, body := h.do(http.MethodGet, "/api/does-not-exist", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
}

func Test_Metrics(t *testing.T) {
	h := newHarness(t)
	h.do(http.MethodGet, "/health", "", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.gateway.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `marquee_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
