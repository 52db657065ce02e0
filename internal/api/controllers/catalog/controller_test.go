package catalog_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	catalogController "github.com/hbomb79/Marquee/internal/api/controllers/catalog"
	"github.com/hbomb79/Marquee/internal/api/controllers/catalog/mocks"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/catalog"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/http/identity"
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

func newServer(t *testing.T, ownerID uuid.UUID) (*echo.Echo, *mocks.MockService) {
	t.Helper()
	service := mocks.NewMockService(t)
	provider := &stubAuthProvider{}
	if ownerID != uuid.Nil {
		provider.user = &jwt.AuthenticatedUser{User: &identity.User{ID: ownerID}, Token: "access"}
	}

	ec := echo.New()
	ec.HTTPErrorHandler = gen.GetHTTPErrorHandler(ec.DefaultHTTPErrorHandler)
	catalogController.New(service, provider).SetRoutes(ec.Group("/api"))

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

func Test_FindOrCreateSeason(t *testing.T) {
	ownerID, showID, seasonID := uuid.New(), uuid.New(), uuid.New()
	ec, service := newServer(t, ownerID)
	service.EXPECT().FindOrCreateSeason(mock.Anything, ownerID, showID, 2).
		Return(&catalog.Season{ID: seasonID, ShowID: showID, SeasonNumber: 2}, nil).Twice()

	for range 2 {
		rec, body := do(ec, http.MethodPost, "/api/shows/"+showID.String()+"/seasons", `{"season_number":2}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, seasonID.String(), body["data"].(map[string]any)["id"])
	}
}

func Test_CreateEpisode_Conflict(t *testing.T) {
	ownerID, seasonID, videoID := uuid.New(), uuid.New(), uuid.New()
	ec, service := newServer(t, ownerID)
	service.EXPECT().CreateEpisode(mock.Anything, ownerID, seasonID, 3, videoID).
		Return(nil, fault.Conflict("Episode already exists for this season")).Once()

	rec, body := do(ec, http.MethodPost, "/api/seasons/"+seasonID.String()+"/episodes", `{"number":3,"video_id":"`+videoID.String()+`"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Episode already exists for this season", body["message"])
}

func Test_CreateTrack(t *testing.T) {
	ownerID, albumID, videoID, entryID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	ec, service := newServer(t, ownerID)
	service.EXPECT().CreateTrack(mock.Anything, ownerID, albumID, 1, videoID).
		Return(&catalog.Entry{ID: entryID, CollectionID: albumID, Number: 1, VideoID: videoID}, nil).Once()

	rec, body := do(ec, http.MethodPost, "/api/albums/"+albumID.String()+"/tracks", `{"number":1,"video_id":"`+videoID.String()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Track saved", body["message"])
	assert.Equal(t, entryID.String(), body["data"].(map[string]any)["id"])
}

func Test_InvalidPathID(t *testing.T) {
	ec, _ := newServer(t, uuid.New())

	rec, body := do(ec, http.MethodPost, "/api/shows/not-a-uuid/seasons", `{"season_number":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id", body["message"])
}

func Test_Unauthenticated(t *testing.T) {
	ec, _ := newServer(t, uuid.Nil)

	rec, body := do(ec, http.MethodGet, "/api/shows", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", body["message"])
}
