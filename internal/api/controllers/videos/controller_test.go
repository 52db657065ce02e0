package videos_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	videosController "github.com/hbomb79/Marquee/internal/api/controllers/videos"
	"github.com/hbomb79/Marquee/internal/api/controllers/videos/mocks"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/internal/video"
	"github.com/hbomb79/Marquee/pkg/upload"
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
	provider := &stubAuthProvider{user: &jwt.AuthenticatedUser{User: &identity.User{ID: ownerID}, Token: "access"}}

	ec := echo.New()
	ec.HTTPErrorHandler = gen.GetHTTPErrorHandler(ec.DefaultHTTPErrorHandler)
	videosController.New(service, provider).SetRoutes(ec.Group("/api/videos"))

	return ec, service
}

func serve(ec *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	ec.ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func do(ec *echo.Echo, method string, path string, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return serve(ec, req)
}

func Test_CreateDraft_ReportsNextStep(t *testing.T) {
	ownerID, videoID := uuid.New(), uuid.New()
	ec, service := newServer(t, ownerID)
	service.EXPECT().CreateDraft(mock.Anything, ownerID, video.Basics{Title: "Feature", Category: "movie"}).
		Return(&video.Video{ID: videoID, OwnerID: ownerID, Title: "Feature", Status: video.StatusDraft}, nil).Once()

	rec, body := do(ec, http.MethodPost, "/api/videos", `{"title":"Feature","category":"movie"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Draft created", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, videoID.String(), data["id"])
	assert.Equal(t, "draft", data["status"])
	assert.Equal(t, "details", data["next_step"])
}

func Test_Publish_NotReady(t *testing.T) {
	ownerID, videoID := uuid.New(), uuid.New()
	ec, service := newServer(t, ownerID)
	service.EXPECT().Publish(mock.Anything, ownerID, videoID).Return(nil, fault.Validation("Video is not ready to publish")).Once()

	rec, body := do(ec, http.MethodPost, "/api/videos/"+videoID.String()+"/publish", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Video is not ready to publish", body["message"])
}

func Test_GetVideo_NotOwned(t *testing.T) {
	ownerID, videoID := uuid.New(), uuid.New()
	ec, service := newServer(t, ownerID)
	service.EXPECT().GetVideo(mock.Anything, ownerID, videoID).Return(nil, fault.NotFound("Video not found")).Once()

	rec, body := do(ec, http.MethodGet, "/api/videos/"+videoID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Video not found", body["message"])
}

func Test_DetachArtwork(t *testing.T) {
	ownerID, videoID := uuid.New(), uuid.New()

	t.Run("Size is parsed from the path", func(t *testing.T) {
		ec, service := newServer(t, ownerID)
		service.EXPECT().DetachArtwork(mock.Anything, ownerID, videoID, 1920, 1080).Return(nil).Once()

		rec, body := do(ec, http.MethodDelete, "/api/videos/"+videoID.String()+"/artworks/1920x1080", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Artwork removed", body["message"])
	})

	t.Run("Malformed size", func(t *testing.T) {
		ec, _ := newServer(t, ownerID)

		rec, body := do(ec, http.MethodDelete, "/api/videos/"+videoID.String()+"/artworks/large", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Artwork size must be in the form WIDTHxHEIGHT", body["message"])
	})
}

func Test_AttachArtwork(t *testing.T) {
	ownerID, videoID := uuid.New(), uuid.New()
	ec, service := newServer(t, ownerID)
	object := videoID.String() + "/artwork-640x360.png"
	service.EXPECT().AttachArtwork(mock.Anything, ownerID, videoID, 640, 360, object).
		Return(&video.Artwork{ID: uuid.New(), VideoID: videoID, Width: 640, Height: 360, FilePath: object}, nil).Once()

	rec, body := do(ec, http.MethodPut, "/api/videos/"+videoID.String()+"/artworks", `{"width":640,"height":360,"path":"`+object+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, object, body["data"].(map[string]any)["file_path"])
}

func Test_UploadSource(t *testing.T) {
	ownerID, videoID := uuid.New(), uuid.New()
	content := bytes.Repeat([]byte("marquee"), 1024)

	t.Run("Streams the form file to the service", func(t *testing.T) {
		ec, service := newServer(t, ownerID)
		service.EXPECT().UploadSource(mock.Anything, ownerID, videoID, mock.MatchedBy(func(source upload.Source) bool {
			read, err := io.ReadAll(io.NewSectionReader(source.Reader, 0, source.Size))
			return err == nil && source.Name == "feature.mp4" && source.Size == int64(len(content)) && bytes.Equal(read, content)
		})).Return(&video.Video{ID: videoID, Status: video.StatusMediaAttached}, nil).Once()

		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		part, err := form.CreateFormFile("file", "feature.mp4")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/videos/"+videoID.String()+"/source", body)
		req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
		rec, decoded := serve(ec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "monetization", decoded["data"].(map[string]any)["next_step"])
	})

	t.Run("Missing file", func(t *testing.T) {
		ec, _ := newServer(t, ownerID)

		rec, decoded := do(ec, http.MethodPost, "/api/videos/"+videoID.String()+"/source", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "A file is required", decoded["message"])
	})
}
