package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/pkg/client"
	"github.com/hbomb79/Marquee/pkg/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInterrupted = errors.New("test: connection reset")

var buckets = client.Buckets{Videos: "videos", Trailers: "trailers", Artworks: "artworks"}

func token() string { return "access" }

func draftVideo(id uuid.UUID, next string) map[string]any {
	return map[string]any{"id": id, "title": "Feature", "status": "draft", "next_step": next}
}

func Test_Wizard_FollowsServerNextStep(t *testing.T) {
	id := uuid.New()
	fake := newFakeServer(t)
	fake.handle(http.MethodPost, "/api/videos", func(w http.ResponseWriter, r *http.Request) {
		var basics client.Basics
		require.NoError(t, json.NewDecoder(r.Body).Decode(&basics))
		assert.Equal(t, "Feature", basics.Title)
		writeEnvelope(w, http.StatusCreated, map[string]any{"success": true, "data": draftVideo(id, client.StepDetails)})
	})
	fake.reply(http.MethodPut, "/api/videos/"+id.String()+"/details", http.StatusOK, draftVideo(id, client.StepMedia))
	fake.reply(http.MethodPut, "/api/videos/"+id.String()+"/source", http.StatusOK, draftVideo(id, client.StepMonetization))

	wizard, err := client.New(fake.URL).NewWizard(context.Background(), token, client.Basics{Title: "Feature", Category: "film"})
	require.NoError(t, err)
	assert.Equal(t, id, wizard.VideoID())
	assert.Equal(t, client.StepDetails, wizard.NextStep())

	_, err = wizard.SaveDetails(context.Background(), client.Details{Genres: []string{"drama"}})
	require.NoError(t, err)
	assert.Equal(t, client.StepMedia, wizard.NextStep())

	require.NoError(t, wizard.AttachSource(context.Background(), id.String()+"/original.mp4"))
	assert.Equal(t, client.StepMonetization, wizard.NextStep())
	assert.False(t, wizard.Done())
}

func Test_Wizard_ResumeReadsNextStep(t *testing.T) {
	id := uuid.New()
	fake := newFakeServer(t)
	fake.reply(http.MethodGet, "/api/videos/"+id.String(), http.StatusOK, map[string]any{
		"id": id, "status": "monetized", "next_step": client.StepPublish,
		"artworks": []map[string]any{{"width": 1920, "height": 1080, "file_path": id.String() + "/artwork-1920x1080.jpg"}},
	})

	wizard, err := client.New(fake.URL).ResumeWizard(context.Background(), token, id)
	require.NoError(t, err)
	assert.Equal(t, client.StepPublish, wizard.NextStep())

	details, err := wizard.Reload(context.Background())
	require.NoError(t, err)
	require.Len(t, details.Artworks, 1)
	assert.Equal(t, 1920, details.Artworks[0].Width)
}

func Test_Wizard_ResumeUnknownVideo(t *testing.T) {
	fake := newFakeServer(t)
	_, err := client.New(fake.URL).ResumeWizard(context.Background(), token, uuid.New())
	assert.True(t, client.IsStatus(err, http.StatusNotFound))
}

func Test_Wizard_EmptyArtworkIsRejected(t *testing.T) {
	fake := newFakeServer(t)
	id := uuid.New()
	fake.reply(http.MethodGet, "/api/videos/"+id.String(), http.StatusOK, draftVideo(id, client.StepMedia))

	wizard, err := client.New(fake.URL).ResumeWizard(context.Background(), token, id)
	require.NoError(t, err)

	uploader := upload.New(upload.NewMemoryBackend(), nil)
	_, err = wizard.UploadArtwork(context.Background(), uploader, buckets, 1920, 1080, upload.Source{Name: "art.jpg"}, nil)
	var clientErr *client.Error
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, "Selected file is empty", clientErr.Message)
	assert.Zero(t, fake.callCount(http.MethodPut, "/api/videos/"+id.String()+"/artworks"))
}

// Test_Wizard_InterruptedArtworkUploadResumes ensures that an artwork upload
// which fails part way through can be retried, resuming the transfer, and
// that the artwork is recorded against the video exactly once with the
// completed object path.
func Test_Wizard_InterruptedArtworkUploadResumes(t *testing.T) {
	id := uuid.New()
	fake := newFakeServer(t)
	fake.reply(http.MethodGet, "/api/videos/"+id.String(), http.StatusOK, draftVideo(id, client.StepMedia))

	var mu sync.Mutex
	var recorded []string
	fake.handle(http.MethodPut, "/api/videos/"+id.String()+"/artworks", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Width  int    `json:"width"`
			Height int    `json:"height"`
			Path   string `json:"path"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))

		mu.Lock()
		recorded = append(recorded, body.Path)
		mu.Unlock()

		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{
			"id": uuid.New(), "width": body.Width, "height": body.Height, "file_path": body.Path,
		}})
	})

	wizard, err := client.New(fake.URL).ResumeWizard(context.Background(), token, id)
	require.NoError(t, err)

	data := make([]byte, int(upload.PartSize)*2+4096)
	_, err = rand.New(rand.NewSource(42)).Read(data)
	require.NoError(t, err)
	source := upload.Source{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		Name:        "Poster.JPG",
		ContentType: "image/jpeg",
		ModTime:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	backend := upload.NewMemoryBackend()
	fingerprints := upload.NewMemoryFingerprintStore()
	uploader := upload.New(backend, fingerprints, upload.WithConcurrency(1))

	failed := false
	backend.BeforePut = func(number int) error {
		if number == 2 && !failed {
			failed = true
			return errInterrupted
		}
		return nil
	}

	_, err = wizard.UploadArtwork(context.Background(), uploader, buckets, 1920, 1080, source, nil)
	var clientErr *client.Error
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, "Upload failed, retry to resume", clientErr.Message)
	assert.ErrorIs(t, err, errInterrupted)
	assert.Empty(t, recorded, "artwork must not be recorded until the upload completes")

	var progress []int
	artwork, err := wizard.UploadArtwork(context.Background(), uploader, buckets, 1920, 1080, source, func(p int) { progress = append(progress, p) })
	require.NoError(t, err)

	expectedObject := id.String() + "/artwork-1920x1080.jpg"
	assert.Equal(t, expectedObject, artwork.FilePath)
	assert.Equal(t, []string{expectedObject}, recorded)
	assert.Equal(t, 1, fake.callCount(http.MethodPut, "/api/videos/"+id.String()+"/artworks"))

	stored, ok := backend.Object(buckets.Artworks, expectedObject)
	require.True(t, ok)
	assert.True(t, bytes.Equal(data, stored), "resumed artwork must be byte-identical to the source")
	assert.Equal(t, 1, backend.PutCount(1), "acknowledged parts must not be re-sent")
	assert.Equal(t, 100, progress[len(progress)-1])
}

func Test_Wizard_ExtensionIsSniffedWhenMissing(t *testing.T) {
	id := uuid.New()
	fake := newFakeServer(t)
	fake.reply(http.MethodGet, "/api/videos/"+id.String(), http.StatusOK, draftVideo(id, client.StepMedia))
	fake.reply(http.MethodPut, "/api/videos/"+id.String()+"/trailer", http.StatusOK, draftVideo(id, client.StepMedia))

	wizard, err := client.New(fake.URL).ResumeWizard(context.Background(), token, id)
	require.NoError(t, err)

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	backend := upload.NewMemoryBackend()
	source := upload.Source{Reader: bytes.NewReader(png), Size: int64(len(png)), Name: "trailer"}
	require.NoError(t, wizard.UploadTrailer(context.Background(), upload.New(backend, nil), buckets, source, nil))

	stored, ok := backend.Object(buckets.Trailers, id.String()+"/trailer.png")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(string(stored), "\x89PNG"))
}
