package video_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image/color"
	"io"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/broker"
	"github.com/hbomb79/Marquee/internal/catalog"
	"github.com/hbomb79/Marquee/internal/event"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/storage"
	"github.com/hbomb79/Marquee/internal/video"
	mocks "github.com/hbomb79/Marquee/internal/video/mocks"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/hbomb79/Marquee/pkg/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	errExpected = errors.New("test: expected error")

	buckets = storage.Buckets{Videos: "videos", Trailers: "trailers", Artworks: "artworks", Captions: "captions", Legal: "legal-docs"}

	// A minimal MP4 header (ftyp box) which is detected as video/mp4
	mp4Header = append([]byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'm', 'p', '4', '2', 0x00, 0x00, 0x00, 0x00, 'm', 'p', '4', '2', 'i', 's', 'o', 'm'}, make([]byte, 64)...)
)

func init() {
	logger.SetMinLoggingLevel(logger.VERBOSE.Level())
}

type harness struct {
	store     *mocks.MockDataStore
	objects   *mocks.MockObjectStore
	catalog   *mocks.MockCatalogLinker
	publisher *mocks.MockPublisher
	uploader  *mocks.MockUploader
	events    event.HandlerChannel
	service   *video.Service
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		store:     mocks.NewMockDataStore(t),
		objects:   mocks.NewMockObjectStore(t),
		catalog:   mocks.NewMockCatalogLinker(t),
		publisher: mocks.NewMockPublisher(t),
		uploader:  mocks.NewMockUploader(t),
		events:    make(event.HandlerChannel, 100),
	}

	bus := event.New()
	bus.RegisterHandlerChannel(h.events, event.VIDEO_UPDATE, event.UPLOAD_PROGRESS, event.UPLOAD_COMPLETE)
	h.objects.EXPECT().Buckets().Return(buckets).Maybe()
	h.service = video.NewService(h.store, h.objects, h.catalog, h.publisher, h.uploader, bus)
	return h
}

// ownedVideo expects the video to be fetched, returning the video provided.
func (h *harness) ownedVideo(v *video.Video) {
	h.store.EXPECT().GetVideo(mock.Anything, v.ID).Return(v, nil)
}

func (h *harness) drainEvents() []event.HandlerEvent {
	var events []event.HandlerEvent
	for {
		select {
		case ev := <-h.events:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func pngBytes(t *testing.T, width int, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(width, height, color.NRGBA{R: 200, A: 255}), imaging.PNG))
	return buf.Bytes()
}

// withDeclaredSize rewrites the IHDR chunk of a PNG so that it declares the
// dimensions given, without changing the encoded pixel data.
func withDeclaredSize(data []byte, width uint32, height uint32) []byte {
	forged := bytes.Clone(data)
	binary.BigEndian.PutUint32(forged[16:20], width)
	binary.BigEndian.PutUint32(forged[20:24], height)
	binary.BigEndian.PutUint32(forged[29:33], crc32.ChecksumIEEE(forged[12:29]))
	return forged
}

func readCloser(data []byte) io.ReadCloser { return io.NopCloser(bytes.NewReader(data)) }

func Test_StatusOrdering(t *testing.T) {
	assert.True(t, video.StatusMonetized.AtLeast(video.StatusDetailed))
	assert.False(t, video.StatusDraft.AtLeast(video.StatusDetailed))
	assert.True(t, video.StatusPublished.AtLeast(video.StatusPublished))
	assert.Equal(t, -1, video.Status("bogus").Rank())

	previous, ok := video.StatusMonetized.Previous()
	assert.True(t, ok)
	assert.Equal(t, video.StatusMediaAttached, previous)
	_, ok = video.StatusDraft.Previous()
	assert.False(t, ok)

	tests := []struct {
		status video.Status
		next   string
	}{
		{video.StatusDraft, "details"},
		{video.StatusDetailed, "media"},
		{video.StatusMediaAttached, "monetization"},
		{video.StatusMonetized, "publish"},
		{video.StatusPublished, "done"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, tt.status.NextStep(), string(tt.status))
	}
}

func Test_CreateDraft(t *testing.T) {
	owner := uuid.New()

	t.Run("Validation", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.service.CreateDraft(context.Background(), owner, video.Basics{Title: "  ", Category: "movie"})
		assert.True(t, fault.Is(err, fault.KindValidation))

		_, err = h.service.CreateDraft(context.Background(), owner, video.Basics{Title: "Film", Category: "podcast"})
		assert.True(t, fault.Is(err, fault.KindValidation))
	})

	t.Run("Creates private draft", func(t *testing.T) {
		h := newHarness(t)
		h.store.EXPECT().
			CreateVideo(mock.Anything, mock.MatchedBy(func(v *video.Video) bool {
				return v.OwnerID == owner && v.Title == "Film" && v.Category == "movie" && v.Visibility == "private" && v.Rating == nil
			})).
			RunAndReturn(func(_ context.Context, v *video.Video) (*video.Video, error) {
				v.Status = video.StatusDraft
				return v, nil
			}).
			Once()

		blank := " "
		v, err := h.service.CreateDraft(context.Background(), owner, video.Basics{Title: " Film ", Category: "Movie", Rating: &blank})
		require.NoError(t, err)
		assert.Equal(t, video.StatusDraft, v.Status)
		assert.Equal(t, []event.HandlerEvent{{Event: event.VIDEO_UPDATE, Payload: v.ID}}, h.drainEvents())
	})
}

func Test_AccessByNonOwnerIsNotFound(t *testing.T) {
	h := newHarness(t)
	v := &video.Video{ID: uuid.New(), OwnerID: uuid.New()}
	h.ownedVideo(v)

	_, err := h.service.GetVideo(context.Background(), uuid.New(), v.ID)
	assert.True(t, fault.Is(err, fault.KindNotFound))

	h.store.EXPECT().GetVideo(mock.Anything, mock.Anything).Return(nil, video.ErrVideoNotFound).Once()
	_, err = h.service.UpdateBasics(context.Background(), uuid.New(), uuid.New(), video.Basics{})
	assert.True(t, fault.Is(err, fault.KindNotFound))
}

func Test_SaveDetails(t *testing.T) {
	owner := uuid.New()

	t.Run("Normalises credits and links episode", func(t *testing.T) {
		h := newHarness(t)
		v := &video.Video{ID: uuid.New(), OwnerID: owner, Status: video.StatusDraft}
		showID := uuid.New()
		seasonID := uuid.New()
		h.ownedVideo(v)

		h.catalog.EXPECT().FindOrCreateSeason(mock.Anything, owner, showID, 1).Return(&catalog.Season{ID: seasonID}, nil).Once()
		h.catalog.EXPECT().CreateEpisode(mock.Anything, owner, seasonID, 4, v.ID).Return(&catalog.Entry{}, nil).Once()
		h.store.EXPECT().
			SaveVideoDetails(mock.Anything, v.ID, (*string)(nil), video.Credits{
				Genres: []string{"Drama", "Comedy"},
				Cast:   []string{"Ada"},
				Crew:   []video.CrewMember{{Name: "Grace", Role: "Director"}},
			}).
			Return(nil).
			Once()
		h.store.EXPECT().GetVideoCredits(mock.Anything, v.ID).Return(&video.Credits{}, nil).Once()
		h.store.EXPECT().ListCaptions(mock.Anything, v.ID).Return([]*video.Caption{}, nil).Once()
		h.store.EXPECT().ListArtworks(mock.Anything, v.ID).Return([]*video.Artwork{}, nil).Once()
		h.store.EXPECT().GetLegal(mock.Anything, v.ID).Return(nil, video.ErrLegalNotFound).Once()

		empty := "   "
		agg, err := h.service.SaveDetails(context.Background(), owner, v.ID, video.DetailsRequest{
			Synopsis: &empty,
			Genres:   []string{" Drama", "drama", "", "Comedy"},
			Cast:     []string{"Ada", "  "},
			Crew:     []video.CrewMember{{Name: " Grace ", Role: "Director"}, {}},
			Catalog:  &video.CatalogLink{ShowID: &showID, SeasonNumber: 1, EpisodeNumber: 4},
		})
		require.NoError(t, err)
		assert.Equal(t, "details", agg.NextStep)
	})

	t.Run("Catalog conflict leaves details untouched", func(t *testing.T) {
		h := newHarness(t)
		v := &video.Video{ID: uuid.New(), OwnerID: owner}
		albumID := uuid.New()
		h.ownedVideo(v)
		h.catalog.EXPECT().CreateTrack(mock.Anything, owner, albumID, 2, v.ID).Return(nil, fault.Conflict("Track already exists for this album")).Once()

		_, err := h.service.SaveDetails(context.Background(), owner, v.ID, video.DetailsRequest{Catalog: &video.CatalogLink{AlbumID: &albumID, TrackNumber: 2}})
		assert.True(t, fault.Is(err, fault.KindConflict))
		h.store.AssertNotCalled(t, "SaveVideoDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Show and album are exclusive", func(t *testing.T) {
		h := newHarness(t)
		v := &video.Video{ID: uuid.New(), OwnerID: owner}
		id := uuid.New()
		h.ownedVideo(v)

		_, err := h.service.SaveDetails(context.Background(), owner, v.ID, video.DetailsRequest{Catalog: &video.CatalogLink{AlbumID: &id, ShowID: &id}})
		assert.True(t, fault.Is(err, fault.KindValidation))
	})

	t.Run("Crew requires role", func(t *testing.T) {
		h := newHarness(t)
		v := &video.Video{ID: uuid.New(), OwnerID: owner}
		h.ownedVideo(v)

		_, err := h.service.SaveDetails(context.Background(), owner, v.ID, video.DetailsRequest{Crew: []video.CrewMember{{Name: "Grace"}}})
		assert.True(t, fault.Is(err, fault.KindValidation))
	})
}

func Test_AttachArtwork(t *testing.T) {
	owner := uuid.New()
	v := &video.Video{ID: uuid.New(), OwnerID: owner, Status: video.StatusDetailed}
	object := v.ID.String() + "/poster-1280x720.png"

	t.Run("Rejects path outside video folder", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)

		_, err := h.service.AttachArtwork(context.Background(), owner, v.ID, 1280, 720, "someone-else/poster.png")
		assert.True(t, fault.Is(err, fault.KindValidation))

		_, err = h.service.AttachArtwork(context.Background(), owner, v.ID, 1280, 720, v.ID.String()+"/../x.png")
		assert.True(t, fault.Is(err, fault.KindValidation))
	})

	t.Run("Missing object", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)
		h.objects.EXPECT().Stat(mock.Anything, "artworks", object).Return(nil, storage.ErrObjectNotFound).Once()

		_, err := h.service.AttachArtwork(context.Background(), owner, v.ID, 1280, 720, object)
		var fErr *fault.Error
		require.ErrorAs(t, err, &fErr)
		assert.Equal(t, "Uploaded file not found", fErr.Message)
	})

	t.Run("Wrong dimensions", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)
		h.objects.EXPECT().Stat(mock.Anything, "artworks", object).Return(&storage.ObjectInfo{}, nil).Once()
		h.objects.EXPECT().Get(mock.Anything, "artworks", object).Return(readCloser(pngBytes(t, 64, 36)), nil).Once()

		_, err := h.service.AttachArtwork(context.Background(), owner, v.ID, 1280, 720, object)
		var fErr *fault.Error
		require.ErrorAs(t, err, &fErr)
		assert.Equal(t, "Artwork must be 1280x720 pixels, got 64x36", fErr.Message)
	})

	t.Run("Declared size is checked before decoding", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)
		h.objects.EXPECT().Stat(mock.Anything, "artworks", object).Return(&storage.ObjectInfo{}, nil).Once()
		h.objects.EXPECT().Get(mock.Anything, "artworks", object).Return(readCloser(withDeclaredSize(pngBytes(t, 64, 36), 60000, 60000)), nil).Once()

		_, err := h.service.AttachArtwork(context.Background(), owner, v.ID, 64, 36, object)
		var fErr *fault.Error
		require.ErrorAs(t, err, &fErr)
		assert.Equal(t, "Artwork must be 64x36 pixels, got 60000x60000", fErr.Message)
	})

	t.Run("Oversized request is rejected", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)

		_, err := h.service.AttachArtwork(context.Background(), owner, v.ID, 60000, 60000, object)
		var fErr *fault.Error
		require.ErrorAs(t, err, &fErr)
		assert.Equal(t, "Artwork must be at most 4096x4096 pixels", fErr.Message)
	})

	t.Run("Not an image", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)
		h.objects.EXPECT().Stat(mock.Anything, "artworks", object).Return(&storage.ObjectInfo{}, nil).Once()
		h.objects.EXPECT().Get(mock.Anything, "artworks", object).Return(readCloser([]byte("definitely not a png")), nil).Once()

		_, err := h.service.AttachArtwork(context.Background(), owner, v.ID, 64, 36, object)
		assert.True(t, fault.Is(err, fault.KindValidation))
	})

	t.Run("Replaces existing artwork of the same size", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)
		h.objects.EXPECT().Stat(mock.Anything, "artworks", object).Return(&storage.ObjectInfo{}, nil).Once()
		h.objects.EXPECT().Get(mock.Anything, "artworks", object).Return(readCloser(pngBytes(t, 64, 36)), nil).Once()
		h.objects.EXPECT().PublicURL("artworks", object).Return("http://cdn/artworks/" + object).Once()

		h.store.EXPECT().GetArtwork(mock.Anything, v.ID, 64, 36).Return(&video.Artwork{FilePath: v.ID.String() + "/old.png"}, nil).Once()
		h.store.EXPECT().
			PutArtwork(mock.Anything, mock.MatchedBy(func(a *video.Artwork) bool {
				return a.VideoID == v.ID && a.Width == 64 && a.Height == 36 && a.FilePath == object && *a.PublicURL == "http://cdn/artworks/"+object
			})).
			RunAndReturn(func(_ context.Context, a *video.Artwork) (*video.Artwork, error) { return a, nil }).
			Once()
		h.objects.EXPECT().Remove(mock.Anything, "artworks", v.ID.String()+"/old.png").Return(nil).Once()
		h.store.EXPECT().AdvanceVideoStatus(mock.Anything, v.ID, video.StatusMediaAttached).Return(nil).Once()

		artwork, err := h.service.AttachArtwork(context.Background(), owner, v.ID, 64, 36, "/"+object)
		require.NoError(t, err)
		assert.Equal(t, object, artwork.FilePath)
	})
}

func Test_DetachRemovesStorageFirst(t *testing.T) {
	owner := uuid.New()
	trailer := "trailer.mp4"
	v := &video.Video{ID: uuid.New(), OwnerID: owner, TrailerPath: &trailer}

	t.Run("Artwork", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)

		var order []string
		h.store.EXPECT().GetArtwork(mock.Anything, v.ID, 64, 36).Return(&video.Artwork{FilePath: "art.png"}, nil).Once()
		h.objects.EXPECT().Remove(mock.Anything, "artworks", "art.png").Run(func(context.Context, string, string) { order = append(order, "storage") }).Return(nil).Once()
		h.store.EXPECT().DeleteArtwork(mock.Anything, v.ID, 64, 36).Run(func(context.Context, uuid.UUID, int, int) { order = append(order, "db") }).Return(nil).Once()

		require.NoError(t, h.service.DetachArtwork(context.Background(), owner, v.ID, 64, 36))
		assert.Equal(t, []string{"storage", "db"}, order)
	})

	t.Run("Storage failure keeps reference", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)
		h.objects.EXPECT().Remove(mock.Anything, "trailers", trailer).Return(errExpected).Once()

		_, err := h.service.DetachTrailer(context.Background(), owner, v.ID)
		assert.True(t, fault.Is(err, fault.KindProvider))
		h.store.AssertNotCalled(t, "UpdateVideo", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Trailer", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)
		h.objects.EXPECT().Remove(mock.Anything, "trailers", trailer).Return(nil).Once()
		h.store.EXPECT().UpdateVideo(mock.Anything, v.ID, map[string]any{"trailer_path": nil}).Return(&video.Video{ID: v.ID}, nil).Once()

		_, err := h.service.DetachTrailer(context.Background(), owner, v.ID)
		require.NoError(t, err)
	})

	t.Run("Missing caption", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)
		h.store.EXPECT().GetCaption(mock.Anything, v.ID, "fr").Return(nil, video.ErrCaptionNotFound).Once()

		err := h.service.DeleteCaption(context.Background(), owner, v.ID, "FR")
		assert.True(t, fault.Is(err, fault.KindNotFound))
	})
}

func Test_PutCaption(t *testing.T) {
	owner := uuid.New()
	v := &video.Video{ID: uuid.New(), OwnerID: owner, Status: video.StatusDetailed}
	object := v.ID.String() + "/captions/en.vtt"

	h := newHarness(t)
	h.ownedVideo(v)
	h.objects.EXPECT().Stat(mock.Anything, "captions", object).Return(&storage.ObjectInfo{}, nil).Once()
	h.objects.EXPECT().Get(mock.Anything, "captions", object).Return(readCloser([]byte("WEBVTT\n\n00:00.000 --> 00:01.000\nHello\n")), nil).Once()
	h.store.EXPECT().GetCaption(mock.Anything, v.ID, "en").Return(nil, video.ErrCaptionNotFound).Once()
	h.store.EXPECT().
		PutCaption(mock.Anything, mock.MatchedBy(func(c *video.Caption) bool {
			return c.Language == "en" && c.FileName == "en.vtt" && c.FilePath == object
		})).
		RunAndReturn(func(_ context.Context, c *video.Caption) (*video.Caption, error) { return c, nil }).
		Once()
	h.store.EXPECT().AdvanceVideoStatus(mock.Anything, v.ID, video.StatusMediaAttached).Return(nil).Once()

	caption, err := h.service.PutCaption(context.Background(), owner, v.ID, " EN ", "", object)
	require.NoError(t, err)
	assert.Equal(t, "en", caption.Language)
}

func Test_AttachTrailer_DraftStaysDraft(t *testing.T) {
	owner := uuid.New()
	v := &video.Video{ID: uuid.New(), OwnerID: owner, Status: video.StatusDraft}
	object := v.ID.String() + "/trailer.mp4"

	h := newHarness(t)
	h.ownedVideo(v)
	h.objects.EXPECT().Stat(mock.Anything, "trailers", object).Return(&storage.ObjectInfo{}, nil).Once()
	h.objects.EXPECT().Get(mock.Anything, "trailers", object).Return(readCloser(mp4Header), nil).Once()
	h.store.EXPECT().UpdateVideo(mock.Anything, v.ID, map[string]any{"trailer_path": object}).Return(&video.Video{ID: v.ID, Status: video.StatusDraft, TrailerPath: &object}, nil).Once()

	updated, err := h.service.AttachTrailer(context.Background(), owner, v.ID, object)
	require.NoError(t, err)
	assert.Equal(t, video.StatusDraft, updated.Status)
	h.store.AssertNotCalled(t, "AdvanceVideoStatus", mock.Anything, mock.Anything, mock.Anything)
}

func Test_UploadSource(t *testing.T) {
	owner := uuid.New()
	v := &video.Video{ID: uuid.New(), OwnerID: owner, Status: video.StatusDetailed}

	t.Run("Rejects non-media", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)

		data := []byte("just some text")
		_, err := h.service.UploadSource(context.Background(), owner, v.ID, upload.Source{Reader: bytes.NewReader(data), Size: int64(len(data)), Name: "notes.txt"})
		assert.True(t, fault.Is(err, fault.KindValidation))
	})

	t.Run("Uploads and attaches", func(t *testing.T) {
		h := newHarness(t)
		h.ownedVideo(v)

		object := v.ID.String() + "/original.mp4"
		h.uploader.EXPECT().
			Upload(mock.Anything, mock.MatchedBy(func(s upload.Source) bool { return s.ContentType == "video/mp4" }), upload.Target{Bucket: "videos", Object: object}, mock.Anything).
			RunAndReturn(func(_ context.Context, _ upload.Source, _ upload.Target, opts upload.Options) (*upload.Result, error) {
				opts.OnProgress(50)
				opts.OnProgress(100)
				return &upload.Result{}, nil
			}).
			Once()
		h.store.EXPECT().UpdateVideo(mock.Anything, v.ID, map[string]any{"video_path": object}).Return(&video.Video{ID: v.ID, VideoPath: &object}, nil).Once()
		h.store.EXPECT().AdvanceVideoStatus(mock.Anything, v.ID, video.StatusMediaAttached).Return(nil).Once()

		updated, err := h.service.UploadSource(context.Background(), owner, v.ID, upload.Source{Reader: bytes.NewReader(mp4Header), Size: int64(len(mp4Header)), Name: "Holiday.MP4"})
		require.NoError(t, err)
		assert.Equal(t, object, *updated.VideoPath)

		assert.Equal(t, []event.HandlerEvent{
			{Event: event.UPLOAD_PROGRESS, Payload: event.UploadProgress{VideoID: v.ID, Percent: 50}},
			{Event: event.UPLOAD_PROGRESS, Payload: event.UploadProgress{VideoID: v.ID, Percent: 100}},
			{Event: event.UPLOAD_COMPLETE, Payload: v.ID},
			{Event: event.VIDEO_UPDATE, Payload: v.ID},
		}, h.drainEvents())
	})
}

func Test_SaveMonetization(t *testing.T) {
	owner := uuid.New()

	t.Run("Inserts and advances once legal exists", func(t *testing.T) {
		h := newHarness(t)
		v := &video.Video{ID: uuid.New(), OwnerID: owner, Status: video.StatusMediaAttached}
		monetizationID := uuid.New()
		h.store.EXPECT().GetVideo(mock.Anything, v.ID).Return(v, nil).Once()

		blank := ""
		h.store.EXPECT().
			SaveVideoMonetization(mock.Anything, v.ID, mock.MatchedBy(func(m *video.Monetization) bool {
				return m.ID == uuid.Nil && m.Type == "avod" && m.SubscriptionType == nil
			})).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, m *video.Monetization) (*video.Monetization, error) {
				m.ID = monetizationID
				return m, nil
			}).
			Once()
		h.store.EXPECT().GetVideo(mock.Anything, v.ID).Return(&video.Video{ID: v.ID, OwnerID: owner, Status: video.StatusMediaAttached, MonetizationID: &monetizationID}, nil).Once()
		h.store.EXPECT().GetLegal(mock.Anything, v.ID).Return(&video.Legal{}, nil).Once()
		h.store.EXPECT().AdvanceVideoStatus(mock.Anything, v.ID, video.StatusMonetized).Return(nil).Once()

		m, err := h.service.SaveMonetization(context.Background(), owner, v.ID, video.MonetizationRequest{Type: "AVOD", SubscriptionType: &blank})
		require.NoError(t, err)
		assert.Equal(t, monetizationID, m.ID)
	})

	t.Run("Updates existing without legal", func(t *testing.T) {
		h := newHarness(t)
		monetizationID := uuid.New()
		v := &video.Video{ID: uuid.New(), OwnerID: owner, MonetizationID: &monetizationID}
		h.ownedVideo(v)
		h.store.EXPECT().
			SaveVideoMonetization(mock.Anything, v.ID, mock.MatchedBy(func(m *video.Monetization) bool { return m.ID == monetizationID })).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, m *video.Monetization) (*video.Monetization, error) { return m, nil }).
			Once()
		h.store.EXPECT().GetLegal(mock.Anything, v.ID).Return(nil, video.ErrLegalNotFound).Once()

		_, err := h.service.SaveMonetization(context.Background(), owner, v.ID, video.MonetizationRequest{Type: "svod"})
		require.NoError(t, err)
	})

	t.Run("Draft with legal does not skip ahead", func(t *testing.T) {
		h := newHarness(t)
		monetizationID := uuid.New()
		v := &video.Video{ID: uuid.New(), OwnerID: owner, Status: video.StatusDraft, MonetizationID: &monetizationID}
		h.ownedVideo(v)
		h.store.EXPECT().
			SaveVideoMonetization(mock.Anything, v.ID, mock.Anything).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, m *video.Monetization) (*video.Monetization, error) { return m, nil }).
			Once()
		h.store.EXPECT().GetLegal(mock.Anything, v.ID).Return(&video.Legal{}, nil).Once()

		_, err := h.service.SaveMonetization(context.Background(), owner, v.ID, video.MonetizationRequest{Type: "svod"})
		require.NoError(t, err)
		h.store.AssertNotCalled(t, "AdvanceVideoStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid type", func(t *testing.T) {
		h := newHarness(t)
		v := &video.Video{ID: uuid.New(), OwnerID: owner}
		h.ownedVideo(v)

		_, err := h.service.SaveMonetization(context.Background(), owner, v.ID, video.MonetizationRequest{Type: "free"})
		assert.True(t, fault.Is(err, fault.KindValidation))
	})
}

func Test_Publish(t *testing.T) {
	owner := uuid.New()
	source := uuid.NewString() + "/original.mp4"
	monetizationID := uuid.New()

	ready := func() *video.Video {
		return &video.Video{ID: uuid.New(), OwnerID: owner, Status: video.StatusMonetized, MonetizationID: &monetizationID, VideoPath: &source}
	}

	t.Run("Not ready", func(t *testing.T) {
		h := newHarness(t)
		v := ready()
		v.Status = video.StatusMediaAttached
		h.ownedVideo(v)

		_, err := h.service.Publish(context.Background(), owner, v.ID)
		assert.True(t, fault.Is(err, fault.KindValidation))
	})

	t.Run("Legal not accepted", func(t *testing.T) {
		h := newHarness(t)
		v := ready()
		h.ownedVideo(v)
		h.store.EXPECT().GetLegal(mock.Anything, v.ID).Return(&video.Legal{Ownership: true, NoCopyright: true}, nil).Once()

		_, err := h.service.Publish(context.Background(), owner, v.ID)
		var fErr *fault.Error
		require.ErrorAs(t, err, &fErr)
		assert.Equal(t, "All legal declarations must be accepted before publishing", fErr.Message)
	})

	t.Run("Publishes and notifies broker", func(t *testing.T) {
		h := newHarness(t)
		v := ready()
		h.ownedVideo(v)
		h.store.EXPECT().GetLegal(mock.Anything, v.ID).Return(&video.Legal{Ownership: true, NoCopyright: true, Consent: true}, nil).Once()

		published := *v
		published.Status = video.StatusPublished
		h.store.EXPECT().PublishVideo(mock.Anything, v.ID).Return(&published, nil).Once()
		h.publisher.EXPECT().Enabled().Return(true).Once()
		h.objects.EXPECT().PublicURL("videos", source).Return("http://minio/videos/" + source).Once()
		h.publisher.EXPECT().
			PublishVideo(mock.Anything, broker.VideoMessage{ID: v.ID.String(), URL: "http://minio/videos/" + source, Filename: "original.mp4"}).
			Return(errExpected).
			Once()

		got, err := h.service.Publish(context.Background(), owner, v.ID)
		require.NoError(t, err, "broker failures must not fail publishing")
		assert.Equal(t, video.StatusPublished, got.Status)
	})

	t.Run("Already published", func(t *testing.T) {
		h := newHarness(t)
		v := ready()
		v.Status = video.StatusPublished
		h.ownedVideo(v)

		got, err := h.service.Publish(context.Background(), owner, v.ID)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})
}

func Test_GetVideo(t *testing.T) {
	owner := uuid.New()
	monetizationID := uuid.New()
	v := &video.Video{ID: uuid.New(), OwnerID: owner, Status: video.StatusMediaAttached, MonetizationID: &monetizationID}

	h := newHarness(t)
	h.ownedVideo(v)
	h.store.EXPECT().GetVideoCredits(mock.Anything, v.ID).Return(&video.Credits{Genres: []string{"Drama"}}, nil).Once()
	h.store.EXPECT().ListCaptions(mock.Anything, v.ID).Return([]*video.Caption{{Language: "en"}}, nil).Once()
	h.store.EXPECT().ListArtworks(mock.Anything, v.ID).Return([]*video.Artwork{}, nil).Once()
	h.store.EXPECT().GetMonetization(mock.Anything, monetizationID).Return(&video.Monetization{ID: monetizationID, Type: "ppv"}, nil).Once()
	h.store.EXPECT().GetLegal(mock.Anything, v.ID).Return(nil, video.ErrLegalNotFound).Once()

	agg, err := h.service.GetVideo(context.Background(), owner, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "monetization", agg.NextStep)
	assert.Equal(t, []string{"Drama"}, agg.Genres)
	assert.Equal(t, "ppv", agg.Monetization.Type)
	assert.Nil(t, agg.Legal)
}

func Test_ParseSize(t *testing.T) {
	w, h, err := video.ParseSize("1280x720")
	require.NoError(t, err)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)

	for _, bad := range []string{"1280", "x720", "0x10", "axb", "-1x5"} {
		_, _, err := video.ParseSize(bad)
		assert.True(t, fault.Is(err, fault.KindValidation), bad)
	}
}
