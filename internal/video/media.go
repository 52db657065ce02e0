package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/event"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/storage"
	"github.com/hbomb79/Marquee/pkg/upload"
)

const (
	maxArtworkBytes     = 20 * 1024 * 1024
	maxArtworkDimension = 4096
	sniffBytes          = 3072
)

var captionTypes = []string{"text/vtt", "application/x-subrip", "text/plain"}

// ParseSize parses an artwork size in the form WxH.
func ParseSize(size string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(size), "x")
	if !ok {
		return 0, 0, fault.Validation("Artwork size must be in the form WIDTHxHEIGHT")
	}

	width, wErr := strconv.Atoi(w)
	height, hErr := strconv.Atoi(h)
	if wErr != nil || hErr != nil || width <= 0 || height <= 0 {
		return 0, 0, fault.Validation("Artwork size must be in the form WIDTHxHEIGHT")
	}

	return width, height, nil
}

// AttachSource attaches an already uploaded object as the source media of
// the video. The object must be a video or audio file.
func (service *Service) AttachSource(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, filePath string) (*Video, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	object, err := service.verifyMedia(ctx, videoID, service.objects.Buckets().Videos, filePath)
	if err != nil {
		return nil, err
	}

	return service.setSource(ctx, video, object)
}

// UploadSource uploads the source provided to object storage and attaches it
// to the video. Progress is dispatched as UPLOAD_PROGRESS events.
func (service *Service) UploadSource(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, source upload.Source) (*Video, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	if source.Reader == nil || source.Size <= 0 {
		return nil, fault.Validation("Uploaded file is empty")
	}

	mime, err := mimetype.DetectReader(io.NewSectionReader(source.Reader, 0, sniffBytes))
	if err != nil {
		return nil, fault.Validation("Failed to read uploaded file")
	}
	if !isMedia(mime) {
		return nil, fault.Validation("Uploaded file must be a video or audio file")
	}
	if source.ContentType == "" || source.ContentType == "application/octet-stream" {
		source.ContentType = mime.String()
	}

	ext := strings.ToLower(path.Ext(source.Name))
	if ext == "" {
		ext = mime.Extension()
	}

	object := fmt.Sprintf("%s/original%s", videoID, ext)
	target := upload.Target{Bucket: service.objects.Buckets().Videos, Object: object}
	if _, err := service.uploader.Upload(ctx, source, target, upload.Options{
		OnProgress: func(percent int) {
			service.dispatch(event.UPLOAD_PROGRESS, event.UploadProgress{VideoID: videoID, Percent: percent})
		},
	}); err != nil {
		return nil, fault.Provider("Failed to upload video", err)
	}

	service.dispatch(event.UPLOAD_COMPLETE, videoID)
	return service.setSource(ctx, video, object)
}

func (service *Service) setSource(ctx context.Context, video *Video, object string) (*Video, error) {
	updated, err := service.store.UpdateVideo(ctx, video.ID, map[string]any{"video_path": object})
	if err != nil {
		return nil, fault.Persistence("Failed to attach video", err)
	}

	if video.VideoPath != nil && *video.VideoPath != object {
		service.removeQuietly(ctx, service.objects.Buckets().Videos, *video.VideoPath)
	}

	if err := service.advance(ctx, video, StatusMediaAttached); err != nil {
		return nil, err
	}

	service.notify(video.ID)
	return updated, nil
}

func (service *Service) AttachTrailer(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, filePath string) (*Video, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	bucket := service.objects.Buckets().Trailers
	object, err := service.verifyMedia(ctx, videoID, bucket, filePath)
	if err != nil {
		return nil, err
	}

	updated, err := service.store.UpdateVideo(ctx, videoID, map[string]any{"trailer_path": object})
	if err != nil {
		return nil, fault.Persistence("Failed to attach trailer", err)
	}

	if video.TrailerPath != nil && *video.TrailerPath != object {
		service.removeQuietly(ctx, bucket, *video.TrailerPath)
	}

	if err := service.advance(ctx, video, StatusMediaAttached); err != nil {
		return nil, err
	}

	service.notify(videoID)
	return updated, nil
}

// DetachTrailer removes the trailer from storage before clearing
// it from the video.
func (service *Service) DetachTrailer(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID) (*Video, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}
	if video.TrailerPath == nil {
		return nil, fault.NotFound("Trailer not found")
	}

	if err := service.objects.Remove(ctx, service.objects.Buckets().Trailers, *video.TrailerPath); err != nil {
		return nil, fault.Provider("Failed to delete trailer", err)
	}

	updated, err := service.store.UpdateVideo(ctx, videoID, map[string]any{"trailer_path": nil})
	if err != nil {
		return nil, fault.Persistence("Failed to detach trailer", err)
	}

	service.notify(videoID)
	return updated, nil
}

// AttachArtwork attaches an uploaded image as the artwork of the size provided,
// replacing any existing artwork of the same size. The image must have
// exactly the dimensions given.
func (service *Service) AttachArtwork(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, width int, height int, filePath string) (*Artwork, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fault.Validation("Artwork width and height must be positive integers")
	}
	if width > maxArtworkDimension || height > maxArtworkDimension {
		return nil, fault.Validation(fmt.Sprintf("Artwork must be at most %dx%d pixels", maxArtworkDimension, maxArtworkDimension))
	}

	bucket := service.objects.Buckets().Artworks
	object, err := service.objectPath(videoID, filePath)
	if err != nil {
		return nil, err
	}
	if err := service.verifyArtwork(ctx, bucket, object, width, height); err != nil {
		return nil, err
	}

	existing, err := service.store.GetArtwork(ctx, videoID, width, height)
	if err != nil && !errors.Is(err, ErrArtworkNotFound) {
		return nil, fault.Persistence("Failed to fetch artwork", err)
	}

	publicURL := service.objects.PublicURL(bucket, object)
	artwork, err := service.store.PutArtwork(ctx, &Artwork{ID: uuid.New(), VideoID: videoID, Width: width, Height: height, FilePath: object, PublicURL: &publicURL})
	if err != nil {
		return nil, fault.Persistence("Failed to save artwork", err)
	}

	if existing != nil && existing.FilePath != object {
		service.removeQuietly(ctx, bucket, existing.FilePath)
	}

	if err := service.advance(ctx, video, StatusMediaAttached); err != nil {
		return nil, err
	}

	service.notify(videoID)
	return artwork, nil
}

func (service *Service) DetachArtwork(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, width int, height int) error {
	if _, err := service.ownedVideo(ctx, ownerID, videoID); err != nil {
		return err
	}

	artwork, err := service.store.GetArtwork(ctx, videoID, width, height)
	if errors.Is(err, ErrArtworkNotFound) {
		return fault.NotFound("Artwork not found")
	} else if err != nil {
		return fault.Persistence("Failed to fetch artwork", err)
	}

	if err := service.objects.Remove(ctx, service.objects.Buckets().Artworks, artwork.FilePath); err != nil {
		return fault.Provider("Failed to delete artwork", err)
	}

	if err := service.store.DeleteArtwork(ctx, videoID, width, height); err != nil {
		return fault.Persistence("Failed to delete artwork", err)
	}

	service.notify(videoID)
	return nil
}

// PutCaption attaches an uploaded caption file for the language provided. An
// existing caption for the same language is replaced.
func (service *Service) PutCaption(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, language string, fileName string, filePath string) (*Caption, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	language = strings.ToLower(strings.TrimSpace(language))
	fileName = strings.TrimSpace(fileName)
	if language == "" || len(language) > 16 {
		return nil, fault.Validation("Caption language is required")
	}
	if fileName == "" {
		fileName = path.Base(filePath)
	}

	bucket := service.objects.Buckets().Captions
	object, err := service.objectPath(videoID, filePath)
	if err != nil {
		return nil, err
	}
	if _, err := service.stat(ctx, bucket, object); err != nil {
		return nil, err
	}

	mime, err := service.sniff(ctx, bucket, object)
	if err != nil {
		return nil, err
	}
	if !mimeIn(mime, captionTypes) {
		return nil, fault.Validation("Caption must be a WebVTT or SubRip file")
	}

	existing, err := service.store.GetCaption(ctx, videoID, language)
	if err != nil && !errors.Is(err, ErrCaptionNotFound) {
		return nil, fault.Persistence("Failed to fetch caption", err)
	}

	caption, err := service.store.PutCaption(ctx, &Caption{ID: uuid.New(), VideoID: videoID, Language: language, FileName: fileName, FilePath: object})
	if err != nil {
		return nil, fault.Persistence("Failed to save caption", err)
	}

	if existing != nil && existing.FilePath != object {
		service.removeQuietly(ctx, bucket, existing.FilePath)
	}

	if err := service.advance(ctx, video, StatusMediaAttached); err != nil {
		return nil, err
	}

	service.notify(videoID)
	return caption, nil
}

func (service *Service) ListCaptions(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID) ([]*Caption, error) {
	if _, err := service.ownedVideo(ctx, ownerID, videoID); err != nil {
		return nil, err
	}

	captions, err := service.store.ListCaptions(ctx, videoID)
	if err != nil {
		return nil, fault.Persistence("Failed to fetch captions", err)
	}

	return captions, nil
}

// DeleteCaption removes the caption file from storage before deleting the caption.
func (service *Service) DeleteCaption(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, language string) error {
	if _, err := service.ownedVideo(ctx, ownerID, videoID); err != nil {
		return err
	}

	language = strings.ToLower(strings.TrimSpace(language))
	caption, err := service.store.GetCaption(ctx, videoID, language)
	if errors.Is(err, ErrCaptionNotFound) {
		return fault.NotFound("Caption not found")
	} else if err != nil {
		return fault.Persistence("Failed to fetch caption", err)
	}

	if err := service.objects.Remove(ctx, service.objects.Buckets().Captions, caption.FilePath); err != nil {
		return fault.Provider("Failed to delete caption file", err)
	}

	if err := service.store.DeleteCaption(ctx, videoID, language); err != nil {
		return fault.Persistence("Failed to delete caption", err)
	}

	service.notify(videoID)
	return nil
}

// objectPath normalises the path provided, ensuring it is within the
// storage prefix of the video.
func (service *Service) objectPath(videoID uuid.UUID, filePath string) (string, error) {
	object := strings.TrimPrefix(strings.TrimSpace(filePath), "/")
	prefix := videoID.String() + "/"
	if !strings.HasPrefix(object, prefix) || len(object) == len(prefix) || strings.Contains(object, "..") {
		return "", fault.Validation("File path must be within the storage folder of the video")
	}

	return object, nil
}

func (service *Service) stat(ctx context.Context, bucket string, object string) (*storage.ObjectInfo, error) {
	info, err := service.objects.Stat(ctx, bucket, object)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, fault.Validation("Uploaded file not found")
	} else if err != nil {
		return nil, fault.Provider("Failed to inspect uploaded file", err)
	}

	return info, nil
}

func (service *Service) sniff(ctx context.Context, bucket string, object string) (*mimetype.MIME, error) {
	reader, err := service.objects.Get(ctx, bucket, object)
	if err != nil {
		return nil, fault.Provider("Failed to read uploaded file", err)
	}
	defer reader.Close()

	mime, err := mimetype.DetectReader(reader)
	if err != nil {
		return nil, fault.Provider("Failed to read uploaded file", err)
	}

	return mime, nil
}

func (service *Service) verifyMedia(ctx context.Context, videoID uuid.UUID, bucket string, filePath string) (string, error) {
	object, err := service.objectPath(videoID, filePath)
	if err != nil {
		return "", err
	}
	if _, err := service.stat(ctx, bucket, object); err != nil {
		return "", err
	}

	mime, err := service.sniff(ctx, bucket, object)
	if err != nil {
		return "", err
	}
	if !isMedia(mime) {
		return "", fault.Validation("Uploaded file must be a video or audio file")
	}

	return object, nil
}

func (service *Service) verifyArtwork(ctx context.Context, bucket string, object string, width int, height int) error {
	if _, err := service.stat(ctx, bucket, object); err != nil {
		return err
	}

	reader, err := service.objects.Get(ctx, bucket, object)
	if err != nil {
		return fault.Provider("Failed to read artwork", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, maxArtworkBytes+1))
	if err != nil {
		return fault.Provider("Failed to read artwork", err)
	}
	if len(data) > maxArtworkBytes {
		return fault.Validation("Artwork must be smaller than 20MiB")
	}

	if mime := mimetype.Detect(data); !strings.HasPrefix(mime.String(), "image/") {
		return fault.Validation("Artwork must be an image")
	}

	// The header is checked before decoding, as a small file can declare
	// dimensions far larger than the pixel buffer we are willing to allocate.
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fault.Validation("Artwork must be an image")
	}
	if config.Width != width || config.Height != height {
		return fault.Validation(fmt.Sprintf("Artwork must be %dx%d pixels, got %dx%d", width, height, config.Width, config.Height))
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fault.Validation("Artwork must be an image")
	}

	if bounds := img.Bounds(); bounds.Dx() != width || bounds.Dy() != height {
		return fault.Validation(fmt.Sprintf("Artwork must be %dx%d pixels, got %dx%d", width, height, bounds.Dx(), bounds.Dy()))
	}

	return nil
}

func (service *Service) removeQuietly(ctx context.Context, bucket string, object string) {
	if err := service.objects.Remove(ctx, bucket, object); err != nil {
		log.Warnf("Failed to remove replaced object %s/%s: %v\n", bucket, object, err)
	}
}

func (service *Service) dispatch(ev event.Event, payload event.Payload) {
	if service.eventBus != nil {
		service.eventBus.Dispatch(ev, payload)
	}
}

func isMedia(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "video/") || strings.HasPrefix(m.String(), "audio/") {
			return true
		}
	}

	return false
}

func mimeIn(mime *mimetype.MIME, types []string) bool {
	for m := mime; m != nil; m = m.Parent() {
		for _, t := range types {
			if m.Is(t) {
				return true
			}
		}
	}

	return false
}
