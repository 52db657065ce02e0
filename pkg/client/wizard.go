package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/pkg/upload"
)

type (
	// Uploader performs resumable uploads directly against object storage.
	// *upload.Uploader satisfies this interface.
	Uploader interface {
		Upload(ctx context.Context, source upload.Source, target upload.Target, opts upload.Options) (*upload.Result, error)
	}

	// Buckets names the object storage buckets used for direct uploads.
	Buckets struct {
		Videos   string
		Trailers string
		Artworks string
	}

	// Wizard drives the upload wizard for a single draft video. Which step to
	// show next is always taken from the server, never inferred locally, and
	// every step persists as soon as it is saved so that closing the wizard
	// early loses nothing.
	Wizard struct {
		client *Client
		token  func() string
		video  *Video
	}
)

// NewWizard starts a wizard for a new draft with the basics given. The token
// function is consulted before each request, so a refreshed session is
// picked up automatically.
func (c *Client) NewWizard(ctx context.Context, token func() string, basics Basics) (*Wizard, error) {
	w := &Wizard{client: c, token: token}

	var created Video
	if err := c.post(ctx, "/api/videos", token(), basics, &created); err != nil {
		return nil, err
	}

	w.video = &created
	return w, nil
}

// ResumeWizard continues the wizard for an existing draft.
func (c *Client) ResumeWizard(ctx context.Context, token func() string, videoID uuid.UUID) (*Wizard, error) {
	w := &Wizard{client: c, token: token, video: &Video{ID: videoID}}
	if _, err := w.Reload(ctx); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Wizard) VideoID() uuid.UUID { return w.video.ID }

// NextStep is the step the server reports the user should complete next.
func (w *Wizard) NextStep() string { return w.video.NextStep }

// Done returns true once the video has been published.
func (w *Wizard) Done() bool { return w.video.NextStep == StepDone }

func (w *Wizard) videoPath(suffix string) string {
	return "/api/videos/" + w.video.ID.String() + suffix
}

// Reload fetches the video and everything attached to it.
func (w *Wizard) Reload(ctx context.Context) (*VideoDetails, error) {
	var details VideoDetails
	if err := w.client.get(ctx, w.videoPath(""), w.token(), &details); err != nil {
		return nil, err
	}

	w.adopt(details.Video)
	return &details, nil
}

func (w *Wizard) SaveBasics(ctx context.Context, basics Basics) error {
	var updated Video
	if err := w.client.patch(ctx, w.videoPath(""), w.token(), basics, &updated); err != nil {
		return err
	}

	w.adopt(updated)
	return nil
}

// SaveDetails saves the synopsis and credits, optionally linking the video
// into the catalog.
func (w *Wizard) SaveDetails(ctx context.Context, details Details) (*VideoDetails, error) {
	var saved VideoDetails
	if err := w.client.put(ctx, w.videoPath("/details"), w.token(), details, &saved); err != nil {
		return nil, err
	}

	w.adopt(saved.Video)
	return &saved, nil
}

// AttachSource attaches media already uploaded to the videos bucket.
func (w *Wizard) AttachSource(ctx context.Context, objectPath string) error {
	var updated Video
	if err := w.client.put(ctx, w.videoPath("/source"), w.token(), map[string]string{"path": objectPath}, &updated); err != nil {
		return err
	}

	w.adopt(updated)
	return nil
}

// UploadSource streams the media to the server, which stores it on behalf
// of the client.
func (w *Wizard) UploadSource(ctx context.Context, name string, data io.Reader) error {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, path.Base(name)))
	header.Set("Content-Type", "application/octet-stream")
	part, err := form.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, data); err != nil {
		return fmt.Errorf("failed to read source media: %w", err)
	}
	if err := form.Close(); err != nil {
		return err
	}

	var updated Video
	if err := w.client.do(ctx, http.MethodPost, w.videoPath("/source"), w.token(), requestBody{reader: body, contentType: form.FormDataContentType()}, &updated); err != nil {
		return err
	}

	w.adopt(updated)
	return nil
}

// UploadSourceDirect uploads the media straight to object storage using the
// resumable uploader, then attaches it to the video.
func (w *Wizard) UploadSourceDirect(ctx context.Context, uploader Uploader, buckets Buckets, source upload.Source, onProgress func(int)) error {
	object, err := w.uploadDirect(ctx, uploader, buckets.Videos, "original", source, onProgress)
	if err != nil {
		return err
	}

	return w.AttachSource(ctx, object)
}

func (w *Wizard) AttachTrailer(ctx context.Context, objectPath string) error {
	var updated Video
	if err := w.client.put(ctx, w.videoPath("/trailer"), w.token(), map[string]string{"path": objectPath}, &updated); err != nil {
		return err
	}

	w.adopt(updated)
	return nil
}

// UploadTrailer uploads the trailer straight to object storage, then
// attaches it to the video.
func (w *Wizard) UploadTrailer(ctx context.Context, uploader Uploader, buckets Buckets, source upload.Source, onProgress func(int)) error {
	object, err := w.uploadDirect(ctx, uploader, buckets.Trailers, "trailer", source, onProgress)
	if err != nil {
		return err
	}

	return w.AttachTrailer(ctx, object)
}

func (w *Wizard) RemoveTrailer(ctx context.Context) error {
	var updated Video
	if err := w.client.do(ctx, http.MethodDelete, w.videoPath("/trailer"), w.token(), requestBody{}, &updated); err != nil {
		return err
	}

	w.adopt(updated)
	return nil
}

func (w *Wizard) AttachArtwork(ctx context.Context, width int, height int, objectPath string) (*Artwork, error) {
	var artwork Artwork
	body := map[string]any{"width": width, "height": height, "path": objectPath}
	if err := w.client.put(ctx, w.videoPath("/artworks"), w.token(), body, &artwork); err != nil {
		return nil, err
	}

	return &artwork, nil
}

// UploadArtwork uploads artwork of the given size straight to object storage
// and then records it against the video. Uploading the same file again
// resumes the previous attempt, and the artwork is only recorded once the
// upload completes.
func (w *Wizard) UploadArtwork(ctx context.Context, uploader Uploader, buckets Buckets, width int, height int, source upload.Source, onProgress func(int)) (*Artwork, error) {
	name := "artwork-" + strconv.Itoa(width) + "x" + strconv.Itoa(height)
	object, err := w.uploadDirect(ctx, uploader, buckets.Artworks, name, source, onProgress)
	if err != nil {
		return nil, err
	}

	return w.AttachArtwork(ctx, width, height, object)
}

func (w *Wizard) RemoveArtwork(ctx context.Context, width int, height int) error {
	return w.client.delete(ctx, w.videoPath(fmt.Sprintf("/artworks/%dx%d", width, height)), w.token())
}

func (w *Wizard) PutCaption(ctx context.Context, language string, fileName string, objectPath string) (*Caption, error) {
	var caption Caption
	body := map[string]string{"fileName": fileName, "path": objectPath}
	if err := w.client.put(ctx, w.videoPath("/captions/"+language), w.token(), body, &caption); err != nil {
		return nil, err
	}

	return &caption, nil
}

func (w *Wizard) RemoveCaption(ctx context.Context, language string) error {
	return w.client.delete(ctx, w.videoPath("/captions/"+language), w.token())
}

func (w *Wizard) SaveMonetization(ctx context.Context, req MonetizationRequest) (*Monetization, error) {
	var saved Monetization
	if err := w.client.put(ctx, w.videoPath("/monetization"), w.token(), req, &saved); err != nil {
		return nil, err
	}

	// Monetization may advance the status, so the next step must be re-read
	if _, err := w.Reload(ctx); err != nil {
		return nil, err
	}

	return &saved, nil
}

func (w *Wizard) SaveLegal(ctx context.Context, legal Legal) (*Legal, error) {
	var saved Legal
	if err := w.client.put(ctx, w.videoPath("/legal"), w.token(), legal, &saved); err != nil {
		return nil, err
	}

	if _, err := w.Reload(ctx); err != nil {
		return nil, err
	}

	return &saved, nil
}

func (w *Wizard) Publish(ctx context.Context) error {
	var published Video
	if err := w.client.post(ctx, w.videoPath("/publish"), w.token(), nil, &published); err != nil {
		return err
	}

	w.adopt(published)
	return nil
}

// uploadDirect uploads the source to <video id>/<name><ext> in the bucket
// given, returning the object path.
func (w *Wizard) uploadDirect(ctx context.Context, uploader Uploader, bucket string, name string, source upload.Source, onProgress func(int)) (string, error) {
	if source.Reader == nil || source.Size <= 0 {
		return "", &Error{Message: "Selected file is empty"}
	}

	ext := strings.ToLower(path.Ext(source.Name))
	if ext == "" || source.ContentType == "" {
		mime, err := mimetype.DetectReader(io.NewSectionReader(source.Reader, 0, 3072))
		if err != nil {
			return "", &Error{Message: "Failed to read selected file", Err: err}
		}
		if ext == "" {
			ext = mime.Extension()
		}
		if source.ContentType == "" {
			source.ContentType = mime.String()
		}
	}

	target := upload.Target{Bucket: bucket, Object: w.video.ID.String() + "/" + name + ext}
	if _, err := uploader.Upload(ctx, source, target, upload.Options{OnProgress: onProgress}); err != nil {
		return "", &Error{Message: "Upload failed, retry to resume", Err: err}
	}

	return target.Object, nil
}

// adopt replaces the cached video, preserving the ID if the response did
// not include one.
func (w *Wizard) adopt(v Video) {
	if v.ID == uuid.Nil {
		v.ID = w.video.ID
	}
	w.video = &v
}
