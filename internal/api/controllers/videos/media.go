package videos

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/util"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/video"
	"github.com/hbomb79/Marquee/pkg/upload"
	"github.com/labstack/echo/v4"
)

const sourceFormField = "file"

type (
	MediaService interface {
		AttachSource(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, filePath string) (*video.Video, error)
		UploadSource(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, source upload.Source) (*video.Video, error)
		AttachTrailer(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, filePath string) (*video.Video, error)
		DetachTrailer(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID) (*video.Video, error)
		AttachArtwork(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, width int, height int, filePath string) (*video.Artwork, error)
		DetachArtwork(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, width int, height int) error
		PutCaption(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, language string, fileName string, filePath string) (*video.Caption, error)
		ListCaptions(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID) ([]*video.Caption, error)
		DeleteCaption(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, language string) error
	}

	pathRequest struct {
		Path string `json:"path"`
	}

	artworkRequest struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Path   string `json:"path"`
	}

	captionRequest struct {
		FileName string `json:"fileName"`
		Path     string `json:"path"`
	}
)

// UploadSource streams the multipart form file of the request to object
// storage. Progress is pushed to the owner over the activity websocket.
func (controller *VideoController) UploadSource(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	header, err := ec.FormFile(sourceFormField)
	if err != nil {
		return fault.Validation("A file is required")
	}

	file, err := header.Open()
	if err != nil {
		return fault.Validation("Failed to read uploaded file")
	}
	defer file.Close()

	v, err := controller.service.UploadSource(ec.Request().Context(), ownerID, videoID, upload.Source{
		Reader:      file,
		Size:        header.Size,
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		ModTime:     parseModTime(ec.FormValue("lastModified")),
	})
	if err != nil {
		return err
	}

	return gen.OK(ec, "Video uploaded", newVideoSummary(v))
}

// AttachSource attaches a source which the client uploaded directly to
// object storage.
func (controller *VideoController) AttachSource(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	var body pathRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	v, err := controller.service.AttachSource(ec.Request().Context(), ownerID, videoID, body.Path)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Video attached", newVideoSummary(v))
}

func (controller *VideoController) AttachTrailer(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	var body pathRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	v, err := controller.service.AttachTrailer(ec.Request().Context(), ownerID, videoID, body.Path)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Trailer attached", newVideoSummary(v))
}

func (controller *VideoController) DetachTrailer(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	v, err := controller.service.DetachTrailer(ec.Request().Context(), ownerID, videoID)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Trailer removed", newVideoSummary(v))
}

func (controller *VideoController) AttachArtwork(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	var body artworkRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	artwork, err := controller.service.AttachArtwork(ec.Request().Context(), ownerID, videoID, body.Width, body.Height, body.Path)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Artwork attached", artwork)
}

// DetachArtwork removes the artwork with the size (WxH) named in the path.
func (controller *VideoController) DetachArtwork(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	width, height, err := video.ParseSize(ec.Param("size"))
	if err != nil {
		return err
	}

	if err := controller.service.DetachArtwork(ec.Request().Context(), ownerID, videoID, width, height); err != nil {
		return err
	}

	return gen.Message(ec, "Artwork removed")
}

func (controller *VideoController) ListCaptions(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	captions, err := controller.service.ListCaptions(ec.Request().Context(), ownerID, videoID)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Captions fetched", captions)
}

func (controller *VideoController) PutCaption(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	var body captionRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	caption, err := controller.service.PutCaption(ec.Request().Context(), ownerID, videoID, ec.Param("language"), body.FileName, body.Path)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Caption saved", caption)
}

func (controller *VideoController) DeleteCaption(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	if err := controller.service.DeleteCaption(ec.Request().Context(), ownerID, videoID, ec.Param("language")); err != nil {
		return err
	}

	return gen.Message(ec, "Caption removed")
}
