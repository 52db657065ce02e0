package videos

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/api/util"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/video"
	"github.com/labstack/echo/v4"
)

type (
	Service interface {
		CreateDraft(ctx context.Context, ownerID uuid.UUID, basics video.Basics) (*video.Video, error)
		UpdateBasics(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, basics video.Basics) (*video.Video, error)
		GetVideo(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID) (*video.Aggregate, error)
		ListVideos(ctx context.Context, ownerID uuid.UUID) ([]*video.Video, error)
		SaveDetails(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, req video.DetailsRequest) (*video.Aggregate, error)
		SaveMonetization(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, req video.MonetizationRequest) (*video.Monetization, error)
		SaveLegal(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, req video.LegalRequest) (*video.Legal, error)
		Publish(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID) (*video.Video, error)
		MediaService
	}

	AuthProvider interface {
		GetAuthenticatedUserFromContext(ec echo.Context) (*jwt.AuthenticatedUser, error)
	}

	VideoController struct {
		service      Service
		authProvider AuthProvider
	}

	// videoSummary is a video along with the wizard step which
	// should be completed next.
	videoSummary struct {
		*video.Video
		NextStep string `json:"next_step"`
	}
)

func New(service Service, authProvider AuthProvider) *VideoController {
	return &VideoController{service: service, authProvider: authProvider}
}

func (controller *VideoController) SetRoutes(eg *echo.Group) {
	eg.GET("", controller.List)
	eg.POST("", controller.CreateDraft)
	eg.GET("/:id", controller.Get)
	eg.PATCH("/:id", controller.UpdateBasics)
	eg.PUT("/:id/details", controller.SaveDetails)
	eg.PUT("/:id/monetization", controller.SaveMonetization)
	eg.PUT("/:id/legal", controller.SaveLegal)
	eg.POST("/:id/publish", controller.Publish)

	eg.POST("/:id/source", controller.UploadSource)
	eg.PUT("/:id/source", controller.AttachSource)
	eg.PUT("/:id/trailer", controller.AttachTrailer)
	eg.DELETE("/:id/trailer", controller.DetachTrailer)
	eg.PUT("/:id/artworks", controller.AttachArtwork)
	eg.DELETE("/:id/artworks/:size", controller.DetachArtwork)
	eg.GET("/:id/captions", controller.ListCaptions)
	eg.PUT("/:id/captions/:language", controller.PutCaption)
	eg.DELETE("/:id/captions/:language", controller.DeleteCaption)
}

func (controller *VideoController) List(ec echo.Context) error {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return err
	}

	videos, err := controller.service.ListVideos(ec.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Videos fetched", util.ApplyConversion(videos, newVideoSummary))
}

// CreateDraft starts the upload wizard by creating a private draft video.
func (controller *VideoController) CreateDraft(ec echo.Context) error {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return err
	}

	var body video.Basics
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	v, err := controller.service.CreateDraft(ec.Request().Context(), ownerID, body)
	if err != nil {
		return err
	}

	return gen.Created(ec, "Draft created", newVideoSummary(v))
}

func (controller *VideoController) Get(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	aggregate, err := controller.service.GetVideo(ec.Request().Context(), ownerID, videoID)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Video fetched", aggregate)
}

func (controller *VideoController) UpdateBasics(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	var body video.Basics
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	v, err := controller.service.UpdateBasics(ec.Request().Context(), ownerID, videoID, body)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Video updated", newVideoSummary(v))
}

func (controller *VideoController) SaveDetails(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	var body video.DetailsRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	aggregate, err := controller.service.SaveDetails(ec.Request().Context(), ownerID, videoID, body)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Details saved", aggregate)
}

func (controller *VideoController) SaveMonetization(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	var body video.MonetizationRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	monetization, err := controller.service.SaveMonetization(ec.Request().Context(), ownerID, videoID, body)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Monetization saved", monetization)
}

func (controller *VideoController) SaveLegal(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	var body video.LegalRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	legal, err := controller.service.SaveLegal(ec.Request().Context(), ownerID, videoID, body)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Legal declaration saved", legal)
}

func (controller *VideoController) Publish(ec echo.Context) error {
	ownerID, videoID, err := controller.ownedParams(ec)
	if err != nil {
		return err
	}

	v, err := controller.service.Publish(ec.Request().Context(), ownerID, videoID)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Video published", newVideoSummary(v))
}

func (controller *VideoController) ownerID(ec echo.Context) (uuid.UUID, error) {
	user, err := controller.authProvider.GetAuthenticatedUserFromContext(ec)
	if err != nil {
		return uuid.Nil, fault.Auth("Unauthorized")
	}

	return user.ID, nil
}

// ownedParams returns the ID of the authenticated user and the ID of the
// video named in the request path.
func (controller *VideoController) ownedParams(ec echo.Context) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	videoID, err := util.ParamUUID(ec, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return ownerID, videoID, nil
}

func newVideoSummary(v *video.Video) videoSummary {
	return videoSummary{Video: v, NextStep: v.Status.NextStep()}
}

// parseModTime reads an optional millisecond epoch, as reported by
// browsers for File.lastModified.
func parseModTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.UnixMilli(ms).UTC()
}
