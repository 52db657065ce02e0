package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/api/util"
	"github.com/hbomb79/Marquee/internal/catalog"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/labstack/echo/v4"
)

type (
	Service interface {
		ListShows(ctx context.Context, ownerID uuid.UUID) ([]*catalog.Show, error)
		CreateShow(ctx context.Context, ownerID uuid.UUID, req catalog.CreateShowRequest) (*catalog.Show, error)
		FindOrCreateSeason(ctx context.Context, ownerID uuid.UUID, showID uuid.UUID, seasonNumber int) (*catalog.Season, error)
		CreateEpisode(ctx context.Context, ownerID uuid.UUID, seasonID uuid.UUID, episodeNumber int, videoID uuid.UUID) (*catalog.Entry, error)
		ListAlbums(ctx context.Context, ownerID uuid.UUID) ([]*catalog.Album, error)
		FindOrCreateAlbum(ctx context.Context, ownerID uuid.UUID, req catalog.CreateAlbumRequest) (*catalog.Album, error)
		CreateTrack(ctx context.Context, ownerID uuid.UUID, albumID uuid.UUID, trackNumber int, videoID uuid.UUID) (*catalog.Entry, error)
	}

	AuthProvider interface {
		GetAuthenticatedUserFromContext(ec echo.Context) (*jwt.AuthenticatedUser, error)
	}

	entryRequest struct {
		Number  int       `json:"number"`
		VideoID uuid.UUID `json:"video_id"`
	}

	CatalogController struct {
		service      Service
		authProvider AuthProvider
	}
)

func New(service Service, authProvider AuthProvider) *CatalogController {
	return &CatalogController{service: service, authProvider: authProvider}
}

func (controller *CatalogController) SetRoutes(eg *echo.Group) {
	eg.GET("/shows", controller.ListShows)
	eg.POST("/shows", controller.CreateShow)
	eg.POST("/shows/:id/seasons", controller.FindOrCreateSeason)
	eg.POST("/seasons/:id/episodes", controller.CreateEpisode)
	eg.GET("/albums", controller.ListAlbums)
	eg.POST("/albums", controller.FindOrCreateAlbum)
	eg.POST("/albums/:id/tracks", controller.CreateTrack)
}

func (controller *CatalogController) ListShows(ec echo.Context) error {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return err
	}

	shows, err := controller.service.ListShows(ec.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Shows fetched", shows)
}

func (controller *CatalogController) CreateShow(ec echo.Context) error {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return err
	}

	var body catalog.CreateShowRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	show, err := controller.service.CreateShow(ec.Request().Context(), ownerID, body)
	if err != nil {
		return err
	}

	return gen.Created(ec, "Show created", show)
}

// FindOrCreateSeason returns the season of the show with the number
// provided, creating it if it does not yet exist.
func (controller *CatalogController) FindOrCreateSeason(ec echo.Context) error {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return err
	}

	showID, err := util.ParamUUID(ec, "id")
	if err != nil {
		return err
	}

	var body struct {
		SeasonNumber int `json:"season_number"`
	}
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	season, err := controller.service.FindOrCreateSeason(ec.Request().Context(), ownerID, showID, body.SeasonNumber)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Season saved", season)
}

func (controller *CatalogController) CreateEpisode(ec echo.Context) error {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return err
	}

	seasonID, err := util.ParamUUID(ec, "id")
	if err != nil {
		return err
	}

	var body entryRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	entry, err := controller.service.CreateEpisode(ec.Request().Context(), ownerID, seasonID, body.Number, body.VideoID)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Episode saved", entry)
}

func (controller *CatalogController) ListAlbums(ec echo.Context) error {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return err
	}

	albums, err := controller.service.ListAlbums(ec.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Albums fetched", albums)
}

func (controller *CatalogController) FindOrCreateAlbum(ec echo.Context) error {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return err
	}

	var body catalog.CreateAlbumRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	album, err := controller.service.FindOrCreateAlbum(ec.Request().Context(), ownerID, body)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Album saved", album)
}

func (controller *CatalogController) CreateTrack(ec echo.Context) error {
	ownerID, err := controller.ownerID(ec)
	if err != nil {
		return err
	}

	albumID, err := util.ParamUUID(ec, "id")
	if err != nil {
		return err
	}

	var body entryRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	entry, err := controller.service.CreateTrack(ec.Request().Context(), ownerID, albumID, body.Number, body.VideoID)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Track saved", entry)
}

func (controller *CatalogController) ownerID(ec echo.Context) (uuid.UUID, error) {
	user, err := controller.authProvider.GetAuthenticatedUserFromContext(ec)
	if err != nil {
		return uuid.Nil, fault.Auth("Unauthorized")
	}

	return user.ID, nil
}
