package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/pkg/logger"
)

var log = logger.Get("Catalog")

type (
	DataStore interface {
		ListShows(ctx context.Context, ownerID uuid.UUID) ([]*Show, error)
		GetShow(ctx context.Context, id uuid.UUID) (*Show, error)
		CreateShow(ctx context.Context, show *Show) (*Show, error)
		FindOrCreateSeason(ctx context.Context, showID uuid.UUID, seasonNumber int) (*Season, error)
		GetSeason(ctx context.Context, id uuid.UUID) (*Season, error)

		ListAlbums(ctx context.Context, ownerID uuid.UUID) ([]*Album, error)
		GetAlbum(ctx context.Context, id uuid.UUID) (*Album, error)
		FindOrCreateAlbum(ctx context.Context, album *Album) (*Album, error)

		GetEntry(ctx context.Context, kind EntryKind, collectionID uuid.UUID, number int) (*Entry, error)
		CreateEntry(ctx context.Context, kind EntryKind, entry *Entry) (*Entry, error)

		GetVideoOwner(ctx context.Context, videoID uuid.UUID) (uuid.UUID, error)
	}

	CreateShowRequest struct {
		Title       string  `json:"title" validate:"required,max=200"`
		Description *string `json:"description" validate:"omitempty,max=5000"`
	}

	CreateAlbumRequest struct {
		Title       string  `json:"title" validate:"required,max=200"`
		Artist      *string `json:"artist" validate:"omitempty,max=200"`
		Description *string `json:"description" validate:"omitempty,max=5000"`
	}

	Service struct {
		store    DataStore
		validate *validator.Validate
	}
)

func NewService(store DataStore) *Service {
	return &Service{store: store, validate: validator.New()}
}

func (service *Service) ListShows(ctx context.Context, ownerID uuid.UUID) ([]*Show, error) {
	shows, err := service.store.ListShows(ctx, ownerID)
	if err != nil {
		return nil, fault.Persistence("Failed to fetch shows", err)
	}

	return shows, nil
}

func (service *Service) CreateShow(ctx context.Context, ownerID uuid.UUID, req CreateShowRequest) (*Show, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := service.validate.Struct(req); err != nil {
		return nil, fault.Validation("Show title is required")
	}

	show, err := service.store.CreateShow(ctx, &Show{ID: uuid.New(), OwnerID: ownerID, Title: req.Title, Description: req.Description})
	if err != nil {
		return nil, fault.Persistence("Failed to create show", err)
	}

	log.Emit(logger.NEW, "Created show %s (%q)\n", show.ID, show.Title)
	return show, nil
}

// FindOrCreateSeason returns the season with the number provided for the show,
// creating it if needed. Repeated calls with the same arguments return
// the same season.
func (service *Service) FindOrCreateSeason(ctx context.Context, ownerID uuid.UUID, showID uuid.UUID, seasonNumber int) (*Season, error) {
	if seasonNumber < 1 {
		return nil, fault.Validation("Season number must be a positive integer")
	}

	show, err := service.store.GetShow(ctx, showID)
	if errors.Is(err, ErrShowNotFound) || (err == nil && show.OwnerID != ownerID) {
		return nil, fault.NotFound("Show not found")
	} else if err != nil {
		return nil, fault.Persistence("Failed to fetch show", err)
	}

	season, err := service.store.FindOrCreateSeason(ctx, showID, seasonNumber)
	if err != nil {
		return nil, fault.Persistence("Failed to create season", err)
	}

	return season, nil
}

// CreateEpisode links the video to the season using the episode number
// provided. Re-linking the same video is a no-op, whereas claiming an episode
// number used by a different video is a conflict.
func (service *Service) CreateEpisode(ctx context.Context, ownerID uuid.UUID, seasonID uuid.UUID, episodeNumber int, videoID uuid.UUID) (*Entry, error) {
	if episodeNumber < 1 {
		return nil, fault.Validation("Episode number must be a positive integer")
	}

	season, err := service.store.GetSeason(ctx, seasonID)
	if errors.Is(err, ErrSeasonNotFound) || (err == nil && season.OwnerID != ownerID) {
		return nil, fault.NotFound("Season not found")
	} else if err != nil {
		return nil, fault.Persistence("Failed to fetch season", err)
	}

	return service.createEntry(ctx, EpisodeEntry, ownerID, seasonID, episodeNumber, videoID)
}

func (service *Service) ListAlbums(ctx context.Context, ownerID uuid.UUID) ([]*Album, error) {
	albums, err := service.store.ListAlbums(ctx, ownerID)
	if err != nil {
		return nil, fault.Persistence("Failed to fetch albums", err)
	}

	return albums, nil
}

// FindOrCreateAlbum returns the users album with the title provided,
// creating it if it does not yet exist.
func (service *Service) FindOrCreateAlbum(ctx context.Context, ownerID uuid.UUID, req CreateAlbumRequest) (*Album, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := service.validate.Struct(req); err != nil {
		return nil, fault.Validation("Album title is required")
	}

	album, err := service.store.FindOrCreateAlbum(ctx, &Album{ID: uuid.New(), OwnerID: ownerID, Title: req.Title, Artist: req.Artist, Description: req.Description})
	if err != nil {
		return nil, fault.Persistence("Failed to create album", err)
	}

	return album, nil
}

func (service *Service) CreateTrack(ctx context.Context, ownerID uuid.UUID, albumID uuid.UUID, trackNumber int, videoID uuid.UUID) (*Entry, error) {
	if trackNumber < 1 {
		return nil, fault.Validation("Track number must be a positive integer")
	}

	album, err := service.store.GetAlbum(ctx, albumID)
	if errors.Is(err, ErrAlbumNotFound) || (err == nil && album.OwnerID != ownerID) {
		return nil, fault.NotFound("Album not found")
	} else if err != nil {
		return nil, fault.Persistence("Failed to fetch album", err)
	}

	return service.createEntry(ctx, TrackEntry, ownerID, albumID, trackNumber, videoID)
}

func (service *Service) createEntry(ctx context.Context, kind EntryKind, ownerID uuid.UUID, collectionID uuid.UUID, number int, videoID uuid.UUID) (*Entry, error) {
	videoOwner, err := service.store.GetVideoOwner(ctx, videoID)
	if errors.Is(err, ErrVideoNotFound) || (err == nil && videoOwner != ownerID) {
		return nil, fault.NotFound("Video not found")
	} else if err != nil {
		return nil, fault.Persistence("Failed to fetch video", err)
	}

	if existing, err := service.resolveExisting(ctx, kind, collectionID, number, videoID); existing != nil || err != nil {
		return existing, err
	}

	entry, err := service.store.CreateEntry(ctx, kind, &Entry{ID: uuid.New(), CollectionID: collectionID, Number: number, VideoID: videoID})
	if errors.Is(err, ErrEntryExists) {
		// A concurrent request claimed the number first
		if existing, err := service.resolveExisting(ctx, kind, collectionID, number, videoID); existing != nil || err != nil {
			return existing, err
		}
		return nil, fault.Conflict(kind.conflictMessage)
	} else if err != nil {
		return nil, fault.Persistence("Failed to create "+strings.TrimSuffix(kind.table, "s"), err)
	}

	return entry, nil
}

// resolveExisting returns the existing entry if it links to the same video, a
// conflict if it links to a different video, or nil if there is no entry.
func (service *Service) resolveExisting(ctx context.Context, kind EntryKind, collectionID uuid.UUID, number int, videoID uuid.UUID) (*Entry, error) {
	existing, err := service.store.GetEntry(ctx, kind, collectionID, number)
	if errors.Is(err, ErrEntryNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fault.Persistence("Failed to fetch "+strings.TrimSuffix(kind.table, "s"), err)
	}

	if existing.VideoID != videoID {
		return nil, fault.Conflict(kind.conflictMessage)
	}

	return existing, nil
}
