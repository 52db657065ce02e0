package video

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/broker"
	"github.com/hbomb79/Marquee/internal/catalog"
	"github.com/hbomb79/Marquee/internal/event"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/storage"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/hbomb79/Marquee/pkg/upload"
)

var log = logger.Get("Video")

type (
	DataStore interface {
		CreateVideo(ctx context.Context, video *Video) (*Video, error)
		GetVideo(ctx context.Context, id uuid.UUID) (*Video, error)
		ListVideos(ctx context.Context, ownerID uuid.UUID) ([]*Video, error)
		UpdateVideo(ctx context.Context, id uuid.UUID, columns map[string]any) (*Video, error)
		AdvanceVideoStatus(ctx context.Context, id uuid.UUID, status Status) error
		PublishVideo(ctx context.Context, id uuid.UUID) (*Video, error)

		// SaveVideoDetails replaces the synopsis and credits of the video
		// atomically, and advances the video to the detailed status.
		SaveVideoDetails(ctx context.Context, id uuid.UUID, synopsis *string, credits Credits) error
		GetVideoCredits(ctx context.Context, id uuid.UUID) (*Credits, error)

		PutCaption(ctx context.Context, caption *Caption) (*Caption, error)
		ListCaptions(ctx context.Context, videoID uuid.UUID) ([]*Caption, error)
		GetCaption(ctx context.Context, videoID uuid.UUID, language string) (*Caption, error)
		DeleteCaption(ctx context.Context, videoID uuid.UUID, language string) error

		PutArtwork(ctx context.Context, artwork *Artwork) (*Artwork, error)
		ListArtworks(ctx context.Context, videoID uuid.UUID) ([]*Artwork, error)
		GetArtwork(ctx context.Context, videoID uuid.UUID, width int, height int) (*Artwork, error)
		DeleteArtwork(ctx context.Context, videoID uuid.UUID, width int, height int) error

		// SaveVideoMonetization updates the monetization if it has an ID, otherwise
		// a new monetization is inserted and linked to the video.
		SaveVideoMonetization(ctx context.Context, videoID uuid.UUID, monetization *Monetization) (*Monetization, error)
		GetMonetization(ctx context.Context, id uuid.UUID) (*Monetization, error)
		SaveLegal(ctx context.Context, legal *Legal) (*Legal, error)
		GetLegal(ctx context.Context, videoID uuid.UUID) (*Legal, error)
	}

	ObjectStore interface {
		Buckets() storage.Buckets
		Stat(ctx context.Context, bucket string, object string) (*storage.ObjectInfo, error)
		Get(ctx context.Context, bucket string, object string) (io.ReadCloser, error)
		Remove(ctx context.Context, bucket string, object string) error
		PublicURL(bucket string, object string) string
	}

	CatalogLinker interface {
		FindOrCreateSeason(ctx context.Context, ownerID uuid.UUID, showID uuid.UUID, seasonNumber int) (*catalog.Season, error)
		CreateEpisode(ctx context.Context, ownerID uuid.UUID, seasonID uuid.UUID, episodeNumber int, videoID uuid.UUID) (*catalog.Entry, error)
		CreateTrack(ctx context.Context, ownerID uuid.UUID, albumID uuid.UUID, trackNumber int, videoID uuid.UUID) (*catalog.Entry, error)
	}

	Publisher interface {
		Enabled() bool
		PublishVideo(ctx context.Context, msg broker.VideoMessage) error
	}

	Uploader interface {
		Upload(ctx context.Context, source upload.Source, target upload.Target, opts upload.Options) (*upload.Result, error)
	}

	Basics struct {
		Title       string  `json:"title" validate:"required,max=200"`
		Description string  `json:"description" validate:"max=5000"`
		Category    string  `json:"category" validate:"required,oneof=movie show music other"`
		Visibility  string  `json:"visibility" validate:"omitempty,oneof=private unlisted public"`
		Is18Plus    bool    `json:"is_18_plus"`
		Rating      *string `json:"rating" validate:"omitempty,max=16"`
	}

	// CatalogLink optionally places the video in the catalog, either as an
	// episode of a show or as a track of an album.
	CatalogLink struct {
		ShowID        *uuid.UUID `json:"show_id"`
		SeasonNumber  int        `json:"season_number"`
		EpisodeNumber int        `json:"episode_number"`
		AlbumID       *uuid.UUID `json:"album_id"`
		TrackNumber   int        `json:"track_number"`
	}

	DetailsRequest struct {
		Synopsis *string      `json:"synopsis" validate:"omitempty,max=10000"`
		Genres   []string     `json:"genres" validate:"max=32,dive,max=64"`
		Cast     []string     `json:"cast" validate:"max=200,dive,max=128"`
		Crew     []CrewMember `json:"crew" validate:"max=200,dive"`
		Catalog  *CatalogLink `json:"catalog"`
	}

	MonetizationRequest struct {
		Type             string  `json:"type" validate:"required,oneof=avod svod ppv"`
		AdType           *string `json:"ad_type" validate:"omitempty,max=64"`
		AdDuration       *int    `json:"ad_duration" validate:"omitempty,min=0"`
		SubscriptionType *string `json:"subscription_type" validate:"omitempty,max=64"`
	}

	LegalRequest struct {
		Ownership   bool    `json:"ownership"`
		NoCopyright bool    `json:"no_copyright"`
		Consent     bool    `json:"consent"`
		FilePath    *string `json:"file_path"`
	}

	Service struct {
		store     DataStore
		objects   ObjectStore
		catalog   CatalogLinker
		publisher Publisher
		uploader  Uploader
		eventBus  event.EventDispatcher
		validate  *validator.Validate
	}
)

func NewService(store DataStore, objects ObjectStore, catalog CatalogLinker, publisher Publisher, uploader Uploader, eventBus event.EventDispatcher) *Service {
	return &Service{
		store:     store,
		objects:   objects,
		catalog:   catalog,
		publisher: publisher,
		uploader:  uploader,
		eventBus:  eventBus,
		validate:  validator.New(),
	}
}

func (service *Service) CreateDraft(ctx context.Context, ownerID uuid.UUID, basics Basics) (*Video, error) {
	basics, err := service.validateBasics(basics)
	if err != nil {
		return nil, err
	}

	video, err := service.store.CreateVideo(ctx, &Video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       basics.Title,
		Description: basics.Description,
		Category:    basics.Category,
		Visibility:  basics.Visibility,
		Is18Plus:    basics.Is18Plus,
		Rating:      basics.Rating,
	})
	if err != nil {
		return nil, fault.Persistence("Failed to create video", err)
	}

	log.Emit(logger.NEW, "Created draft video %s (%q) for %s\n", video.ID, video.Title, ownerID)
	service.notify(video.ID)
	return video, nil
}

func (service *Service) UpdateBasics(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, basics Basics) (*Video, error) {
	if _, err := service.ownedVideo(ctx, ownerID, videoID); err != nil {
		return nil, err
	}

	basics, err := service.validateBasics(basics)
	if err != nil {
		return nil, err
	}

	video, err := service.store.UpdateVideo(ctx, videoID, map[string]any{
		"title":       basics.Title,
		"description": basics.Description,
		"category":    basics.Category,
		"visibility":  basics.Visibility,
		"is_18_plus":  basics.Is18Plus,
		"rating":      basics.Rating,
	})
	if err != nil {
		return nil, fault.Persistence("Failed to update video", err)
	}

	service.notify(videoID)
	return video, nil
}

// SaveDetails replaces the synopsis, genres, cast and crew of the video, and
// optionally links it to the catalog. Catalog linking occurs first so that
// a catalog conflict leaves the existing details untouched.
func (service *Service) SaveDetails(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, req DetailsRequest) (*Aggregate, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	credits := Credits{
		Genres: uniqueNames(req.Genres),
		Cast:   uniqueNames(req.Cast),
		Crew:   make([]CrewMember, 0, len(req.Crew)),
	}
	for _, member := range req.Crew {
		member = CrewMember{Name: strings.TrimSpace(member.Name), Role: strings.TrimSpace(member.Role)}
		if member.Name == "" && member.Role == "" {
			continue
		}
		credits.Crew = append(credits.Crew, member)
	}
	req.Crew = credits.Crew

	if err := service.validate.Struct(req); err != nil {
		return nil, fault.Validation("Invalid video details: " + validationFields(err))
	}

	if req.Catalog != nil {
		if err := service.linkCatalog(ctx, video, *req.Catalog); err != nil {
			return nil, err
		}
	}

	if err := service.store.SaveVideoDetails(ctx, videoID, nilIfBlank(req.Synopsis), credits); err != nil {
		return nil, fault.Persistence("Failed to save video details", err)
	}

	service.notify(videoID)
	return service.GetVideo(ctx, ownerID, videoID)
}

func (service *Service) linkCatalog(ctx context.Context, video *Video, link CatalogLink) error {
	switch {
	case link.ShowID != nil && link.AlbumID != nil:
		return fault.Validation("A video can belong to either a show or an album, not both")
	case link.ShowID != nil:
		season, err := service.catalog.FindOrCreateSeason(ctx, video.OwnerID, *link.ShowID, link.SeasonNumber)
		if err != nil {
			return err
		}

		_, err = service.catalog.CreateEpisode(ctx, video.OwnerID, season.ID, link.EpisodeNumber, video.ID)
		return err
	case link.AlbumID != nil:
		_, err := service.catalog.CreateTrack(ctx, video.OwnerID, *link.AlbumID, link.TrackNumber, video.ID)
		return err
	}

	return nil
}

// SaveMonetization creates or updates the monetization settings of the video. Empty
// optional values are stored as null.
func (service *Service) SaveMonetization(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, req MonetizationRequest) (*Monetization, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	if err := service.validate.Struct(req); err != nil {
		return nil, fault.Validation("Invalid monetization settings: " + validationFields(err))
	}

	monetization := &Monetization{
		Type:             req.Type,
		AdType:           nilIfBlank(req.AdType),
		AdDuration:       req.AdDuration,
		SubscriptionType: nilIfBlank(req.SubscriptionType),
	}
	if video.MonetizationID != nil {
		monetization.ID = *video.MonetizationID
	}

	saved, err := service.store.SaveVideoMonetization(ctx, videoID, monetization)
	if err != nil {
		return nil, fault.Persistence("Failed to save monetization", err)
	}

	if err := service.advanceIfMonetized(ctx, videoID); err != nil {
		return nil, err
	}

	service.notify(videoID)
	return saved, nil
}

func (service *Service) SaveLegal(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID, req LegalRequest) (*Legal, error) {
	if _, err := service.ownedVideo(ctx, ownerID, videoID); err != nil {
		return nil, err
	}

	legal := &Legal{ID: uuid.New(), VideoID: videoID, Ownership: req.Ownership, NoCopyright: req.NoCopyright, Consent: req.Consent}
	if filePath := nilIfBlank(req.FilePath); filePath != nil {
		object, err := service.objectPath(videoID, *filePath)
		if err != nil {
			return nil, err
		}
		if _, err := service.stat(ctx, service.objects.Buckets().Legal, object); err != nil {
			return nil, err
		}
		legal.FilePath = &object
	}

	saved, err := service.store.SaveLegal(ctx, legal)
	if err != nil {
		return nil, fault.Persistence("Failed to save legal declaration", err)
	}

	if err := service.advanceIfMonetized(ctx, videoID); err != nil {
		return nil, err
	}

	service.notify(videoID)
	return saved, nil
}

// advanceIfMonetized advances the video to the monetized status once
// both monetization settings and a legal declaration have been saved.
func (service *Service) advanceIfMonetized(ctx context.Context, videoID uuid.UUID) error {
	video, err := service.store.GetVideo(ctx, videoID)
	if err != nil {
		return fault.Persistence("Failed to fetch video", err)
	}
	if video.MonetizationID == nil {
		return nil
	}

	if _, err := service.store.GetLegal(ctx, videoID); errors.Is(err, ErrLegalNotFound) {
		return nil
	} else if err != nil {
		return fault.Persistence("Failed to fetch legal declaration", err)
	}

	return service.advance(ctx, video, StatusMonetized)
}

// Publish publishes the video. The video must have completed every prior
// step of the wizard and accepted all legal declarations. Publishing an
// already published video has no effect.
func (service *Service) Publish(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID) (*Video, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	if video.Status == StatusPublished {
		return video, nil
	}
	if !video.Status.AtLeast(StatusMonetized) || video.MonetizationID == nil {
		return nil, fault.Validation("Video is not ready to publish")
	}
	if video.VideoPath == nil {
		return nil, fault.Validation("Video source must be uploaded before publishing")
	}

	legal, err := service.store.GetLegal(ctx, videoID)
	if err != nil && !errors.Is(err, ErrLegalNotFound) {
		return nil, fault.Persistence("Failed to fetch legal declaration", err)
	}
	if !legal.Accepted() {
		return nil, fault.Validation("All legal declarations must be accepted before publishing")
	}

	published, err := service.store.PublishVideo(ctx, videoID)
	if err != nil {
		return nil, fault.Persistence("Failed to publish video", err)
	}

	log.Emit(logger.SUCCESS, "Published video %s (%q)\n", videoID, published.Title)
	service.notify(videoID)

	if service.publisher != nil && service.publisher.Enabled() {
		bucket := service.objects.Buckets().Videos
		msg := broker.VideoMessage{
			ID:       videoID.String(),
			URL:      service.objects.PublicURL(bucket, *published.VideoPath),
			Filename: path.Base(*published.VideoPath),
		}
		if err := service.publisher.PublishVideo(ctx, msg); err != nil {
			log.Errorf("Failed to notify broker of published video %s: %v\n", videoID, err)
		}
	}

	return published, nil
}

// GetVideo returns the video along with all attached details and media.
func (service *Service) GetVideo(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID) (*Aggregate, error) {
	video, err := service.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	credits, err := service.store.GetVideoCredits(ctx, videoID)
	if err != nil {
		return nil, fault.Persistence("Failed to fetch video details", err)
	}

	captions, err := service.store.ListCaptions(ctx, videoID)
	if err != nil {
		return nil, fault.Persistence("Failed to fetch captions", err)
	}

	artworks, err := service.store.ListArtworks(ctx, videoID)
	if err != nil {
		return nil, fault.Persistence("Failed to fetch artworks", err)
	}

	aggregate := &Aggregate{Video: video, Credits: *credits, Captions: captions, Artworks: artworks, NextStep: video.Status.NextStep()}
	if video.MonetizationID != nil {
		monetization, err := service.store.GetMonetization(ctx, *video.MonetizationID)
		if err != nil && !errors.Is(err, ErrMonetizationNotFound) {
			return nil, fault.Persistence("Failed to fetch monetization", err)
		}
		aggregate.Monetization = monetization
	}

	legal, err := service.store.GetLegal(ctx, videoID)
	if err != nil && !errors.Is(err, ErrLegalNotFound) {
		return nil, fault.Persistence("Failed to fetch legal declaration", err)
	}
	aggregate.Legal = legal

	return aggregate, nil
}

func (service *Service) ListVideos(ctx context.Context, ownerID uuid.UUID) ([]*Video, error) {
	videos, err := service.store.ListVideos(ctx, ownerID)
	if err != nil {
		return nil, fault.Persistence("Failed to fetch videos", err)
	}

	return videos, nil
}

// ownedVideo fetches the video, returning a NotFound error if it does
// not exist or is owned by another user.
func (service *Service) ownedVideo(ctx context.Context, ownerID uuid.UUID, videoID uuid.UUID) (*Video, error) {
	video, err := service.store.GetVideo(ctx, videoID)
	if errors.Is(err, ErrVideoNotFound) || (err == nil && video.OwnerID != ownerID) {
		return nil, fault.NotFound("Video not found")
	} else if err != nil {
		return nil, fault.Persistence("Failed to fetch video", err)
	}

	return video, nil
}

// advance moves the video to the status provided if it has just completed
// the step before it. Steps saved out of order are kept but do not move
// the video forward.
func (service *Service) advance(ctx context.Context, video *Video, status Status) error {
	if previous, ok := status.Previous(); !ok || video.Status != previous {
		return nil
	}

	if err := service.store.AdvanceVideoStatus(ctx, video.ID, status); err != nil {
		return fault.Persistence("Failed to update video status", err)
	}

	return nil
}

func (service *Service) notify(videoID uuid.UUID) {
	service.dispatch(event.VIDEO_UPDATE, videoID)
}

func (service *Service) validateBasics(basics Basics) (Basics, error) {
	basics.Title = strings.TrimSpace(basics.Title)
	basics.Description = strings.TrimSpace(basics.Description)
	basics.Category = strings.ToLower(strings.TrimSpace(basics.Category))
	basics.Visibility = strings.ToLower(strings.TrimSpace(basics.Visibility))
	basics.Rating = nilIfBlank(basics.Rating)
	if basics.Visibility == "" {
		basics.Visibility = "private"
	}

	if err := service.validate.Struct(basics); err != nil {
		return basics, fault.Validation("Invalid video fields: " + validationFields(err))
	}

	return basics, nil
}

// uniqueNames trims each name, dropping blanks and case-insensitive duplicates.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, name)
	}

	return out
}

func nilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func validationFields(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
	}

	return strings.Join(fields, ", ")
}
