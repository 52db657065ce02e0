package internal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/catalog"
	"github.com/hbomb79/Marquee/internal/database"
	"github.com/hbomb79/Marquee/internal/profile"
	"github.com/hbomb79/Marquee/internal/video"
	"github.com/hbomb79/Marquee/pkg/upload"
	"github.com/jmoiron/sqlx"
)

type (
	// dataOrchestrator is responsible for managing all of Marquee's resources,
	// especially highly-relational data. You can think of all
	// the data stores below this layer being 'dumb', and this store
	// linking them together and providing the database instance.
	//
	// Work which touches more than one table in a single logical
	// operation (e.g. saving video details) is wrapped in a transaction here.
	dataOrchestrator struct {
		db           database.Manager
		ProfileStore *profile.Store
		CatalogStore *catalog.Store
		VideoStore   *video.Store
	}

	// uploadSessions persists upload fingerprints so that an interrupted
	// upload can be resumed after a restart.
	uploadSessions struct {
		orchestrator *dataOrchestrator
	}
)

func newDataOrchestrator(db database.Manager) *dataOrchestrator {
	return &dataOrchestrator{
		db:           db,
		ProfileStore: &profile.Store{},
		CatalogStore: &catalog.Store{},
		VideoStore:   &video.Store{},
	}
}

func (orchestrator *dataOrchestrator) conn() database.Queryable { return orchestrator.db.GetSqlxDb() }

// Profiles

func (orchestrator *dataOrchestrator) GetProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	return orchestrator.ProfileStore.Get(ctx, orchestrator.conn(), userID)
}

func (orchestrator *dataOrchestrator) GetProfileByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	return orchestrator.ProfileStore.GetByEmail(ctx, orchestrator.conn(), email)
}

func (orchestrator *dataOrchestrator) CreateProfile(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	return orchestrator.ProfileStore.Insert(ctx, orchestrator.conn(), p)
}

func (orchestrator *dataOrchestrator) UpdateProfile(ctx context.Context, userID uuid.UUID, fields map[string]any) (*profile.Profile, error) {
	return orchestrator.ProfileStore.Update(ctx, orchestrator.conn(), userID, fields)
}

// Catalog

func (orchestrator *dataOrchestrator) ListShows(ctx context.Context, ownerID uuid.UUID) ([]*catalog.Show, error) {
	return orchestrator.CatalogStore.ListShows(ctx, orchestrator.conn(), ownerID)
}

func (orchestrator *dataOrchestrator) GetShow(ctx context.Context, id uuid.UUID) (*catalog.Show, error) {
	return orchestrator.CatalogStore.GetShow(ctx, orchestrator.conn(), id)
}

func (orchestrator *dataOrchestrator) CreateShow(ctx context.Context, show *catalog.Show) (*catalog.Show, error) {
	return orchestrator.CatalogStore.InsertShow(ctx, orchestrator.conn(), show)
}

func (orchestrator *dataOrchestrator) FindOrCreateSeason(ctx context.Context, showID uuid.UUID, seasonNumber int) (*catalog.Season, error) {
	return orchestrator.CatalogStore.FindOrCreateSeason(ctx, orchestrator.conn(), showID, seasonNumber)
}

func (orchestrator *dataOrchestrator) GetSeason(ctx context.Context, id uuid.UUID) (*catalog.Season, error) {
	return orchestrator.CatalogStore.GetSeason(ctx, orchestrator.conn(), id)
}

func (orchestrator *dataOrchestrator) ListAlbums(ctx context.Context, ownerID uuid.UUID) ([]*catalog.Album, error) {
	return orchestrator.CatalogStore.ListAlbums(ctx, orchestrator.conn(), ownerID)
}

func (orchestrator *dataOrchestrator) GetAlbum(ctx context.Context, id uuid.UUID) (*catalog.Album, error) {
	return orchestrator.CatalogStore.GetAlbum(ctx, orchestrator.conn(), id)
}

func (orchestrator *dataOrchestrator) FindOrCreateAlbum(ctx context.Context, album *catalog.Album) (*catalog.Album, error) {
	return orchestrator.CatalogStore.FindOrCreateAlbum(ctx, orchestrator.conn(), album)
}

func (orchestrator *dataOrchestrator) GetEntry(ctx context.Context, kind catalog.EntryKind, collectionID uuid.UUID, number int) (*catalog.Entry, error) {
	return orchestrator.CatalogStore.GetEntry(ctx, orchestrator.conn(), kind, collectionID, number)
}

func (orchestrator *dataOrchestrator) CreateEntry(ctx context.Context, kind catalog.EntryKind, entry *catalog.Entry) (*catalog.Entry, error) {
	return orchestrator.CatalogStore.InsertEntry(ctx, orchestrator.conn(), kind, entry)
}

func (orchestrator *dataOrchestrator) GetVideoOwner(ctx context.Context, videoID uuid.UUID) (uuid.UUID, error) {
	return orchestrator.VideoStore.GetOwner(ctx, orchestrator.conn(), videoID)
}

// Videos

func (orchestrator *dataOrchestrator) CreateVideo(ctx context.Context, v *video.Video) (*video.Video, error) {
	return orchestrator.VideoStore.Insert(ctx, orchestrator.conn(), v)
}

func (orchestrator *dataOrchestrator) GetVideo(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	return orchestrator.VideoStore.Get(ctx, orchestrator.conn(), id)
}

func (orchestrator *dataOrchestrator) ListVideos(ctx context.Context, ownerID uuid.UUID) ([]*video.Video, error) {
	return orchestrator.VideoStore.ListForOwner(ctx, orchestrator.conn(), ownerID)
}

func (orchestrator *dataOrchestrator) UpdateVideo(ctx context.Context, id uuid.UUID, columns map[string]any) (*video.Video, error) {
	return orchestrator.VideoStore.Update(ctx, orchestrator.conn(), id, columns)
}

func (orchestrator *dataOrchestrator) AdvanceVideoStatus(ctx context.Context, id uuid.UUID, status video.Status) error {
	return orchestrator.VideoStore.AdvanceStatus(ctx, orchestrator.conn(), id, status)
}

func (orchestrator *dataOrchestrator) PublishVideo(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	return orchestrator.VideoStore.MarkPublished(ctx, orchestrator.conn(), id)
}

// SaveVideoDetails transactionally replaces the synopsis, genres, cast and crew
// of the video before advancing it to the detailed status.
func (orchestrator *dataOrchestrator) SaveVideoDetails(ctx context.Context, id uuid.UUID, synopsis *string, credits video.Credits) error {
	return orchestrator.db.WrapTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := orchestrator.VideoStore.Update(ctx, tx, id, map[string]any{"synopsis": synopsis}); err != nil {
			return err
		}
		if err := orchestrator.VideoStore.ReplaceGenres(ctx, tx, id, credits.Genres); err != nil {
			return err
		}
		if err := orchestrator.VideoStore.ReplaceCast(ctx, tx, id, credits.Cast); err != nil {
			return err
		}
		if err := orchestrator.VideoStore.ReplaceCrew(ctx, tx, id, credits.Crew); err != nil {
			return err
		}

		return orchestrator.VideoStore.AdvanceStatus(ctx, tx, id, video.StatusDetailed)
	})
}

func (orchestrator *dataOrchestrator) GetVideoCredits(ctx context.Context, id uuid.UUID) (*video.Credits, error) {
	return orchestrator.VideoStore.GetCredits(ctx, orchestrator.conn(), id)
}

func (orchestrator *dataOrchestrator) PutCaption(ctx context.Context, caption *video.Caption) (*video.Caption, error) {
	return orchestrator.VideoStore.UpsertCaption(ctx, orchestrator.conn(), caption)
}

func (orchestrator *dataOrchestrator) ListCaptions(ctx context.Context, videoID uuid.UUID) ([]*video.Caption, error) {
	return orchestrator.VideoStore.ListCaptions(ctx, orchestrator.conn(), videoID)
}

func (orchestrator *dataOrchestrator) GetCaption(ctx context.Context, videoID uuid.UUID, language string) (*video.Caption, error) {
	return orchestrator.VideoStore.GetCaption(ctx, orchestrator.conn(), videoID, language)
}

func (orchestrator *dataOrchestrator) DeleteCaption(ctx context.Context, videoID uuid.UUID, language string) error {
	return orchestrator.VideoStore.DeleteCaption(ctx, orchestrator.conn(), videoID, language)
}

func (orchestrator *dataOrchestrator) PutArtwork(ctx context.Context, artwork *video.Artwork) (*video.Artwork, error) {
	return orchestrator.VideoStore.UpsertArtwork(ctx, orchestrator.conn(), artwork)
}

func (orchestrator *dataOrchestrator) ListArtworks(ctx context.Context, videoID uuid.UUID) ([]*video.Artwork, error) {
	return orchestrator.VideoStore.ListArtworks(ctx, orchestrator.conn(), videoID)
}

func (orchestrator *dataOrchestrator) GetArtwork(ctx context.Context, videoID uuid.UUID, width int, height int) (*video.Artwork, error) {
	return orchestrator.VideoStore.GetArtwork(ctx, orchestrator.conn(), videoID, width, height)
}

func (orchestrator *dataOrchestrator) DeleteArtwork(ctx context.Context, videoID uuid.UUID, width int, height int) error {
	return orchestrator.VideoStore.DeleteArtwork(ctx, orchestrator.conn(), videoID, width, height)
}

// SaveVideoMonetization updates the existing monetization of the video, or inserts a new
// monetization and links it to the video, in a single transaction.
func (orchestrator *dataOrchestrator) SaveVideoMonetization(ctx context.Context, videoID uuid.UUID, monetization *video.Monetization) (*video.Monetization, error) {
	var saved *video.Monetization
	err := orchestrator.db.WrapTx(ctx, func(tx *sqlx.Tx) error {
		if monetization.ID != uuid.Nil {
			var err error
			saved, err = orchestrator.VideoStore.UpdateMonetization(ctx, tx, monetization)
			return err
		}

		monetization.ID = uuid.New()
		inserted, err := orchestrator.VideoStore.InsertMonetization(ctx, tx, monetization)
		if err != nil {
			return err
		}
		if _, err := orchestrator.VideoStore.Update(ctx, tx, videoID, map[string]any{"monetization_id": inserted.ID}); err != nil {
			return fmt.Errorf("failed to link monetization %s to video %s: %w", inserted.ID, videoID, err)
		}

		saved = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (orchestrator *dataOrchestrator) GetMonetization(ctx context.Context, id uuid.UUID) (*video.Monetization, error) {
	return orchestrator.VideoStore.GetMonetization(ctx, orchestrator.conn(), id)
}

func (orchestrator *dataOrchestrator) SaveLegal(ctx context.Context, legal *video.Legal) (*video.Legal, error) {
	return orchestrator.VideoStore.UpsertLegal(ctx, orchestrator.conn(), legal)
}

func (orchestrator *dataOrchestrator) GetLegal(ctx context.Context, videoID uuid.UUID) (*video.Legal, error) {
	return orchestrator.VideoStore.GetLegal(ctx, orchestrator.conn(), videoID)
}

// Upload sessions

func (orchestrator *dataOrchestrator) UploadSessions() upload.FingerprintStore {
	return &uploadSessions{orchestrator}
}

func (sessions *uploadSessions) Get(ctx context.Context, fingerprint string) (string, bool, error) {
	session, err := sessions.orchestrator.VideoStore.GetUploadSession(ctx, sessions.orchestrator.conn(), fingerprint)
	if err != nil || session == nil {
		return "", false, err
	}

	return session.UploadID, true, nil
}

func (sessions *uploadSessions) Put(ctx context.Context, fingerprint string, uploadID string, target upload.Target) error {
	return sessions.orchestrator.VideoStore.PutUploadSession(ctx, sessions.orchestrator.conn(), &video.UploadSession{
		Fingerprint: fingerprint,
		UploadID:    uploadID,
		Bucket:      target.Bucket,
		ObjectKey:   target.Object,
	})
}

func (sessions *uploadSessions) Delete(ctx context.Context, fingerprint string) error {
	return sessions.orchestrator.VideoStore.DeleteUploadSession(ctx, sessions.orchestrator.conn(), fingerprint)
}
