package video

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/database"
)

// UpsertCaption stores the caption, replacing any existing caption for the
// same video and language.
func (store *Store) UpsertCaption(ctx context.Context, db database.Queryable, caption *Caption) (*Caption, error) {
	var result Caption
	if err := db.GetContext(ctx, &result, `
		INSERT INTO captions(id, video_id, language, file_name, file_path, updated_at)
		VALUES ($1, $2, $3, $4, $5, current_timestamp)
		ON CONFLICT(video_id, language) DO UPDATE
			SET file_name=EXCLUDED.file_name, file_path=EXCLUDED.file_path, updated_at=EXCLUDED.updated_at
		RETURNING *`,
		caption.ID, caption.VideoID, caption.Language, caption.FileName, caption.FilePath,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert %s caption for video %s: %w", caption.Language, caption.VideoID, err)
	}

	return &result, nil
}

func (store *Store) ListCaptions(ctx context.Context, db database.Queryable, videoID uuid.UUID) ([]*Caption, error) {
	captions := make([]*Caption, 0)
	if err := db.SelectContext(ctx, &captions, `SELECT * FROM captions WHERE video_id=$1 ORDER BY language`, videoID); err != nil {
		return nil, fmt.Errorf("failed to select captions for video %s: %w", videoID, err)
	}

	return captions, nil
}

func (store *Store) GetCaption(ctx context.Context, db database.Queryable, videoID uuid.UUID, language string) (*Caption, error) {
	var caption Caption
	if err := db.GetContext(ctx, &caption, `SELECT * FROM captions WHERE video_id=$1 AND language=$2`, videoID, language); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrCaptionNotFound
		}
		return nil, fmt.Errorf("failed to select %s caption for video %s: %w", language, videoID, err)
	}

	return &caption, nil
}

func (store *Store) DeleteCaption(ctx context.Context, db database.Queryable, videoID uuid.UUID, language string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM captions WHERE video_id=$1 AND language=$2`, videoID, language); err != nil {
		return fmt.Errorf("failed to delete %s caption for video %s: %w", language, videoID, err)
	}

	return nil
}

// UpsertArtwork stores the artwork, replacing the file of any existing artwork for
// the same video and size. Artworks of other sizes are untouched.
func (store *Store) UpsertArtwork(ctx context.Context, db database.Queryable, artwork *Artwork) (*Artwork, error) {
	var result Artwork
	if err := db.GetContext(ctx, &result, `
		INSERT INTO video_artworks(id, video_id, width, height, file_path, public_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, current_timestamp)
		ON CONFLICT(video_id, width, height) DO UPDATE
			SET file_path=EXCLUDED.file_path, public_url=EXCLUDED.public_url, updated_at=EXCLUDED.updated_at
		RETURNING *`,
		artwork.ID, artwork.VideoID, artwork.Width, artwork.Height, artwork.FilePath, artwork.PublicURL,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert %dx%d artwork for video %s: %w", artwork.Width, artwork.Height, artwork.VideoID, err)
	}

	return &result, nil
}

func (store *Store) ListArtworks(ctx context.Context, db database.Queryable, videoID uuid.UUID) ([]*Artwork, error) {
	artworks := make([]*Artwork, 0)
	if err := db.SelectContext(ctx, &artworks, `SELECT * FROM video_artworks WHERE video_id=$1 ORDER BY width, height`, videoID); err != nil {
		return nil, fmt.Errorf("failed to select artworks for video %s: %w", videoID, err)
	}

	return artworks, nil
}

func (store *Store) GetArtwork(ctx context.Context, db database.Queryable, videoID uuid.UUID, width int, height int) (*Artwork, error) {
	var artwork Artwork
	if err := db.GetContext(ctx, &artwork, `
		SELECT * FROM video_artworks WHERE video_id=$1 AND width=$2 AND height=$3`,
		videoID, width, height,
	); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to select %dx%d artwork for video %s: %w", width, height, videoID, err)
	}

	return &artwork, nil
}

func (store *Store) DeleteArtwork(ctx context.Context, db database.Queryable, videoID uuid.UUID, width int, height int) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM video_artworks WHERE video_id=$1 AND width=$2 AND height=$3`, videoID, width, height); err != nil {
		return fmt.Errorf("failed to delete %dx%d artwork for video %s: %w", width, height, videoID, err)
	}

	return nil
}

func (store *Store) GetMonetization(ctx context.Context, db database.Queryable, id uuid.UUID) (*Monetization, error) {
	var monetization Monetization
	if err := db.GetContext(ctx, &monetization, `SELECT * FROM monetizations WHERE id=$1`, id); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrMonetizationNotFound
		}
		return nil, fmt.Errorf("failed to select monetization %s: %w", id, err)
	}

	return &monetization, nil
}

func (store *Store) InsertMonetization(ctx context.Context, db database.Queryable, m *Monetization) (*Monetization, error) {
	var result Monetization
	if err := db.GetContext(ctx, &result, `
		INSERT INTO monetizations(id, type, ad_type, ad_duration, subscription_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, current_timestamp, current_timestamp)
		RETURNING *`,
		m.ID, m.Type, m.AdType, m.AdDuration, m.SubscriptionType,
	); err != nil {
		return nil, fmt.Errorf("failed to insert monetization: %w", err)
	}

	return &result, nil
}

func (store *Store) UpdateMonetization(ctx context.Context, db database.Queryable, m *Monetization) (*Monetization, error) {
	var result Monetization
	if err := db.GetContext(ctx, &result, `
		UPDATE monetizations SET type=$2, ad_type=$3, ad_duration=$4, subscription_type=$5, updated_at=current_timestamp
		WHERE id=$1
		RETURNING *`,
		m.ID, m.Type, m.AdType, m.AdDuration, m.SubscriptionType,
	); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrMonetizationNotFound
		}
		return nil, fmt.Errorf("failed to update monetization %s: %w", m.ID, err)
	}

	return &result, nil
}

func (store *Store) UpsertLegal(ctx context.Context, db database.Queryable, legal *Legal) (*Legal, error) {
	var result Legal
	if err := db.GetContext(ctx, &result, `
		INSERT INTO legal_documents(id, video_id, ownership, no_copyright, consent, file_path, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, current_timestamp)
		ON CONFLICT(video_id) DO UPDATE
			SET ownership=EXCLUDED.ownership, no_copyright=EXCLUDED.no_copyright, consent=EXCLUDED.consent,
				file_path=EXCLUDED.file_path, updated_at=EXCLUDED.updated_at
		RETURNING *`,
		legal.ID, legal.VideoID, legal.Ownership, legal.NoCopyright, legal.Consent, legal.FilePath,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert legal declaration for video %s: %w", legal.VideoID, err)
	}

	return &result, nil
}

func (store *Store) GetLegal(ctx context.Context, db database.Queryable, videoID uuid.UUID) (*Legal, error) {
	var legal Legal
	if err := db.GetContext(ctx, &legal, `SELECT * FROM legal_documents WHERE video_id=$1`, videoID); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrLegalNotFound
		}
		return nil, fmt.Errorf("failed to select legal declaration for video %s: %w", videoID, err)
	}

	return &legal, nil
}

type UploadSession struct {
	Fingerprint string `db:"fingerprint"`
	UploadID    string `db:"upload_id"`
	Bucket      string `db:"bucket"`
	ObjectKey   string `db:"object_key"`
}

func (store *Store) GetUploadSession(ctx context.Context, db database.Queryable, fingerprint string) (*UploadSession, error) {
	var session UploadSession
	if err := db.GetContext(ctx, &session, `SELECT fingerprint, upload_id, bucket, object_key FROM upload_sessions WHERE fingerprint=$1`, fingerprint); err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select upload session: %w", err)
	}

	return &session, nil
}

func (store *Store) PutUploadSession(ctx context.Context, db database.Queryable, session *UploadSession) error {
	if _, err := db.ExecContext(ctx, `
		INSERT INTO upload_sessions(fingerprint, upload_id, bucket, object_key, created_at)
		VALUES ($1, $2, $3, $4, current_timestamp)
		ON CONFLICT(fingerprint) DO UPDATE SET upload_id=EXCLUDED.upload_id, created_at=EXCLUDED.created_at`,
		session.Fingerprint, session.UploadID, session.Bucket, session.ObjectKey,
	); err != nil {
		return fmt.Errorf("failed to upsert upload session: %w", err)
	}

	return nil
}

func (store *Store) DeleteUploadSession(ctx context.Context, db database.Queryable, fingerprint string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM upload_sessions WHERE fingerprint=$1`, fingerprint); err != nil {
		return fmt.Errorf("failed to delete upload session: %w", err)
	}

	return nil
}
