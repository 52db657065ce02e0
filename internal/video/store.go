package video

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/database"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type Store struct{}

func (store *Store) Insert(ctx context.Context, db database.Queryable, video *Video) (*Video, error) {
	var created Video
	if err := db.GetContext(ctx, &created, `
		INSERT INTO videos(id, owner_id, title, description, category, visibility, is_18_plus, rating, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'draft', current_timestamp, current_timestamp)
		RETURNING *`,
		video.ID, video.OwnerID, video.Title, video.Description, video.Category, video.Visibility, video.Is18Plus, video.Rating,
	); err != nil {
		return nil, fmt.Errorf("failed to insert video: %w", err)
	}

	return &created, nil
}

func (store *Store) Get(ctx context.Context, db database.Queryable, id uuid.UUID) (*Video, error) {
	var video Video
	if err := db.GetContext(ctx, &video, `SELECT * FROM videos WHERE id=$1`, id); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to select video %s: %w", id, err)
	}

	return &video, nil
}

func (store *Store) GetOwner(ctx context.Context, db database.Queryable, id uuid.UUID) (uuid.UUID, error) {
	var owner uuid.UUID
	if err := db.GetContext(ctx, &owner, `SELECT owner_id FROM videos WHERE id=$1`, id); err != nil {
		if database.IsNoRows(err) {
			return uuid.Nil, ErrVideoNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to select owner of video %s: %w", id, err)
	}

	return owner, nil
}

func (store *Store) ListForOwner(ctx context.Context, db database.Queryable, ownerID uuid.UUID) ([]*Video, error) {
	var videos []*Video
	if err := db.SelectContext(ctx, &videos, `SELECT * FROM videos WHERE owner_id=$1 ORDER BY updated_at DESC`, ownerID); err != nil {
		return nil, fmt.Errorf("failed to select videos for owner %s: %w", ownerID, err)
	}

	return videos, nil
}

// Update sets the columns provided on the video, returning the updated row.
func (store *Store) Update(ctx context.Context, db database.Queryable, id uuid.UUID, columns map[string]any) (*Video, error) {
	query, args, err := psql.Update("videos").
		SetMap(columns).
		Set("updated_at", squirrel.Expr("current_timestamp")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct video update query: %w", err)
	}

	var video Video
	if err := db.GetContext(ctx, &video, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to update video %s: %w", id, err)
	}

	return &video, nil
}

// AdvanceStatus moves the video to the status provided, but only if the
// video currently holds the status immediately before it. A video at any
// other status is left untouched, so steps can never be skipped and the
// status never regresses.
func (store *Store) AdvanceStatus(ctx context.Context, db database.Queryable, id uuid.UUID, status Status) error {
	previous, ok := status.Previous()
	if !ok {
		return fmt.Errorf("video status %q cannot be advanced to", status)
	}

	if _, err := db.ExecContext(ctx, `
		UPDATE videos SET status=$2::video_status, updated_at=current_timestamp
		WHERE id=$1 AND status=$3::video_status`, id, status, previous); err != nil {
		return fmt.Errorf("failed to advance video %s to %s: %w", id, status, err)
	}

	return nil
}

func (store *Store) MarkPublished(ctx context.Context, db database.Queryable, id uuid.UUID) (*Video, error) {
	var video Video
	if err := db.GetContext(ctx, &video, `
		UPDATE videos SET status='published', published_at=COALESCE(published_at, current_timestamp), updated_at=current_timestamp
		WHERE id=$1
		RETURNING *`, id,
	); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to publish video %s: %w", id, err)
	}

	return &video, nil
}
