package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/database"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type Store struct{}

func (store *Store) ListShows(ctx context.Context, db database.Queryable, ownerID uuid.UUID) ([]*Show, error) {
	var shows []*Show
	if err := db.SelectContext(ctx, &shows, `SELECT * FROM shows WHERE owner_id=$1 ORDER BY created_at DESC`, ownerID); err != nil {
		return nil, fmt.Errorf("failed to select shows for owner %s: %w", ownerID, err)
	}

	return shows, nil
}

func (store *Store) GetShow(ctx context.Context, db database.Queryable, id uuid.UUID) (*Show, error) {
	var show Show
	if err := db.GetContext(ctx, &show, `SELECT * FROM shows WHERE id=$1`, id); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to select show %s: %w", id, err)
	}

	return &show, nil
}

func (store *Store) InsertShow(ctx context.Context, db database.Queryable, show *Show) (*Show, error) {
	var created Show
	if err := db.GetContext(ctx, &created, `
		INSERT INTO shows(id, owner_id, title, description, created_at)
		VALUES ($1, $2, $3, $4, current_timestamp)
		RETURNING *`,
		show.ID, show.OwnerID, show.Title, show.Description,
	); err != nil {
		return nil, fmt.Errorf("failed to insert show: %w", err)
	}

	return &created, nil
}

// FindOrCreateSeason returns the season with the given number for the show, creating
// it if it does not exist. The no-op update on conflict allows the existing row to
// be returned atomically.
func (store *Store) FindOrCreateSeason(ctx context.Context, db database.Queryable, showID uuid.UUID, seasonNumber int) (*Season, error) {
	var season Season
	if err := db.GetContext(ctx, &season, `
		INSERT INTO seasons(id, show_id, season_number, created_at)
		VALUES ($1, $2, $3, current_timestamp)
		ON CONFLICT(show_id, season_number) DO UPDATE SET season_number=EXCLUDED.season_number
		RETURNING *`,
		uuid.New(), showID, seasonNumber,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert season %d for show %s: %w", seasonNumber, showID, err)
	}

	return &season, nil
}

func (store *Store) GetSeason(ctx context.Context, db database.Queryable, id uuid.UUID) (*Season, error) {
	var season Season
	if err := db.GetContext(ctx, &season, `
		SELECT se.*, sh.owner_id FROM seasons se
		INNER JOIN shows sh ON sh.id = se.show_id
		WHERE se.id=$1`, id,
	); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to select season %s: %w", id, err)
	}

	return &season, nil
}

func (store *Store) ListAlbums(ctx context.Context, db database.Queryable, ownerID uuid.UUID) ([]*Album, error) {
	var albums []*Album
	if err := db.SelectContext(ctx, &albums, `SELECT * FROM albums WHERE owner_id=$1 ORDER BY created_at ASC`, ownerID); err != nil {
		return nil, fmt.Errorf("failed to select albums for owner %s: %w", ownerID, err)
	}

	return albums, nil
}

func (store *Store) GetAlbum(ctx context.Context, db database.Queryable, id uuid.UUID) (*Album, error) {
	var album Album
	if err := db.GetContext(ctx, &album, `SELECT * FROM albums WHERE id=$1`, id); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to select album %s: %w", id, err)
	}

	return &album, nil
}

// FindOrCreateAlbum returns the album owned by the user with the given title, creating
// it if it does not exist. The artist and description of an existing album are left
// untouched.
func (store *Store) FindOrCreateAlbum(ctx context.Context, db database.Queryable, album *Album) (*Album, error) {
	var result Album
	if err := db.GetContext(ctx, &result, `
		INSERT INTO albums(id, owner_id, title, artist, description, created_at)
		VALUES ($1, $2, $3, $4, $5, current_timestamp)
		ON CONFLICT(owner_id, title) DO UPDATE SET title=EXCLUDED.title
		RETURNING *`,
		album.ID, album.OwnerID, album.Title, album.Artist, album.Description,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert album %q: %w", album.Title, err)
	}

	return &result, nil
}

func (store *Store) GetEntry(ctx context.Context, db database.Queryable, kind EntryKind, collectionID uuid.UUID, number int) (*Entry, error) {
	query, args, err := entrySelect(kind).
		Where(squirrel.Eq{kind.collectionColumn: collectionID, kind.numberColumn: number}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct select %s query: %w", kind, err)
	}

	var entry Entry
	if err := db.GetContext(ctx, &entry, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to select %s %d of %s: %w", kind, number, collectionID, err)
	}

	return &entry, nil
}

// InsertEntry creates a new entry. If the number is already taken within the
// collection ErrEntryExists is returned.
func (store *Store) InsertEntry(ctx context.Context, db database.Queryable, kind EntryKind, entry *Entry) (*Entry, error) {
	query, args, err := psql.
		Insert(kind.table).
		Columns("id", kind.collectionColumn, kind.numberColumn, "video_id", "created_at").
		Values(entry.ID, entry.CollectionID, entry.Number, entry.VideoID, squirrel.Expr("current_timestamp")).
		Suffix(fmt.Sprintf("RETURNING id, %s AS collection_id, %s AS number, video_id, created_at", kind.collectionColumn, kind.numberColumn)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct insert %s query: %w", kind, err)
	}

	var created Entry
	if err := db.GetContext(ctx, &created, query, args...); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEntryExists
		}
		return nil, fmt.Errorf("failed to insert %s: %w", kind, err)
	}

	return &created, nil
}

func (store *Store) ListEntriesForVideo(ctx context.Context, db database.Queryable, kind EntryKind, videoID uuid.UUID) ([]*Entry, error) {
	query, args, err := entrySelect(kind).Where(squirrel.Eq{"video_id": videoID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct select %s query: %w", kind, err)
	}

	var entries []*Entry
	if err := db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select %s for video %s: %w", kind, videoID, err)
	}

	return entries, nil
}

func entrySelect(kind EntryKind) squirrel.SelectBuilder {
	return psql.
		Select("id", kind.collectionColumn+" AS collection_id", kind.numberColumn+" AS number", "video_id", "created_at").
		From(kind.table)
}
