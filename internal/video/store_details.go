package video

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/database"
	"github.com/lib/pq"
)

// ReplaceGenres removes all genres from the video before linking it to the genres
// provided. Genres which do not yet exist are created.
func (store *Store) ReplaceGenres(ctx context.Context, db database.Queryable, videoID uuid.UUID, genres []string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM video_genres WHERE video_id=$1`, videoID); err != nil {
		return fmt.Errorf("failed to clear genres for video %s: %w", videoID, err)
	}
	if len(genres) == 0 {
		return nil
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO genres(name) SELECT UNNEST($1::TEXT[])
		ON CONFLICT(name) DO NOTHING`, pq.Array(genres),
	); err != nil {
		return fmt.Errorf("failed to upsert genres: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO video_genres(video_id, genre_id)
		SELECT $1, id FROM genres WHERE name = ANY($2)`, videoID, pq.Array(genres),
	); err != nil {
		return fmt.Errorf("failed to link genres to video %s: %w", videoID, err)
	}

	return nil
}

func (store *Store) ReplaceCast(ctx context.Context, db database.Queryable, videoID uuid.UUID, cast []string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM cast_members WHERE video_id=$1`, videoID); err != nil {
		return fmt.Errorf("failed to clear cast for video %s: %w", videoID, err)
	}

	for _, name := range cast {
		if _, err := db.ExecContext(ctx, `INSERT INTO cast_members(id, video_id, name) VALUES ($1, $2, $3)`, uuid.New(), videoID, name); err != nil {
			return fmt.Errorf("failed to insert cast member %q for video %s: %w", name, videoID, err)
		}
	}

	return nil
}

// ReplaceCrew removes all crew from the video before inserting the crew
// members provided. Roles which do not yet exist are created.
func (store *Store) ReplaceCrew(ctx context.Context, db database.Queryable, videoID uuid.UUID, crew []CrewMember) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM crew_members WHERE video_id=$1`, videoID); err != nil {
		return fmt.Errorf("failed to clear crew for video %s: %w", videoID, err)
	}

	for _, member := range crew {
		var roleID int
		if err := db.GetContext(ctx, &roleID, `
			INSERT INTO crew_roles(name) VALUES ($1)
			ON CONFLICT(name) DO UPDATE SET name=EXCLUDED.name
			RETURNING id`, member.Role,
		); err != nil {
			return fmt.Errorf("failed to upsert crew role %q: %w", member.Role, err)
		}

		if _, err := db.ExecContext(ctx, `
			INSERT INTO crew_members(id, video_id, name, role_id) VALUES ($1, $2, $3, $4)`,
			uuid.New(), videoID, member.Name, roleID,
		); err != nil {
			return fmt.Errorf("failed to insert crew member %q for video %s: %w", member.Name, videoID, err)
		}
	}

	return nil
}

func (store *Store) GetCredits(ctx context.Context, db database.Queryable, videoID uuid.UUID) (*Credits, error) {
	credits := &Credits{Genres: []string{}, Cast: []string{}, Crew: []CrewMember{}}
	if err := db.SelectContext(ctx, &credits.Genres, `
		SELECT g.name FROM genres g
		INNER JOIN video_genres vg ON vg.genre_id = g.id
		WHERE vg.video_id=$1
		ORDER BY g.name`, videoID,
	); err != nil {
		return nil, fmt.Errorf("failed to select genres for video %s: %w", videoID, err)
	}

	if err := db.SelectContext(ctx, &credits.Cast, `SELECT name FROM cast_members WHERE video_id=$1 ORDER BY name`, videoID); err != nil {
		return nil, fmt.Errorf("failed to select cast for video %s: %w", videoID, err)
	}

	if err := db.SelectContext(ctx, &credits.Crew, `
		SELECT cm.name, cr.name AS role FROM crew_members cm
		INNER JOIN crew_roles cr ON cr.id = cm.role_id
		WHERE cm.video_id=$1
		ORDER BY cr.name, cm.name`, videoID,
	); err != nil {
		return nil, fmt.Errorf("failed to select crew for video %s: %w", videoID, err)
	}

	return credits, nil
}
