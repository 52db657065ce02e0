package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrShowNotFound   = errors.New("show does not exist")
	ErrSeasonNotFound = errors.New("season does not exist")
	ErrAlbumNotFound  = errors.New("album does not exist")
	ErrEntryNotFound  = errors.New("catalog entry does not exist")
	ErrEntryExists    = errors.New("catalog entry already exists")

	// ErrVideoNotFound is returned by GetVideoOwner implementations when
	// the video does not exist.
	ErrVideoNotFound = errors.New("video does not exist")
)

type (
	Show struct {
		ID          uuid.UUID `db:"id" json:"id"`
		OwnerID     uuid.UUID `db:"owner_id" json:"owner_id"`
		Title       string    `db:"title" json:"title"`
		Description *string   `db:"description" json:"description"`
		CreatedAt   time.Time `db:"created_at" json:"created_at"`
	}

	// Season belongs to a show. OwnerID is only populated when the
	// season is fetched along with its show.
	Season struct {
		ID           uuid.UUID `db:"id" json:"id"`
		ShowID       uuid.UUID `db:"show_id" json:"show_id"`
		SeasonNumber int       `db:"season_number" json:"season_number"`
		CreatedAt    time.Time `db:"created_at" json:"created_at"`
		OwnerID      uuid.UUID `db:"owner_id" json:"-"`
	}

	Album struct {
		ID          uuid.UUID `db:"id" json:"id"`
		OwnerID     uuid.UUID `db:"owner_id" json:"owner_id"`
		Title       string    `db:"title" json:"title"`
		Artist      *string   `db:"artist" json:"artist"`
		Description *string   `db:"description" json:"description"`
		CreatedAt   time.Time `db:"created_at" json:"created_at"`
	}

	// Entry is a numbered link between a collection and a video; an
	// episode within a season, or a track within an album.
	Entry struct {
		ID           uuid.UUID `db:"id" json:"id"`
		CollectionID uuid.UUID `db:"collection_id" json:"collection_id"`
		Number       int       `db:"number" json:"number"`
		VideoID      uuid.UUID `db:"video_id" json:"video_id"`
		CreatedAt    time.Time `db:"created_at" json:"created_at"`
	}

	// EntryKind describes the table and columns used to store
	// the entries of a given collection type.
	EntryKind struct {
		table            string
		collectionColumn string
		numberColumn     string
		conflictMessage  string
	}
)

var (
	EpisodeEntry = EntryKind{table: "episodes", collectionColumn: "season_id", numberColumn: "episode_number", conflictMessage: "Episode already exists for this season"}
	TrackEntry   = EntryKind{table: "tracks", collectionColumn: "album_id", numberColumn: "track_number", conflictMessage: "Track already exists for this album"}
)

func (k EntryKind) String() string { return k.table }
