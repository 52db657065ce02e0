package video

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrVideoNotFound        = errors.New("video does not exist")
	ErrCaptionNotFound      = errors.New("caption does not exist")
	ErrArtworkNotFound      = errors.New("artwork does not exist")
	ErrMonetizationNotFound = errors.New("monetization does not exist")
	ErrLegalNotFound        = errors.New("legal declaration does not exist")
)

// Status is the wizard progress of a video. Statuses are ordered, and a
// video only ever moves forward one status at a time.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusDetailed      Status = "detailed"
	StatusMediaAttached Status = "media_attached"
	StatusMonetized     Status = "monetized"
	StatusPublished     Status = "published"
)

var statusOrder = []Status{StatusDraft, StatusDetailed, StatusMediaAttached, StatusMonetized, StatusPublished}

// Rank returns the position of the status in the wizard, or -1
// for an unknown status.
func (s Status) Rank() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}

	return -1
}

func (s Status) AtLeast(other Status) bool { return s.Rank() >= other.Rank() }

// Previous returns the status a video must hold before it can move to
// this one. Drafts have no previous status.
func (s Status) Previous() (Status, bool) {
	if rank := s.Rank(); rank > 0 {
		return statusOrder[rank-1], true
	}

	return "", false
}

// NextStep names the wizard step the user should complete next.
func (s Status) NextStep() string {
	switch s {
	case StatusDraft:
		return "details"
	case StatusDetailed:
		return "media"
	case StatusMediaAttached:
		return "monetization"
	case StatusMonetized:
		return "publish"
	default:
		return "done"
	}
}

type (
	Video struct {
		ID             uuid.UUID  `db:"id" json:"id"`
		OwnerID        uuid.UUID  `db:"owner_id" json:"owner_id"`
		Title          string     `db:"title" json:"title"`
		Description    string     `db:"description" json:"description"`
		Category       string     `db:"category" json:"category"`
		Synopsis       *string    `db:"synopsis" json:"synopsis"`
		Visibility     string     `db:"visibility" json:"visibility"`
		Is18Plus       bool       `db:"is_18_plus" json:"is_18_plus"`
		Rating         *string    `db:"rating" json:"rating"`
		MonetizationID *uuid.UUID `db:"monetization_id" json:"monetization_id"`
		TrailerPath    *string    `db:"trailer_path" json:"trailer_path"`
		VideoPath      *string    `db:"video_path" json:"video_path"`
		Status         Status     `db:"status" json:"status"`
		PublishedAt    *time.Time `db:"published_at" json:"published_at"`
		CreatedAt      time.Time  `db:"created_at" json:"created_at"`
		UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
	}

	CrewMember struct {
		Name string `db:"name" json:"name" validate:"required,max=128"`
		Role string `db:"role" json:"role" validate:"required,max=64"`
	}

	Caption struct {
		ID        uuid.UUID `db:"id" json:"id"`
		VideoID   uuid.UUID `db:"video_id" json:"video_id"`
		Language  string    `db:"language" json:"language"`
		FileName  string    `db:"file_name" json:"file_name"`
		FilePath  string    `db:"file_path" json:"file_path"`
		UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	}

	Artwork struct {
		ID        uuid.UUID `db:"id" json:"id"`
		VideoID   uuid.UUID `db:"video_id" json:"video_id"`
		Width     int       `db:"width" json:"width"`
		Height    int       `db:"height" json:"height"`
		FilePath  string    `db:"file_path" json:"file_path"`
		PublicURL *string   `db:"public_url" json:"public_url"`
		UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	}

	Monetization struct {
		ID               uuid.UUID `db:"id" json:"id"`
		Type             string    `db:"type" json:"type"`
		AdType           *string   `db:"ad_type" json:"ad_type"`
		AdDuration       *int      `db:"ad_duration" json:"ad_duration"`
		SubscriptionType *string   `db:"subscription_type" json:"subscription_type"`
		CreatedAt        time.Time `db:"created_at" json:"created_at"`
		UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
	}

	Legal struct {
		ID          uuid.UUID `db:"id" json:"id"`
		VideoID     uuid.UUID `db:"video_id" json:"video_id"`
		Ownership   bool      `db:"ownership" json:"ownership"`
		NoCopyright bool      `db:"no_copyright" json:"no_copyright"`
		Consent     bool      `db:"consent" json:"consent"`
		FilePath    *string   `db:"file_path" json:"file_path"`
		UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	}

	// Credits are the genres, cast and crew of a video. They are always
	// replaced as a whole.
	Credits struct {
		Genres []string     `json:"genres"`
		Cast   []string     `json:"cast"`
		Crew   []CrewMember `json:"crew"`
	}

	// Aggregate is a video along with everything attached to it.
	Aggregate struct {
		*Video
		Credits
		Captions     []*Caption    `json:"captions"`
		Artworks     []*Artwork    `json:"artworks"`
		Monetization *Monetization `json:"monetization"`
		Legal        *Legal        `json:"legal"`
		NextStep     string        `json:"next_step"`
	}
)

func (l *Legal) Accepted() bool {
	return l != nil && l.Ownership && l.NoCopyright && l.Consent
}
