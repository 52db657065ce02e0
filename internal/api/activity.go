package api

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/http/websocket"
	"github.com/hbomb79/Marquee/internal/video"
)

const (
	TITLE_VIDEO_UPDATE    = "VIDEO_UPDATE"
	TITLE_UPLOAD_PROGRESS = "UPLOAD_PROGRESS"

	broadcastLookupTimeout = 5 * time.Second
)

type (
	VideoUpdate struct {
		VideoID  uuid.UUID    `json:"video_id"`
		Video    *video.Video `json:"video"`
		NextStep string       `json:"next_step"`
	}

	UploadProgress struct {
		VideoID uuid.UUID `json:"video_id"`
		Percent int       `json:"percent"`
	}

	// VideoStore is used to find the video (and therefore owner) an
	// activity event relates to.
	VideoStore interface {
		GetVideo(ctx context.Context, id uuid.UUID) (*video.Video, error)
	}

	sender interface {
		Send(*websocket.SocketMessage)
	}

	// broadcaster pushes activity to the websocket clients of the user
	// who owns the video the activity relates to.
	broadcaster struct {
		socketHub sender
		store     VideoStore
	}
)

func newBroadcaster(socketHub sender, store VideoStore) *broadcaster {
	return &broadcaster{socketHub, store}
}

func (hub *broadcaster) BroadcastVideoUpdate(id uuid.UUID) error {
	v, err := hub.lookup(id)
	if err != nil {
		return err
	}

	hub.broadcast(v.OwnerID, TITLE_VIDEO_UPDATE, VideoUpdate{VideoID: id, Video: v, NextStep: v.Status.NextStep()})
	return nil
}

func (hub *broadcaster) BroadcastUploadProgress(id uuid.UUID, percent int) error {
	v, err := hub.lookup(id)
	if err != nil {
		return err
	}

	hub.broadcast(v.OwnerID, TITLE_UPLOAD_PROGRESS, UploadProgress{VideoID: id, Percent: percent})
	return nil
}

func (hub *broadcaster) lookup(id uuid.UUID) (*video.Video, error) {
	ctx, cancel := context.WithTimeout(context.Background(), broadcastLookupTimeout)
	defer cancel()

	v, err := hub.store.GetVideo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find video %s for broadcast: %w", id, err)
	}

	return v, nil
}

func (hub *broadcaster) broadcast(ownerID uuid.UUID, title string, update any) {
	hub.socketHub.Send(&websocket.SocketMessage{
		Title: title,
		Body:  map[string]interface{}{"arguments": update},
		Type:  websocket.Update,
		User:  &ownerID,
	})
}
