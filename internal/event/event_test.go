package event_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/event"
	"github.com/stretchr/testify/assert"
)

func Test_DispatchToChannel(t *testing.T) {
	bus := event.New()
	ch := make(event.HandlerChannel, 10)
	bus.RegisterHandlerChannel(ch, event.VIDEO_UPDATE, event.UPLOAD_PROGRESS)

	videoID := uuid.New()
	bus.Dispatch(event.VIDEO_UPDATE, videoID)
	bus.Dispatch(event.UPLOAD_PROGRESS, event.UploadProgress{VideoID: videoID, Percent: 40})

	assert.Equal(t, event.HandlerEvent{Event: event.VIDEO_UPDATE, Payload: videoID}, <-ch)
	assert.Equal(t, event.HandlerEvent{Event: event.UPLOAD_PROGRESS, Payload: event.UploadProgress{VideoID: videoID, Percent: 40}}, <-ch)
}

func Test_DispatchRejectsIllegalPayload(t *testing.T) {
	tests := []struct {
		ev      event.Event
		payload event.Payload
	}{
		{event.VIDEO_UPDATE, "not-a-uuid"},
		{event.UPLOAD_COMPLETE, nil},
		{event.UPLOAD_PROGRESS, uuid.New()},
		{event.Event("unknown"), uuid.New()},
	}

	for _, tt := range tests {
		t.Run(string(tt.ev), func(t *testing.T) {
			bus := event.New()
			called := false
			bus.RegisterHandlerFunction(tt.ev, func(event.Event, event.Payload) { called = true })

			bus.Dispatch(tt.ev, tt.payload)
			assert.False(t, called)
		})
	}
}
