package internal

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/event"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	sync.Mutex
	calls []string
}

func (r *recordingBroadcaster) BroadcastVideoUpdate(id uuid.UUID) error {
	r.Lock()
	defer r.Unlock()
	r.calls = append(r.calls, "video:"+id.String())
	return nil
}

func (r *recordingBroadcaster) BroadcastUploadProgress(id uuid.UUID, percent int) error {
	r.Lock()
	defer r.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("progress:%s:%d", id, percent))
	return nil
}

func (r *recordingBroadcaster) snapshot() []string {
	r.Lock()
	defer r.Unlock()
	return append([]string(nil), r.calls...)
}

func newTestActivity(t *testing.T) (*activityService, *recordingBroadcaster, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	rec := &recordingBroadcaster{}
	return newActivityService(rec, event.New(), clock), rec, clock
}

func Test_Activity_DebouncesVideoUpdates(t *testing.T) {
	service, rec, clock := newTestActivity(t)
	id := uuid.New()

	for range 3 {
		require.NoError(t, service.handleEvent(event.HandlerEvent{Event: event.VIDEO_UPDATE, Payload: id}))
		clock.Advance(time.Second)
	}
	assert.Empty(t, rec.snapshot(), "still within the debounce window of the latest event")

	clock.Advance(DEBOUNCE_DURATION)
	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"video:" + id.String()}, rec.snapshot())
}

func Test_Activity_MaxTimerForcesBroadcast(t *testing.T) {
	service, rec, clock := newTestActivity(t)
	id := uuid.New()

	// Events keep arriving inside the debounce window, so only the max timer can fire
	for range 6 {
		require.NoError(t, service.handleEvent(event.HandlerEvent{Event: event.VIDEO_UPDATE, Payload: id}))
		clock.Advance(time.Second)
	}

	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 10*time.Millisecond)
}

func Test_Activity_ProgressReportsHighestPercent(t *testing.T) {
	service, rec, clock := newTestActivity(t)
	id := uuid.New()

	require.NoError(t, service.handleEvent(event.HandlerEvent{Event: event.UPLOAD_PROGRESS, Payload: event.UploadProgress{VideoID: id, Percent: 30}}))
	require.NoError(t, service.handleEvent(event.HandlerEvent{Event: event.UPLOAD_PROGRESS, Payload: event.UploadProgress{VideoID: id, Percent: 60}}))
	require.NoError(t, service.handleEvent(event.HandlerEvent{Event: event.UPLOAD_PROGRESS, Payload: event.UploadProgress{VideoID: id, Percent: 50}}))

	clock.Advance(RAPID_EVENT_DEBOUNCE_DURATION)
	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, fmt.Sprintf("progress:%s:60", id), rec.snapshot()[0])
}

func Test_Activity_UploadCompleteFlushesImmediately(t *testing.T) {
	service, rec, _ := newTestActivity(t)
	id := uuid.New()

	require.NoError(t, service.handleEvent(event.HandlerEvent{Event: event.UPLOAD_PROGRESS, Payload: event.UploadProgress{VideoID: id, Percent: 10}}))
	require.NoError(t, service.handleEvent(event.HandlerEvent{Event: event.UPLOAD_COMPLETE, Payload: id}))

	assert.Equal(t, []string{fmt.Sprintf("progress:%s:100", id)}, rec.snapshot())
	assert.Empty(t, service.debounceTimers)
	assert.Empty(t, service.progress)
}

func Test_Activity_RejectsIllegalPayloads(t *testing.T) {
	service, _, _ := newTestActivity(t)

	assert.Error(t, service.handleEvent(event.HandlerEvent{Event: event.VIDEO_UPDATE, Payload: "nope"}))
	assert.Error(t, service.handleEvent(event.HandlerEvent{Event: event.UPLOAD_PROGRESS, Payload: uuid.New()}))
	assert.Error(t, service.handleEvent(event.HandlerEvent{Event: event.Event("other"), Payload: uuid.New()}))
}
