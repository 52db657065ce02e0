package internal

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/event"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/jonboulle/clockwork"
)

const (
	DEBOUNCE_DURATION  time.Duration = time.Second * 2
	MAX_TIMER_DURATION time.Duration = time.Second * 5

	RAPID_EVENT_DEBOUNCE_DURATION  time.Duration = time.Millisecond * 500
	RAPID_EVENT_MAX_TIMER_DURATION time.Duration = time.Second * 2
)

type (
	broadcastHandler func(uuid.UUID) error

	broadcaster interface {
		BroadcastVideoUpdate(uuid.UUID) error
		BroadcastUploadProgress(uuid.UUID, int) error
	}

	eventKey struct {
		ev event.Event
		id uuid.UUID
	}

	// activityService collapses bursts of events for the same video into
	// a single broadcast. A broadcast is sent once events stop arriving for
	// the debounce duration, or once the max duration since the first
	// pending event has elapsed, whichever comes first.
	activityService struct {
		*sync.Mutex
		broadcaster
		clock          clockwork.Clock
		eventBus       event.EventHandler
		debounceTimers map[eventKey]clockwork.Timer
		maxTimers      map[eventKey]clockwork.Timer
		progress       map[uuid.UUID]int
	}
)

func newActivityService(broadcaster broadcaster, eventBus event.EventHandler, clock clockwork.Clock) *activityService {
	return &activityService{
		Mutex:          &sync.Mutex{},
		broadcaster:    broadcaster,
		clock:          clock,
		eventBus:       eventBus,
		debounceTimers: make(map[eventKey]clockwork.Timer),
		maxTimers:      make(map[eventKey]clockwork.Timer),
		progress:       make(map[uuid.UUID]int),
	}
}

func (service *activityService) Run(ctx context.Context) error {
	messageChan := make(chan event.HandlerEvent, 100)
	service.eventBus.RegisterHandlerChannel(messageChan, event.VIDEO_UPDATE, event.UPLOAD_PROGRESS, event.UPLOAD_COMPLETE)

	log.Emit(logger.NEW, "Activity service started\n")
	for {
		select {
		case ev := <-messageChan:
			if err := service.handleEvent(ev); err != nil {
				log.Emit(logger.ERROR, "Handling of event %v failed: %v\n", ev, err)
			}
		case <-ctx.Done():
			service.stopAll()
			log.Emit(logger.STOP, "Activity service closed\n")
			return nil
		}
	}
}

func (service *activityService) handleEvent(ev event.HandlerEvent) error {
	switch ev.Event {
	case event.VIDEO_UPDATE:
		videoID, ok := ev.Payload.(uuid.UUID)
		if !ok {
			return errors.New("illegal payload (expected UUID)")
		}

		service.scheduleEventBroadcast(eventKey{ev: ev.Event, id: videoID}, service.BroadcastVideoUpdate)
	case event.UPLOAD_PROGRESS:
		progress, ok := ev.Payload.(event.UploadProgress)
		if !ok {
			return errors.New("illegal payload (expected UploadProgress)")
		}

		service.recordProgress(progress.VideoID, progress.Percent)
		service.scheduleRapidEventBroadcast(eventKey{ev: event.UPLOAD_PROGRESS, id: progress.VideoID}, service.broadcastProgress)
	case event.UPLOAD_COMPLETE:
		videoID, ok := ev.Payload.(uuid.UUID)
		if !ok {
			return errors.New("illegal payload (expected UUID)")
		}

		// Completion supersedes any pending progress broadcast
		service.recordProgress(videoID, 100)
		service.broadcast(eventKey{ev: event.UPLOAD_PROGRESS, id: videoID}, service.broadcastProgress)
	default:
		return errors.New("unknown event type")
	}

	return nil
}

func (service *activityService) recordProgress(videoID uuid.UUID, percent int) {
	service.Lock()
	defer service.Unlock()

	if percent > service.progress[videoID] {
		service.progress[videoID] = percent
	}
}

// broadcastProgress sends the highest percentage seen for the video. Once
// the upload is complete the recorded value is forgotten.
func (service *activityService) broadcastProgress(videoID uuid.UUID) error {
	service.Lock()
	percent := service.progress[videoID]
	if percent >= 100 {
		delete(service.progress, videoID)
	}
	service.Unlock()

	return service.BroadcastUploadProgress(videoID, percent)
}

func (service *activityService) scheduleEventBroadcast(resourceKey eventKey, handler broadcastHandler) {
	service._scheduleEventBroadcast(resourceKey, handler, DEBOUNCE_DURATION, MAX_TIMER_DURATION)
}

func (service *activityService) scheduleRapidEventBroadcast(resourceKey eventKey, handler broadcastHandler) {
	service._scheduleEventBroadcast(resourceKey, handler, RAPID_EVENT_DEBOUNCE_DURATION, RAPID_EVENT_MAX_TIMER_DURATION)
}

func (service *activityService) _scheduleEventBroadcast(resourceKey eventKey, handler broadcastHandler, debounceTime time.Duration, maxTime time.Duration) {
	service.Lock()
	defer service.Unlock()

	broadcaster := func() { service.broadcast(resourceKey, handler) }

	// Cancel and re-set a debounce timer
	if t, ok := service.debounceTimers[resourceKey]; ok {
		t.Stop()
	}
	service.debounceTimers[resourceKey] = service.clock.AfterFunc(debounceTime, broadcaster)

	// Set a max timer if not already set
	if _, ok := service.maxTimers[resourceKey]; !ok {
		service.maxTimers[resourceKey] = service.clock.AfterFunc(maxTime, broadcaster)
	}
}

func (service *activityService) broadcast(resourceKey eventKey, handler broadcastHandler) {
	service.Lock()
	if t, ok := service.debounceTimers[resourceKey]; ok {
		t.Stop()
		delete(service.debounceTimers, resourceKey)
	}

	if t, ok := service.maxTimers[resourceKey]; ok {
		t.Stop()
		delete(service.maxTimers, resourceKey)
	}
	service.Unlock()

	if err := handler(resourceKey.id); err != nil {
		log.Emit(logger.WARNING, "Broadcast of %s for %s failed: %v\n", resourceKey.ev, resourceKey.id, err)
	}
}

func (service *activityService) stopAll() {
	service.Lock()
	defer service.Unlock()

	for key, t := range service.debounceTimers {
		t.Stop()
		delete(service.debounceTimers, key)
	}
	for key, t := range service.maxTimers {
		t.Stop()
		delete(service.maxTimers, key)
	}
}
