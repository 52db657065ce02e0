package internal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/api"
	"github.com/hbomb79/Marquee/internal/auth"
	"github.com/hbomb79/Marquee/internal/broker"
	"github.com/hbomb79/Marquee/internal/catalog"
	"github.com/hbomb79/Marquee/internal/database"
	"github.com/hbomb79/Marquee/internal/event"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/internal/profile"
	"github.com/hbomb79/Marquee/internal/storage"
	"github.com/hbomb79/Marquee/internal/video"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/hbomb79/Marquee/pkg/upload"
	"github.com/jonboulle/clockwork"
)

var log = logger.Get("Core")

const (
	startupProbeTimeout = 10 * time.Second
	limiterPruneEvery   = 5 * time.Minute
)

type (
	RunnableService interface {
		Run(context.Context) error
	}

	// RestGateway is the outward facing surface of Marquee, which must
	// also be able to push activity to connected clients.
	RestGateway interface {
		RunnableService
		BroadcastVideoUpdate(id uuid.UUID) error
		BroadcastUploadProgress(id uuid.UUID, percent int) error
	}
)

// marqueeImpl is the top-level object for the server, and is responsible
// for initialising the external clients, services, stores, event handling
// and the REST gateway.
type marqueeImpl struct {
	config          MarqueeConfig
	eventBus        event.EventCoordinator
	db              database.Manager
	orchestrator    *dataOrchestrator
	identity        *identity.Client
	objects         *storage.Client
	publisher       *broker.Publisher
	authService     *auth.Service
	restGateway     RestGateway
	activityService *activityService
}

func New(config MarqueeConfig) (*marqueeImpl, error) {
	log.Emit(logger.DEBUG, "Bootstrapping Marquee services using config: %#v\n", config)

	objects, err := storage.New(config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to construct object storage client: %w", err)
	}

	marquee := &marqueeImpl{
		config:    config,
		eventBus:  event.New(),
		db:        database.New(),
		identity:  identity.New(config.Identity),
		objects:   objects,
		publisher: broker.New(config.Broker),
	}
	marquee.orchestrator = newDataOrchestrator(marquee.db)

	profileService := profile.NewService(marquee.orchestrator, marquee.identity, config.FrontendURL)
	catalogService := catalog.NewService(marquee.orchestrator)
	uploader := upload.New(objects.Multipart(), marquee.orchestrator.UploadSessions())
	videoService := video.NewService(marquee.orchestrator, objects, catalogService, marquee.publisher, uploader, marquee.eventBus)
	marquee.authService = auth.NewService(config.Auth, marquee.identity, marquee.orchestrator, profileService, config.FrontendURL)

	gateway := api.NewRestGateway(&config.Rest, marquee.identity, config.Identity.JWTSecret, api.Services{
		Auth:    marquee.authService,
		Profile: profileService,
		Catalog: catalogService,
		Video:   videoService,
	}, marquee.orchestrator)
	marquee.restGateway = gateway
	marquee.activityService = newActivityService(gateway, marquee.eventBus, clockwork.NewRealClock())

	return marquee, nil
}

// Run will start all of Marquee by connecting to the database, ensuring the
// object storage buckets exist, and spawning the services.
//
// This function will not return until Marquee is stopped.
// To stop Marquee, the provided context must be cancelled. Errors from which Marquee
// cannot recover will also cause Marquee to stop.
func (marquee *marqueeImpl) Run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	crashHandler := func(label string, err error) {
		log.Emit(logger.FATAL, "Service crash (%s)! %s\n", label, err.Error())
		cancel()
	}

	log.Emit(logger.NEW, "Connecting to database...\n")
	if err := marquee.db.Connect(ctx, marquee.config.Database); err != nil {
		return err
	}
	defer marquee.db.Close()

	log.Emit(logger.NEW, "Preparing object storage...\n")
	if err := marquee.prepareStorage(ctx); err != nil {
		return err
	}

	marquee.checkIdentity(ctx)
	defer func() {
		if err := marquee.publisher.Close(); err != nil {
			log.Emit(logger.WARNING, "Failed to close message broker connection: %v\n", err)
		}
	}()

	wg := &sync.WaitGroup{}
	marquee.spawnAsyncService(ctx, wg, marquee.activityService, "activity-service", crashHandler)
	marquee.spawnAsyncService(ctx, wg, marquee.restGateway, "rest-gateway", crashHandler)
	marquee.spawnAsyncService(ctx, wg, limiterPruner{marquee.authService}, "otp-limiter-pruner", crashHandler)
	log.Emit(logger.SUCCESS, "Marquee services spawned!\n")

	wg.Wait()
	log.Emit(logger.STOP, "Marquee shutdown complete\n")
	return nil
}

// spawnAsyncService will run the provided function/service as it's own
// go-routine, ensuring that the Marquee service waitgroup is updated correctly
func (marquee *marqueeImpl) spawnAsyncService(ctx context.Context, wg *sync.WaitGroup, service RunnableService, serviceLabel string, crashHandler func(string, error)) {
	log.Emit(logger.NEW, "Spawning %s\n", serviceLabel)
	wg.Add(1)

	go func(wg *sync.WaitGroup, label string, crash func(string, error)) {
		defer func() {
			if r := recover(); r != nil {
				crash(label, fmt.Errorf("panic %v", r))
			}
		}()

		defer wg.Done()
		if err := service.Run(ctx); err != nil {
			crash(label, err)
		}
	}(wg, serviceLabel, crashHandler)
}

func (marquee *marqueeImpl) prepareStorage(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, startupProbeTimeout)
	defer cancel()

	if err := marquee.objects.EnsureBuckets(ctx); err != nil {
		return fmt.Errorf("failed to prepare object storage buckets: %w", err)
	}

	return nil
}

// checkIdentity checks the identity provider is reachable. Marquee still
// starts if it is not, as the provider may become available later.
func (marquee *marqueeImpl) checkIdentity(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, startupProbeTimeout)
	defer cancel()

	if err := marquee.identity.Health(ctx); err != nil {
		log.Emit(logger.WARNING, "Identity provider at %s is not healthy: %v\n", marquee.config.Identity.URL, err)
		return
	}

	log.Emit(logger.SUCCESS, "Identity provider is healthy\n")
}

// limiterPruner periodically drops idle OTP rate limiters.
type limiterPruner struct{ service *auth.Service }

func (pruner limiterPruner) Run(ctx context.Context) error {
	ticker := time.NewTicker(limiterPruneEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pruner.service.PruneLimiters()
		case <-ctx.Done():
			return nil
		}
	}
}
