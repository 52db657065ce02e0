package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/hbomb79/Marquee/internal/api/controllers/auth"
	"github.com/hbomb79/Marquee/internal/api/controllers/catalog"
	"github.com/hbomb79/Marquee/internal/api/controllers/profile"
	"github.com/hbomb79/Marquee/internal/api/controllers/videos"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/http/websocket"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

var log = logger.Get("API")

type (
	RestConfig struct {
		HostAddr      string        `yaml:"host_address" env:"API_HOST_ADDR" env-default:"0.0.0.0:5000"`
		CorsOrigins   []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
		TokenCacheTTL time.Duration `yaml:"token_cache_ttl" env:"TOKEN_CACHE_TTL" env-default:"30s"`

		// AuthRateLimit is the number of requests per second each client
		// may make to the auth routes, with bursts of up to AuthRateBurst.
		AuthRateLimit float64 `yaml:"auth_rate_limit" env:"AUTH_RATE_LIMIT" env-default:"2"`
		AuthRateBurst int     `yaml:"auth_rate_burst" env:"AUTH_RATE_BURST" env-default:"10"`
	}

	controller interface {
		SetRoutes(*echo.Group)
	}

	Services struct {
		Auth    auth.Service
		Profile profile.Service
		Catalog catalog.Service
		Video   videos.Service
	}

	// The RestGateway is a thin-wrapper around the Echo HTTP router. It's sole responsbility
	// is to create the routes Marquee exposes, manage ongoing web socket connections and
	// activity, and to enforce authentication middleware where applicable.
	RestGateway struct {
		*broadcaster
		config            *RestConfig
		ec                *echo.Echo
		socket            *websocket.SocketHub
		authProvider      interface{ PruneCache() }
		authController    controller
		profileController controller
		catalogController controller
		videoController   controller
	}
)

// NewRestGateway constructs the Echo router and populates it with all the
// routes defined by the various controllers.
func NewRestGateway(
	config *RestConfig,
	identity jwt.IdentityProvider,
	jwtSecret string,
	services Services,
	store VideoStore,
) *RestGateway {
	ec := echo.New()
	ec.OnAddRouteHandler = func(host string, route echo.Route, handler echo.HandlerFunc, middleware []echo.MiddlewareFunc) {
		log.Emit(logger.DEBUG, "Registered new route %s %s\n", route.Method, route.Path)
	}
	ec.HidePort = true
	ec.HideBanner = true
	ec.HTTPErrorHandler = gen.GetHTTPErrorHandler(ec.DefaultHTTPErrorHandler)

	authProvider := jwt.NewBearerAuth(identity, []byte(jwtSecret), config.TokenCacheTTL, clockwork.NewRealClock())
	socket := websocket.New(config.CorsOrigins)
	gateway := &RestGateway{
		broadcaster:       newBroadcaster(socket, store),
		config:            config,
		ec:                ec,
		socket:            socket,
		authProvider:      authProvider,
		authController:    auth.New(services.Auth, authProvider),
		profileController: profile.New(services.Profile, authProvider),
		catalogController: catalog.New(services.Catalog, authProvider),
		videoController:   videos.New(services.Video, authProvider),
	}

	metrics := newMetrics()
	ec.Use(middleware.Recover())
	ec.Use(metrics.middleware())
	ec.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Emit(logger.VERBOSE, "%s %s -> %d (%s)\n", v.Method, v.URIPath, v.Status, v.Latency)
			return nil
		},
	}))
	ec.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     config.CorsOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	}))

	ec.GET("/health", func(ec echo.Context) error {
		return gen.OK(ec, "Service healthy", map[string]string{"status": "ok"})
	})
	ec.GET("/metrics", metrics.handler())

	api := ec.Group("/api", authProvider.GetSecurityValidatorMiddleware())
	api.GET("/activity/ws", func(ec echo.Context) error {
		user, err := authProvider.GetAuthenticatedUserFromContext(ec)
		if err != nil {
			return gen.ErrAPIUnauthorized
		}

		gateway.socket.UpgradeToSocket(ec.Response(), ec.Request(), user.ID)
		return nil
	})

	gateway.authController.SetRoutes(api.Group("/auth", newAuthRateLimiter(config)))
	gateway.profileController.SetRoutes(api.Group("/profile"))
	gateway.catalogController.SetRoutes(api)
	gateway.videoController.SetRoutes(api.Group("/videos"))

	return gateway
}

// ServeHTTP allows the gateway to be mounted in tests without
// binding to a port.
func (gateway *RestGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	gateway.ec.ServeHTTP(w, r)
}

func (gateway *RestGateway) Run(parentCtx context.Context) error {
	ctx, ctxCancel := context.WithCancelCause(parentCtx)
	wg := &sync.WaitGroup{}

	// Start echo router
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := gateway.ec.Start(gateway.config.HostAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ctxCancel(err)
		}
	}()

	// Start thread to listen for context cancellation
	go func(ec *echo.Echo) {
		<-ctx.Done()
		ec.Close()
	}(gateway.ec)

	// Start websocket
	wg.Add(1)
	go func() {
		defer wg.Done()
		gateway.socket.Run(ctx)
	}()

	// Periodically drop expired token cache entries
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				gateway.authProvider.PruneCache()
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Emit(logger.INFO, "REST gateway listening on %s\n", gateway.config.HostAddr)
	wg.Wait()

	// Return cancellation cause if any, otherwise nil as parent context
	// cancellation is not an error case we should report.
	if cause := context.Cause(ctx); cause != ctx.Err() {
		return cause
	}

	return nil
}

// newAuthRateLimiter limits the rate at which each client (by IP) can
// call the auth routes.
func newAuthRateLimiter(config *RestConfig) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(config.AuthRateLimit),
			Burst:     config.AuthRateBurst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(ec echo.Context) (string, error) {
			return ec.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return gen.APIError{Status: http.StatusForbidden, InternalMessage: err.Error()}
		},
		DenyHandler: func(_ echo.Context, identifier string, err error) error {
			return gen.APIError{Status: http.StatusTooManyRequests, Message: "Too many requests, please slow down", InternalMessage: identifier + ": " + err.Error()}
		},
	})
}
