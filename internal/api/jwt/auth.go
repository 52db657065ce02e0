package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/hbomb79/Marquee/pkg/sync"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	middleware "github.com/oapi-codegen/echo-middleware"
)

var (
	ErrUnknownSecurityScheme = errors.New("request specifies an unknown security scheme and so cannot be validated")
	ErrAuthTokenMissing      = errors.New("request does not contain a bearer token")
	ErrTokenRevoked          = errors.New("token has been revoked")

	log = logger.Get("JWT-Auth")
)

const (
	// TokenQueryParam is accepted in place of the Authorization header, as
	// browsers cannot set headers on a websocket upgrade request.
	TokenQueryParam = "token"

	// revokedTokenLifespan is how long a revoked token without an
	// expiry claim is remembered for.
	revokedTokenLifespan = time.Hour
)

type (
	IdentityProvider interface {
		GetUser(ctx context.Context, accessToken string) (*identity.User, error)
	}

	AuthenticatedUser struct {
		*identity.User
		Token string
	}

	cachedUser struct {
		user      *identity.User
		expiresAt time.Time
	}

	// bearerAuthProvider authenticates requests using the access tokens issued by
	// the identity provider. Tokens are resolved to a user by asking the provider,
	// and the result is cached until the cache TTL or the token expiry, whichever
	// comes first.
	bearerAuthProvider struct {
		identity IdentityProvider
		secret   []byte
		ttl      time.Duration
		clock    clockwork.Clock

		users *sync.TypedSyncMap[string, cachedUser]

		// This map (acting as a set) is used to keep track of
		// any token which we have explicitly revoked (for example,
		// when a user logs out).
		//
		// NB: Tokens are removed from this set once they expire.
		blacklistedTokens *sync.TypedSyncMap[string, struct{}]
	}
)

// NewBearerAuth creates an authentication provider backed by the identity
// provider. When a secret is provided, tokens are verified locally (HS256) before
// the provider is consulted, so that expired or forged tokens are rejected
// without a round trip.
func NewBearerAuth(identity IdentityProvider, secret []byte, ttl time.Duration, clock clockwork.Clock) *bearerAuthProvider {
	return &bearerAuthProvider{
		identity:          identity,
		secret:            secret,
		ttl:               ttl,
		clock:             clock,
		users:             new(sync.TypedSyncMap[string, cachedUser]),
		blacklistedTokens: new(sync.TypedSyncMap[string, struct{}]),
	}
}

// GetAuthenticatedUserFromContext provides a way for endpoints
// to extract the user (and their token) from the context
// of their request. An error will be returned if no valid
// user can be found.
func (auth *bearerAuthProvider) GetAuthenticatedUserFromContext(ec echo.Context) (*AuthenticatedUser, error) {
	u, ok := ec.Get("user").(*AuthenticatedUser)
	if !ok {
		return nil, errors.New("no user found in request context")
	}

	return u, nil
}

// RevokeToken evicts the token from the user cache, and refuses any further
// use of it until it expires.
func (auth *bearerAuthProvider) RevokeToken(token string) {
	auth.users.Delete(token)
	if _, loaded := auth.blacklistedTokens.LoadOrStore(token, struct{}{}); loaded {
		return
	}

	lifespan := revokedTokenLifespan
	if exp, ok := auth.expiryOf(token); ok {
		lifespan = exp.Sub(auth.clock.Now())
	}

	auth.clock.AfterFunc(lifespan, func() { auth.blacklistedTokens.Delete(token) })
}

// Authenticate resolves the token provided to the identity user it belongs to.
func (auth *bearerAuthProvider) Authenticate(ctx context.Context, token string) (*identity.User, error) {
	if _, ok := auth.blacklistedTokens.Load(token); ok {
		return nil, ErrTokenRevoked
	}

	now := auth.clock.Now()
	if cached, ok := auth.users.Load(token); ok {
		if now.Before(cached.expiresAt) {
			return cached.user, nil
		}

		auth.users.Delete(token)
	}

	expiresAt := now.Add(auth.ttl)
	if len(auth.secret) > 0 {
		exp, err := auth.verify(token)
		if err != nil {
			return nil, err
		}
		if exp != nil && exp.Before(expiresAt) {
			expiresAt = *exp
		}
	} else if exp, ok := auth.expiryOf(token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}

	user, err := auth.identity.GetUser(ctx, token)
	if err != nil {
		if !identity.IsClientError(err) {
			log.Warnf("Identity provider failed to resolve user for bearer token: %v\n", err)
		}
		return nil, fmt.Errorf("failed to resolve user from token: %w", err)
	}

	if expiresAt.After(now) {
		auth.users.Store(token, cachedUser{user: user, expiresAt: expiresAt})
	}

	return user, nil
}

// PruneCache drops every cached user whose entry has expired.
func (auth *bearerAuthProvider) PruneCache() {
	now := auth.clock.Now()
	auth.users.Range(func(token string, cached cachedUser) bool {
		if !now.Before(cached.expiresAt) {
			auth.users.Delete(token)
		}
		return true
	})
}

// GetSecurityValidatorMiddleware returns a middleware which uses the OpenAPI document to
// inspect incoming requests and determine whether the security requirements of
// the matching operation are satisfied.
func (auth *bearerAuthProvider) GetSecurityValidatorMiddleware() echo.MiddlewareFunc {
	spec, err := gen.GetSwagger()
	if err != nil {
		panic(fmt.Sprintf("failed to load OpenAPI spec: %s", err))
	}

	// Clear out the servers array in the spec, this skips validating
	// that server names match. We don't know how this thing will be run.
	spec.Servers = nil

	auth.validateSpecSecurity(spec)

	return middleware.OapiRequestValidatorWithOptions(spec, &middleware.Options{
		Skipper: func(ec echo.Context) bool {
			// OPTIONS requests are answered by the CORS middleware and are
			// not documented in the spec.
			return ec.Request().Method == http.MethodOptions
		},
		ErrorHandler: func(_ echo.Context, err *echo.HTTPError) error {
			// The request validator constructs an Echo HTTPError using
			// the error our AuthenticationFunc returns, which reveals far
			// too much about why the validation failed. The full error is
			// still logged as it's stored in the 'internal' field.
			if err.Internal == nil {
				err.Internal = fmt.Errorf("%v", err.Message)
			}
			err.Message = http.StatusText(err.Code)
			return err
		},
		Options: openapi3filter.Options{
			AuthenticationFunc: auth.validateTokenFromAuthInput,
			ExcludeRequestBody: true,
		},
	})
}

// validateSpecSecurity ensures that the security requirements of the
// provided OpenAPI spec only reference the bearer scheme, as any other
// scheme would make those endpoints unreachable.
func (auth *bearerAuthProvider) validateSpecSecurity(spec *openapi3.T) {
	check := func(requirements openapi3.SecurityRequirements, where string) {
		for _, security := range requirements {
			for scheme := range security {
				if scheme != gen.BearerSecuritySchemeName {
					panic(fmt.Sprintf("validation of OpenAPI spec failed: %s references unknown security scheme '%s'", where, scheme))
				}
			}
		}
	}

	check(spec.Security, "top-level security")
	for _, path := range spec.Paths {
		for _, operation := range path.Operations() {
			if operation.Security != nil {
				check(*operation.Security, "operation "+operation.OperationID)
			}
		}
	}
}

// validateTokenFromAuthInput accepts an OpenAPI authentication input
// and returns an error if we're unable to resolve a user from the
// bearer token of the request.
func (auth *bearerAuthProvider) validateTokenFromAuthInput(ctx context.Context, authInput *openapi3filter.AuthenticationInput) error {
	if authInput.SecuritySchemeName != gen.BearerSecuritySchemeName {
		return ErrUnknownSecurityScheme
	}

	token := TokenFromRequest(authInput.RequestValidationInput.Request)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized).SetInternal(ErrAuthTokenMissing)
	}

	user, err := auth.Authenticate(ctx, token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized).SetInternal(err)
	}

	// Insert user info inside of request context to allow for
	// endpoint handlers to extract user information
	eCtx := middleware.GetEchoContext(ctx)
	eCtx.Set("user", &AuthenticatedUser{User: user, Token: token})

	return nil
}

// TokenFromRequest extracts the bearer token from the Authorization header,
// falling back to the token query parameter.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}

		return ""
	}

	return r.URL.Query().Get(TokenQueryParam)
}

// verify checks the signature and expiry of the token using the shared
// secret, returning its expiry time if it has one.
func (auth *bearerAuthProvider) verify(token string) (*time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (interface{}, error) { return auth.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(auth.clock.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	if tkn == nil || !tkn.Valid {
		return nil, errors.New("failed to verify JWT: token is expired or invalid")
	}

	if claims.ExpiresAt == nil {
		return nil, nil
	}

	return &claims.ExpiresAt.Time, nil
}

// expiryOf reads the expiry claim of the token without verifying it.
func (auth *bearerAuthProvider) expiryOf(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}
