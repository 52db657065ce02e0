package jwt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/api/jwt/mocks"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var secret = []byte("super-secret-jwt-token-with-at-least-32-characters")

func signToken(t *testing.T, key []byte, expiresAt time.Time) string {
	t.Helper()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: gojwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func Test_Authenticate_CachesUntilTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	provider := mocks.NewMockIdentityProvider(t)
	auth := jwt.NewBearerAuth(provider, nil, 30*time.Second, clock)

	token := signToken(t, secret, clock.Now().Add(time.Hour))
	user := &identity.User{ID: uuid.New()}
	provider.EXPECT().GetUser(mock.Anything, token).Return(user, nil).Twice()

	for range 3 {
		got, err := auth.Authenticate(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	}

	clock.Advance(31 * time.Second)
	_, err := auth.Authenticate(context.Background(), token)
	require.NoError(t, err)
}

func Test_Authenticate_CacheBoundedByTokenExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	provider := mocks.NewMockIdentityProvider(t)
	auth := jwt.NewBearerAuth(provider, nil, time.Hour, clock)

	token := signToken(t, secret, clock.Now().Add(10*time.Second))
	provider.EXPECT().GetUser(mock.Anything, token).Return(&identity.User{ID: uuid.New()}, nil).Twice()

	_, err := auth.Authenticate(context.Background(), token)
	require.NoError(t, err)

	clock.Advance(11 * time.Second)
	_, err = auth.Authenticate(context.Background(), token)
	require.NoError(t, err, "provider is consulted again once the token expiry passes")
}

func Test_Authenticate_LocalVerification(t *testing.T) {
	clock := clockwork.NewFakeClock()
	provider := mocks.NewMockIdentityProvider(t)
	auth := jwt.NewBearerAuth(provider, secret, time.Minute, clock)

	tests := []struct {
		summary string
		token   string
	}{
		{"expired", signToken(t, secret, clock.Now().Add(-time.Minute))},
		{"forged", signToken(t, []byte("some-other-secret-which-is-also-long-enough"), clock.Now().Add(time.Hour))},
		{"garbage", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			_, err := auth.Authenticate(context.Background(), tt.token)
			assert.Error(t, err)
		})
	}

	// No expectations were set on the provider, so any call would fail the test
	provider.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func Test_Authenticate_ProviderRejection(t *testing.T) {
	clock := clockwork.NewFakeClock()
	provider := mocks.NewMockIdentityProvider(t)
	auth := jwt.NewBearerAuth(provider, secret, time.Minute, clock)

	token := signToken(t, secret, clock.Now().Add(time.Hour))
	provider.EXPECT().GetUser(mock.Anything, token).Return(nil, &identity.Error{Status: http.StatusUnauthorized, Message: "invalid JWT"}).Twice()

	_, err := auth.Authenticate(context.Background(), token)
	assert.Error(t, err)

	// Failures are not cached
	_, err = auth.Authenticate(context.Background(), token)
	assert.Error(t, err)
}

func Test_RevokeToken(t *testing.T) {
	clock := clockwork.NewFakeClock()
	provider := mocks.NewMockIdentityProvider(t)
	auth := jwt.NewBearerAuth(provider, secret, time.Minute, clock)

	token := signToken(t, secret, clock.Now().Add(time.Hour))
	provider.EXPECT().GetUser(mock.Anything, token).Return(&identity.User{ID: uuid.New()}, nil).Once()

	_, err := auth.Authenticate(context.Background(), token)
	require.NoError(t, err)

	auth.RevokeToken(token)
	_, err = auth.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenRevoked)
}

func Test_TokenFromRequest(t *testing.T) {
	tests := []struct {
		summary  string
		header   string
		target   string
		expected string
	}{
		{"bearer header", "Bearer abc", "/", "abc"},
		{"case insensitive scheme", "bearer abc", "/", "abc"},
		{"other scheme", "Basic abc", "/?token=query", ""},
		{"query fallback", "", "/?token=query", "query"},
		{"missing", "", "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.expected, jwt.TokenFromRequest(req))
		})
	}
}
