package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/auth"
	mocks "github.com/hbomb79/Marquee/internal/auth/mocks"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/internal/profile"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errExpected = errors.New("test: expected error")

func init() {
	logger.SetMinLoggingLevel(logger.VERBOSE.Level())
}

type harness struct {
	service  *auth.Service
	provider *mocks.MockIdentityProvider
	profiles *mocks.MockProfileStore
	resolver *mocks.MockProfileResolver
}

func newHarness(t *testing.T, config auth.Config) *harness {
	h := &harness{
		provider: mocks.NewMockIdentityProvider(t),
		profiles: mocks.NewMockProfileStore(t),
		resolver: mocks.NewMockProfileResolver(t),
	}
	h.service = auth.NewService(config, h.provider, h.profiles, h.resolver, "http://localhost:5173/")
	return h
}

func assertFault(t *testing.T, err error, kind fault.Kind, message string) {
	t.Helper()

	var fErr *fault.Error
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, kind, fErr.Kind)
	assert.Equal(t, message, fErr.Message)
}

func validSignup() auth.SignupRequest {
	return auth.SignupRequest{Email: "Ada@Example.com ", Token: "123456", Password: "s3cret!", FirstName: "Ada", LastName: "Lovelace", Phone: "+6421000000"}
}

func Test_SignupSendOTP(t *testing.T) {
	t.Run("Missing email", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		assertFault(t, h.service.SignupSendOTP(context.Background(), ""), fault.KindValidation, "Email is required")
		assertFault(t, h.service.SignupSendOTP(context.Background(), "not-an-email"), fault.KindValidation, "Email is required")
	})

	t.Run("Email already registered", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		h.profiles.EXPECT().GetProfileByEmail(mock.Anything, "ada@example.com").Return(&profile.Profile{}, nil).Once()

		err := h.service.SignupSendOTP(context.Background(), "ada@example.com")
		assertFault(t, err, fault.KindConflict, "Email already registered. Please login.")
	})

	t.Run("Sends OTP", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		h.profiles.EXPECT().GetProfileByEmail(mock.Anything, "ada@example.com").Return(nil, profile.ErrProfileNotFound).Once()
		h.provider.EXPECT().SendOTP(mock.Anything, "ada@example.com", true).Return(nil).Once()

		assert.NoError(t, h.service.SignupSendOTP(context.Background(), " ADA@example.com"))
	})

	t.Run("Provider failure", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		h.profiles.EXPECT().GetProfileByEmail(mock.Anything, mock.Anything).Return(nil, profile.ErrProfileNotFound).Once()
		h.provider.EXPECT().SendOTP(mock.Anything, mock.Anything, true).Return(errExpected).Once()

		err := h.service.SignupSendOTP(context.Background(), "ada@example.com")
		assert.True(t, fault.Is(err, fault.KindProvider))
	})
}

func Test_SignupSendOTP_Throttled(t *testing.T) {
	h := newHarness(t, auth.Config{OTPInterval: time.Hour, OTPBurst: 1})
	h.profiles.EXPECT().GetProfileByEmail(mock.Anything, mock.Anything).Return(nil, profile.ErrProfileNotFound)
	h.provider.EXPECT().SendOTP(mock.Anything, "ada@example.com", true).Return(nil).Once()
	h.provider.EXPECT().SendOTP(mock.Anything, "grace@example.com", true).Return(nil).Once()

	assert.NoError(t, h.service.SignupSendOTP(context.Background(), "ada@example.com"))
	err := h.service.SignupSendOTP(context.Background(), "ada@example.com")
	assertFault(t, err, fault.KindValidation, "Too many OTP requests, please wait")

	// Other addresses are unaffected
	assert.NoError(t, h.service.SignupSendOTP(context.Background(), "grace@example.com"))
}

func Test_SignupVerifyOTP_RequiresAllFields(t *testing.T) {
	mutations := map[string]func(*auth.SignupRequest){
		"email":     func(r *auth.SignupRequest) { r.Email = "" },
		"token":     func(r *auth.SignupRequest) { r.Token = "" },
		"password":  func(r *auth.SignupRequest) { r.Password = "" },
		"firstName": func(r *auth.SignupRequest) { r.FirstName = " " },
		"lastName":  func(r *auth.SignupRequest) { r.LastName = "" },
		"phone":     func(r *auth.SignupRequest) { r.Phone = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			h := newHarness(t, auth.Config{})
			req := validSignup()
			mutate(&req)

			_, err := h.service.SignupVerifyOTP(context.Background(), req)
			assertFault(t, err, fault.KindValidation, "All fields are required to complete signup")
		})
	}
}

func Test_SignupVerifyOTP_ReplayFailsAndProfileCreatedOnce(t *testing.T) {
	h := newHarness(t, auth.Config{})
	user := &identity.User{ID: uuid.New(), Email: "ada@example.com"}
	session := &identity.Session{AccessToken: "access", RefreshToken: "refresh", User: user}
	created := &profile.Profile{UserID: user.ID, Role: "viewer"}

	h.provider.EXPECT().VerifyOTP(mock.Anything, "ada@example.com", "123456", identity.OTPTypeEmail).Return(session, nil).Once()
	h.profiles.EXPECT().GetProfile(mock.Anything, user.ID).Return(nil, profile.ErrProfileNotFound).Once()
	h.provider.EXPECT().UpdateUser(mock.Anything, "access", identity.UserAttributes{Password: "s3cret!"}, "").Return(user, nil).Once()
	h.profiles.EXPECT().
		CreateProfile(mock.Anything, mock.MatchedBy(func(p *profile.Profile) bool {
			return p.UserID == user.ID && *p.Email == "ada@example.com" && *p.FirstName == "Ada" && *p.LastName == "Lovelace" && *p.Phone == "+6421000000"
		})).
		Return(created, nil).
		Once()

	result, err := h.service.SignupVerifyOTP(context.Background(), validSignup())
	require.NoError(t, err)
	assert.Equal(t, user, result.User)
	assert.Equal(t, session, result.Session)
	assert.Equal(t, created, result.Profile)

	// The OTP has been consumed, so the provider rejects the replay
	h.provider.EXPECT().
		VerifyOTP(mock.Anything, "ada@example.com", "123456", identity.OTPTypeEmail).
		Return(nil, &identity.Error{Status: 403, Code: "otp_expired", Message: "Token has expired or is invalid"}).
		Once()

	_, err = h.service.SignupVerifyOTP(context.Background(), validSignup())
	assertFault(t, err, fault.KindAuth, "Token has expired or is invalid")
}

func Test_SignupVerifyOTP_ExistingProfile(t *testing.T) {
	h := newHarness(t, auth.Config{})
	user := &identity.User{ID: uuid.New()}

	h.provider.EXPECT().VerifyOTP(mock.Anything, mock.Anything, mock.Anything, identity.OTPTypeEmail).Return(&identity.Session{AccessToken: "access", User: user}, nil).Once()
	h.profiles.EXPECT().GetProfile(mock.Anything, user.ID).Return(&profile.Profile{UserID: user.ID}, nil).Once()

	_, err := h.service.SignupVerifyOTP(context.Background(), validSignup())
	assertFault(t, err, fault.KindConflict, "User already registered. Please login.")
}

func Test_SignupVerifyOTP_MissingSession(t *testing.T) {
	h := newHarness(t, auth.Config{})
	h.provider.EXPECT().VerifyOTP(mock.Anything, mock.Anything, mock.Anything, identity.OTPTypeEmail).Return(&identity.Session{}, nil).Once()

	_, err := h.service.SignupVerifyOTP(context.Background(), validSignup())
	assertFault(t, err, fault.KindAuth, "OTP verification failed")
}

func Test_SignupVerifyOTP_ProfileCreationFailed(t *testing.T) {
	h := newHarness(t, auth.Config{})
	user := &identity.User{ID: uuid.New()}

	h.provider.EXPECT().VerifyOTP(mock.Anything, mock.Anything, mock.Anything, identity.OTPTypeEmail).Return(&identity.Session{AccessToken: "access", User: user}, nil).Once()
	h.profiles.EXPECT().GetProfile(mock.Anything, user.ID).Return(nil, profile.ErrProfileNotFound).Once()
	h.provider.EXPECT().UpdateUser(mock.Anything, "access", mock.Anything, "").Return(user, nil).Once()
	h.profiles.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return(nil, errExpected).Once()

	_, err := h.service.SignupVerifyOTP(context.Background(), validSignup())
	assertFault(t, err, fault.KindPersistence, "Profile creation failed")
}

func Test_Login(t *testing.T) {
	t.Run("Missing credentials", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		_, err := h.service.Login(context.Background(), "ada@example.com", "")
		assertFault(t, err, fault.KindValidation, "Email and password are required")
	})

	t.Run("Wrong password", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		h.provider.EXPECT().
			SignInWithPassword(mock.Anything, "ada@example.com", "wrong").
			Return(nil, &identity.Error{Status: 400, Code: "invalid_grant", Message: "Invalid login credentials"}).
			Once()

		result, err := h.service.Login(context.Background(), "ada@example.com", "wrong")
		assert.Nil(t, result)
		assertFault(t, err, fault.KindAuth, "Invalid credentials")
	})

	t.Run("Provider outage", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		h.provider.EXPECT().SignInWithPassword(mock.Anything, mock.Anything, mock.Anything).Return(nil, errExpected).Once()

		_, err := h.service.Login(context.Background(), "ada@example.com", "pw")
		assert.True(t, fault.Is(err, fault.KindProvider))
	})

	t.Run("Resolves profile", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		user := &identity.User{ID: uuid.New()}
		session := &identity.Session{AccessToken: "access", User: user}
		prof := &profile.Profile{UserID: user.ID}

		h.provider.EXPECT().SignInWithPassword(mock.Anything, "ada@example.com", "pw").Return(session, nil).Once()
		h.resolver.EXPECT().GetOrCreate(mock.Anything, user).Return(prof, nil).Once()

		result, err := h.service.Login(context.Background(), "Ada@Example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, &auth.Result{User: user, Session: session, Profile: prof}, result)
	})
}

func Test_ForgotPassword(t *testing.T) {
	t.Run("Send OTP redirects to reset page", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		h.provider.EXPECT().ResetPasswordForEmail(mock.Anything, "ada@example.com", "http://localhost:5173/resetpassword_page").Return(nil).Once()

		assert.NoError(t, h.service.ForgotPasswordSendOTP(context.Background(), "ada@example.com"))
	})

	t.Run("Send OTP requires email", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		assertFault(t, h.service.ForgotPasswordSendOTP(context.Background(), ""), fault.KindValidation, "Email is required")
	})

	t.Run("Verify requires email and token", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		_, err := h.service.ForgotPasswordVerifyOTP(context.Background(), "ada@example.com", "")
		assertFault(t, err, fault.KindValidation, "Email and OTP are required")
	})

	t.Run("Verify uses recovery type", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		session := &identity.Session{AccessToken: "recovery", User: &identity.User{ID: uuid.New()}}
		h.provider.EXPECT().VerifyOTP(mock.Anything, "ada@example.com", "654321", identity.OTPTypeRecovery).Return(session, nil).Once()

		result, err := h.service.ForgotPasswordVerifyOTP(context.Background(), "ada@example.com", "654321")
		require.NoError(t, err)
		assert.Equal(t, session, result.Session)
		assert.Nil(t, result.Profile)
	})

	t.Run("Reset requires password", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		assertFault(t, h.service.ResetPassword(context.Background(), "recovery", ""), fault.KindValidation, "New password is required")
	})

	t.Run("Reset updates password with recovery session", func(t *testing.T) {
		h := newHarness(t, auth.Config{})
		h.provider.EXPECT().UpdateUser(mock.Anything, "recovery", identity.UserAttributes{Password: "n3w"}, "").Return(&identity.User{}, nil).Once()

		assert.NoError(t, h.service.ResetPassword(context.Background(), "recovery", "n3w"))
	})
}

func Test_Refresh(t *testing.T) {
	h := newHarness(t, auth.Config{})
	_, err := h.service.Refresh(context.Background(), "")
	assertFault(t, err, fault.KindValidation, "Refresh token is required")

	h.provider.EXPECT().
		RefreshSession(mock.Anything, "stale").
		Return(nil, &identity.Error{Status: 400, Message: "Invalid Refresh Token: Already Used"}).
		Once()
	_, err = h.service.Refresh(context.Background(), "stale")
	assert.True(t, fault.Is(err, fault.KindAuth))
}

func Test_Logout(t *testing.T) {
	h := newHarness(t, auth.Config{})
	h.provider.EXPECT().Logout(mock.Anything, "access", identity.ScopeLocal).Return(nil).Once()
	assert.NoError(t, h.service.Logout(context.Background(), "access"))

	h.provider.EXPECT().Logout(mock.Anything, "revoked", identity.ScopeLocal).Return(&identity.Error{Status: 401}).Once()
	assert.NoError(t, h.service.Logout(context.Background(), "revoked"))
}

func Test_PruneLimiters(t *testing.T) {
	h := newHarness(t, auth.Config{OTPInterval: time.Millisecond, OTPBurst: 1})
	h.provider.EXPECT().ResetPasswordForEmail(mock.Anything, "ada@example.com", mock.Anything).Return(nil).Twice()

	assert.NoError(t, h.service.ForgotPasswordSendOTP(context.Background(), "ada@example.com"))
	time.Sleep(5 * time.Millisecond)
	h.service.PruneLimiters()
	assert.NoError(t, h.service.ForgotPasswordSendOTP(context.Background(), "ada@example.com"))
}
