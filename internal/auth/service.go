package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/internal/profile"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/hbomb79/Marquee/pkg/sync"
	"golang.org/x/time/rate"
)

const resetPasswordPage = "/resetpassword_page"

var log = logger.Get("Auth")

type (
	Config struct {
		OTPInterval time.Duration `yaml:"otp_interval" env:"OTP_RATE_INTERVAL" env-default:"60s"`
		OTPBurst    int           `yaml:"otp_burst" env:"OTP_RATE_BURST" env-default:"1"`
	}

	IdentityProvider interface {
		SendOTP(ctx context.Context, email string, createUser bool) error
		VerifyOTP(ctx context.Context, email string, token string, otpType identity.OTPType) (*identity.Session, error)
		SignInWithPassword(ctx context.Context, email string, password string) (*identity.Session, error)
		RefreshSession(ctx context.Context, refreshToken string) (*identity.Session, error)
		UpdateUser(ctx context.Context, accessToken string, attrs identity.UserAttributes, redirectTo string) (*identity.User, error)
		ResetPasswordForEmail(ctx context.Context, email string, redirectTo string) error
		Logout(ctx context.Context, accessToken string, scope identity.LogoutScope) error
	}

	ProfileStore interface {
		GetProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
		GetProfileByEmail(ctx context.Context, email string) (*profile.Profile, error)
		CreateProfile(ctx context.Context, profile *profile.Profile) (*profile.Profile, error)
	}

	ProfileResolver interface {
		GetOrCreate(ctx context.Context, user *identity.User) (*profile.Profile, error)
	}

	// SignupRequest holds the details required to complete a signup once
	// the OTP sent to the email has been received.
	SignupRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Token     string `json:"token" validate:"required"`
		Password  string `json:"password" validate:"required"`
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Phone     string `json:"phone" validate:"required"`
	}

	Result struct {
		User    *identity.User    `json:"user"`
		Session *identity.Session `json:"session"`
		Profile *profile.Profile  `json:"profile,omitempty"`
	}

	Service struct {
		config      Config
		identity    IdentityProvider
		profiles    ProfileStore
		resolver    ProfileResolver
		frontendURL string
		validate    *validator.Validate
		limiters    *sync.TypedSyncMap[string, *rate.Limiter]
	}
)

func NewService(config Config, identity IdentityProvider, profiles ProfileStore, resolver ProfileResolver, frontendURL string) *Service {
	return &Service{
		config:      config,
		identity:    identity,
		profiles:    profiles,
		resolver:    resolver,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		validate:    validator.New(),
		limiters:    &sync.TypedSyncMap[string, *rate.Limiter]{},
	}
}

// SignupSendOTP sends a signup OTP to the email provided, so long as
// no profile already exists for it.
func (service *Service) SignupSendOTP(ctx context.Context, email string) error {
	email = normaliseEmail(email)
	if !service.isEmail(email) {
		return fault.Validation("Email is required")
	}

	if _, err := service.profiles.GetProfileByEmail(ctx, email); err == nil {
		return fault.Conflict("Email already registered. Please login.")
	} else if !errors.Is(err, profile.ErrProfileNotFound) {
		return fault.Persistence("Failed to check existing profile", err)
	}

	if err := service.throttle("signup", email); err != nil {
		return err
	}

	if err := service.identity.SendOTP(ctx, email, true); err != nil {
		return fault.Provider(identity.MessageOf(err, "Failed to send OTP"), err)
	}

	log.Infof("Signup OTP dispatched\n")
	return nil
}

// SignupVerifyOTP verifies the signup OTP, sets the users password and creates
// their profile. The OTP is single-use, and so replaying a request fails
// either at the provider or because the profile now exists.
func (service *Service) SignupVerifyOTP(ctx context.Context, req SignupRequest) (*Result, error) {
	req.Email = normaliseEmail(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := service.validate.Struct(req); err != nil {
		return nil, fault.Validation("All fields are required to complete signup")
	}

	session, err := service.identity.VerifyOTP(ctx, req.Email, req.Token, identity.OTPTypeEmail)
	if err != nil {
		return nil, verifyFault(err)
	}
	if session == nil || session.User == nil || session.AccessToken == "" {
		return nil, fault.Auth("OTP verification failed")
	}

	user := session.User
	if _, err := service.profiles.GetProfile(ctx, user.ID); err == nil {
		return nil, fault.Conflict("User already registered. Please login.")
	} else if !errors.Is(err, profile.ErrProfileNotFound) {
		return nil, fault.Persistence("Failed to check existing profile", err)
	}

	if _, err := service.identity.UpdateUser(ctx, session.AccessToken, identity.UserAttributes{Password: req.Password}, ""); err != nil {
		return nil, fault.Provider(identity.MessageOf(err, "Failed to set password"), err)
	}

	created, err := service.profiles.CreateProfile(ctx, &profile.Profile{
		UserID:    user.ID,
		Email:     &req.Email,
		FirstName: &req.FirstName,
		LastName:  &req.LastName,
		Phone:     &req.Phone,
	})
	if errors.Is(err, profile.ErrProfileExists) {
		return nil, fault.Conflict("User already registered. Please login.")
	} else if err != nil {
		return nil, fault.Persistence("Profile creation failed", err)
	}

	log.Emit(logger.NEW, "Signup completed for user %s\n", user.ID)
	return &Result{User: user, Session: session, Profile: created}, nil
}

// Login signs the user in using their email and password. A user who
// has no profile (e.g. signed up via a social provider) has one created.
func (service *Service) Login(ctx context.Context, email string, password string) (*Result, error) {
	email = normaliseEmail(email)
	if email == "" || password == "" {
		return nil, fault.Validation("Email and password are required")
	}

	session, err := service.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		if identity.IsClientError(err) {
			return nil, fault.AuthCause("Invalid credentials", err)
		}
		return nil, fault.Provider("Identity provider unavailable", err)
	}
	if session == nil || session.User == nil {
		return nil, fault.Auth("Invalid credentials")
	}

	prof, err := service.resolver.GetOrCreate(ctx, session.User)
	if err != nil {
		return nil, err
	}

	return &Result{User: session.User, Session: session, Profile: prof}, nil
}

// ForgotPasswordSendOTP sends a recovery OTP (and link) to the
// email provided.
func (service *Service) ForgotPasswordSendOTP(ctx context.Context, email string) error {
	email = normaliseEmail(email)
	if !service.isEmail(email) {
		return fault.Validation("Email is required")
	}

	if err := service.throttle("recovery", email); err != nil {
		return err
	}

	if err := service.identity.ResetPasswordForEmail(ctx, email, service.frontendURL+resetPasswordPage); err != nil {
		return fault.Provider(identity.MessageOf(err, "Failed to send password reset OTP"), err)
	}

	return nil
}

func (service *Service) ForgotPasswordVerifyOTP(ctx context.Context, email string, token string) (*Result, error) {
	email = normaliseEmail(email)
	if email == "" || token == "" {
		return nil, fault.Validation("Email and OTP are required")
	}

	session, err := service.identity.VerifyOTP(ctx, email, token, identity.OTPTypeRecovery)
	if err != nil {
		return nil, verifyFault(err)
	}
	if session == nil || session.User == nil {
		return nil, fault.Auth("OTP verification failed")
	}

	return &Result{User: session.User, Session: session}, nil
}

// ResetPassword sets the password for the user owning the access token,
// which is the recovery session returned by ForgotPasswordVerifyOTP.
func (service *Service) ResetPassword(ctx context.Context, accessToken string, newPassword string) error {
	if newPassword == "" {
		return fault.Validation("New password is required")
	}

	if _, err := service.identity.UpdateUser(ctx, accessToken, identity.UserAttributes{Password: newPassword}, ""); err != nil {
		return fault.Provider(identity.MessageOf(err, "Failed to update password"), err)
	}

	return nil
}

func (service *Service) Refresh(ctx context.Context, refreshToken string) (*Result, error) {
	if refreshToken == "" {
		return nil, fault.Validation("Refresh token is required")
	}

	session, err := service.identity.RefreshSession(ctx, refreshToken)
	if err != nil {
		if identity.IsClientError(err) {
			return nil, fault.AuthCause(identity.MessageOf(err, "Invalid refresh token"), err)
		}
		return nil, fault.Provider("Identity provider unavailable", err)
	}

	return &Result{User: session.User, Session: session}, nil
}

// Logout revokes the session owning the access token.
func (service *Service) Logout(ctx context.Context, accessToken string) error {
	if err := service.identity.Logout(ctx, accessToken, identity.ScopeLocal); err != nil {
		// An already revoked session is as good as logged out
		if identity.IsClientError(err) {
			log.Debugf("Provider rejected logout, treating session as revoked: %v\n", err)
			return nil
		}
		return fault.Provider("Failed to logout", err)
	}

	return nil
}

// throttle enforces the OTP send rate for an email address. The limiters for
// each purpose are independent.
func (service *Service) throttle(purpose string, email string) error {
	limiter, _ := service.limiters.LoadOrStore(purpose+":"+email, rate.NewLimiter(rate.Every(service.config.OTPInterval), service.config.OTPBurst))
	if !limiter.Allow() {
		return fault.Validation("Too many OTP requests, please wait")
	}

	return nil
}

// PruneLimiters drops limiters which are full, as they are
// indistinguishable from a fresh limiter.
func (service *Service) PruneLimiters() {
	now := time.Now()
	service.limiters.Range(func(key string, limiter *rate.Limiter) bool {
		if limiter.TokensAt(now) >= float64(limiter.Burst()) {
			service.limiters.Delete(key)
		}
		return true
	})
}

func (service *Service) isEmail(email string) bool {
	return email != "" && service.validate.Var(email, "email") == nil
}

func verifyFault(err error) error {
	if identity.IsClientError(err) {
		return fault.AuthCause(identity.MessageOf(err, "OTP verification failed"), err)
	}

	return fault.Provider("Identity provider unavailable", err)
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
