package auth

import (
	"context"

	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/api/util"
	"github.com/hbomb79/Marquee/internal/auth"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/labstack/echo/v4"
)

var log = logger.Get("AuthController")

type (
	Service interface {
		SignupSendOTP(ctx context.Context, email string) error
		SignupVerifyOTP(ctx context.Context, req auth.SignupRequest) (*auth.Result, error)
		Login(ctx context.Context, email string, password string) (*auth.Result, error)
		ForgotPasswordSendOTP(ctx context.Context, email string) error
		ForgotPasswordVerifyOTP(ctx context.Context, email string, token string) (*auth.Result, error)
		ResetPassword(ctx context.Context, accessToken string, newPassword string) error
		Refresh(ctx context.Context, refreshToken string) (*auth.Result, error)
		Logout(ctx context.Context, accessToken string) error
	}

	AuthProvider interface {
		GetAuthenticatedUserFromContext(ec echo.Context) (*jwt.AuthenticatedUser, error)
		RevokeToken(token string)
	}

	emailRequest struct {
		Email string `json:"email"`
	}

	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	verifyRequest struct {
		Email string `json:"email"`
		Token string `json:"token"`
	}

	resetRequest struct {
		NewPassword string `json:"newPassword"`
	}

	refreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	AuthController struct {
		service      Service
		authProvider AuthProvider
	}
)

func New(service Service, authProvider AuthProvider) *AuthController {
	return &AuthController{service: service, authProvider: authProvider}
}

func (controller *AuthController) SetRoutes(eg *echo.Group) {
	eg.POST("/signup/send-otp", controller.SignupSendOTP)
	eg.POST("/signup/verify-otp", controller.SignupVerifyOTP)
	eg.POST("/login", controller.Login)
	eg.POST("/refresh", controller.Refresh)
	eg.POST("/forgot-password/send-otp", controller.ForgotPasswordSendOTP)
	eg.POST("/forgot-password/verify-otp", controller.ForgotPasswordVerifyOTP)
	eg.POST("/forgot-password/reset", controller.ResetPassword)
	eg.POST("/logout", controller.Logout)
}

func (controller *AuthController) SignupSendOTP(ec echo.Context) error {
	var body emailRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	if err := controller.service.SignupSendOTP(ec.Request().Context(), body.Email); err != nil {
		return err
	}

	return gen.Message(ec, "OTP sent to email")
}

// SignupVerifyOTP completes a signup using the OTP sent to the email. The
// response contains the new session and profile.
func (controller *AuthController) SignupVerifyOTP(ec echo.Context) error {
	var body auth.SignupRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	result, err := controller.service.SignupVerifyOTP(ec.Request().Context(), body)
	if err != nil {
		return err
	}

	return gen.Created(ec, "Signup successful", result)
}

func (controller *AuthController) Login(ec echo.Context) error {
	var body loginRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	result, err := controller.service.Login(ec.Request().Context(), body.Email, body.Password)
	if err != nil {
		log.Debugf("Login attempt failed: %v\n", err)
		return err
	}

	return gen.OK(ec, "Login successful", result)
}

func (controller *AuthController) Refresh(ec echo.Context) error {
	var body refreshRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	result, err := controller.service.Refresh(ec.Request().Context(), body.RefreshToken)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Session refreshed", result)
}

func (controller *AuthController) ForgotPasswordSendOTP(ec echo.Context) error {
	var body emailRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	if err := controller.service.ForgotPasswordSendOTP(ec.Request().Context(), body.Email); err != nil {
		return err
	}

	return gen.Message(ec, "Password reset OTP sent to email")
}

func (controller *AuthController) ForgotPasswordVerifyOTP(ec echo.Context) error {
	var body verifyRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	result, err := controller.service.ForgotPasswordVerifyOTP(ec.Request().Context(), body.Email, body.Token)
	if err != nil {
		return err
	}

	return gen.OK(ec, "OTP verified", result)
}

// ResetPassword sets a new password for the user of the recovery
// session which authenticated this request.
func (controller *AuthController) ResetPassword(ec echo.Context) error {
	user, err := controller.authProvider.GetAuthenticatedUserFromContext(ec)
	if err != nil {
		return fault.Auth("Unauthorized")
	}

	var body resetRequest
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	if err := controller.service.ResetPassword(ec.Request().Context(), user.Token, body.NewPassword); err != nil {
		return err
	}

	return gen.OK(ec, "Password updated", map[string]bool{"updated": true})
}

// Logout signs the session out with the identity provider, and revokes the
// token so it can not be used again even if the provider call failed.
func (controller *AuthController) Logout(ec echo.Context) error {
	user, err := controller.authProvider.GetAuthenticatedUserFromContext(ec)
	if err != nil {
		return fault.Auth("Unauthorized")
	}

	controller.authProvider.RevokeToken(user.Token)
	if err := controller.service.Logout(ec.Request().Context(), user.Token); err != nil {
		return err
	}

	return gen.Message(ec, "Logged out")
}
