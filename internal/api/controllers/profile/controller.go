package profile

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/hbomb79/Marquee/internal/api/jwt"
	"github.com/hbomb79/Marquee/internal/api/util"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/internal/profile"
	"github.com/labstack/echo/v4"
)

type (
	Service interface {
		GetOrCreate(ctx context.Context, user *identity.User) (*profile.Profile, error)
		Update(ctx context.Context, userID uuid.UUID, payload map[string]any) (*profile.Profile, error)
		RequestEmailChange(ctx context.Context, accessToken string, email string) error
		SyncEmail(ctx context.Context, accessToken string) (*identity.User, *profile.Profile, error)
		UpdatePhone(ctx context.Context, userID uuid.UUID, phone string) (*profile.Profile, error)
		ChangePassword(ctx context.Context, userID uuid.UUID, accessToken string, newPassword string, logoutOthers bool) error
	}

	AuthProvider interface {
		GetAuthenticatedUserFromContext(ec echo.Context) (*jwt.AuthenticatedUser, error)
	}

	userProfile struct {
		User    *identity.User   `json:"user"`
		Profile *profile.Profile `json:"profile"`
	}

	ProfileController struct {
		service      Service
		authProvider AuthProvider
	}
)

func New(service Service, authProvider AuthProvider) *ProfileController {
	return &ProfileController{service: service, authProvider: authProvider}
}

func (controller *ProfileController) SetRoutes(eg *echo.Group) {
	eg.GET("/me", controller.GetCurrent)
	eg.POST("/ensure", controller.GetCurrent)
	eg.PATCH("/update", controller.Update)
	eg.POST("/email/request", controller.RequestEmailChange)
	eg.POST("/sync-email", controller.SyncEmail)
	eg.PATCH("/phone", controller.UpdatePhone)
	eg.POST("/password/change", controller.ChangePassword)
}

// GetCurrent returns the authenticated user and their profile, creating
// the profile on first use.
func (controller *ProfileController) GetCurrent(ec echo.Context) error {
	user, err := controller.user(ec)
	if err != nil {
		return err
	}

	p, err := controller.service.GetOrCreate(ec.Request().Context(), user.User)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Profile fetched", userProfile{User: user.User, Profile: p})
}

func (controller *ProfileController) Update(ec echo.Context) error {
	user, err := controller.user(ec)
	if err != nil {
		return err
	}

	var payload map[string]any
	if err := util.BindBody(ec, &payload); err != nil {
		return err
	}

	p, err := controller.service.Update(ec.Request().Context(), user.ID, payload)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Profile updated", p)
}

func (controller *ProfileController) RequestEmailChange(ec echo.Context) error {
	user, err := controller.user(ec)
	if err != nil {
		return err
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	if err := controller.service.RequestEmailChange(ec.Request().Context(), user.Token, body.Email); err != nil {
		return err
	}

	return gen.Message(ec, "Confirmation email sent")
}

func (controller *ProfileController) SyncEmail(ec echo.Context) error {
	user, err := controller.user(ec)
	if err != nil {
		return err
	}

	u, p, err := controller.service.SyncEmail(ec.Request().Context(), user.Token)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Email updated", userProfile{User: u, Profile: p})
}

func (controller *ProfileController) UpdatePhone(ec echo.Context) error {
	user, err := controller.user(ec)
	if err != nil {
		return err
	}

	var body struct {
		Phone string `json:"phone"`
	}
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	p, err := controller.service.UpdatePhone(ec.Request().Context(), user.ID, body.Phone)
	if err != nil {
		return err
	}

	return gen.OK(ec, "Phone updated", p)
}

func (controller *ProfileController) ChangePassword(ec echo.Context) error {
	user, err := controller.user(ec)
	if err != nil {
		return err
	}

	var body struct {
		NewPassword  string `json:"newPassword"`
		LogoutOthers *bool  `json:"logoutOthers"`
	}
	if err := util.BindBody(ec, &body); err != nil {
		return err
	}

	logoutOthers := util.NotNilOrDefault(body.LogoutOthers, false)
	if err := controller.service.ChangePassword(ec.Request().Context(), user.ID, user.Token, body.NewPassword, logoutOthers); err != nil {
		return err
	}

	return gen.OK(ec, "Password updated", map[string]bool{"updated": true, "loggedOutOthers": logoutOthers})
}

func (controller *ProfileController) user(ec echo.Context) (*jwt.AuthenticatedUser, error) {
	user, err := controller.authProvider.GetAuthenticatedUserFromContext(ec)
	if err != nil {
		return nil, fault.Auth("Unauthorized")
	}

	return user, nil
}
