package profile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/mitchellh/mapstructure"
)

var log = logger.Get("Profile")

type (
	// DataStore is the persistence the profile service needs. It is implemented
	// by the data orchestrator which binds the profile store to a database.
	DataStore interface {
		GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
		GetProfileByEmail(ctx context.Context, email string) (*Profile, error)
		CreateProfile(ctx context.Context, profile *Profile) (*Profile, error)
		UpdateProfile(ctx context.Context, userID uuid.UUID, fields map[string]any) (*Profile, error)
	}

	IdentityProvider interface {
		GetUser(ctx context.Context, accessToken string) (*identity.User, error)
		UpdateUser(ctx context.Context, accessToken string, attrs identity.UserAttributes, redirectTo string) (*identity.User, error)
		AdminUpdateUserByID(ctx context.Context, userID uuid.UUID, attrs identity.UserAttributes) (*identity.User, error)
		Logout(ctx context.Context, accessToken string, scope identity.LogoutScope) error
	}

	// Update is the allow-list of profile fields which a user may change
	// directly. Keys not present here are rejected.
	Update struct {
		FirstName   *string `mapstructure:"first_name" validate:"omitempty,max=100"`
		LastName    *string `mapstructure:"last_name" validate:"omitempty,max=100"`
		Phone       *string `mapstructure:"phone" validate:"omitempty,max=32"`
		ChannelName *string `mapstructure:"channel_name" validate:"omitempty,max=100"`
		Bio         *string `mapstructure:"bio" validate:"omitempty,max=2000"`
		AvatarURL   *string `mapstructure:"avatar_url" validate:"omitempty,url"`
	}

	Service struct {
		store       DataStore
		identity    IdentityProvider
		frontendURL string
		validate    *validator.Validate
	}
)

func NewService(store DataStore, identity IdentityProvider, frontendURL string) *Service {
	return &Service{
		store:       store,
		identity:    identity,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		validate:    validator.New(),
	}
}

// NamesFromMetadata extracts a first and last name from the identity user metadata. The
// explicit given_name/family_name pair is preferred, otherwise full_name is split
// at the first space.
func NamesFromMetadata(user *identity.User) (string, string) {
	first := strings.TrimSpace(user.MetadataString("given_name"))
	last := strings.TrimSpace(user.MetadataString("family_name"))
	if first != "" || last != "" {
		return first, last
	}

	parts := strings.Fields(user.MetadataString("full_name"))
	if len(parts) == 0 {
		return "", ""
	}

	return parts[0], strings.Join(parts[1:], " ")
}

// GetOrCreate returns the profile for the user, creating it if it does not
// yet exist. Profiles which are missing a first name are patched using the
// names found in the user metadata.
func (service *Service) GetOrCreate(ctx context.Context, user *identity.User) (*Profile, error) {
	first, last := NamesFromMetadata(user)

	profile, err := service.store.GetProfile(ctx, user.ID)
	if errors.Is(err, ErrProfileNotFound) {
		profile, err = service.create(ctx, user, first, last)
	}
	if err != nil {
		return nil, err
	}

	if isBlank(profile.FirstName) && first != "" {
		fields := map[string]any{"first_name": first}
		if isBlank(profile.LastName) && last != "" {
			fields["last_name"] = last
		}

		log.Debugf("Patching missing names for profile %s\n", user.ID)
		patched, err := service.store.UpdateProfile(ctx, user.ID, fields)
		if err != nil {
			return nil, fault.Persistence("Failed to update profile", err)
		}

		return patched, nil
	}

	return profile, nil
}

func (service *Service) create(ctx context.Context, user *identity.User, first string, last string) (*Profile, error) {
	profile := &Profile{UserID: user.ID, Email: nilIfEmpty(user.Email), FirstName: nilIfEmpty(first), LastName: nilIfEmpty(last)}
	created, err := service.store.CreateProfile(ctx, profile)
	if err == nil {
		log.Emit(logger.NEW, "Created profile for user %s\n", user.ID)
		return created, nil
	}

	if !errors.Is(err, ErrProfileExists) {
		return nil, fault.Persistence("Profile creation failed", err)
	}

	// Lost a race with a concurrent fetch, or the email is claimed by another profile.
	existing, err := service.store.GetProfile(ctx, user.ID)
	if errors.Is(err, ErrProfileNotFound) {
		return nil, fault.Conflict("Email already registered. Please login.")
	} else if err != nil {
		return nil, fault.Persistence("Failed to fetch profile", err)
	}

	return existing, nil
}

// Update applies a partial update to the users profile. Only the keys
// in the Update allow-list are accepted.
func (service *Service) Update(ctx context.Context, userID uuid.UUID, payload map[string]any) (*Profile, error) {
	if len(payload) == 0 {
		return nil, fault.Validation("No updatable fields provided")
	}

	fields, err := service.decodeUpdate(payload)
	if err != nil {
		return nil, err
	}

	profile, err := service.store.UpdateProfile(ctx, userID, fields)
	if errors.Is(err, ErrProfileNotFound) {
		return nil, fault.NotFound("Profile not found")
	} else if err != nil {
		return nil, fault.Persistence("Failed to update profile", err)
	}

	return profile, nil
}

// decodeUpdate converts the untyped payload to column/value pairs, rejecting
// keys outside of the allow-list and values of the wrong type.
func (service *Service) decodeUpdate(payload map[string]any) (map[string]any, error) {
	var (
		update Update
		meta   mapstructure.Metadata
	)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &update, Metadata: &meta})
	if err != nil {
		return nil, fmt.Errorf("failed to construct profile update decoder: %w", err)
	}

	if err := decoder.Decode(payload); err != nil {
		return nil, fault.Validation("Profile fields must be strings")
	}
	if len(meta.Unused) > 0 {
		sort.Strings(meta.Unused)
		return nil, fault.Validation("Unsupported profile fields: " + strings.Join(meta.Unused, ", "))
	}
	if err := service.validate.Struct(update); err != nil {
		return nil, fault.Validation(fmt.Sprintf("Invalid profile fields: %s", validationFields(err)))
	}

	values := map[string]*string{
		"first_name":   update.FirstName,
		"last_name":    update.LastName,
		"phone":        update.Phone,
		"channel_name": update.ChannelName,
		"bio":          update.Bio,
		"avatar_url":   update.AvatarURL,
	}

	fields := make(map[string]any, len(payload))
	for column, value := range values {
		if value != nil {
			fields[column] = nilIfEmpty(strings.TrimSpace(*value))
		}
	}

	// Keys are matched case-insensitively by the decoder, so explicit nulls
	// are resolved to their column the same way rather than trusting the key.
	for key, value := range payload {
		if value != nil {
			continue
		}
		for column := range values {
			if strings.EqualFold(key, column) {
				fields[column] = nil
				break
			}
		}
	}

	if len(fields) == 0 {
		return nil, fault.Validation("No updatable fields provided")
	}

	return fields, nil
}

// RequestEmailChange asks the identity provider to begin an email change for
// the user owning the access token. The user must confirm via the email sent
// before the change takes effect.
func (service *Service) RequestEmailChange(ctx context.Context, accessToken string, email string) error {
	email = strings.TrimSpace(email)
	if email == "" || service.validate.Var(email, "email") != nil {
		return fault.Validation("Email is required")
	}

	if _, err := service.identity.UpdateUser(ctx, accessToken, identity.UserAttributes{Email: email}, service.frontendURL); err != nil {
		return fault.Provider(identity.MessageOf(err, "Failed to request email change"), err)
	}

	return nil
}

// SyncEmail copies the identity providers current email on to the profile, used
// once a user has confirmed an email change.
func (service *Service) SyncEmail(ctx context.Context, accessToken string) (*identity.User, *Profile, error) {
	user, err := service.identity.GetUser(ctx, accessToken)
	if err != nil {
		return nil, nil, fault.Provider(identity.MessageOf(err, "Failed to fetch user"), err)
	}

	if _, err := service.GetOrCreate(ctx, user); err != nil {
		return nil, nil, err
	}

	profile, err := service.store.UpdateProfile(ctx, user.ID, map[string]any{"email": nilIfEmpty(user.Email)})
	if err != nil {
		return nil, nil, fault.Persistence("Failed to update profile", err)
	}

	return user, profile, nil
}

func (service *Service) UpdatePhone(ctx context.Context, userID uuid.UUID, phone string) (*Profile, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fault.Validation("Phone is required")
	}

	profile, err := service.store.UpdateProfile(ctx, userID, map[string]any{"phone": phone})
	if errors.Is(err, ErrProfileNotFound) {
		return nil, fault.NotFound("Profile not found")
	} else if err != nil {
		return nil, fault.Persistence("Failed to update phone", err)
	}

	return profile, nil
}

// ChangePassword sets a new password for the user. When logoutOthers is true every
// other session belonging to the user is revoked, leaving the callers session intact.
func (service *Service) ChangePassword(ctx context.Context, userID uuid.UUID, accessToken string, newPassword string, logoutOthers bool) error {
	if newPassword == "" {
		return fault.Validation("New password required")
	}

	if _, err := service.identity.AdminUpdateUserByID(ctx, userID, identity.UserAttributes{Password: newPassword}); err != nil {
		if identity.IsClientError(err) {
			return fault.Validation(identity.MessageOf(err, "Failed to change password"))
		}
		return fault.Provider("Failed to change password", err)
	}

	if logoutOthers {
		if err := service.identity.Logout(ctx, accessToken, identity.ScopeOthers); err != nil {
			return fault.Provider("Password changed, but failed to sign out other sessions", err)
		}
	}

	return nil
}

func validationFields(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	names := make([]string, 0, len(verrs))
	for _, v := range verrs {
		names = append(names, v.Field())
	}

	return strings.Join(names, ", ")
}

func isBlank(s *string) bool { return s == nil || strings.TrimSpace(*s) == "" }

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
