package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/internal/profile"
	mocks "github.com/hbomb79/Marquee/internal/profile/mocks"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errExpected = errors.New("test: expected error")

func init() {
	logger.SetMinLoggingLevel(logger.VERBOSE.Level())
}

func strPtr(s string) *string { return &s }

func newService(t *testing.T) (*profile.Service, *mocks.MockDataStore, *mocks.MockIdentityProvider) {
	store := mocks.NewMockDataStore(t)
	provider := mocks.NewMockIdentityProvider(t)
	return profile.NewService(store, provider, "http://localhost:5173/"), store, provider
}

func Test_NamesFromMetadata(t *testing.T) {
	tests := []struct {
		summary   string
		metadata  map[string]any
		wantFirst string
		wantLast  string
	}{
		{"given and family names", map[string]any{"given_name": "Ada", "family_name": "Lovelace", "full_name": "Ignored Name"}, "Ada", "Lovelace"},
		{"full name split at first space", map[string]any{"full_name": "Grace Brewster Hopper"}, "Grace", "Brewster Hopper"},
		{"single word full name", map[string]any{"full_name": "Cher"}, "Cher", ""},
		{"only given name", map[string]any{"given_name": "Alan"}, "Alan", ""},
		{"no metadata", nil, "", ""},
		{"non-string metadata", map[string]any{"full_name": 42}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			first, last := profile.NamesFromMetadata(&identity.User{UserMetadata: tt.metadata})
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func Test_GetOrCreate_CreatesOnceWithMetadataNames(t *testing.T) {
	service, store, _ := newService(t)
	user := &identity.User{ID: uuid.New(), Email: "ada@example.com", UserMetadata: map[string]any{"full_name": "Ada Lovelace"}}
	created := &profile.Profile{UserID: user.ID, Email: strPtr(user.Email), FirstName: strPtr("Ada"), LastName: strPtr("Lovelace"), Role: "viewer"}

	store.EXPECT().GetProfile(mock.Anything, user.ID).Return(nil, profile.ErrProfileNotFound).Once()
	store.EXPECT().
		CreateProfile(mock.Anything, mock.MatchedBy(func(p *profile.Profile) bool {
			return p.UserID == user.ID && *p.Email == "ada@example.com" && *p.FirstName == "Ada" && *p.LastName == "Lovelace"
		})).
		Return(created, nil).
		Once()

	first, err := service.GetOrCreate(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, created, first)

	// Second fetch must find the existing row and perform no insert
	store.EXPECT().GetProfile(mock.Anything, user.ID).Return(created, nil).Once()
	second, err := service.GetOrCreate(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, created, second)
}

func Test_GetOrCreate_LostRaceReturnsExisting(t *testing.T) {
	service, store, _ := newService(t)
	user := &identity.User{ID: uuid.New(), Email: "a@b.com"}
	existing := &profile.Profile{UserID: user.ID, Email: strPtr("a@b.com"), Role: "viewer"}

	store.EXPECT().GetProfile(mock.Anything, user.ID).Return(nil, profile.ErrProfileNotFound).Once()
	store.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return(nil, profile.ErrProfileExists).Once()
	store.EXPECT().GetProfile(mock.Anything, user.ID).Return(existing, nil).Once()

	got, err := service.GetOrCreate(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func Test_GetOrCreate_EmailClaimedByAnotherProfile(t *testing.T) {
	service, store, _ := newService(t)
	user := &identity.User{ID: uuid.New(), Email: "a@b.com"}

	store.EXPECT().GetProfile(mock.Anything, user.ID).Return(nil, profile.ErrProfileNotFound).Twice()
	store.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return(nil, profile.ErrProfileExists).Once()

	_, err := service.GetOrCreate(context.Background(), user)
	assert.True(t, fault.Is(err, fault.KindConflict))
}

func Test_GetOrCreate_PatchesMissingNames(t *testing.T) {
	tests := []struct {
		summary    string
		existing   *profile.Profile
		wantFields map[string]any
	}{
		{
			summary:    "first and last missing",
			existing:   &profile.Profile{},
			wantFields: map[string]any{"first_name": "Ada", "last_name": "Lovelace"},
		},
		{
			summary:    "last name already present",
			existing:   &profile.Profile{FirstName: strPtr("  "), LastName: strPtr("King")},
			wantFields: map[string]any{"first_name": "Ada"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			service, store, _ := newService(t)
			user := &identity.User{ID: uuid.New(), UserMetadata: map[string]any{"given_name": "Ada", "family_name": "Lovelace"}}
			patched := &profile.Profile{UserID: user.ID, FirstName: strPtr("Ada")}

			store.EXPECT().GetProfile(mock.Anything, user.ID).Return(tt.existing, nil).Once()
			store.EXPECT().UpdateProfile(mock.Anything, user.ID, tt.wantFields).Return(patched, nil).Once()

			got, err := service.GetOrCreate(context.Background(), user)
			require.NoError(t, err)
			assert.Equal(t, patched, got)
		})
	}
}

func Test_GetOrCreate_CreateFailure(t *testing.T) {
	service, store, _ := newService(t)
	user := &identity.User{ID: uuid.New()}

	store.EXPECT().GetProfile(mock.Anything, user.ID).Return(nil, profile.ErrProfileNotFound).Once()
	store.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return(nil, errExpected).Once()

	_, err := service.GetOrCreate(context.Background(), user)
	assert.True(t, fault.Is(err, fault.KindPersistence))
	assert.ErrorIs(t, err, errExpected)
}

func Test_Update_Validation(t *testing.T) {
	tests := []struct {
		summary string
		payload map[string]any
		message string
	}{
		{"empty payload", map[string]any{}, "No updatable fields provided"},
		{"forbidden keys", map[string]any{"role": "admin", "email": "x@y.com", "bio": "hi"}, "Unsupported profile fields: email, role"},
		{"wrong type", map[string]any{"first_name": 42}, "Profile fields must be strings"},
		{"invalid url", map[string]any{"avatar_url": "not a url"}, "Invalid profile fields: AvatarURL"},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			service, _, _ := newService(t)

			_, err := service.Update(context.Background(), uuid.New(), tt.payload)
			var fErr *fault.Error
			require.ErrorAs(t, err, &fErr)
			assert.Equal(t, fault.KindValidation, fErr.Kind)
			assert.Equal(t, tt.message, fErr.Message)
		})
	}
}

func Test_Update_AppliesAllowedFields(t *testing.T) {
	service, store, _ := newService(t)
	userID := uuid.New()
	updated := &profile.Profile{UserID: userID, ChannelName: strPtr("Ada's Channel")}

	store.EXPECT().
		UpdateProfile(mock.Anything, userID, map[string]any{"channel_name": strPtr("Ada's Channel"), "bio": nil}).
		Return(updated, nil).
		Once()

	got, err := service.Update(context.Background(), userID, map[string]any{"channel_name": " Ada's Channel ", "bio": nil})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func Test_Update_NullsUseCanonicalColumns(t *testing.T) {
	service, store, _ := newService(t)
	userID := uuid.New()

	store.EXPECT().
		UpdateProfile(mock.Anything, userID, map[string]any{"first_name": nil, "bio": nil}).
		Return(&profile.Profile{UserID: userID}, nil).
		Once()

	// U+017F folds to 's', so the decoder accepts it as first_name
	_, err := service.Update(context.Background(), userID, map[string]any{"firſt_name": nil, "BIO": nil})
	require.NoError(t, err)
}

func Test_Update_MissingProfile(t *testing.T) {
	service, store, _ := newService(t)
	store.EXPECT().UpdateProfile(mock.Anything, mock.Anything, mock.Anything).Return(nil, profile.ErrProfileNotFound).Once()

	_, err := service.Update(context.Background(), uuid.New(), map[string]any{"bio": "hello"})
	assert.True(t, fault.Is(err, fault.KindNotFound))
}

func Test_RequestEmailChange(t *testing.T) {
	t.Run("Missing email", func(t *testing.T) {
		service, _, _ := newService(t)
		err := service.RequestEmailChange(context.Background(), "token", " ")
		assert.True(t, fault.Is(err, fault.KindValidation))
	})

	t.Run("Redirects to frontend", func(t *testing.T) {
		service, _, provider := newService(t)
		provider.EXPECT().
			UpdateUser(mock.Anything, "token", identity.UserAttributes{Email: "new@example.com"}, "http://localhost:5173").
			Return(&identity.User{}, nil).
			Once()

		assert.NoError(t, service.RequestEmailChange(context.Background(), "token", "new@example.com"))
	})

	t.Run("Provider rejection", func(t *testing.T) {
		service, _, provider := newService(t)
		provider.EXPECT().
			UpdateUser(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &identity.Error{Status: 422, Message: "Email address already in use"}).
			Once()

		err := service.RequestEmailChange(context.Background(), "token", "new@example.com")
		var fErr *fault.Error
		require.ErrorAs(t, err, &fErr)
		assert.Equal(t, fault.KindProvider, fErr.Kind)
		assert.Equal(t, "Email address already in use", fErr.Message)
	})
}

func Test_SyncEmail(t *testing.T) {
	service, store, provider := newService(t)
	user := &identity.User{ID: uuid.New(), Email: "new@example.com"}
	existing := &profile.Profile{UserID: user.ID, Email: strPtr("old@example.com"), FirstName: strPtr("Ada")}
	synced := &profile.Profile{UserID: user.ID, Email: strPtr("new@example.com"), FirstName: strPtr("Ada")}

	provider.EXPECT().GetUser(mock.Anything, "token").Return(user, nil).Once()
	store.EXPECT().GetProfile(mock.Anything, user.ID).Return(existing, nil).Once()
	store.EXPECT().UpdateProfile(mock.Anything, user.ID, map[string]any{"email": strPtr("new@example.com")}).Return(synced, nil).Once()

	gotUser, gotProfile, err := service.SyncEmail(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, user, gotUser)
	assert.Equal(t, synced, gotProfile)
}

func Test_UpdatePhone(t *testing.T) {
	service, store, _ := newService(t)
	userID := uuid.New()

	_, err := service.UpdatePhone(context.Background(), userID, "")
	assert.True(t, fault.Is(err, fault.KindValidation))

	store.EXPECT().UpdateProfile(mock.Anything, userID, map[string]any{"phone": "+6421000000"}).Return(&profile.Profile{UserID: userID}, nil).Once()
	_, err = service.UpdatePhone(context.Background(), userID, " +6421000000 ")
	assert.NoError(t, err)
}

func Test_ChangePassword(t *testing.T) {
	userID := uuid.New()

	t.Run("Missing password", func(t *testing.T) {
		service, _, _ := newService(t)
		err := service.ChangePassword(context.Background(), userID, "token", "", true)
		var fErr *fault.Error
		require.ErrorAs(t, err, &fErr)
		assert.Equal(t, "New password required", fErr.Message)
	})

	t.Run("Keeps other sessions", func(t *testing.T) {
		service, _, provider := newService(t)
		provider.EXPECT().AdminUpdateUserByID(mock.Anything, userID, identity.UserAttributes{Password: "s3cret!"}).Return(&identity.User{}, nil).Once()

		assert.NoError(t, service.ChangePassword(context.Background(), userID, "token", "s3cret!", false))
	})

	t.Run("Signs out other sessions", func(t *testing.T) {
		service, _, provider := newService(t)
		provider.EXPECT().AdminUpdateUserByID(mock.Anything, userID, mock.Anything).Return(&identity.User{}, nil).Once()
		provider.EXPECT().Logout(mock.Anything, "token", identity.ScopeOthers).Return(nil).Once()

		assert.NoError(t, service.ChangePassword(context.Background(), userID, "token", "s3cret!", true))
	})

	t.Run("Weak password rejected by provider", func(t *testing.T) {
		service, _, provider := newService(t)
		provider.EXPECT().
			AdminUpdateUserByID(mock.Anything, userID, mock.Anything).
			Return(nil, &identity.Error{Status: 422, Message: "Password should be at least 6 characters"}).
			Once()

		err := service.ChangePassword(context.Background(), userID, "token", "abc", true)
		assert.True(t, fault.Is(err, fault.KindValidation))
	})
}
