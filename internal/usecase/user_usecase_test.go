package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

func newUserUsecaseForTest() (*UserUsecase, *fakeUserRepo, *fakeJWT, *fakeRecCache) {
	repo := newFakeUserRepo()
	jwtSvc := newFakeJWT()
	cache := newFakeRecCache()
	uc := NewUserUsecase(repo, fakeHasher{}, jwtSvc, nopLogger{}, fakeConfig{}, fakeValidator{}, &fakeUUIDGen{}, fakeRandomGen{}, cache)
	return uc, repo, jwtSvc, cache
}

func TestRegister_IssuesPairAndStoresHash(t *testing.T) {
	uc, repo, _, _ := newUserUsecaseForTest()

	user, pair, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, entity.ProviderLocal, user.Provider)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, 1, repo.tokenCount(user.ID))
}

func TestRegister_GeneratesUsernameWhenEmpty(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	user, _, err := uc.Register(context.Background(), "", "noname@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, "user_1700000000_042", user.Username)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	_, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)

	_, _, err = uc.Register(context.Background(), "bob", "alice@example.com", "Password123!")
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	_, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)

	_, _, err = uc.Login(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestLogin_UnknownEmailUnauthorized(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	_, _, err := uc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestLogin_OAuthOnlyAccountRejected(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	_, _, err := uc.LoginWithOAuth(context.Background(), usecasecontract.OAuthProfile{
		SubjectID: "google-sub-1",
		Email:     "oauth@example.com",
		Name:      "OAuth User",
	})
	require.NoError(t, err)

	_, _, err = uc.Login(context.Background(), "oauth@example.com", "any-password")
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRefresh_RotatesToken(t *testing.T) {
	uc, repo, _, _ := newUserUsecaseForTest()

	user, pair, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)

	_, newPair, err := uc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, newPair.RefreshToken)
	// the consumed hash is replaced by the new one, not accumulated
	assert.Equal(t, 1, repo.tokenCount(user.ID))

	// the consumed token no longer refreshes
	_, _, err = uc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	// the rotated token still does
	_, _, err = uc.Refresh(context.Background(), newPair.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_PrunesExpiredHashes(t *testing.T) {
	uc, repo, _, _ := newUserUsecaseForTest()

	user, pair, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)

	stale := entity.RefreshToken{
		TokenHash: "sha$stale",
		CreatedAt: time.Now().Add(-30 * 24 * time.Hour),
	}
	require.NoError(t, repo.AddRefreshToken(context.Background(), user.ID, stale))
	require.Equal(t, 2, repo.tokenCount(user.ID))

	_, _, err = uc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	// the stale hash is swept out along with the consumed one
	assert.Equal(t, 1, repo.tokenCount(user.ID))
}

func TestRefresh_UnknownTokenUnauthorized(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	_, _, err := uc.Refresh(context.Background(), "refresh:garbage:99")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestRefresh_DeletedUserForbidden(t *testing.T) {
	uc, repo, _, _ := newUserUsecaseForTest()

	user, pair, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)
	require.NoError(t, repo.DeleteUser(context.Background(), user.ID))

	_, _, err = uc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestLogout_RemovesStoredHash(t *testing.T) {
	uc, repo, _, _ := newUserUsecaseForTest()

	user, pair, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), pair.RefreshToken))
	assert.Equal(t, 0, repo.tokenCount(user.ID))

	// logged-out token can no longer refresh
	_, _, err = uc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestLogout_BestEffortOnGarbageToken(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	assert.NoError(t, uc.Logout(context.Background(), "not-a-token"))
}

func TestLoginWithOAuth_LinksExistingLocalAccount(t *testing.T) {
	uc, repo, _, _ := newUserUsecaseForTest()

	local, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)

	user, _, err := uc.LoginWithOAuth(context.Background(), usecasecontract.OAuthProfile{
		SubjectID: "google-sub-1",
		Email:     "alice@example.com",
		Name:      "Alice",
		Picture:   "https://example.com/pic.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, local.ID, user.ID)

	stored, err := repo.GetUserByGoogleID(context.Background(), "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, local.ID, stored.ID)
	assert.True(t, stored.EmailVerified)
	// the linked account keeps its local password
	assert.True(t, stored.HasPassword())
}

func TestLoginWithOAuth_ReplacesStoredTokenSet(t *testing.T) {
	uc, repo, _, _ := newUserUsecaseForTest()

	local, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)
	require.Equal(t, 1, repo.tokenCount(local.ID))

	_, _, err = uc.LoginWithOAuth(context.Background(), usecasecontract.OAuthProfile{
		SubjectID: "google-sub-1",
		Email:     "alice@example.com",
		Name:      "Alice",
	})
	require.NoError(t, err)
	// the register-time hash is swept, not appended to
	assert.Equal(t, 1, repo.tokenCount(local.ID))
}

func TestLoginWithOAuth_ProvisionsNewAccount(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	user, pair, err := uc.LoginWithOAuth(context.Background(), usecasecontract.OAuthProfile{
		SubjectID: "google-sub-2",
		Email:     "fresh@example.com",
		Name:      "Fresh User",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderGoogle, user.Provider)
	assert.False(t, user.HasPassword())
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestUpdateFavorites_NormalizesAndInvalidatesCache(t *testing.T) {
	uc, _, _, cache := newUserUsecaseForTest()

	user, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)

	updated, err := uc.UpdateFavorites(context.Background(), user.ID, entity.Favorites{
		DestinationTypes: []string{"Beaches", "Nature Beauty"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"beaches", "nature_beauty"}, updated.Favorites.DestinationTypes)
	assert.Contains(t, cache.invalidated, user.ID)
}

func TestUpdateFavorites_UnknownCategory(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	user, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)

	_, err = uc.UpdateFavorites(context.Background(), user.ID, entity.Favorites{
		DestinationTypes: []string{"volcanoes"},
	})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestUpdateProfile_UsernameTakenConflicts(t *testing.T) {
	uc, _, _, _ := newUserUsecaseForTest()

	_, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "Password123!")
	require.NoError(t, err)
	bob, _, err := uc.Register(context.Background(), "bob", "bob@example.com", "Password123!")
	require.NoError(t, err)

	_, err = uc.UpdateProfile(context.Background(), bob.ID, map[string]interface{}{"username": "alice"})
	assert.ErrorIs(t, err, entity.ErrConflict)
}
