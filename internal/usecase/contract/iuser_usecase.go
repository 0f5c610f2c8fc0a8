package usecasecontract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/entity"
)

// TokenPair bundles the two credentials issued for a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// OAuthProfile is the identity returned by the OAuth provider's userinfo
// endpoint.
type OAuthProfile struct {
	SubjectID string
	Email     string
	Name      string
	Picture   string
}

// IUserUseCase defines the account and session lifecycle operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error)
	// Authenticate verifies an access token and returns the persisted user.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	// Refresh validates a refresh token against the user's stored set and
	// rotates it, returning a fresh pair.
	Refresh(ctx context.Context, refreshToken string) (*entity.User, *TokenPair, error)
	// Logout removes the refresh token from the stored set. An unverifiable
	// token is not an error; the caller clears cookies regardless.
	Logout(ctx context.Context, refreshToken string) error
	LoginWithOAuth(ctx context.Context, profile OAuthProfile) (*entity.User, *TokenPair, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
	UpdateFavorites(ctx context.Context, userID string, favorites entity.Favorites) (*entity.User, error)
	DeleteAccount(ctx context.Context, userID string) error
}
