package contract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByGoogleID retrieves a user by their OAuth subject id.
	GetUserByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// AddRefreshToken appends a refresh-token hash to the user's stored set.
	AddRefreshToken(ctx context.Context, userID string, token entity.RefreshToken) error
	// RemoveRefreshToken pulls a refresh-token hash from the user's stored set.
	RemoveRefreshToken(ctx context.Context, userID, tokenHash string) error
	// ReplaceRefreshTokens swaps the whole stored set for the given one.
	ReplaceRefreshTokens(ctx context.Context, userID string, tokens []entity.RefreshToken) error
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}
