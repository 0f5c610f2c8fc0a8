package mocks

import (
	"context"
	"fmt"

	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister        bool
	ShouldConflictRegister    bool
	ShouldFailLogin           bool
	ShouldRejectPasswordLogin bool
	ShouldFailAuthenticate    bool
	ShouldFailRefresh         bool
	ShouldFailGetByID         bool
	ShouldFailUpdateProfile   bool
	ShouldFailUpdateFavorites bool
	ShouldFailLogout          bool
	ShouldFailLoginWithOAuth  bool
	ShouldFailDeleteAccount   bool

	// Captured arguments
	LastRefreshToken string
	LastFavorites    entity.Favorites

	// Return values
	MockUser entity.User
	MockPair usecasecontract.TokenPair
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
			Provider: entity.ProviderLocal,
		},
		MockPair: usecasecontract.TokenPair{
			AccessToken:  "mock_access_token",
			RefreshToken: "mock_refresh_token",
		},
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, *usecasecontract.TokenPair, error) {
	if m.ShouldConflictRegister {
		return nil, nil, fmt.Errorf("%w: user with email %s already exists", entity.ErrConflict, email)
	}
	if m.ShouldFailRegister {
		return nil, nil, fmt.Errorf("%w: registration failed", entity.ErrInternal)
	}
	return &m.MockUser, &m.MockPair, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, *usecasecontract.TokenPair, error) {
	if m.ShouldRejectPasswordLogin {
		return nil, nil, fmt.Errorf("%w: account uses google sign-in, no password is set", entity.ErrValidation)
	}
	if m.ShouldFailLogin {
		return nil, nil, fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
	}
	return &m.MockUser, &m.MockPair, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, fmt.Errorf("%w: invalid access token", entity.ErrUnauthorized)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Refresh(ctx context.Context, refreshToken string) (*entity.User, *usecasecontract.TokenPair, error) {
	m.LastRefreshToken = refreshToken
	if m.ShouldFailRefresh {
		return nil, nil, fmt.Errorf("%w: refresh token has been revoked", entity.ErrForbidden)
	}
	return &m.MockUser, &m.MockPair, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	m.LastRefreshToken = refreshToken
	if m.ShouldFailLogout {
		return fmt.Errorf("%w: logout failed", entity.ErrInternal)
	}
	return nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, profile usecasecontract.OAuthProfile) (*entity.User, *usecasecontract.TokenPair, error) {
	if m.ShouldFailLoginWithOAuth {
		return nil, nil, fmt.Errorf("%w: oauth login failed", entity.ErrInternal)
	}
	return &m.MockUser, &m.MockPair, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, fmt.Errorf("%w: failed to update profile", entity.ErrInternal)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateFavorites(ctx context.Context, userID string, favorites entity.Favorites) (*entity.User, error) {
	m.LastFavorites = favorites
	if m.ShouldFailUpdateFavorites {
		return nil, fmt.Errorf("%w: unknown destination category", entity.ErrValidation)
	}
	user := m.MockUser
	user.Favorites = favorites
	return &user, nil
}

func (m *MockUserUsecase) DeleteAccount(ctx context.Context, userID string) error {
	if m.ShouldFailDeleteAccount {
		return fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	return nil
}
