package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	hasher          contract.IHasher
	jwtService      JWTService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
	recCache        contract.IRecommendationCache
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomgen contract.IRandomGenerator,
	recCache contract.IRecommendationCache,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomgen,
		recCache:        recCache,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// generateTokenPair signs a fresh access/refresh pair and returns the
// refresh token's hash record for storage.
func (uc *UserUsecase) generateTokenPair(user *entity.User) (*usecasecontract.TokenPair, entity.RefreshToken, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, entity.RefreshToken{}, fmt.Errorf("%w: failed to generate token", entity.ErrInternal)
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return nil, entity.RefreshToken{}, fmt.Errorf("%w: failed to generate token", entity.ErrInternal)
	}

	stored := entity.RefreshToken{
		TokenHash: uc.hasher.HashString(refreshToken),
		CreatedAt: time.Now(),
	}
	return &usecasecontract.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, stored, nil
}

// issueTokenPair generates a fresh access/refresh pair and appends the
// refresh token's hash to the user's stored set.
func (uc *UserUsecase) issueTokenPair(ctx context.Context, user *entity.User) (*usecasecontract.TokenPair, error) {
	pair, stored, err := uc.generateTokenPair(user)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.AddRefreshToken(ctx, user.ID, stored); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to store token", entity.ErrInternal)
	}
	return pair, nil
}

// Register handles local account registration. An empty username gets an
// auto-generated one.
func (uc *UserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, *usecasecontract.TokenPair, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, nil, fmt.Errorf("%w: password must be at least 7 characters", entity.ErrValidation)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, nil, fmt.Errorf("%w: registration failed", entity.ErrInternal)
	}
	if existing != nil {
		return nil, nil, fmt.Errorf("%w: user with email %s already exists", entity.ErrConflict, email)
	}

	if username == "" {
		username = uc.randomGenerator.GenerateUsername()
	} else {
		existing, err = uc.userRepo.GetUserByUsername(ctx, username)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Errorf("failed to check for existing user by username: %v", err)
			return nil, nil, fmt.Errorf("%w: registration failed", entity.ErrInternal)
		}
		if existing != nil {
			return nil, nil, fmt.Errorf("%w: username %s already taken", entity.ErrConflict, username)
		}
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to process password", entity.ErrInternal)
	}

	now := time.Now()
	user := &entity.User{
		ID:              uc.uuidGenerator.NewUUID(),
		Username:        username,
		Email:           email,
		PasswordHash:    hashedPassword,
		Role:            entity.UserRoleUser,
		Provider:        entity.ProviderLocal,
		ThemePreference: entity.ThemeSystem,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, nil, fmt.Errorf("%w: account already exists", entity.ErrConflict)
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to register user", entity.ErrInternal)
	}

	pair, err := uc.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Login verifies credentials and issues a new token pair.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, *usecasecontract.TokenPair, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, nil, fmt.Errorf("%w: login failed", entity.ErrInternal)
	}

	// OAuth-provisioned accounts have no password to check against.
	if !user.HasPassword() {
		return nil, nil, fmt.Errorf("%w: account uses %s sign-in, no password is set", entity.ErrValidation, user.Provider)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
	}

	pair, err := uc.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Authenticate resolves an access token to its user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid access token", entity.ErrUnauthorized)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", entity.ErrUnauthorized)
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, fmt.Errorf("%w: authentication failed", entity.ErrInternal)
	}

	return user, nil
}

// Refresh validates the presented refresh token against the user's stored
// hashes and rotates it, replacing the consumed hash with a fresh pair.
func (uc *UserUsecase) Refresh(ctx context.Context, refreshToken string) (*entity.User, *usecasecontract.TokenPair, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid refresh token", entity.ErrUnauthorized)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: refresh token does not belong to a known user", entity.ErrForbidden)
		}
		uc.logger.Errorf("failed to retrieve user during refresh: %v", err)
		return nil, nil, fmt.Errorf("%w: refresh failed", entity.ErrInternal)
	}

	presentedHash := uc.hasher.HashString(refreshToken)
	found := false
	for _, t := range user.RefreshTokens {
		if t.TokenHash == presentedHash {
			found = true
			break
		}
	}
	if !found {
		uc.logger.Warnf("refresh token not in stored set for user %s", user.ID)
		return nil, nil, fmt.Errorf("%w: refresh token has been revoked", entity.ErrForbidden)
	}

	// Drop the consumed hash, and any hash old enough that its token has
	// expired anyway, in a single write.
	cutoff := time.Now().Add(-uc.config.GetRefreshTokenExpiry())
	kept := make([]entity.RefreshToken, 0, len(user.RefreshTokens))
	for _, t := range user.RefreshTokens {
		if t.TokenHash == presentedHash || t.CreatedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, t)
	}
	if err := uc.userRepo.ReplaceRefreshTokens(ctx, user.ID, kept); err != nil {
		uc.logger.Errorf("failed to rotate refresh tokens for user %s: %v", user.ID, err)
		return nil, nil, fmt.Errorf("%w: refresh failed", entity.ErrInternal)
	}

	pair, err := uc.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Logout removes the presented refresh token's hash from the user's stored
// set. It never fails on an unparseable or unknown token, the caller clears
// cookies regardless.
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		uc.logger.Warnf("failed to parse refresh token on logout, assuming it's already invalid: %v", err)
		return nil
	}

	presentedHash := uc.hasher.HashString(refreshToken)
	if err := uc.userRepo.RemoveRefreshToken(ctx, claims.UserID, presentedHash); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil
		}
		uc.logger.Errorf("failed to remove refresh token for user %s on logout: %v", claims.UserID, err)
		return fmt.Errorf("%w: logout failed", entity.ErrInternal)
	}

	return nil
}

// LoginWithOAuth signs a Google-authenticated profile in, linking or
// provisioning a local account as needed.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, profile usecasecontract.OAuthProfile) (*entity.User, *usecasecontract.TokenPair, error) {
	user, err := uc.userRepo.GetUserByGoogleID(ctx, profile.SubjectID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to look up user by google id: %v", err)
		return nil, nil, fmt.Errorf("%w: oauth login failed", entity.ErrInternal)
	}

	if user == nil {
		// Existing local account with the same email gets the Google
		// identity linked rather than a duplicate account.
		user, err = uc.userRepo.GetUserByEmail(ctx, profile.Email)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Errorf("failed to look up user by email during oauth: %v", err)
			return nil, nil, fmt.Errorf("%w: oauth login failed", entity.ErrInternal)
		}
		if user != nil {
			googleID := profile.SubjectID
			user.GoogleID = &googleID
			if user.ProfilePic == "" {
				user.ProfilePic = profile.Picture
			}
			user.EmailVerified = true
			user.UpdatedAt = time.Now()
			if user, err = uc.userRepo.UpdateUser(ctx, user); err != nil {
				uc.logger.Errorf("failed to link google identity for user: %v", err)
				return nil, nil, fmt.Errorf("%w: oauth login failed", entity.ErrInternal)
			}
		}
	}

	if user == nil {
		googleID := profile.SubjectID
		now := time.Now()
		user = &entity.User{
			ID:              uc.uuidGenerator.NewUUID(),
			Username:        uc.randomGenerator.GenerateUsername(),
			Email:           profile.Email,
			Role:            entity.UserRoleUser,
			Provider:        entity.ProviderGoogle,
			GoogleID:        &googleID,
			ProfilePic:      profile.Picture,
			EmailVerified:   true,
			ThemePreference: entity.ThemeSystem,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to provision oauth user: %v", err)
			return nil, nil, fmt.Errorf("%w: oauth login failed", entity.ErrInternal)
		}
	}

	// OAuth sign-in starts the session over: the stored set is replaced
	// with just the fresh hash rather than appended to.
	pair, stored, err := uc.generateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	if err := uc.userRepo.ReplaceRefreshTokens(ctx, user.ID, []entity.RefreshToken{stored}); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return nil, nil, fmt.Errorf("%w: failed to store token", entity.ErrInternal)
	}

	return user, pair, nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, fmt.Errorf("%w: failed to retrieve user", entity.ErrInternal)
	}

	return user, nil
}

// UpdateProfile applies a whitelisted set of profile fields.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user for profile update: %v", err)
		return nil, fmt.Errorf("%w: failed to update profile", entity.ErrInternal)
	}

	if val, ok := updates["username"]; ok {
		if username, isString := val.(string); isString && username != user.Username {
			existing, err := uc.userRepo.GetUserByUsername(ctx, username)
			if err != nil && !errors.Is(err, entity.ErrNotFound) {
				uc.logger.Errorf("failed to check for existing username during update: %v", err)
				return nil, fmt.Errorf("%w: failed to update profile", entity.ErrInternal)
			}
			if existing != nil && existing.ID != userID {
				return nil, fmt.Errorf("%w: username %s already taken", entity.ErrConflict, username)
			}
		}
	}

	for k, v := range updates {
		switch k {
		case "username":
			if s, ok := v.(string); ok && s != "" {
				user.Username = s
			}
		case "profile_pic":
			if s, ok := v.(string); ok {
				user.ProfilePic = s
			}
		case "bio":
			if s, ok := v.(string); ok {
				user.Bio = s
			}
		case "location":
			if s, ok := v.(string); ok {
				user.Location = s
			}
		case "budget":
			if s, ok := v.(string); ok {
				user.Budget = s
			}
		case "website":
			if s, ok := v.(string); ok {
				user.Website = s
			}
		case "phone":
			if s, ok := v.(string); ok {
				user.Phone = s
			}
		case "date_of_birth":
			if s, ok := v.(string); ok {
				if dob, err := time.Parse("2006-01-02", s); err == nil {
					user.DateOfBirth = &dob
				} else {
					return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", entity.ErrValidation)
				}
			}
		case "notifications_enabled":
			if b, ok := v.(bool); ok {
				user.NotificationsEnabled = b
			}
		case "newsletters_enabled":
			if b, ok := v.(bool); ok {
				user.NewslettersEnabled = b
			}
		case "theme_preference":
			if s, ok := v.(string); ok {
				theme := entity.Theme(s)
				if theme != entity.ThemeLight && theme != entity.ThemeDark && theme != entity.ThemeSystem {
					return nil, fmt.Errorf("%w: invalid theme preference %q", entity.ErrValidation, s)
				}
				user.ThemePreference = theme
			}
		}
	}
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to update profile", entity.ErrInternal)
	}

	return updated, nil
}

// UpdateFavorites replaces the user's favorite travel categories and drops
// their cached recommendations.
func (uc *UserUsecase) UpdateFavorites(ctx context.Context, userID string, favorites entity.Favorites) (*entity.User, error) {
	normalized := make([]string, 0, len(favorites.DestinationTypes))
	for _, raw := range favorites.DestinationTypes {
		t := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", "_"))
		if !entity.ValidDestinationType(entity.DestinationType(t)) {
			return nil, fmt.Errorf("%w: unknown destination category %q", entity.ErrValidation, raw)
		}
		normalized = append(normalized, t)
	}
	favorites.DestinationTypes = normalized

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user for favorites update: %v", err)
		return nil, fmt.Errorf("%w: failed to update favorites", entity.ErrInternal)
	}

	user.Favorites = favorites
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update favorites for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to update favorites", entity.ErrInternal)
	}

	if uc.recCache != nil {
		if err := uc.recCache.InvalidateUser(ctx, userID); err != nil {
			uc.logger.Warnf("failed to invalidate recommendation cache for user %s: %v", userID, err)
		}
	}

	return updated, nil
}

// DeleteAccount removes the user document entirely.
func (uc *UserUsecase) DeleteAccount(ctx context.Context, userID string) error {
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%w: user not found", entity.ErrNotFound)
		}
		uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		return fmt.Errorf("%w: failed to delete account", entity.ErrInternal)
	}

	if uc.recCache != nil {
		if err := uc.recCache.InvalidateUser(ctx, userID); err != nil {
			uc.logger.Warnf("failed to invalidate recommendation cache for user %s: %v", userID, err)
		}
	}

	return nil
}
