package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voyago/voyago/internal/domain/entity"
	"github.com/voyago/voyago/internal/handler/http/dto"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	Refresh(*gin.Context)
	Logout(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateProfile(*gin.Context)
	UpdateFavorites(*gin.Context)
	DeleteAccount(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	config      usecasecontract.IConfigProvider
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, cfg usecasecontract.IConfigProvider) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		config:      cfg,
	}
}

// Register handles local account signup. A successful signup logs the user
// in immediately.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, pair, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	setAuthCookies(c, h.config, pair)
	SuccessHandler(c, http.StatusCreated, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Login handles local authentication.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, pair, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	setAuthCookies(c, h.config, pair)
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// refreshTokenFromRequest reads the refresh token from the cookie first,
// falling back to the JSON body for non-browser clients.
func refreshTokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(refreshTokenCookie); err == nil && token != "" {
		return token
	}
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}

// Refresh rotates the session: the presented refresh token is consumed and
// a fresh pair is issued.
func (h *UserHandler) Refresh(c *gin.Context) {
	token := refreshTokenFromRequest(c)
	if token == "" {
		ErrorHandler(c, http.StatusUnauthorized, "refresh token required")
		return
	}

	user, pair, err := h.userUsecase.Refresh(c.Request.Context(), token)
	if err != nil {
		clearAuthCookies(c, h.config)
		DomainErrorHandler(c, err)
		return
	}

	setAuthCookies(c, h.config, pair)
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout revokes the presented refresh token and clears both cookies. The
// cookies are cleared even when the token is expired or unknown.
func (h *UserHandler) Logout(c *gin.Context) {
	token := refreshTokenFromRequest(c)
	if token != "" {
		if err := h.userUsecase.Logout(c.Request.Context(), token); err != nil {
			clearAuthCookies(c, h.config)
			DomainErrorHandler(c, err)
			return
		}
	}

	clearAuthCookies(c, h.config)
	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

// GetCurrentUser returns the authenticated user's profile.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile applies the non-nil fields of the request to the
// authenticated user.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updated, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID.(string), updateUserRequestToMap(req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*updated))
}

// UpdateFavorites replaces the authenticated user's favorite categories.
func (h *UserHandler) UpdateFavorites(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateFavoritesRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	favorites := entity.Favorites{
		DestinationTypes:  req.DestinationTypes,
		ClimatePreference: req.ClimatePreference,
		Activities:        req.Activities,
		Duration:          req.Duration,
		Budget:            req.Budget,
	}
	updated, err := h.userUsecase.UpdateFavorites(c.Request.Context(), userID.(string), favorites)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*updated))
}

// DeleteAccount removes the authenticated user and ends their session.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.userUsecase.DeleteAccount(c.Request.Context(), userID.(string)); err != nil {
		DomainErrorHandler(c, err)
		return
	}

	clearAuthCookies(c, h.config)
	MessageHandler(c, http.StatusOK, "Account deleted successfully")
}

func updateUserRequestToMap(req dto.UpdateUserRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.ProfilePic != nil {
		updates["profile_pic"] = *req.ProfilePic
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = *req.DateOfBirth
	}
	if req.NotificationsEnabled != nil {
		updates["notifications_enabled"] = *req.NotificationsEnabled
	}
	if req.NewslettersEnabled != nil {
		updates["newsletters_enabled"] = *req.NewslettersEnabled
	}
	if req.ThemePreference != nil {
		updates["theme_preference"] = *req.ThemePreference
	}

	return updates
}
