package dto

import (
	"time"

	"github.com/voyago/voyago/internal/domain/entity"
)

// UserResponse is the DTO for a user. Password hashes and stored refresh
// tokens never leave the server.
type UserResponse struct {
	ID                   string           `json:"id"`
	Username             string           `json:"username"`
	Email                string           `json:"email"`
	Role                 string           `json:"role"`
	Provider             string           `json:"provider"`
	ProfilePic           string           `json:"profile_pic,omitempty"`
	EmailVerified        bool             `json:"email_verified"`
	Bio                  string           `json:"bio,omitempty"`
	Location             string           `json:"location,omitempty"`
	Budget               string           `json:"budget,omitempty"`
	Website              string           `json:"website,omitempty"`
	Phone                string           `json:"phone,omitempty"`
	DateOfBirth          *string          `json:"date_of_birth,omitempty"`
	NotificationsEnabled bool             `json:"notifications_enabled"`
	NewslettersEnabled   bool             `json:"newsletters_enabled"`
	ThemePreference      string           `json:"theme_preference"`
	Favorites            entity.Favorites `json:"favorite_categories"`
	CreatedAt            string           `json:"created_at"`
}

// LoginResponse is the DTO for a successful login or refresh. Tokens are
// also set as cookies; they appear in the body for non-browser clients.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	var dob *string
	if user.DateOfBirth != nil {
		s := user.DateOfBirth.Format("2006-01-02")
		dob = &s
	}
	return UserResponse{
		ID:                   user.ID,
		Username:             user.Username,
		Email:                user.Email,
		Role:                 string(user.Role),
		Provider:             string(user.Provider),
		ProfilePic:           user.ProfilePic,
		EmailVerified:        user.EmailVerified,
		Bio:                  user.Bio,
		Location:             user.Location,
		Budget:               user.Budget,
		Website:              user.Website,
		Phone:                user.Phone,
		DateOfBirth:          dob,
		NotificationsEnabled: user.NotificationsEnabled,
		NewslettersEnabled:   user.NewslettersEnabled,
		ThemePreference:      string(user.ThemePreference),
		Favorites:            user.Favorites,
		CreatedAt:            user.CreatedAt.Format(time.RFC3339),
	}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
