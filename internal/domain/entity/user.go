package entity

import (
	"time"
)

// User represents a registered traveller account, local or Google-provisioned.
type User struct {
	ID                   string         `bson:"_id,omitempty" json:"id"`
	Username             string         `bson:"username" json:"username"`
	Email                string         `bson:"email" json:"email"`
	PasswordHash         string         `bson:"password_hash,omitempty" json:"-"`
	Role                 UserRole       `bson:"role" json:"role"`
	Provider             AuthProvider   `bson:"provider" json:"provider"`
	GoogleID             *string        `bson:"google_id,omitempty" json:"-"`
	ProfilePic           string         `bson:"profile_pic,omitempty" json:"profile_pic,omitempty"`
	EmailVerified        bool           `bson:"email_verified" json:"email_verified"`
	Bio                  string         `bson:"bio" json:"bio"`
	Location             string         `bson:"location" json:"location"`
	Budget               string         `bson:"budget" json:"budget"`
	Website              string         `bson:"website" json:"website"`
	Phone                string         `bson:"phone" json:"phone"`
	DateOfBirth          *time.Time     `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	NotificationsEnabled bool           `bson:"notifications_enabled" json:"notifications_enabled"`
	NewslettersEnabled   bool           `bson:"newsletters_enabled" json:"newsletters_enabled"`
	ThemePreference      Theme          `bson:"theme_preference" json:"theme_preference"`
	Favorites            Favorites      `bson:"favorite_categories" json:"favorite_categories"`
	RefreshTokens        []RefreshToken `bson:"refresh_tokens" json:"-"`
	CreatedAt            time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time      `bson:"updated_at" json:"updated_at"`
}

// RefreshToken is one entry of the server-side refresh-token set. Only the
// SHA-256 hash of the issued token is persisted.
type RefreshToken struct {
	TokenHash string    `bson:"token_hash" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"-"`
}

// Favorites holds the stored destination-category preferences that drive
// recommendations.
type Favorites struct {
	DestinationTypes  []string `bson:"destination_type" json:"destination_types"`
	ClimatePreference []string `bson:"climate_preference" json:"climate_preference"`
	Activities        []string `bson:"activities" json:"activities"`
	Duration          string   `bson:"duration" json:"duration"`
	Budget            string   `bson:"budget" json:"budget"`
}

// UserRole represents the role of a user in the system.
type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRoleAdmin   UserRole = "admin"
	UserRoleDBAdmin UserRole = "dbAdmin"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// AuthProvider is the account's authentication origin.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// Theme is the user's UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// HasPassword reports whether the account can log in with email+password.
// Google-provisioned accounts have no password hash.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
