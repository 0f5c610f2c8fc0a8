package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in both access and refresh tokens.
type Claims struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	jwt.RegisteredClaims
}
