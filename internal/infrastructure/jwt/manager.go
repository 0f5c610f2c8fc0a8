package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/voyago/voyago/internal/domain/entity"
)

// JWTManager signs and verifies access and refresh tokens with two distinct
// secrets. It is a pure function of its configuration and the clock: no side
// effects, no storage.
type JWTManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTManager builds a manager. Both secrets are mandatory; the process
// must not issue tokens without them.
func NewJWTManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*JWTManager, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("JWT secrets are not configured")
	}
	return &JWTManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GenerateAccessToken issues a short-lived access token for a user.
func (m *JWTManager) GenerateAccessToken(user *entity.User) (string, error) {
	return m.sign(user, m.accessSecret, m.accessTTL)
}

// GenerateRefreshToken issues a refresh token for a user. A unique JTI makes
// every issued token distinct even within the same second.
func (m *JWTManager) GenerateRefreshToken(user *entity.User) (string, error) {
	return m.sign(user, m.refreshSecret, m.refreshTTL)
}

func (m *JWTManager) sign(user *entity.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &entity.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken validates an access token signature and expiry.
func (m *JWTManager) VerifyAccessToken(tokenStr string) (*entity.Claims, error) {
	return m.verify(tokenStr, m.accessSecret)
}

// VerifyRefreshToken validates a refresh token signature and expiry.
func (m *JWTManager) VerifyRefreshToken(tokenStr string) (*entity.Claims, error) {
	return m.verify(tokenStr, m.refreshSecret)
}

func (m *JWTManager) verify(tokenStr string, secret []byte) (*entity.Claims, error) {
	claims := &entity.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
