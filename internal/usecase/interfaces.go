package usecase

import (
	"github.com/voyago/voyago/internal/domain/entity"
)

// JWTService defines the interface for JWT operations. Access and refresh
// tokens are signed with two distinct secrets.
type JWTService interface {
	GenerateAccessToken(user *entity.User) (string, error)
	GenerateRefreshToken(user *entity.User) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
	ParseRefreshToken(token string) (*entity.Claims, error)
}
