package contract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/entity"
)

// IRecommendationCache caches per-user recommendation result sets.
type IRecommendationCache interface {
	// Get returns the cached set for a key, with a hit flag.
	Get(ctx context.Context, key string) ([]entity.Destination, bool, error)
	Set(ctx context.Context, key string, destinations []entity.Destination) error
	// InvalidateUser drops every cached set belonging to one user, called
	// when their favorites change.
	InvalidateUser(ctx context.Context, userID string) error
}
