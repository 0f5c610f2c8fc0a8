package usecasecontract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/entity"
)

// RecommendationFilter narrows a recommendation query. Month filters by
// best-time-to-visit; Field/Value filter by one of country, region, type or
// name. Both are optional.
type RecommendationFilter struct {
	Month string
	Field string
	Value string
}

// IRecommendationUseCase samples destinations matching the user's stored
// favorite categories.
type IRecommendationUseCase interface {
	Recommend(ctx context.Context, userID string, filter RecommendationFilter) ([]entity.Destination, error)
}
