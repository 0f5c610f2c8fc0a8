package mocks

import (
	"context"
	"fmt"

	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// MockRecommendationUsecase is a mock implementation of the
// IRecommendationUseCase interface.
type MockRecommendationUsecase struct {
	ShouldFailNoFavorites bool
	ShouldFailNoResults   bool

	LastFilter usecasecontract.RecommendationFilter

	MockDestinations []entity.Destination
}

var _ usecasecontract.IRecommendationUseCase = (*MockRecommendationUsecase)(nil)

func NewMockRecommendationUsecase() *MockRecommendationUsecase {
	return &MockRecommendationUsecase{
		MockDestinations: []entity.Destination{
			{ID: 1, Name: "Danakil Depression", Country: "Ethiopia", Collection: entity.DestinationAdventure},
		},
	}
}

func (m *MockRecommendationUsecase) Recommend(ctx context.Context, userID string, filter usecasecontract.RecommendationFilter) ([]entity.Destination, error) {
	m.LastFilter = filter
	if m.ShouldFailNoFavorites {
		return nil, fmt.Errorf("%w: no favorite categories set, update favorites first", entity.ErrValidation)
	}
	if m.ShouldFailNoResults {
		return nil, fmt.Errorf("%w: no destinations match your favorites", entity.ErrNotFound)
	}
	return m.MockDestinations, nil
}
