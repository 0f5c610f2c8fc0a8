package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyago/voyago/internal/domain/entity"
	"github.com/voyago/voyago/internal/infrastructure/store"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

func seedRecommendationUser(t *testing.T, repo *fakeUserRepo, favorites ...string) *entity.User {
	t.Helper()
	user := &entity.User{
		ID:       "user-1",
		Username: "alice",
		Email:    "alice@example.com",
		Favorites: entity.Favorites{
			DestinationTypes: favorites,
		},
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func TestRecommend_NoFavoritesSet(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo)
	uc := NewRecommendationUsecase(userRepo, newFakeDestRepo(), nil, nopLogger{})

	_, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRecommend_UnknownUser(t *testing.T) {
	uc := NewRecommendationUsecase(newFakeUserRepo(), newFakeDestRepo(), nil, nopLogger{})

	_, err := uc.Recommend(context.Background(), "ghost", usecasecontract.RecommendationFilter{})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRecommend_SamplesFromFavoriteCollections(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "beaches", "city")

	destRepo := newFakeDestRepo()
	destRepo.add(entity.DestinationBeaches, entity.Destination{ID: 1, Name: "Langano", Country: "Ethiopia"})
	destRepo.add(entity.DestinationCity, entity.Destination{ID: 2, Name: "Addis Ababa", Country: "Ethiopia"})
	destRepo.add(entity.DestinationAdventure, entity.Destination{ID: 3, Name: "Danakil", Country: "Ethiopia"})

	uc := NewRecommendationUsecase(userRepo, destRepo, nil, nopLogger{})

	results, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, d := range results {
		// only favorite collections contribute
		assert.NotEqual(t, entity.DestinationAdventure, d.Collection)
		assert.NotEmpty(t, d.Collection)
	}
}

func TestRecommend_DeduplicatesRepeatedCategories(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "beaches", "Beaches")

	destRepo := newFakeDestRepo()
	destRepo.add(entity.DestinationBeaches, entity.Destination{ID: 1, Name: "Langano", Country: "Ethiopia"})

	uc := NewRecommendationUsecase(userRepo, destRepo, nil, nopLogger{})

	results, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRecommend_SkipsUnknownCategory(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "volcanoes", "beaches")

	destRepo := newFakeDestRepo()
	destRepo.add(entity.DestinationBeaches, entity.Destination{ID: 1, Name: "Langano", Country: "Ethiopia"})

	uc := NewRecommendationUsecase(userRepo, destRepo, nil, nopLogger{})

	results, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRecommend_NoMatchesNotFound(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "beaches")

	uc := NewRecommendationUsecase(userRepo, newFakeDestRepo(), nil, nopLogger{})

	_, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRecommend_CountryFilterNarrowsResults(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "beaches")

	destRepo := newFakeDestRepo()
	destRepo.add(entity.DestinationBeaches, entity.Destination{ID: 1, Name: "Langano", Country: "Ethiopia"})
	destRepo.add(entity.DestinationBeaches, entity.Destination{ID: 2, Name: "Diani", Country: "Kenya"})

	uc := NewRecommendationUsecase(userRepo, destRepo, nil, nopLogger{})

	results, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{
		Field: "country",
		Value: "Kenya",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Diani", results[0].Name)
}

func TestRecommend_FilterValueRequiredWhenFieldSet(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "beaches")

	uc := NewRecommendationUsecase(userRepo, newFakeDestRepo(), nil, nopLogger{})

	_, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{Field: "country"})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRecommend_UnsupportedFilterField(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "beaches")

	uc := NewRecommendationUsecase(userRepo, newFakeDestRepo(), nil, nopLogger{})

	_, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{
		Field: "altitude",
		Value: "high",
	})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRecommend_TypeFilterRestrictsCollections(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "beaches", "city")

	destRepo := newFakeDestRepo()
	destRepo.add(entity.DestinationBeaches, entity.Destination{ID: 1, Name: "Langano", Country: "Ethiopia"})
	destRepo.add(entity.DestinationCity, entity.Destination{ID: 2, Name: "Addis Ababa", Country: "Ethiopia"})

	uc := NewRecommendationUsecase(userRepo, destRepo, nil, nopLogger{})

	results, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{
		Field: "type",
		Value: "city",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.DestinationCity, results[0].Collection)
}

func TestRecommend_ServesFromCache(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "beaches")

	cache := newFakeRecCache()
	cached := []entity.Destination{{ID: 99, Name: "Cached Beach", Country: "Ethiopia"}}
	key := store.Key("user-1", "", "", "")
	require.NoError(t, cache.Set(context.Background(), key, cached))

	// empty dest repo: a miss would surface as not-found
	uc := NewRecommendationUsecase(userRepo, newFakeDestRepo(), cache, nopLogger{})

	results, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{})
	require.NoError(t, err)
	assert.Equal(t, cached, results)
}

func TestRecommend_PopulatesCacheOnMiss(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedRecommendationUser(t, userRepo, "beaches")

	destRepo := newFakeDestRepo()
	destRepo.add(entity.DestinationBeaches, entity.Destination{ID: 1, Name: "Langano", Country: "Ethiopia"})

	cache := newFakeRecCache()
	uc := NewRecommendationUsecase(userRepo, destRepo, cache, nopLogger{})

	results, err := uc.Recommend(context.Background(), "user-1", usecasecontract.RecommendationFilter{Month: "june"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	key := store.Key("user-1", "june", "", "")
	stored, ok, err := cache.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, results, stored)
}
