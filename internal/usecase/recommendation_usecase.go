package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
	"github.com/voyago/voyago/internal/infrastructure/store"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// perCollectionLimit caps how many destinations one collection contributes
// to a recommendation set.
const perCollectionLimit = 10

// RecommendationUsecase implements the IRecommendationUseCase interface.
type RecommendationUsecase struct {
	userRepo contract.IUserRepository
	destRepo contract.IDestinationRepository
	cache    contract.IRecommendationCache
	logger   usecasecontract.IAppLogger
}

func NewRecommendationUsecase(
	userRepo contract.IUserRepository,
	destRepo contract.IDestinationRepository,
	cache contract.IRecommendationCache,
	logger usecasecontract.IAppLogger,
) *RecommendationUsecase {
	return &RecommendationUsecase{
		userRepo: userRepo,
		destRepo: destRepo,
		cache:    cache,
		logger:   logger,
	}
}

// check if RecommendationUsecase implements the IRecommendationUseCase
var _ usecasecontract.IRecommendationUseCase = (*RecommendationUsecase)(nil)

// Recommend samples destinations from the collections named by the user's
// favorite categories, optionally narrowed by month or one search field.
func (uc *RecommendationUsecase) Recommend(ctx context.Context, userID string, filter usecasecontract.RecommendationFilter) ([]entity.Destination, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user for recommendations: %v", err)
		return nil, fmt.Errorf("%w: recommendation failed", entity.ErrInternal)
	}

	categories := user.Favorites.DestinationTypes
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no favorite categories set, update favorites first", entity.ErrValidation)
	}

	search, err := buildRecommendationSearch(filter)
	if err != nil {
		return nil, err
	}

	cacheKey := ""
	if uc.cache != nil {
		cacheKey = store.Key(userID, filter.Month, filter.Field, filter.Value)
		if cached, ok, err := uc.cache.Get(ctx, cacheKey); err == nil && ok {
			return cached, nil
		}
	}

	seen := make(map[string]struct{})
	var results []entity.Destination
	for _, raw := range categories {
		t := entity.DestinationType(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", "_")))
		if !entity.ValidDestinationType(t) {
			uc.logger.Warnf("skipping unknown favorite category %q for user %s", raw, userID)
			continue
		}
		if filter.Field == "type" && !strings.EqualFold(filter.Value, string(t)) {
			continue
		}

		sampled, err := uc.destRepo.Sample(ctx, t, search, filter.Month, perCollectionLimit)
		if err != nil {
			uc.logger.Errorf("failed to sample %s destinations: %v", t, err)
			return nil, fmt.Errorf("%w: recommendation failed", entity.ErrInternal)
		}
		for _, d := range sampled {
			key := fmt.Sprintf("%s:%d", t, d.ID)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			d.Collection = t
			results = append(results, d)
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no destinations match your favorites", entity.ErrNotFound)
	}

	rand.Shuffle(len(results), func(i, j int) {
		results[i], results[j] = results[j], results[i]
	})

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKey, results); err != nil {
			uc.logger.Warnf("failed to cache recommendations for user %s: %v", userID, err)
		}
	}

	return results, nil
}

// buildRecommendationSearch maps the optional field/value pair onto a
// destination search. "type" is handled by the caller as a collection
// restriction rather than a document filter.
func buildRecommendationSearch(filter usecasecontract.RecommendationFilter) (contract.DestinationSearch, error) {
	var search contract.DestinationSearch
	if filter.Field == "" {
		return search, nil
	}
	if filter.Value == "" {
		return search, fmt.Errorf("%w: filter value is required when field is set", entity.ErrValidation)
	}
	switch filter.Field {
	case "name":
		search.Name = filter.Value
	case "country":
		search.Country = filter.Value
	case "region":
		search.Region = filter.Value
	case "type":
		// collection restriction, no document-level filter
	default:
		return search, fmt.Errorf("%w: unsupported filter field %q", entity.ErrValidation, filter.Field)
	}
	return search, nil
}
