package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// DestinationUsecase implements the IDestinationUseCase interface.
type DestinationUsecase struct {
	destRepo contract.IDestinationRepository
	logger   usecasecontract.IAppLogger
}

func NewDestinationUsecase(destRepo contract.IDestinationRepository, logger usecasecontract.IAppLogger) *DestinationUsecase {
	return &DestinationUsecase{destRepo: destRepo, logger: logger}
}

// check if DestinationUsecase implements the IDestinationUseCase
var _ usecasecontract.IDestinationUseCase = (*DestinationUsecase)(nil)

// resolveType normalizes a client-supplied collection name to one of the
// five fixed destination types.
func resolveType(collectionType string) (entity.DestinationType, error) {
	t := entity.DestinationType(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(collectionType), " ", "_")))
	if !entity.ValidDestinationType(t) {
		return "", fmt.Errorf("%w: unknown destination collection %q", entity.ErrValidation, collectionType)
	}
	return t, nil
}

func (uc *DestinationUsecase) Create(ctx context.Context, collectionType string, d *entity.Destination) (*entity.Destination, error) {
	t, err := resolveType(collectionType)
	if err != nil {
		return nil, err
	}
	if d.Name == "" || d.Country == "" {
		return nil, fmt.Errorf("%w: name and country are required", entity.ErrValidation)
	}
	if d.ID <= 0 {
		return nil, fmt.Errorf("%w: a positive numeric id is required", entity.ErrValidation)
	}
	if len(d.BestTimeToVisit) == 0 {
		return nil, fmt.Errorf("%w: at least one best-time-to-visit month is required", entity.ErrValidation)
	}
	if d.SafetyRating < 1 || d.SafetyRating > 10 {
		return nil, fmt.Errorf("%w: safety rating must be between 1 and 10", entity.ErrValidation)
	}

	if err := uc.destRepo.Create(ctx, t, d); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, fmt.Errorf("%w: destination id %d already exists in %s", entity.ErrConflict, d.ID, t)
		}
		uc.logger.Errorf("failed to create destination in %s: %v", t, err)
		return nil, fmt.Errorf("%w: failed to create destination", entity.ErrInternal)
	}
	d.Collection = t
	return d, nil
}

func (uc *DestinationUsecase) GetByID(ctx context.Context, collectionType string, id int64) (*entity.Destination, error) {
	t, err := resolveType(collectionType)
	if err != nil {
		return nil, err
	}
	d, err := uc.destRepo.GetByID(ctx, t, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: destination %d not found in %s", entity.ErrNotFound, id, t)
		}
		uc.logger.Errorf("failed to get destination %d from %s: %v", id, t, err)
		return nil, fmt.Errorf("%w: failed to retrieve destination", entity.ErrInternal)
	}
	d.Collection = t
	return d, nil
}

func (uc *DestinationUsecase) ListAll(ctx context.Context) ([]entity.Destination, error) {
	all, err := uc.destRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list all destinations: %v", err)
		return nil, fmt.Errorf("%w: failed to list destinations", entity.ErrInternal)
	}
	return all, nil
}

func (uc *DestinationUsecase) ListByType(ctx context.Context, collectionType string) ([]entity.Destination, error) {
	t, err := resolveType(collectionType)
	if err != nil {
		return nil, err
	}
	list, err := uc.destRepo.ListByType(ctx, t)
	if err != nil {
		uc.logger.Errorf("failed to list %s destinations: %v", t, err)
		return nil, fmt.Errorf("%w: failed to list destinations", entity.ErrInternal)
	}
	return list, nil
}

func (uc *DestinationUsecase) Search(ctx context.Context, collectionType string, q contract.DestinationSearch) ([]entity.Destination, error) {
	t, err := resolveType(collectionType)
	if err != nil {
		return nil, err
	}
	list, err := uc.destRepo.Search(ctx, t, q)
	if err != nil {
		uc.logger.Errorf("failed to search %s destinations: %v", t, err)
		return nil, fmt.Errorf("%w: search failed", entity.ErrInternal)
	}
	return list, nil
}

func (uc *DestinationUsecase) SearchByMonth(ctx context.Context, collectionType, month string) ([]entity.Destination, error) {
	t, err := resolveType(collectionType)
	if err != nil {
		return nil, err
	}
	if month == "" {
		return nil, fmt.Errorf("%w: month is required", entity.ErrValidation)
	}
	list, err := uc.destRepo.SearchByMonth(ctx, t, month)
	if err != nil {
		uc.logger.Errorf("failed to search %s destinations by month: %v", t, err)
		return nil, fmt.Errorf("%w: search failed", entity.ErrInternal)
	}
	return list, nil
}

func (uc *DestinationUsecase) Update(ctx context.Context, collectionType string, id int64, d *entity.Destination) (*entity.Destination, error) {
	t, err := resolveType(collectionType)
	if err != nil {
		return nil, err
	}
	if d.SafetyRating < 1 || d.SafetyRating > 10 {
		return nil, fmt.Errorf("%w: safety rating must be between 1 and 10", entity.ErrValidation)
	}
	updated, err := uc.destRepo.Update(ctx, t, id, d)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: destination %d not found in %s", entity.ErrNotFound, id, t)
		}
		uc.logger.Errorf("failed to update destination %d in %s: %v", id, t, err)
		return nil, fmt.Errorf("%w: failed to update destination", entity.ErrInternal)
	}
	updated.Collection = t
	return updated, nil
}

// Delete removes a destination by id. When collectionType is empty the five
// collections are scanned in fixed order and the first match wins.
func (uc *DestinationUsecase) Delete(ctx context.Context, collectionType string, id int64) (entity.DestinationType, error) {
	if collectionType != "" {
		t, err := resolveType(collectionType)
		if err != nil {
			return "", err
		}
		if err := uc.destRepo.Delete(ctx, t, id); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return "", fmt.Errorf("%w: destination %d not found in %s", entity.ErrNotFound, id, t)
			}
			uc.logger.Errorf("failed to delete destination %d from %s: %v", id, t, err)
			return "", fmt.Errorf("%w: failed to delete destination", entity.ErrInternal)
		}
		return t, nil
	}

	for _, t := range entity.DestinationTypes() {
		err := uc.destRepo.Delete(ctx, t, id)
		if err == nil {
			return t, nil
		}
		if errors.Is(err, entity.ErrNotFound) {
			continue
		}
		uc.logger.Errorf("failed to delete destination %d from %s: %v", id, t, err)
		return "", fmt.Errorf("%w: failed to delete destination", entity.ErrInternal)
	}
	return "", fmt.Errorf("%w: destination %d not found in any collection", entity.ErrNotFound, id)
}
