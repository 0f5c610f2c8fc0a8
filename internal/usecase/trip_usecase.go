package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// TripUsecase implements the ITripUseCase interface.
type TripUsecase struct {
	tripRepo      contract.ITripRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

func NewTripUsecase(tripRepo contract.ITripRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *TripUsecase {
	return &TripUsecase{tripRepo: tripRepo, uuidGenerator: uuidGenerator, logger: logger}
}

// check if TripUsecase implements the ITripUseCase
var _ usecasecontract.ITripUseCase = (*TripUsecase)(nil)

func resolveKind(kind string) (entity.TripKind, error) {
	k := entity.TripKind(strings.ToLower(strings.TrimSpace(kind)))
	if !entity.ValidTripKind(k) {
		return "", fmt.Errorf("%w: unknown trip kind %q", entity.ErrValidation, kind)
	}
	return k, nil
}

func validateTrip(trip *entity.Trip) error {
	if trip.Name == "" || trip.Location == "" {
		return fmt.Errorf("%w: name and location are required", entity.ErrValidation)
	}
	if trip.Days <= 0 {
		return fmt.Errorf("%w: days must be positive", entity.ErrValidation)
	}
	if trip.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", entity.ErrValidation)
	}
	if trip.Health != "" && !entity.ValidHealthTolerance(trip.Health) {
		return fmt.Errorf("%w: invalid health tolerance %q", entity.ErrValidation, trip.Health)
	}
	if trip.ActivityLevel != "" && !entity.ValidActivityLevel(trip.ActivityLevel) {
		return fmt.Errorf("%w: invalid activity level %q", entity.ErrValidation, trip.ActivityLevel)
	}
	if trip.Rating < 0 || trip.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", entity.ErrValidation)
	}
	if trip.SafetyRating < 0 || trip.SafetyRating > 5 {
		return fmt.Errorf("%w: safety rating must be between 0 and 5", entity.ErrValidation)
	}
	return nil
}

func (uc *TripUsecase) Create(ctx context.Context, kind string, trip *entity.Trip) (*entity.Trip, error) {
	k, err := resolveKind(kind)
	if err != nil {
		return nil, err
	}
	if err := validateTrip(trip); err != nil {
		return nil, err
	}

	if trip.ID == "" {
		trip.ID = uc.uuidGenerator.NewUUID()
	}
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if err := uc.tripRepo.Create(ctx, k, trip); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, fmt.Errorf("%w: trip %s already exists", entity.ErrConflict, trip.ID)
		}
		uc.logger.Errorf("failed to create %s trip: %v", k, err)
		return nil, fmt.Errorf("%w: failed to create trip", entity.ErrInternal)
	}
	return trip, nil
}

func (uc *TripUsecase) GetByID(ctx context.Context, kind, id string) (*entity.Trip, error) {
	k, err := resolveKind(kind)
	if err != nil {
		return nil, err
	}
	trip, err := uc.tripRepo.GetByID(ctx, k, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: trip %s not found", entity.ErrNotFound, id)
		}
		uc.logger.Errorf("failed to get %s trip %s: %v", k, id, err)
		return nil, fmt.Errorf("%w: failed to retrieve trip", entity.ErrInternal)
	}
	return trip, nil
}

// Find lists trips matching the filter. Fields combine with OR semantics so
// a trip qualifies when any one constraint matches.
func (uc *TripUsecase) Find(ctx context.Context, kind string, filter entity.TripFilter) ([]entity.Trip, error) {
	k, err := resolveKind(kind)
	if err != nil {
		return nil, err
	}
	if filter.Health != nil {
		h := entity.HealthTolerance(strings.ToLower(string(*filter.Health)))
		if !entity.ValidHealthTolerance(h) {
			return nil, fmt.Errorf("%w: invalid health tolerance %q", entity.ErrValidation, *filter.Health)
		}
		filter.Health = &h
	}
	trips, err := uc.tripRepo.Find(ctx, k, filter)
	if err != nil {
		uc.logger.Errorf("failed to find %s trips: %v", k, err)
		return nil, fmt.Errorf("%w: failed to list trips", entity.ErrInternal)
	}
	return trips, nil
}

func (uc *TripUsecase) Update(ctx context.Context, kind, id string, trip *entity.Trip) (*entity.Trip, error) {
	k, err := resolveKind(kind)
	if err != nil {
		return nil, err
	}
	if err := validateTrip(trip); err != nil {
		return nil, err
	}
	trip.UpdatedAt = time.Now()

	updated, err := uc.tripRepo.Update(ctx, k, id, trip)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: trip %s not found", entity.ErrNotFound, id)
		}
		uc.logger.Errorf("failed to update %s trip %s: %v", k, id, err)
		return nil, fmt.Errorf("%w: failed to update trip", entity.ErrInternal)
	}
	return updated, nil
}

func (uc *TripUsecase) Delete(ctx context.Context, kind, id string) error {
	k, err := resolveKind(kind)
	if err != nil {
		return err
	}
	if err := uc.tripRepo.Delete(ctx, k, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%w: trip %s not found", entity.ErrNotFound, id)
		}
		uc.logger.Errorf("failed to delete %s trip %s: %v", k, id, err)
		return fmt.Errorf("%w: failed to delete trip", entity.ErrInternal)
	}
	return nil
}
