package mocks

import (
	"context"
	"fmt"

	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// MockTripUsecase is a mock implementation of the ITripUseCase interface.
type MockTripUsecase struct {
	ShouldFailCreate bool
	ShouldFailGet    bool
	ShouldFailFind   bool
	ShouldFailUpdate bool
	ShouldFailDelete bool

	// Captured arguments
	LastKind   string
	LastFilter entity.TripFilter

	MockTrip entity.Trip
}

var _ usecasecontract.ITripUseCase = (*MockTripUsecase)(nil)

func NewMockTripUsecase() *MockTripUsecase {
	return &MockTripUsecase{
		MockTrip: entity.Trip{
			ID:       "mock-trip-id",
			Name:     "Simien Mountains Trek",
			Location: "Gondar",
			Days:     5,
			Budget:   1200,
		},
	}
}

func (m *MockTripUsecase) Create(ctx context.Context, kind string, trip *entity.Trip) (*entity.Trip, error) {
	m.LastKind = kind
	if m.ShouldFailCreate {
		return nil, fmt.Errorf("%w: failed to create trip", entity.ErrInternal)
	}
	return trip, nil
}

func (m *MockTripUsecase) GetByID(ctx context.Context, kind, id string) (*entity.Trip, error) {
	m.LastKind = kind
	if m.ShouldFailGet {
		return nil, fmt.Errorf("%w: trip %s not found", entity.ErrNotFound, id)
	}
	return &m.MockTrip, nil
}

func (m *MockTripUsecase) Find(ctx context.Context, kind string, filter entity.TripFilter) ([]entity.Trip, error) {
	m.LastKind = kind
	m.LastFilter = filter
	if m.ShouldFailFind {
		return nil, fmt.Errorf("%w: failed to list trips", entity.ErrInternal)
	}
	return []entity.Trip{m.MockTrip}, nil
}

func (m *MockTripUsecase) Update(ctx context.Context, kind, id string, trip *entity.Trip) (*entity.Trip, error) {
	m.LastKind = kind
	if m.ShouldFailUpdate {
		return nil, fmt.Errorf("%w: trip %s not found", entity.ErrNotFound, id)
	}
	return trip, nil
}

func (m *MockTripUsecase) Delete(ctx context.Context, kind, id string) error {
	m.LastKind = kind
	if m.ShouldFailDelete {
		return fmt.Errorf("%w: trip %s not found", entity.ErrNotFound, id)
	}
	return nil
}
