package mocks

import (
	"context"
	"fmt"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// MockDestinationUsecase is a mock implementation of the IDestinationUseCase
// interface. Unknown collection types fail the way the real usecase does.
type MockDestinationUsecase struct {
	ShouldFailCreate bool
	ShouldFailGet    bool
	ShouldFailList   bool
	ShouldFailUpdate bool
	ShouldFailDelete bool

	// Captured arguments
	LastCollectionType string
	LastSearch         contract.DestinationSearch

	MockDestination entity.Destination
	DeletedFrom     entity.DestinationType
}

var _ usecasecontract.IDestinationUseCase = (*MockDestinationUsecase)(nil)

func NewMockDestinationUsecase() *MockDestinationUsecase {
	return &MockDestinationUsecase{
		MockDestination: entity.Destination{
			ID:      42,
			Name:    "Lalibela",
			Country: "Ethiopia",
			Region:  "Amhara",
		},
		DeletedFrom: entity.DestinationAdventure,
	}
}

func (m *MockDestinationUsecase) checkType(collectionType string) error {
	m.LastCollectionType = collectionType
	if collectionType == "" {
		return nil
	}
	if !entity.ValidDestinationType(entity.DestinationType(collectionType)) {
		return fmt.Errorf("%w: unknown destination collection %q", entity.ErrValidation, collectionType)
	}
	return nil
}

func (m *MockDestinationUsecase) Create(ctx context.Context, collectionType string, d *entity.Destination) (*entity.Destination, error) {
	if err := m.checkType(collectionType); err != nil {
		return nil, err
	}
	if m.ShouldFailCreate {
		return nil, fmt.Errorf("%w: failed to create destination", entity.ErrInternal)
	}
	return d, nil
}

func (m *MockDestinationUsecase) GetByID(ctx context.Context, collectionType string, id int64) (*entity.Destination, error) {
	if err := m.checkType(collectionType); err != nil {
		return nil, err
	}
	if m.ShouldFailGet {
		return nil, fmt.Errorf("%w: destination %d not found", entity.ErrNotFound, id)
	}
	return &m.MockDestination, nil
}

func (m *MockDestinationUsecase) ListAll(ctx context.Context) ([]entity.Destination, error) {
	if m.ShouldFailList {
		return nil, fmt.Errorf("%w: failed to list destinations", entity.ErrInternal)
	}
	return []entity.Destination{m.MockDestination}, nil
}

func (m *MockDestinationUsecase) ListByType(ctx context.Context, collectionType string) ([]entity.Destination, error) {
	if err := m.checkType(collectionType); err != nil {
		return nil, err
	}
	if m.ShouldFailList {
		return nil, fmt.Errorf("%w: failed to list destinations", entity.ErrInternal)
	}
	return []entity.Destination{m.MockDestination}, nil
}

func (m *MockDestinationUsecase) Search(ctx context.Context, collectionType string, q contract.DestinationSearch) ([]entity.Destination, error) {
	if err := m.checkType(collectionType); err != nil {
		return nil, err
	}
	m.LastSearch = q
	return []entity.Destination{m.MockDestination}, nil
}

func (m *MockDestinationUsecase) SearchByMonth(ctx context.Context, collectionType, month string) ([]entity.Destination, error) {
	if err := m.checkType(collectionType); err != nil {
		return nil, err
	}
	if month == "" {
		return nil, fmt.Errorf("%w: month is required", entity.ErrValidation)
	}
	return []entity.Destination{m.MockDestination}, nil
}

func (m *MockDestinationUsecase) Update(ctx context.Context, collectionType string, id int64, d *entity.Destination) (*entity.Destination, error) {
	if err := m.checkType(collectionType); err != nil {
		return nil, err
	}
	if m.ShouldFailUpdate {
		return nil, fmt.Errorf("%w: destination %d not found", entity.ErrNotFound, id)
	}
	return d, nil
}

func (m *MockDestinationUsecase) Delete(ctx context.Context, collectionType string, id int64) (entity.DestinationType, error) {
	if err := m.checkType(collectionType); err != nil {
		return "", err
	}
	if m.ShouldFailDelete {
		return "", fmt.Errorf("%w: destination %d not found in any collection", entity.ErrNotFound, id)
	}
	return m.DeletedFrom, nil
}
