package mocks

import (
	"context"
	"fmt"

	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// MockMemoryUsecase is a mock implementation of the IMemoryUseCase
// interface. With OwnerID set, requests from any other user are forbidden.
type MockMemoryUsecase struct {
	ShouldFailCreate bool
	ShouldFailGet    bool
	ShouldFailList   bool
	ShouldFailUpdate bool
	ShouldFailDelete bool

	OwnerID string

	MockMemory entity.Memory
}

var _ usecasecontract.IMemoryUseCase = (*MockMemoryUsecase)(nil)

func NewMockMemoryUsecase() *MockMemoryUsecase {
	return &MockMemoryUsecase{
		MockMemory: entity.Memory{
			ID:      "mock-memory-id",
			UserID:  "mock-user-id",
			Title:   "Sunset at the Rift Valley",
			Type:    entity.MemoryPhoto,
			Privacy: entity.PrivacyPrivate,
		},
	}
}

func (m *MockMemoryUsecase) checkOwner(userID string) error {
	if m.OwnerID != "" && userID != m.OwnerID {
		return fmt.Errorf("%w: memory belongs to another user", entity.ErrForbidden)
	}
	return nil
}

func (m *MockMemoryUsecase) Create(ctx context.Context, userID string, memory *entity.Memory) (*entity.Memory, error) {
	if m.ShouldFailCreate {
		return nil, fmt.Errorf("%w: failed to create memory", entity.ErrInternal)
	}
	memory.UserID = userID
	return memory, nil
}

func (m *MockMemoryUsecase) GetByID(ctx context.Context, userID, id string) (*entity.Memory, error) {
	if err := m.checkOwner(userID); err != nil {
		return nil, err
	}
	if m.ShouldFailGet {
		return nil, fmt.Errorf("%w: memory %s not found", entity.ErrNotFound, id)
	}
	return &m.MockMemory, nil
}

func (m *MockMemoryUsecase) List(ctx context.Context, userID, tripID string) ([]entity.Memory, error) {
	if m.ShouldFailList {
		return nil, fmt.Errorf("%w: failed to list memories", entity.ErrInternal)
	}
	return []entity.Memory{m.MockMemory}, nil
}

func (m *MockMemoryUsecase) Update(ctx context.Context, userID, id string, updates map[string]interface{}) (*entity.Memory, error) {
	if err := m.checkOwner(userID); err != nil {
		return nil, err
	}
	if m.ShouldFailUpdate {
		return nil, fmt.Errorf("%w: memory %s not found", entity.ErrNotFound, id)
	}
	return &m.MockMemory, nil
}

func (m *MockMemoryUsecase) Delete(ctx context.Context, userID, id string) error {
	if err := m.checkOwner(userID); err != nil {
		return err
	}
	if m.ShouldFailDelete {
		return fmt.Errorf("%w: memory %s not found", entity.ErrNotFound, id)
	}
	return nil
}

func (m *MockMemoryUsecase) ToggleLike(ctx context.Context, userID, id string) (*entity.Memory, error) {
	if err := m.checkOwner(userID); err != nil {
		return nil, err
	}
	memory := m.MockMemory
	memory.IsLiked = !memory.IsLiked
	if memory.IsLiked {
		memory.Likes++
	}
	return &memory, nil
}

func (m *MockMemoryUsecase) ToggleSave(ctx context.Context, userID, id string) (*entity.Memory, error) {
	if err := m.checkOwner(userID); err != nil {
		return nil, err
	}
	memory := m.MockMemory
	memory.IsSaved = !memory.IsSaved
	if memory.IsSaved {
		memory.Saves++
	}
	return &memory, nil
}
