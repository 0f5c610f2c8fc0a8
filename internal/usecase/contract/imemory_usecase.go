package usecasecontract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/entity"
)

// IMemoryUseCase defines trip journal operations, always scoped to the
// authenticated owner.
type IMemoryUseCase interface {
	Create(ctx context.Context, userID string, memory *entity.Memory) (*entity.Memory, error)
	GetByID(ctx context.Context, userID, id string) (*entity.Memory, error)
	List(ctx context.Context, userID, tripID string) ([]entity.Memory, error)
	Update(ctx context.Context, userID, id string, updates map[string]interface{}) (*entity.Memory, error)
	Delete(ctx context.Context, userID, id string) error
	ToggleLike(ctx context.Context, userID, id string) (*entity.Memory, error)
	ToggleSave(ctx context.Context, userID, id string) (*entity.Memory, error)
}
