package contract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/entity"
)

// IMemoryRepository persists trip journal entries.
type IMemoryRepository interface {
	Create(ctx context.Context, memory *entity.Memory) error
	GetByID(ctx context.Context, id string) (*entity.Memory, error)
	// ListByUser returns a user's memories newest first, optionally narrowed
	// to one trip.
	ListByUser(ctx context.Context, userID, tripID string) ([]entity.Memory, error)
	Update(ctx context.Context, memory *entity.Memory) (*entity.Memory, error)
	Delete(ctx context.Context, id string) error
}
