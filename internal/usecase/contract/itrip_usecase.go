package usecasecontract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/entity"
)

// ITripUseCase defines operations over the domestic and foreign trip
// collections.
type ITripUseCase interface {
	Create(ctx context.Context, kind string, trip *entity.Trip) (*entity.Trip, error)
	GetByID(ctx context.Context, kind, id string) (*entity.Trip, error)
	// Find lists trips matching the filter with OR semantics across fields.
	Find(ctx context.Context, kind string, filter entity.TripFilter) ([]entity.Trip, error)
	Update(ctx context.Context, kind, id string, trip *entity.Trip) (*entity.Trip, error)
	Delete(ctx context.Context, kind, id string) error
}
