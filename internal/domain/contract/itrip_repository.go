package contract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/entity"
)

// ITripRepository persists the domestic and foreign trip collections.
type ITripRepository interface {
	Create(ctx context.Context, kind entity.TripKind, trip *entity.Trip) error
	GetByID(ctx context.Context, kind entity.TripKind, id string) (*entity.Trip, error)
	// Find returns trips matching the filter. Filter fields combine with OR
	// semantics; an empty filter lists the whole collection.
	Find(ctx context.Context, kind entity.TripKind, filter entity.TripFilter) ([]entity.Trip, error)
	Update(ctx context.Context, kind entity.TripKind, id string, trip *entity.Trip) (*entity.Trip, error)
	Delete(ctx context.Context, kind entity.TripKind, id string) error
}
