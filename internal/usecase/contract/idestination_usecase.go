package usecasecontract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
)

// IDestinationUseCase defines catalog operations over the five fixed
// destination collections.
type IDestinationUseCase interface {
	Create(ctx context.Context, collectionType string, d *entity.Destination) (*entity.Destination, error)
	GetByID(ctx context.Context, collectionType string, id int64) (*entity.Destination, error)
	ListAll(ctx context.Context) ([]entity.Destination, error)
	ListByType(ctx context.Context, collectionType string) ([]entity.Destination, error)
	Search(ctx context.Context, collectionType string, q contract.DestinationSearch) ([]entity.Destination, error)
	SearchByMonth(ctx context.Context, collectionType, month string) ([]entity.Destination, error)
	Update(ctx context.Context, collectionType string, id int64, d *entity.Destination) (*entity.Destination, error)
	// Delete removes a destination by id. With an empty collectionType it
	// scans all five collections in fixed order and deletes the first match.
	Delete(ctx context.Context, collectionType string, id int64) (entity.DestinationType, error)
}
