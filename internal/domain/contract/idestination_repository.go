package contract

import (
	"context"

	"github.com/voyago/voyago/internal/domain/entity"
)

// DestinationSearch carries the optional case-insensitive substring filters
// for destination lookups within one collection.
type DestinationSearch struct {
	Name    string
	Country string
	Region  string
}

// IDestinationRepository persists the five fixed destination collections.
type IDestinationRepository interface {
	// Create inserts a destination into the collection named by t.
	Create(ctx context.Context, t entity.DestinationType, d *entity.Destination) error
	// GetByID finds a destination by its numeric id within one collection.
	GetByID(ctx context.Context, t entity.DestinationType, id int64) (*entity.Destination, error)
	// ListByType returns every destination of one collection.
	ListByType(ctx context.Context, t entity.DestinationType) ([]entity.Destination, error)
	// ListAll merges all five collections, tagging each document with its
	// collection of origin.
	ListAll(ctx context.Context) ([]entity.Destination, error)
	// Search filters one collection by name/country/region substrings.
	Search(ctx context.Context, t entity.DestinationType, q DestinationSearch) ([]entity.Destination, error)
	// SearchByMonth filters one collection by best-time-to-visit month.
	SearchByMonth(ctx context.Context, t entity.DestinationType, month string) ([]entity.Destination, error)
	// Sample returns up to limit destinations of one collection matching the
	// optional search, used by recommendations.
	Sample(ctx context.Context, t entity.DestinationType, q DestinationSearch, month string, limit int64) ([]entity.Destination, error)
	// Update replaces the mutable fields of a destination by id.
	Update(ctx context.Context, t entity.DestinationType, id int64, d *entity.Destination) (*entity.Destination, error)
	// Delete removes a destination by id from one collection.
	Delete(ctx context.Context, t entity.DestinationType, id int64) error
}
