package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DestinationRepository maps each of the five fixed destination types to its
// own MongoDB collection.
type DestinationRepository struct {
	collections map[entity.DestinationType]*mongo.Collection
}

var _ contract.IDestinationRepository = (*DestinationRepository)(nil)

func NewDestinationRepository(db *mongo.Database) *DestinationRepository {
	colls := make(map[entity.DestinationType]*mongo.Collection, 5)
	for _, t := range entity.DestinationTypes() {
		colls[t] = db.Collection(string(t))
	}
	return &DestinationRepository{collections: colls}
}

func (r *DestinationRepository) collection(t entity.DestinationType) (*mongo.Collection, error) {
	coll, ok := r.collections[t]
	if !ok {
		return nil, fmt.Errorf("%w: invalid collection type: %s", entity.ErrValidation, t)
	}
	return coll, nil
}

// buildSearchFilter turns the optional substring fields into a
// case-insensitive regex filter.
func buildSearchFilter(q contract.DestinationSearch) bson.M {
	filter := bson.M{}
	if q.Name != "" {
		filter["name"] = primitive.Regex{Pattern: q.Name, Options: "i"}
	}
	if q.Country != "" {
		filter["country"] = primitive.Regex{Pattern: q.Country, Options: "i"}
	}
	if q.Region != "" {
		filter["region"] = primitive.Regex{Pattern: q.Region, Options: "i"}
	}
	return filter
}

func (r *DestinationRepository) Create(ctx context.Context, t entity.DestinationType, d *entity.Destination) error {
	coll, err := r.collection(t)
	if err != nil {
		return err
	}
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()
	if _, err := coll.InsertOne(ctx, d); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: destination id %d already exists in %s", entity.ErrConflict, d.ID, t)
		}
		return err
	}
	return nil
}

func (r *DestinationRepository) GetByID(ctx context.Context, t entity.DestinationType, id int64) (*entity.Destination, error) {
	coll, err := r.collection(t)
	if err != nil {
		return nil, err
	}
	var d entity.Destination
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: no record found with ID %d", entity.ErrNotFound, id)
		}
		return nil, err
	}
	return &d, nil
}

func (r *DestinationRepository) ListByType(ctx context.Context, t entity.DestinationType) ([]entity.Destination, error) {
	return r.find(ctx, t, bson.M{}, nil)
}

// ListAll merges all five collections in fixed order, tagging each document
// with its collection of origin.
func (r *DestinationRepository) ListAll(ctx context.Context) ([]entity.Destination, error) {
	var all []entity.Destination
	for _, t := range entity.DestinationTypes() {
		docs, err := r.find(ctx, t, bson.M{}, nil)
		if err != nil {
			return nil, err
		}
		for i := range docs {
			docs[i].Collection = t
		}
		all = append(all, docs...)
	}
	return all, nil
}

func (r *DestinationRepository) Search(ctx context.Context, t entity.DestinationType, q contract.DestinationSearch) ([]entity.Destination, error) {
	return r.find(ctx, t, buildSearchFilter(q), nil)
}

func (r *DestinationRepository) SearchByMonth(ctx context.Context, t entity.DestinationType, month string) ([]entity.Destination, error) {
	filter := bson.M{"best_time_to_visit": primitive.Regex{Pattern: month, Options: "i"}}
	return r.find(ctx, t, filter, nil)
}

// Sample returns up to limit matching documents, used by recommendations.
func (r *DestinationRepository) Sample(ctx context.Context, t entity.DestinationType, q contract.DestinationSearch, month string, limit int64) ([]entity.Destination, error) {
	filter := buildSearchFilter(q)
	if month != "" {
		filter["best_time_to_visit"] = primitive.Regex{Pattern: month, Options: "i"}
	}
	opts := options.Find().SetLimit(limit)
	docs, err := r.find(ctx, t, filter, opts)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].Collection = t
	}
	return docs, nil
}

func (r *DestinationRepository) find(ctx context.Context, t entity.DestinationType, filter bson.M, opts *options.FindOptions) ([]entity.Destination, error) {
	coll, err := r.collection(t)
	if err != nil {
		return nil, err
	}
	var cursor *mongo.Cursor
	if opts != nil {
		cursor, err = coll.Find(ctx, filter, opts)
	} else {
		cursor, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []entity.Destination
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *DestinationRepository) Update(ctx context.Context, t entity.DestinationType, id int64, d *entity.Destination) (*entity.Destination, error) {
	coll, err := r.collection(t)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"name":                 d.Name,
		"country":              d.Country,
		"region":               d.Region,
		"type":                 d.Type,
		"description":          d.Description,
		"best_time_to_visit":   d.BestTimeToVisit,
		"average_cost_per_day": d.AverageCostPerDay,
		"currency":             d.Currency,
		"image_url":            d.ImageURL,
		"visa_requirements":    d.VisaRequirements,
		"safety_rating":        d.SafetyRating,
		"updated_at":           time.Now(),
	}}
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated entity.Destination
	err = coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: no record found with ID %d", entity.ErrNotFound, id)
		}
		return nil, err
	}
	return &updated, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, t entity.DestinationType, id int64) error {
	coll, err := r.collection(t)
	if err != nil {
		return err
	}
	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: no record found with ID %d in %s", entity.ErrNotFound, id, t)
	}
	return nil
}
