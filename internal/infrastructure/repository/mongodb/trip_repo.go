package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TripRepository maps the two trip kinds onto their collections.
type TripRepository struct {
	domestic *mongo.Collection
	foreign  *mongo.Collection
}

var _ contract.ITripRepository = (*TripRepository)(nil)

func NewTripRepository(db *mongo.Database) *TripRepository {
	return &TripRepository{
		domestic: db.Collection("domesticTrips"),
		foreign:  db.Collection("foreignTrips"),
	}
}

func (r *TripRepository) collection(kind entity.TripKind) (*mongo.Collection, error) {
	switch kind {
	case entity.TripDomestic:
		return r.domestic, nil
	case entity.TripForeign:
		return r.foreign, nil
	}
	return nil, fmt.Errorf("%w: invalid trip kind: %s", entity.ErrValidation, kind)
}

// buildTripFilter combines the set fields with $or: a trip matching any one
// field matches the query. An empty filter lists the whole collection.
func buildTripFilter(f entity.TripFilter) bson.M {
	var or []bson.M
	if f.Budget != nil {
		or = append(or, bson.M{"budget": *f.Budget})
	}
	if f.Health != nil {
		or = append(or, bson.M{"health": *f.Health})
	}
	if f.Age != nil {
		or = append(or, bson.M{"age": *f.Age})
	}
	if f.Days != nil {
		or = append(or, bson.M{"days": *f.Days})
	}
	if len(or) == 0 {
		return bson.M{}
	}
	return bson.M{"$or": or}
}

func (r *TripRepository) Create(ctx context.Context, kind entity.TripKind, trip *entity.Trip) error {
	coll, err := r.collection(kind)
	if err != nil {
		return err
	}
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()
	if _, err := coll.InsertOne(ctx, trip); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: trip id %s already exists", entity.ErrConflict, trip.ID)
		}
		return err
	}
	return nil
}

func (r *TripRepository) GetByID(ctx context.Context, kind entity.TripKind, id string) (*entity.Trip, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	var trip entity.Trip
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: trip not found", entity.ErrNotFound)
		}
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) Find(ctx context.Context, kind entity.TripKind, filter entity.TripFilter) ([]entity.Trip, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, buildTripFilter(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []entity.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) Update(ctx context.Context, kind entity.TripKind, id string, trip *entity.Trip) (*entity.Trip, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"name":          trip.Name,
		"location":      trip.Location,
		"days":          trip.Days,
		"budget":        trip.Budget,
		"rating":        trip.Rating,
		"image":         trip.Image,
		"health":        trip.Health,
		"age":           trip.Age,
		"bestSeason":    trip.BestSeason,
		"transport":     trip.Transport,
		"activityLevel": trip.ActivityLevel,
		"safetyRating":  trip.SafetyRating,
		"updated_at":    time.Now(),
	}}
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated entity.Trip
	err = coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: trip not found", entity.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

func (r *TripRepository) Delete(ctx context.Context, kind entity.TripKind, id string) error {
	coll, err := r.collection(kind)
	if err != nil {
		return err
	}
	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: trip not found", entity.ErrNotFound)
	}
	return nil
}
