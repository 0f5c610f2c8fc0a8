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

type MemoryRepository struct {
	collection *mongo.Collection
}

var _ contract.IMemoryRepository = (*MemoryRepository)(nil)

func NewMemoryRepository(collection *mongo.Collection) *MemoryRepository {
	return &MemoryRepository{collection: collection}
}

func (r *MemoryRepository) Create(ctx context.Context, memory *entity.Memory) error {
	memory.CreatedAt = time.Now()
	memory.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, memory)
	return err
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*entity.Memory, error) {
	var memory entity.Memory
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&memory)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: memory not found", entity.ErrNotFound)
		}
		return nil, err
	}
	return &memory, nil
}

// ListByUser returns a user's memories newest first, optionally narrowed to
// one trip.
func (r *MemoryRepository) ListByUser(ctx context.Context, userID, tripID string) ([]entity.Memory, error) {
	filter := bson.M{"user_id": userID}
	if tripID != "" {
		filter["trip_id"] = tripID
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memories []entity.Memory
	if err := cursor.All(ctx, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

func (r *MemoryRepository) Update(ctx context.Context, memory *entity.Memory) (*entity.Memory, error) {
	memory.UpdatedAt = time.Now()
	filter := bson.M{"_id": memory.ID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": memory})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: memory not found", entity.ErrNotFound)
	}
	var updated entity.Memory
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: memory not found", entity.ErrNotFound)
	}
	return nil
}
