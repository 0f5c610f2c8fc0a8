package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

// check in compile time if MongoUserRepository implements IUserRepository
var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: user already exists", entity.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"google_id": googleID})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user and returns the updated user
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.UpdatedAt = time.Now()
	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": user}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: username or email already taken", entity.ErrConflict)
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	var updatedUser entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&updatedUser); err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// AddRefreshToken appends a refresh-token hash to the user's stored set.
func (r *MongoUserRepository) AddRefreshToken(ctx context.Context, userID string, token entity.RefreshToken) error {
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$push": bson.M{"refresh_tokens": token},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	return nil
}

// RemoveRefreshToken pulls one refresh-token hash from the stored set.
func (r *MongoUserRepository) RemoveRefreshToken(ctx context.Context, userID, tokenHash string) error {
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$pull": bson.M{"refresh_tokens": bson.M{"token_hash": tokenHash}},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// ReplaceRefreshTokens swaps the whole stored set, used by refresh rotation
// to drop the consumed hash along with any expired ones.
func (r *MongoUserRepository) ReplaceRefreshTokens(ctx context.Context, userID string, tokens []entity.RefreshToken) error {
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$set": bson.M{"refresh_tokens": tokens, "updated_at": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	count, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if count.DeletedCount == 0 {
		return fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	return nil
}
