package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
)

// RecommendationCacheStore caches per-user recommendation result sets in
// Redis so repeated lookups don't re-scan five collections.
type RecommendationCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IRecommendationCache = (*RecommendationCacheStore)(nil)

func NewRecommendationCacheStore(rdb *redis.Client) *RecommendationCacheStore {
	return &RecommendationCacheStore{
		rdb: rdb,
		ttl: 15 * time.Minute,
	}
}

// Key builds a cache key scoped to one user and one filter shape. Keys share
// the rec:user:<id>: prefix so invalidation can drop them together.
func Key(userID, month, field, value string) string {
	return fmt.Sprintf("rec:user:%s:%s:%s:%s", userID, month, field, value)
}

func userPattern(userID string) string { return fmt.Sprintf("rec:user:%s:*", userID) }

func (c *RecommendationCacheStore) Get(ctx context.Context, key string) ([]entity.Destination, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var destinations []entity.Destination
	if err := json.Unmarshal(b, &destinations); err != nil {
		return nil, false, nil
	}
	return destinations, true, nil
}

func (c *RecommendationCacheStore) Set(ctx context.Context, key string, destinations []entity.Destination) error {
	data, err := json.Marshal(destinations)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// InvalidateUser drops every cached set for one user, called when their
// favorites change.
func (c *RecommendationCacheStore) InvalidateUser(ctx context.Context, userID string) error {
	iter := c.rdb.Scan(ctx, 0, userPattern(userID), 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}
