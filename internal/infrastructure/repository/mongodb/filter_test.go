package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildTripFilter_Empty(t *testing.T) {
	filter := buildTripFilter(entity.TripFilter{})
	assert.Equal(t, bson.M{}, filter)
}

func TestBuildTripFilter_CombinesWithOr(t *testing.T) {
	budget := 500.0
	health := entity.HealthGood
	filter := buildTripFilter(entity.TripFilter{Budget: &budget, Health: &health})

	or, ok := filter["$or"].([]bson.M)
	assert.True(t, ok, "fields must combine with $or, not top-level AND")
	assert.Len(t, or, 2)
	assert.Contains(t, or, bson.M{"budget": 500.0})
	assert.Contains(t, or, bson.M{"health": entity.HealthGood})
}

func TestBuildTripFilter_SingleField(t *testing.T) {
	days := 3
	filter := buildTripFilter(entity.TripFilter{Days: &days})

	or := filter["$or"].([]bson.M)
	assert.Equal(t, []bson.M{{"days": 3}}, or)
}

func TestBuildSearchFilter_CaseInsensitiveRegex(t *testing.T) {
	filter := buildSearchFilter(contract.DestinationSearch{Country: "India", Region: "north"})

	assert.Equal(t, primitive.Regex{Pattern: "India", Options: "i"}, filter["country"])
	assert.Equal(t, primitive.Regex{Pattern: "north", Options: "i"}, filter["region"])
	_, hasName := filter["name"]
	assert.False(t, hasName)
}
