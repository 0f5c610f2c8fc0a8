package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyago/voyago/internal/domain/entity"
)

func newTripUsecaseForTest() (*TripUsecase, *fakeTripRepo) {
	repo := newFakeTripRepo()
	return NewTripUsecase(repo, &fakeUUIDGen{}, nopLogger{}), repo
}

func validTrip() *entity.Trip {
	return &entity.Trip{
		Name:          "Bale Mountains Trek",
		Location:      "Bale, Ethiopia",
		Days:          5,
		Budget:        800,
		Rating:        4.5,
		Health:        entity.HealthGood,
		ActivityLevel: entity.ActivityHigh,
		SafetyRating:  4,
	}
}

func TestTripCreate_AssignsIDAndTimestamps(t *testing.T) {
	uc, repo := newTripUsecaseForTest()

	created, err := uc.Create(context.Background(), "domestic", validTrip())
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	stored, err := repo.GetByID(context.Background(), entity.TripDomestic, "uuid-1")
	require.NoError(t, err)
	assert.Equal(t, "Bale Mountains Trek", stored.Name)
}

func TestTripCreate_KeepsProvidedID(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	trip := validTrip()
	trip.ID = "trip-77"
	created, err := uc.Create(context.Background(), "foreign", trip)
	require.NoError(t, err)
	assert.Equal(t, "trip-77", created.ID)
}

func TestTripCreate_UnknownKind(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	_, err := uc.Create(context.Background(), "interplanetary", validTrip())
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestTripCreate_RejectsNonPositiveDays(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	trip := validTrip()
	trip.Days = 0
	_, err := uc.Create(context.Background(), "domestic", trip)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestTripCreate_RejectsBadEnums(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	trip := validTrip()
	trip.Health = "excellent"
	_, err := uc.Create(context.Background(), "domestic", trip)
	assert.ErrorIs(t, err, entity.ErrValidation)

	trip = validTrip()
	trip.ActivityLevel = "extreme"
	_, err = uc.Create(context.Background(), "domestic", trip)
	assert.ErrorIs(t, err, entity.ErrValidation)

	trip = validTrip()
	trip.Rating = 6
	_, err = uc.Create(context.Background(), "domestic", trip)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestTripFind_EmptyFilterListsAll(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	for range [3]struct{}{} {
		trip := validTrip()
		trip.ID = ""
		_, err := uc.Create(context.Background(), "domestic", trip)
		require.NoError(t, err)
	}

	trips, err := uc.Find(context.Background(), "domestic", entity.TripFilter{})
	require.NoError(t, err)
	assert.Len(t, trips, 3)
}

func TestTripFind_FilterFieldsMatchIndependently(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	cheap := validTrip()
	cheap.Budget = 300
	_, err := uc.Create(context.Background(), "domestic", cheap)
	require.NoError(t, err)

	long := validTrip()
	long.Budget = 5000
	long.Days = 14
	_, err = uc.Create(context.Background(), "domestic", long)
	require.NoError(t, err)

	budget := 300.0
	days := 14
	trips, err := uc.Find(context.Background(), "domestic", entity.TripFilter{Budget: &budget, Days: &days})
	require.NoError(t, err)
	// either constraint alone qualifies a trip: union, not intersection
	assert.Len(t, trips, 2)
}

func TestTripFind_InvalidHealthFilter(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	bad := entity.HealthTolerance("superb")
	_, err := uc.Find(context.Background(), "domestic", entity.TripFilter{Health: &bad})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestTripFind_HealthFilterCaseInsensitive(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	_, err := uc.Create(context.Background(), "domestic", validTrip())
	require.NoError(t, err)

	health := entity.HealthTolerance("Good")
	trips, err := uc.Find(context.Background(), "domestic", entity.TripFilter{Health: &health})
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestTripFind_KindsAreSeparate(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	_, err := uc.Create(context.Background(), "domestic", validTrip())
	require.NoError(t, err)

	trips, err := uc.Find(context.Background(), "foreign", entity.TripFilter{})
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestTripUpdate_NotFound(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	_, err := uc.Update(context.Background(), "foreign", "missing", validTrip())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestTripDelete(t *testing.T) {
	uc, _ := newTripUsecaseForTest()

	created, err := uc.Create(context.Background(), "domestic", validTrip())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), "domestic", created.ID))
	err = uc.Delete(context.Background(), "domestic", created.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
