package entity

import (
	"time"
)

// TripKind selects one of the two trip collections.
type TripKind string

const (
	TripDomestic TripKind = "domestic"
	TripForeign  TripKind = "foreign"
)

// ValidTripKind reports whether k names a known trip collection.
func ValidTripKind(k TripKind) bool {
	return k == TripDomestic || k == TripForeign
}

// HealthTolerance is the traveller health level a trip is suitable for.
type HealthTolerance string

const (
	HealthGood     HealthTolerance = "good"
	HealthModerate HealthTolerance = "moderate"
	HealthPoor     HealthTolerance = "poor"
)

func ValidHealthTolerance(h HealthTolerance) bool {
	return h == HealthGood || h == HealthModerate || h == HealthPoor
}

// ActivityLevel describes how physically demanding a trip is.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

func ValidActivityLevel(a ActivityLevel) bool {
	return a == ActivityLow || a == ActivityModerate || a == ActivityHigh
}

// Trip is a pre-planned itinerary in the domestic or foreign collection.
type Trip struct {
	ID            string          `bson:"id" json:"id"`
	Name          string          `bson:"name" json:"name"`
	Location      string          `bson:"location" json:"location"`
	Days          int             `bson:"days" json:"days"`
	Budget        float64         `bson:"budget" json:"budget"`
	Rating        float64         `bson:"rating" json:"rating"`
	Image         string          `bson:"image" json:"image"`
	Health        HealthTolerance `bson:"health" json:"health"`
	Age           int             `bson:"age" json:"age"`
	BestSeason    string          `bson:"bestSeason" json:"bestSeason"`
	Transport     string          `bson:"transport" json:"transport"`
	ActivityLevel ActivityLevel   `bson:"activityLevel" json:"activityLevel"`
	SafetyRating  float64         `bson:"safetyRating" json:"safetyRating"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at" json:"updated_at"`
}

// TripFilter carries the optional search fields. Any set field matches on
// its own: the fields combine with OR semantics, not AND.
type TripFilter struct {
	Budget *float64
	Health *HealthTolerance
	Age    *int
	Days   *int
}

// Empty reports whether no filter field is set, meaning list-all.
func (f TripFilter) Empty() bool {
	return f.Budget == nil && f.Health == nil && f.Age == nil && f.Days == nil
}
