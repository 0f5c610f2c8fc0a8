package entity

import (
	"time"
)

// DestinationType names one of the five fixed destination collections.
type DestinationType string

const (
	DestinationAdventure  DestinationType = "adventure"
	DestinationBeaches    DestinationType = "beaches"
	DestinationCity       DestinationType = "city"
	DestinationNature     DestinationType = "nature_beauty"
	DestinationHistorical DestinationType = "historical_and_cultural"
)

// DestinationTypes lists all collection types in a fixed order. The order
// matters: untyped delete-by-id scans collections in this sequence.
func DestinationTypes() []DestinationType {
	return []DestinationType{
		DestinationAdventure,
		DestinationBeaches,
		DestinationCity,
		DestinationNature,
		DestinationHistorical,
	}
}

// ValidDestinationType reports whether t names a known collection.
func ValidDestinationType(t DestinationType) bool {
	switch t {
	case DestinationAdventure, DestinationBeaches, DestinationCity,
		DestinationNature, DestinationHistorical:
		return true
	}
	return false
}

// Destination is a single catalog entry in one of the five collections.
type Destination struct {
	ID                int64     `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Country           string    `bson:"country" json:"country"`
	Region            string    `bson:"region" json:"region"`
	Type              string    `bson:"type" json:"type"`
	Description       string    `bson:"description" json:"description"`
	BestTimeToVisit   []string  `bson:"best_time_to_visit" json:"best_time_to_visit"`
	AverageCostPerDay float64   `bson:"average_cost_per_day" json:"average_cost_per_day"`
	Currency          string    `bson:"currency" json:"currency"`
	ImageURL          string    `bson:"image_url" json:"image_url"`
	VisaRequirements  string    `bson:"visa_requirements" json:"visa_requirements"`
	SafetyRating      int       `bson:"safety_rating" json:"safety_rating"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`

	// Collection is set on merged list-all responses to say which of the
	// five collections the document came from. Never persisted.
	Collection DestinationType `bson:"-" json:"collection,omitempty"`
}
