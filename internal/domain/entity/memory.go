package entity

import (
	"time"
)

// MemoryType distinguishes photo and video journal entries.
type MemoryType string

const (
	MemoryPhoto MemoryType = "photo"
	MemoryVideo MemoryType = "video"
)

func ValidMemoryType(t MemoryType) bool {
	return t == MemoryPhoto || t == MemoryVideo
}

// Mood tags a memory with how the trip felt.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodPeaceful    Mood = "peaceful"
	MoodExcited     Mood = "excited"
	MoodSad         Mood = "sad"
	MoodRomantic    Mood = "romantic"
	MoodAdventurous Mood = "adventurous"
)

func ValidMood(m Mood) bool {
	switch m {
	case MoodHappy, MoodPeaceful, MoodExcited, MoodSad, MoodRomantic, MoodAdventurous:
		return true
	}
	return false
}

// Privacy controls who can see a memory.
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
	PrivacyFriends Privacy = "friends"
)

func ValidPrivacy(p Privacy) bool {
	return p == PrivacyPublic || p == PrivacyPrivate || p == PrivacyFriends
}

// Memory is a trip journal entry owned by a user.
type Memory struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"user_id" json:"user_id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Location    string     `bson:"location" json:"location"`
	Date        string     `bson:"date" json:"date"`
	Travelers   []string   `bson:"travelers" json:"travelers"`
	Images      []string   `bson:"images" json:"images"`
	Videos      []string   `bson:"videos" json:"videos"`
	Tags        []string   `bson:"tags" json:"tags"`
	Likes       int        `bson:"likes" json:"likes"`
	Comments    int        `bson:"comments" json:"comments"`
	Shares      int        `bson:"shares" json:"shares"`
	Saves       int        `bson:"saves" json:"saves"`
	Type        MemoryType `bson:"type" json:"type"`
	Color       string     `bson:"color" json:"color"`
	TripID      string     `bson:"trip_id" json:"trip_id"`
	TripName    string     `bson:"trip_name" json:"trip_name"`
	Mood        Mood       `bson:"mood" json:"mood"`
	Privacy     Privacy    `bson:"privacy" json:"privacy"`
	IsLiked     bool       `bson:"is_liked" json:"is_liked"`
	IsSaved     bool       `bson:"is_saved" json:"is_saved"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}
