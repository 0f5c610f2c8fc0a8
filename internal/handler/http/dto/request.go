package dto

// RegisterRequest is the payload for local account signup. Username is
// optional; one is generated when absent.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for local login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries an optional refresh token for clients that don't
// use cookies.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateUserRequest carries optional profile fields. Nil means unchanged.
type UpdateUserRequest struct {
	Username             *string `json:"username"`
	ProfilePic           *string `json:"profile_pic"`
	Bio                  *string `json:"bio"`
	Location             *string `json:"location"`
	Budget               *string `json:"budget"`
	Website              *string `json:"website"`
	Phone                *string `json:"phone"`
	DateOfBirth          *string `json:"date_of_birth"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	NewslettersEnabled   *bool   `json:"newsletters_enabled"`
	ThemePreference      *string `json:"theme_preference"`
}

// UpdateFavoritesRequest replaces the user's favorite travel categories.
type UpdateFavoritesRequest struct {
	DestinationTypes  []string `json:"destination_type" binding:"required"`
	ClimatePreference []string `json:"climate_preference"`
	Activities        []string `json:"activities"`
	Duration          string   `json:"duration"`
	Budget            string   `json:"budget"`
}

// DestinationRequest is the payload for creating or updating a destination.
type DestinationRequest struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name" binding:"required"`
	Country           string   `json:"country" binding:"required"`
	Region            string   `json:"region"`
	Type              string   `json:"type"`
	Description       string   `json:"description"`
	BestTimeToVisit   []string `json:"best_time_to_visit"`
	AverageCostPerDay float64  `json:"average_cost_per_day"`
	Currency          string   `json:"currency"`
	ImageURL          string   `json:"image_url"`
	VisaRequirements  string   `json:"visa_requirements"`
	SafetyRating      int      `json:"safety_rating"`
}

// TripRequest is the payload for creating or updating a trip.
type TripRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	Days          int     `json:"days" binding:"required"`
	Budget        float64 `json:"budget"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image"`
	Health        string  `json:"health"`
	Age           int     `json:"age"`
	BestSeason    string  `json:"bestSeason"`
	Transport     string  `json:"transport"`
	ActivityLevel string  `json:"activityLevel"`
	SafetyRating  float64 `json:"safetyRating"`
}

// MemoryRequest is the payload for creating a memory.
type MemoryRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Travelers   []string `json:"travelers"`
	Images      []string `json:"images"`
	Videos      []string `json:"videos"`
	Tags        []string `json:"tags"`
	Type        string   `json:"type"`
	Color       string   `json:"color"`
	TripID      string   `json:"trip_id"`
	TripName    string   `json:"trip_name"`
	Mood        string   `json:"mood"`
	Privacy     string   `json:"privacy"`
}

// UpdateMemoryRequest carries optional memory fields. Nil means unchanged.
type UpdateMemoryRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	Date        *string   `json:"date"`
	Travelers   *[]string `json:"travelers"`
	Images      *[]string `json:"images"`
	Videos      *[]string `json:"videos"`
	Tags        *[]string `json:"tags"`
	Type        *string   `json:"type"`
	Color       *string   `json:"color"`
	TripID      *string   `json:"trip_id"`
	TripName    *string   `json:"trip_name"`
	Mood        *string   `json:"mood"`
	Privacy     *string   `json:"privacy"`
}
