package types

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered traveller. There is no authentication in this
// service; users exist only as owners of history and ratings.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	TravelStyle string     `json:"travel_style,omitempty"` // budget, standard, luxury
	BudgetTier  BudgetTier `json:"budget_tier,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TravelHistoryEntry records a past visit, used as a personalization signal.
type TravelHistoryEntry struct {
	ID         int       `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CityID     int       `json:"city_id"`
	VisitedAt  time.Time `json:"visited_at"`
	VisitCount int       `json:"visit_count"`
}

// AttractionRating is a user's own 0-5 rating of an attraction. The
// recommendation engine reads these to weight attraction ordering; it never
// writes them.
type AttractionRating struct {
	UserID       uuid.UUID `json:"user_id"`
	AttractionID int       `json:"attraction_id"`
	Rating       float64   `json:"rating"`
	RatedAt      time.Time `json:"rated_at"`
}

// CreateAttractionRatingParams is the write-path payload for ratings.
type CreateAttractionRatingParams struct {
	AttractionID int     `json:"attraction_id"`
	Rating       float64 `json:"rating"`
}
