package types

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationRequest is the structured travel request the engine
// consumes. Origin and Destination accept a city id ("4") or a normalized
// name in either language ("Tabriz", "تبریز").
type RecommendationRequest struct {
	Origin              string     `json:"origin"`
	Destination         string     `json:"destination"`
	TravelDate          *time.Time `json:"travel_date,omitempty"`
	DurationDays        int        `json:"duration_days,omitempty"`
	BudgetTier          BudgetTier `json:"budget_tier,omitempty"`
	CategoryPreferences []string   `json:"category_preferences,omitempty"`
	UserID              *uuid.UUID `json:"user_id,omitempty"`
}

// SeasonFit says whether the requested month is historically favorable for
// tourism at the destination.
type SeasonFit struct {
	Month          int     `json:"month"`
	BestForTourism bool    `json:"best_for_tourism"`
	Condition      string  `json:"condition"`
	AvgTempC       float64 `json:"avg_temp_c"`
}

// BudgetEstimate is the travel + stay cost projection.
type BudgetEstimate struct {
	TransportCostToman int64      `json:"transport_cost_toman"`
	TransportBasis     string     `json:"transport_basis"` // "car_toll_fuel" or "cheapest_option"
	PerDayCostToman    int64      `json:"per_day_cost_toman"`
	DurationDays       int        `json:"duration_days"`
	TotalToman         int64      `json:"total_toman"`
	BudgetTier         BudgetTier `json:"budget_tier,omitempty"`
	WithinBudget       *bool      `json:"within_budget,omitempty"`
}

// RecommendationResult is the composite answer. Sub-results with no backing
// rows are nil/empty and named in Warnings; they never fail the request.
type RecommendationResult struct {
	Origin           *City             `json:"origin"`
	Destination      *City             `json:"destination"`
	Route            *RouteSegment     `json:"route,omitempty"`
	TransportOptions []TransportOption `json:"transport_options"`
	Attractions      []Attraction      `json:"attractions"`
	SeasonFit        *SeasonFit        `json:"season_fit,omitempty"`
	Events           []SeasonalEvent   `json:"events"`
	BudgetEstimate   *BudgetEstimate   `json:"budget_estimate,omitempty"`
	Warnings         []string          `json:"warnings,omitempty"`
}
