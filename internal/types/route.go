package types

// RouteSegment is a directed edge between two cities, unique per ordered
// (origin, destination) pair. SeasonalRestrictions holds tags such as
// "winter_snow" meaning reduced or blocked access in that season.
type RouteSegment struct {
	ID                   int      `json:"id"`
	OriginCityID         int      `json:"origin_city_id"`
	DestinationCityID    int      `json:"destination_city_id"`
	DistanceKm           float64  `json:"distance_km"`
	DurationHours        float64  `json:"duration_hours"`
	RoadType             string   `json:"road_type"`
	TollCostToman        int64    `json:"toll_cost_toman"`
	FuelCostToman        int64    `json:"fuel_cost_toman"`
	ScenicRating         float64  `json:"scenic_rating"`
	SafetyRating         float64  `json:"safety_rating"`
	SeasonalRestrictions []string `json:"seasonal_restrictions,omitempty"`
}

// RestrictedIn reports whether the segment carries a restriction tag for the
// given season (e.g. "winter_snow" restricts winter).
func (s *RouteSegment) RestrictedIn(season Season) bool {
	for _, tag := range s.SeasonalRestrictions {
		switch {
		case season == SeasonWinter && (tag == "winter_snow" || tag == "winter_closed"),
			season == SeasonSummer && tag == "summer_heat",
			season == SeasonSpring && tag == "spring_flood":
			return true
		}
	}
	return false
}

// TransportOption is one of possibly several transport modes connecting an
// origin/destination city pair. Not unique per pair.
type TransportOption struct {
	ID                int           `json:"id"`
	OriginCityID      int           `json:"origin_city_id"`
	DestinationCityID int           `json:"destination_city_id"`
	Mode              TransportMode `json:"mode"`
	DurationHours     float64       `json:"duration_hours"`
	CostToman         int64         `json:"cost_toman"`
	FrequencyPerDay   int           `json:"frequency_per_day"`
	Operator          string        `json:"operator"`
	Comfort           ComfortTier   `json:"comfort"`
}
