package types

// Province is an administrative region. Rating is a 0-5 tourism score.
type Province struct {
	ID              int     `json:"id"`
	NameFa          string  `json:"name_fa"`
	NameEn          string  `json:"name_en"`
	Capital         string  `json:"capital"`
	Population      int64   `json:"population"`
	AreaKm2         float64 `json:"area_km2"`
	ClimateType     string  `json:"climate_type"`
	FavorableSeason Season  `json:"favorable_season"`
	TourismRating   float64 `json:"tourism_rating"`
}

// City belongs to exactly one province. CostIndex is relative to a national
// baseline of 100.
type City struct {
	ID            int      `json:"id"`
	ProvinceID    int      `json:"province_id"`
	NameFa        string   `json:"name_fa"`
	NameEn        string   `json:"name_en"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Population    int64    `json:"population"`
	ElevationM    int      `json:"elevation_m"`
	HasAirport    bool     `json:"has_airport"`
	HasTrain      bool     `json:"has_train_station"`
	HasBusTermnl  bool     `json:"has_bus_terminal"`
	TourismRating float64  `json:"tourism_rating"`
	CostIndex     float64  `json:"cost_index"`
	DescriptionFa string   `json:"description_fa,omitempty"`
	DescriptionEn string   `json:"description_en,omitempty"`
	BestSeason    Season   `json:"best_season"`
	Province      *Province `json:"province,omitempty"`
}

// CityWeather is one row per (city, calendar month).
type CityWeather struct {
	CityID          int     `json:"city_id"`
	Month           int     `json:"month"`
	AvgTempC        float64 `json:"avg_temp_c"`
	AvgPrecipMm     float64 `json:"avg_precip_mm"`
	Condition       string  `json:"condition"`
	BestForTourism  bool    `json:"best_for_tourism"`
}

// SeasonalEvent occurs in one city over a date range. Dates are stored as
// ISO "2006-01-02" strings since events repeat yearly in the seed data.
type SeasonalEvent struct {
	ID            int       `json:"id"`
	CityID        int       `json:"city_id"`
	NameFa        string    `json:"name_fa"`
	NameEn        string    `json:"name_en"`
	EventType     EventType `json:"event_type"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TouristRating float64   `json:"tourist_rating"`
}

// MapPoint is a single marker for the map visualization feed.
type MapPoint struct {
	Kind      string  `json:"kind"` // "city" or "attraction"
	NameFa    string  `json:"name_fa"`
	NameEn    string  `json:"name_en"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Rating    float64 `json:"rating"`
	Unesco    bool    `json:"unesco,omitempty"`
}
