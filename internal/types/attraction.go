package types

// Attraction belongs to exactly one city.
type Attraction struct {
	ID                int                `json:"id"`
	CityID            int                `json:"city_id"`
	NameFa            string             `json:"name_fa"`
	NameEn            string             `json:"name_en"`
	Category          AttractionCategory `json:"category"`
	Subcategory       string             `json:"subcategory,omitempty"`
	Latitude          float64            `json:"latitude"`
	Longitude         float64            `json:"longitude"`
	Rating            float64            `json:"rating"`
	PriceTier         PriceTier          `json:"price_tier"`
	OpeningHours      string             `json:"opening_hours,omitempty"`
	BestVisitTime     string             `json:"best_visit_time,omitempty"`
	UnescoHeritage    bool               `json:"unesco_heritage"`
	HistoricalPeriod  string             `json:"historical_period,omitempty"`
	ArchitectureStyle string             `json:"architecture_style,omitempty"`
}

// AttractionFilter narrows an attractions-by-city scan.
type AttractionFilter struct {
	Categories []AttractionCategory
	MinRating  float64
	UnescoOnly bool
}

// Accommodation is located in one city.
type Accommodation struct {
	ID               int       `json:"id"`
	CityID           int       `json:"city_id"`
	NameFa           string    `json:"name_fa"`
	NameEn           string    `json:"name_en"`
	Kind             string    `json:"kind"` // hotel, guesthouse, traditional_house, eco_lodge
	Rating           float64   `json:"rating"`
	PriceTier        PriceTier `json:"price_tier"`
	Amenities        []string  `json:"amenities,omitempty"`
	WheelchairAccess bool      `json:"wheelchair_accessible"`
}

// Restaurant is located in one city.
type Restaurant struct {
	ID        int       `json:"id"`
	CityID    int       `json:"city_id"`
	NameFa    string    `json:"name_fa"`
	NameEn    string    `json:"name_en"`
	Cuisine   string    `json:"cuisine"`
	Rating    float64   `json:"rating"`
	PriceTier PriceTier `json:"price_tier"`
	Halal     bool      `json:"halal"`
}
