package types

import "strings"

// AttractionCategory is the closed category set. The source data implied
// these values without enforcing them; they are validated here so ranking
// stays deterministic.
type AttractionCategory string

const (
	CategoryHistorical AttractionCategory = "historical"
	CategoryNatural    AttractionCategory = "natural"
	CategoryReligious  AttractionCategory = "religious"
	CategoryModern     AttractionCategory = "modern"
	CategoryCultural   AttractionCategory = "cultural"
)

// ParseAttractionCategory normalizes and validates a category tag.
func ParseAttractionCategory(s string) (AttractionCategory, bool) {
	switch c := AttractionCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryHistorical, CategoryNatural, CategoryReligious, CategoryModern, CategoryCultural:
		return c, true
	default:
		return "", false
	}
}

// PriceTier classifies entry/stay pricing.
type PriceTier string

const (
	PriceFree   PriceTier = "free"
	PriceLow    PriceTier = "low"
	PriceMedium PriceTier = "medium"
	PriceHigh   PriceTier = "high"
	PriceLuxury PriceTier = "luxury"
)

// BudgetTier is a traveller's overall budget class. Limits are total trip
// budgets in toman.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
	BudgetLuxury BudgetTier = "luxury"
)

// BudgetLimitToman returns the total budget ceiling for a tier.
func (b BudgetTier) BudgetLimitToman() int64 {
	switch b {
	case BudgetLow:
		return 200_000
	case BudgetMedium:
		return 500_000
	case BudgetHigh:
		return 1_000_000
	case BudgetLuxury:
		return 2_000_000
	default:
		return 500_000
	}
}

// PerDayBaseToman is the per-day spend estimate for a tier at a city with
// cost index 100.
func (b BudgetTier) PerDayBaseToman() int64 {
	switch b {
	case BudgetLow:
		return 80_000
	case BudgetMedium:
		return 200_000
	case BudgetHigh:
		return 400_000
	case BudgetLuxury:
		return 800_000
	default:
		return 200_000
	}
}

func ParseBudgetTier(s string) (BudgetTier, bool) {
	switch b := BudgetTier(strings.ToLower(strings.TrimSpace(s))); b {
	case BudgetLow, BudgetMedium, BudgetHigh, BudgetLuxury:
		return b, true
	default:
		return "", false
	}
}

// ComfortTier ranks a transportation option; used as a ranking input, not a
// hard filter.
type ComfortTier string

const (
	ComfortEconomy  ComfortTier = "economy"
	ComfortBusiness ComfortTier = "business"
	ComfortLuxury   ComfortTier = "luxury"
)

// Rank maps the tier onto an ordinal scale for scoring. Unknown tiers rank
// lowest.
func (c ComfortTier) Rank() int {
	switch c {
	case ComfortLuxury:
		return 3
	case ComfortBusiness:
		return 2
	case ComfortEconomy:
		return 1
	default:
		return 0
	}
}

// TransportMode is the vehicle class of a transportation option.
type TransportMode string

const (
	ModeBus   TransportMode = "bus"
	ModeTrain TransportMode = "train"
	ModePlane TransportMode = "plane"
	ModeCar   TransportMode = "car"
)

// EventType classifies a seasonal event.
type EventType string

const (
	EventReligious EventType = "religious"
	EventCultural  EventType = "cultural"
	EventSeasonal  EventType = "seasonal"
	EventNational  EventType = "national"
)

// Season of the Iranian travel calendar.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// SeasonOfMonth maps a calendar month (1..12) to a season.
func SeasonOfMonth(month int) Season {
	switch month {
	case 3, 4, 5:
		return SeasonSpring
	case 6, 7, 8:
		return SeasonSummer
	case 9, 10, 11:
		return SeasonFall
	default:
		return SeasonWinter
	}
}
