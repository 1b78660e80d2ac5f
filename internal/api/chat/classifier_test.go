package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

func classifierCities() []types.City {
	return []types.City{
		{ID: 1, NameFa: "تهران", NameEn: "Tehran"},
		{ID: 2, NameFa: "اصفهان", NameEn: "Isfahan"},
		{ID: 3, NameFa: "شیراز", NameEn: "Shiraz"},
		{ID: 5, NameFa: "مشهد", NameEn: "Mashhad"},
	}
}

func TestPatternIntentClassifier(t *testing.T) {
	c := NewPatternIntentClassifier()
	cities := classifierCities()

	t.Run("English Route Request", func(t *testing.T) {
		result := c.Classify("How do I travel from Tehran to Isfahan?", cities)

		assert.Equal(t, types.IntentRouteRequest, result.Intent)
		assert.Equal(t, "en", result.Entities.Language)
		assert.Equal(t, "Tehran", result.Entities.OriginCity)
		assert.Equal(t, "Isfahan", result.Entities.DestinationCity)
		assert.GreaterOrEqual(t, result.Confidence, 0.8)
	})

	t.Run("Persian Route Request", func(t *testing.T) {
		result := c.Classify("مسیر از تهران به شیراز را پیشنهاد بده", cities)

		assert.Equal(t, types.IntentRouteRequest, result.Intent)
		assert.Equal(t, "fa", result.Entities.Language)
		assert.Equal(t, "Tehran", result.Entities.OriginCity)
		assert.Equal(t, "Shiraz", result.Entities.DestinationCity)
	})

	t.Run("Pilgrimage Adds Religious Category", func(t *testing.T) {
		result := c.Classify("زیارت حرم در مشهد", cities)

		assert.Equal(t, types.IntentPilgrimageRequest, result.Intent)
		assert.Equal(t, []string{"religious"}, result.Entities.Categories)
		assert.Equal(t, "Mashhad", result.Entities.DestinationCity)
	})

	t.Run("Attraction Request Categories", func(t *testing.T) {
		result := c.Classify("historical sites in Isfahan", cities)

		assert.Equal(t, types.IntentAttractionRequest, result.Intent)
		assert.Equal(t, []string{"historical", "cultural"}, result.Entities.Categories)
	})

	t.Run("Seasonal Planning Extracts Season", func(t *testing.T) {
		result := c.Classify("Is spring a good season for a trip to Shiraz?", cities)

		assert.Equal(t, types.IntentSeasonalPlanning, result.Intent)
		assert.Equal(t, types.SeasonSpring, result.Entities.Season)
	})

	t.Run("Budget Request Extracts Tier", func(t *testing.T) {
		result := c.Classify("سفر ارزان از تهران به اصفهان چقدر هزینه دارد", cities)

		// The budget keyword hits after route phrasing; route wins but
		// the tier entity still comes through.
		assert.Equal(t, "low", result.Entities.BudgetTier)
	})

	t.Run("Greeting", func(t *testing.T) {
		result := c.Classify("سلام", cities)
		assert.Equal(t, types.IntentGreeting, result.Intent)
		assert.Equal(t, "fa", result.Entities.Language)
	})

	t.Run("Unknown", func(t *testing.T) {
		result := c.Classify("xyzzy", cities)
		assert.Equal(t, types.IntentUnknown, result.Intent)
		assert.Equal(t, 0.0, result.Confidence)
	})

	t.Run("City Order Follows Text Order", func(t *testing.T) {
		result := c.Classify("route from Shiraz to Tehran please", cities)
		assert.Equal(t, "Shiraz", result.Entities.OriginCity)
		assert.Equal(t, "Tehran", result.Entities.DestinationCity)
	})

	t.Run("Single City Is Destination", func(t *testing.T) {
		result := c.Classify("museums in Isfahan", cities)
		assert.Equal(t, "", result.Entities.OriginCity)
		assert.Equal(t, "Isfahan", result.Entities.DestinationCity)
	})

	t.Run("Deterministic", func(t *testing.T) {
		text := "travel from Tehran to Mashhad in winter on a budget"
		assert.Equal(t, c.Classify(text, cities), c.Classify(text, cities))
	})
}
