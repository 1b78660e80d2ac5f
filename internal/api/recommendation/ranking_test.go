package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

func tehranIsfahanOptions() []types.TransportOption {
	return []types.TransportOption{
		{ID: 1, Mode: types.ModeBus, DurationHours: 6.5, CostToman: 150000, Operator: "Hamsafar", Comfort: types.ComfortEconomy},
		{ID: 2, Mode: types.ModeBus, DurationHours: 6.0, CostToman: 220000, Operator: "Royal Safar", Comfort: types.ComfortBusiness},
		{ID: 3, Mode: types.ModeTrain, DurationHours: 6.8, CostToman: 200000, Operator: "Raja Rail", Comfort: types.ComfortBusiness},
		{ID: 4, Mode: types.ModePlane, DurationHours: 1.0, CostToman: 850000, Operator: "Iran Air", Comfort: types.ComfortEconomy},
	}
}

func TestRankTransportOptions(t *testing.T) {
	t.Run("Cost Leads The Ordering", func(t *testing.T) {
		ranked := RankTransportOptions(tehranIsfahanOptions())

		operators := make([]string, len(ranked))
		for i, o := range ranked {
			operators[i] = o.Operator
		}
		// Cost decides first; the plane's speed cannot offset its price.
		assert.Equal(t, []string{"Hamsafar", "Raja Rail", "Royal Safar", "Iran Air"}, operators)
	})

	t.Run("Cheaper Bus Outranks Train", func(t *testing.T) {
		ranked := RankTransportOptions(tehranIsfahanOptions())

		busIdx, trainIdx := -1, -1
		for i, o := range ranked {
			switch {
			case o.Mode == types.ModeBus && o.CostToman == 150000:
				busIdx = i
			case o.Mode == types.ModeTrain:
				trainIdx = i
			}
		}
		assert.Less(t, busIdx, trainIdx)
	})

	t.Run("Equal Cost Falls Through To Duration", func(t *testing.T) {
		options := []types.TransportOption{
			{ID: 1, Mode: types.ModeBus, DurationHours: 7.0, CostToman: 180000, Operator: "Seiro Safar", Comfort: types.ComfortBusiness},
			{ID: 2, Mode: types.ModeTrain, DurationHours: 6.2, CostToman: 180000, Operator: "Raja Rail", Comfort: types.ComfortEconomy},
		}
		ranked := RankTransportOptions(options)
		assert.Equal(t, "Raja Rail", ranked[0].Operator)
	})

	t.Run("Equal Cost And Duration Falls Through To Comfort", func(t *testing.T) {
		options := []types.TransportOption{
			{ID: 1, Mode: types.ModeBus, DurationHours: 6.0, CostToman: 180000, Operator: "Seiro Safar", Comfort: types.ComfortEconomy},
			{ID: 2, Mode: types.ModeBus, DurationHours: 6.0, CostToman: 180000, Operator: "Hamsafar", Comfort: types.ComfortBusiness},
		}
		ranked := RankTransportOptions(options)
		assert.Equal(t, "Hamsafar", ranked[0].Operator)
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		options := tehranIsfahanOptions()
		RankTransportOptions(options)
		assert.Equal(t, tehranIsfahanOptions(), options)
	})

	t.Run("Exact Ties Break On Operator", func(t *testing.T) {
		options := []types.TransportOption{
			{ID: 9, Mode: types.ModeBus, DurationHours: 5, CostToman: 100000, Operator: "Zand Lines", Comfort: types.ComfortEconomy},
			{ID: 3, Mode: types.ModeBus, DurationHours: 5, CostToman: 100000, Operator: "Asia Safar", Comfort: types.ComfortEconomy},
		}
		ranked := RankTransportOptions(options)
		assert.Equal(t, "Asia Safar", ranked[0].Operator)
		assert.Equal(t, "Zand Lines", ranked[1].Operator)
	})

	t.Run("Deterministic Across Calls", func(t *testing.T) {
		first := RankTransportOptions(tehranIsfahanOptions())
		second := RankTransportOptions(tehranIsfahanOptions())
		assert.Equal(t, first, second)
	})

	t.Run("Single Option Unchanged", func(t *testing.T) {
		options := []types.TransportOption{{ID: 1, Operator: "Hamsafar"}}
		assert.Equal(t, options, RankTransportOptions(options))
	})
}

func TestRankAttractions(t *testing.T) {
	attractions := []types.Attraction{
		{ID: 1, NameEn: "Khaju Bridge", Rating: 4.6},
		{ID: 2, NameEn: "Imam Square", Rating: 4.8, UnescoHeritage: true},
		{ID: 3, NameEn: "Chehel Sotoun", Rating: 4.6},
		{ID: 4, NameEn: "Vank Cathedral", Rating: 4.8},
	}

	t.Run("Rating Then Unesco Then Name", func(t *testing.T) {
		ranked := RankAttractions(attractions, nil)

		names := make([]string, len(ranked))
		for i, a := range ranked {
			names[i] = a.NameEn
		}
		// 4.8 ties: UNESCO wins. 4.6 ties: alphabetical.
		assert.Equal(t, []string{"Imam Square", "Vank Cathedral", "Chehel Sotoun", "Khaju Bridge"}, names)
	})

	t.Run("User Rating Nudges Order", func(t *testing.T) {
		// A past 5-star on Khaju Bridge lifts it to an effective 4.8.
		// UNESCO still wins the tie, then names decide.
		ranked := RankAttractions(attractions, map[int]float64{1: 5})
		names := make([]string, len(ranked))
		for i, a := range ranked {
			names[i] = a.NameEn
		}
		assert.Equal(t, []string{"Imam Square", "Khaju Bridge", "Vank Cathedral", "Chehel Sotoun"}, names)
		// Display rating is untouched.
		assert.InDelta(t, 4.6, ranked[1].Rating, 0.0001)
	})

	t.Run("Low Past Rating Pushes Down", func(t *testing.T) {
		ranked := RankAttractions(attractions, map[int]float64{4: 1})
		assert.Equal(t, "Vank Cathedral", ranked[3].NameEn)
	})

	t.Run("Effective Rating Clamped", func(t *testing.T) {
		a := types.Attraction{ID: 7, Rating: 4.95}
		assert.Equal(t, 5.0, effectiveRating(a, map[int]float64{7: 5}))
		b := types.Attraction{ID: 8, Rating: 0.1}
		assert.Equal(t, 0.0, effectiveRating(b, map[int]float64{8: 0}))
	})
}
