package recommendation

import (
	"sort"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

// RankTransportOptions orders options best-first, comparing keys in
// priority order: cost ascending, then duration ascending, then comfort
// tier descending. Remaining ties break on operator name, then id, so
// equal inputs always produce equal output.
func RankTransportOptions(options []types.TransportOption) []types.TransportOption {
	ranked := make([]types.TransportOption, len(options))
	copy(ranked, options)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CostToman != ranked[j].CostToman {
			return ranked[i].CostToman < ranked[j].CostToman
		}
		if ranked[i].DurationHours != ranked[j].DurationHours {
			return ranked[i].DurationHours < ranked[j].DurationHours
		}
		if ci, cj := ranked[i].Comfort.Rank(), ranked[j].Comfort.Rank(); ci != cj {
			return ci > cj
		}
		if ranked[i].Operator != ranked[j].Operator {
			return ranked[i].Operator < ranked[j].Operator
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// effectiveRating applies the caller's own past rating of an attraction as
// a small nudge around the public rating. The shift is centered at a
// neutral 3.0 so a past 5 lifts by +0.2 and a past 1 drops by -0.2. The
// displayed rating is never altered.
func effectiveRating(a types.Attraction, userRatings map[int]float64) float64 {
	r := a.Rating
	if ur, ok := userRatings[a.ID]; ok {
		r += (ur - 3.0) * 0.1
	}
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// RankAttractions orders attractions best-first by effective rating, with
// UNESCO sites winning exact-rating ties, then English name, then id.
// userRatings may be nil.
func RankAttractions(attractions []types.Attraction, userRatings map[int]float64) []types.Attraction {
	ranked := make([]types.Attraction, len(attractions))
	copy(ranked, attractions)

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := effectiveRating(ranked[i], userRatings), effectiveRating(ranked[j], userRatings)
		if ri != rj {
			return ri > rj
		}
		if ranked[i].UnescoHeritage != ranked[j].UnescoHeritage {
			return ranked[i].UnescoHeritage
		}
		if ranked[i].NameEn != ranked[j].NameEn {
			return ranked[i].NameEn < ranked[j].NameEn
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}
