// README: Proximity ranker; picks the nearest same-flight peers by destination.
package matching

import (
	"flanvo/internal/modules/request"
	"flanvo/internal/types"
)

// DefaultSuggestionLimit caps how many peers a traveler is matched with.
const DefaultSuggestionLimit = 3

// Rank selects up to limit candidates nearest to origin by great-circle
// distance between destinations. Ties keep input order. Pure function; an
// empty candidate set yields an empty result, not an error.
func Rank(origin types.Point, candidates []request.Request, limit int) []request.Request {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	if len(candidates) == 0 {
		return nil
	}

	type scored struct {
		req request.Request
		d   float64
	}
	items := make([]scored, len(candidates))
	for i, c := range candidates {
		items[i] = scored{req: c, d: HaversineKm(origin, c.Dest)}
	}

	sortByDistance(items, func(s scored) float64 { return s.d })

	if limit > len(items) {
		limit = len(items)
	}
	out := make([]request.Request, limit)
	for i := 0; i < limit; i++ {
		out[i] = items[i].req
	}
	return out
}
