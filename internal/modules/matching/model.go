// README: Suggestion result types.
package matching

import (
	"flanvo/internal/modules/pricing"
	"flanvo/internal/modules/request"
)

// MemberEstimate is one prospective group member with the road distance from
// the arrival airport to their destination. RoadKm and EtaMin are nil when
// the routing lookup failed or was skipped; the fare estimate degrades
// instead of aborting.
type MemberEstimate struct {
	Request request.Request
	RoadKm  *float64
	EtaMin  *float64
}

// Suggestion is the full match proposal shown to a traveler: their own
// request, the nearest same-flight peers, and the estimated fare split.
type Suggestion struct {
	Mine        MemberEstimate
	Peers       []MemberEstimate
	AirportCode string
	Fare        pricing.Result
}
