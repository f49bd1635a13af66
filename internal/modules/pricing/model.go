// README: Fare estimation inputs and results.
package pricing

import "flanvo/internal/types"

// MemberDistance is one group member's road distance from the shared origin.
// RoadKm is nil when the routing lookup failed; the estimator treats that as
// zero rather than failing the whole estimate.
type MemberDistance struct {
	RequestID types.ID
	RoadKm    *float64
	Pax       int
}

// Result is a computed group fare with its per-member split.
type Result struct {
	TotalCents     int64
	PerMemberCents map[types.ID]int64
	Currency       string
}
