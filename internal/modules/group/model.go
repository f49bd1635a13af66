// README: Pooling group aggregate and membership rows.
package group

import (
	"time"

	"flanvo/internal/types"
)

type Status string

const (
	// StatusForming is the only status this service assigns; later lifecycle
	// transitions are driven by payment completion.
	StatusForming Status = "forming"
)

type Group struct {
	ID        types.ID
	FlightID  types.ID
	Status    Status
	CreatedAt time.Time
}

// Member joins a group to a request snapshot. DistanceKm and PriceShareCents
// are nil until the fare estimator has run; PaidStatus is set once the
// member's checkout completes.
type Member struct {
	GroupID         types.ID
	RequestID       types.ID
	DistanceKm      *float64
	PriceShareCents *int64
	PaidStatus      *string
}

// RosterEntry is a member row joined with the payer's profile, for the
// post-payment roster view.
type RosterEntry struct {
	RequestID       types.ID
	UserID          types.ID
	Email           *string
	DistanceKm      *float64
	PriceShareCents *int64
	PaidStatus      *string
}
