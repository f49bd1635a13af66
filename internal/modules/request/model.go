// README: Traveler pooling request aggregate.
package request

import (
	"time"

	"flanvo/internal/types"
)

// Request is one traveler's pooling request for a flight. Immutable after
// creation; group membership snapshots it at formation time.
type Request struct {
	ID          types.ID
	UserID      types.ID
	FlightID    types.ID
	Dest        types.Point
	DestAddress *string
	Pax         int
	Luggage     *string
	CreatedAt   time.Time
}
