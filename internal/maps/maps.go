// README: Provider-facing contracts for routing and geocoding.
//
// The booking flow depends on exactly one DistanceProvider and one Geocoder
// implementation, both chosen at startup. Everything behind these interfaces
// is a network round trip; callers treat failures as degradable (a missing
// road distance never aborts a fare estimate).
package maps

import (
	"context"
	"errors"

	"flanvo/internal/types"
)

// RouteEstimate is a road-routing result between two points.
type RouteEstimate struct {
	DistanceKm  float64
	DurationMin float64
}

// Location is a resolved place.
type Location struct {
	Point types.Point
	Label string
}

var (
	// ErrNoRoute means the provider answered but reported zero routes.
	ErrNoRoute = errors.New("no route found")
	// ErrNotFound means a geocoding query matched nothing.
	ErrNotFound = errors.New("no match found")
	// ErrProvider wraps transport-level or malformed-response failures.
	ErrProvider = errors.New("provider error")
)

// DistanceProvider resolves driving distance and travel time between two
// coordinates.
type DistanceProvider interface {
	RoadDistance(ctx context.Context, from, to types.Point) (RouteEstimate, error)
}

// Geocoder resolves free-text addresses and IATA airport codes to coordinates.
type Geocoder interface {
	GeocodeAddress(ctx context.Context, query string) (Location, error)
	GeocodeAirport(ctx context.Context, code string) (Location, error)
}
