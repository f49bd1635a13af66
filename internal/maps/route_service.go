package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"flanvo/internal/types"
)

// directionsAPI is the slice of the Google Maps client the router needs;
// tests substitute a stub.
type directionsAPI interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// RouteService implements DistanceProvider on the Google Directions API.
type RouteService struct {
	client directionsAPI
}

// NewRouteService creates a RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// RoadDistance returns the driving distance and duration from origin to
// destination. Zero routes map to ErrNoRoute; transport failures wrap
// ErrProvider.
func (s *RouteService) RoadDistance(ctx context.Context, from, to types.Point) (RouteEstimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      latLng(from),
		Destination: latLng(to),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return RouteEstimate{}, fmt.Errorf("%w: directions: %v", ErrProvider, err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return RouteEstimate{}, ErrNoRoute
	}

	leg := routes[0].Legs[0]
	return RouteEstimate{
		DistanceKm:  float64(leg.Distance.Meters) / 1000.0,
		DurationMin: leg.Duration.Minutes(),
	}, nil
}

func latLng(p types.Point) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lon)
}
