package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"flanvo/internal/types"
)

// geocodeAPI is the slice of the Google Maps client the geocoder needs;
// tests substitute a stub.
type geocodeAPI interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GeocodeService implements Geocoder on the Google Geocoding API, with an
// injectable airport table consulted before any network call.
type GeocodeService struct {
	client   geocodeAPI
	airports AirportTable
}

// NewGeocodeService creates a GeocodeService with the given API key and
// airport table. A nil table disables the static lookup.
func NewGeocodeService(apiKey string, airports AirportTable) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client, airports: airports}, nil
}

// GeocodeAddress resolves a free-text address to its best match.
func (s *GeocodeService) GeocodeAddress(ctx context.Context, query string) (Location, error) {
	return s.geocode(ctx, query)
}

// GeocodeAirport resolves an IATA code: static table first, then a direct
// query, then a "<code> airport" fallback query.
func (s *GeocodeService) GeocodeAirport(ctx context.Context, code string) (Location, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Location{}, ErrNotFound
	}
	if loc, ok := s.airports[code]; ok {
		return loc, nil
	}

	loc, err := s.geocode(ctx, code)
	if err == nil {
		return loc, nil
	}
	if err != ErrNotFound {
		return Location{}, err
	}
	return s.geocode(ctx, code+" airport")
}

func (s *GeocodeService) geocode(ctx context.Context, query string) (Location, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return Location{}, fmt.Errorf("%w: geocode: %v", ErrProvider, err)
	}
	if len(results) == 0 {
		return Location{}, ErrNotFound
	}
	best := results[0]
	return Location{
		Point: types.Point{Lat: best.Geometry.Location.Lat, Lon: best.Geometry.Location.Lng},
		Label: best.FormattedAddress,
	}, nil
}
