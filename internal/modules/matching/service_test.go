package matching

import (
	"context"
	"errors"
	"testing"

	"flanvo/internal/config"
	"flanvo/internal/maps"
	"flanvo/internal/modules/flight"
	"flanvo/internal/modules/pricing"
	"flanvo/internal/modules/request"
	"flanvo/internal/types"
)

type stubRequests struct {
	mine  *request.Request
	peers []request.Request
	err   error
}

func (s *stubRequests) LatestByUser(_ context.Context, _ types.ID) (*request.Request, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.mine, nil
}

func (s *stubRequests) SameFlightPeers(_ context.Context, _, _ types.ID) ([]request.Request, error) {
	return s.peers, nil
}

type stubFlights struct {
	flight *flight.Flight
	err    error
}

func (s *stubFlights) Get(_ context.Context, _ types.ID) (*flight.Flight, error) {
	return s.flight, s.err
}

type stubGeocoder struct {
	loc maps.Location
	err error
}

func (s *stubGeocoder) GeocodeAddress(_ context.Context, _ string) (maps.Location, error) {
	return s.loc, s.err
}

func (s *stubGeocoder) GeocodeAirport(_ context.Context, _ string) (maps.Location, error) {
	return s.loc, s.err
}

// stubRouter returns per-destination distances keyed by latitude.
type stubRouter struct {
	byLat map[float64]maps.RouteEstimate
	err   error
}

func (s *stubRouter) RoadDistance(_ context.Context, _, to types.Point) (maps.RouteEstimate, error) {
	if s.err != nil {
		return maps.RouteEstimate{}, s.err
	}
	est, ok := s.byLat[to.Lat]
	if !ok {
		return maps.RouteEstimate{}, maps.ErrNoRoute
	}
	return est, nil
}

func testPricing() *pricing.Service {
	return pricing.NewService(nil, config.PricingConfig{
		BaseFareCents:  1000,
		RatePerKmCents: 120,
		MinFareCents:   1000,
		Currency:       "EUR",
	})
}

func testService(requests *stubRequests, flights *stubFlights, geocoder *stubGeocoder, router *stubRouter) *Service {
	return NewService(requests, flights, geocoder, router, testPricing(), nil,
		config.MatchingConfig{SuggestionLimit: 3}, nil)
}

func TestSuggest_FullFlow(t *testing.T) {
	mine := makeCandidate("mine", 41.90, 12.50)
	mine.UserID = "user1"
	mine.FlightID = "fl1"

	requests := &stubRequests{
		mine: &mine,
		peers: []request.Request{
			makeCandidate("far", 41.50, 13.00),
			makeCandidate("near", 41.91, 12.51),
		},
	}
	flights := &stubFlights{flight: &flight.Flight{ID: "fl1", ArrivalCode: "FCO"}}
	geocoder := &stubGeocoder{loc: maps.Location{Point: types.Point{Lat: 41.8003, Lon: 12.2389}}}
	router := &stubRouter{byLat: map[float64]maps.RouteEstimate{
		41.90: {DistanceKm: 20, DurationMin: 30},
		41.91: {DistanceKm: 22, DurationMin: 33},
		41.50: {DistanceKm: 60, DurationMin: 55},
	}}

	sug, err := testService(requests, flights, geocoder, router).Suggest(context.Background(), "user1")
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	if sug.AirportCode != "FCO" {
		t.Errorf("airport code = %s, want FCO", sug.AirportCode)
	}
	if len(sug.Peers) != 2 {
		t.Fatalf("expected 2 peers, got %d", len(sug.Peers))
	}
	if sug.Peers[0].Request.ID != "near" || sug.Peers[1].Request.ID != "far" {
		t.Errorf("peers not ranked by proximity: %s, %s", sug.Peers[0].Request.ID, sug.Peers[1].Request.ID)
	}
	if sug.Mine.RoadKm == nil || *sug.Mine.RoadKm != 20 {
		t.Errorf("mine road distance = %v, want 20", sug.Mine.RoadKm)
	}

	// Furthest member is 60km: 1000 + 120*60 = 8200, split 3 ways.
	if sug.Fare.TotalCents != 8200 {
		t.Errorf("total = %d, want 8200", sug.Fare.TotalCents)
	}
	for id, share := range sug.Fare.PerMemberCents {
		if share != 2734 {
			t.Errorf("share for %s = %d, want 2734", id, share)
		}
	}
}

func TestSuggest_RoutingFailureDegrades(t *testing.T) {
	mine := makeCandidate("mine", 41.90, 12.50)
	mine.FlightID = "fl1"

	requests := &stubRequests{mine: &mine}
	flights := &stubFlights{flight: &flight.Flight{ID: "fl1", ArrivalCode: "FCO"}}
	geocoder := &stubGeocoder{loc: maps.Location{Point: types.Point{Lat: 41.8003, Lon: 12.2389}}}
	router := &stubRouter{err: errors.New("directions down")}

	sug, err := testService(requests, flights, geocoder, router).Suggest(context.Background(), "user1")
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if sug.Mine.RoadKm != nil {
		t.Errorf("expected nil road distance on routing failure, got %v", *sug.Mine.RoadKm)
	}
	// No distances resolved: the estimate falls back to the minimum fare.
	if sug.Fare.TotalCents != 1000 {
		t.Errorf("total = %d, want the minimum fare 1000", sug.Fare.TotalCents)
	}
}

func TestSuggest_AirportGeocodingFailureDegrades(t *testing.T) {
	mine := makeCandidate("mine", 41.90, 12.50)
	mine.FlightID = "fl1"

	requests := &stubRequests{mine: &mine}
	flights := &stubFlights{flight: &flight.Flight{ID: "fl1", ArrivalCode: "XXX"}}
	geocoder := &stubGeocoder{err: maps.ErrNotFound}
	router := &stubRouter{byLat: map[float64]maps.RouteEstimate{41.90: {DistanceKm: 20}}}

	sug, err := testService(requests, flights, geocoder, router).Suggest(context.Background(), "user1")
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if sug.Mine.RoadKm != nil {
		t.Errorf("expected no road distances when the airport is unresolved")
	}
}

func TestSuggest_NoPeers(t *testing.T) {
	mine := makeCandidate("mine", 41.90, 12.50)
	mine.FlightID = "fl1"

	requests := &stubRequests{mine: &mine}
	flights := &stubFlights{flight: &flight.Flight{ID: "fl1", ArrivalCode: "FCO"}}
	geocoder := &stubGeocoder{loc: maps.Location{Point: types.Point{Lat: 41.8003, Lon: 12.2389}}}
	router := &stubRouter{byLat: map[float64]maps.RouteEstimate{41.90: {DistanceKm: 20, DurationMin: 30}}}

	sug, err := testService(requests, flights, geocoder, router).Suggest(context.Background(), "user1")
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(sug.Peers) != 0 {
		t.Fatalf("expected no peers, got %d", len(sug.Peers))
	}
	// Solo traveler pays the whole fare: 1000 + 120*20 = 3400.
	if sug.Fare.TotalCents != 3400 || sug.Fare.PerMemberCents["mine"] != 3400 {
		t.Errorf("fare = %+v, want total 3400 owed entirely by mine", sug.Fare)
	}
}

func TestSuggest_RequestLookupError(t *testing.T) {
	requests := &stubRequests{err: request.ErrNotFound}
	flights := &stubFlights{flight: &flight.Flight{ID: "fl1"}}

	_, err := testService(requests, flights, &stubGeocoder{}, &stubRouter{}).Suggest(context.Background(), "user1")
	if !errors.Is(err, request.ErrNotFound) {
		t.Fatalf("expected request.ErrNotFound, got %v", err)
	}
}
