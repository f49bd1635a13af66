// README: Matching service orchestrates the suggestion flow.
package matching

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"flanvo/internal/config"
	"flanvo/internal/maps"
	"flanvo/internal/modules/flight"
	"flanvo/internal/modules/pricing"
	"flanvo/internal/modules/request"
	"flanvo/internal/types"
)

// RequestSource is the slice of the request store the matcher reads.
type RequestSource interface {
	LatestByUser(ctx context.Context, userID types.ID) (*request.Request, error)
	SameFlightPeers(ctx context.Context, flightID, excludingUserID types.ID) ([]request.Request, error)
}

// FlightSource resolves flight ids to flights.
type FlightSource interface {
	Get(ctx context.Context, id types.ID) (*flight.Flight, error)
}

type Service struct {
	requests RequestSource
	flights  FlightSource
	geocoder maps.Geocoder
	router   maps.DistanceProvider
	pricing  *pricing.Service
	store    *Store
	cfg      config.MatchingConfig
	log      *zap.Logger
}

func NewService(
	requests RequestSource,
	flights FlightSource,
	geocoder maps.Geocoder,
	router maps.DistanceProvider,
	pricingSvc *pricing.Service,
	store *Store,
	cfg config.MatchingConfig,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		requests: requests,
		flights:  flights,
		geocoder: geocoder,
		router:   router,
		pricing:  pricingSvc,
		store:    store,
		cfg:      cfg,
		log:      log,
	}
}

// Suggest builds the match proposal for a traveler: nearest same-flight
// peers plus a fare estimate based on road distances from the arrival
// airport. Distance lookups run concurrently, one per member; a failed
// lookup leaves that member's distance nil.
func (s *Service) Suggest(ctx context.Context, userID types.ID) (*Suggestion, error) {
	mine, err := s.requests.LatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	fl, err := s.flights.Get(ctx, mine.FlightID)
	if err != nil {
		return nil, err
	}

	peers, err := s.requests.SameFlightPeers(ctx, mine.FlightID, userID)
	if err != nil {
		return nil, err
	}
	ranked := Rank(mine.Dest, peers, s.cfg.SuggestionLimit)

	members := make([]MemberEstimate, 0, len(ranked)+1)
	members = append(members, MemberEstimate{Request: *mine})
	for _, p := range ranked {
		members = append(members, MemberEstimate{Request: p})
	}

	if airport, ok := s.resolveAirport(ctx, fl.ArrivalCode); ok {
		s.fillRoadDistances(ctx, airport.Point, members)
	}

	distances := make([]pricing.MemberDistance, len(members))
	for i, m := range members {
		distances[i] = pricing.MemberDistance{RequestID: m.Request.ID, RoadKm: m.RoadKm, Pax: m.Request.Pax}
	}
	fare, err := pricing.Estimate(distances, s.pricing.ActiveConfig(ctx))
	if err != nil {
		return nil, err
	}

	return &Suggestion{
		Mine:        members[0],
		Peers:       members[1:],
		AirportCode: fl.ArrivalCode,
		Fare:        fare,
	}, nil
}

func (s *Service) resolveAirport(ctx context.Context, code string) (maps.Location, bool) {
	if s.store != nil {
		if loc, ok := s.store.CachedAirport(ctx, code); ok {
			return loc, true
		}
	}
	loc, err := s.geocoder.GeocodeAirport(ctx, code)
	if err != nil {
		s.log.Warn("airport geocoding failed; estimating without road distances",
			zap.String("code", code), zap.Error(err))
		return maps.Location{}, false
	}
	if s.store != nil {
		s.store.CacheAirport(ctx, code, loc)
	}
	return loc, true
}

// fillRoadDistances issues one routing call per member in parallel. Each call
// is independent and read-only, so no coordination beyond the WaitGroup is
// needed; results land in the member slot owned by each goroutine.
func (s *Service) fillRoadDistances(ctx context.Context, airport types.Point, members []MemberEstimate) {
	var wg sync.WaitGroup
	for i := range members {
		wg.Add(1)
		go func(m *MemberEstimate) {
			defer wg.Done()
			est, err := s.router.RoadDistance(ctx, airport, m.Request.Dest)
			if err != nil {
				s.log.Warn("road distance lookup failed",
					zap.String("request_id", string(m.Request.ID)), zap.Error(err))
				return
			}
			m.RoadKm = &est.DistanceKm
			m.EtaMin = &est.DurationMin
		}(&members[i])
	}
	wg.Wait()
}
