// README: Request service validates and persists pooling requests.
package request

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"flanvo/internal/maps"
	"flanvo/internal/modules/flight"
	"flanvo/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("request not found")
	ErrUnresolved = errors.New("destination could not be geocoded")
)

type Service struct {
	store    *Store
	flights  *flight.Store
	geocoder maps.Geocoder
}

func NewService(store *Store, flights *flight.Store, geocoder maps.Geocoder) *Service {
	return &Service{store: store, flights: flights, geocoder: geocoder}
}

type CreateCommand struct {
	UserID       types.ID
	Email        string
	FlightNumber string
	FlightDate   string // yyyy-mm-dd
	ArrivalCode  string
	OriginCode   *string
	DestAddress  string
	DestLat      *float64
	DestLon      *float64
	Pax          int
	Luggage      *string
}

// Create find-or-creates the flight, resolves the destination coordinate
// (geocoding the address when the caller did not supply one), and inserts
// the request.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.UserID == "" || cmd.FlightNumber == "" || cmd.FlightDate == "" || cmd.ArrivalCode == "" {
		return "", ErrBadRequest
	}
	if cmd.Pax <= 0 {
		cmd.Pax = 1
	}

	dest := types.Point{}
	destAddress := cmd.DestAddress
	switch {
	case cmd.DestLat != nil && cmd.DestLon != nil:
		dest = types.Point{Lat: *cmd.DestLat, Lon: *cmd.DestLon}
	case cmd.DestAddress != "":
		loc, err := s.geocoder.GeocodeAddress(ctx, cmd.DestAddress)
		if errors.Is(err, maps.ErrNotFound) {
			return "", ErrUnresolved
		}
		if err != nil {
			return "", err
		}
		dest = loc.Point
		destAddress = loc.Label
	default:
		return "", ErrBadRequest
	}

	flightID, err := s.flights.FindOrCreate(ctx, cmd.FlightNumber, cmd.FlightDate, cmd.ArrivalCode, cmd.OriginCode)
	if err != nil {
		return "", err
	}

	if cmd.Email != "" {
		if err := s.store.UpsertProfile(ctx, cmd.UserID, cmd.Email); err != nil {
			return "", err
		}
	}

	r := &Request{
		ID:        types.ID(uuid.NewString()),
		UserID:    cmd.UserID,
		FlightID:  flightID,
		Dest:      dest,
		Pax:       cmd.Pax,
		Luggage:   cmd.Luggage,
		CreatedAt: time.Now().UTC(),
	}
	if destAddress != "" {
		r.DestAddress = &destAddress
	}
	if err := s.store.Create(ctx, r); err != nil {
		return "", err
	}
	return r.ID, nil
}

// Latest returns the caller's most recent request.
func (s *Service) Latest(ctx context.Context, userID types.ID) (*Request, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.LatestByUser(ctx, userID)
}
