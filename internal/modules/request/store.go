// README: Request store backed by PostgreSQL.
package request

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flanvo/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, r *Request) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO requests (id, user_id, flight_id, dest_lat, dest_lon, dest_address, pax, luggage, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		string(r.ID), string(r.UserID), string(r.FlightID),
		r.Dest.Lat, r.Dest.Lon, r.DestAddress, r.Pax, r.Luggage, r.CreatedAt,
	)
	return err
}

// LatestByUser returns the user's most recent request.
func (s *Store) LatestByUser(ctx context.Context, userID types.ID) (*Request, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, flight_id, dest_lat, dest_lon, dest_address, pax, luggage, created_at
		FROM requests
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, string(userID),
	)
	return scanRequest(row)
}

// SameFlightPeers returns every other user's request on the given flight.
func (s *Store) SameFlightPeers(ctx context.Context, flightID, excludingUserID types.ID) ([]Request, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, flight_id, dest_lat, dest_lon, dest_address, pax, luggage, created_at
		FROM requests
		WHERE flight_id = $1 AND user_id <> $2
		ORDER BY created_at`,
		string(flightID), string(excludingUserID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var peers []Request
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		peers = append(peers, *r)
	}
	return peers, rows.Err()
}

// UpsertProfile keeps the user/profile row current so group rosters can show
// payer emails.
func (s *Store) UpsertProfile(ctx context.Context, userID types.ID, email string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (id, email)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email`,
		string(userID), email,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*Request, error) {
	var r Request
	var destAddress, luggage sql.NullString
	err := row.Scan(
		&r.ID, &r.UserID, &r.FlightID,
		&r.Dest.Lat, &r.Dest.Lon, &destAddress, &r.Pax, &luggage, &r.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if destAddress.Valid {
		r.DestAddress = &destAddress.String
	}
	if luggage.Valid {
		r.Luggage = &luggage.String
	}
	return &r, nil
}
