// README: Flight store backed by PostgreSQL with a Redis natural-key cache.
package flight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"flanvo/internal/types"
)

const (
	flightKeyPrefix = "flight:%s:%s:%s"
	cacheTTL        = 24 * time.Hour
)

var ErrNotFound = errors.New("flight not found")

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

// FindOrCreate resolves a flight by its natural key, inserting only if
// absent. Two travelers racing on the same flight both survive: the losing
// inserter hits the unique index (23505) and falls back to the lookup.
func (s *Store) FindOrCreate(ctx context.Context, number, date, arrivalCode string, originCode *string) (types.ID, error) {
	if id, ok := s.cachedID(ctx, number, date, arrivalCode); ok {
		return id, nil
	}

	id, err := s.findID(ctx, number, date, arrivalCode)
	if err == nil {
		s.cacheID(ctx, number, date, arrivalCode, id)
		return id, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	id = types.ID(uuid.NewString())
	_, err = s.db.Exec(ctx, `
		INSERT INTO flights (id, flight_number, flight_date, airport_code, origin_airport_code, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`,
		string(id), number, date, arrivalCode, originCode,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost the race; the winner's row is authoritative.
			id, err = s.findID(ctx, number, date, arrivalCode)
			if err != nil {
				return "", err
			}
		} else {
			return "", err
		}
	}

	s.cacheID(ctx, number, date, arrivalCode, id)
	return id, nil
}

// Get returns a flight by id.
func (s *Store) Get(ctx context.Context, id types.ID) (*Flight, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, flight_number, flight_date, airport_code, origin_airport_code, created_at
		FROM flights
		WHERE id = $1`, string(id),
	)
	var f Flight
	err := row.Scan(&f.ID, &f.Number, &f.Date, &f.ArrivalCode, &f.OriginCode, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) findID(ctx context.Context, number, date, arrivalCode string) (types.ID, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id FROM flights
		WHERE flight_number = $1 AND flight_date = $2 AND airport_code = $3`,
		number, date, arrivalCode,
	)
	var id string
	err := row.Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return types.ID(id), nil
}

func (s *Store) cachedID(ctx context.Context, number, date, arrivalCode string) (types.ID, bool) {
	if s.redis == nil {
		return "", false
	}
	val, err := s.redis.Get(ctx, flightKey(number, date, arrivalCode)).Result()
	if err != nil {
		return "", false
	}
	return types.ID(val), true
}

func (s *Store) cacheID(ctx context.Context, number, date, arrivalCode string, id types.ID) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Set(ctx, flightKey(number, date, arrivalCode), string(id), cacheTTL).Err()
}

func flightKey(number, date, arrivalCode string) string {
	return fmt.Sprintf(flightKeyPrefix, number, date, arrivalCode)
}
