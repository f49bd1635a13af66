// README: Matching store backed by Redis; caches resolved airport coordinates.
package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"flanvo/internal/maps"
)

const (
	airportKeyPrefix = "matching:airport:%s"
	// Airport coordinates are effectively static; the TTL only bounds
	// staleness after a table edit.
	airportTTL = 7 * 24 * time.Hour
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// CachedAirport returns a previously resolved airport location.
func (s *Store) CachedAirport(ctx context.Context, code string) (maps.Location, bool) {
	if s.redis == nil {
		return maps.Location{}, false
	}
	val, err := s.redis.Get(ctx, airportKey(code)).Result()
	if err != nil {
		return maps.Location{}, false
	}
	var loc maps.Location
	if err := json.Unmarshal([]byte(val), &loc); err != nil {
		return maps.Location{}, false
	}
	return loc, true
}

// CacheAirport stores a resolved airport location.
func (s *Store) CacheAirport(ctx context.Context, code string, loc maps.Location) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, airportKey(code), raw, airportTTL).Err()
}

func airportKey(code string) string {
	return fmt.Sprintf(airportKeyPrefix, strings.ToUpper(code))
}
