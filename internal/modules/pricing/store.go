// README: Tariff store backed by PostgreSQL (ncc_partners table).
package pricing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flanvo/internal/config"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ActiveTariff returns the tariff of the active NCC partner, or ok=false when
// no partner row exists (callers fall back to configured defaults).
func (s *Store) ActiveTariff(ctx context.Context) (config.PricingConfig, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT base_fare_cents, rate_per_km_cents, min_fare_cents, currency
		FROM ncc_partners
		WHERE active
		ORDER BY created_at
		LIMIT 1`,
	)
	var cfg config.PricingConfig
	err := row.Scan(&cfg.BaseFareCents, &cfg.RatePerKmCents, &cfg.MinFareCents, &cfg.Currency)
	if errors.Is(err, pgx.ErrNoRows) {
		return config.PricingConfig{}, false, nil
	}
	if err != nil {
		return config.PricingConfig{}, false, err
	}
	return cfg, true, nil
}
