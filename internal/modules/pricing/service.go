// README: Pricing service computes group fare estimates.
//
// Fare model: max-distance even split. The group pays for the single furthest
// drop-off (base fare + per-km rate x max road distance, floored at the
// minimum fare) and every member owes an equal share, rounded up to the next
// cent so the shares always cover the total.
package pricing

import (
	"context"
	"errors"
	"math"

	"flanvo/internal/config"
	"flanvo/internal/types"
)

var ErrNoMembers = errors.New("no members to estimate")

type Service struct {
	store    *Store
	defaults config.PricingConfig
}

// NewService builds a pricing service. store may be nil; defaults are used
// whenever no partner tariff is available.
func NewService(store *Store, defaults config.PricingConfig) *Service {
	return &Service{store: store, defaults: defaults}
}

// ActiveConfig returns the partner tariff when one is configured, otherwise
// the process defaults. Lookup errors degrade to the defaults.
func (s *Service) ActiveConfig(ctx context.Context) config.PricingConfig {
	if s.store == nil {
		return s.defaults
	}
	cfg, ok, err := s.store.ActiveTariff(ctx)
	if err != nil || !ok {
		return s.defaults
	}
	return cfg
}

// Estimate computes the group total and per-member shares. Members with a nil
// road distance count as zero km. Fails with ErrNoMembers on an empty group.
func Estimate(members []MemberDistance, cfg config.PricingConfig) (Result, error) {
	if len(members) == 0 {
		return Result{}, ErrNoMembers
	}

	maxKm := 0.0
	for _, m := range members {
		if m.RoadKm != nil && *m.RoadKm > maxKm {
			maxKm = *m.RoadKm
		}
	}

	total := cfg.BaseFareCents + int64(math.Round(float64(cfg.RatePerKmCents)*maxKm))
	if total < cfg.MinFareCents {
		total = cfg.MinFareCents
	}

	share := ceilDiv(total, int64(len(members)))
	perMember := make(map[types.ID]int64, len(members))
	for _, m := range members {
		perMember[m.RequestID] = share
	}

	return Result{TotalCents: total, PerMemberCents: perMember, Currency: cfg.Currency}, nil
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
