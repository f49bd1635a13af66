package pricing

import (
	"context"
	"errors"
	"testing"

	"flanvo/internal/config"
	"flanvo/internal/types"
)

func kmPtr(v float64) *float64 { return &v }

func testConfig() config.PricingConfig {
	return config.PricingConfig{
		BaseFareCents:  1000,
		RatePerKmCents: 120,
		MinFareCents:   1000,
		Currency:       "EUR",
	}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name       string
		members    []MemberDistance
		wantTotal  int64
		wantShares map[types.ID]int64
	}{
		{
			name: "two members, furthest drop-off prices the ride",
			members: []MemberDistance{
				{RequestID: "a", RoadKm: kmPtr(20), Pax: 1},
				{RequestID: "b", RoadKm: kmPtr(15), Pax: 1},
			},
			// 1000 + 120*20 = 3400, split evenly.
			wantTotal:  3400,
			wantShares: map[types.ID]int64{"a": 1700, "b": 1700},
		},
		{
			name: "single member pays the full fare",
			members: []MemberDistance{
				{RequestID: "solo", RoadKm: kmPtr(10), Pax: 2},
			},
			wantTotal:  2200,
			wantShares: map[types.ID]int64{"solo": 2200},
		},
		{
			name: "share rounds up so the split covers the total",
			members: []MemberDistance{
				{RequestID: "a", RoadKm: kmPtr(20), Pax: 1},
				{RequestID: "b", RoadKm: kmPtr(5), Pax: 1},
				{RequestID: "c", RoadKm: kmPtr(1), Pax: 1},
			},
			// 3400 / 3 = 1133.33, rounded up per member.
			wantTotal:  3400,
			wantShares: map[types.ID]int64{"a": 1134, "b": 1134, "c": 1134},
		},
		{
			name: "short hop stays above the minimum fare",
			members: []MemberDistance{
				{RequestID: "a", RoadKm: kmPtr(0.5), Pax: 1},
			},
			wantTotal:  1060,
			wantShares: map[types.ID]int64{"a": 1060},
		},
		{
			name: "all distances unknown falls back to the minimum fare",
			members: []MemberDistance{
				{RequestID: "a", Pax: 1},
				{RequestID: "b", Pax: 1},
			},
			wantTotal:  1000,
			wantShares: map[types.ID]int64{"a": 500, "b": 500},
		},
		{
			name: "nil distances count as zero km",
			members: []MemberDistance{
				{RequestID: "a", RoadKm: kmPtr(20), Pax: 1},
				{RequestID: "b", Pax: 1},
			},
			wantTotal:  3400,
			wantShares: map[types.ID]int64{"a": 1700, "b": 1700},
		},
		{
			name: "fractional kilometres round to the nearest cent",
			members: []MemberDistance{
				{RequestID: "a", RoadKm: kmPtr(16.4), Pax: 1},
			},
			// 120 * 16.4 = 1968.
			wantTotal:  2968,
			wantShares: map[types.ID]int64{"a": 2968},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.members, testConfig())
			if err != nil {
				t.Fatalf("Estimate() error = %v", err)
			}
			if got.TotalCents != tt.wantTotal {
				t.Errorf("total = %d, want %d", got.TotalCents, tt.wantTotal)
			}
			if got.Currency != "EUR" {
				t.Errorf("currency = %s, want EUR", got.Currency)
			}
			for id, want := range tt.wantShares {
				if got.PerMemberCents[id] != want {
					t.Errorf("share for %s = %d, want %d", id, got.PerMemberCents[id], want)
				}
			}
		})
	}
}

func TestEstimate_NoMembers(t *testing.T) {
	_, err := Estimate(nil, testConfig())
	if !errors.Is(err, ErrNoMembers) {
		t.Fatalf("expected ErrNoMembers, got %v", err)
	}
}

func TestEstimate_SharesCoverTotal(t *testing.T) {
	for n := 1; n <= 7; n++ {
		members := make([]MemberDistance, n)
		for i := range members {
			members[i] = MemberDistance{RequestID: types.ID(rune('a' + i)), RoadKm: kmPtr(33.3), Pax: 1}
		}
		got, err := Estimate(members, testConfig())
		if err != nil {
			t.Fatalf("Estimate() error = %v", err)
		}
		var sum int64
		for _, share := range got.PerMemberCents {
			sum += share
		}
		if sum < got.TotalCents {
			t.Errorf("n=%d: shares sum %d below total %d", n, sum, got.TotalCents)
		}
		if sum-got.TotalCents >= int64(n) {
			t.Errorf("n=%d: rounding overshoot %d too large", n, sum-got.TotalCents)
		}
	}
}

func TestActiveConfig_NilStoreUsesDefaults(t *testing.T) {
	s := NewService(nil, testConfig())
	cfg := s.ActiveConfig(context.Background())
	if cfg != testConfig() {
		t.Errorf("ActiveConfig() = %+v, want the defaults", cfg)
	}
}
