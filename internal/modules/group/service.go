// README: Group formation; persists a group and its member snapshots.
package group

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"flanvo/internal/modules/pricing"
	"flanvo/internal/types"
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrNotFound       = errors.New("group member not found")
	ErrFlightMismatch = errors.New("request does not belong to the group's flight")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// MemberInput is one member to enroll, with the road distance snapshot taken
// at suggestion time (nil when the lookup failed).
type MemberInput struct {
	RequestID  types.ID
	DistanceKm *float64
}

type FormCommand struct {
	FlightID types.ID
	// Members lists the requester first, then the accepted peers.
	Members []MemberInput
	Fare    pricing.Result
}

// Form creates the group and one member row per participant, atomically.
// Membership is a snapshot: later changes to a request do not propagate.
// Calling Form twice creates two distinct groups; idempotency is the
// caller's concern.
func (s *Service) Form(ctx context.Context, cmd FormCommand) (types.ID, error) {
	if cmd.FlightID == "" || len(cmd.Members) == 0 {
		return "", ErrBadRequest
	}

	ids := make([]string, len(cmd.Members))
	for i, m := range cmd.Members {
		if m.RequestID == "" {
			return "", ErrBadRequest
		}
		ids[i] = string(m.RequestID)
	}
	n, err := s.store.CountOnFlight(ctx, cmd.FlightID, ids)
	if err != nil {
		return "", err
	}
	if n != len(cmd.Members) {
		return "", ErrFlightMismatch
	}

	g := &Group{
		ID:        types.ID(uuid.NewString()),
		FlightID:  cmd.FlightID,
		Status:    StatusForming,
		CreatedAt: time.Now().UTC(),
	}
	members := make([]Member, len(cmd.Members))
	for i, m := range cmd.Members {
		members[i] = Member{
			GroupID:    g.ID,
			RequestID:  m.RequestID,
			DistanceKm: m.DistanceKm,
		}
		if share, ok := cmd.Fare.PerMemberCents[m.RequestID]; ok {
			v := share
			members[i].PriceShareCents = &v
		}
	}

	if err := s.store.Form(ctx, g, members); err != nil {
		return "", err
	}
	return g.ID, nil
}

// MarkPaid records a confirmed payment for one member.
func (s *Service) MarkPaid(ctx context.Context, groupID, requestID types.ID, amountCents int64) error {
	if groupID == "" || requestID == "" {
		return ErrBadRequest
	}
	return s.store.MarkPaid(ctx, groupID, requestID, amountCents)
}

// Roster returns the group's members with payer emails.
func (s *Service) Roster(ctx context.Context, groupID types.ID) ([]RosterEntry, error) {
	if groupID == "" {
		return nil, ErrBadRequest
	}
	return s.store.Roster(ctx, groupID)
}
