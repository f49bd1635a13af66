// README: Group store backed by PostgreSQL; formation is transactional.
package group

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"flanvo/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Form inserts the group row and all member rows in one transaction: either
// everything lands or nothing does.
func (s *Store) Form(ctx context.Context, g *Group, members []Member) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO groups (id, flight_id, status, created_at)
		VALUES ($1, $2, $3, $4)`,
		string(g.ID), string(g.FlightID), string(g.Status), g.CreatedAt,
	)
	if err != nil {
		return err
	}
	for _, m := range members {
		_, err = tx.Exec(ctx, `
			INSERT INTO group_members (group_id, request_id, distance_km, price_share_cents, status)
			VALUES ($1, $2, $3, $4, $5)`,
			string(m.GroupID), string(m.RequestID), m.DistanceKm, m.PriceShareCents, m.PaidStatus,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// MarkPaid records a completed payment on one member row.
func (s *Store) MarkPaid(ctx context.Context, groupID, requestID types.ID, amountCents int64) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE group_members
		SET price_share_cents = $1, status = 'paid'
		WHERE group_id = $2 AND request_id = $3`,
		amountCents, string(groupID), string(requestID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Roster returns the group's member rows joined with payer emails.
func (s *Store) Roster(ctx context.Context, groupID types.ID) ([]RosterEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT gm.request_id, r.user_id, u.email, gm.distance_km, gm.price_share_cents, gm.status
		FROM group_members gm
		JOIN requests r ON r.id = gm.request_id
		LEFT JOIN users u ON u.id = r.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.request_id`, string(groupID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []RosterEntry
	for rows.Next() {
		var e RosterEntry
		var email, paid sql.NullString
		var km sql.NullFloat64
		var share sql.NullInt64
		if err := rows.Scan(&e.RequestID, &e.UserID, &email, &km, &share, &paid); err != nil {
			return nil, err
		}
		if email.Valid {
			e.Email = &email.String
		}
		if km.Valid {
			e.DistanceKm = &km.Float64
		}
		if share.Valid {
			e.PriceShareCents = &share.Int64
		}
		if paid.Valid {
			e.PaidStatus = &paid.String
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}

// CountOnFlight reports how many of the given requests belong to the flight.
func (s *Store) CountOnFlight(ctx context.Context, flightID types.ID, requestIDs []string) (int, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM requests
		WHERE flight_id = $1 AND id = ANY($2)`,
		string(flightID), requestIDs,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
