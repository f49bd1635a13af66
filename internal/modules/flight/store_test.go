// README: Integration tests for the flight store; run against a real database
// by setting FLANVO_TEST_DSN.
package flight

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("FLANVO_TEST_DSN")
	if dsn == "" {
		t.Skip("FLANVO_TEST_DSN not set; skipping database tests")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestFindOrCreate_Idempotent(t *testing.T) {
	pool := newTestPool(t)
	store := NewStore(pool, nil)
	ctx := context.Background()

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM flights WHERE flight_number = 'TST100'`)
	})

	id1, err := store.FindOrCreate(ctx, "TST100", "2026-09-15", "FCO", nil)
	if err != nil {
		t.Fatalf("first FindOrCreate: %v", err)
	}
	id2, err := store.FindOrCreate(ctx, "TST100", "2026-09-15", "FCO", nil)
	if err != nil {
		t.Fatalf("second FindOrCreate: %v", err)
	}
	if id1 != id2 {
		t.Errorf("same natural key produced two flights: %s vs %s", id1, id2)
	}

	// A different date is a different flight.
	id3, err := store.FindOrCreate(ctx, "TST100", "2026-09-16", "FCO", nil)
	if err != nil {
		t.Fatalf("third FindOrCreate: %v", err)
	}
	if id3 == id1 {
		t.Error("different date reused the same flight")
	}
}

func TestGet_RoundTrip(t *testing.T) {
	pool := newTestPool(t)
	store := NewStore(pool, nil)
	ctx := context.Background()

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM flights WHERE flight_number = 'TST101'`)
	})

	origin := "ZRH"
	id, err := store.FindOrCreate(ctx, "TST101", "2026-09-15", "FCO", &origin)
	if err != nil {
		t.Fatalf("FindOrCreate: %v", err)
	}

	f, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if f.Number != "TST101" || f.ArrivalCode != "FCO" {
		t.Errorf("unexpected flight: %+v", f)
	}
	if f.OriginCode == nil || *f.OriginCode != "ZRH" {
		t.Errorf("origin = %v, want ZRH", f.OriginCode)
	}
}

func TestGet_NotFound(t *testing.T) {
	pool := newTestPool(t)
	store := NewStore(pool, nil)

	_, err := store.Get(context.Background(), "no-such-flight")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
