package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/dkarlsson/radiodeck/internal/models"
	"github.com/dkarlsson/radiodeck/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func sampleStations() []models.Station {
	return []models.Station{
		{ID: 1, Name: "Sveriges Radio P1", URL: "https://http-live.sr.se/p1-mp3-192"},
		{ID: 2, Name: "Sveriges Radio P2", URL: "https://http-live.sr.se/p2-mp3-192"},
		{ID: 3, Name: "Sveriges Radio P3", URL: "https://http-live.sr.se/p3-mp3-192"},
	}
}

func TestStationRepository(t *testing.T) {
	t.Run("List On Empty Cache", func(t *testing.T) {
		repo := NewStationRepository(newTestDB(t))

		_, err := repo.List()
		if !errors.Is(err, shared.ErrEmptyCache) {
			t.Errorf("expected ErrEmptyCache, got %v", err)
		}
	})

	t.Run("ReplaceAll Then List Preserves Order", func(t *testing.T) {
		repo := NewStationRepository(newTestDB(t))

		if err := repo.ReplaceAll(sampleStations()); err != nil {
			t.Fatalf("failed to replace stations: %v", err)
		}

		stations, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list stations: %v", err)
		}
		if len(stations) != 3 {
			t.Fatalf("expected 3 stations, got %d", len(stations))
		}
		for i, want := range sampleStations() {
			if stations[i] != want {
				t.Errorf("station %d: expected %+v, got %+v", i, want, stations[i])
			}
		}
	})

	t.Run("ReplaceAll Is Idempotent", func(t *testing.T) {
		repo := NewStationRepository(newTestDB(t))

		if err := repo.ReplaceAll(sampleStations()); err != nil {
			t.Fatalf("first replace failed: %v", err)
		}
		first, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list stations: %v", err)
		}

		if err := repo.ReplaceAll(sampleStations()); err != nil {
			t.Fatalf("second replace failed: %v", err)
		}
		second, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list stations: %v", err)
		}

		if len(first) != len(second) {
			t.Fatalf("expected identical lists, got %d vs %d entries", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("station %d changed across identical replaces: %+v vs %+v", i, first[i], second[i])
			}
		}
	})

	t.Run("ReplaceAll Swaps Wholesale", func(t *testing.T) {
		repo := NewStationRepository(newTestDB(t))

		if err := repo.ReplaceAll(sampleStations()); err != nil {
			t.Fatalf("failed to seed stations: %v", err)
		}

		replacement := []models.Station{
			{ID: 9, Name: "NRK P1", URL: "http://lyd.nrk.no/p1"},
		}
		if err := repo.ReplaceAll(replacement); err != nil {
			t.Fatalf("failed to replace stations: %v", err)
		}

		stations, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list stations: %v", err)
		}
		if len(stations) != 1 || stations[0].ID != 9 {
			t.Errorf("expected only the replacement station, got %+v", stations)
		}
	})

	t.Run("Get", func(t *testing.T) {
		repo := NewStationRepository(newTestDB(t))

		if err := repo.ReplaceAll(sampleStations()); err != nil {
			t.Fatalf("failed to seed stations: %v", err)
		}

		st, err := repo.Get(2)
		if err != nil {
			t.Fatalf("failed to get station: %v", err)
		}
		if st.Name != "Sveriges Radio P2" {
			t.Errorf("expected P2, got %+v", st)
		}

		if _, err := repo.Get(42); !errors.Is(err, shared.ErrStationNotFound) {
			t.Errorf("expected ErrStationNotFound, got %v", err)
		}
	})

	t.Run("FetchedAt", func(t *testing.T) {
		repo := NewStationRepository(newTestDB(t))

		ts, err := repo.FetchedAt()
		if err != nil {
			t.Fatalf("failed to query fetch time: %v", err)
		}
		if !ts.IsZero() {
			t.Errorf("expected zero time for empty cache, got %v", ts)
		}

		if err := repo.ReplaceAll(sampleStations()); err != nil {
			t.Fatalf("failed to seed stations: %v", err)
		}

		ts, err = repo.FetchedAt()
		if err != nil {
			t.Fatalf("failed to query fetch time: %v", err)
		}
		if ts.IsZero() {
			t.Error("expected non-zero fetch time after replace")
		}
	})
}
