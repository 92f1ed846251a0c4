package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dkarlsson/radiodeck/internal/models"
	"github.com/dkarlsson/radiodeck/internal/shared"
)

// StationRepository persists the last fetched station list in SQLite.
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a repository backed by the given database.
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// ReplaceAll swaps the cached station list for the given one in a single
// transaction. Replaying the same list is a no-op for readers: the resulting
// rows are identical.
func (r *StationRepository) ReplaceAll(stations []models.Station) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM stations"); err != nil {
		return fmt.Errorf("failed to clear station cache: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO stations (id, name, url, position, fetched_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i, st := range stations {
		if _, err := stmt.Exec(st.ID, st.Name, st.URL, i, now); err != nil {
			return fmt.Errorf("failed to insert station %d: %w", st.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit station cache: %w", err)
	}

	return nil
}

// List returns the cached stations in server order.
//
// Returns [shared.ErrEmptyCache] when no snapshot has been stored yet.
func (r *StationRepository) List() ([]models.Station, error) {
	rows, err := r.db.Query("SELECT id, name, url FROM stations ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var st models.Station
		if err := rows.Scan(&st.ID, &st.Name, &st.URL); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stations: %w", err)
	}

	if len(stations) == 0 {
		return nil, shared.ErrEmptyCache
	}

	return stations, nil
}

// Get returns a single cached station by id.
func (r *StationRepository) Get(id int) (*models.Station, error) {
	var st models.Station
	err := r.db.QueryRow("SELECT id, name, url FROM stations WHERE id = ?", id).Scan(&st.ID, &st.Name, &st.URL)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", shared.ErrStationNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query station %d: %w", id, err)
	}

	return &st, nil
}

// FetchedAt returns when the current snapshot was stored, or the zero time
// for an empty cache.
func (r *StationRepository) FetchedAt() (time.Time, error) {
	var ts sql.NullTime
	err := r.db.QueryRow("SELECT MAX(fetched_at) FROM stations").Scan(&ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query fetch time: %w", err)
	}

	if !ts.Valid {
		return time.Time{}, nil
	}

	return ts.Time, nil
}
