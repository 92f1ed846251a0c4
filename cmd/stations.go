package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dkarlsson/radiodeck/internal/formatter"
	"github.com/dkarlsson/radiodeck/internal/models"
	"github.com/dkarlsson/radiodeck/internal/shared"
)

// StationsList fetches the station list and prints it in the requested format.
//
// The freshly fetched list replaces the local cache wholesale. With --cached,
// or when the server is unreachable, the cached snapshot is used instead.
func (r *Runner) StationsList(ctx context.Context, cmd *cli.Command) error {
	var stations []models.Station
	var err error

	if cmd.Bool("cached") {
		if err := r.openCache(); err != nil {
			return err
		}
		stations, err = r.stations.List()
		if err != nil {
			return fmt.Errorf("failed to read cached stations: %w", err)
		}
	} else {
		stations, err = r.remote.Stations(ctx)
		if err != nil {
			r.logger.Warn("station fetch failed, trying cache", "err", err)
			if cacheErr := r.openCache(); cacheErr != nil {
				return fmt.Errorf("failed to fetch stations: %w", err)
			}
			stations, err = r.stations.List()
			if errors.Is(err, shared.ErrEmptyCache) {
				return fmt.Errorf("%w and the cache is empty", shared.ErrServerUnreachable)
			}
			if err != nil {
				return fmt.Errorf("failed to read cached stations: %w", err)
			}
			r.writePlainln("(showing cached stations; server unreachable)")
		} else if cacheErr := r.cacheStations(stations); cacheErr != nil {
			// Cache refresh is best effort; the listing still succeeds.
			r.logger.Warn("failed to refresh station cache", "err", cacheErr)
		}
	}

	return r.renderStations(cmd, stations)
}

// cacheStations replaces the cached snapshot with the given list.
func (r *Runner) cacheStations(stations []models.Station) error {
	if err := r.openCache(); err != nil {
		return err
	}
	return r.stations.ReplaceAll(stations)
}

// renderStations writes the station list in the format selected by flags.
func (r *Runner) renderStations(cmd *cli.Command, stations []models.Station) error {
	if cmd.Bool("json") {
		return r.writeJSON(stations, cmd.Bool("pretty"))
	}

	var out []byte
	switch format := cmd.String("format"); format {
	case "csv":
		data, err := formatter.StationsToCSV(stations)
		if err != nil {
			return err
		}
		out = data
	case "markdown", "md":
		out = formatter.StationsToMarkdown("Stations", stations)
	case "", "text":
		out = formatter.StationsToText(stations)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, out, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return r.writePlainln("wrote %d stations to %s", len(stations), path)
	}

	return r.writePlain("%s", out)
}

// StationAdd registers a new station with the server.
func (r *Runner) StationAdd(ctx context.Context, cmd *cli.Command) error {
	station := models.Station{
		ID:   int(cmd.Int("id")),
		Name: cmd.String("name"),
		URL:  cmd.String("url"),
	}

	if err := r.remote.AddStation(ctx, station); err != nil {
		return fmt.Errorf("failed to add station: %w", err)
	}

	r.logger.Info("station added", "id", station.ID, "name", station.Name)
	return r.writePlainln("✓ Added station %d: %s", station.ID, station.Name)
}

// StationRemove deletes a station from the server.
func (r *Runner) StationRemove(ctx context.Context, cmd *cli.Command) error {
	id := int(cmd.Int("id"))

	if err := r.remote.RemoveStation(ctx, id); err != nil {
		return fmt.Errorf("failed to remove station: %w", err)
	}

	r.logger.Info("station removed", "id", id)
	return r.writePlainln("✓ Removed station %d", id)
}
