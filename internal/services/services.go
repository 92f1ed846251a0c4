// package services defines interface Remote for driving the radio streamer server over HTTP
package services

import (
	"context"

	"github.com/dkarlsson/radiodeck/internal/models"
)

// Remote defines the operations exposed by the radio streamer server.
type Remote interface {
	// Stations retrieves the full station list. The result replaces any
	// previously fetched list wholesale.
	Stations(ctx context.Context) ([]models.Station, error)

	// Play asks the server to start streaming the station with the given id.
	Play(ctx context.Context, stationID int) error

	// Stop halts playback.
	Stop(ctx context.Context) error

	// Pause suspends playback without detaching from the stream.
	Pause(ctx context.Context) error

	// Resume continues playback after a pause.
	Resume(ctx context.Context) error

	// SetVolume sets the playback volume, clamping to [0,100] before sending.
	SetVolume(ctx context.Context, volume int) error

	// Volume reads the current volume. Returns -1 on failure.
	Volume(ctx context.Context) (int, error)

	// Status fetches the current playback state. On failure the returned
	// snapshot is zero-valued with Connected=false.
	Status(ctx context.Context) (models.Status, error)

	// AddStation registers a new station with the server.
	AddStation(ctx context.Context, station models.Station) error

	// RemoveStation deletes a station by id.
	RemoveStation(ctx context.Context, stationID int) error

	// Reachable reports whether the server answered a status probe.
	Reachable(ctx context.Context) bool

	// Name returns a human-readable name for the remote (e.g. its base URL).
	Name() string
}
