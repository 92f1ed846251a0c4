package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dkarlsson/radiodeck/internal/models"
)

// Play asks the server to start streaming a station.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	id := int(cmd.Int("id"))

	if err := r.remote.Play(ctx, id); err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}

	r.logger.Info("playback started", "station", id)
	return r.writePlainln("▶ Playing station %d", id)
}

// Stop halts playback.
func (r *Runner) Stop(ctx context.Context, cmd *cli.Command) error {
	if err := r.remote.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop playback: %w", err)
	}

	r.logger.Info("playback stopped")
	return r.writePlainln("■ Stopped")
}

// Pause suspends playback without detaching from the stream.
func (r *Runner) Pause(ctx context.Context, cmd *cli.Command) error {
	if err := r.remote.Pause(ctx); err != nil {
		return fmt.Errorf("failed to pause playback: %w", err)
	}

	return r.writePlainln("⏸ Paused")
}

// Resume continues playback after a pause.
func (r *Runner) Resume(ctx context.Context, cmd *cli.Command) error {
	if err := r.remote.Resume(ctx); err != nil {
		return fmt.Errorf("failed to resume playback: %w", err)
	}

	return r.writePlainln("▶ Resumed")
}

// VolumeGet reads and prints the current volume.
func (r *Runner) VolumeGet(ctx context.Context, cmd *cli.Command) error {
	v, err := r.remote.Volume(ctx)
	if err != nil {
		return fmt.Errorf("failed to get volume: %w", err)
	}

	return r.writePlainln("Volume: %d", v)
}

// VolumeSet sets the playback volume, clamped to [0,100].
func (r *Runner) VolumeSet(ctx context.Context, cmd *cli.Command) error {
	requested := int(cmd.Int("level"))
	clamped := models.ClampVolume(requested)

	if err := r.remote.SetVolume(ctx, requested); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}

	if clamped != requested {
		r.logger.Warn("volume clamped", "requested", requested, "sent", clamped)
	}

	return r.writePlainln("Volume: %d", clamped)
}
