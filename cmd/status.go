package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dkarlsson/radiodeck/internal/models"
	"github.com/dkarlsson/radiodeck/internal/tasks"
)

// Status fetches and prints the current playback state.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	status, err := r.remote.Status(ctx)
	if err != nil {
		r.logger.Warn("status fetch failed", "err", err)
		return r.writePlainln("✗ Disconnected (%s)", r.remote.Name())
	}

	if cmd.Bool("json") {
		return r.writeJSON(status, cmd.Bool("pretty"))
	}

	return r.printStatus(status)
}

func (r *Runner) printStatus(status models.Status) error {
	transport := "■ Stopped"
	if status.Playing {
		transport = "▶ Playing"
	}

	r.writePlainln("%s   Volume: %d", transport, status.Volume)
	if np := status.NowPlaying(); np != "" {
		return r.writePlainln("%s", np)
	}
	return nil
}

// Watch polls the server at the configured interval and prints each status
// change until interrupted.
func (r *Runner) Watch(ctx context.Context, cmd *cli.Command) error {
	interval := r.config.Poll.Interval()
	if ms := cmd.Int("interval"); ms > 0 {
		interval = durationMS(int(ms))
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poller := tasks.NewPoller(r.remote, interval, r.logger)
	updates := make(chan tasks.StatusUpdate, 1)

	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx, updates) }()

	r.writePlainln("watching %s every %s (ctrl+c to stop)", r.remote.Name(), interval)

	var last string
	for update := range updates {
		if update.Err != nil {
			line := "✗ connection lost"
			if line != last {
				r.writePlainln("%s", line)
				last = line
			}
			continue
		}

		line := watchLine(update.Status)
		if line != last {
			r.writePlainln("%s", line)
			last = line
		}
	}

	if err := <-done; err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	return nil
}

func durationMS(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func watchLine(status models.Status) string {
	transport := "■"
	if status.Playing {
		transport = "▶"
	}

	np := status.NowPlaying()
	if np == "" {
		np = "(nothing playing)"
	}

	return fmt.Sprintf("%s %s [vol %d]", transport, np, status.Volume)
}
