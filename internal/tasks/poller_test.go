package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkarlsson/radiodeck/internal/models"
	tu "github.com/dkarlsson/radiodeck/internal/testing"
)

func TestPoller(t *testing.T) {
	t.Run("Delivers Updates Until Cancelled", func(t *testing.T) {
		remote := &tu.MockRemote{
			StatusFn: func(ctx context.Context) (models.Status, error) {
				return models.Status{Playing: true, Volume: 40, Connected: true}, nil
			},
		}

		poller := NewPoller(remote, time.Millisecond, nil)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		updates := make(chan StatusUpdate, 8)
		done := make(chan error, 1)
		go func() { done <- poller.Run(ctx, updates) }()

		var got []StatusUpdate
		for update := range updates {
			got = append(got, update)
			if len(got) == 3 {
				cancel()
			}
		}

		if err := <-done; err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
		if len(got) < 3 {
			t.Fatalf("expected at least 3 updates, got %d", len(got))
		}

		for i, update := range got[:3] {
			if update.Seq != i+1 {
				t.Errorf("update %d: expected seq %d, got %d", i, i+1, update.Seq)
			}
			if update.ID == "" {
				t.Errorf("update %d: expected correlation id", i)
			}
			if !update.Status.Connected {
				t.Errorf("update %d: expected connected snapshot", i)
			}
		}
	})

	t.Run("Failed Fetch Yields Disconnected Snapshot", func(t *testing.T) {
		remote := &tu.MockRemote{
			StatusFn: func(ctx context.Context) (models.Status, error) {
				return models.Status{}, errors.New("no route to host")
			},
		}

		poller := NewPoller(remote, time.Millisecond, nil)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		updates := make(chan StatusUpdate, 1)
		go poller.Run(ctx, updates)

		select {
		case update := <-updates:
			if update.Err == nil {
				t.Error("expected update to carry the fetch error")
			}
			if update.Status.Connected {
				t.Error("expected Connected=false on failed fetch")
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for update")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		poller := NewPoller(&tu.MockRemote{}, 0, nil)

		if poller.Interval() != 2*time.Second {
			t.Errorf("expected default interval 2s, got %v", poller.Interval())
		}
	})

	t.Run("Closes Channel On Return", func(t *testing.T) {
		poller := NewPoller(&tu.MockRemote{}, time.Millisecond, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		updates := make(chan StatusUpdate)
		if err := poller.Run(ctx, updates); err != nil {
			t.Fatalf("expected nil on cancelled context, got %v", err)
		}

		if _, ok := <-updates; ok {
			t.Error("expected updates channel to be closed")
		}
	})
}
