package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dkarlsson/radiodeck/internal/shared"
)

// Setup writes a starter config file and initializes the station cache database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}
		r.writePlainln("✓ Created %s", configPath)
	} else {
		r.writePlainln("config already exists at %s, leaving it alone", configPath)
	}

	if err := r.openCache(); err != nil {
		return err
	}

	r.logger.Info("setup complete", "config", configPath, "database", r.config.Database.Path)
	r.writePlainln("✓ Station cache ready at %s", r.config.Database.Path)
	r.writePlainln("Edit %s with your radio server address, then run 'radiodeck stations'.", configPath)

	return nil
}
