// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, stationsCommand, playCommand, stopCommand, pauseCommand,
		resumeCommand, volumeCommand, statusCommand, watchCommand, apiCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a starter config and initialize the station cache",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// stationsCommand handles station listing and management
func stationsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "stations",
		Aliases: []string{"st"},
		Usage:   "List and manage radio stations",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "cached",
				Usage: "Read the local cache instead of the server",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, csv, markdown",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		},
		Action: r.StationsList,
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Register a new station with the server",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Station id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Station name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "url",
						Usage:    "Stream URL",
						Required: true,
					},
				},
				Action: r.StationAdd,
			},
			{
				Name:  "remove",
				Usage: "Delete a station from the server",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Station id",
						Required: true,
					},
				},
				Action: r.StationRemove,
			},
		},
	}
}

func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Start streaming a station",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "id",
				Usage:    "Station id to play",
				Required: true,
			},
		},
		Action: r.Play,
	}
}

func stopCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "stop",
		Usage:  "Stop playback",
		Action: r.Stop,
	}
}

func pauseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "pause",
		Usage:  "Pause playback",
		Action: r.Pause,
	}
}

func resumeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "resume",
		Usage:  "Resume paused playback",
		Action: r.Resume,
	}
}

func volumeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "volume",
		Aliases: []string{"vol"},
		Usage:   "Read or set the playback volume",
		Action:  r.VolumeGet,
		Commands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Set the volume (clamped to 0-100)",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "level",
						Aliases:  []string{"l"},
						Usage:    "Volume level",
						Required: true,
					},
				},
				Action: r.VolumeSet,
			},
		},
	}
}

func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the current playback state",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		},
		Action: r.Status,
	}
}

func watchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Poll the server and print status changes until interrupted",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "Poll interval in milliseconds (defaults to config)",
			},
		},
		Action: r.Watch,
	}
}

// apiCommand handles direct API calls for debugging
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the radio server",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET, prints status and body",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with optional JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "JSON request body",
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive terminal remote control",
		Action: r.TUI,
	}
}
