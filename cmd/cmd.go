// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand initializes local state
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file and database",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   defaultConfigPath,
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Where to write the file",
						Value:   defaultConfigPath,
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// libraryCommand manages the tracks shown in the carousel
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Manage the track library",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tracks in carousel order",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "artist",
						Usage: "Only tracks by this artist",
					},
					&cli.StringFlag{
						Name:  "album",
						Usage: "Only tracks from this album",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of tracks to return",
					},
					&cli.BoolFlag{
						Name:  "newest",
						Usage: "Most recently added first",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.LibraryList,
			},
			{
				Name:  "add",
				Usage: "Append a track to the library",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Track title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "artist",
						Aliases:  []string{"a"},
						Usage:    "Track artist",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "album",
						Usage: "Album name",
					},
					&cli.StringFlag{
						Name:  "cover",
						Usage: "Cover art URL",
					},
					&cli.IntFlag{
						Name:  "duration",
						Usage: "Length in seconds",
					},
				},
				Action: r.LibraryAdd,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Remove a track",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Track ID",
						Required: true,
					},
				},
				Action: r.LibraryRemove,
			},
			{
				Name:  "move",
				Usage: "Change a track's position",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Track ID",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "position",
						Usage:    "New zero-based position",
						Required: true,
					},
				},
				Action: r.LibraryMove,
			},
			{
				Name:      "import",
				Usage:     "Add tracks from a TOML library file",
				ArgsUsage: "<path>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Action: r.LibraryImport,
			},
			{
				Name:      "find",
				Usage:     "Fuzzy search by title or \"artist - title\"",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.LibraryFind,
			},
			{
				Name:  "export",
				Usage: "Export the library (csv, markdown, text, json)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format",
						Value:   string(defaultExportFormat),
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path, - for stdout",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Library name used in the export",
						Value: "Library",
					},
				},
				Action: r.LibraryExport,
			},
		},
	}
}

// carouselCommand exposes the position controller for debugging
func carouselCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "carousel",
		Usage: "Inspect carousel behavior",
		Commands: []*cli.Command{
			{
				Name:      "simulate",
				Usage:     "Dry run the controller over synthetic items",
				ArgsUsage: "[advance:K | select:P | reset:N]...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "items",
						Aliases: []string{"n"},
						Usage:   "Number of source items",
						Value:   5,
					},
					&cli.IntFlag{
						Name:  "delay",
						Usage: "Settle delay in milliseconds (default from config)",
					},
					&cli.BoolFlag{
						Name:  "no-wait",
						Usage: "Exit without waiting for a pending correction",
					},
				},
				Action: r.CarouselSimulate,
			},
		},
	}
}

// tuiCommand launches the interactive carousel
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse the library on the carousel",
		Action: r.TUI,
	}
}
