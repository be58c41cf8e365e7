package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/reel/internal/formatter"
	"github.com/desertthunder/reel/internal/library"
	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

const defaultExportFormat = formatter.FormatMarkdown

// LibraryList prints the library in carousel order.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	lib, err := r.Library()
	if err != nil {
		return err
	}

	tracks, err := lib.List(ctx, library.Filter{
		Artist: cmd.String("artist"),
		Album:  cmd.String("album"),
		Limit:  cmd.Int("limit"),
		Newest: cmd.Bool("newest"),
	})
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		if tracks == nil {
			tracks = []models.Track{}
		}
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	}

	if len(tracks) == 0 {
		return r.writePlain("Library is empty. Add tracks with 'reel library add'.\n")
	}

	r.writePlainHeader(fmt.Sprintf("Library (%d tracks)", len(tracks)))
	for i, t := range tracks {
		r.writePlain("%3d. %-40s %6s  %s\n", i, t.Label(), t.DurationString(), t.ID)
	}
	return nil
}

// LibraryAdd appends a track.
func (r *Runner) LibraryAdd(ctx context.Context, cmd *cli.Command) error {
	lib, err := r.Library()
	if err != nil {
		return err
	}

	track := &models.Track{
		Title:    cmd.String("title"),
		Artist:   cmd.String("artist"),
		Album:    cmd.String("album"),
		CoverURL: cmd.String("cover"),
		Duration: cmd.Int("duration"),
	}
	if err := lib.Add(ctx, track); err != nil {
		return fmt.Errorf("failed to add track: %w", err)
	}

	return r.writePlain("✓ Added %s at position %d (%s)\n", track.Label(), track.Position, track.ID)
}

// LibraryRemove deletes a track by id.
func (r *Runner) LibraryRemove(ctx context.Context, cmd *cli.Command) error {
	lib, err := r.Library()
	if err != nil {
		return err
	}

	id := cmd.String("id")
	if err := lib.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove track: %w", err)
	}
	return r.writePlain("✓ Removed %s\n", id)
}

// LibraryMove changes a track's position.
func (r *Runner) LibraryMove(ctx context.Context, cmd *cli.Command) error {
	lib, err := r.Library()
	if err != nil {
		return err
	}

	id, position := cmd.String("id"), cmd.Int("position")
	if err := lib.Move(ctx, id, position); err != nil {
		return fmt.Errorf("failed to move track: %w", err)
	}
	return r.writePlain("✓ Moved %s to position %d\n", id, position)
}

// LibraryImport adds every track from a TOML file.
func (r *Runner) LibraryImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path", shared.ErrMissingArgument)
	}

	lib, err := r.Library()
	if err != nil {
		return err
	}

	result, err := lib.Import(ctx, path)
	if err != nil {
		return err
	}

	for _, e := range result.Errors {
		r.logger.Warn("skipped track", "error", e)
	}
	return r.writePlain("✓ Imported %s: %d added, %d already present, %d failed\n",
		path, result.Added, result.Skipped, result.Failed)
}

// LibraryFind prints the closest match for the query.
func (r *Runner) LibraryFind(ctx context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	lib, err := r.Library()
	if err != nil {
		return err
	}

	track, err := lib.Find(ctx, query)
	if errors.Is(err, shared.ErrTrackNotFound) {
		return r.writePlain("No track matches %q\n", query)
	} else if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(track, false)
	}
	return r.writePlain("%d. %s [%s] (%s)\n", track.Position, track.Label(), track.DurationString(), track.ID)
}

// LibraryExport writes the library in the requested format.
//
// With --output - the export is written to stdout.
func (r *Runner) LibraryExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	lib, err := r.Library()
	if err != nil {
		return err
	}

	export, err := lib.Library(ctx, cmd.String("name"))
	if err != nil {
		return err
	}
	if len(export.Tracks) == 0 {
		return fmt.Errorf("%w: nothing to export", shared.ErrEmptyLibrary)
	}

	if cmd.String("output") == "-" {
		data, err := formatter.Export(export, format)
		if err != nil {
			return err
		}
		_, err = r.output.Write(data)
		return err
	}

	path, err := formatter.WriteExport(export, format, cmd.String("output"))
	if err != nil {
		return err
	}
	r.logger.Info("library exported", "format", format, "tracks", len(export.Tracks))
	return r.writePlain("✓ Exported %d tracks to %s\n", len(export.Tracks), path)
}
