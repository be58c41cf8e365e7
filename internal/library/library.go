package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"

	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/repositories"
	"github.com/desertthunder/reel/internal/shared"
)

// MatchThreshold is the minimum similarity [Service.Find] accepts.
const MatchThreshold = 0.6

var _ Store = (*repositories.TrackRepository)(nil)

// Store persists library tracks in order.
type Store interface {
	Create(track *models.Track) error
	Get(id string) (*models.Track, error)
	Delete(id string) error
	Move(id string, position int) error
	List(criteria map[string]any) ([]models.Track, error)
}

// ImportResult summarizes an [Service.Import] run.
type ImportResult struct {
	Added   int
	Skipped int // already in the library
	Failed  int // invalid or not stored
	Errors  []error
}

// Service is the entry point for reading and changing the library.
type Service struct {
	store  Store
	logger *log.Logger
}

// NewService creates a Service over store. A nil logger discards output.
func NewService(store Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{store: store, logger: logger}
}

// Tracks returns the source list for the carousel, in library order.
func (s *Service) Tracks(ctx context.Context) ([]models.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracks, err := s.store.List(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}
	return tracks, nil
}

// Filter narrows a track listing. Zero values match everything.
type Filter struct {
	Artist string
	Album  string
	Limit  int
	Newest bool // most recently added first instead of library order
}

// List returns the tracks matching f, in library order unless f.Newest is set.
func (s *Service) List(ctx context.Context, f Filter) ([]models.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracks, err := s.store.List(map[string]any{
		"artist": f.Artist,
		"album":  f.Album,
		"limit":  f.Limit,
		"newest": f.Newest,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list library: %w", err)
	}
	return tracks, nil
}

// Library returns the tracks wrapped as a named [models.Library].
func (s *Service) Library(ctx context.Context, name string) (models.Library, error) {
	tracks, err := s.Tracks(ctx)
	if err != nil {
		return models.Library{}, err
	}
	return models.Library{Name: name, Tracks: tracks}, nil
}

// Add appends track to the library.
//
// Returns [models.ErrInvalidTrack] or [shared.ErrDuplicateTrack] wrapped with context.
func (s *Service) Add(ctx context.Context, track *models.Track) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := track.Validate(); err != nil {
		return err
	}
	if err := s.store.Create(track); err != nil {
		return err
	}
	s.logger.Debug("track added", "id", track.ID, "track", track.Label(), "position", track.Position)
	return nil
}

// Remove deletes the track with the given id.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.logger.Debug("track removed", "id", id)
	return nil
}

// Move places the track with the given id at position, shifting the others.
func (s *Service) Move(ctx context.Context, id string, position int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}
	if err := s.store.Move(id, position); err != nil {
		return err
	}
	s.logger.Debug("track moved", "id", id, "position", position)
	return nil
}

// Import reads a TOML library file and adds every track in file order.
//
// The file holds an optional name and a list of [[tracks]] tables.
// Duplicates are skipped; invalid tracks are counted and collected in Errors.
func (s *Service) Import(ctx context.Context, path string) (ImportResult, error) {
	var lib models.Library
	if _, err := toml.DecodeFile(path, &lib); err != nil {
		return ImportResult{}, fmt.Errorf("%w: failed to parse %s: %v", shared.ErrInvalidInput, path, err)
	}

	var result ImportResult
	for i := range lib.Tracks {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		track := lib.Tracks[i]
		track.ID = ""
		err := s.Add(ctx, &track)
		switch {
		case err == nil:
			result.Added++
		case errors.Is(err, shared.ErrDuplicateTrack):
			result.Skipped++
		default:
			result.Failed++
			result.Errors = append(result.Errors, fmt.Errorf("track %d: %w", i+1, err))
		}
	}

	s.logger.Info("library imported", "path", path, "added", result.Added, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}

// Find returns the track whose title or "artist - title" best matches query.
//
// Returns [shared.ErrTrackNotFound] when no track reaches [MatchThreshold].
func (s *Service) Find(ctx context.Context, query string) (*models.Track, error) {
	q := normalize(query)
	if q == "" {
		return nil, fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	tracks, err := s.Tracks(ctx)
	if err != nil {
		return nil, err
	}

	best, bestScore := -1, 0.0
	for i, t := range tracks {
		score := max(match(q, normalize(t.Title)), match(q, normalize(t.Label())))
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 || bestScore < MatchThreshold {
		return nil, fmt.Errorf("%w: %q", shared.ErrTrackNotFound, query)
	}
	s.logger.Debug("fuzzy match", "query", query, "track", tracks[best].Label(), "score", bestScore)
	return &tracks[best], nil
}

// match scores how well q matches candidate in [0, 1].
func match(q, candidate string) float64 {
	if candidate == "" {
		return 0
	}
	score := similarity(q, candidate)
	if strings.Contains(candidate, q) {
		score = max(score, 0.8)
	}
	return score
}

func similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
