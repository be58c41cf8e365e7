package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
)

const trackColumns = `id, position, title, artist, album, cover_url, duration`

// TrackRepository persists the library tracks shown in the carousel.
//
// Tracks are unique by normalized title and artist ([shared.NormalizeTrackKey]).
type TrackRepository struct {
	db *sql.DB
}

// NewTrackRepository creates a new TrackRepository with the given database connection
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// Create appends a track to the end of the library, setting its ID and Position.
//
// Returns [shared.ErrDuplicateTrack] when a live track with the same title and artist exists.
func (r *TrackRepository) Create(track *models.Track) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sequence, err := NextSequence(tx, "tracks")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	var position int
	err = tx.QueryRow(`SELECT COALESCE(MAX(position) + 1, 0) FROM tracks WHERE deleted_at IS NULL`).Scan(&position)
	if err != nil {
		return fmt.Errorf("failed to get next position: %w", err)
	}

	id := shared.GenerateID()
	now := time.Now()

	query := `
		INSERT INTO tracks (id, sequence, position, title, artist, album, cover_url, duration, track_key, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.Exec(query,
		id,
		sequence,
		position,
		track.Title,
		track.Artist,
		track.Album,
		track.CoverURL,
		track.Duration,
		shared.NormalizeTrackKey(track.Title, track.Artist),
		now,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", shared.ErrDuplicateTrack, track.Label())
		}
		return fmt.Errorf("failed to insert track: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit track: %w", err)
	}

	track.ID = id
	track.Position = position
	return nil
}

// Get retrieves a track by ID, excluding soft-deleted tracks
func (r *TrackRepository) Get(id string) (*models.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE id = ? AND deleted_at IS NULL`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByKey retrieves a live track by title and artist, ignoring case and extra whitespace.
func (r *TrackRepository) GetByKey(title, artist string) (*models.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE track_key = ? AND deleted_at IS NULL`
	return r.scanOne(r.db.QueryRow(query, shared.NormalizeTrackKey(title, artist)))
}

// Update modifies an existing track's metadata. Position changes go through [TrackRepository.Move].
func (r *TrackRepository) Update(track *models.Track) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE tracks
		SET title = ?, artist = ?, album = ?, cover_url = ?, duration = ?, track_key = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		track.Title,
		track.Artist,
		track.Album,
		track.CoverURL,
		track.Duration,
		shared.NormalizeTrackKey(track.Title, track.Artist),
		time.Now(),
		track.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", shared.ErrDuplicateTrack, track.Label())
		}
		return fmt.Errorf("failed to update track: %w", err)
	}

	return expectAffected(result, track.ID)
}

// Delete soft-deletes a track by ID and closes the gap it leaves in the ordering.
func (r *TrackRepository) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRow(`SELECT position FROM tracks WHERE id = ? AND deleted_at IS NULL`, id).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to get track position: %w", err)
	}

	if _, err := tx.Exec(`UPDATE tracks SET deleted_at = ? WHERE id = ?`, time.Now(), id); err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}

	_, err = tx.Exec(`UPDATE tracks SET position = position - 1 WHERE position > ? AND deleted_at IS NULL`, position)
	if err != nil {
		return fmt.Errorf("failed to compact positions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// Move places a track at position, shifting the tracks in between. Out of range positions are clamped.
func (r *TrackRepository) Move(id string, position int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current, count int
	err = tx.QueryRow(`SELECT position FROM tracks WHERE id = ? AND deleted_at IS NULL`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to get track position: %w", err)
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM tracks WHERE deleted_at IS NULL`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count tracks: %w", err)
	}

	position = max(0, min(position, count-1))
	if position == current {
		return nil
	}

	if position > current {
		_, err = tx.Exec(`UPDATE tracks SET position = position - 1 WHERE position > ? AND position <= ? AND deleted_at IS NULL`, current, position)
	} else {
		_, err = tx.Exec(`UPDATE tracks SET position = position + 1 WHERE position >= ? AND position < ? AND deleted_at IS NULL`, position, current)
	}
	if err != nil {
		return fmt.Errorf("failed to shift tracks: %w", err)
	}

	if _, err := tx.Exec(`UPDATE tracks SET position = ?, updated_at = ? WHERE id = ?`, position, time.Now(), id); err != nil {
		return fmt.Errorf("failed to move track: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit move: %w", err)
	}
	return nil
}

// Count returns the number of live tracks.
func (r *TrackRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM tracks WHERE deleted_at IS NULL`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tracks: %w", err)
	}
	return count, nil
}

// List retrieves live tracks in library order.
//
// Supported criteria: "artist" and "album" (exact, case-insensitive), "limit" (int)
// and "newest" (bool), which orders by insertion, most recent first.
func (r *TrackRepository) List(criteria map[string]any) ([]models.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE deleted_at IS NULL`
	args := []any{}

	if artist, ok := criteria["artist"].(string); ok && artist != "" {
		query += " AND artist = ? COLLATE NOCASE"
		args = append(args, artist)
	}

	if album, ok := criteria["album"].(string); ok && album != "" {
		query += " AND album = ? COLLATE NOCASE"
		args = append(args, album)
	}

	if newest, _ := criteria["newest"].(bool); newest {
		query += " ORDER BY sequence DESC"
	} else {
		query += " ORDER BY position ASC, sequence ASC"
	}

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, *track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tracks, nil
}

// scanOne scans a single [sql.Row] into a [models.Track]
func (r *TrackRepository) scanOne(row *sql.Row) (*models.Track, error) {
	track, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrTrackNotFound
	}
	return track, err
}

func scanTrack(s scanner) (*models.Track, error) {
	var t models.Track
	err := s.Scan(&t.ID, &t.Position, &t.Title, &t.Artist, &t.Album, &t.CoverURL, &t.Duration)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan track: %w", err)
	}
	return &t, nil
}

func expectAffected(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
