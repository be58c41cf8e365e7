package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/reel/internal/shared"
)

var ErrInvalidTrack = errors.New("invalid track")

// Track represents a song in the library.
type Track struct {
	ID       string `json:"id" toml:"id"`
	Title    string `json:"title" toml:"title"`
	Artist   string `json:"artist" toml:"artist"`
	Album    string `json:"album,omitempty" toml:"album"`
	CoverURL string `json:"cover_url,omitempty" toml:"cover_url"`
	Duration int    `json:"duration" toml:"duration"` // Duration in seconds
	Position int    `json:"position" toml:"-"`        // Order within the library
}

// Validate checks the fields required to show and play a track.
func (t Track) Validate() error {
	switch {
	case strings.TrimSpace(t.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidTrack)
	case strings.TrimSpace(t.Artist) == "":
		return fmt.Errorf("%w: artist is required", ErrInvalidTrack)
	case t.Duration < 0:
		return fmt.Errorf("%w: duration cannot be negative", ErrInvalidTrack)
	}
	return nil
}

// Label returns "Artist - Title".
func (t Track) Label() string {
	return t.Artist + " - " + t.Title
}

// DurationString returns the length as m:ss, or h:mm:ss past an hour.
func (t Track) DurationString() string {
	return shared.FormatDuration(t.Duration)
}

// Library is a named, ordered list of tracks.
type Library struct {
	Name   string  `json:"name" toml:"name"`
	Tracks []Track `json:"tracks" toml:"tracks"`
}
