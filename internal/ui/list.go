package ui

import (
	"github.com/desertthunder/reel/internal/carousel"
	"github.com/desertthunder/reel/internal/models"
)

var _ carousel.Item = trackItem{}

// trackItem wraps [models.Track] to implement [carousel.Item].
type trackItem struct {
	track models.Track
}

func (i trackItem) ID() string    { return i.track.ID }
func (i trackItem) Title() string { return i.track.Title }
func (i trackItem) Description() string {
	if i.track.Duration == 0 {
		return i.track.Artist
	}
	return i.track.Artist + " · " + i.track.DurationString()
}

func trackItems(tracks []models.Track) []trackItem {
	items := make([]trackItem, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}
	return items
}
