package ui

import (
	"time"

	"github.com/desertthunder/reel/internal/models"
)

// libraryLoadedMsg carries the result of loading the source list.
type libraryLoadedMsg struct {
	tracks []models.Track
	err    error
}

// correctionMsg fires the [tickScheduler] callback registered under gen.
type correctionMsg struct {
	gen uint64
}

// frameMsg advances the strip animation started under gen.
type frameMsg struct {
	gen uint64
}

// playerTickMsg moves the player clock.
type playerTickMsg time.Time
