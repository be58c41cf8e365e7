// Package player simulates playback of the library and owns the "now playing" track.
//
// The carousel treats the player as the source of external selections: when the
// current track changes the UI hands its id to [carousel.Controller.Select].
package player

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/reel/internal/models"
)

// DefaultTrackLength is used for tracks without a duration.
const DefaultTrackLength = 3 * time.Minute

// Options configures a [Player].
type Options struct {
	DefaultTrackLength time.Duration
	Autoplay           bool // start playing on Load
	Logger             *log.Logger
}

// Player plays a looping list of tracks on a simulated clock.
//
// It is not safe for concurrent use; the TUI drives it from its Update loop.
type Player struct {
	tracks   []models.Track
	index    int
	elapsed  time.Duration
	playing  bool
	fallback time.Duration
	autoplay bool
	logger   *log.Logger
}

func New(opts Options) *Player {
	if opts.DefaultTrackLength <= 0 {
		opts.DefaultTrackLength = DefaultTrackLength
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Player{fallback: opts.DefaultTrackLength, autoplay: opts.Autoplay, logger: opts.Logger}
}

// Load replaces the queue. The track with the same id as the one playing keeps
// playing; otherwise playback restarts at the first track.
func (p *Player) Load(tracks []models.Track) {
	var current string
	if t, ok := p.Current(); ok {
		current = t.ID
	}

	p.tracks = slices.Clone(tracks)
	if i := slices.IndexFunc(p.tracks, func(t models.Track) bool { return t.ID == current }); current != "" && i >= 0 {
		p.index = i
		return
	}

	p.index, p.elapsed = 0, 0
	p.playing = p.autoplay && len(p.tracks) > 0
}

// Play starts track i from the beginning. Out of range values wrap.
func (p *Player) Play(i int) {
	n := len(p.tracks)
	if n == 0 {
		return
	}
	p.index = ((i % n) + n) % n
	p.elapsed = 0
	p.playing = true
	p.logger.Debug("now playing", "index", p.index, "track", p.tracks[p.index].Label())
}

// Next plays the following track, wrapping to the first.
func (p *Player) Next() { p.Play(p.index + 1) }

// Prev plays the preceding track, wrapping to the last.
func (p *Player) Prev() { p.Play(p.index - 1) }

// TogglePause pauses or resumes playback.
func (p *Player) TogglePause() {
	if len(p.tracks) == 0 {
		return
	}
	p.playing = !p.playing
}

// Tick advances the clock by dt and reports whether the current track changed.
func (p *Player) Tick(dt time.Duration) bool {
	if !p.playing || len(p.tracks) == 0 || dt <= 0 {
		return false
	}

	changed := false
	p.elapsed += dt
	for length := p.length(); p.elapsed >= length; length = p.length() {
		p.elapsed -= length
		p.index = (p.index + 1) % len(p.tracks)
		changed = true
	}
	if changed {
		p.logger.Debug("auto advance", "index", p.index, "track", p.tracks[p.index].Label())
	}
	return changed
}

// Current returns the track at the play head.
func (p *Player) Current() (models.Track, bool) {
	if len(p.tracks) == 0 {
		return models.Track{}, false
	}
	return p.tracks[p.index], true
}

func (p *Player) Elapsed() time.Duration { return p.elapsed }

func (p *Player) Playing() bool { return p.playing }

func (p *Player) Index() int { return p.index }

// Length returns the playing length of the current track.
func (p *Player) Length() time.Duration {
	if len(p.tracks) == 0 {
		return 0
	}
	return p.length()
}

func (p *Player) length() time.Duration {
	if d := p.tracks[p.index].Duration; d > 0 {
		return time.Duration(d) * time.Second
	}
	return p.fallback
}
