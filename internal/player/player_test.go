package player

import (
	"testing"
	"time"

	"github.com/desertthunder/reel/internal/models"
)

func queue() []models.Track {
	return []models.Track{
		{ID: "a", Title: "A", Artist: "X", Duration: 10},
		{ID: "b", Title: "B", Artist: "X", Duration: 20},
		{ID: "c", Title: "C", Artist: "X"},
	}
}

func TestPlayer_Load(t *testing.T) {
	t.Run("autoplay starts at first track", func(t *testing.T) {
		p := New(Options{Autoplay: true})
		p.Load(queue())

		if !p.Playing() || p.Index() != 0 {
			t.Errorf("expected playing index 0, got playing=%v index=%d", p.Playing(), p.Index())
		}
	})

	t.Run("without autoplay stays paused", func(t *testing.T) {
		p := New(Options{})
		p.Load(queue())

		if p.Playing() {
			t.Error("expected player to be paused")
		}
		if p.Tick(time.Hour) {
			t.Error("paused player should not advance")
		}
	})

	t.Run("keeps the playing track across reloads", func(t *testing.T) {
		p := New(Options{})
		p.Load(queue())
		p.Play(1)
		p.Tick(5 * time.Second)

		reordered := queue()
		reordered[0], reordered[1] = reordered[1], reordered[0]
		p.Load(reordered)

		if p.Index() != 0 || p.Elapsed() != 5*time.Second {
			t.Errorf("expected index 0 at 5s, got index=%d elapsed=%v", p.Index(), p.Elapsed())
		}
	})

	t.Run("restarts when the playing track is gone", func(t *testing.T) {
		p := New(Options{})
		p.Load(queue())
		p.Play(2)
		p.Load(queue()[:2])

		if p.Index() != 0 || p.Elapsed() != 0 {
			t.Errorf("expected restart at index 0, got index=%d elapsed=%v", p.Index(), p.Elapsed())
		}
	})

	t.Run("empty queue", func(t *testing.T) {
		p := New(Options{Autoplay: true})
		p.Load(nil)

		if _, ok := p.Current(); ok {
			t.Error("expected no current track")
		}
		if p.Playing() {
			t.Error("empty player should not be playing")
		}
		p.Play(3)
		p.Next()
		p.TogglePause()
		if p.Tick(time.Second) || p.Playing() {
			t.Error("empty player should stay idle")
		}
	})
}

func TestPlayer_NextPrev(t *testing.T) {
	tc := []struct {
		name  string
		start int
		step  func(*Player)
		want  string
	}{
		{"next", 0, (*Player).Next, "b"},
		{"next wraps to first", 2, (*Player).Next, "a"},
		{"prev", 1, (*Player).Prev, "a"},
		{"prev wraps to last", 0, (*Player).Prev, "c"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			p := New(Options{})
			p.Load(queue())
			p.Play(tt.start)
			tt.step(p)

			got, _ := p.Current()
			if got.ID != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got.ID)
			}
			if !p.Playing() || p.Elapsed() != 0 {
				t.Errorf("expected fresh playback, got playing=%v elapsed=%v", p.Playing(), p.Elapsed())
			}
		})
	}
}

func TestPlayer_Play(t *testing.T) {
	p := New(Options{})
	p.Load(queue())

	for _, tt := range []struct{ in, want int }{{0, 0}, {4, 1}, {-1, 2}, {-4, 2}} {
		p.Play(tt.in)
		if p.Index() != tt.want {
			t.Errorf("Play(%d): index = %d, want %d", tt.in, p.Index(), tt.want)
		}
	}
}

func TestPlayer_Tick(t *testing.T) {
	t.Run("advances past the end of a track", func(t *testing.T) {
		p := New(Options{})
		p.Load(queue())
		p.Play(0)

		if p.Tick(9 * time.Second) {
			t.Error("track should still be playing")
		}
		if !p.Tick(2 * time.Second) {
			t.Error("expected change after track end")
		}
		if p.Index() != 1 || p.Elapsed() != time.Second {
			t.Errorf("expected index 1 at 1s, got index=%d elapsed=%v", p.Index(), p.Elapsed())
		}
	})

	t.Run("zero duration uses default length", func(t *testing.T) {
		p := New(Options{DefaultTrackLength: 30 * time.Second})
		p.Load(queue())
		p.Play(2)

		if p.Tick(29 * time.Second) {
			t.Error("track should still be playing")
		}
		if !p.Tick(time.Second) || p.Index() != 0 {
			t.Errorf("expected wrap to index 0, got %d", p.Index())
		}
	})

	t.Run("large step skips several tracks", func(t *testing.T) {
		p := New(Options{DefaultTrackLength: 30 * time.Second})
		p.Load(queue())
		p.Play(0)

		// 10s + 20s + 30s wraps back to the first track
		if !p.Tick(65 * time.Second) {
			t.Error("expected change")
		}
		if p.Index() != 0 || p.Elapsed() != 5*time.Second {
			t.Errorf("expected index 0 at 5s, got index=%d elapsed=%v", p.Index(), p.Elapsed())
		}
	})

	t.Run("pause stops the clock", func(t *testing.T) {
		p := New(Options{})
		p.Load(queue())
		p.Play(0)
		p.TogglePause()

		if p.Tick(time.Minute) || p.Elapsed() != 0 {
			t.Errorf("paused clock moved to %v", p.Elapsed())
		}
		p.TogglePause()
		if !p.Playing() {
			t.Error("expected playback to resume")
		}
	})
}

func TestPlayer_Length(t *testing.T) {
	p := New(Options{DefaultTrackLength: 42 * time.Second})
	if p.Length() != 0 {
		t.Errorf("empty player length = %v, want 0", p.Length())
	}

	p.Load(queue())
	p.Play(1)
	if p.Length() != 20*time.Second {
		t.Errorf("length = %v, want 20s", p.Length())
	}
	p.Play(2)
	if p.Length() != 42*time.Second {
		t.Errorf("length = %v, want default 42s", p.Length())
	}
}
