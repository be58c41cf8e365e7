package models

import (
	"errors"
	"testing"
)

func TestTrack_Validate(t *testing.T) {
	tc := []struct {
		name    string
		track   Track
		wantErr bool
	}{
		{"valid", Track{Title: "Song", Artist: "Artist", Duration: 200}, false},
		{"valid without duration", Track{Title: "Song", Artist: "Artist"}, false},
		{"missing title", Track{Title: "  ", Artist: "Artist"}, true},
		{"missing artist", Track{Title: "Song"}, true},
		{"negative duration", Track{Title: "Song", Artist: "Artist", Duration: -1}, true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.track.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidTrack) {
				t.Errorf("expected ErrInvalidTrack, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTrack_Label(t *testing.T) {
	track := Track{Title: "Teardrop", Artist: "Massive Attack"}
	if got := track.Label(); got != "Massive Attack - Teardrop" {
		t.Errorf("Label() = %q", got)
	}
}

func TestTrack_DurationString(t *testing.T) {
	tc := map[int]string{0: "0:00", 59: "0:59", 354: "5:54", 3725: "1:02:05"}
	for seconds, want := range tc {
		if got := (Track{Duration: seconds}).DurationString(); got != want {
			t.Errorf("DurationString() for %ds = %q, want %q", seconds, got, want)
		}
	}
}
