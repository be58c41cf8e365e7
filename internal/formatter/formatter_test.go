package formatter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
	th "github.com/desertthunder/reel/internal/testing"
)

func testLibrary() models.Library {
	return models.Library{
		Name: "Road Trip",
		Tracks: []models.Track{
			{
				ID:       "track1",
				Title:    "Song One",
				Artist:   "Artist One",
				Album:    "Album One",
				Duration: 180,
			},
			{
				ID:       "track2",
				Title:    "Song, Two",
				Artist:   "Artist Two",
				CoverURL: "https://example.com/two.jpg",
				Duration: 240,
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tc := []struct {
		in   string
		want Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{" text ", FormatText},
		{"txt", FormatText},
		{"json", FormatJSON},
	}

	for _, tt := range tc {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, shared.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testLibrary())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header and 2 records, got %d", len(records))
		}
		if strings.Join(records[0], ",") != "Position,ID,Title,Artist,Album,Duration,Cover" {
			t.Errorf("CSV headers = %v", records[0])
		}
		if records[2][0] != "1" || records[2][2] != "Song, Two" || records[2][6] != "https://example.com/two.jpg" {
			t.Errorf("unexpected second record: %v", records[2])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(testLibrary())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# Road Trip",
			"![Cover](https://example.com/two.jpg)",
			"**Tracks**: 2",
			"**Length**: 7:00",
			"1. Artist One - Song One (Album One) [3:00]",
			"2. Artist Two - Song, Two [4:00]",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("ExportToMarkdown without cover", func(t *testing.T) {
		data, err := ExportToMarkdown(models.Library{})
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		if strings.Contains(string(data), "![Cover]") {
			t.Error("empty library should not have a cover")
		}
		if !strings.HasPrefix(string(data), "# Library\n") {
			t.Errorf("expected default name, got:\n%s", data)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testLibrary())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		want := "Library: Road Trip\nTracks: 2\n\n1. Artist One - Song One\n2. Artist Two - Song, Two\n"
		if string(data) != want {
			t.Errorf("ExportToText = %q, want %q", data, want)
		}
	})

	t.Run("Export JSON", func(t *testing.T) {
		data, err := Export(testLibrary(), FormatJSON)
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		var got models.Library
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got.Name != "Road Trip" || len(got.Tracks) != 2 {
			t.Errorf("unexpected decoded library: %+v", got)
		}
	})

	t.Run("Export unknown format", func(t *testing.T) {
		if _, err := Export(testLibrary(), Format("xml")); !errors.Is(err, shared.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}

func TestWriteExport(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")

		got, err := WriteExport(testLibrary(), FormatText, path)
		if err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}
		if got != path {
			t.Errorf("expected path %s, got %s", path, got)
		}
		if !strings.Contains(th.MustReadFile(t, path), "Library: Road Trip") {
			t.Error("file content mismatch")
		}
	})

	t.Run("default path", func(t *testing.T) {
		t.Chdir(t.TempDir())

		got, err := WriteExport(testLibrary(), FormatMarkdown, "")
		if err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}
		if got != "road_trip.md" {
			t.Errorf("expected road_trip.md, got %s", got)
		}
		th.AssertFileExists(t, got)
	})

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.csv")
		if _, err := WriteExport(testLibrary(), FormatCSV, path); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
