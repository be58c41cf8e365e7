// package formatter provides functions to export the library to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatCSV, FormatMarkdown, FormatText, FormatJSON}

// ParseFormat resolves a format name, accepting the common aliases "md" and "txt".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatMarkdown, FormatText, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrUnknownFormat, s)
	}
}

// Ext returns the file extension used by [WriteExport].
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	default:
		return "." + string(f)
	}
}

// Export renders lib in the given format.
func Export(lib models.Library, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(lib)
	case FormatMarkdown:
		return ExportToMarkdown(lib)
	case FormatText:
		return ExportToText(lib)
	case FormatJSON:
		return shared.MarshalJSON(lib, true)
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
	}
}

// ExportToCSV converts a Library to CSV format with columns: Position, ID, Title, Artist, Album, Duration, Cover
func ExportToCSV(lib models.Library) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "ID", "Title", "Artist", "Album", "Duration", "Cover"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, track := range lib.Tracks {
		record := []string{
			strconv.Itoa(i),
			track.ID,
			track.Title,
			track.Artist,
			track.Album,
			strconv.Itoa(track.Duration),
			track.CoverURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a Library to Markdown, using the first cover art as the header image
func ExportToMarkdown(lib models.Library) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", name(lib))

	for _, track := range lib.Tracks {
		if track.CoverURL != "" {
			fmt.Fprintf(&buf, "![Cover](%s)\n\n", track.CoverURL)
			break
		}
	}

	fmt.Fprintf(&buf, "**Tracks**: %d\n", len(lib.Tracks))
	fmt.Fprintf(&buf, "**Length**: %s\n\n", shared.FormatDuration(totalSeconds(lib)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range lib.Tracks {
		albumPart := ""
		if track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album)
		}
		fmt.Fprintf(&buf, "%d. %s%s [%s]\n", i+1, track.Label(), albumPart, track.DurationString())
	}

	return buf.Bytes(), nil
}

// ExportToText converts a Library to plain text format
func ExportToText(lib models.Library) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Library: %s\n", name(lib))
	fmt.Fprintf(&buf, "Tracks: %d\n\n", len(lib.Tracks))

	for i, track := range lib.Tracks {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, track.Label())
	}

	return buf.Bytes(), nil
}

// WriteExport renders lib and writes it to path.
//
// Defaults to {library name}{ext} as the filename.
func WriteExport(lib models.Library, format Format, path string) (string, error) {
	if path == "" {
		path = strings.ReplaceAll(strings.ToLower(name(lib)), " ", "_") + format.Ext()
	}

	data, err := Export(lib, format)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func name(lib models.Library) string {
	if lib.Name == "" {
		return "Library"
	}
	return lib.Name
}

func totalSeconds(lib models.Library) int {
	total := 0
	for _, t := range lib.Tracks {
		total += t.Duration
	}
	return total
}
