package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Canonical header mapping. Exports from different chart tools disagree on
// column naming, so headers are matched case-insensitively against known
// aliases. Unrecognized columns are ignored.
var headerAliases = map[string]string{
	"date":       "date",
	"chart_date": "date",

	"position": "position",
	"rank":     "position",

	"song":       "song",
	"track":      "song",
	"track_name": "song",
	"title":      "song",

	"artist":       "artist",
	"artists":      "artist",
	"artist_names": "artist",

	"is_explicit": "is_explicit",
	"explicit":    "is_explicit",

	"album_type": "album_type",

	"total_tracks": "total_tracks",

	"duration_ms": "duration_ms",

	"popularity": "popularity",
}

var requiredColumns = []string{"date", "position", "song", "artist"}

// Load reads a chart CSV into track records. Rows missing any of the
// required values (date, position, song, artist) are dropped, exact
// duplicate rows are removed once, and position and date are coerced to
// typed fields. A missing required column, or a non-missing value that
// fails coercion, aborts the load with a DataFormatError.
func Load(path string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	tracks, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return tracks, nil
}

// Read parses CSV data from r. See Load.
func Read(r io.Reader) ([]Track, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rawHeaders, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := make(map[string]int)
	for i, h := range rawHeaders {
		if canonical, ok := headerAliases[normalizeHeader(h)]; ok {
			if _, seen := columns[canonical]; !seen {
				columns[canonical] = i
			}
		}
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, &DataFormatError{Column: required, Err: fmt.Errorf("required column missing")}
		}
	}

	var tracks []Track
	seen := make(map[string]bool)
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		row++

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		// dropna on the critical columns
		if field("date") == "" || field("position") == "" || field("song") == "" || field("artist") == "" {
			continue
		}

		// drop_duplicates: all mapped fields identical
		key := strings.Join([]string{
			field("date"), field("position"), field("song"), field("artist"),
			field("is_explicit"), field("album_type"), field("total_tracks"),
			field("duration_ms"), field("popularity"),
		}, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true

		track, err := parseTrack(field, row)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

func parseTrack(field func(string) string, row int) (Track, error) {
	var t Track
	var err error

	t.Date, err = parseDate(field("date"))
	if err != nil {
		return t, &DataFormatError{Column: "date", Row: row, Err: err}
	}

	t.Position, err = strconv.Atoi(field("position"))
	if err != nil {
		return t, &DataFormatError{Column: "position", Row: row, Err: err}
	}
	if t.Position < 1 {
		return t, &DataFormatError{Column: "position", Row: row, Err: fmt.Errorf("position %d out of range", t.Position)}
	}

	t.Song = field("song")
	t.Artist = field("artist")

	if v := field("is_explicit"); v != "" {
		t.IsExplicit, err = strconv.ParseBool(v)
		if err != nil {
			return t, &DataFormatError{Column: "is_explicit", Row: row, Err: err}
		}
	}

	t.AlbumType = field("album_type")

	if v := field("total_tracks"); v != "" {
		t.TotalTracks, err = strconv.Atoi(v)
		if err != nil {
			return t, &DataFormatError{Column: "total_tracks", Row: row, Err: err}
		}
	}

	if v := field("duration_ms"); v != "" {
		t.DurationMS, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return t, &DataFormatError{Column: "duration_ms", Row: row, Err: err}
		}
	}

	if v := field("popularity"); v != "" {
		t.Popularity, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return t, &DataFormatError{Column: "popularity", Row: row, Err: err}
		}
	}

	return t, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
