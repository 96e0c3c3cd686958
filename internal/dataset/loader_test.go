package dataset

import (
	"errors"
	"strings"
	"testing"
)

const sampleCSV = `date,position,song,artist,is_explicit,album_type,total_tracks,duration_ms,popularity
2023-01-06,1,Song One,Artist A,True,single,1,180000,85
2023-01-06,2,Song Two,Artist B feat. Artist C,False,album,12,210000,70
2023-01-06,2,Song Two,Artist B feat. Artist C,False,album,12,210000,70
2023-01-13,1,Song One,Artist A,True,single,1,180000,86
2023-01-13,,Missing Position,Artist D,False,single,1,200000,50
`

func TestReadSample(t *testing.T) {
	tracks, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	// 5 data rows: one exact duplicate removed, one dropped for a
	// missing required value.
	if len(tracks) != 3 {
		t.Fatalf("got %d tracks, want 3", len(tracks))
	}

	first := tracks[0]
	if first.Position != 1 || first.Song != "Song One" || first.Artist != "Artist A" {
		t.Errorf("first track = %+v", first)
	}
	if !first.IsExplicit {
		t.Error("is_explicit not parsed")
	}
	if first.DurationMS != 180000 {
		t.Errorf("DurationMS = %d, want 180000", first.DurationMS)
	}
	if first.Popularity != 85 {
		t.Errorf("Popularity = %v, want 85", first.Popularity)
	}
	if got := first.Date.Format("2006-01-02"); got != "2023-01-06" {
		t.Errorf("Date = %s, want 2023-01-06", got)
	}
}

func TestReadHeaderAliases(t *testing.T) {
	csv := "Date,Rank,Track_Name,Artists,Explicit\n2023-02-01,5,Aliased,Someone,false\n"
	tracks, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
	if tracks[0].Position != 5 || tracks[0].Song != "Aliased" || tracks[0].Artist != "Someone" {
		t.Errorf("aliased headers not mapped: %+v", tracks[0])
	}
}

func TestReadIgnoresUnknownColumns(t *testing.T) {
	csv := "date,position,song,artist,mystery\n2023-02-01,1,A,B,whatever\n"
	tracks, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
}

func TestReadMissingRequiredColumn(t *testing.T) {
	csv := "date,position,song\n2023-02-01,1,No Artist Column\n"
	_, err := Read(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for missing artist column")
	}
	var formatErr *DataFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected DataFormatError, got %v", err)
	}
	if formatErr.Column != "artist" {
		t.Errorf("error names column %q, want artist", formatErr.Column)
	}
}

func TestReadUnparsableValue(t *testing.T) {
	cases := []struct {
		name   string
		csv    string
		column string
	}{
		{
			"bad position",
			"date,position,song,artist\n2023-02-01,first,A,B\n",
			"position",
		},
		{
			"bad date",
			"date,position,song,artist\nnot-a-date,1,A,B\n",
			"date",
		},
		{
			"zero position",
			"date,position,song,artist\n2023-02-01,0,A,B\n",
			"position",
		},
		{
			"bad duration",
			"date,position,song,artist,duration_ms\n2023-02-01,1,A,B,long\n",
			"duration_ms",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(c.csv))
			if err == nil {
				t.Fatal("expected a DataFormatError")
			}
			var formatErr *DataFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected DataFormatError, got %v", err)
			}
			if formatErr.Column != c.column {
				t.Errorf("error names column %q, want %q", formatErr.Column, c.column)
			}
			if formatErr.Row != 1 {
				t.Errorf("error names row %d, want 1", formatErr.Row)
			}
		})
	}
}
