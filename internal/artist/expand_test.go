package artist

import (
	"testing"

	"chart-market-tools/internal/dataset"
)

func TestExpand(t *testing.T) {
	tracks := []dataset.Track{
		{Song: "Trio", ArtistList: []string{"a", "b", "c"}, Position: 3},
		{Song: "Alone", ArtistList: []string{"solox"}, Position: 1},
		{Song: "Broken", ArtistList: nil},
	}

	rows := Expand(tracks)

	// One row per (track, artist) pair; empty lists contribute nothing.
	want := 0
	for _, tr := range tracks {
		want += len(tr.ArtistList)
	}
	if len(rows) != want {
		t.Fatalf("Expand produced %d rows, want %d", len(rows), want)
	}

	// Rows follow artist-list order within a track.
	for i, name := range []string{"a", "b", "c", "solox"} {
		if rows[i].Artist != name {
			t.Errorf("row %d artist = %q, want %q", i, rows[i].Artist, name)
		}
	}

	// Track attributes are carried over.
	if rows[0].Song != "Trio" || rows[0].Position != 3 {
		t.Errorf("row 0 lost track attributes: %+v", rows[0])
	}
	if rows[3].Song != "Alone" || rows[3].Position != 1 {
		t.Errorf("row 3 lost track attributes: %+v", rows[3])
	}
}

func TestExpandEmpty(t *testing.T) {
	if rows := Expand(nil); len(rows) != 0 {
		t.Errorf("Expand(nil) produced %d rows", len(rows))
	}
}
