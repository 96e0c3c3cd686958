package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"chart-market-tools/internal/dataset"
)

const testCSV = `date,position,song,artist,is_explicit,album_type,total_tracks,duration_ms,popularity
2023-01-06,1,Song One,Artist A,True,single,1,180000,85
2023-01-06,2,Song Two,Artist B feat. Artist C,False,album,12,150000,70
2023-02-03,1,Song Three,Artist A,False,single,1,620000,60
`

func writeTestCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charts.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0644); err != nil {
		t.Fatalf("writing test csv: %v", err)
	}
	return path
}

func TestRunDerivesAllFeatures(t *testing.T) {
	d, err := Run(writeTestCSV(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(d.Tracks) != 3 {
		t.Fatalf("got %d tracks, want 3", len(d.Tracks))
	}
	if len(d.ArtistRows) != 4 {
		t.Fatalf("got %d artist rows, want 4 (collaboration expands to two)", len(d.ArtistRows))
	}
	if len(d.Malformed) != 0 {
		t.Fatalf("unexpected malformed credits: %v", d.Malformed)
	}

	collab := d.Tracks[1]
	if collab.ArtistClean != "artistb&artistc" || !collab.IsCollaboration {
		t.Errorf("collaboration not normalized: %+v", collab)
	}
	if collab.DurationBucket != "Medium" {
		t.Errorf("150000 ms bucketed as %q, want Medium", collab.DurationBucket)
	}
	if collab.RankGroup != "Top 10" {
		t.Errorf("position 2 grouped as %q, want Top 10", collab.RankGroup)
	}

	// 620000 ms is over ten minutes: outside every bucket.
	if d.Tracks[2].DurationBucket != "" {
		t.Errorf("over-long track bucketed as %q", d.Tracks[2].DurationBucket)
	}
}

func TestFilterViewRecomputesFromBase(t *testing.T) {
	d, err := Run(writeTestCSV(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	view := d.FilterView(dataset.Filter{TrackType: dataset.TracksCollab})
	if len(view.Tracks) != 1 || len(view.ArtistRows) != 2 {
		t.Fatalf("collab view = %d tracks / %d artist rows, want 1 / 2", len(view.Tracks), len(view.ArtistRows))
	}

	// The base dataset is untouched.
	if len(d.Tracks) != 3 || len(d.ArtistRows) != 4 {
		t.Error("FilterView mutated the base dataset")
	}
}

func TestCacheLoadsOnce(t *testing.T) {
	path := writeTestCSV(t)
	cache := NewCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Changing the file on disk must not affect subsequent loads: the
	// base table is process-lifetime cached.
	if err := os.WriteFile(path, []byte("date,position,song,artist\n"), 0644); err != nil {
		t.Fatalf("rewriting csv: %v", err)
	}

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first != second {
		t.Fatal("cache returned a different dataset for the same path")
	}

	cache.Invalidate(path)
	third, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Invalidate: %v", err)
	}
	if third == first {
		t.Fatal("Invalidate did not force a reload")
	}
	if len(third.Tracks) != 0 {
		t.Fatalf("reload saw %d tracks, want 0 from the rewritten file", len(third.Tracks))
	}
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	cache := NewCache()
	missing := filepath.Join(t.TempDir(), "missing.csv")

	if _, err := cache.Load(missing); err == nil {
		t.Fatal("expected error for a missing file")
	}

	if err := os.WriteFile(missing, []byte(testCSV), 0644); err != nil {
		t.Fatalf("writing csv: %v", err)
	}
	d, err := cache.Load(missing)
	if err != nil {
		t.Fatalf("Load after creating the file: %v", err)
	}
	if len(d.Tracks) != 3 {
		t.Fatalf("got %d tracks, want 3", len(d.Tracks))
	}
}

func TestArtists(t *testing.T) {
	d, err := Run(writeTestCSV(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	artists := d.Artists()
	if len(artists) != 2 {
		t.Fatalf("Artists() = %v, want two distinct credits", artists)
	}
}
