// Package pipeline wires the loading, normalization, enrichment and
// expansion stages together and caches the result per source file.
package pipeline

import (
	"chart-market-tools/internal/analysis"
	"chart-market-tools/internal/artist"
	"chart-market-tools/internal/dataset"
)

// Dataset is the fully derived form of one source file: the enriched track
// table, its artist-expanded counterpart, and any malformed-credit reports
// collected during normalization.
type Dataset struct {
	Tracks     []dataset.Track
	ArtistRows []dataset.ArtistTrack
	Malformed  []error
}

// Run executes the full pipeline over a source CSV. Loading errors are
// fatal; malformed artist credits are collected, not fatal.
func Run(path string) (*Dataset, error) {
	tracks, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return derive(tracks), nil
}

func derive(tracks []dataset.Track) *Dataset {
	tracks, malformed := artist.Normalize(tracks)
	tracks = analysis.Enrich(tracks)
	return &Dataset{
		Tracks:     tracks,
		ArtistRows: artist.Expand(tracks),
		Malformed:  malformed,
	}
}

// FilterView applies a filter to the base track table and re-derives the
// artist-expanded table from the survivors. The base dataset is never
// mutated; every filter change recomputes from the cached base.
func (d *Dataset) FilterView(f dataset.Filter) *Dataset {
	tracks := f.Apply(d.Tracks)
	return &Dataset{
		Tracks:     tracks,
		ArtistRows: artist.Expand(tracks),
		Malformed:  d.Malformed,
	}
}

// Artists returns the distinct raw credit strings in the base table,
// for resolving user-supplied artist filters.
func (d *Dataset) Artists() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range d.Tracks {
		if !seen[t.Artist] {
			seen[t.Artist] = true
			out = append(out, t.Artist)
		}
	}
	return out
}
