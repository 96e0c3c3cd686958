package dataset

import (
	"strings"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Track type modes for the collaboration filter.
const (
	TracksAll    = "all"
	TracksSolo   = "solo"
	TracksCollab = "collabs"
)

// Filter selects a subset of the track table. Zero values mean "no
// constraint": a zero Start/End skips the date check, empty slices skip
// the album-type and artist checks, and an empty TrackType means TracksAll.
// Filters run after normalization, so TrackType can rely on
// IsCollaboration.
type Filter struct {
	Start      time.Time
	End        time.Time
	AlbumTypes []string
	Artists    []string
	TrackType  string
}

// Apply returns the tracks matching the filter. Both date bounds are
// inclusive. The artist check matches the raw credit string, so filtering
// on a collaborator requires the full credit; use ResolveArtist to map
// user input onto credits first.
func (f Filter) Apply(tracks []Track) []Track {
	albumTypes := toSet(f.AlbumTypes)
	artists := toSet(f.Artists)

	var out []Track
	for _, t := range tracks {
		if !f.Start.IsZero() && t.Date.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && t.Date.After(f.End) {
			continue
		}
		if len(albumTypes) > 0 && !albumTypes[t.AlbumType] {
			continue
		}
		if len(artists) > 0 && !artists[t.Artist] {
			continue
		}
		switch f.TrackType {
		case TracksSolo:
			if t.IsCollaboration {
				continue
			}
		case TracksCollab:
			if !t.IsCollaboration {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// resolveThreshold is the minimum Jaro-Winkler similarity for treating a
// user-supplied artist name as a match for a credited artist.
const resolveThreshold = 0.85

// ResolveArtist maps a user-supplied artist name onto one of the known
// credit strings. An exact match wins; otherwise the most similar credit
// above the threshold is chosen. Returns false when nothing matches.
func ResolveArtist(name string, known []string) (string, bool) {
	for _, k := range known {
		if k == name {
			return k, true
		}
	}

	jw := metrics.NewJaroWinkler()
	best := ""
	highest := 0.0
	for _, k := range known {
		score := strutil.Similarity(strings.ToLower(name), strings.ToLower(k), jw)
		if score > highest && score >= resolveThreshold {
			highest = score
			best = k
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
