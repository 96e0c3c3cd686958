// Package artist standardizes raw artist-credit strings and expands tracks
// into per-artist rows for dominance and collaboration analysis.
package artist

import (
	"regexp"
	"strings"

	"chart-market-tools/internal/dataset"
)

// Separator is the canonical delimiter joining individual artists in a
// cleaned credit string.
const Separator = "&"

// creditJoiners matches the credit phrases that get rewritten to the
// canonical separator. The alternation is deliberately unanchored: "and" is
// replaced as a literal substring, not a whole word, so a name containing
// "and" inside a longer word (e.g. "brandy") gets corrupted. That is a
// known limitation of the heuristic, kept for compatibility with existing
// cleaned data; fixing it would change every derived artist list.
var creditJoiners = regexp.MustCompile(`feat\.|ft\.|and`)

// CleanCredit lowers a raw credit, rewrites joiner phrases to the canonical
// separator, and strips spaces. Idempotent: cleaning an already-clean
// string returns it unchanged.
func CleanCredit(raw string) string {
	name := strings.ToLower(raw)
	name = creditJoiners.ReplaceAllString(name, Separator)
	name = strings.ReplaceAll(name, " ", "")
	return name
}

// SplitCredit splits a cleaned credit into individual artist names in
// credit order. Empty tokens from consecutive or trailing separators are
// dropped so malformed credits can't produce phantom artists.
func SplitCredit(clean string) []string {
	parts := strings.Split(clean, Separator)
	names := parts[:0]
	for _, p := range parts {
		if p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

// Normalize fills ArtistClean, ArtistList, and IsCollaboration on every
// track. Credits that normalize to an empty artist list are reported as
// MalformedArtistCreditError values; the affected tracks are returned with
// a nil list so downstream artist aggregation and graph building skip them
// while track-level KPIs still count them.
func Normalize(tracks []dataset.Track) ([]dataset.Track, []error) {
	out := make([]dataset.Track, len(tracks))
	var malformed []error
	for i, t := range tracks {
		t.ArtistClean = CleanCredit(t.Artist)
		t.ArtistList = SplitCredit(t.ArtistClean)
		t.IsCollaboration = len(t.ArtistList) > 1
		if t.Artist != "" && len(t.ArtistList) == 0 {
			malformed = append(malformed, &dataset.MalformedArtistCreditError{Song: t.Song, Credit: t.Artist})
		}
		out[i] = t
	}
	return out, malformed
}
