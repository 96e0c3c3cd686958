package artist

import "chart-market-tools/internal/dataset"

// Expand converts the track table into one row per (track, artist) pair,
// in artist-list order. Tracks with an empty artist list contribute no
// rows. Expand is how per-artist appearance counts are derived: a
// collaboration counts once for each credited artist.
func Expand(tracks []dataset.Track) []dataset.ArtistTrack {
	var rows []dataset.ArtistTrack
	for _, t := range tracks {
		for _, name := range t.ArtistList {
			rows = append(rows, dataset.ArtistTrack{
				Artist:      name,
				Date:        t.Date,
				Position:    t.Position,
				Song:        t.Song,
				IsExplicit:  t.IsExplicit,
				AlbumType:   t.AlbumType,
				TotalTracks: t.TotalTracks,
				DurationMS:  t.DurationMS,
				Popularity:  t.Popularity,
				RankGroup:   t.RankGroup,
			})
		}
	}
	return rows
}
