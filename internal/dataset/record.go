package dataset

import "time"

// Track is a single chart entry: one song at one position on one date.
// The fields after Popularity are derived by the pipeline and are zero
// until normalization and enrichment have run.
type Track struct {
	Date        time.Time
	Position    int
	Song        string
	Artist      string
	IsExplicit  bool
	AlbumType   string
	TotalTracks int
	DurationMS  int64
	Popularity  float64

	ArtistClean     string
	ArtistList      []string
	IsCollaboration bool
	DurationMinutes float64
	DurationBucket  string
	RankGroup       string
}

// ArtistTrack is one (track, individual artist) pair, produced by expanding
// a track's artist list. It carries the track attributes needed for
// per-artist aggregation plus the single artist name.
type ArtistTrack struct {
	Artist      string
	Date        time.Time
	Position    int
	Song        string
	IsExplicit  bool
	AlbumType   string
	TotalTracks int
	DurationMS  int64
	Popularity  float64
	RankGroup   string
}
