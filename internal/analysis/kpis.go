package analysis

import (
	"sort"

	"chart-market-tools/internal/dataset"
)

// ComputeKPIs calculates the market-structure metrics for an
// already-filtered track table and its matching artist-expanded table.
// It also returns the full artist-frequency table, ordered by count
// descending then artist name ascending, for leaderboard consumption.
// A zero-length track table fails with EmptyDatasetError: the ratio KPIs
// would all divide by zero.
func ComputeKPIs(tracks []dataset.Track, artistRows []dataset.ArtistTrack) (KPIs, []ArtistCount, error) {
	totalTracks := len(tracks)
	if totalTracks == 0 {
		return KPIs{}, nil, &dataset.EmptyDatasetError{}
	}

	frequency := ArtistFrequency(artistRows)

	var aci float64
	for _, ac := range frequency {
		share := float64(ac.Count) / float64(totalTracks)
		aci += share * share
	}

	var top5 float64
	for i, ac := range frequency {
		if i >= 5 {
			break
		}
		top5 += float64(ac.Count) / float64(totalTracks)
	}

	collaborations := 0
	explicit := 0
	albumCounts := make(map[string]int)
	songs := make(map[string]bool)
	for _, t := range tracks {
		if t.IsCollaboration {
			collaborations++
		}
		if t.IsExplicit {
			explicit++
		}
		albumCounts[t.AlbumType]++
		songs[t.Song] = true
	}

	albumDistribution := make(map[string]float64, len(albumCounts))
	for albumType, count := range albumCounts {
		albumDistribution[albumType] = float64(count) / float64(totalTracks)
	}

	kpis := KPIs{
		ACI:                aci,
		Top5Share:          top5,
		UniqueArtists:      len(frequency),
		DiversityScore:     float64(len(frequency)) / float64(totalTracks),
		CollaborationRatio: float64(collaborations) / float64(totalTracks),
		ExplicitShare:      float64(explicit) / float64(totalTracks),
		AlbumDistribution:  albumDistribution,
		ContentVariety:     float64(len(songs)) / float64(totalTracks),
	}

	return kpis, frequency, nil
}

// ArtistFrequency counts track appearances per distinct artist, ordered by
// count descending with ties broken by name so leaderboards are
// deterministic.
func ArtistFrequency(artistRows []dataset.ArtistTrack) []ArtistCount {
	counts := make(map[string]int64)
	for _, row := range artistRows {
		counts[row.Artist]++
	}

	frequency := make([]ArtistCount, 0, len(counts))
	for name, count := range counts {
		frequency = append(frequency, ArtistCount{Artist: name, Count: count})
	}
	sort.Slice(frequency, func(i, j int) bool {
		if frequency[i].Count != frequency[j].Count {
			return frequency[i].Count > frequency[j].Count
		}
		return frequency[i].Artist < frequency[j].Artist
	})
	return frequency
}
