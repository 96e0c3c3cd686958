package analysis

import (
	"sort"
	"time"

	"chart-market-tools/internal/dataset"
	"chart-market-tools/internal/graph"
)

const dateFormat = "2006-01-02"

// GenerateReport assembles the full analysis document for an
// already-filtered dataset: period metadata, the KPI block, the artist
// leaderboard (top topN entries), and a collaboration-network summary.
func GenerateReport(tracks []dataset.Track, artistRows []dataset.ArtistTrack, topN int) (*Report, error) {
	kpis, frequency, err := ComputeKPIs(tracks, artistRows)
	if err != nil {
		return nil, err
	}

	report := &Report{KPIs: kpis}

	start, end := dateRange(tracks)
	report.Metadata = ReportMetadata{
		GeneratedDate: time.Now().Format(dateFormat),
		PeriodStart:   start.Format(dateFormat),
		PeriodEnd:     end.Format(dateFormat),
		TotalTracks:   len(tracks),
		TotalArtists:  len(frequency),
	}

	if topN > 0 && len(frequency) > topN {
		frequency = frequency[:topN]
	}
	report.TopArtists = frequency

	g := graph.Build(tracks)
	report.Network = summarizeNetwork(g, topN)

	return report, nil
}

func summarizeNetwork(g *graph.Graph, topN int) NetworkSummary {
	summary := NetworkSummary{
		Nodes: g.NodeCount(),
		Edges: g.EdgeCount(),
	}

	degrees := make([]ArtistCount, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		degrees = append(degrees, ArtistCount{Artist: n, Count: int64(g.Degree(n))})
	}
	sort.Slice(degrees, func(i, j int) bool {
		if degrees[i].Count != degrees[j].Count {
			return degrees[i].Count > degrees[j].Count
		}
		return degrees[i].Artist < degrees[j].Artist
	})
	if topN > 0 && len(degrees) > topN {
		degrees = degrees[:topN]
	}
	summary.TopDegrees = degrees
	return summary
}

// dateRange returns the earliest and latest chart dates in the table.
func dateRange(tracks []dataset.Track) (time.Time, time.Time) {
	var start, end time.Time
	for _, t := range tracks {
		if start.IsZero() || t.Date.Before(start) {
			start = t.Date
		}
		if end.IsZero() || t.Date.After(end) {
			end = t.Date
		}
	}
	return start, end
}
