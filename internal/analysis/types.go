package analysis

// KPIs holds the market-structure metrics for one filtered track table.
// All ratios are relative to the track table, not the expanded artist
// table.
type KPIs struct {
	// ACI is a Herfindahl-style concentration index: the sum over
	// distinct artists of their squared share of track appearances,
	// with shares relative to the track count. 1 means every track
	// credits the same single artist; collaboration-heavy slices can
	// push individual shares (and the sum) above 1.
	ACI float64 `yaml:"ACI"`

	// Top5Share is the combined share of the five most frequent artists.
	Top5Share float64 `yaml:"Top5Share"`

	UniqueArtists  int     `yaml:"UniqueArtists"`
	DiversityScore float64 `yaml:"DiversityScore"`

	// CollaborationRatio is the fraction of tracks credited to more than
	// one artist.
	CollaborationRatio float64 `yaml:"CollaborationRatio"`

	ExplicitShare float64 `yaml:"ExplicitShare"`

	// AlbumDistribution maps each album type present to its proportion
	// of the track table. Proportions sum to 1.
	AlbumDistribution map[string]float64 `yaml:"AlbumDistribution"`

	// ContentVariety is the number of distinct song titles divided by
	// the track count.
	ContentVariety float64 `yaml:"ContentVariety"`
}

// ArtistCount is one leaderboard entry: an artist and their track
// appearance count.
type ArtistCount struct {
	Artist string `yaml:"artist"`
	Count  int64  `yaml:"count"`
}

// Report is the full analysis document for one filtered dataset.
type Report struct {
	Metadata   ReportMetadata `yaml:"metadata"`
	KPIs       KPIs           `yaml:"kpis"`
	TopArtists []ArtistCount  `yaml:"top_artists"`
	Network    NetworkSummary `yaml:"collaboration_network"`
}

type ReportMetadata struct {
	GeneratedDate string `yaml:"generated_date"`
	PeriodStart   string `yaml:"period_start"`
	PeriodEnd     string `yaml:"period_end"`
	TotalTracks   int    `yaml:"total_tracks"`
	TotalArtists  int    `yaml:"total_artists"`
}

// NetworkSummary describes the collaboration graph for the report.
type NetworkSummary struct {
	Nodes      int           `yaml:"nodes"`
	Edges      int           `yaml:"edges"`
	TopDegrees []ArtistCount `yaml:"top_degrees,omitempty"`
}
