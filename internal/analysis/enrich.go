package analysis

import "chart-market-tools/internal/dataset"

// Duration bucket labels.
const (
	BucketShort    = "Short"
	BucketMedium   = "Medium"
	BucketLong     = "Long"
	BucketVeryLong = "Very Long"
)

// Rank segment labels.
const (
	RankTop10 = "Top 10"
	RankTop50 = "Top 50"
)

// Enrich adds the derived per-track features: duration in minutes, the
// duration bucket, and the rank segment.
func Enrich(tracks []dataset.Track) []dataset.Track {
	out := make([]dataset.Track, len(tracks))
	for i, t := range tracks {
		t.DurationMinutes = float64(t.DurationMS) / 60000
		t.DurationBucket = durationBucket(t.DurationMinutes)
		t.RankGroup = rankGroup(t.Position)
		out[i] = t
	}
	return out
}

// durationBucket places a duration into half-open (lo, hi] intervals over
// the bins 0, 2, 3, 4, 10. Exactly zero or more than ten minutes falls
// outside every bin and yields no bucket (empty string).
func durationBucket(minutes float64) string {
	switch {
	case minutes > 0 && minutes <= 2:
		return BucketShort
	case minutes > 2 && minutes <= 3:
		return BucketMedium
	case minutes > 3 && minutes <= 4:
		return BucketLong
	case minutes > 4 && minutes <= 10:
		return BucketVeryLong
	}
	return ""
}

func rankGroup(position int) string {
	if position <= 10 {
		return RankTop10
	}
	return RankTop50
}
