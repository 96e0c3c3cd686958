package cmd

import (
	"fmt"
	"os"

	"chart-market-tools/internal/dataset"
	"chart-market-tools/internal/pipeline"
)

// buildFilter assembles the dataset filter from the shared flags and the
// trailing date arguments. User-supplied artist names are resolved against
// the dataset's credit strings; names that resolve to nothing are reported
// and ignored rather than silently matching zero tracks.
func buildFilter(base *pipeline.Dataset, dateArgs []string) (dataset.Filter, error) {
	var f dataset.Filter

	start, end, err := parseDateRangeFromArgs(dateArgs)
	if err != nil {
		return f, err
	}
	f.Start = start
	f.End = end

	switch trackTypeFilter {
	case dataset.TracksAll, dataset.TracksSolo, dataset.TracksCollab:
		f.TrackType = trackTypeFilter
	default:
		return f, fmt.Errorf("invalid --tracks value %q: want all, solo, or collabs", trackTypeFilter)
	}

	f.AlbumTypes = albumTypeFilter

	if len(artistFilter) > 0 {
		known := base.Artists()
		for _, name := range artistFilter {
			resolved, ok := dataset.ResolveArtist(name, known)
			if !ok {
				fmt.Fprintf(os.Stderr, "Warning: no credited artist matches %q, ignoring\n", name)
				continue
			}
			if resolved != name {
				fmt.Fprintf(os.Stderr, "Matching %q to credited artist %q\n", name, resolved)
			}
			f.Artists = append(f.Artists, resolved)
		}
	}

	return f, nil
}
