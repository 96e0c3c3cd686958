package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"chart-market-tools/internal/analysis"
	"chart-market-tools/internal/pipeline"
)

var topArtistsNumber int
var topArtistsCmd = &cobra.Command{
	Use:   "top-artists [from] [to (optional)]",
	Short: "Shows the artist dominance leaderboard",
	Long: `Counts track appearances per individual artist (collaborations count
once for every credited artist) over the filtered dataset. Date strings
look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopArtists(topArtistsNumber, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().IntVarP(&topArtistsNumber, "number", "n", 15, "number of results to return")
}

func printTopArtists(numToReturn int, args []string) error {
	view, err := loadFiltered(args)
	if err != nil {
		return err
	}

	out, err := leaderboardAnalysis(view, numToReturn)
	if noData(err) {
		fmt.Println("No data for the current filter.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func leaderboardAnalysis(view *pipeline.Dataset, numToReturn int) (Analysis, error) {
	var a Analysis

	kpis, frequency, err := analysis.ComputeKPIs(view.Tracks, view.ArtistRows)
	if err != nil {
		return a, err
	}

	a.results = [][]string{{"Artist", "Tracks", "Share"}}
	for i, ac := range frequency {
		if numToReturn > 0 && i >= numToReturn {
			break
		}
		share := float64(ac.Count) / float64(len(view.Tracks))
		a.results = append(a.results, []string{
			ac.Artist,
			strconv.FormatInt(ac.Count, 10),
			fmt.Sprintf("%.1f%%", share*100),
		})
	}

	a.summary = fmt.Sprintf("Found %d artists across %d tracks (ACI %.3f, top-5 share %.1f%%)",
		kpis.UniqueArtists, len(view.Tracks), kpis.ACI, kpis.Top5Share*100)

	return a, nil
}
