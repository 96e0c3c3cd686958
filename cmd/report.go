package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"chart-market-tools/internal/analysis"
)

var reportTopN int
var reportCmd = &cobra.Command{
	Use:   "report [from] [to (optional)]",
	Short: "Generates a full market-structure report",
	Long: `Analyzes the filtered dataset and prints a YAML report containing
period metadata, the KPI block, the artist leaderboard, and a summary of
the collaboration network.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVarP(&reportTopN, "number", "n", 15, "leaderboard and degree list length")
}

func runReport(args []string) error {
	view, err := loadFiltered(args)
	if err != nil {
		return err
	}

	report, err := analysis.GenerateReport(view.Tracks, view.ArtistRows, reportTopN)
	if noData(err) {
		fmt.Println("No data for the current filter.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("analyzing data: %w", err)
	}

	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
