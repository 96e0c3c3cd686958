package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chart-market-tools/internal/graph"
	"chart-market-tools/internal/store"
)

var exportDbPath string
var exportCmd = &cobra.Command{
	Use:   "export [from] [to (optional)]",
	Short: "Exports the enriched tables to a sqlite database",
	Long: `Writes the filtered track table, the artist-expanded table, and the
collaboration edges to a sqlite database for ad hoc SQL queries.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runExport(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportDbPath, "to", "./chart-market.db", "Path to the sqlite database to write")
}

func runExport(args []string) error {
	view, err := loadFiltered(args)
	if err != nil {
		return err
	}
	if len(view.Tracks) == 0 {
		fmt.Println("No data for the current filter; nothing exported.")
		return nil
	}

	db, err := store.New(exportDbPath)
	if err != nil {
		return fmt.Errorf("opening export database: %w", err)
	}
	defer db.Close()

	g := graph.Build(view.Tracks)
	if err := db.WriteSnapshot(view.Tracks, view.ArtistRows, g); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	fmt.Printf("Exported %d tracks, %d artist rows, and %d collaboration pairs to %s\n",
		len(view.Tracks), len(view.ArtistRows), g.EdgeCount(), exportDbPath)
	return nil
}
