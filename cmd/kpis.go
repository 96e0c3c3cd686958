package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"chart-market-tools/internal/analysis"
)

var kpisCmd = &cobra.Command{
	Use:   "kpis [from] [to (optional)]",
	Short: "Computes market-structure KPIs for the filtered dataset",
	Long: `Computes the KPI set (concentration index, top-5 share, diversity,
collaboration ratio, explicit share, album-type distribution, content
variety) over the tracks matching the current filters and prints it as
YAML. Date strings look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printKPIs(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(kpisCmd)
}

func printKPIs(out io.Writer, args []string) error {
	view, err := loadFiltered(args)
	if err != nil {
		return err
	}

	kpis, _, err := analysis.ComputeKPIs(view.Tracks, view.ArtistRows)
	if noData(err) {
		fmt.Fprintln(out, "No data for the current filter.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("computing KPIs: %w", err)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(kpis); err != nil {
		return fmt.Errorf("encoding KPIs: %w", err)
	}
	return encoder.Close()
}
