package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"chart-market-tools/internal/dataset"
	"chart-market-tools/internal/pipeline"
)

var cfgFile string
var datasetPath string
var albumTypeFilter []string
var artistFilter []string
var trackTypeFilter string
var smtpUsername string
var smtpPassword string

// datasets is the process-lifetime pipeline cache: one load per source
// file, shared by every command and recomputation.
var datasets = pipeline.NewCache()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chart-market-tools",
	Short: "Market-structure analysis of chart-ranking data",
	Long: `Analyzes a chart-ranking dataset (UK Top 50 playlist entries over time)
to produce market-structure metrics: artist concentration, collaboration
prevalence, explicit-content share, release-format mix, duration patterns,
and an artist collaboration network.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.chart-market-tools.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&datasetPath, "dataset", "d", "./charts.csv", "Path to the chart CSV dataset")
	viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))

	rootCmd.PersistentFlags().StringArrayVar(
		&albumTypeFilter, "album-type", nil, "Only include tracks with this album type (repeatable)")

	rootCmd.PersistentFlags().StringArrayVar(
		&artistFilter, "artist", nil, "Only include tracks credited to this artist (repeatable, fuzzy-matched)")

	rootCmd.PersistentFlags().StringVar(
		&trackTypeFilter, "tracks", dataset.TracksAll, "Track type filter: all, solo, or collabs")

	rootCmd.PersistentFlags().StringVar(&smtpUsername, "smtp_username", "", "SMTP username")
	viper.BindPFlag("smtp_username", rootCmd.PersistentFlags().Lookup("smtp_username"))

	rootCmd.PersistentFlags().StringVar(&smtpPassword, "smtp_password", "", "SMTP password")
	viper.BindPFlag("smtp_password", rootCmd.PersistentFlags().Lookup("smtp_password"))

	var from string
	rootCmd.PersistentFlags().StringVar(&from, "from", "", "From email address")
	viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".chart-market-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chart-market-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// loadFiltered loads the configured dataset through the cache and applies
// the date arguments and filter flags. Malformed artist credits are
// reported to stderr; they never abort the run.
func loadFiltered(args []string) (*pipeline.Dataset, error) {
	base, err := datasets.Load(viper.GetString("dataset"))
	if err != nil {
		return nil, err
	}

	for _, m := range base.Malformed {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", m)
	}

	filter, err := buildFilter(base, args)
	if err != nil {
		return nil, err
	}

	return base.FilterView(filter), nil
}

// noData reports whether err is the empty-filter condition, which commands
// surface as a message rather than a hard error.
func noData(err error) bool {
	var empty *dataset.EmptyDatasetError
	return errors.As(err, &empty)
}
