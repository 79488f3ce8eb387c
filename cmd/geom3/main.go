package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/geom3/version"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	geometryName string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "geom3",
	Short: "Measure and walk through Euclidean and hyperbolic 3-space",
	Long: `geom3 moves an observer through flat space or through hyperbolic space
in the Poincaré half-space model. The same walk script can be replayed in
either geometry to compare how the spaces differ.`,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&geometryName, "geometry", "g", "euclidean", "geometry to use: euclidean or hyperbolic")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
