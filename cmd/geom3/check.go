package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/geom3/pkg/analysis"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("self-check failed")

var checkCfg = analysis.DefaultConfig()

var checkTolerance float64

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the isometry laws on random samples",
	Long: `Sample random motions and points and report the worst deviation from
distance invariance, the inverse law, move-to-origin and look-at.
Use --geometry all to check every geometry.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVarP(&checkCfg.Samples, "samples", "n", checkCfg.Samples, "number of samples")
	checkCmd.Flags().Uint64Var(&checkCfg.Seed, "seed", checkCfg.Seed, "random seed")
	checkCmd.Flags().IntVar(&checkCfg.ChainLength, "chain", checkCfg.ChainLength, "generators per sampled motion")
	checkCmd.Flags().Float64VarP(&checkTolerance, "tolerance", "t", 1e-6, "largest accepted deviation")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var reports []analysis.Report
	switch geometryName {
	case "all":
		reports = append(reports, analysis.CheckEuclidean(checkCfg), analysis.CheckHyperbolic(checkCfg))
	default:
		s, err := lookupSpace(geometryName)
		if err != nil {
			return err
		}
		if s.Name() == "euclidean" {
			reports = append(reports, analysis.CheckEuclidean(checkCfg))
		} else {
			reports = append(reports, analysis.CheckHyperbolic(checkCfg))
		}
	}

	failed := false
	for _, r := range reports {
		fmt.Fprint(cmd.OutOrStdout(), analysis.FormatReport(r))
		if !r.Passed(checkTolerance) {
			log.Error().Str("geometry", r.Geometry).Float64("worst", r.Worst()).Msg("tolerance exceeded")
			failed = true
		}
	}

	if failed {
		return errCheckFailed
	}
	return nil
}
