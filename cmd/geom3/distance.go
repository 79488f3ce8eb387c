package main

import (
	"fmt"

	"github.com/philipparndt/geom3/pkg/analysis"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var distanceCmd = &cobra.Command{
	Use:   "distance x1 y1 z1 x2 y2 z2",
	Short: "Measure the distance between two points",
	Long: `Measure the geodesic distance between two points of the selected geometry.
Hyperbolic points are given in half-space coordinates and need a positive z.`,
	Args: cobra.ExactArgs(6),
	RunE: runDistance,
}

func init() {
	rootCmd.AddCommand(distanceCmd)
}

func runDistance(cmd *cobra.Command, args []string) error {
	s, err := lookupSpace(geometryName)
	if err != nil {
		return err
	}

	coords, err := parseCoords(args)
	if err != nil {
		return err
	}
	a := [3]float64{coords[0], coords[1], coords[2]}
	b := [3]float64{coords[3], coords[4], coords[5]}

	log.Debug().Str("geometry", s.Name()).Floats64("a", a[:]).Floats64("b", b[:]).Msg("measuring")

	d, err := s.Distance(a, b)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Distance (%s): %s\n", s.Name(), analysis.FormatMeasurement(d, "units"))
	return nil
}
