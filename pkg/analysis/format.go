package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// FormatMeasurement formats a measurement with appropriate precision
func FormatMeasurement(value float64, unit string) string {
	if value != 0 && math.Abs(value) < 1e-3 {
		return fmt.Sprintf("%.3e %s", value, unit)
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a vector for display
func FormatVector(v r3.Vec) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatReport renders a self-check report as indented lines
func FormatReport(r Report) string {
	return fmt.Sprintf(
		"Geometry: %s (%d samples)\n"+
			"  Distance invariance: %.3e\n"+
			"  Inverse law:         %.3e\n"+
			"  Move to origin:      %.3e\n"+
			"  Look at:             %.3e\n",
		r.Geometry, r.Samples,
		r.MaxDistanceError, r.MaxInverseError, r.MaxMoveError, r.MaxLookAtError,
	)
}
