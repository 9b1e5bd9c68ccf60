// Package must generates cycloidal drive geometry and panics on invalid
// input. The panic value is always an error of the kind defined in package
// cycloid. Use package form for error returning versions.
package must

import (
	"math"

	"github.com/soypat/cycloid"
)

// Profile returns the disk profile sampled every stepDeg degrees as a closed
// curve. The last point is an exact copy of the first. When stepDeg does not
// divide 360 the last gap before closing is shorter than stepDeg.
func Profile(p cycloid.Params, stepDeg float64) cycloid.Curve {
	mustValid(p)
	if err := cycloid.ValidateStep(stepDeg); err != nil {
		panic(err)
	}
	n := samples(stepDeg)
	c := make(cycloid.Curve, n+1)
	for i := 0; i < n; i++ {
		// i*step instead of accumulating so error does not build up along the sweep.
		c[i] = p.ProfileAt(float64(i) * stepDeg)
	}
	c[n] = c[0]
	return c
}

// samples returns the number of distinct samples taken over a full turn.
func samples(stepDeg float64) int {
	n := 360 / stepDeg
	if rn := math.Round(n); cycloid.EqualFloat64(n, rn, 1e-9) {
		return int(rn)
	}
	return int(math.Ceil(n))
}

func mustValid(p cycloid.Params) {
	if err := p.Validate(); err != nil {
		panic(err)
	}
}
