package must

import (
	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// InputPins returns the ring rollers that mesh with the disk profile:
// PinCount pins evenly spaced on a circle of radius CycloidRadius-Eccentricity.
func InputPins(p cycloid.Params) cycloid.PinSet {
	mustValid(p)
	return ring(p.PinCount, p.CycloidRadius-p.Eccentricity, p.PinRadius)
}

// OutputPins returns (PinCount-1)/2 output pins, rounded down, evenly spaced
// on a circle of radius CycloidRadius/OutputPinRadiusDivisor. A drive with
// two ring pins has no output pins.
func OutputPins(p cycloid.Params) cycloid.PinSet {
	mustValid(p)
	return ring(p.OutputPinCount(), p.CycloidRadius/cycloid.OutputPinRadiusDivisor, p.PinRadius)
}

// OutputHoles returns the holes in the disk the output pins travel in.
func OutputHoles(p cycloid.Params) cycloid.PinSet {
	holes := OutputPins(p)
	holes.Radius = p.PinRadius + cycloid.OutputHoleClearance
	return holes
}

// ring places n pins at angles k*360/n degrees, k = 0..n-1.
func ring(n int, radius, pinRadius float64) cycloid.PinSet {
	ps := cycloid.PinSet{
		Centers: make([]r2.Vec, n),
		Radius:  pinRadius,
	}
	for k := range ps.Centers {
		deg := float64(k) * 360 / float64(n)
		ps.Centers[k] = d2.PolarToXY(radius, cycloid.DtoR(deg))
	}
	return ps
}
