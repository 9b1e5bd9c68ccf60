package matter

import (
	"github.com/soypat/cycloid"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
)

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Scale returns the factor printed outer dimensions are multiplied by so
// they are true to size after cooling.
func (m ViscousMaterial) Scale() float64 {
	return 1 / (1 - m.shrink)
}

// InternalDimScale returns the dimension a hole of diameter real must be
// printed at.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}

// Compensate returns a copy of the drive geometry prepared for printing the
// disk in the material. The profile, clearance curve and pin positions are
// scaled by Scale and the output holes are widened by InternalDimScale.
// Params are left untouched.
func (m ViscousMaterial) Compensate(d cycloid.Drive) cycloid.Drive {
	k := m.Scale()
	out := d
	out.Profile = scaleCurve(d.Profile, k)
	out.Clearance = scaleCurve(d.Clearance, k)
	out.InputPins = scalePins(d.InputPins, k)
	out.OutputPins = scalePins(d.OutputPins, k)
	out.OutputHoles = scalePins(d.OutputHoles, k)
	if d.OutputHoles.Len() > 0 {
		out.OutputHoles.Radius = m.InternalDimScale(2*d.OutputHoles.Radius) / 2
	}
	return out
}

func scaleCurve(c cycloid.Curve, k float64) cycloid.Curve {
	out := make(cycloid.Curve, len(c))
	for i, v := range c {
		out[i] = r2.Scale(k, v)
	}
	return out
}

func scalePins(ps cycloid.PinSet, k float64) cycloid.PinSet {
	return cycloid.PinSet{
		Centers: scaleCurve(ps.Centers, k),
		Radius:  k * ps.Radius,
	}
}
