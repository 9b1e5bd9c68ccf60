package cycloid

import (
	"math"

	"github.com/soypat/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// PinSet is a family of pins of equal radius arranged with rotational
// symmetry about the origin.
type PinSet struct {
	Centers []r2.Vec // pin centers, ordered by angle
	Radius  float64  // common pin radius
}

// Len returns the number of pins.
func (ps PinSet) Len() int { return len(ps.Centers) }

// Circle returns the outline of the i-th pin as a closed counter-clockwise
// curve of the given number of segments.
func (ps PinSet) Circle(i, segments int) Curve {
	if segments < 3 {
		panic("segments < 3")
	}
	c := make(Curve, segments+1)
	dtheta := 2 * math.Pi / float64(segments)
	for j := 0; j < segments; j++ {
		c[j] = r2.Add(ps.Centers[i], d2.PolarToXY(ps.Radius, float64(j)*dtheta))
	}
	c[segments] = c[0]
	return c
}

// Circles returns the outline of every pin. See Circle.
func (ps PinSet) Circles(segments int) []Curve {
	out := make([]Curve, len(ps.Centers))
	for i := range ps.Centers {
		out[i] = ps.Circle(i, segments)
	}
	return out
}

// Bounds returns the bounding box of all pins.
func (ps PinSet) Bounds() r2.Box {
	if len(ps.Centers) == 0 {
		return r2.Box{}
	}
	bb := d2.Set(ps.Centers).Bounds()
	return r2.Box(bb.Enlarge(d2.Elem(2 * ps.Radius)))
}

// Drive is the complete 2d geometry of a single cycloidal drive stage.
type Drive struct {
	Params      Params
	Profile     Curve  // disk boundary
	Clearance   Curve  // disk boundary offset inwards by RollerClearance
	InputPins   PinSet // ring rollers meshing with the profile
	OutputPins  PinSet // pins driven by the disk
	OutputHoles PinSet // disk holes the output pins travel in
}

// Bounds returns the bounding box of all the drive's geometry.
func (d Drive) Bounds() r2.Box {
	bb := d2.Box(d.Profile.Bounds())
	for _, ps := range []PinSet{d.InputPins, d.OutputPins, d.OutputHoles} {
		if ps.Len() > 0 {
			bb = bb.Extend(d2.Box(ps.Bounds()))
		}
	}
	return r2.Box(bb)
}
