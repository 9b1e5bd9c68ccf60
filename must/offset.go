package must

import (
	"math"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Offset returns the curve displaced by distance d along its vertex normals.
// Positive d moves the curve outwards, negative d inwards. Each vertex moves
// along the bisector of its two adjacent edge normals. The result has as
// many points as c and keeps its closing point, if any, equal to the first.
// Self intersections of the result are not trimmed.
func Offset(c cycloid.Curve, d float64) cycloid.Curve {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		panic(&cycloid.ParamError{Name: "distance", Value: d, Reason: "must be finite"})
	}
	if !c.IsFinite() {
		panic(&cycloid.ParamError{Name: "curve", Value: math.NaN(), Reason: "has non-finite coordinates"})
	}
	if n := c.DistinctPoints(); n < 3 {
		panic(cycloid.DegenerateError("got %d distinct points, need at least 3", n))
	}
	out := c.Clone()
	if d == 0 {
		return out
	}
	loop := c.Loop()
	normals := edgeNormals(loop)
	nv := len(loop)
	for i := range loop {
		prev := normals[(i+nv-1)%nv]
		next := normals[i]
		bisector := r2.Add(prev, next)
		if r2.Norm2(bisector) < epsilon {
			// Edges fold back onto each other, bisector is undefined.
			bisector = next
		}
		out[i] = r2.Add(loop[i], r2.Scale(d, r2.Unit(bisector)))
	}
	if len(out) > nv {
		out[nv] = out[0]
	}
	return out
}

// edgeNormals returns the outward unit normal of every edge of a closed loop,
// edge i going from loop[i] to loop[i+1]. Zero length edges take the normal
// of the closest preceding edge with a length.
func edgeNormals(loop cycloid.Curve) []r2.Vec {
	sign := 1.0
	if loop.SignedArea() < 0 {
		sign = -1
	}
	nv := len(loop)
	normals := make([]r2.Vec, nv)
	valid := make([]bool, nv)
	first := -1
	for i := range loop {
		e := r2.Sub(loop[(i+1)%nv], loop[i])
		if d2.EqualWithin(e, r2.Vec{}, tolerance) {
			continue
		}
		normals[i] = r2.Scale(sign, d2.Perp(r2.Unit(e)))
		valid[i] = true
		if first < 0 {
			first = i
		}
	}
	// Walk once around the loop starting at a valid edge to fill the gaps.
	for k := 1; k < nv; k++ {
		i := (first + k) % nv
		if !valid[i] {
			normals[i] = normals[(i+nv-1)%nv]
		}
	}
	return normals
}
