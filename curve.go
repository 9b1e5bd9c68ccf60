package cycloid

import (
	"sort"

	"github.com/soypat/cycloid/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Curve is an ordered sequence of points forming a closed loop. The last
// point either repeats the first or is implicitly connected to it.
// Consecutive points are joined by straight segments.
type Curve []r2.Vec

// IsClosed returns true if the last point repeats the first one.
func (c Curve) IsClosed() bool {
	return len(c) > 1 && d2.EqualWithin(c[0], c[len(c)-1], tolerance)
}

// Loop returns the curve without the closing duplicate point, if any.
// The returned slice shares memory with c.
func (c Curve) Loop() Curve {
	if c.IsClosed() {
		return c[:len(c)-1]
	}
	return c
}

// Clone returns a copy of the curve.
func (c Curve) Clone() Curve {
	return append(Curve(nil), c...)
}

// Segments returns the number of straight segments of the closed loop.
func (c Curve) Segments() int {
	return len(c.Loop())
}

// Segment returns the endpoints of the i-th segment of the closed loop.
func (c Curve) Segment(i int) (a, b r2.Vec) {
	loop := c.Loop()
	return loop[i], loop[(i+1)%len(loop)]
}

// Bounds returns the bounding box of the curve.
func (c Curve) Bounds() r2.Box {
	if len(c) == 0 {
		return r2.Box{}
	}
	return r2.Box(d2.Set(c).Bounds())
}

// SignedArea returns the area enclosed by the loop. It is positive for
// counter-clockwise loops and negative for clockwise ones.
func (c Curve) SignedArea() float64 {
	loop := c.Loop()
	var a float64
	for i := range loop {
		p, q := loop[i], loop[(i+1)%len(loop)]
		a += r2.Cross(p, q)
	}
	return a / 2
}

// Length returns the perimeter of the closed loop.
func (c Curve) Length() float64 {
	loop := c.Loop()
	var l float64
	for i := range loop {
		l += r2.Norm(r2.Sub(loop[(i+1)%len(loop)], loop[i]))
	}
	return l
}

// RadialExtent returns the minimum and maximum distance of the curve's
// vertices to the origin.
func (c Curve) RadialExtent() (min, max float64) {
	if len(c) == 0 {
		return 0, 0
	}
	r := make([]float64, len(c))
	for i, v := range c {
		r[i] = r2.Norm(v)
	}
	return floats.Min(r), floats.Max(r)
}

// DistinctPoints counts the unique vertices of the loop. Vertices within
// tolerance of each other count once, wherever they appear in the loop.
func (c Curve) DistinctPoints() int {
	sorted := c.Loop().Clone()
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	var unique []r2.Vec
next:
	for _, v := range sorted {
		// Only kept points with X within tolerance of v can match it.
		for k := len(unique) - 1; k >= 0 && unique[k].X >= v.X-tolerance; k-- {
			if d2.EqualWithin(unique[k], v, tolerance) {
				continue next
			}
		}
		unique = append(unique, v)
	}
	return len(unique)
}

// IsFinite returns false if any coordinate is NaN or infinite.
func (c Curve) IsFinite() bool {
	for _, v := range c {
		if !d2.IsFinite(v) {
			return false
		}
	}
	return true
}

// Equal returns true if both curves have the same number of points and
// every pair of points lies within tol.
func (c Curve) Equal(other Curve, tol float64) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !d2.EqualWithin(c[i], other[i], tol) {
			return false
		}
	}
	return true
}
