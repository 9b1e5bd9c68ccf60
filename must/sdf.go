package must

import (
	"math"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a closed curve. The curve is closed
// if it does not already end on its first point.
func Polygon(c cycloid.Curve) cycloid.SDF2 {
	if n := c.DistinctPoints(); n < 3 {
		panic(cycloid.DegenerateError("polygon got %d distinct vertices, need at least 3", n))
	}
	s := polygon{vertex: c.Clone()}
	if !c.IsClosed() {
		s.vertex = append(s.vertex, c[0])
	}

	// pre-calculated line segment info
	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		if s.length[i] > 0 {
			s.vector[i] = r2.Scale(1/s.length[i], l)
		}
	}
	s.bb = c.Bounds()
	return &s
}

// Evaluate returns the minimum distance to the polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])
	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		// t is the projection onto the segment, dn the normal distance to it.
		t := r2.Dot(pa, s.vector[i])
		dn := r2.Dot(pa, d2.Perp(s.vector[i]))
		switch {
		case t <= 0:
			dd = math.Min(dd, r2.Norm2(pa))
		case t > s.length[i]:
			dd = math.Min(dd, r2.Norm2(pb))
		default:
			dd = math.Min(dd, dn*dn)
		}

		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 {
				wn++ // upward crossing, p left of segment
			}
		} else if b.Y <= p.Y && dn > 0 {
			wn-- // downward crossing, p right of segment
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of the polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// circle is the 2d signed distance object for a circle.
type circle struct {
	center r2.Vec
	radius float64
	bb     r2.Box
}

// Circle returns the SDF2 for a circle.
func Circle(center r2.Vec, radius float64) cycloid.SDF2 {
	if !(radius > 0) || math.IsInf(radius, 0) {
		panic(&cycloid.ParamError{Name: "radius", Value: radius, Reason: "must be positive and finite"})
	}
	bb := d2.NewBox2(center, d2.Elem(2*radius))
	return &circle{center: center, radius: radius, bb: r2.Box(bb)}
}

// Evaluate returns the minimum distance to the circle.
func (s *circle) Evaluate(p r2.Vec) float64 {
	return r2.Norm(r2.Sub(p, s.center)) - s.radius
}

// Bounds returns the bounding box of the circle.
func (s *circle) Bounds() r2.Box {
	return s.bb
}

// Pins returns the union of the circles of a pin set.
// Panics if the set is empty.
func Pins(ps cycloid.PinSet) cycloid.SDF2 {
	if ps.Len() == 0 {
		panic(cycloid.DegenerateError("empty pin set"))
	}
	circles := make([]cycloid.SDF2, ps.Len())
	for i, c := range ps.Centers {
		circles[i] = Circle(c, ps.Radius)
	}
	return cycloid.Union2D(circles...)
}
