// Package inspect checks generated drive geometry for defects that would
// make it unusable for manufacturing.
package inspect

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/soypat/cycloid"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	tolerance = 1e-9
	// r-tree node fan out.
	minChildren = 25
	maxChildren = 50
)

// Crossing is a point where two non adjacent segments of a closed curve meet.
type Crossing struct {
	I, J  int    // segment indices, I < J
	Point r2.Vec // intersection point
}

// segment is a curve segment stored in the r-tree.
type segment struct {
	index int
	a, b  r2.Vec
	bb    rtreego.Rect
}

func (s *segment) Bounds() rtreego.Rect { return s.bb }

func newSegment(index int, a, b r2.Vec) *segment {
	// Boxes are padded since the r-tree does not report touching boxes.
	lo := rtreego.Point{math.Min(a.X, b.X) - tolerance, math.Min(a.Y, b.Y) - tolerance}
	hi := rtreego.Point{math.Max(a.X, b.X) + tolerance, math.Max(a.Y, b.Y) + tolerance}
	bb, err := rtreego.NewRectFromPoints(lo, hi)
	if err != nil {
		panic(err) // unreachable, both points are 2d
	}
	return &segment{index: index, a: a, b: b, bb: bb}
}

// SelfIntersections returns every crossing between non adjacent segments of
// the closed curve c, sorted by segment index. A simple curve has none.
// Collinear overlapping segments are not reported.
func SelfIntersections(c cycloid.Curve) []Crossing {
	loop := c.Loop()
	n := len(loop)
	if n < 4 {
		// Every pair of segments of a triangle is adjacent.
		return nil
	}
	segs := make([]rtreego.Spatial, n)
	for i := range loop {
		segs[i] = newSegment(i, loop[i], loop[(i+1)%n])
	}
	tree := rtreego.NewTree(2, minChildren, maxChildren, segs...)

	var crossings []Crossing
	for _, obj := range segs {
		s := obj.(*segment)
		for _, found := range tree.SearchIntersect(s.bb) {
			o := found.(*segment)
			if o.index <= s.index || adjacent(s.index, o.index, n) {
				continue
			}
			if p, ok := segmentIntersection(s.a, s.b, o.a, o.b); ok {
				crossings = append(crossings, Crossing{I: s.index, J: o.index, Point: p})
			}
		}
	}
	sort.Slice(crossings, func(i, j int) bool {
		if crossings[i].I != crossings[j].I {
			return crossings[i].I < crossings[j].I
		}
		return crossings[i].J < crossings[j].J
	})
	return crossings
}

// adjacent reports whether segments i < j of an n segment loop share a vertex.
func adjacent(i, j, n int) bool {
	return j == i+1 || (i == 0 && j == n-1)
}

// segmentIntersection returns the point where segments ab and cd meet.
// Parallel and zero length segments never meet.
func segmentIntersection(a, b, c, d r2.Vec) (r2.Vec, bool) {
	r := r2.Sub(b, a)
	s := r2.Sub(d, c)
	denom := r2.Cross(r, s)
	if math.Abs(denom) < tolerance*tolerance {
		return r2.Vec{}, false
	}
	ac := r2.Sub(c, a)
	t := r2.Cross(ac, s) / denom
	u := r2.Cross(ac, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return r2.Vec{}, false
	}
	return r2.Add(a, r2.Scale(t, r)), true
}
