package d2

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// NewBox2 creates a 2d box with a given center and size.
func NewBox2(center, size r2.Vec) Box {
	half := r2.Scale(0.5, size)
	return Box{r2.Sub(center, half), r2.Add(center, half)}
}

// Extend returns a box enclosing two 2d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Translate translates a 2d box.
func (a Box) Translate(v r2.Vec) Box {
	return Box{r2.Add(a.Min, v), r2.Add(a.Max, v)}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Enlarge returns a new 2d box enlarged by a size vector.
func (a Box) Enlarge(v r2.Vec) Box {
	v = r2.Scale(0.5, v)
	return Box{r2.Sub(a.Min, v), r2.Add(a.Max, v)}
}

// Vertices returns a slice of 2d box corner vertices.
func (a Box) Vertices() Set {
	// bl, br, tl, tr
	v := make([]r2.Vec, 4)
	v[0] = a.Min
	v[1] = r2.Vec{X: a.Max.X, Y: a.Min.Y}
	v[2] = r2.Vec{X: a.Min.X, Y: a.Max.Y}
	v[3] = a.Max
	return v
}

// MinMaxDist2 returns the minimum and maximum dist * dist from a point to a box.
// Points within the box have minimum distance = 0.
func (a Box) MinMaxDist2(p r2.Vec) r2.Vec {
	maxDist2 := 0.0
	minDist2 := 0.0

	// translate the box so p is at the origin
	a = a.Translate(r2.Scale(-1, p))

	// consider the vertices
	vs := a.Vertices()
	for i := range vs {
		d2 := r2.Norm2(vs[i])
		if i == 0 {
			minDist2 = d2
		} else {
			minDist2 = math.Min(minDist2, d2)
		}
		maxDist2 = math.Max(maxDist2, d2)
	}

	// consider the sides (for the minimum)
	withinX := a.Min.X < 0 && a.Max.X > 0
	withinY := a.Min.Y < 0 && a.Max.Y > 0
	if withinX && withinY {
		minDist2 = 0
	} else {
		if withinX {
			d := math.Min(math.Abs(a.Max.Y), math.Abs(a.Min.Y))
			minDist2 = math.Min(minDist2, d*d)
		}
		if withinY {
			d := math.Min(math.Abs(a.Max.X), math.Abs(a.Min.X))
			minDist2 = math.Min(minDist2, d*d)
		}
	}
	return r2.Vec{X: minDist2, Y: maxDist2}
}

// RandomSet returns a set of random points from within a bounding box.
func (a Box) RandomSet(rng *rand.Rand, n int) Set {
	s := make([]r2.Vec, n)
	for i := range s {
		s[i] = r2.Vec{
			X: a.Min.X + (a.Max.X-a.Min.X)*rng.Float64(),
			Y: a.Min.Y + (a.Max.Y-a.Min.Y)*rng.Float64(),
		}
	}
	return s
}
