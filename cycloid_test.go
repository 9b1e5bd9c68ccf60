package cycloid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/must"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestParams(t *testing.T) {
	p := cycloid.Params{PinCount: 11, CycloidRadius: 50, PinRadius: 5, Eccentricity: 2.5}
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := p.ReductionRatio(); got != 10 {
		t.Errorf("reduction ratio got %d. want 10", got)
	}
	if got := p.OutputPinCount(); got != 5 {
		t.Errorf("output pin count got %d. want 5", got)
	}
	if got, want := p.BaseRadius(), 500./11; !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("base radius got %g. want %g", got, want)
	}
	// Full turn is periodic.
	a, b := p.ProfileAt(30), p.ProfileAt(390)
	if !scalar.EqualWithinAbs(a.X, b.X, 1e-9) || !scalar.EqualWithinAbs(a.Y, b.Y, 1e-9) {
		t.Errorf("profile not periodic: %v != %v", a, b)
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		p    cycloid.Params
		name string
	}{
		{p: cycloid.Params{PinCount: 1, CycloidRadius: 50, PinRadius: 2.5, Eccentricity: 1}, name: "PinCount"},
		{p: cycloid.Params{PinCount: 5, CycloidRadius: math.Inf(1), PinRadius: 2.5, Eccentricity: 1}, name: "CycloidRadius"},
		{p: cycloid.Params{PinCount: 5, CycloidRadius: 50, PinRadius: -2.5, Eccentricity: 1}, name: "PinRadius"},
		{p: cycloid.Params{PinCount: 5, CycloidRadius: 50, PinRadius: 2.5, Eccentricity: 0}, name: "Eccentricity"},
		{p: cycloid.Params{PinCount: 5, CycloidRadius: 50, PinRadius: 2.5, Eccentricity: 10}, name: "Eccentricity"},
	} {
		err := test.p.Validate()
		if !errors.Is(err, cycloid.ErrInvalidParameter) {
			t.Errorf("%+v: got %v. want %v", test.p, err, cycloid.ErrInvalidParameter)
			continue
		}
		var perr *cycloid.ParamError
		if !errors.As(err, &perr) || perr.Name != test.name {
			t.Errorf("%+v: got %v. want error naming %s", test.p, err, test.name)
		}
	}
	if err := cycloid.ValidateStep(360); err != nil {
		t.Errorf("step 360 rejected: %v", err)
	}
	if err := cycloid.ValidateStep(-1); err == nil {
		t.Error("negative step accepted")
	}
	if err := cycloid.ValidateStep(360.0 / cycloid.MaxSamples); err != nil {
		t.Errorf("smallest step rejected: %v", err)
	}
	if err := cycloid.ValidateStep(360.0 / (cycloid.MaxSamples + 1)); !errors.Is(err, cycloid.ErrInvalidParameter) {
		t.Errorf("step below smallest got %v. want %v", err, cycloid.ErrInvalidParameter)
	}
}

func TestCurve(t *testing.T) {
	square := cycloid.Curve{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}}
	if !square.IsClosed() {
		t.Error("square not closed")
	}
	if got := len(square.Loop()); got != 4 {
		t.Errorf("loop length got %d. want 4", got)
	}
	if got := square.Segments(); got != 4 {
		t.Errorf("segments got %d. want 4", got)
	}
	if a, b := square.Segment(3); a != (r2.Vec{Y: 2}) || b != (r2.Vec{}) {
		t.Errorf("closing segment got %v %v", a, b)
	}
	if got := square.SignedArea(); got != 4 {
		t.Errorf("area got %g. want 4", got)
	}
	cw := cycloid.Curve{square[3], square[2], square[1], square[0]}
	if got := cw.SignedArea(); got != -4 {
		t.Errorf("clockwise area got %g. want -4", got)
	}
	if got := square.Length(); got != 8 {
		t.Errorf("length got %g. want 8", got)
	}
	if got := square.DistinctPoints(); got != 4 {
		t.Errorf("distinct points got %d. want 4", got)
	}
	zigzag := cycloid.Curve{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1e-12}, {X: 0, Y: 0}}
	if got := zigzag.DistinctPoints(); got != 2 {
		t.Errorf("zig-zag distinct points got %d. want 2", got)
	}
	bb := square.Bounds()
	if bb.Min != (r2.Vec{}) || bb.Max != (r2.Vec{X: 2, Y: 2}) {
		t.Errorf("bounds got %v", bb)
	}
	min, max := square.RadialExtent()
	if min != 0 || !scalar.EqualWithinAbs(max, 2*math.Sqrt2, 1e-12) {
		t.Errorf("radial extent got %g..%g", min, max)
	}
	square[1].Y = math.Inf(-1)
	if square.IsFinite() {
		t.Error("infinite point not detected")
	}
}

func TestPinSetCircle(t *testing.T) {
	ps := cycloid.PinSet{Centers: []r2.Vec{{X: 10}, {Y: -3}}, Radius: 2}
	c := ps.Circle(1, 12)
	if len(c) != 13 || c[0] != c[12] {
		t.Fatalf("circle not closed, %d points", len(c))
	}
	for i, v := range c {
		if r := r2.Norm(r2.Sub(v, ps.Centers[1])); !scalar.EqualWithinAbs(r, 2, 1e-12) {
			t.Errorf("point %d at radius %g. want 2", i, r)
		}
	}
	if c.SignedArea() <= 0 {
		t.Error("pin circle is not counter-clockwise")
	}
	bb := ps.Bounds()
	if want := (r2.Box{Min: r2.Vec{X: -2, Y: -5}, Max: r2.Vec{X: 12, Y: 2}}); bb != want {
		t.Errorf("bounds got %v. want %v", bb, want)
	}
}

func TestSDF2Combinators(t *testing.T) {
	a := must.Circle(r2.Vec{}, 2)
	b := must.Circle(r2.Vec{X: 3}, 2)
	u := cycloid.Union2D(a, b)
	if got := u.Evaluate(r2.Vec{X: 1.5}); got >= 0 {
		t.Errorf("union at overlap got %g. want negative", got)
	}
	if got := u.Evaluate(r2.Vec{X: 7}); !scalar.EqualWithinAbs(got, 2, 1e-12) {
		t.Errorf("union outside got %g. want 2", got)
	}
	if bb := u.Bounds(); bb.Min.X != -2 || bb.Max.X != 5 {
		t.Errorf("union bounds got %v", bb)
	}
	diff := cycloid.Difference2D(a, b)
	if got := diff.Evaluate(r2.Vec{X: 1.5}); got <= 0 {
		t.Errorf("difference at cut got %g. want positive", got)
	}
	if got := diff.Evaluate(r2.Vec{X: -1}); !scalar.EqualWithinAbs(got, -1, 1e-12) {
		t.Errorf("difference inside got %g. want -1", got)
	}
	if cycloid.Union2D(a) != a {
		t.Error("single union should return its argument")
	}
}

func TestDrive(t *testing.T) {
	d := must.NewDrive(cycloid.DefaultParams(), 1)
	bb := d.Bounds()
	// Lobes reach 58.75, input pins reach 48.75+2.5.
	if !scalar.EqualWithinAbs(bb.Max.X, 58.75, 1e-9) {
		t.Errorf("bounds max x got %g. want 58.75", bb.Max.X)
	}
}

func TestAngles(t *testing.T) {
	if got := cycloid.DtoR(180); !scalar.EqualWithinAbs(got, math.Pi, 1e-15) {
		t.Errorf("DtoR(180) got %g", got)
	}
	if got := cycloid.RtoD(math.Pi / 2); !scalar.EqualWithinAbs(got, 90, 1e-12) {
		t.Errorf("RtoD(pi/2) got %g", got)
	}
	if !cycloid.EqualFloat64(1, 1+1e-12, 1e-9) || cycloid.EqualFloat64(1, 1.1, 1e-9) {
		t.Error("EqualFloat64 tolerance")
	}
}
