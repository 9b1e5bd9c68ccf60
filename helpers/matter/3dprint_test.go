package matter

import (
	"math"
	"testing"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/must"
)

func TestCompensate(t *testing.T) {
	d := must.NewDrive(cycloid.DefaultParams(), 1)
	got := PLA.Compensate(d)
	k := 1 / (1 - 0.2e-2)
	_, max := got.Profile.RadialExtent()
	if want := 58.75 * k; math.Abs(max-want) > 1e-9 {
		t.Errorf("compensated max radius got %g. want %g", max, want)
	}
	if got.Profile[0] != got.Profile[len(got.Profile)-1] {
		t.Error("compensated profile lost closure")
	}
	if want := (5.8*1.002 + .45) / 2; math.Abs(got.OutputHoles.Radius-want) > 1e-12 {
		t.Errorf("hole radius got %g. want %g", got.OutputHoles.Radius, want)
	}
	if d.Profile[0] == got.Profile[0] {
		t.Error("input drive was modified or not scaled")
	}
	_, origMax := d.Profile.RadialExtent()
	if math.Abs(origMax-58.75) > 1e-9 {
		t.Errorf("input drive modified, max radius %g", origMax)
	}
}
