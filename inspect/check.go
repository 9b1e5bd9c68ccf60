package inspect

import (
	"fmt"
	"math"
	"strings"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/form"
)

// PinClearance returns the smallest gap between any pin of ps and the region
// enclosed by c. The result is negative when a pin overlaps the region.
func PinClearance(c cycloid.Curve, ps cycloid.PinSet) (float64, error) {
	region, err := form.Polygon(c)
	if err != nil {
		return 0, err
	}
	gap := math.Inf(1)
	for _, center := range ps.Centers {
		gap = math.Min(gap, region.Evaluate(center)-ps.Radius)
	}
	return gap, nil
}

// WallThickness returns the thinnest wall between the holes of ps and the
// outside of the region enclosed by c. The result is negative when a hole
// breaks through c.
func WallThickness(c cycloid.Curve, ps cycloid.PinSet) (float64, error) {
	region, err := form.Polygon(c)
	if err != nil {
		return 0, err
	}
	wall := math.Inf(1)
	for _, center := range ps.Centers {
		wall = math.Min(wall, -region.Evaluate(center)-ps.Radius)
	}
	return wall, nil
}

// OffsetDeviation returns the largest difference between |d| and the
// distance of a vertex of offset to the curve c it was offset from.
func OffsetDeviation(c, offset cycloid.Curve, d float64) (float64, error) {
	region, err := form.Polygon(c)
	if err != nil {
		return 0, err
	}
	var dev float64
	for _, v := range offset {
		dev = math.Max(dev, math.Abs(math.Abs(region.Evaluate(v))-math.Abs(d)))
	}
	return dev, nil
}

// Report is the result of inspecting a drive.
type Report struct {
	Closed             bool       // profile ends on its first point
	Points             int        // profile points including the closing one
	MinRadius          float64    // smallest profile radius
	MaxRadius          float64    // largest profile radius
	Area               float64    // area enclosed by the profile
	Perimeter          float64    // profile length
	ProfileCrossings   []Crossing // profile self intersections
	ClearanceCrossings []Crossing // clearance curve self intersections
	ClearanceDeviation float64    // worst error of the clearance offset
	InputPinGap        float64    // signed ring pin to profile gap, negative as the pins sit inside the lobes
	HoleWall           float64    // thinnest wall between output holes and the clearance curve
}

// Check inspects the geometry of a drive.
func Check(d cycloid.Drive) (Report, error) {
	r := Report{
		Closed:             d.Profile.IsClosed(),
		Points:             len(d.Profile),
		Area:               d.Profile.SignedArea(),
		Perimeter:          d.Profile.Length(),
		ProfileCrossings:   SelfIntersections(d.Profile),
		ClearanceCrossings: SelfIntersections(d.Clearance),
		HoleWall:           math.Inf(1),
	}
	r.MinRadius, r.MaxRadius = d.Profile.RadialExtent()
	var err error
	r.ClearanceDeviation, err = OffsetDeviation(d.Profile, d.Clearance, cycloid.RollerClearance)
	if err != nil {
		return r, err
	}
	r.InputPinGap, err = PinClearance(d.Profile, d.InputPins)
	if err != nil {
		return r, err
	}
	if d.OutputHoles.Len() > 0 {
		r.HoleWall, err = WallThickness(d.Clearance, d.OutputHoles)
		if err != nil {
			return r, err
		}
	}
	return r, nil
}

// Problems returns a description of every defect found. It is empty for
// a drive that can be manufactured.
func (r Report) Problems() []string {
	var problems []string
	if !r.Closed {
		problems = append(problems, "profile is not closed")
	}
	if r.Area <= 0 {
		problems = append(problems, fmt.Sprintf("profile is not counter-clockwise, area %g", r.Area))
	}
	if n := len(r.ProfileCrossings); n > 0 {
		problems = append(problems, fmt.Sprintf("profile crosses itself %d times", n))
	}
	if n := len(r.ClearanceCrossings); n > 0 {
		problems = append(problems, fmt.Sprintf("clearance curve crosses itself %d times", n))
	}
	if r.HoleWall <= 0 {
		problems = append(problems, fmt.Sprintf("output holes break through the disk edge, wall %g", r.HoleWall))
	}
	return problems
}

// OK returns true if no problems were found.
func (r Report) OK() bool { return len(r.Problems()) == 0 }

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "points: %d closed: %t\n", r.Points, r.Closed)
	fmt.Fprintf(&b, "radius: %.4f..%.4f\n", r.MinRadius, r.MaxRadius)
	fmt.Fprintf(&b, "area: %.4f perimeter: %.4f\n", r.Area, r.Perimeter)
	fmt.Fprintf(&b, "crossings: profile %d clearance %d\n", len(r.ProfileCrossings), len(r.ClearanceCrossings))
	fmt.Fprintf(&b, "clearance deviation: %.2e\n", r.ClearanceDeviation)
	fmt.Fprintf(&b, "input pin gap (signed): %.4f\n", r.InputPinGap)
	fmt.Fprintf(&b, "output hole wall: %.4f\n", r.HoleWall)
	for _, p := range r.Problems() {
		fmt.Fprintf(&b, "problem: %s\n", p)
	}
	return b.String()
}
