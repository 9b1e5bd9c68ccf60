// Package cycloid generates the geometry of a cycloidal drive: the disk
// profile traced by an epicycloid, the roller pins it meshes with, the output
// pins and parallel offsets of the profile used for manufacturing clearance.
//
// This package holds the value types shared by the generators. The generators
// themselves live in the must (panicking) and form (error returning) packages.
package cycloid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Empirical layout constants.
const (
	// OutputPinRadiusDivisor places output pins at CycloidRadius/OutputPinRadiusDivisor.
	OutputPinRadiusDivisor = 2.25
	// OutputHoleClearance is added to PinRadius to size the disk holes the output pins pass through.
	OutputHoleClearance = 0.4
	// RollerClearance is the inward offset of the disk profile that gives the rollers room.
	RollerClearance = 0.2
)

const (
	// MinPinCount is the smallest ring pin count with a positive reduction ratio.
	MinPinCount = 2
	// MaxPinCount is the largest pin count the command line tool accepts.
	MaxPinCount = 101
	// MaxSamples is the largest number of points a profile is sampled at.
	MaxSamples = 1 << 20
)

// Params defines the mechanical parameters of a cycloidal drive.
// Lengths are in whatever unit the caller uses consistently.
type Params struct {
	PinCount      int     // number of ring (roller) pins, reduction ratio is PinCount-1
	CycloidRadius float64 // disk outer radius
	PinRadius     float64 // roller pin radius
	Eccentricity  float64 // eccentric shaft offset, conventionally PinRadius/2
	DiskThickness float64 // disk extrusion depth (3d only)
	RollerLength  float64 // roller extrusion depth (3d only)
}

// DefaultParams returns a small five pin drive with 50 unit disk radius.
func DefaultParams() Params {
	const pinRadius = 2.5
	return Params{
		PinCount:      5,
		CycloidRadius: 50,
		PinRadius:     pinRadius,
		Eccentricity:  pinRadius / 2,
		DiskThickness: 5,
		RollerLength:  5,
	}
}

// RollingRadius returns the radius of the circle that rolls around the base
// circle to generate the epicycloid.
func (p Params) RollingRadius() float64 {
	return p.CycloidRadius / float64(p.PinCount)
}

// ReductionRatio returns the speed reduction of the drive.
func (p Params) ReductionRatio() int {
	return p.PinCount - 1
}

// BaseRadius returns the radius of the fixed circle of the epicycloid.
func (p Params) BaseRadius() float64 {
	return p.RollingRadius() * float64(p.ReductionRatio())
}

// OutputPinCount returns the number of output pins, (PinCount-1)/2 rounded down.
func (p Params) OutputPinCount() int {
	return p.ReductionRatio() / 2
}

// ProfileAt returns the point of the disk profile at angle deg (degrees).
// The compound rotation uses the unreduced angle so a sweep past 360 keeps tracking.
func (p Params) ProfileAt(deg float64) r2.Vec {
	rr := p.RollingRadius()
	r := p.BaseRadius() + rr
	ecc := rr - p.Eccentricity
	n := float64(p.PinCount)
	x := r * math.Cos(DtoR(deg))
	y := r * math.Sin(DtoR(deg))
	return r2.Vec{
		X: x + ecc*math.Cos(DtoR(n*deg)),
		Y: y + ecc*math.Sin(DtoR(n*deg)),
	}
}

// Validate checks every parameter the geometry depends on. The extrusion
// depths are not checked since only 3d consumers use them.
func (p Params) Validate() error {
	if p.PinCount < MinPinCount {
		return &ParamError{Name: "PinCount", Value: float64(p.PinCount), Reason: "must be at least 2"}
	}
	if err := positive("CycloidRadius", p.CycloidRadius); err != nil {
		return err
	}
	if err := positive("PinRadius", p.PinRadius); err != nil {
		return err
	}
	if err := positive("Eccentricity", p.Eccentricity); err != nil {
		return err
	}
	if p.Eccentricity >= p.RollingRadius() {
		return &ParamError{Name: "Eccentricity", Value: p.Eccentricity, Reason: "must be less than CycloidRadius/PinCount"}
	}
	return nil
}

// ValidateStep checks an angular sampling step in degrees.
func ValidateStep(stepDeg float64) error {
	if !(stepDeg > 0 && stepDeg <= 360) {
		return &ParamError{Name: "step", Value: stepDeg, Reason: "must be in (0, 360]"}
	}
	if 360/stepDeg > MaxSamples {
		return &ParamError{Name: "step", Value: stepDeg, Reason: fmt.Sprintf("gives more than %d samples per turn", MaxSamples)}
	}
	return nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ParamError{Name: name, Value: v, Reason: "must be positive and finite"}
	}
	return nil
}
