package must

import "github.com/soypat/cycloid"

// NewDrive generates the complete geometry of a single stage drive: the disk
// profile sampled every stepDeg degrees, its roller clearance curve, the ring
// pins and the output pins with their holes in the disk.
func NewDrive(p cycloid.Params, stepDeg float64) cycloid.Drive {
	profile := Profile(p, stepDeg)
	return cycloid.Drive{
		Params:      p,
		Profile:     profile,
		Clearance:   Offset(profile, -cycloid.RollerClearance),
		InputPins:   InputPins(p),
		OutputPins:  OutputPins(p),
		OutputHoles: OutputHoles(p),
	}
}

// Region returns the disk of the drive as a signed distance function:
// the area enclosed by the profile minus the output holes.
func Region(d cycloid.Drive) cycloid.SDF2 {
	disk := Polygon(d.Profile)
	if d.OutputHoles.Len() == 0 {
		return disk
	}
	return cycloid.Difference2D(disk, Pins(d.OutputHoles))
}
