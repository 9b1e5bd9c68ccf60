// Package form wraps the generators of package must, recovering their
// panics and returning them as errors.
package form

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/must"
	"gonum.org/v1/gonum/spatial/r2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the panic value if it was an error so errors.Is can match
// cycloid.ErrInvalidParameter and cycloid.ErrDegenerateCurve.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Stack returns the stack trace captured when the panic was recovered.
func Stack(err error) string {
	if s, ok := err.(*shapeErr); ok {
		return s.stack
	}
	return ""
}

// Profile returns the disk profile sampled every stepDeg degrees. See must.Profile.
func Profile(p cycloid.Params, stepDeg float64) (c cycloid.Curve, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Profile(p, stepDeg), err
}

// Offset returns the curve offset by distance d along its vertex normals.
// See must.Offset.
func Offset(c cycloid.Curve, d float64) (out cycloid.Curve, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Offset(c, d), err
}

// InputPins returns the ring pins of the drive.
func InputPins(p cycloid.Params) (ps cycloid.PinSet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.InputPins(p), err
}

// OutputPins returns the output pins of the drive.
func OutputPins(p cycloid.Params) (ps cycloid.PinSet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.OutputPins(p), err
}

// OutputHoles returns the disk holes for the output pins.
func OutputHoles(p cycloid.Params) (ps cycloid.PinSet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.OutputHoles(p), err
}

// NewDrive generates the complete geometry of a drive. See must.NewDrive.
func NewDrive(p cycloid.Params, stepDeg float64) (d cycloid.Drive, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.NewDrive(p, stepDeg), err
}

// Polygon returns an SDF2 made from a closed curve.
func Polygon(c cycloid.Curve) (s cycloid.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Polygon(c), err
}

// Circle returns the SDF2 for a circle.
func Circle(center r2.Vec, radius float64) (s cycloid.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Circle(center, radius), err
}

// Region returns the disk of the drive as an SDF2. See must.Region.
func Region(d cycloid.Drive) (s cycloid.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Region(d), err
}
