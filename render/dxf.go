package render

import (
	"github.com/soypat/cycloid"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// DXF layer names.
const (
	LayerProfile     = "PROFILE"
	LayerClearance   = "CLEARANCE"
	LayerInputPins   = "INPUT_PINS"
	LayerOutputPins  = "OUTPUT_PINS"
	LayerOutputHoles = "OUTPUT_HOLES"
)

// WriteDXF writes the drive geometry to a DXF drawing at path. Curves are
// written as line segments, pins and holes as circles, each part of the
// drive on its own layer.
func WriteDXF(path string, d cycloid.Drive) error {
	dr := dxf.NewDrawing()
	if err := writeCurve(dr, LayerProfile, dxf.DefaultColor, dxf.DefaultLineType, d.Profile); err != nil {
		return err
	}
	if err := writeCurve(dr, LayerClearance, color.Red, table.LT_HIDDEN, d.Clearance); err != nil {
		return err
	}
	for _, l := range []struct {
		name string
		pins cycloid.PinSet
	}{
		{name: LayerInputPins, pins: d.InputPins},
		{name: LayerOutputPins, pins: d.OutputPins},
		{name: LayerOutputHoles, pins: d.OutputHoles},
	} {
		if err := writePins(dr, l.name, l.pins); err != nil {
			return err
		}
	}
	return dr.SaveAs(path)
}

func writeCurve(dr *drawing.Drawing, layer string, cl color.ColorNumber, lt *table.LineType, c cycloid.Curve) error {
	if _, err := dr.AddLayer(layer, cl, lt, true); err != nil {
		return err
	}
	for i := 0; i < c.Segments(); i++ {
		a, b := c.Segment(i)
		if _, err := dr.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return err
		}
	}
	return nil
}

func writePins(dr *drawing.Drawing, layer string, ps cycloid.PinSet) error {
	if _, err := dr.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, c := range ps.Centers {
		if _, err := dr.Circle(c.X, c.Y, 0, ps.Radius); err != nil {
			return err
		}
	}
	return nil
}
