package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/internal/d2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// circleSegments is the number of segments pins are drawn with.
const circleSegments = 72

var diskFill = color.Gray{Y: 225}

// NewPlot returns a preview of the drive: the disk with its output holes,
// the clearance curve and the pins. Both axes share the same scale.
func NewPlot(d cycloid.Drive) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d pin cycloidal drive, %d:1", d.Params.PinCount, d.Params.ReductionRatio())
	p.Legend.Top = true

	rings := []plotter.XYer{xys(d.Profile)}
	for _, hole := range d.OutputHoles.Circles(circleSegments) {
		// Holes wind opposite to the profile.
		rings = append(rings, xys(reverse(hole)))
	}
	disk, err := plotter.NewPolygon(rings...)
	if err != nil {
		return nil, err
	}
	disk.Color = diskFill
	disk.LineStyle.Color = plotutil.Color(0)
	p.Add(disk)
	p.Legend.Add("disk", disk)

	clearance, err := plotter.NewLine(xys(d.Clearance))
	if err != nil {
		return nil, err
	}
	clearance.Color = plotutil.Color(1)
	clearance.Dashes = plotutil.Dashes(1)
	p.Add(clearance)
	p.Legend.Add("clearance", clearance)

	for i, pins := range []struct {
		name string
		set  cycloid.PinSet
	}{
		{name: "input pins", set: d.InputPins},
		{name: "output pins", set: d.OutputPins},
	} {
		if pins.set.Len() == 0 {
			continue
		}
		style := draw.LineStyle{Color: plotutil.Color(i + 2), Width: vg.Points(1)}
		for _, c := range pins.set.Circles(circleSegments) {
			l, err := plotter.NewLine(xys(c))
			if err != nil {
				return nil, err
			}
			l.LineStyle = style
			p.Add(l)
		}
		centers, err := plotter.NewScatter(xys(cycloid.Curve(pins.set.Centers)))
		if err != nil {
			return nil, err
		}
		centers.GlyphStyle.Shape = draw.CrossGlyph{}
		centers.GlyphStyle.Color = style.Color
		p.Add(centers)
		p.Legend.Add(pins.name, centers)
	}

	// Square data range so a square canvas keeps circles round.
	bb := d2.Box(d.Bounds())
	c, size := bb.Center(), bb.Size()
	half := 0.55 * math.Max(size.X, size.Y)
	p.X.Min, p.X.Max = c.X-half, c.X+half
	p.Y.Min, p.Y.Max = c.Y-half, c.Y+half
	return p, nil
}

// WritePlot writes a size by size preview of the drive to w in the given
// format, one of the formats supported by plot.Plot.WriterTo such as
// "png", "svg" or "pdf".
func WritePlot(w io.Writer, d cycloid.Drive, size vg.Length, format string) error {
	p, err := NewPlot(d)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(size, size, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// CreatePlot saves a size by size preview of the drive to path. The format
// is chosen from the file extension.
func CreatePlot(path string, d cycloid.Drive, size vg.Length) error {
	p, err := NewPlot(d)
	if err != nil {
		return err
	}
	return p.Save(size, size, path)
}

func xys(c cycloid.Curve) plotter.XYs {
	pts := make(plotter.XYs, len(c))
	for i, v := range c {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return pts
}

func reverse(c cycloid.Curve) cycloid.Curve {
	r := make(cycloid.Curve, len(c))
	for i, v := range c {
		r[len(c)-1-i] = v
	}
	return r
}
