package main

import (
	"flag"
	"fmt"

	"github.com/soypat/cycloid"
	"gonum.org/v1/plot/vg"
)

// Options holds the command line configuration.
type Options struct {
	Params   cycloid.Params
	Step     float64   // profile sampling step in degrees
	DXF      string    // DXF output path, empty to skip
	Plot     string    // plot output path, empty to skip
	PlotSize vg.Length // plot side length
	Check    bool      // log the inspection report
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage:\n  %s [options]\n\n", name)
		fmt.Fprintln(out, "Generates the disk profile and pin layout of a cycloidal drive.")
		fmt.Fprintln(out, "\nOptions:")
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs parses argv into Options. Mechanical parameters are validated
// later by the geometry generators.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	def := cycloid.DefaultParams()
	o := Options{Params: def}
	var plotCm float64
	fs.IntVar(&o.Params.PinCount, "pins", def.PinCount, "number of ring pins, reduction ratio is pins-1")
	fs.Float64Var(&o.Params.CycloidRadius, "radius", def.CycloidRadius, "disk outer radius")
	fs.Float64Var(&o.Params.PinRadius, "pin-radius", def.PinRadius, "roller pin radius")
	fs.Float64Var(&o.Params.Eccentricity, "eccentricity", def.Eccentricity, "eccentric shaft offset, pin-radius/2 when not set")
	fs.Float64Var(&o.Params.DiskThickness, "disk-thickness", def.DiskThickness, "disk extrusion depth")
	fs.Float64Var(&o.Params.RollerLength, "roller-length", def.RollerLength, "roller extrusion depth")
	fs.Float64Var(&o.Step, "step", 1, "profile sampling step in degrees")
	fs.StringVar(&o.DXF, "dxf", "", "write the drive to a DXF file")
	fs.StringVar(&o.Plot, "plot", "", "write a preview plot, format from extension (png, svg, pdf)")
	fs.Float64Var(&plotCm, "plot-size", 15, "preview side length in centimetres")
	fs.BoolVar(&o.Check, "check", false, "log the inspection report")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.Params.PinCount < 0 || o.Params.PinCount > cycloid.MaxPinCount {
		return o, fmt.Errorf("-pins must be in 0..%d, got %d", cycloid.MaxPinCount, o.Params.PinCount)
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["eccentricity"] {
		o.Params.Eccentricity = o.Params.PinRadius / 2
	}
	if !(plotCm > 0) {
		return o, fmt.Errorf("-plot-size must be positive, got %g", plotCm)
	}
	o.PlotSize = vg.Length(plotCm) * vg.Centimeter
	return o, nil
}
