// Command cycloid generates the 2d geometry of a cycloidal drive and writes
// it as a DXF drawing and a preview plot.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/soypat/cycloid/form"
	"github.com/soypat/cycloid/inspect"
	"github.com/soypat/cycloid/render"
)

func main() {
	log.SetFlags(0)
	o, err := ParseArgs(newFlagSet("cycloid"), os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := run(o); err != nil {
		log.Fatal(err)
	}
}

func run(o Options) error {
	d, err := form.NewDrive(o.Params, o.Step)
	if err != nil {
		return err
	}
	log.Printf("%d:1 drive, %d profile points, %d input pins, %d output pins",
		d.Params.ReductionRatio(), len(d.Profile), d.InputPins.Len(), d.OutputPins.Len())
	if o.Check {
		r, err := inspect.Check(d)
		if err != nil {
			return err
		}
		log.Print(r)
		if !r.OK() {
			log.Printf("drive has %d problems", len(r.Problems()))
		}
	}
	if o.DXF != "" {
		if err := render.WriteDXF(o.DXF, d); err != nil {
			return err
		}
		log.Printf("wrote %s", o.DXF)
	}
	if o.Plot != "" {
		if err := render.CreatePlot(o.Plot, d, o.PlotSize); err != nil {
			return err
		}
		log.Printf("wrote %s", o.Plot)
	}
	return nil
}
