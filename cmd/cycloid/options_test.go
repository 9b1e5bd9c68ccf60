package main

import (
	"errors"
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/soypat/cycloid"
	"gonum.org/v1/plot/vg"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseArgsDefaults(t *testing.T) {
	o, err := ParseArgs(newTestFlagSet(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if o.Params != cycloid.DefaultParams() {
		t.Errorf("got params %+v. want %+v", o.Params, cycloid.DefaultParams())
	}
	if o.Step != 1 || o.DXF != "" || o.Plot != "" || o.Check {
		t.Errorf("unexpected defaults %+v", o)
	}
	if o.PlotSize != 15*vg.Centimeter {
		t.Errorf("plot size got %v. want %v", o.PlotSize, 15*vg.Centimeter)
	}
}

func TestParseArgs(t *testing.T) {
	o, err := ParseArgs(newTestFlagSet(), []string{
		"-pins", "11", "-radius", "40", "-pin-radius", "3", "-step", "0.5",
		"-dxf", "out.dxf", "-plot", "out.png", "-check",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := cycloid.Params{PinCount: 11, CycloidRadius: 40, PinRadius: 3, Eccentricity: 1.5, DiskThickness: 5, RollerLength: 5}
	if o.Params != want {
		t.Errorf("got params %+v. want %+v", o.Params, want)
	}
	if o.Step != 0.5 || o.DXF != "out.dxf" || o.Plot != "out.png" || !o.Check {
		t.Errorf("unexpected options %+v", o)
	}

	o, err = ParseArgs(newTestFlagSet(), []string{"-pin-radius", "3", "-eccentricity", "0.7"})
	if err != nil {
		t.Fatal(err)
	}
	if o.Params.Eccentricity != 0.7 {
		t.Errorf("explicit eccentricity got %g. want 0.7", o.Params.Eccentricity)
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, argv := range [][]string{
		{"-pins", "102"},
		{"-pins", "-1"},
		{"-plot-size", "0"},
		{"-radius", "abc"},
		{"extra"},
		{"-nope"},
	} {
		if _, err := ParseArgs(newTestFlagSet(), argv); err == nil {
			t.Errorf("%v: expected error", argv)
		}
	}
	_, err := ParseArgs(newTestFlagSet(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h got %v. want %v", err, flag.ErrHelp)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	o, err := ParseArgs(newTestFlagSet(), []string{
		"-step", "2", "-check",
		"-dxf", filepath.Join(dir, "drive.dxf"),
		"-plot", filepath.Join(dir, "drive.png"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := run(o); err != nil {
		t.Fatal(err)
	}
	// Pin counts below two pass the flag bounds and are rejected by the generator.
	o.Params.PinCount = 1
	if err := run(o); !errors.Is(err, cycloid.ErrInvalidParameter) {
		t.Errorf("one pin got %v. want %v", err, cycloid.ErrInvalidParameter)
	}
}
