// SPDX-License-Identifier: MIT
// Package: diagramkit/cmd/diagramgen
//
// Command diagramgen renders a batch of diagram descriptors to files.
//
//	diagramgen -in batch.yaml -out build/ -format svg
//	diagramgen -sweep incline -format png -scale 2 -out build/
//
// The input is YAML or JSON as accepted by diagram.Decode. Each diagram is
// written to <out>/<name>.<ext>, where name is the sweep entry name or the
// descriptor's position and family ("003-beaker").
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/katalvlaran/diagramkit/diagram"
	"github.com/katalvlaran/diagramkit/physics"
	"github.com/katalvlaran/diagramkit/render"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/variants"
)

var (
	flagIn      = flag.String("in", "", "descriptor `file` (YAML or JSON, - for stdin)")
	flagOut     = flag.String("out", ".", "output `directory`")
	flagFormat  = flag.String("format", "svg", "output format: svg or png")
	flagScale   = flag.Float64("scale", render.DefaultPNGScale, "PNG pixel `scale`")
	flagWorkers = flag.Int("workers", 0, "concurrent assemblies (0 = GOMAXPROCS)")
	flagSweep   = flag.String("sweep", "", "built-in variants: incline, parabola or elements")
	flagList    = flag.Bool("list", false, "list known families and exit")
	flagV       = flag.Bool("v", false, "log progress")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("diagramgen: ")
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s [flags] (-in file | -sweep name)\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagList {
		for _, f := range diagram.Families() {
			fmt.Println(f)
		}
		return
	}

	backend, err := backendFor(*flagFormat, *flagScale)
	if err != nil {
		log.Fatal(err)
	}

	var entries []variants.Entry
	switch {
	case *flagIn != "" && *flagSweep != "":
		log.Fatal("-in and -sweep are mutually exclusive")
	case *flagIn != "":
		entries, err = readEntries(*flagIn)
		if err != nil {
			log.Fatal(err)
		}
	case *flagSweep != "":
		entries, err = sweepEntries(*flagSweep)
		if err != nil {
			log.Fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []variants.Option{}
	if *flagWorkers > 0 {
		opts = append(opts, variants.WithWorkers(*flagWorkers))
	}
	if *flagV {
		opts = append(opts, variants.WithProgress(func(done, total int) {
			log.Printf("assembled %d/%d", done, total)
		}))
	}
	out, err := variants.Generate(ctx, entries, opts...)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*flagOut, 0o755); err != nil {
		log.Fatal(err)
	}
	empty := 0
	for i, d := range out {
		if d.IsEmpty() {
			empty++
			log.Printf("%s: unknown family %q, writing an empty diagram", entries[i].Name, d.Family)
		}
		path := filepath.Join(*flagOut, entries[i].Name+"."+backend.Ext())
		if err := writeFile(path, d, backend); err != nil {
			log.Fatal(err)
		}
	}
	if *flagV {
		log.Printf("wrote %d files to %s (%d empty)", len(out), *flagOut, empty)
	}
}

func backendFor(format string, scale float64) (render.Backend, error) {
	switch format {
	case "svg":
		return render.SVG{}, nil
	case "png":
		if scale <= 0 || scale > render.MaxPNGScale {
			return nil, fmt.Errorf("-scale must be in (0,%v], got %v", render.MaxPNGScale, scale)
		}
		return render.PNG{Scale: scale}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want svg or png)", format)
}

func readEntries(name string) ([]variants.Entry, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	ds, err := diagram.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return variants.Descriptors(ds), nil
}

func sweepEntries(name string) ([]variants.Entry, error) {
	cv := scene.DefaultCanvas()
	switch name {
	case "incline":
		return variants.InclineSweep(physics.DefaultIncline(), cv), nil
	case "parabola":
		return variants.ParabolaSweep(nil, cv), nil
	case "elements":
		return variants.ElementPlaceholders(cv), nil
	}
	return nil, fmt.Errorf("unknown sweep %q (want incline, parabola or elements)", name)
}

func writeFile(path string, d diagram.Diagram, b render.Backend) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Render(f, b); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
