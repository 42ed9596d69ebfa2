package main

import (
	"fmt"
	"io"
	"os"

	"github.com/milk9111/folio/event"
	"github.com/milk9111/folio/loop"
	"github.com/milk9111/folio/particle"
	"github.com/milk9111/folio/raster"
	"github.com/milk9111/folio/theme"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type simOptions struct {
	width, height int
	ticks         int
	seed          uint64
	pointerX      float64
	pointerY      float64
	leave         bool
	theme         string
	png           string
	quiet         bool
}

var simOpts simOptions

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the particle field headless and report its state",
	Long: `sim steps the particle field without a window, drawing each frame
with the software rasterizer. The final frame can be written as a PNG.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runSim(simOpts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "particles: %d\nconnections: %d\nframes: %d\n",
			res.particles, res.connections, res.frames)
		if simOpts.png != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", simOpts.png)
		}
		return nil
	},
}

func init() {
	f := simCmd.Flags()
	f.IntVar(&simOpts.width, "width", 800, "surface width in pixels")
	f.IntVar(&simOpts.height, "height", 600, "surface height in pixels")
	f.IntVar(&simOpts.ticks, "ticks", 300, "number of frames to simulate")
	f.Uint64Var(&simOpts.seed, "seed", 1, "random seed")
	f.Float64Var(&simOpts.pointerX, "pointer-x", 0, "pointer x position")
	f.Float64Var(&simOpts.pointerY, "pointer-y", 0, "pointer y position")
	f.BoolVar(&simOpts.leave, "leave", false, "move the pointer off the surface before the first frame")
	f.StringVar(&simOpts.theme, "theme", string(theme.Default), "palette to draw with (dark or light)")
	f.StringVar(&simOpts.png, "png", "", "write the final frame to this PNG file")
	f.BoolVarP(&simOpts.quiet, "quiet", "q", false, "hide the progress bar")
	rootCmd.AddCommand(simCmd)
}

type simResult struct {
	particles   int
	connections int
	frames      uint64
}

func runSim(opts simOptions) (simResult, error) {
	if opts.width <= 0 || opts.height <= 0 {
		return simResult{}, fmt.Errorf("sim: size must be positive, got %dx%d", opts.width, opts.height)
	}
	name := theme.Name(opts.theme)
	if !name.Valid() {
		return simResult{}, fmt.Errorf("sim: unknown theme %q", opts.theme)
	}

	w, h := float64(opts.width), float64(opts.height)
	surface := raster.New(opts.width, opts.height)
	field := particle.NewField(surface, w, h, particle.Seeded(opts.seed))
	field.SetPalette(theme.PaletteFor(name).Particles)

	bus := event.NewBus()
	field.Attach(bus)
	defer field.Close()

	bus.Push(event.Event{Type: event.PointerMove, X: opts.pointerX, Y: opts.pointerY})
	if opts.leave {
		bus.Push(event.Event{Type: event.PointerLeave})
	}

	l := loop.New(false, field)
	l.Start()

	var bar *progressbar.ProgressBar
	if !opts.quiet {
		bar = progressbar.NewOptions(opts.ticks,
			progressbar.OptionSetDescription("Simulating"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for i := 0; i < opts.ticks; i++ {
		bus.Dispatch()
		if err := l.Step(); err != nil {
			return simResult{}, err
		}
		field.Draw()
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	l.Stop()

	if opts.png != "" {
		out, err := os.Create(opts.png)
		if err != nil {
			return simResult{}, fmt.Errorf("sim: create %s: %w", opts.png, err)
		}
		if err := savePNG(out, surface); err != nil {
			return simResult{}, fmt.Errorf("sim: write %s: %w", opts.png, err)
		}
	}

	return simResult{
		particles:   field.Len(),
		connections: len(field.Connections()),
		frames:      l.Frames(),
	}, nil
}

// savePNG encodes s into w and closes it, returning the first failure.
func savePNG(w io.WriteCloser, s *raster.Surface) error {
	err := s.WritePNG(w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}
