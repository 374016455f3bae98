// seehuhn.de/go/grapher - a line graph rendering engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command grapher draws a line graph of the samples read from a file or
// from standard input.
//
// Samples are given one per line. A blank line or a line containing only
// "-" is a missing sample. The output format is chosen by the file name
// extension of the output file: ".pdf" writes a vector PDF page, anything
// else a PNG image.
//
// Defaults for all flags can be set with GRAPHER_* environment variables,
// which are also read from the file given by -env.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/joho/godotenv"

	"seehuhn.de/go/grapher"
	"seehuhn.de/go/grapher/gglayer"
	"seehuhn.de/go/grapher/loop"
	"seehuhn.de/go/grapher/pdflayer"
	"seehuhn.de/go/grapher/raster"
)

type config struct {
	input      string
	output     string
	backend    string
	width      int
	height     int
	min, max   float64
	lineWidth  float64
	lineColor  string
	background string
	lineStyle  string
	smoothing  string
	frames     int
	duration   time.Duration
	verbose    bool
}

func main() {
	envFile := ".env"
	for i, arg := range os.Args[1:] {
		// the env file must be loaded before the flag defaults are computed
		if name, ok := strings.CutPrefix(arg, "-env="); ok {
			envFile = name
		} else if (arg == "-env" || arg == "--env") && i+2 < len(os.Args) {
			envFile = os.Args[i+2]
		}
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "grapher: loading %s: %v\n", envFile, err)
		os.Exit(1)
	}

	cfg := parseFlags()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(newPrettyHandler(os.Stderr, level))
	grapher.SetLogger(logger)
	gg.SetLogger(logger)

	if err := run(cfg); err != nil {
		logger.Error("grapher failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() *config {
	cfg := &config{}
	flag.String("env", ".env", "file with GRAPHER_* settings")
	flag.StringVar(&cfg.input, "i", envString("INPUT", "-"), "input file, - for standard input")
	flag.StringVar(&cfg.output, "o", envString("OUTPUT", "graph.png"), "output file (.png or .pdf)")
	flag.StringVar(&cfg.backend, "backend", envString("BACKEND", "raster"), "PNG renderer: raster or gg")
	flag.IntVar(&cfg.width, "width", envInt("WIDTH", 640), "width of the graph")
	flag.IntVar(&cfg.height, "height", envInt("HEIGHT", 240), "height of the graph")
	flag.Float64Var(&cfg.min, "min", envFloat("MIN", math.NaN()), "value at the bottom edge (default: smallest sample)")
	flag.Float64Var(&cfg.max, "max", envFloat("MAX", math.NaN()), "value at the top edge (default: largest sample)")
	flag.Float64Var(&cfg.lineWidth, "line-width", envFloat("LINE_WIDTH", 2), "line width")
	flag.StringVar(&cfg.lineColor, "color", envString("COLOR", "#1f77b4"), "line color")
	flag.StringVar(&cfg.background, "background", envString("BACKGROUND", "#ffffff"), "background color, empty for none")
	flag.StringVar(&cfg.lineStyle, "style", envString("STYLE", "standard"), "line style: standard, dashed or dotted")
	flag.StringVar(&cfg.smoothing, "smoothing", envString("SMOOTHING", "none"), "smoothing: none or curve")
	flag.IntVar(&cfg.frames, "frames", envInt("FRAMES", 1), "number of reveal animation frames to write")
	flag.DurationVar(&cfg.duration, "duration", envDuration("DURATION", grapher.DefaultRevealDuration), "length of the reveal animation")
	flag.BoolVar(&cfg.verbose, "v", false, "log debug messages")
	flag.Parse()
	return cfg
}

// output is the part of a layer the command needs after drawing.
type output interface {
	grapher.Layer
	Attach()
	Tick(now time.Time) bool
	write(name string) error
}

func run(cfg *config) error {
	samples, err := loadSamples(cfg.input)
	if err != nil {
		return err
	}
	rng := grapher.ValueRange{Min: cfg.min, Max: cfg.max}
	if math.IsNaN(rng.Min) || math.IsNaN(rng.Max) {
		auto := dataRange(samples)
		if math.IsNaN(rng.Min) {
			rng.Min = auto.Min
		}
		if math.IsNaN(rng.Max) {
			rng.Max = auto.Max
		}
	}
	lineStyle, err := grapher.ParseLineStyle(cfg.lineStyle)
	if err != nil {
		return err
	}
	smoothing, err := grapher.ParseSmoothing(cfg.smoothing)
	if err != nil {
		return err
	}
	lineColor, err := parseColor(cfg.lineColor)
	if err != nil {
		return err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	}
	if cfg.frames < 1 {
		return fmt.Errorf("invalid number of frames %d", cfg.frames)
	}

	ui := loop.New(16)
	defer ui.Close()

	out, err := newOutput(cfg)
	if err != nil {
		return err
	}
	if c, ok := out.(io.Closer); ok {
		defer c.Close()
	}

	engine := grapher.New(out, ui,
		grapher.WithStrict(true),
		grapher.WithRange(rng),
		grapher.WithRevealDuration(cfg.duration))
	defer engine.Close()

	animated := cfg.frames > 1
	var done <-chan struct{}
	ui.Sync(func() {
		engine.SetDataSource(grapher.Strong(samples))
		engine.SetLineWidth(cfg.lineWidth)
		engine.SetLineColor(lineColor)
		engine.SetLineStyle(lineStyle)
		engine.SetSmoothing(smoothing)
		out.Attach()
		if err = engine.LayerAttached(); err == nil {
			done = engine.Reload(animated)
		}
	})
	if err != nil {
		return err
	}
	<-done

	log := grapher.Logger()
	ui.Sync(func() {
		log.Info("graph built",
			"samples", engine.Count(),
			"points", len(engine.Points()),
			"commands", engine.Path().Len(),
			"range", fmt.Sprintf("[%g, %g]", rng.Min, rng.Max))
	})

	if !animated {
		ui.Sync(func() { err = out.write(cfg.output) })
		return err
	}

	ext := filepath.Ext(cfg.output)
	base := strings.TrimSuffix(cfg.output, ext)
	for i := range cfg.frames {
		name := fmt.Sprintf("%s-%03d%s", base, i, ext)
		t := time.Duration(float64(cfg.duration) * float64(i) / float64(cfg.frames-1))
		ui.Sync(func() {
			out.Tick(epoch.Add(t))
			err = out.write(name)
		})
		if err != nil {
			return err
		}
		log.Debug("frame written", "file", name, "time", t)
	}
	return nil
}

func loadSamples(name string) (grapher.Values, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	samples, err := readSamples(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return samples, nil
}

// epoch is the clock reading of the layers. Animation frames are taken at
// fixed offsets from it.
var epoch = time.Unix(0, 0)

func epochClock() time.Time { return epoch }

func newOutput(cfg *config) (output, error) {
	var bg color.Color
	if cfg.background != "" {
		c, err := parseColor(cfg.background)
		if err != nil {
			return nil, err
		}
		bg = c
	}

	if strings.EqualFold(filepath.Ext(cfg.output), ".pdf") {
		if cfg.frames > 1 {
			return nil, errors.New("PDF output has no animation frames")
		}
		l := pdflayer.New(float64(cfg.width), float64(cfg.height))
		if bg != nil {
			l.SetBackground(bg)
		}
		return pdfOutput{l}, nil
	}

	switch cfg.backend {
	case "raster":
		opts := []raster.Option{raster.WithClock(epochClock)}
		if bg != nil {
			opts = append(opts, raster.WithBackground(bg))
		}
		return rasterOutput{raster.New(cfg.width, cfg.height, opts...)}, nil
	case "gg":
		l := gglayer.New(cfg.width, cfg.height)
		l.SetClock(epochClock)
		if bg != nil {
			l.SetBackground(bg)
		}
		return ggOutput{l}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.backend)
	}
}

type rasterOutput struct{ *raster.Layer }

func (o rasterOutput) write(name string) error {
	return writePNG(name, o.Image())
}

type ggOutput struct{ *gglayer.Layer }

func (o ggOutput) write(name string) error {
	if err := o.Err(); err != nil {
		return err
	}
	return writePNG(name, o.Image())
}

type pdfOutput struct{ *pdflayer.Layer }

func (o pdfOutput) Tick(time.Time) bool { return false }

func (o pdfOutput) write(name string) error {
	return o.WriteFile(name)
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
