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

// Package grapher renders evenly spaced series of samples as line graphs.
//
// An [Engine] reads samples from a [DataSource], maps them onto the surface
// of a [Layer] and hands the resulting [Path] to the layer, together with
// the stroke configuration derived from the current [Style]. Rebuilds run
// on a worker pool; everything that touches the layer runs on a single
// presentation loop (see package [seehuhn.de/go/grapher/loop]).
package grapher

//go:generate go run ./testcases/export -o testdata/graphs.json

import (
	"image/color"
	"math"
	"slices"
	"time"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/grapher/loop"
)

// DefaultRange is the value range of a new engine. It accepts every
// positive finite value, so that a graph shows something before the range
// is configured.
var DefaultRange = ValueRange{Min: math.SmallestNonzeroFloat64, Max: math.MaxFloat64}

// Engine draws one series onto one layer.
//
// Configuration methods, accessors and Reload must be called from the
// presentation loop the engine was created with. Setters only record the
// new configuration; call Reload to redraw.
type Engine struct {
	layer Layer
	main  *loop.Loop
	pool  *loop.Pool

	ownsPool       bool
	strict         bool
	revealDuration time.Duration

	rng    ValueRange
	style  Style
	source SourceRef
	cache  StyleCache
	pipe   pipeline

	// last presented result
	path   *Path
	points []NormalizedPoint
}

// New creates an engine drawing onto l. Presentation work is posted to
// main.
func New(l Layer, main *loop.Loop, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		layer:          l,
		main:           main,
		pool:           o.pool,
		strict:         o.strict,
		revealDuration: o.revealDuration,
		rng:            o.valueRange,
	}
	if e.pool == nil {
		e.pool = loop.NewPool(1)
		e.ownsPool = true
	}
	e.pipe.pool = e.pool
	e.pipe.main = main
	return e
}

// Close releases the worker pool if the engine created it. Rebuilds which
// have not started yet are still completed.
func (e *Engine) Close() {
	if e.ownsPool {
		e.pool.Close()
	}
}

// SetDataSource replaces the data source. Use [Weak] for sources owned
// elsewhere.
func (e *Engine) SetDataSource(ref SourceRef) {
	e.source = ref
}

// SetRange sets the value range mapped onto the height of the layer.
func (e *Engine) SetRange(r ValueRange) {
	e.rng = r
}

// Range returns the current value range.
func (e *Engine) Range() ValueRange {
	return e.rng
}

// SetLineWidth sets the stroke width.
func (e *Engine) SetLineWidth(w float64) {
	if e.style.LineWidth == w {
		return
	}
	e.style.LineWidth = w
	e.cache.Invalidate()
}

// SetLineColor sets the stroke color.
func (e *Engine) SetLineColor(c color.Color) {
	if colorEqual(e.style.LineColor, c) {
		return
	}
	e.style.LineColor = c
	e.cache.Invalidate()
}

// SetLineStyle sets the dash style of the line.
func (e *Engine) SetLineStyle(s LineStyle) {
	if e.style.LineStyle == s {
		return
	}
	e.style.LineStyle = s
	e.cache.Invalidate()
}

// SetSmoothing sets how consecutive points are connected.
func (e *Engine) SetSmoothing(s Smoothing) {
	if e.style.Smoothing == s {
		return
	}
	e.style.Smoothing = s
	e.cache.Invalidate()
}

// Style returns the current line style.
func (e *Engine) Style() Style {
	return e.style
}

// StyleApplied reports whether the layer currently carries the configured
// style.
func (e *Engine) StyleApplied() bool {
	return e.cache.Applied()
}

// LayerAttached must be called when the layer becomes part of a displayed
// hierarchy. Styling which was deferred until then is performed now.
func (e *Engine) LayerAttached() error {
	_, err := e.cache.Apply(e.style, e.layer)
	return err
}

// Count returns the number of samples the data source currently reports.
// A missing data source has no samples.
func (e *Engine) Count() int {
	return snapshot(e.source).count
}

// Value returns the sample value at pos.
func (e *Engine) Value(pos int) (float64, bool) {
	s := snapshot(e.source)
	if s.value == nil {
		return 0, false
	}
	return s.value(pos)
}

// PointAt returns the sample at pos as a (position, value) pair.
func (e *Engine) PointAt(pos int) (vec.Vec2, bool) {
	v, ok := e.Value(pos)
	if !ok {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: float64(pos), Y: v}, true
}

// Points returns the normalized points of the most recently presented
// rebuild.
func (e *Engine) Points() []NormalizedPoint {
	return slices.Clone(e.points)
}

// Path returns the most recently presented path.
func (e *Engine) Path() *Path {
	return e.path
}

// State returns the phase of the most recent rebuild.
func (e *Engine) State() State {
	return e.pipe.State()
}

// Reload rebuilds the path from the data source and presents it. With
// animated set, the line is revealed from start to end.
//
// Reload returns immediately. The returned channel is closed once the new
// path has been handed to the layer, or once the rebuild has been
// superseded by a later call to Reload. The sample count, the value range,
// the smoothing mode and the layer size are captured at the time of the
// call.
func (e *Engine) Reload(animated bool) <-chan struct{} {
	job := buildJob{
		src:       snapshot(e.source),
		rng:       e.rng,
		size:      e.layer.Size(),
		smoothing: e.style.Smoothing,
	}
	return e.pipe.start(job, func(res buildResult) {
		e.present(res, animated)
	})
}

// present runs on the presentation loop.
func (e *Engine) present(res buildResult, animated bool) {
	e.layer.RemoveAllAnimations()

	if _, err := e.cache.Apply(e.style, e.layer); err != nil {
		Logger().Error("presenting graph without a complete line style",
			"generation", res.gen, "error", err)
		if e.strict {
			panic(err)
		}
	}

	e.path = res.path
	e.points = res.points
	e.layer.SetPath(res.path)
	e.layer.SetNeedsDisplay()

	if animated {
		e.layer.AddAnimation(RevealAnimation(e.revealDuration))
	}
	Logger().Debug("graph presented",
		"generation", res.gen, "commands", res.path.Len(), "animated", animated)
}
