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

// Package gglayer draws graphs onto a github.com/gogpu/gg drawing context.
package gglayer

import (
	"image"
	"image/color"
	"time"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/grapher"
)

// Layer renders the graph with the software renderer of gg, or with any
// renderer installed on the context by the host.
//
// All methods must be called from the presentation loop.
type Layer struct {
	dc         *gg.Context
	background color.Color
	attached   bool
	now        func() time.Time

	stroke grapher.Stroke
	path   *grapher.Path
	reveal *grapher.Animation
	start  time.Time

	// last error returned by gg while drawing
	err error
}

// New creates a layer with its own drawing context of the given size.
// Optional gg context options, for example a GPU renderer, are passed on.
func New(width, height int, opts ...gg.ContextOption) *Layer {
	return Wrap(gg.NewContext(width, height, opts...))
}

// Wrap creates a layer drawing onto an existing context.
func Wrap(dc *gg.Context) *Layer {
	return &Layer{
		dc:         dc,
		background: color.Transparent,
		now:        time.Now,
	}
}

// SetBackground sets the color the context is cleared to before drawing.
func (l *Layer) SetBackground(c color.Color) {
	l.background = c
}

// SetClock replaces the time source used to start animations.
func (l *Layer) SetClock(now func() time.Time) {
	l.now = now
}

// Context returns the underlying drawing context.
func (l *Layer) Context() *gg.Context {
	return l.dc
}

// Image returns the rendered image.
func (l *Layer) Image() image.Image {
	return l.dc.Image()
}

// Err returns the error of the most recent drawing operation, if any.
func (l *Layer) Err() error {
	return l.err
}

// Close releases the drawing context.
func (l *Layer) Close() error {
	return l.dc.Close()
}

// Attach marks the layer as displayed.
func (l *Layer) Attach() { l.attached = true }

// Detach marks the layer as no longer displayed.
func (l *Layer) Detach() { l.attached = false }

// Attached implements [grapher.Layer].
func (l *Layer) Attached() bool { return l.attached }

// Size implements [grapher.Layer].
func (l *Layer) Size() grapher.Size {
	return grapher.Size{Width: float64(l.dc.Width()), Height: float64(l.dc.Height())}
}

// SetStroke implements [grapher.Layer].
func (l *Layer) SetStroke(s grapher.Stroke) {
	l.stroke = s

	if s.Color != nil {
		l.dc.SetColor(s.Color)
	}
	// The complete stroke replaces any dash state left by an earlier style.
	l.dc.SetStroke(gg.Stroke{
		Width:      s.Width,
		Cap:        lineCap(s.Cap),
		Join:       lineJoin(s.Join),
		MiterLimit: gg.DefaultStroke().MiterLimit,
		Dash:       gg.NewDash(s.Dash...),
	})
}

// SetPath implements [grapher.Layer].
func (l *Layer) SetPath(p *grapher.Path) {
	l.path = p
}

// SetNeedsDisplay implements [grapher.Layer].
func (l *Layer) SetNeedsDisplay() {
	l.draw(1)
}

// AddAnimation implements [grapher.Layer]. Frames are drawn by [Layer.Tick].
func (l *Layer) AddAnimation(a grapher.Animation) {
	if a.Key != grapher.KeyStrokeEnd {
		return
	}
	l.reveal = &a
	l.start = l.now()
	l.draw(a.From)
}

// RemoveAllAnimations implements [grapher.Layer].
func (l *Layer) RemoveAllAnimations() {
	if l.reveal == nil {
		return
	}
	l.reveal = nil
	l.draw(1)
}

// Tick draws the animation frame for the given time. The result reports
// whether the animation is still running.
func (l *Layer) Tick(now time.Time) bool {
	if l.reveal == nil {
		return false
	}
	end, running := l.reveal.Progress(now.Sub(l.start))
	if !running && l.reveal.RemovedOnCompletion {
		l.reveal = nil
		end = 1
	}
	l.draw(end)
	return running
}

func (l *Layer) draw(strokeEnd float64) {
	l.dc.ClearPath()
	l.dc.ClearWithColor(gg.FromColor(l.background))
	if l.stroke.Width <= 0 || l.stroke.Color == nil {
		return
	}
	p := l.path.Reveal(strokeEnd)
	if p.IsEmpty() {
		return
	}

	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			l.dc.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			l.dc.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			l.dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			l.dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			l.dc.ClosePath()
		}
	}
	l.err = l.dc.Stroke()
	if l.err != nil {
		grapher.Logger().Warn("gglayer: stroke failed", "error", l.err)
	}
}

func lineCap(c graphics.LineCapStyle) gg.LineCap {
	switch c {
	case graphics.LineCapRound:
		return gg.LineCapRound
	case graphics.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoin(j graphics.LineJoinStyle) gg.LineJoin {
	switch j {
	case graphics.LineJoinRound:
		return gg.LineJoinRound
	case graphics.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
