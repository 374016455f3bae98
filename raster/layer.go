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

// Package raster provides a [grapher.Layer] which draws into an RGBA image.
//
// Strokes are converted into outline polygons by a [Stroker] and filled
// with anti-aliasing by golang.org/x/image/vector. Animations are advanced
// by posting frames to the presentation loop.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/grapher"
	"seehuhn.de/go/grapher/loop"
)

// Layer is a software drawing surface for a graph.
//
// All methods must be called from the presentation loop.
type Layer struct {
	img        *image.RGBA
	background color.Color
	attached   bool

	stroke grapher.Stroke
	path   *grapher.Path

	stroker *Stroker
	z       *vector.Rasterizer

	loop          *loop.Loop
	now           func() time.Time
	frameInterval time.Duration

	anims   []runningAnimation
	animGen uint64
	driving bool

	strokeChanges int
	frames        int
}

type runningAnimation struct {
	grapher.Animation
	start time.Time
}

// Option configures a [Layer].
type Option func(*Layer)

// WithLoop lets the layer advance animations by posting frames to l.
// Without a loop, animations only advance when [Layer.Tick] is called.
func WithLoop(l *loop.Loop) Option {
	return func(layer *Layer) {
		layer.loop = l
	}
}

// WithBackground sets the color the image is cleared to before each frame.
// The default is transparent.
func WithBackground(c color.Color) Option {
	return func(layer *Layer) {
		layer.background = c
	}
}

// WithClock replaces the time source used for animations.
func WithClock(now func() time.Time) Option {
	return func(layer *Layer) {
		layer.now = now
	}
}

// WithFrameInterval sets the time between animation frames.
// Intervals which are not positive are ignored.
func WithFrameInterval(d time.Duration) Option {
	return func(layer *Layer) {
		if d > 0 {
			layer.frameInterval = d
		}
	}
}

// New returns a detached layer of the given size in pixels.
func New(width, height int, opts ...Option) *Layer {
	l := &Layer{
		img:           image.NewRGBA(image.Rect(0, 0, width, height)),
		background:    color.Transparent,
		stroker:       NewStroker(),
		z:             vector.NewRasterizer(width, height),
		now:           time.Now,
		frameInterval: time.Second / 60,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Attach marks the layer as displayed. The host must then call
// [grapher.Engine.LayerAttached].
func (l *Layer) Attach() {
	l.attached = true
}

// Detach marks the layer as no longer displayed.
func (l *Layer) Detach() {
	l.attached = false
}

// Attached implements [grapher.Layer].
func (l *Layer) Attached() bool {
	return l.attached
}

// Size implements [grapher.Layer].
func (l *Layer) Size() grapher.Size {
	b := l.img.Bounds()
	return grapher.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Resize replaces the image by one of the new size and redraws. The path
// keeps its coordinates until the graph is reloaded.
func (l *Layer) Resize(width, height int) {
	l.img = image.NewRGBA(image.Rect(0, 0, width, height))
	l.z.Reset(width, height)
	l.render()
}

// SetStroke implements [grapher.Layer].
func (l *Layer) SetStroke(s grapher.Stroke) {
	l.stroke = s
	l.strokeChanges++
}

// Stroke returns the current stroke configuration.
func (l *Layer) Stroke() grapher.Stroke {
	return l.stroke
}

// StrokeChanges returns how often the stroke configuration was set.
func (l *Layer) StrokeChanges() int {
	return l.strokeChanges
}

// SetPath implements [grapher.Layer].
func (l *Layer) SetPath(p *grapher.Path) {
	l.path = p
}

// Path returns the current geometry.
func (l *Layer) Path() *grapher.Path {
	return l.path
}

// SetNeedsDisplay implements [grapher.Layer]. The layer redraws at once.
func (l *Layer) SetNeedsDisplay() {
	l.render()
}

// Frames returns the number of times the image has been redrawn.
func (l *Layer) Frames() int {
	return l.frames
}

// Image returns the image the layer draws into. The image is overwritten
// by the next frame; use [Layer.Snapshot] to keep a copy.
func (l *Layer) Image() *image.RGBA {
	return l.img
}

// Snapshot returns a copy of the current image.
func (l *Layer) Snapshot() *image.RGBA {
	res := image.NewRGBA(l.img.Bounds())
	copy(res.Pix, l.img.Pix)
	return res
}

// AddAnimation implements [grapher.Layer]. Only [grapher.KeyStrokeEnd]
// animations are supported; others are ignored.
func (l *Layer) AddAnimation(a grapher.Animation) {
	if a.Key != grapher.KeyStrokeEnd {
		grapher.Logger().Debug("raster: ignoring animation", "key", a.Key)
		return
	}
	l.anims = append(l.anims, runningAnimation{Animation: a, start: l.now()})
	l.render()

	if l.loop != nil && !l.driving {
		l.driving = true
		go l.drive(l.animGen)
	}
}

// RemoveAllAnimations implements [grapher.Layer].
func (l *Layer) RemoveAllAnimations() {
	if len(l.anims) == 0 && !l.driving {
		return
	}
	l.anims = nil
	l.animGen++
	l.driving = false
	l.render()
}

// Animating reports whether an animation is running.
func (l *Layer) Animating() bool {
	return len(l.anims) > 0
}

// Tick advances the animations to the given time and redraws. Finished
// animations which are removed on completion are dropped. The result
// reports whether any animation is left.
func (l *Layer) Tick(now time.Time) bool {
	if len(l.anims) == 0 {
		return false
	}
	kept := l.anims[:0]
	for _, a := range l.anims {
		if _, running := a.Progress(now.Sub(a.start)); running || !a.RemovedOnCompletion {
			kept = append(kept, a)
		}
	}
	l.anims = kept
	l.renderAt(now)
	return len(l.anims) > 0
}

// drive posts animation frames to the loop until the animations of
// generation gen have finished or have been removed.
func (l *Layer) drive(gen uint64) {
	ticker := time.NewTicker(l.frameInterval)
	defer ticker.Stop()

	for range ticker.C {
		more := make(chan bool, 1)
		ok := l.loop.Post(func() {
			if gen != l.animGen {
				more <- false
				return
			}
			m := l.Tick(l.now())
			if !m {
				l.driving = false
			}
			more <- m
		})
		if !ok || !<-more {
			return
		}
	}
}

// strokeEnd returns the fraction of the path to draw at the given time.
func (l *Layer) strokeEnd(now time.Time) float64 {
	end := 1.0
	for _, a := range l.anims {
		end, _ = a.Progress(now.Sub(a.start))
	}
	return end
}

func (l *Layer) render() {
	l.renderAt(l.now())
}

func (l *Layer) renderAt(now time.Time) {
	l.frames++
	draw.Draw(l.img, l.img.Bounds(), image.NewUniform(l.background), image.Point{}, draw.Src)

	if l.path.IsEmpty() {
		return
	}
	p := l.path.Reveal(l.strokeEnd(now))
	b := l.img.Bounds()

	if l.stroke.Fill != nil {
		l.z.Reset(b.Dx(), b.Dy())
		addPath(l.z, p.Iter())
		l.z.ClosePath()
		l.z.DrawOp = draw.Over
		l.z.Draw(l.img, b, image.NewUniform(l.stroke.Fill), image.Point{})
	}

	if l.stroke.Width <= 0 || l.stroke.Color == nil {
		return
	}
	l.stroker.Width = l.stroke.Width
	l.stroker.Cap = l.stroke.Cap
	l.stroker.Join = l.stroke.Join
	l.stroker.Dash = l.stroke.Dash

	polys := l.stroker.Outline(p.Iter())
	if len(polys) == 0 {
		return
	}
	l.z.Reset(b.Dx(), b.Dy())
	for _, poly := range polys {
		l.z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, pt := range poly[1:] {
			l.z.LineTo(float32(pt.X), float32(pt.Y))
		}
		l.z.ClosePath()
	}
	l.z.DrawOp = draw.Over
	l.z.Draw(l.img, b, image.NewUniform(l.stroke.Color), image.Point{})
}

// addPath feeds the commands of p to the rasterizer.
func addPath(z *vector.Rasterizer, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			z.QuadTo(float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			z.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			z.ClosePath()
		}
	}
}
