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

package grapher

import "time"

// Layer is the drawing surface of a graph, owned by the host application.
//
// All methods are called from the presentation loop only.
type Layer interface {
	// Attached reports whether the layer is part of a displayed hierarchy.
	// Styling is deferred until this is the case.
	Attached() bool

	// Size returns the current extent of the layer.
	Size() Size

	// SetStroke replaces the stroke configuration.
	SetStroke(Stroke)

	// SetPath replaces the geometry. A nil path draws nothing.
	SetPath(*Path)

	// SetNeedsDisplay schedules a redraw with the current state.
	SetNeedsDisplay()

	// AddAnimation starts an animation of a layer property.
	AddAnimation(Animation)

	// RemoveAllAnimations stops all running animations.
	RemoveAllAnimations()
}

// KeyStrokeEnd names the animatable fraction of the path which is stroked.
const KeyStrokeEnd = "strokeEnd"

// Animation describes a transition of a numeric layer property.
type Animation struct {
	Key      string
	From, To float64
	Duration time.Duration

	// RemovedOnCompletion drops the animation once it has finished, so that
	// the layer returns to its static state.
	RemovedOnCompletion bool
}

// DefaultRevealDuration is the length of the stroke reveal animation.
const DefaultRevealDuration = time.Second

// RevealAnimation returns the animation which draws the path from start to
// end over the given duration.
func RevealAnimation(d time.Duration) Animation {
	return Animation{
		Key:                 KeyStrokeEnd,
		From:                0,
		To:                  1,
		Duration:            d,
		RemovedOnCompletion: true,
	}
}

// Progress returns the animated value after the given time has elapsed,
// and whether the animation is still running.
func (a Animation) Progress(elapsed time.Duration) (float64, bool) {
	if a.Duration <= 0 || elapsed >= a.Duration {
		return a.To, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	f := float64(elapsed) / float64(a.Duration)
	return a.From + (a.To-a.From)*f, true
}
