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

import (
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path is the drawable outcome of one rebuild: a single open subpath of
// move, line and cubic curve commands in surface coordinates.
//
// A Path never changes after it has been built and can be shared between
// goroutines. A nil *Path is an empty path.
type Path struct {
	data path.Data
}

// Iter iterates over the commands of the path. The coordinate slices must
// not be modified.
func (p *Path) Iter() path.Path {
	if p == nil {
		return func(yield func(path.Command, []vec.Vec2) bool) {}
	}
	return p.data.Iter()
}

// Len returns the number of drawing commands.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.data.Cmds)
}

// IsEmpty reports whether the path draws nothing.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// Commands returns a copy of the command sequence.
func (p *Path) Commands() []path.Command {
	if p == nil {
		return nil
	}
	return slices.Clone(p.data.Cmds)
}

// Length returns the arc length of the path. Curves are measured along a
// fixed subdivision.
func (p *Path) Length() float64 {
	var total float64
	var current, start vec.Vec2
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
		case path.CmdLineTo:
			total += pts[0].Sub(current).Length()
			current = pts[0]
		case path.CmdQuadTo:
			c1, c2 := quadToCubic(current, pts[0], pts[1])
			total += cubicLengths(current, c1, c2, pts[1])[revealSteps]
			current = pts[1]
		case path.CmdCubeTo:
			total += cubicLengths(current, pts[0], pts[1], pts[2])[revealSteps]
			current = pts[2]
		case path.CmdClose:
			total += start.Sub(current).Length()
			current = start
		}
	}
	return total
}

// Reveal returns the initial part of the path covering the fraction t of its
// arc length. Reveal(0) is empty and Reveal(1) is p itself. Layers use this
// to draw frames of a stroke reveal animation.
func (p *Path) Reveal(t float64) *Path {
	if t >= 1 || p.IsEmpty() {
		return p
	}
	if t <= 0 {
		return &Path{}
	}
	total := p.Length()
	if total <= 0 {
		return p
	}
	remaining := t * total

	res := &Path{}
	var current, start vec.Vec2
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			res.data.MoveTo(pts[0])
			current = pts[0]
			start = current
			continue
		case path.CmdLineTo, path.CmdClose:
			end := start
			if cmd == path.CmdLineTo {
				end = pts[0]
			}
			l := end.Sub(current).Length()
			if l >= remaining {
				if l > 0 {
					end = current.Add(end.Sub(current).Mul(remaining / l))
				}
				res.data.LineTo(end)
				return res
			}
			res.data.LineTo(end)
			remaining -= l
			current = end
		case path.CmdQuadTo, path.CmdCubeTo:
			var c1, c2, end vec.Vec2
			if cmd == path.CmdQuadTo {
				c1, c2 = quadToCubic(current, pts[0], pts[1])
				end = pts[1]
			} else {
				c1, c2, end = pts[0], pts[1], pts[2]
			}
			lengths := cubicLengths(current, c1, c2, end)
			l := lengths[revealSteps]
			if l >= remaining {
				s := cubicParamAt(lengths, remaining)
				a1, a2, a3 := splitCubic(current, c1, c2, end, s)
				res.data.CubeTo(a1, a2, a3)
				return res
			}
			res.data.CubeTo(c1, c2, end)
			remaining -= l
			current = end
		}
	}
	return res
}

// revealSteps is the number of chords used to measure a curve segment.
const revealSteps = 16

// cubicLengths returns the cumulative chord lengths of a cubic Bézier curve
// sampled at revealSteps+1 evenly spaced parameter values.
func cubicLengths(p0, p1, p2, p3 vec.Vec2) [revealSteps + 1]float64 {
	var res [revealSteps + 1]float64
	prev := p0
	for i := 1; i <= revealSteps; i++ {
		pt := cubicAt(p0, p1, p2, p3, float64(i)/revealSteps)
		res[i] = res[i-1] + pt.Sub(prev).Length()
		prev = pt
	}
	return res
}

// cubicParamAt inverts the length table by linear interpolation.
func cubicParamAt(lengths [revealSteps + 1]float64, target float64) float64 {
	for i := 1; i <= revealSteps; i++ {
		if lengths[i] >= target {
			seg := lengths[i] - lengths[i-1]
			frac := 0.0
			if seg > 0 {
				frac = (target - lengths[i-1]) / seg
			}
			return (float64(i-1) + frac) / revealSteps
		}
	}
	return 1
}

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
}

// splitCubic returns the control points and end point of the part of the
// curve between parameter 0 and t, using de Casteljau's construction.
func splitCubic(p0, p1, p2, p3 vec.Vec2, t float64) (vec.Vec2, vec.Vec2, vec.Vec2) {
	lerp := func(a, b vec.Vec2) vec.Vec2 { return a.Add(b.Sub(a).Mul(t)) }
	q0, q1, q2 := lerp(p0, p1), lerp(p1, p2), lerp(p2, p3)
	r0, r1 := lerp(q0, q1), lerp(q1, q2)
	return q0, r0, lerp(r0, r1)
}

// quadToCubic returns the inner control points of the cubic curve which
// traces the same curve as the quadratic p0, q, p2.
func quadToCubic(p0, q, p2 vec.Vec2) (vec.Vec2, vec.Vec2) {
	return p0.Add(q.Sub(p0).Mul(2.0 / 3)), p2.Add(q.Sub(p2).Mul(2.0 / 3))
}
