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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a straight piece of a flattened line
type segment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// Stroker converts open paths into the polygons covered by their stroke,
// honouring width, caps, joins and dash pattern. The polygons are meant to
// be filled together with the nonzero winding rule.
//
// Internal buffers are reused between calls. A Stroker is not safe for
// concurrent use.
type Stroker struct {
	// Width is the stroke thickness. Must be positive.
	Width float64

	// Cap is the style of line ends, including the ends of dashes.
	Cap graphics.LineCapStyle

	// Join is the style of corners.
	Join graphics.LineJoinStyle

	// MiterLimit turns miter joins into bevels when the miter would be
	// longer than MiterLimit times the width. Must be at least 1.
	MiterLimit float64

	// Flatness is the maximal distance between a curve and the chords
	// replacing it.
	Flatness float64

	// Dash holds alternating on/off lengths. Nil means solid.
	Dash []float64

	// DashPhase is the offset into the dash pattern at the path start.
	DashPhase float64

	segs   []segment // flattened segments of all subpaths
	starts []int     // index of the first segment of each subpath
	dots   []vec.Vec2

	dashed       []segment
	dashedStarts []int

	outline       []vec.Vec2
	outlineStarts []int
	polys         [][]vec.Vec2
}

// NewStroker returns a Stroker for solid one unit wide lines.
func NewStroker() *Stroker {
	return &Stroker{
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
		Flatness:   defaultFlatness,
	}
}

// Outline returns the stroke polygons of p. The result is only valid until
// the next call. Closing segments are stroked like any other segment, so
// closed subpaths get caps instead of a final join.
func (s *Stroker) Outline(p path.Path) [][]vec.Vec2 {
	s.outline = s.outline[:0]
	s.outlineStarts = s.outlineStarts[:0]
	s.polys = s.polys[:0]

	s.flatten(p)
	d := s.Width / 2

	// subpaths without direction only show up with round caps
	if s.Cap == graphics.LineCapRound {
		for _, pt := range s.dots {
			start := len(s.outline)
			s.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			s.outlineStarts = append(s.outlineStarts, start)
		}
	}

	if s.dashPatternLength() > 0 {
		s.applyDash()
		for i := range s.dashedStarts {
			s.strokeDash(runAt(s.dashed, s.dashedStarts, i))
		}
	} else {
		for i := range s.starts {
			s.strokeRun(runAt(s.segs, s.starts, i))
		}
	}

	for i, start := range s.outlineStarts {
		end := len(s.outline)
		if i+1 < len(s.outlineStarts) {
			end = s.outlineStarts[i+1]
		}
		s.polys = append(s.polys, s.outline[start:end])
	}
	return s.polys
}

// runAt returns run i of a segment buffer split at the given start indices.
func runAt(segs []segment, starts []int, i int) []segment {
	end := len(segs)
	if i+1 < len(starts) {
		end = starts[i+1]
	}
	return segs[starts[i]:end]
}

// strokeRun appends the outline of one run of segments, discarding it if
// it is degenerate.
func (s *Stroker) strokeRun(segs []segment) {
	start := len(s.outline)
	s.strokeOpen(segs)
	if len(s.outline)-start >= 3 {
		s.outlineStarts = append(s.outlineStarts, start)
	} else {
		s.outline = s.outline[:start]
	}
}

// strokeDash is strokeRun for dashes, which may have zero length but still
// carry the direction of the underlying path.
func (s *Stroker) strokeDash(segs []segment) {
	if len(segs) == 1 && segs[0].A == segs[0].B {
		start := len(s.outline)
		switch s.Cap {
		case graphics.LineCapRound:
			s.addArc(segs[0].A, s.Width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
			s.outlineStarts = append(s.outlineStarts, start)
		case graphics.LineCapSquare:
			s.addSquare(segs[0].A, segs[0].T, s.Width/2)
			s.outlineStarts = append(s.outlineStarts, start)
		}
		return
	}
	s.strokeRun(segs)
}

// flatten splits p into subpaths of straight segments. Curves are replaced
// by chords; subpaths without any extent are collected in s.dots.
func (s *Stroker) flatten(p path.Path) {
	s.segs = s.segs[:0]
	s.starts = s.starts[:0]
	s.dots = s.dots[:0]

	var current, first vec.Vec2
	runStart := 0
	open := false
	drawn := false

	finish := func() {
		if !open || !drawn {
			return
		}
		if len(s.segs) == runStart {
			s.dots = append(s.dots, first)
		} else {
			s.starts = append(s.starts, runStart)
		}
	}

	for cmd, pts := range p {
		if cmd != path.CmdMoveTo && !open {
			continue
		}
		switch cmd {
		case path.CmdMoveTo:
			finish()
			current = pts[0]
			first = current
			runStart = len(s.segs)
			open = true
			drawn = false
		case path.CmdLineTo:
			s.addSegment(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			// elevate to a cubic with the same shape
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3))
			s.flattenCubic(current, c1, c2, pts[1])
			current = pts[1]
		case path.CmdCubeTo:
			s.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]
		case path.CmdClose:
			s.addSegment(current, first)
			current = first
		}
		drawn = drawn || cmd != path.CmdMoveTo
	}
	finish()
}

// flattenCubic replaces a cubic Bézier curve by chords, using Wang's
// formula for the number of pieces.
func (s *Stroker) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * s.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t))
		s.addSegment(prev, pt)
		prev = pt
	}
}

func (s *Stroker) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	s.segs = append(s.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeOpen builds the outline of an open run as one closed polygon: the
// +N side forwards, the end cap, the -N side backwards and the start cap.
// Join geometry goes on the outer side of each corner.
func (s *Stroker) strokeOpen(segs []segment) {
	if len(segs) == 0 {
		return
	}
	d := s.Width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]

	s.addCap(first.A, first.T.Mul(-1), d)

	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			s.outline = append(s.outline, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == len(segs)-1 {
			s.outline = append(s.outline, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		switch turn := cross(seg.T, next.T); {
		case math.Abs(turn) < collinearityThreshold:
			s.outline = append(s.outline, seg.B.Add(seg.N.Mul(d)))
		case turn > 0: // +N is the inner side
			skip = s.addInnerCorner(seg.B, seg.T, next.T, d, true)
		default:
			s.outline = append(s.outline, seg.B.Add(seg.N.Mul(d)))
			s.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	s.addCap(last.B, last.T, d)

	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			s.outline = append(s.outline, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			s.outline = append(s.outline, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		switch turn := cross(prev.T, seg.T); {
		case math.Abs(turn) < collinearityThreshold:
			s.outline = append(s.outline, seg.A.Sub(seg.N.Mul(d)))
		case turn > 0: // -N is the outer side
			s.outline = append(s.outline, seg.A.Sub(seg.N.Mul(d)))
			s.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skip = s.addInnerCorner(seg.A, prev.T, seg.T, d, false)
		}
	}
}

// cross returns the z component of the cross product of two tangents.
func cross(t1, t2 vec.Vec2) float64 {
	return t1.X*t2.Y - t1.Y*t2.X
}

// addCap adds the cap at P. T points away from the line.
func (s *Stroker) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch s.Cap {
	case graphics.LineCapButt:
		// the offset points of both sides already form the cap
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		s.outline = append(s.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		// half circle from +N through T to -N
		s.addArc(P, d, N, -math.Pi, true)
	}
}

// addInnerCorner adds the intersection of the two inner offset lines at a
// corner, or both offset points if the corner is too flat for the
// intersection to be stable. The result is true if the intersection was
// used, in which case the caller must skip the next offset point.
func (s *Stroker) addInnerCorner(P, T1, T2 vec.Vec2, d float64, positive bool) bool {
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	sign := 1.0
	if !positive {
		sign = -1
	}

	cosTheta := T1.Dot(T2)
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	dir := N1.Add(N2).Mul(sign)
	if l := dir.Length(); cosTheta <= 1-1e-9 && halfAngle >= 1e-9 && l >= 1e-9 {
		s.outline = append(s.outline, P.Add(dir.Mul(d/(l*halfAngle))))
		return true
	}

	s.outline = append(s.outline, P.Add(N1.Mul(sign*d)), P.Add(N2.Mul(sign*d)))
	return false
}

// addJoin adds the join geometry at P, on the side selected by positive,
// for a corner where the tangent changes from T1 to T2.
func (s *Stroker) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	// the path doubles back on itself: two caps instead of a join
	if cosTheta < cuspCosineThreshold {
		s.addCap(P, T1, d)
		s.addCap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	switch s.Join {
	case graphics.LineJoinMiter:
		// miter length relative to the width is 1/sin(φ/2), where φ is
		// the angle at the corner and sin(φ/2) = cos(θ/2)
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= s.MiterLimit+miterEpsilon {
			bisector := N1.Add(N2)
			if !positive {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				s.outline = append(s.outline, P.Add(bisector.Mul(d/(l*sinHalf))))
			}
		}
		// otherwise: bevel

	case graphics.LineJoinBevel:
		// the offset points added by the caller form the bevel

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positive {
			if sinTheta > 0 {
				s.addArc(P, d, N1, angle, false)
			} else {
				s.addArc(P, d, N1, -angle, false)
			}
		} else {
			// backwards: from -N of T2 to -N of T1
			if sinTheta > 0 {
				s.addArc(P, d, N2.Mul(-1), -angle, false)
			} else {
				s.addArc(P, d, N2.Mul(-1), angle, false)
			}
		}
	}
}

// addArc adds points along a circular arc around center, starting in
// direction startDir and sweeping by the given angle (positive is CCW).
// The start point is only added if includeStart is set.
func (s *Stroker) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	rotate := func(angle float64) vec.Vec2 {
		c, sn := math.Cos(angle), math.Sin(angle)
		return vec.Vec2{
			X: startDir.X*c - startDir.Y*sn,
			Y: startDir.X*sn + startDir.Y*c,
		}
	}

	if radius < s.Flatness {
		if includeStart {
			s.outline = append(s.outline, center.Add(startDir.Mul(radius)))
		}
		s.outline = append(s.outline, center.Add(rotate(sweep).Mul(radius)))
		return
	}

	// a chord spanning angle θ deviates from the circle by r(1-cos(θ/2))
	step := 2 * math.Acos(1-s.Flatness/radius)
	if step <= 0 || math.IsNaN(step) {
		step = math.Pi / 4
	}
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 1)

	dt := sweep / float64(n)
	i := 0
	if !includeStart {
		i = 1
	}
	for ; i <= n; i++ {
		s.outline = append(s.outline, center.Add(rotate(float64(i)*dt).Mul(radius)))
	}
}

// addSquare adds a square of side 2d centred at center and aligned with T.
func (s *Stroker) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	s.outline = append(s.outline,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// dashPatternLength returns the length of one repetition of the dash
// pattern, or 0 if the line is solid. Odd patterns repeat twice.
func (s *Stroker) dashPatternLength() float64 {
	total := 0.0
	for _, l := range s.Dash {
		total += l
	}
	if len(s.Dash)%2 == 1 {
		total *= 2
	}
	return total
}

// applyDash cuts the flattened subpaths into dashes, stored in s.dashed
// and s.dashedStarts.
func (s *Stroker) applyDash() {
	s.dashed = s.dashed[:0]
	s.dashedStarts = s.dashedStarts[:0]

	dash := s.Dash
	n := len(dash)
	patternLen := s.dashPatternLength()
	phase := math.Mod(s.DashPhase, patternLen)
	if phase < 0 {
		phase += patternLen
	}

	for i := range s.starts {
		segs := runAt(s.segs, s.starts, i)

		// every subpath starts at the same phase
		idx := 0
		dist := phase
		for dist >= dash[idx%n] && dash[idx%n] > 0 {
			dist -= dash[idx%n]
			idx++
		}
		remaining := dash[idx%n] - dist
		on := idx%2 == 0

		// a zero length dash at the very start becomes a dot
		if on && remaining == 0 {
			seg := segs[0]
			s.dashedStarts = append(s.dashedStarts, len(s.dashed))
			s.dashed = append(s.dashed, segment{A: seg.A, B: seg.A, T: seg.T, N: seg.N})
			idx++
			remaining = dash[idx%n]
			on = idx%2 == 0
		}

		dashStart := len(s.dashed)
		segIdx := 0
		pos := 0.0 // distance along segs[segIdx]
		for segIdx < len(segs) {
			seg := segs[segIdx]
			segLen := seg.B.Sub(seg.A).Length()
			at := func(dist float64) vec.Vec2 {
				return seg.A.Add(seg.B.Sub(seg.A).Mul(dist / segLen))
			}

			if remaining >= segLen-pos {
				// the current dash runs past the end of this segment
				if on {
					piece := seg
					piece.A = at(pos)
					s.dashed = append(s.dashed, piece)
				}
				remaining -= segLen - pos
				segIdx++
				pos = 0
				continue
			}

			end := pos + remaining
			if on {
				a, b := at(pos), at(end)
				if b.Sub(a).Length() > zeroLengthThreshold {
					s.dashed = append(s.dashed, segment{A: a, B: b, T: seg.T, N: seg.N})
				} else if len(s.dashed) == dashStart {
					s.dashed = append(s.dashed, segment{A: a, B: a, T: seg.T, N: seg.N})
				}
				if len(s.dashed) > dashStart {
					s.dashedStarts = append(s.dashedStarts, dashStart)
					dashStart = len(s.dashed)
				}
			}
			pos = end
			idx++
			remaining = dash[idx%n]
			on = idx%2 == 0
		}
		if len(s.dashed) > dashStart {
			s.dashedStarts = append(s.dashedStarts, dashStart)
		}
	}
}

// Default stroke parameters.
const (
	// defaultFlatness is the curve flattening tolerance in surface units.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin θ| below which two consecutive
	// segments need no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path doubling back on itself.
	// cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)
