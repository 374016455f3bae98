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
	"context"

	"seehuhn.de/go/geom/vec"
)

// Build turns normalized points into a path. The first point starts the
// path; every following point is joined to its predecessor by a straight
// line or, with [SmoothingCurve], by a cubic curve from [CurveControls].
//
// The points must be in ascending position order. Missing samples are simply
// left out of points, which connects their neighbours directly.
func Build(points []NormalizedPoint, smoothing Smoothing) *Path {
	p := &Path{}
	for i, pt := range points {
		if i == 0 {
			p.data.MoveTo(pt.Surface)
			continue
		}
		prev := points[i-1].Surface
		switch smoothing {
		case SmoothingNone:
			p.data.LineTo(pt.Surface)
		case SmoothingCurve:
			c1, c2 := CurveControls(prev, pt.Surface)
			p.data.CubeTo(c1, c2, pt.Surface)
		default:
			panic("grapher: unknown smoothing " + smoothing.String())
		}
	}
	return p
}

// CurveControls returns the control points of the curve segment from prev
// to cur. Both sit halfway between the points horizontally, at the height
// of the point they belong to, which gives an S-shaped segment with
// horizontal tangents at both ends.
func CurveControls(prev, cur vec.Vec2) (vec.Vec2, vec.Vec2) {
	cx := prev.X + (cur.X-prev.X)/2
	return vec.Vec2{X: cx, Y: prev.Y}, vec.Vec2{X: cx, Y: cur.Y}
}

// Trace reads all samples of src and builds the path for a surface of the
// given size. This is the synchronous form of a rebuild, for callers which
// do not need the presentation pipeline.
func Trace(src DataSource, r ValueRange, size Size, smoothing Smoothing) (*Path, []NormalizedPoint) {
	job := buildJob{
		src:       snapshot(Strong(src)),
		rng:       r,
		size:      size,
		smoothing: smoothing,
	}
	// a background context is never cancelled
	path, points, _ := job.run(context.Background())
	return path, points
}
