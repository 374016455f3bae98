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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Sample is one value of the data source at an integer position.
// Present is false if the data source had no value for the position.
type Sample struct {
	Position int
	Value    float64
	Present  bool
}

// ValueRange is the interval of sample values mapped onto the full height
// of the surface. Points can only be normalized if Max > Min.
type ValueRange struct {
	Min, Max float64
}

// Valid reports whether the range has positive width.
func (r ValueRange) Valid() bool {
	return r.Max-r.Min > 0
}

// Size is the extent of a drawing surface in surface units.
type Size struct {
	Width, Height float64
}

// NormalizedPoint pairs a sample in value space with its location on the
// surface.
type NormalizedPoint struct {
	Raw     vec.Vec2 // (position, value)
	Surface vec.Vec2 // surface coordinates, origin top left, y down
}

// Normalize maps a sample onto a surface of the given size.
//
// Samples are spread over count evenly spaced slots, so position i lands at
// x = i*width/count and the last sample stops one slot short of the right
// edge. Values grow upwards: Min maps to the bottom edge and Max to the top.
//
// The result is false if the sample is missing, if the range is empty or
// inverted, or if count is not positive. Infinite and NaN values count as
// missing, as do values whose surface location would not be finite.
func Normalize(s Sample, r ValueRange, size Size, count int) (NormalizedPoint, bool) {
	if !s.Present || !finite(s.Value) || !r.Valid() || count <= 0 {
		return NormalizedPoint{}, false
	}
	span := r.Max - r.Min
	y := size.Height - ((s.Value-r.Min)/span)*size.Height
	x := float64(s.Position) * (size.Width / float64(count))
	if !finite(x) || !finite(y) {
		return NormalizedPoint{}, false
	}
	return NormalizedPoint{
		Raw:     vec.Vec2{X: float64(s.Position), Y: s.Value},
		Surface: vec.Vec2{X: x, Y: y},
	}, true
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
