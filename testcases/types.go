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

package testcases

import (
	"image/color"
	"math"

	"seehuhn.de/go/grapher"
)

// Case defines a single graph scenario.
type Case struct {
	Name    string             // lowercase a-z, 0-9 and _ only
	Samples grapher.Values     // the series; NaN marks a missing sample
	Range   grapher.ValueRange // value range mapped onto the height
	Width   float64            // surface width
	Height  float64            // surface height
	Style   grapher.Style      // line style used to draw the graph
}

// Size returns the surface size of the case.
func (c Case) Size() grapher.Size {
	return grapher.Size{Width: c.Width, Height: c.Height}
}

// Build normalizes the samples and builds the path of the graph.
func (c Case) Build() (*grapher.Path, []grapher.NormalizedPoint) {
	return grapher.Trace(c.Samples, c.Range, c.Size(), c.Style.Smoothing)
}

// Present reports how many samples of the case are not missing.
func (c Case) Present() int {
	n := 0
	for _, v := range c.Samples {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

var black = color.Gray{Y: 0}

// solid returns a standard, straight line style of width w.
func solid(w float64) grapher.Style {
	return grapher.Style{
		LineWidth: w,
		LineColor: black,
		LineStyle: grapher.Standard,
		Smoothing: grapher.SmoothingNone,
	}
}

// curved returns a standard, smoothed line style of width w.
func curved(w float64) grapher.Style {
	s := solid(w)
	s.Smoothing = grapher.SmoothingCurve
	return s
}

// gap is the value of a missing sample.
var gap = math.NaN()

// unit is the range most cases use.
var unit = grapher.ValueRange{Min: 0, Max: 100}
