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

package grapher_test

import (
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/grapher"
	"seehuhn.de/go/grapher/testcases"
)

// TestCasePaths checks the structure of the path built for every graph
// scenario: one move-to followed by one segment per further point.
func TestCasePaths(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				p, points := tc.Build()

				want := tc.Present()
				if !tc.Range.Valid() {
					want = 0
				}
				if len(points) != want {
					t.Fatalf("%d points, want %d", len(points), want)
				}
				if p.Len() != len(points) {
					t.Fatalf("%d commands for %d points", p.Len(), len(points))
				}

				segment := path.CmdLineTo
				if tc.Style.Smoothing == grapher.SmoothingCurve {
					segment = path.CmdCubeTo
				}
				for i, cmd := range p.Commands() {
					if (i == 0) != (cmd == path.CmdMoveTo) || i > 0 && cmd != segment {
						t.Errorf("command %d is %v", i, cmd)
					}
				}

				// positions are increasing and x follows the position
				slot := tc.Width / float64(tc.Samples.Count())
				for i, pt := range points {
					if i > 0 && pt.Raw.X <= points[i-1].Raw.X {
						t.Errorf("point %d out of order", i)
					}
					if x := pt.Raw.X * slot; x != pt.Surface.X {
						t.Errorf("point %d at x=%g, want %g", i, pt.Surface.X, x)
					}
				}

				if err := tc.Style.Validate(); err != nil {
					t.Errorf("style: %v", err)
				}
			})
		}
	}
}
