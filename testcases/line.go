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

import "seehuhn.de/go/grapher"

var lineCases = []Case{
	{
		Name:    "three_points",
		Samples: []float64{0, 100, 50},
		Range:   unit,
		Width:   100,
		Height:  100,
		Style:   solid(2),
	},
	{
		Name:    "rising",
		Samples: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   solid(1),
	},
	{
		Name:    "zigzag",
		Samples: []float64{10, 90, 10, 90, 10, 90, 10, 90},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   solid(3),
	},
	{
		Name:    "flat",
		Samples: []float64{50, 50, 50, 50},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   solid(2),
	},
	{
		Name:    "negative_range",
		Samples: []float64{-1, 0, 1, 0, -1},
		Range:   grapher.ValueRange{Min: -1, Max: 1},
		Width:   64,
		Height:  32,
		Style:   solid(2),
	},
	{
		// values outside the range are drawn outside the surface
		Name:    "overshoot",
		Samples: []float64{50, 150, -50, 50},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   solid(2),
	},
	{
		Name:    "single_point",
		Samples: []float64{42},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   solid(2),
	},
}
