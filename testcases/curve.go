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

var curveCases = []Case{
	{
		Name:    "three_points",
		Samples: []float64{0, 100, 50},
		Range:   unit,
		Width:   60,
		Height:  100,
		Style:   curved(2),
	},
	{
		Name:    "wave",
		Samples: []float64{50, 85, 100, 85, 50, 15, 0, 15, 50},
		Range:   unit,
		Width:   90,
		Height:  64,
		Style:   curved(2),
	},
	{
		Name:    "step",
		Samples: []float64{20, 20, 80, 80, 20},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   curved(4),
	},
	{
		Name:    "thin",
		Samples: []float64{0, 30, 60, 90, 60, 30},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   curved(0.5),
	},
}
