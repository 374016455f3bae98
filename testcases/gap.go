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

var gapCases = []Case{
	{
		Name:    "middle",
		Samples: []float64{10, 20, gap, 40, 50},
		Range:   unit,
		Width:   50,
		Height:  64,
		Style:   solid(2),
	},
	{
		Name:    "leading",
		Samples: []float64{gap, gap, 30, 60, 90},
		Range:   unit,
		Width:   50,
		Height:  64,
		Style:   solid(2),
	},
	{
		Name:    "trailing",
		Samples: []float64{30, 60, 90, gap, gap},
		Range:   unit,
		Width:   50,
		Height:  64,
		Style:   solid(2),
	},
	{
		Name:    "alternating",
		Samples: []float64{10, gap, 90, gap, 10, gap, 90},
		Range:   unit,
		Width:   70,
		Height:  64,
		Style:   curved(2),
	},
	{
		Name:    "all_missing",
		Samples: []float64{gap, gap, gap},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   solid(2),
	},
}
