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

var degenerateCases = []Case{
	{
		Name:    "empty",
		Samples: nil,
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   solid(2),
	},
	{
		Name:    "zero_range",
		Samples: []float64{1, 2, 3},
		Range:   grapher.ValueRange{Min: 5, Max: 5},
		Width:   64,
		Height:  64,
		Style:   solid(2),
	},
	{
		Name:    "inverted_range",
		Samples: []float64{1, 2, 3},
		Range:   grapher.ValueRange{Min: 10, Max: 0},
		Width:   64,
		Height:  64,
		Style:   solid(2),
	},
	{
		Name:    "zero_width",
		Samples: []float64{10, 20, 30},
		Range:   unit,
		Width:   0,
		Height:  64,
		Style:   solid(2),
	},
}
