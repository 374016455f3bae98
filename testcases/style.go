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

var styleCases = []Case{
	{
		Name:    "dashed",
		Samples: []float64{20, 80, 20, 80},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style: grapher.Style{
			LineWidth: 2,
			LineColor: black,
			LineStyle: grapher.Dashed,
			Smoothing: grapher.SmoothingNone,
		},
	},
	{
		Name:    "dotted",
		Samples: []float64{20, 80, 20, 80},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style: grapher.Style{
			LineWidth: 2,
			LineColor: black,
			LineStyle: grapher.Dotted,
			Smoothing: grapher.SmoothingNone,
		},
	},
	{
		Name:    "dashed_curve",
		Samples: []float64{50, 100, 0, 50},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style: grapher.Style{
			LineWidth: 3,
			LineColor: black,
			LineStyle: grapher.Dashed,
			Smoothing: grapher.SmoothingCurve,
		},
	},
	{
		Name:    "wide",
		Samples: []float64{30, 70, 30},
		Range:   unit,
		Width:   64,
		Height:  64,
		Style:   solid(8),
	},
}
