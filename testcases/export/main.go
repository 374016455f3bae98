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

// Command export writes the built paths of all graph test cases to JSON,
// for comparison against other renderers.
// Run from the grapher module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/grapher"
	"seehuhn.de/go/grapher/testcases"
)

func main() {
	outName := flag.String("o", "testdata/graphs.json", "output file")
	flag.Parse()

	var out struct {
		Graphs []jsonGraph `json:"graphs"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.Graphs = append(out.Graphs, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outName), 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonGraph struct {
	Name      string        `json:"name"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Samples   []*float64    `json:"samples"`
	Min       float64       `json:"min"`
	Max       float64       `json:"max"`
	Smoothing string        `json:"smoothing"`
	LineStyle string        `json:"line_style"`
	LineWidth float64       `json:"line_width"`
	LineColor string        `json:"line_color"`
	LineCap   string        `json:"line_cap"`
	LineJoin  string        `json:"line_join"`
	Dash      []float64     `json:"dash,omitempty"`
	Path      []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.Case) jsonGraph {
	p, _ := tc.Build()
	stroke := grapher.StrokeFor(tc.Style)

	jg := jsonGraph{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Min:       tc.Range.Min,
		Max:       tc.Range.Max,
		Smoothing: tc.Style.Smoothing.String(),
		LineStyle: tc.Style.LineStyle.String(),
		LineWidth: stroke.Width,
		LineColor: hexColor(stroke.Color),
		LineCap:   stroke.Cap.String(),
		LineJoin:  stroke.Join.String(),
		Dash:      stroke.Dash,
		Path:      pathToJSON(p.Iter()),
	}
	// missing samples are exported as null
	jg.Samples = make([]*float64, len(tc.Samples))
	for i := range tc.Samples {
		if v, ok := tc.Samples.Value(i); ok {
			jg.Samples[i] = &v
		}
	}
	return jg
}

func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func pathToJSON(p path.Path) []jsonSegment {
	segs := []jsonSegment{}
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
