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

package pdflayer

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/grapher"
)

func writeGraph(t *testing.T, l *Layer) []byte {
	t.Helper()
	name := filepath.Join(t.TempDir(), "graph.pdf")
	if err := l.WriteFile(name); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("not a PDF file: %q", data[:min(len(data), 16)])
	}
	return data
}

func TestWriteFile(t *testing.T) {
	l := New(200, 100)
	l.Attach()
	if !l.Attached() {
		t.Fatal("layer not attached")
	}
	if s := l.Size(); s != (grapher.Size{Width: 200, Height: 100}) {
		t.Errorf("size %v", s)
	}

	style := grapher.Style{
		LineWidth: 2,
		LineColor: color.RGBA{R: 31, G: 119, B: 180, A: 255},
		LineStyle: grapher.Dashed,
		Smoothing: grapher.SmoothingCurve,
	}
	p, _ := grapher.Trace(grapher.Values{1, 4, 2, 5, 3}, grapher.ValueRange{Min: 0, Max: 6}, l.Size(), style.Smoothing)
	l.SetBackground(color.White)
	l.SetStroke(grapher.StrokeFor(style))
	l.SetPath(p)
	l.SetNeedsDisplay()
	l.AddAnimation(grapher.RevealAnimation(grapher.DefaultRevealDuration))
	l.RemoveAllAnimations()

	writeGraph(t, l)
}

func TestWriteEmpty(t *testing.T) {
	l := New(50, 50)
	writeGraph(t, l)
}

func TestWriteFileError(t *testing.T) {
	l := New(50, 50)
	name := filepath.Join(t.TempDir(), "missing", "graph.pdf")
	if err := l.WriteFile(name); err == nil {
		t.Error("writing into a missing directory succeeded")
	}
}

func TestDeviceColor(t *testing.T) {
	cases := []struct {
		in   color.Color
		want pdfcolor.DeviceRGB
	}{
		{color.RGBA{R: 255, A: 255}, pdfcolor.DeviceRGB{1, 0, 0}},
		{color.White, pdfcolor.DeviceRGB{1, 1, 1}},
		{color.Black, pdfcolor.DeviceRGB{0, 0, 0}},
		{color.NRGBA{G: 255, A: 128}, pdfcolor.DeviceRGB{0, 1, 0}},
	}
	for _, c := range cases {
		got := deviceColor(c.in)
		if got != c.want {
			t.Errorf("%v: got %v, want %v", c.in, got, c.want)
		}
		if _, _, op := pdfcolor.Operator(got); op != "RG" {
			t.Errorf("%v: stroke operator %q", c.in, op)
		}
	}
}
