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

package gglayer

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/grapher"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// inked counts the pixels which are visibly darker than white.
func inked(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r+g+bl < 3*0xf000 {
				n++
			}
		}
	}
	return n
}

func newGraph(t *testing.T, samples grapher.Values, style grapher.Style) *Layer {
	t.Helper()
	l := New(64, 32)
	t.Cleanup(func() { l.Close() })
	l.SetBackground(white)
	l.Attach()

	p, _ := grapher.Trace(samples, grapher.ValueRange{Min: 0, Max: 10}, l.Size(), style.Smoothing)
	l.SetStroke(grapher.StrokeFor(style))
	l.SetPath(p)
	l.SetNeedsDisplay()
	if err := l.Err(); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestLayerDraws(t *testing.T) {
	style := grapher.Style{LineWidth: 3, LineColor: color.Black, Smoothing: grapher.SmoothingCurve}
	l := newGraph(t, grapher.Values{5, 5, 5, 5}, style)

	if s := l.Size(); s != (grapher.Size{Width: 64, Height: 32}) {
		t.Errorf("size %v", s)
	}
	if n := inked(l.Image()); n == 0 {
		t.Error("nothing drawn")
	}
	// the flat line runs through y=16 from x=0 to x=48
	if r, _, _, _ := l.Image().At(24, 16).RGBA(); r > 0x8000 {
		t.Error("line pixel is not dark")
	}
	if r, _, _, _ := l.Image().At(24, 4).RGBA(); r < 0xf000 {
		t.Error("background pixel is not white")
	}
}

func TestLayerUnstyled(t *testing.T) {
	l := New(16, 16)
	defer l.Close()
	l.SetBackground(white)
	p, _ := grapher.Trace(grapher.Values{1, 9}, grapher.ValueRange{Min: 0, Max: 10}, l.Size(), grapher.SmoothingNone)
	l.SetPath(p)
	l.SetNeedsDisplay()
	if n := inked(l.Image()); n != 0 {
		t.Errorf("%d pixels drawn without a stroke", n)
	}
}

func TestLayerReveal(t *testing.T) {
	style := grapher.Style{LineWidth: 2, LineColor: color.Black}
	l := newGraph(t, grapher.Values{2, 8, 2, 8, 2, 8}, style)
	full := inked(l.Image())

	start := time.Unix(50, 0)
	l.SetClock(func() time.Time { return start })
	l.AddAnimation(grapher.RevealAnimation(time.Second))
	if n := inked(l.Image()); n != 0 {
		t.Errorf("%d pixels at the start of the reveal", n)
	}

	if !l.Tick(start.Add(time.Second / 2)) {
		t.Fatal("animation finished early")
	}
	half := inked(l.Image())
	if half == 0 || half >= full {
		t.Errorf("half way: %d of %d pixels", half, full)
	}

	if l.Tick(start.Add(2 * time.Second)) {
		t.Error("animation still running")
	}
	if n := inked(l.Image()); n != full {
		t.Errorf("final frame: %d of %d pixels", n, full)
	}
	if l.Tick(start.Add(3 * time.Second)) {
		t.Error("removed animation is running")
	}
}

func TestLineStyles(t *testing.T) {
	caps := map[graphics.LineCapStyle]gg.LineCap{
		graphics.LineCapButt:   gg.LineCapButt,
		graphics.LineCapRound:  gg.LineCapRound,
		graphics.LineCapSquare: gg.LineCapSquare,
	}
	for in, want := range caps {
		if got := lineCap(in); got != want {
			t.Errorf("%s: got %v", in, got)
		}
	}
	joins := map[graphics.LineJoinStyle]gg.LineJoin{
		graphics.LineJoinMiter: gg.LineJoinMiter,
		graphics.LineJoinRound: gg.LineJoinRound,
		graphics.LineJoinBevel: gg.LineJoinBevel,
	}
	for in, want := range joins {
		if got := lineJoin(in); got != want {
			t.Errorf("%s: got %v", in, got)
		}
	}
}

func TestLayerRestyle(t *testing.T) {
	samples := grapher.Values{2, 8, 2, 8}
	final := grapher.Style{LineWidth: 10, LineColor: color.Black}
	want := inked(newGraph(t, samples, final).Image())

	l := newGraph(t, samples, grapher.Style{LineWidth: 2, LineColor: color.Black, LineStyle: grapher.Dotted})
	l.SetStroke(grapher.StrokeFor(final))
	l.SetNeedsDisplay()
	if got := inked(l.Image()); got != want {
		t.Errorf("restyled layer has %d inked pixels, fresh layer %d", got, want)
	}
	if l.Context().IsDashed() {
		t.Error("solid stroke is still dashed")
	}
	if w := l.Context().GetStroke().Width; w != 10 {
		t.Errorf("stroke width %g", w)
	}
}
