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

// Package pdflayer records a graph and writes it as a vector PDF page.
package pdflayer

import (
	"fmt"
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/grapher"
)

// Layer is a [grapher.Layer] for static output. It keeps the most recent
// stroke and path and writes them to a PDF file on request.
// Animations are ignored, since a page always shows the fully drawn line.
type Layer struct {
	width, height float64
	attached      bool
	background    stdcolor.Color

	stroke grapher.Stroke
	path   *grapher.Path
}

// New returns a detached layer for a page of the given size in PDF points.
func New(width, height float64) *Layer {
	return &Layer{width: width, height: height}
}

// SetBackground sets the color of the page behind the graph. The default
// is no background.
func (l *Layer) SetBackground(c stdcolor.Color) {
	l.background = c
}

// Attach marks the layer as displayed.
func (l *Layer) Attach() { l.attached = true }

// Attached implements [grapher.Layer].
func (l *Layer) Attached() bool { return l.attached }

// Size implements [grapher.Layer].
func (l *Layer) Size() grapher.Size {
	return grapher.Size{Width: l.width, Height: l.height}
}

// SetStroke implements [grapher.Layer].
func (l *Layer) SetStroke(s grapher.Stroke) { l.stroke = s }

// SetPath implements [grapher.Layer].
func (l *Layer) SetPath(p *grapher.Path) { l.path = p }

// SetNeedsDisplay implements [grapher.Layer]. Output happens in WriteFile.
func (l *Layer) SetNeedsDisplay() {}

// AddAnimation implements [grapher.Layer].
func (l *Layer) AddAnimation(grapher.Animation) {}

// RemoveAllAnimations implements [grapher.Layer].
func (l *Layer) RemoveAllAnimations() {}

// WriteFile writes the current graph as a single page PDF file.
func (l *Layer) WriteFile(fileName string) error {
	paper := &pdf.Rectangle{URx: l.width, URy: l.height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("pdflayer: %w", err)
	}

	if l.background != nil {
		page.SetFillColor(deviceColor(l.background))
		page.Rectangle(0, 0, l.width, l.height)
		page.Fill()
	}

	// PDF has the origin at the bottom left, surfaces at the top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, l.height})

	s := l.stroke
	if !l.path.IsEmpty() && s.Width > 0 && s.Color != nil {
		page.SetStrokeColor(deviceColor(s.Color))
		page.SetLineWidth(s.Width)
		page.SetLineCap(s.Cap)
		page.SetLineJoin(s.Join)
		if len(s.Dash) > 0 {
			page.SetLineDash(s.Dash, 0)
		}
		for cmd, pts := range l.path.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("pdflayer: %w", err)
	}
	return nil
}

// deviceColor converts c to the DeviceRGB color space, ignoring alpha.
func deviceColor(c stdcolor.Color) color.Color {
	n := stdcolor.NRGBA64Model.Convert(c).(stdcolor.NRGBA64)
	return color.DeviceRGB{
		float64(n.R) / 0xffff,
		float64(n.G) / 0xffff,
		float64(n.B) / 0xffff,
	}
}
