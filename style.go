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

package grapher

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strings"

	"seehuhn.de/go/pdf/graphics"
)

// LineStyle selects the dash pattern of the graph line.
type LineStyle int

const (
	Standard LineStyle = iota // solid line
	Dashed                    // dash pattern [4 4]
	Dotted                    // dash pattern [2 6], always round caps and joins
)

func (s LineStyle) String() string {
	switch s {
	case Standard:
		return "Standard"
	case Dashed:
		return "Dashed"
	case Dotted:
		return "Dotted"
	default:
		return fmt.Sprintf("LineStyle(%d)", int(s))
	}
}

// ParseLineStyle converts the output of [LineStyle.String] back to a
// LineStyle. Case is ignored.
func ParseLineStyle(s string) (LineStyle, error) {
	for _, ls := range []LineStyle{Standard, Dashed, Dotted} {
		if strings.EqualFold(s, ls.String()) {
			return ls, nil
		}
	}
	return 0, fmt.Errorf("unknown line style %q", s)
}

// Smoothing selects how consecutive points are connected.
type Smoothing int

const (
	SmoothingNone  Smoothing = iota // straight line segments
	SmoothingCurve                  // cubic curves with horizontal tangents
)

func (s Smoothing) String() string {
	switch s {
	case SmoothingNone:
		return "None"
	case SmoothingCurve:
		return "Bezier Curve"
	default:
		return fmt.Sprintf("Smoothing(%d)", int(s))
	}
}

// ParseSmoothing converts a smoothing name to a Smoothing value. Besides
// the output of [Smoothing.String], "curve" is accepted.
func ParseSmoothing(s string) (Smoothing, error) {
	switch strings.ToLower(s) {
	case "none":
		return SmoothingNone, nil
	case "curve", "bezier curve", "bezier":
		return SmoothingCurve, nil
	}
	return 0, fmt.Errorf("unknown smoothing style %q", s)
}

// Style is the configured appearance of the graph line.
// A zero LineWidth or a nil LineColor means the value has not been set.
type Style struct {
	LineWidth float64
	LineColor color.Color
	LineStyle LineStyle
	Smoothing Smoothing
}

// Stroke is the concrete stroke configuration pushed to a [Layer].
type Stroke struct {
	Width float64
	Color color.Color
	Fill  color.Color // nil means no fill
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
	Dash  []float64 // nil means solid
}

// Errors returned by [StyleCache.Apply] when a required style field is unset.
var (
	ErrNoLineWidth = errors.New("grapher: line width not set")
	ErrNoLineColor = errors.New("grapher: line color not set")
)

// Validate checks that the fields required for drawing are set.
func (s Style) Validate() error {
	if s.LineWidth <= 0 {
		return ErrNoLineWidth
	}
	if s.LineColor == nil {
		return ErrNoLineColor
	}
	return nil
}

// StrokeFor maps a style to the stroke configuration of the surface.
func StrokeFor(s Style) Stroke {
	st := Stroke{
		Width: s.LineWidth,
		Color: s.LineColor,
	}

	switch s.Smoothing {
	case SmoothingCurve:
		st.Cap = graphics.LineCapRound
		st.Join = graphics.LineJoinRound
	case SmoothingNone:
		st.Cap = graphics.LineCapButt
		st.Join = graphics.LineJoinMiter
	default:
		panic("grapher: unknown smoothing " + s.Smoothing.String())
	}

	switch s.LineStyle {
	case Standard:
		// solid
	case Dashed:
		st.Dash = []float64{4, 4}
	case Dotted:
		st.Dash = []float64{2, 6}
		st.Cap = graphics.LineCapRound
		st.Join = graphics.LineJoinRound
	default:
		panic("grapher: unknown line style " + s.LineStyle.String())
	}
	return st
}

// Equal reports whether two strokes render identically.
func (s Stroke) Equal(other Stroke) bool {
	return s.Width == other.Width &&
		colorEqual(s.Color, other.Color) &&
		colorEqual(s.Fill, other.Fill) &&
		s.Cap == other.Cap &&
		s.Join == other.Join &&
		slices.Equal(s.Dash, other.Dash)
}

// colorEqual compares colors by their premultiplied RGBA values.
// nil only equals nil.
func colorEqual(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// StyleCache remembers whether the current style has been pushed to the
// layer. Re-styling a surface is comparatively expensive, while most
// reloads only change the geometry.
//
// A StyleCache must only be used from the presentation loop.
type StyleCache struct {
	applied bool
}

// Applied reports whether the layer style is known to match the current
// configuration.
func (c *StyleCache) Applied() bool {
	return c.applied
}

// Invalidate forces the next call to Apply to re-style the layer.
func (c *StyleCache) Invalidate() {
	c.applied = false
}

// Apply pushes the stroke for s to the layer, unless this has already
// happened since the last call to Invalidate. Nothing happens while the
// layer is not attached; the call is repeated once it is.
//
// The result reports whether the layer was styled. If a required field of
// s is unset, the layer is left alone and the error from [Style.Validate]
// is returned.
func (c *StyleCache) Apply(s Style, l Layer) (bool, error) {
	if c.applied || l == nil || !l.Attached() {
		return false, nil
	}
	if err := s.Validate(); err != nil {
		return false, err
	}
	c.applied = true
	l.SetStroke(StrokeFor(s))
	return true, nil
}
