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
	"testing"
	"time"
)

// recordingLayer is a Layer which records all calls made to it.
type recordingLayer struct {
	attached bool
	size     Size

	strokes  []Stroke
	paths    []*Path
	displays int
	anims    []Animation
	removals int
}

func (l *recordingLayer) Attached() bool       { return l.attached }
func (l *recordingLayer) Size() Size           { return l.size }
func (l *recordingLayer) SetStroke(s Stroke)   { l.strokes = append(l.strokes, s) }
func (l *recordingLayer) SetPath(p *Path)      { l.paths = append(l.paths, p) }
func (l *recordingLayer) SetNeedsDisplay()     { l.displays++ }
func (l *recordingLayer) RemoveAllAnimations() { l.removals++ }

func (l *recordingLayer) AddAnimation(a Animation) {
	l.anims = append(l.anims, a)
}

func TestRevealAnimation(t *testing.T) {
	a := RevealAnimation(DefaultRevealDuration)
	if a.Key != KeyStrokeEnd || a.From != 0 || a.To != 1 || !a.RemovedOnCompletion {
		t.Fatalf("unexpected animation %+v", a)
	}
	if a.Duration != time.Second {
		t.Errorf("duration %v", a.Duration)
	}

	tests := []struct {
		elapsed time.Duration
		value   float64
		running bool
	}{
		{-time.Second, 0, true},
		{0, 0, true},
		{250 * time.Millisecond, 0.25, true},
		{999 * time.Millisecond, 0.999, true},
		{time.Second, 1, false},
		{time.Hour, 1, false},
	}
	for _, tc := range tests {
		v, running := a.Progress(tc.elapsed)
		if v != tc.value || running != tc.running {
			t.Errorf("%v: got %g %t, want %g %t", tc.elapsed, v, running, tc.value, tc.running)
		}
	}

	if v, running := RevealAnimation(0).Progress(0); v != 1 || running {
		t.Errorf("zero duration: got %g %t", v, running)
	}
}
