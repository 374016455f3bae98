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
	"image/color"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/grapher/loop"
)

type engineFixture struct {
	ui     *loop.Loop
	layer  *recordingLayer
	engine *Engine
}

func newFixture(t *testing.T, opts ...Option) *engineFixture {
	t.Helper()
	f := &engineFixture{
		ui:    loop.New(8),
		layer: &recordingLayer{attached: true, size: Size{Width: 100, Height: 100}},
	}
	f.engine = New(f.layer, f.ui, opts...)
	t.Cleanup(func() {
		f.engine.Close()
		f.ui.Close()
	})
	return f
}

// do runs fn on the presentation loop. Checks inside fn must use assert,
// since they do not run on the test goroutine.
func (f *engineFixture) do(t *testing.T, fn func(e *Engine)) {
	t.Helper()
	require.True(t, f.ui.Sync(func() { fn(f.engine) }), "presentation loop closed")
}

// reload starts a rebuild and waits until it has been presented.
func (f *engineFixture) reload(t *testing.T, animated bool) {
	t.Helper()
	var done <-chan struct{}
	f.do(t, func(e *Engine) { done = e.Reload(animated) })
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild did not finish")
	}
}

func styled(e *Engine) {
	e.SetLineWidth(2)
	e.SetLineColor(color.Black)
}

func TestEngineReload(t *testing.T) {
	f := newFixture(t, WithRange(ValueRange{Min: 0, Max: 50}))
	f.do(t, func(e *Engine) {
		styled(e)
		e.SetDataSource(Strong(Values{0, 50, 25}))
	})
	f.reload(t, false)

	f.do(t, func(e *Engine) {
		assert.Len(t, f.layer.strokes, 1)
		assert.Len(t, f.layer.paths, 1)
		assert.Equal(t, 1, f.layer.displays)
		assert.Empty(t, f.layer.anims)
		assert.Equal(t, 1, f.layer.removals)

		assert.Same(t, e.Path(), f.layer.paths[0])
		assert.Equal(t, 3, e.Path().Len())
		assert.Equal(t, Idle, e.State())

		pts := e.Points()
		assert.Len(t, pts, 3)
		assert.InDelta(t, 200.0/3, pts[2].Surface.X, eps)
		assert.InDelta(t, 50, pts[2].Surface.Y, eps)

		assert.Equal(t, 3, e.Count())
		v, ok := e.Value(1)
		assert.True(t, ok)
		assert.Equal(t, 50.0, v)
		p, ok := e.PointAt(2)
		assert.True(t, ok)
		assert.Equal(t, vec.Vec2{X: 2, Y: 25}, p)
		_, ok = e.PointAt(3)
		assert.False(t, ok)
	})
}

func TestEngineReloadDeterministic(t *testing.T) {
	f := newFixture(t, WithRange(ValueRange{Min: 0, Max: 10}))
	f.do(t, func(e *Engine) {
		styled(e)
		e.SetSmoothing(SmoothingCurve)
		e.SetDataSource(Strong(Values{1, 9, math.NaN(), 4, 7}))
	})
	f.reload(t, false)
	f.reload(t, false)

	f.do(t, func(e *Engine) {
		assert.Len(t, f.layer.paths, 2)
		first, second := f.layer.paths[0], f.layer.paths[1]
		assert.NotSame(t, first, second)
		assert.Equal(t, first.Commands(), second.Commands())
		assert.Equal(t, first.data.Coords, second.data.Coords)

		// the style did not change, so the layer was styled once
		assert.Len(t, f.layer.strokes, 1)
	})
}

func TestEngineAnimatedReload(t *testing.T) {
	f := newFixture(t, WithRange(ValueRange{Min: 0, Max: 1}), WithRevealDuration(time.Second/2))
	f.do(t, func(e *Engine) {
		styled(e)
		e.SetDataSource(Strong(Values{0, 1}))
	})
	f.reload(t, true)

	f.do(t, func(*Engine) {
		assert.Len(t, f.layer.anims, 1)
		a := f.layer.anims[0]
		assert.Equal(t, KeyStrokeEnd, a.Key)
		assert.Equal(t, 0.0, a.From)
		assert.Equal(t, 1.0, a.To)
		assert.Equal(t, time.Second/2, a.Duration)
		assert.True(t, a.RemovedOnCompletion)
	})
}

func TestEngineSettersInvalidate(t *testing.T) {
	f := newFixture(t)
	f.do(t, func(e *Engine) {
		styled(e)
		assert.NoError(t, e.LayerAttached())
		assert.True(t, e.StyleApplied())

		// unchanged values keep the cache
		e.SetLineWidth(2)
		e.SetLineColor(color.Gray{Y: 0})
		e.SetLineStyle(Standard)
		e.SetSmoothing(SmoothingNone)
		assert.True(t, e.StyleApplied())

		e.SetLineStyle(Dotted)
		assert.False(t, e.StyleApplied())
		assert.NoError(t, e.LayerAttached())
		assert.True(t, e.StyleApplied())

		e.SetLineColor(color.White)
		assert.False(t, e.StyleApplied())

		// setters never touch the layer
		assert.Len(t, f.layer.strokes, 2)
		assert.Empty(t, f.layer.paths)
	})
}

func TestEngineDeferredStyle(t *testing.T) {
	f := newFixture(t, WithRange(ValueRange{Min: 0, Max: 1}))
	f.layer.attached = false
	f.do(t, func(e *Engine) {
		styled(e)
		e.SetDataSource(Strong(Values{0, 1}))
	})
	f.reload(t, false)

	f.do(t, func(e *Engine) {
		assert.Empty(t, f.layer.strokes)
		assert.Len(t, f.layer.paths, 1)
		assert.False(t, e.StyleApplied())

		f.layer.attached = true
		assert.NoError(t, e.LayerAttached())
		assert.Len(t, f.layer.strokes, 1)
		assert.Equal(t, StrokeFor(e.Style()), f.layer.strokes[0])
	})
}

func TestEngineUnsetStyle(t *testing.T) {
	f := newFixture(t, WithRange(ValueRange{Min: 0, Max: 1}))
	f.do(t, func(e *Engine) {
		e.SetLineColor(color.Black)
		e.SetDataSource(Strong(Values{0, 1}))
		assert.ErrorIs(t, e.LayerAttached(), ErrNoLineWidth)
	})
	f.reload(t, false)

	// without strict mode the path is still presented, unstyled
	f.do(t, func(e *Engine) {
		assert.Empty(t, f.layer.strokes)
		assert.Len(t, f.layer.paths, 1)
	})
}

func TestEngineStrictPanics(t *testing.T) {
	f := newFixture(t, WithStrict(true))
	res := buildResult{gen: 1, path: &Path{}}
	require.PanicsWithError(t, ErrNoLineColor.Error(), func() {
		f.engine.style.LineWidth = 1
		f.engine.present(res, false)
	})
}

func TestEngineMissingSource(t *testing.T) {
	f := newFixture(t)
	f.do(t, styled)
	f.reload(t, false)

	f.do(t, func(e *Engine) {
		assert.Equal(t, 0, e.Count())
		_, ok := e.Value(0)
		assert.False(t, ok)
		assert.True(t, e.Path().IsEmpty())
		assert.Len(t, f.layer.paths, 1)
	})
}

// A source which is collected before the rebuild yields an empty path.
func TestEngineCollectedSource(t *testing.T) {
	f := newFixture(t, WithRange(ValueRange{Min: 0, Max: 10}))
	src := &Values{1, 2, 3}
	f.do(t, func(e *Engine) {
		styled(e)
		e.SetDataSource(Weak(src))
	})
	f.reload(t, false)
	f.do(t, func(e *Engine) { assert.Equal(t, 3, e.Path().Len()) })

	src = nil
	ref := f.engine.source
	for range 10 {
		runtime.GC()
		if ref.Source() == nil {
			break
		}
	}
	require.Nil(t, ref.Source())

	f.reload(t, false)
	f.do(t, func(e *Engine) {
		assert.True(t, e.Path().IsEmpty())
		assert.Empty(t, e.Points())
	})
}

func TestEngineOwnsPool(t *testing.T) {
	pool := loop.NewPool(2)
	defer pool.Close()

	f := newFixture(t, WithPool(pool))
	require.False(t, f.engine.ownsPool)
	f.engine.Close()
	require.True(t, pool.Submit(func() {}), "shared pool was closed")
}
