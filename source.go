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
	"math"
	"weak"
)

// DataSource supplies the samples of a graph. Positions are 0-based and
// contiguous. Value reports false when there is no sample at a position.
//
// The engine only reads from a DataSource. It calls Count once per rebuild
// and Value for each position below the count.
type DataSource interface {
	Count() int
	Value(pos int) (float64, bool)
}

// SourceRef is a non-owning handle to a DataSource. Source returns nil once
// the underlying source is gone.
type SourceRef interface {
	Source() DataSource
}

// Weak returns a SourceRef which does not keep src alive.
func Weak[T any, P interface {
	*T
	DataSource
}](src P) SourceRef {
	if src == nil {
		return nil
	}
	return weakSource[T, P]{ptr: weak.Make((*T)(src))}
}

type weakSource[T any, P interface {
	*T
	DataSource
}] struct {
	ptr weak.Pointer[T]
}

func (w weakSource[T, P]) Source() DataSource {
	p := w.ptr.Value()
	if p == nil {
		return nil
	}
	return P(p)
}

// Strong returns a SourceRef which keeps src alive for as long as the
// reference is held. This is meant for sources without an owner of their
// own, for example the sample slice of a command line tool.
func Strong(src DataSource) SourceRef {
	if src == nil {
		return nil
	}
	return strongSource{src}
}

type strongSource struct {
	src DataSource
}

func (s strongSource) Source() DataSource { return s.src }

// Values is a DataSource backed by a slice. NaN entries are missing samples.
type Values []float64

// Count implements [DataSource].
func (v Values) Count() int {
	return len(v)
}

// Value implements [DataSource]. Positions outside the slice have no value.
func (v Values) Value(pos int) (float64, bool) {
	if pos < 0 || pos >= len(v) {
		return 0, false
	}
	x := v[pos]
	if math.IsNaN(x) {
		return 0, false
	}
	return x, true
}

// fetcher captures a data source for one rebuild.
type fetcher struct {
	count int
	value func(pos int) (float64, bool)
}

// snapshot resolves ref and captures its sample count and value accessor.
// An absent source yields zero samples.
func snapshot(ref SourceRef) fetcher {
	if ref == nil {
		return fetcher{}
	}
	src := ref.Source()
	if src == nil {
		return fetcher{}
	}
	return fetcher{
		count: max(src.Count(), 0),
		value: src.Value,
	}
}

// sample returns the sample at pos.
func (f fetcher) sample(pos int) Sample {
	if f.value == nil {
		return Sample{Position: pos}
	}
	v, ok := f.value(pos)
	return Sample{Position: pos, Value: v, Present: ok}
}
