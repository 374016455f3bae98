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

package loop

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestLoopOrder(t *testing.T) {
	l := New(4)
	defer l.Close()

	var got []int
	for i := range 100 {
		if !l.Post(func() { got = append(got, i) }) {
			t.Fatal("post failed")
		}
	}
	l.Sync(func() {})

	if len(got) != 100 {
		t.Fatalf("ran %d functions", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("position %d ran function %d", i, v)
		}
	}
}

// All functions run on the same goroutine, so unsynchronized access from
// posted functions is safe.
func TestLoopSerial(t *testing.T) {
	l := New(16)
	defer l.Close()

	var running atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				l.Post(func() {
					if running.Add(1) != 1 {
						t.Error("functions overlap")
					}
					running.Add(-1)
				})
			}
		}()
	}
	wg.Wait()
	l.Sync(func() {})
}

func TestLoopClose(t *testing.T) {
	l := New(8)

	ran := 0
	for range 5 {
		l.Post(func() { ran++ })
	}
	l.Close()
	l.Close()

	if ran != 5 {
		t.Errorf("%d of 5 queued functions ran", ran)
	}
	if l.IsRunning() {
		t.Error("loop still running")
	}
	if l.Post(func() {}) || l.Sync(func() {}) {
		t.Error("closed loop accepted work")
	}
	if l.Post(nil) {
		t.Error("nil function accepted")
	}
}

func TestPool(t *testing.T) {
	p := NewPool(4)
	if p.Workers() != 4 {
		t.Errorf("%d workers", p.Workers())
	}

	var count atomic.Int32
	for range 100 {
		if !p.Submit(func() { count.Add(1) }) {
			t.Fatal("submit failed")
		}
	}
	p.Close()
	p.Close()

	if count.Load() != 100 {
		t.Errorf("%d of 100 functions ran", count.Load())
	}
	if p.Submit(func() {}) {
		t.Error("closed pool accepted work")
	}
}

func TestPoolDefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("%d workers", p.Workers())
	}
}
