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

// Package loop provides the two execution contexts of the graph engine: a
// single presentation loop, which is the only goroutine allowed to touch a
// drawing surface, and a pool of background workers.
package loop

import (
	"sync"
	"sync/atomic"
)

// Loop runs posted functions one at a time, in the order they were posted,
// on a single goroutine.
//
// Loop is safe for concurrent use.
type Loop struct {
	queue   chan func()
	done    chan struct{}
	stopped chan struct{}
	running atomic.Bool
}

// New starts a presentation loop. The buffer is the number of functions
// which can be queued before Post blocks; values below 1 are raised to 1.
func New(buffer int) *Loop {
	l := &Loop{
		queue:   make(chan func(), max(buffer, 1)),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	l.running.Store(true)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.stopped)
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.done:
			// run what was accepted before Close
			for {
				select {
				case fn := <-l.queue:
					fn()
				default:
					return
				}
			}
		}
	}
}

// Post queues fn for execution on the loop. The result is false if the loop
// has been closed and fn will not run.
func (l *Loop) Post(fn func()) bool {
	if fn == nil || !l.running.Load() {
		return false
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Sync runs fn on the loop and waits for it to return. It must not be
// called from the loop itself.
func (l *Loop) Sync(fn func()) bool {
	var wg sync.WaitGroup
	wg.Add(1)
	ok := l.Post(func() {
		defer wg.Done()
		fn()
	})
	if !ok {
		return false
	}
	wg.Wait()
	return true
}

// Close stops the loop after running all functions queued so far.
// Close is safe to call multiple times, but not from the loop itself.
func (l *Loop) Close() {
	if !l.running.CompareAndSwap(true, false) {
		<-l.stopped
		return
	}
	close(l.done)
	<-l.stopped
}

// IsRunning reports whether the loop accepts new work.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}
