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
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"seehuhn.de/go/grapher/loop"
)

// State is the phase of the most recent rebuild.
type State int32

const (
	Idle       State = iota // nothing in flight
	Building                // normalizing and building on a worker
	Presenting              // handing the path to the layer
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Building:
		return "Building"
	case Presenting:
		return "Presenting"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// buildJob holds everything one rebuild needs. It is captured when the
// rebuild is requested, so later configuration changes or data source
// mutations cannot affect a build in flight.
type buildJob struct {
	src       fetcher
	rng       ValueRange
	size      Size
	smoothing Smoothing
}

// cancelCheckInterval is the number of positions normalized between checks
// for cancellation.
const cancelCheckInterval = 256

// run normalizes all positions in ascending order and builds the path.
func (j buildJob) run(ctx context.Context) (*Path, []NormalizedPoint, error) {
	points := make([]NormalizedPoint, 0, j.src.count)
	for pos := range j.src.count {
		if pos%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		if pt, ok := Normalize(j.src.sample(pos), j.rng, j.size, j.src.count); ok {
			points = append(points, pt)
		}
	}
	return Build(points, j.smoothing), points, nil
}

// buildResult is the outcome of one rebuild.
type buildResult struct {
	gen    uint64
	path   *Path
	points []NormalizedPoint
}

// pipeline moves rebuilds from the worker pool to the presentation loop.
// Only the most recently started rebuild is ever presented; older results
// are discarded.
type pipeline struct {
	pool *loop.Pool
	main *loop.Loop

	gen   atomic.Uint64
	state atomic.Int32

	mu     sync.Mutex
	cancel context.CancelFunc
}

func (p *pipeline) State() State {
	return State(p.state.Load())
}

// settle returns to Idle after rebuild gen ended without being presented,
// unless a newer rebuild has been started since.
func (p *pipeline) settle(gen uint64) {
	if p.gen.Load() == gen {
		p.state.CompareAndSwap(int32(Building), int32(Idle))
	}
}

// start submits a rebuild and returns a channel which is closed once the
// result has been presented, or discarded because a newer rebuild was
// started in the meantime.
func (p *pipeline) start(job buildJob, present func(buildResult)) <-chan struct{} {
	gen := p.gen.Add(1)
	ctx, cancel := context.WithCancel(context.Background())

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.cancel = cancel
	p.mu.Unlock()

	done := make(chan struct{})
	p.state.Store(int32(Building))

	log := Logger()
	ok := p.pool.Submit(func() {
		defer cancel()

		t0 := time.Now()
		path, points, err := job.run(ctx)
		if err != nil {
			log.Debug("rebuild cancelled", "generation", gen)
			close(done)
			return
		}
		log.Debug("rebuild finished",
			"generation", gen,
			"samples", job.src.count,
			"points", len(points),
			"elapsed", time.Since(t0))

		res := buildResult{gen: gen, path: path, points: points}
		posted := p.main.Post(func() {
			defer close(done)
			if p.gen.Load() != gen {
				log.Debug("dropping stale rebuild", "generation", gen)
				return
			}
			p.state.CompareAndSwap(int32(Building), int32(Presenting))
			present(res)
			p.state.CompareAndSwap(int32(Presenting), int32(Idle))
		})
		if !posted {
			log.Debug("presentation loop closed", "generation", gen)
			p.settle(gen)
			close(done)
		}
	})
	if !ok {
		p.settle(gen)
		cancel()
		close(done)
	}
	return done
}
