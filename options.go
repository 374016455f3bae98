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
	"time"

	"seehuhn.de/go/grapher/loop"
)

// Option configures an [Engine].
type Option func(*options)

type options struct {
	pool           *loop.Pool
	strict         bool
	revealDuration time.Duration
	valueRange     ValueRange
}

func defaultOptions() options {
	return options{
		revealDuration: DefaultRevealDuration,
		valueRange:     DefaultRange,
	}
}

// WithPool makes the engine build paths on the given worker pool. The pool
// is shared and is not closed by [Engine.Close]. Without this option the
// engine starts a single-worker pool of its own.
func WithPool(p *loop.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithStrict makes presenting with an unset line width or color panic
// instead of only logging an error. This is meant for development builds.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithRevealDuration sets the length of the stroke reveal animation used
// by animated reloads.
func WithRevealDuration(d time.Duration) Option {
	return func(o *options) {
		o.revealDuration = d
	}
}

// WithRange sets the initial value range.
func WithRange(r ValueRange) Option {
	return func(o *options) {
		o.valueRange = r
	}
}
