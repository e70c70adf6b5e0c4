// SPDX-License-Identifier: MIT

// Package blocked: functional configuration for the blocked driver.
// This file defines:
//   - Schedule (how output tiles are executed),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves derived values.
//
// Design goals:
//   - Deterministic results: every schedule produces bit-identical C.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package blocked

import "runtime"

// Schedule selects how the (rowBlock, colBlock) output tiles are executed.
type Schedule int

const (
	// Sequential runs rowBlock → colBlock → reduceBlock in a single goroutine,
	// re-reading and re-writing the C tile once per reduceBlock step.
	Sequential Schedule = iota

	// TileParallel computes distinct output tiles concurrently. Each tile keeps
	// a local accumulator across its (sequential) reduceBlock loop and is
	// written into C exactly once, so no two goroutines touch the same cells.
	TileParallel
)

// String returns the flag spelling of s.
func (s Schedule) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case TileParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// ParseSchedule maps "sequential"/"parallel" back to a Schedule.
func ParseSchedule(s string) (Schedule, bool) {
	switch s {
	case "sequential", "seq":
		return Sequential, true
	case "parallel", "tile-parallel":
		return TileParallel, true
	default:
		return Sequential, false
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSchedule keeps the single-threaded read-modify-write driver.
	DefaultSchedule = Sequential

	// DefaultWorkers = 0 means "use runtime.GOMAXPROCS(0)" under TileParallel.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersNegative = "blocked: WithWorkers: workers must be >= 0"
	panicScheduleUnknown = "blocked: WithSchedule: unknown schedule"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options is the resolved driver configuration. Fields are unexported;
// construct through Option setters.
type Options struct {
	schedule Schedule
	workers  int // 0 → GOMAXPROCS, resolved in gatherOptions
}

// Schedule returns the effective schedule.
func (o Options) Schedule() Schedule { return o.schedule }

// Workers returns the effective worker bound (always >= 1 after gatherOptions).
func (o Options) Workers() int { return o.workers }

// WithSchedule selects the tile execution strategy.
// Panics on values other than Sequential or TileParallel.
func WithSchedule(s Schedule) Option {
	if s != Sequential && s != TileParallel {
		panic(panicScheduleUnknown)
	}

	return func(o *Options) { o.schedule = s }
}

// WithWorkers bounds the number of tiles computed at once under TileParallel.
// 0 selects runtime.GOMAXPROCS(0). Panics on negative values.
// Has no effect under Sequential.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallel is shorthand for WithSchedule(TileParallel) + WithWorkers(n).
func WithParallel(workers int) Option {
	setWorkers := WithWorkers(workers) // validate eagerly
	return func(o *Options) {
		o.schedule = TileParallel
		setWorkers(o)
	}
}

// NewOptions resolves opts on top of the defaults. Exposed for callers that
// want to log the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		schedule: DefaultSchedule,
		workers:  DefaultWorkers,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins)
// and resolves workers=0 to GOMAXPROCS.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
