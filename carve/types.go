package carve

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("carve: grid is nil")
	// ErrEmptyEligibleSet indicates the exclusion mask covers every cell,
	// leaving nothing to carve.
	ErrEmptyEligibleSet = errors.New("carve: no eligible cells to carve")
	// ErrUnreachable indicates the entry or exit ended up excluded or
	// isolated after carving. With validated parameters this marks a
	// generator invariant violation and is never recovered internally.
	ErrUnreachable = errors.New("carve: entry or exit unreachable")
)

// defaultBraidFactor is the probability applied to each interior closed
// wall during the loop-adding pass of an imperfect maze.
const defaultBraidFactor = 0.15

// Option configures generation via functional arguments.
type Option func(*Options)

// Options holds tunable generation parameters.
type Options struct {
	// Seed drives the deterministic RNG. When HasSeed is false a seed is
	// drawn from entropy and recorded in the Result, so any run can be
	// reproduced afterwards.
	Seed    int64
	HasSeed bool

	// Perfect selects spanning-tree output (true, the default) or a
	// braided maze with cycles (false).
	Perfect bool

	// BraidFactor is the per-wall opening probability of the braid pass;
	// only consulted when Perfect is false. Must lie in [0,1].
	BraidFactor float64

	// err records an invalid option, surfaced when Generate runs.
	err error
}

// DefaultOptions returns Options producing a perfect maze with an
// entropy-derived seed.
func DefaultOptions() Options {
	return Options{
		Perfect:     true,
		BraidFactor: defaultBraidFactor,
	}
}

// WithSeed pins the RNG seed for reproducible output.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
	}
}

// WithPerfect selects between a spanning-tree maze (true) and a braided
// maze with cycles (false).
func WithPerfect(perfect bool) Option {
	return func(o *Options) { o.Perfect = perfect }
}

// WithBraidFactor sets the braid-pass wall-opening probability.
// Values outside [0,1] are invalid.
func WithBraidFactor(f float64) Option {
	return func(o *Options) {
		if f < 0 || f > 1 {
			o.err = fmt.Errorf("carve: braid factor %v outside [0,1]", f)
			return
		}
		o.BraidFactor = f
	}
}

// Result reports what a generation run did.
type Result struct {
	// Seed is the effective RNG seed: the pinned one, or the
	// entropy-derived one when none was supplied.
	Seed int64
	// Carved counts the cells reached by the backtracker.
	Carved int
	// OpenedWalls counts wall removals, spanning-tree carving and braid
	// pass together. For a perfect maze this equals Carved-1.
	OpenedWalls int
}
