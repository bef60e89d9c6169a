// Package generate produces random schedules for the classification engine.
// It is strictly an upstream producer, the engine itself never observes a
// randomness source, it only ever receives a finished schedule.
package generate

import (
	"math/rand"

	"github.com/elliotcourant/schedules"
	"github.com/elliotcourant/schedules/z"
	"github.com/pkg/errors"
	"golang.org/x/net/trace"
)

type (
	// Options shape the schedules a Generator produces.
	Options struct {
		// Objects is the alphabet reads and writes draw from.
		Objects []string

		// MinTransactions and MaxTransactions bound the number of
		// transactions per schedule, inclusive.
		MinTransactions int
		MaxTransactions int

		// MaxReadWrites bounds the reads and writes per transaction, every
		// transaction performs at least one.
		MaxReadWrites int

		// AbortProbability is the chance a transaction ends in an abort
		// instead of a commit.
		AbortProbability float64

		// EventLog receives progress events from Find. Defaults to a no-op
		// sink.
		EventLog trace.EventLog
	}

	// Generator produces random schedules from an injected randomness
	// source. Not safe for concurrent use, rand.Rand is not either.
	Generator struct {
		rng  *rand.Rand
		opts Options
	}
)

// DefaultOptions mirror the shapes used on exercise sheets, two or three
// short transactions over three objects.
var DefaultOptions = Options{
	Objects:          []string{"X", "Y", "Z"},
	MinTransactions:  2,
	MaxTransactions:  3,
	MaxReadWrites:    3,
	AbortProbability: 0.5,
}

// NewGenerator builds a generator around rng, filling unset options from
// DefaultOptions.
func NewGenerator(rng *rand.Rand, opts Options) *Generator {
	if len(opts.Objects) == 0 {
		opts.Objects = DefaultOptions.Objects
	}
	if opts.MinTransactions < 1 {
		opts.MinTransactions = DefaultOptions.MinTransactions
	}
	if opts.MaxTransactions < opts.MinTransactions {
		opts.MaxTransactions = opts.MinTransactions
	}
	if opts.MaxReadWrites < 1 {
		opts.MaxReadWrites = DefaultOptions.MaxReadWrites
	}
	if opts.EventLog == nil {
		opts.EventLog = z.NoEventLog
	}
	return &Generator{
		rng:  rng,
		opts: opts,
	}
}

// Generate produces one random schedule: every transaction performs a run of
// random reads and writes followed by a terminal commit or abort, and the
// transactions are merged into a single interleaving that preserves each
// transaction's own order.
func (g *Generator) Generate() schedules.Schedule {
	count := g.opts.MinTransactions +
		g.rng.Intn(g.opts.MaxTransactions-g.opts.MinTransactions+1)

	partitions := make([]schedules.Schedule, count)
	for i := range partitions {
		partitions[i] = g.transaction(uint64(i + 1))
	}
	return g.interleave(partitions)
}

func (g *Generator) transaction(txn uint64) schedules.Schedule {
	steps := 1 + g.rng.Intn(g.opts.MaxReadWrites)
	t := make(schedules.Schedule, 0, steps+1)
	for i := 0; i < steps; i++ {
		object := g.opts.Objects[g.rng.Intn(len(g.opts.Objects))]
		if g.rng.Intn(2) == 0 {
			t = append(t, schedules.Read(txn, object))
		} else {
			t = append(t, schedules.Write(txn, object))
		}
	}
	if g.rng.Float64() < g.opts.AbortProbability {
		return append(t, schedules.Abort(txn))
	}
	return append(t, schedules.Commit(txn))
}

// interleave merges the partitions into one schedule. Each step picks the
// next action from a partition weighted by how many actions it still holds,
// which makes every order preserving interleaving equally likely.
func (g *Generator) interleave(partitions []schedules.Schedule) schedules.Schedule {
	remaining := 0
	for _, p := range partitions {
		remaining += len(p)
	}

	merged := make(schedules.Schedule, 0, remaining)
	cursors := make([]int, len(partitions))
	for remaining > 0 {
		pick := g.rng.Intn(remaining)
		for i, p := range partitions {
			left := len(p) - cursors[i]
			if pick < left {
				merged = append(merged, p[cursors[i]])
				cursors[i]++
				break
			}
			pick -= left
		}
		remaining--
	}
	return merged
}

// Find generates schedules until one satisfies the predicate, giving up
// after maxAttempts.
func (g *Generator) Find(predicate func(schedules.Schedule) bool, maxAttempts int) (schedules.Schedule, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		s := g.Generate()
		if predicate(s) {
			g.opts.EventLog.Printf("matched after %d attempts: %s", attempt, s)
			return s, nil
		}
	}
	g.opts.EventLog.Errorf("no match in %d attempts", maxAttempts)
	return nil, errors.Errorf("no schedule matched the predicate after %d attempts", maxAttempts)
}
