// SPDX-License-Identifier: MIT
// Package: atomrace/racelab
//
// experiment.go — self-contained trials and the unlocked-vs-locked comparison.
//
// Contract (strict):
//   - Every trial builds its own isolated instance set (two matrices, its
//     own lock when Locked, its own mutator and harness); nothing is
//     shared between trials, so trials may run concurrently.
//   - Run starts the mutator, waits until at least one mutation has
//     landed (guaranteed overlap), drives the requested cycles with
//     periodic context checks, then stops AND joins the mutator before
//     reading any counter.
//   - Locked mode hands the SAME mutex to both sides; that is the only
//     configuration with an exact 100% accuracy guarantee.
//   - Cancellation: context is honored between cycle batches and while
//     waiting for overlap, never inside a cycle.
//
// Determinism:
//   - Seed pins the mutator's draw sequence; the unlocked accuracy value
//     remains interleaving-dependent regardless of seed.

package racelab

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/atomrace/atommat"
)

// Method tags used in wrapped errors (no magic strings).
const opTrialRun = "Trial.Run"

// ctxCheckEvery is the cycle batch size between context checks.
const ctxCheckEvery = 1024

// Classic operand grids (the non-commuting fixture pair) used when a
// Trial omits its own. atommat.New copies values out, so the vars are
// never aliased by a live matrix.
var (
	classicLeft = [][]float64{
		{1, 2, 0, 1},
		{0, 1, 1, 0},
		{1, 1, 0, 2},
		{1, 0, 1, 0},
	}
	classicRight = [][]float64{
		{2, 2, 0, 1},
		{1, 1, 1, 2},
		{1, 1, 3, 2},
		{1, 2, 1, 1},
	}
)

// Trial describes one self-contained experiment run. The zero value plus
// a positive Cycles count is a valid unlocked trial over the classic
// operand pair.
type Trial struct {
	Cycles int   // multiplication cycles to drive; must be > 0
	Locked bool  // share one mutex between mutator and harness
	Seed   int64 // mutator draw seed; 0 ⇒ wall-clock seeding

	// Optional operand contents; nil selects the classic fixture grids.
	LeftRows  [][]float64
	RightRows [][]float64
}

// Report summarizes one finished trial.
type Report struct {
	Cycles    int     // cycles actually recorded
	Locked    bool    // whether one shared lock serialized both sides
	Accuracy  float64 // percentage of cycles whose claim verified
	Mutations uint64  // completed mutator iterations during the trial
}

// Run executes the trial on a fresh, isolated instance set and reports
// the measured accuracy.
// Stage 1 (Validate): Cycles must be positive; operand grids must fit.
// Stage 2 (Prepare): build matrices, optional shared lock, mutator, harness.
// Stage 3 (Execute): start, await overlap, drive cycles, stop, join.
// Stage 4 (Finalize): compute accuracy and assemble the Report.
func (t Trial) Run(ctx context.Context) (Report, error) {
	// Validate the cycle budget up front instead of dividing by zero later.
	if t.Cycles <= 0 {
		return Report{}, fmt.Errorf("%s: cycles=%d: %w", opTrialRun, t.Cycles, ErrNoCycles)
	}

	// Resolve operand contents; the classic pair is the documented default.
	leftRows, rightRows := t.LeftRows, t.RightRows
	if leftRows == nil {
		leftRows = classicLeft
	}
	if rightRows == nil {
		rightRows = classicRight
	}

	left, err := atommat.New(leftRows)
	if err != nil {
		return Report{}, fmt.Errorf("%s: left operand: %w", opTrialRun, err)
	}
	right, err := atommat.New(rightRows)
	if err != nil {
		return Report{}, fmt.Errorf("%s: right operand: %w", opTrialRun, err)
	}

	// One shared lock for BOTH sides, or none at all.
	var mutOpts, harOpts []Option
	if t.Locked {
		shared := new(sync.Mutex)
		mutOpts = append(mutOpts, WithLock(shared))
		harOpts = append(harOpts, WithLock(shared))
	}
	if t.Seed != 0 {
		mutOpts = append(mutOpts, WithSeed(t.Seed))
	}

	mut := NewMutator(left, right, mutOpts...)
	har := NewHarness(left, right, harOpts...)

	mut.Start()
	// Safety net on early returns; Stop and Join are idempotent.
	defer func() { mut.Stop(); mut.Join() }()

	// Hold the cycles until the background task demonstrably runs, so the
	// statistical outcome never depends on scheduler warm-up.
	for mut.Mutations() == 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Report{}, fmt.Errorf("%s: %w", opTrialRun, ctxErr)
		}
		runtime.Gosched()
	}

	// Drive the cycles in batches, honoring cancellation between batches.
	for done := 0; done < t.Cycles; {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Report{}, fmt.Errorf("%s: %w", opTrialRun, ctxErr)
		}
		batch := t.Cycles - done
		if batch > ctxCheckEvery {
			batch = ctxCheckEvery
		}
		har.RunCycles(batch)
		done += batch
	}

	// Quiesce the writer before reading counters.
	mut.Stop()
	mut.Join()

	acc, err := har.Accuracy()
	if err != nil {
		// Unreachable while Cycles > 0 holds above.
		return Report{}, fmt.Errorf("%s: %w", opTrialRun, err)
	}

	return Report{
		Cycles:    har.Len(),
		Locked:    t.Locked,
		Accuracy:  acc,
		Mutations: mut.Mutations(),
	}, nil
}

// Compare runs one unlocked and one locked trial of the same cycle count
// in parallel on fully isolated instance sets and returns both reports.
// The first trial error cancels the sibling via the group context.
func Compare(ctx context.Context, cycles int) (unlocked, locked Report, err error) {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		r, runErr := Trial{Cycles: cycles}.Run(egCtx)
		if runErr != nil {
			return fmt.Errorf("unlocked trial: %w", runErr)
		}
		unlocked = r

		return nil
	})
	eg.Go(func() error {
		r, runErr := Trial{Cycles: cycles, Locked: true}.Run(egCtx)
		if runErr != nil {
			return fmt.Errorf("locked trial: %w", runErr)
		}
		locked = r

		return nil
	})

	if waitErr := eg.Wait(); waitErr != nil {
		return Report{}, Report{}, waitErr
	}

	return unlocked, locked, nil
}
