// Package racelab stages the race: a background mutator scribbling into
// two shared atomic-cell matrices, a foreground harness multiplying and
// recording them, and an experiment driver that measures how often the
// records survive verification.
//
// 🚀 What is racelab?
//
//	The moving parts around atommat's shared state:
//	  • Mutator: an unbounded background loop that overwrites one random
//	    cell in each target per iteration, with cooperative Stop and an
//	    explicit Join; optionally serialized by a shared lock
//	  • Harness: sequential read-multiply-record cycles over the same two
//	    matrices, each cycle frozen into an atommat.MulRecord; optionally
//	    the same shared lock turns a cycle into one critical section
//	  • Trial / Compare: isolated end-to-end runs reporting accuracy, the
//	    percentage of cycles whose claimed product still verifies
//
// ✨ What it demonstrates:
//   - Unlocked, per-cell atomicity only: over ≥10⁴ cycles the mutator
//     slips inside cycles and accuracy lands below 100% essentially
//     every run
//   - One mutex shared by BOTH sides, held for whole iterations/cycles:
//     accuracy is exactly 100%, every run
//   - One-sided locking (only the mutator, or only the harness) is
//     indistinguishable from no locking at all
//
// ⚙️ Usage:
//
//	left, _ := atommat.New(...)
//	right, _ := atommat.New(...)
//	var shared sync.Mutex
//
//	mut := racelab.NewMutator(left, right, racelab.WithLock(&shared))
//	har := racelab.NewHarness(left, right, racelab.WithLock(&shared))
//
//	mut.Start()
//	har.RunCycles(100_000)
//	mut.Stop()
//	mut.Join() // the only quiescence guarantee
//
//	acc, err := har.Accuracy() // 100.0 exactly in this locked setup
//
// Or let the driver do the wiring on isolated instance sets:
//
//	unlocked, locked, err := racelab.Compare(ctx, 100_000)
//
// Lifecycle rules: Start is idempotent; Stop flips a flag and returns;
// only Join proves the background task has exited. One scenario goroutine
// drives a given mutator/harness pair; scenarios themselves are isolated
// and may run in parallel.
//
// See example_test.go for runnable walkthroughs and ../atommat for the
// shared state itself.
package racelab
