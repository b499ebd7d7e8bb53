// Package batch runs a range of Microsoft board numbers across worker
// goroutines, one solver instance per board (the engine itself is
// single-threaded; parallelism lives here, coordinating only through a
// shared "next board number" counter, per spec). Grounded on the
// teacher's internal/engine/engine.go SearchWithLimits worker-pool
// shape (result channel + sync.WaitGroup fan-in), retargeted from
// parallel-PV search workers to parallel board solves. A solcache.Cache
// probed before, and updated after, each board lets a resumed or
// repeated range run skip boards already solved.
package batch

import (
	"fmt"
	"sync"

	"github.com/tholroyd/patsolve/internal/dealer"
	"github.com/tholroyd/patsolve/internal/engine"
	"github.com/tholroyd/patsolve/internal/solcache"
	"github.com/tholroyd/patsolve/internal/solitaire"
)

// Result is one board's outcome. Run hands each Result to its callback
// as soon as a worker finishes that board, so results arrive in
// completion order, not necessarily board-number order.
type Result struct {
	GameNumber int64
	Status     engine.Status
	NumMoves   int
	NumChecked int
}

// Range is an inclusive-exclusive span of MS board numbers, matching
// PATSOLVE_START/PATSOLVE_END.
type Range struct {
	Start, End int64
}

// Options configures one batch run: the variant's board config and
// move-priority parameters, worker count, and per-board resource
// limits.
type Options struct {
	Variant       string // "freecell" or "seahaven"
	Config        solitaire.Config
	Params        solitaire.Params
	NumWorkers    int
	MemoryBudget  int
	MaxNumChecked int
	ToStack       bool

	// Cache, if non-nil, is probed before solving a board and updated
	// after; nil disables memoization.
	Cache *solcache.Cache
}

// Run solves every board number in r across opts.NumWorkers goroutines,
// invoking onResult (called from arbitrary goroutines — callers
// synchronize their own side effects) for each completed board, and
// returns once every board has been solved.
func Run(r Range, opts Options, onResult func(Result)) {
	workers := opts.NumWorkers
	if workers < 1 {
		workers = 1
	}

	next := int64(r.Start)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				mu.Lock()
				n := next
				if n >= r.End {
					mu.Unlock()
					return
				}
				next++
				mu.Unlock()

				onResult(solveOne(n, opts))
			}
		}()
	}

	wg.Wait()
}

func solveOne(gameNumber int64, opts Options) Result {
	if opts.Cache != nil {
		if e, ok := opts.Cache.Probe(opts.Variant, opts.Config, gameNumber); ok {
			return Result{
				GameNumber: gameNumber,
				Status:     parseStatus(e.Status),
				NumMoves:   len(e.Moves),
			}
		}
	}

	var deal dealer.Deal
	switch opts.Variant {
	case "seahaven":
		deal = dealer.Seahaven(gameNumber)
	default:
		deal = dealer.Freecell(gameNumber)
	}

	b := solitaire.NewBoard(opts.Config)
	b.Piles = deal.Piles
	copy(b.FreeCells, deal.FreeCells)

	s := engine.New(b, opts.Params, engine.Options{
		MemoryBudget:  opts.MemoryBudget,
		ToStack:       opts.ToStack,
		MaxNumChecked: opts.MaxNumChecked,
	})
	status := s.Run()

	res := Result{
		GameNumber: gameNumber,
		Status:     status,
		NumMoves:   len(s.MovesToWin()),
		NumChecked: s.NumChecked(),
	}

	if opts.Cache != nil {
		moves := s.MovesToWin()
		tokens := make([]string, len(moves))
		for i, m := range moves {
			tokens[i] = engine.FormatMove(m)
		}
		entry := solcache.Entry{Status: status.String(), Moves: tokens}
		opts.Cache.Store(opts.Variant, opts.Config, gameNumber, entry)
	}

	return res
}

func parseStatus(s string) engine.Status {
	switch s {
	case "Win":
		return engine.Win
	case "Fail":
		return engine.Fail
	default:
		return engine.NoSol
	}
}

// StatusLine formats one board's outcome the way patmain.c's range mode
// does: "#<n>", "#<n> - Won", "#<n> - OutOfMem", "#<n> - Impossible".
func StatusLine(res Result) string {
	switch res.Status {
	case engine.Win:
		return fmt.Sprintf("#%d - Won", res.GameNumber)
	case engine.Fail:
		return fmt.Sprintf("#%d - OutOfMem", res.GameNumber)
	default:
		return fmt.Sprintf("#%d - Impossible", res.GameNumber)
	}
}
