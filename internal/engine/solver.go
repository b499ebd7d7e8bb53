// Package engine holds the prioritized best-first search engine: the
// "soft thread" of positions, priority queues, and the do_it/solve
// main loop. Grounded on patsolve.c's fc_solve_pats__do_it/solve/
// queue_position/dequeue_position/unpack_position, with the teacher's
// engine.go and search.go contributing the Go loop shape (struct-owned
// state instead of file-scope globals, an explicit Status result
// instead of a bare exit code).
package engine

import (
	"fmt"
	"log"
	"math"

	"github.com/tholroyd/patsolve/internal/arena"
	"github.com/tholroyd/patsolve/internal/card"
	"github.com/tholroyd/patsolve/internal/pile"
	"github.com/tholroyd/patsolve/internal/solitaire"
	"github.com/tholroyd/patsolve/internal/store"
)

// Status is the solver's terminal outcome, the only state the spec
// exposes across the engine boundary (spec.md §7).
type Status int

const (
	NoSol Status = iota // search queue emptied without a win (also the initial value)
	Win
	Fail // allocation budget exhausted, or pile-id space overflowed
)

func (st Status) String() string {
	switch st {
	case Win:
		return "Win"
	case NoSol:
		return "NoSol"
	case Fail:
		return "Fail"
	default:
		return "Unknown"
	}
}

const numQueues = 100

// Solver is the single-threaded engine instance: the live board, the
// duplicate-detection store and its arena, the pile interner and
// canonicalizer, the priority queues, and search bookkeeping. Nothing
// here is shared across instances — parallel batch solving runs many
// Solvers, one per board, coordinating only above this boundary
// (spec.md §5).
type Solver struct {
	Board  *solitaire.Board
	Params solitaire.Params

	interner *pile.Interner
	canon    *pile.Canonicalizer
	store    *store.Store
	arena    *arena.Arena

	queueHead, queueTail [numQueues]*Position
	maxQueueIdx          int
	dequeueQPos          int
	dequeueMinPos        int

	freeList *Position

	Status           Status
	ToStack          bool
	MaxNumChecked    int // -1 means unlimited
	ContinueAfterWin bool
	numChecked       int
	numGenerated     int
	numSolutions     int

	movesToWin []solitaire.Move

	Logger *log.Logger
}

// Options bundles the knobs a caller supplies at construction — separate
// from solitaire.Config so the engine package has no import of cmd-line
// concerns.
type Options struct {
	MemoryBudget     int // bytes; 0 selects arena.DefaultBudget
	ToStack          bool
	MaxNumChecked    int // -1 for unlimited
	ContinueAfterWin bool
	Logger           *log.Logger
}

func New(board *solitaire.Board, params solitaire.Params, opts Options) *Solver {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.MaxNumChecked == 0 {
		opts.MaxNumChecked = -1
	}
	a := arena.New(opts.MemoryBudget)
	s := &Solver{
		Board:            board,
		Params:           params,
		interner:         pile.NewInterner(),
		canon:            pile.NewCanonicalizer(len(board.Piles)),
		arena:            a,
		store:            store.NewStore(a),
		Status:           NoSol,
		ToStack:          opts.ToStack,
		MaxNumChecked:    opts.MaxNumChecked,
		ContinueAfterWin: opts.ContinueAfterWin,
		Logger:           opts.Logger,
	}
	return s
}

// Run is the do_it loop: seed the initial position, then dequeue,
// expand, and free until the queues empty or a terminal status is
// reached.
func (s *Solver) Run() Status {
	root := s.newInitialPosition()
	if root == nil {
		return s.Status
	}
	s.queuePosition(root, 0)

	for {
		pos := s.dequeuePosition()
		if pos == nil {
			break
		}
		if !s.solve(pos) {
			s.freePosition(pos, true)
		}
	}

	// Noexit mode (-E): wins along the way don't set Status, so the
	// search runs to completion over the whole reachable space. Report
	// Win once, at the end, if any solution was ever recorded.
	if s.ContinueAfterWin && s.Status == NoSol && s.numSolutions > 0 {
		s.Status = Win
	}
	return s.Status
}

// MovesToWin returns the winning move chain, root to goal, for the last
// solution recorded (with ContinueAfterWin, later, typically better,
// solutions overwrite earlier ones).
func (s *Solver) MovesToWin() []solitaire.Move { return s.movesToWin }

func (s *Solver) NumChecked() int { return s.numChecked }

// NumSolutions reports how many distinct solutions were found. It is
// always 0 or 1 unless ContinueAfterWin is set.
func (s *Solver) NumSolutions() int { return s.numSolutions }

func (s *Solver) newInitialPosition() *Position {
	s.canonicalizeBoard()
	pos, outcome := s.newPosition(nil, solitaire.Move{})
	if outcome == store.Err {
		s.Status = Fail
	}
	return pos
}

func (s *Solver) computeCluster() int {
	f := s.Board.Foundations
	return f[0] | f[1]<<4 | f[2]<<8 | f[3]<<12
}

// canonicalizeBoard interns every pile's current contents and sorts
// them into canonical order, matching hash_layout()+pilesort().
func (s *Solver) canonicalizeBoard() []int {
	ids := make([]int, len(s.Board.Piles))
	for i, p := range s.Board.Piles {
		id, err := s.interner.Intern(pile.Pile(p))
		if err != nil {
			s.Status = Fail
			return nil
		}
		ids[i] = id
	}
	s.canon.Sort(ids, s.Params.SortDsc)
	return ids
}

func (s *Solver) newPosition(parent *Position, move solitaire.Move) (*Position, store.Outcome) {
	ids := s.canonicalizeBoard()
	if ids == nil {
		return nil, store.Err
	}
	key := s.canon.PackKey(ids)
	cluster := s.computeCluster()

	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}

	outcome, node := s.store.Insert(cluster, depth, key, s.ToStack)
	if outcome == store.Err {
		s.Status = Fail
		return nil, outcome
	}
	if outcome != store.New && outcome != store.FoundBetter {
		return nil, outcome
	}
	s.numGenerated++

	pos := s.allocPosition(len(s.Board.FreeCells))
	pos.Parent = parent
	pos.Node = node
	pos.Move = move
	pos.Cluster = cluster
	pos.Depth = depth
	pos.NumActiveChildren = 0
	copy(pos.FreeCells, s.Board.FreeCells)
	if parent != nil {
		parent.NumActiveChildren++
	}
	return pos, outcome
}

// unpack restores the board's live arrays from a position's packed key,
// cluster, and free-cell snapshot.
func (s *Solver) unpack(pos *Position) {
	k := pos.Cluster
	s.Board.Foundations[0] = k & 0xF
	s.Board.Foundations[1] = (k >> 4) & 0xF
	s.Board.Foundations[2] = (k >> 8) & 0xF
	s.Board.Foundations[3] = (k >> 12) & 0xF

	ids := pile.UnpackKey(pos.Node.Key, len(s.Board.Piles))
	for i, id := range ids {
		s.Board.Piles[i] = []card.Card(s.interner.Pile(id))
	}
	copy(s.Board.FreeCells, pos.FreeCells)
}

// ancestorsOf collects up to solitaire.MaxPrevMove ancestor snapshots of
// pos, nearest first, for the redundant-move pruner.
func (s *Solver) ancestorsOf(pos *Position) []solitaire.Ancestor {
	out := make([]solitaire.Ancestor, 0, solitaire.MaxPrevMove)
	p := pos
	for len(out) < solitaire.MaxPrevMove && p != nil && p.Depth != 0 {
		n := 0
		for _, c := range p.FreeCells {
			if !c.IsEmpty() {
				n++
			}
		}
		out = append(out, solitaire.Ancestor{Move: p.Move, NumInFreeCells: n})
		p = p.Parent
	}
	return out
}

// solve expands one position: generate pruned, prioritized moves, and
// for each either recurse immediately (progress was made, or few
// successors) or enqueue it for later. Returns whether any descendant
// was kept alive (queued, or recursively kept), telling the caller
// whether pos itself must stay around.
func (s *Solver) solve(parent *Position) bool {
	if s.Status != NoSol {
		return false
	}
	if parent.Node.Depth < parent.Depth {
		return false
	}

	s.numChecked++
	if s.MaxNumChecked >= 0 && s.numChecked > s.MaxNumChecked {
		return false
	}

	moves, auto, _ := s.Board.GenerateMoves(s.Params)
	if !auto {
		ancestors := s.ancestorsOf(parent)
		for i := range moves {
			mp := &moves[i]
			if s.Board.PruneSeahaven(*mp) {
				mp.Card = solitaire.NoCard
				continue
			}
			if s.Board.PruneRedundant(*mp, ancestors) {
				mp.Card = solitaire.NoCard
			}
		}
		s.Board.MarkIrreversible(moves, s.Params)
	}

	live := 0
	for _, m := range moves {
		if !m.Pruned() {
			live++
		}
	}

	if live == 0 {
		if s.Board.Won() {
			s.recordWin(parent)
		}
		return false
	}

	if !auto {
		s.Board.Prioritize(moves, s.Params)
	}

	parent.NumActiveChildren = 0
	kept := false
	for _, m := range moves {
		if m.Pruned() {
			continue
		}
		s.Board.Apply(m)

		pos, _ := s.newPosition(parent, m)
		if pos == nil {
			s.Board.Undo(m)
			if s.Status == Fail {
				return false
			}
			continue
		}

		if pos.Cluster != parent.Cluster || live < s.Params.Cutoff {
			q := s.solve(pos)
			s.Board.Undo(m)
			if !q {
				s.freePosition(pos, false)
			}
			kept = kept || q
		} else {
			s.queuePosition(pos, m.Priority)
			s.Board.Undo(m)
			kept = true
		}
	}

	return kept
}

// recordWin walks the parent chain to reconstruct the winning move
// sequence, root to goal. Ported from win()/Noexit handling in pat.c:
// with ContinueAfterWin the solution is recorded but the search keeps
// running instead of stopping at the first win.
func (s *Solver) recordWin(leaf *Position) {
	var moves []solitaire.Move
	for p := leaf; p != nil && p.Depth != 0; p = p.Parent {
		moves = append(moves, p.Move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	s.movesToWin = moves
	s.numSolutions++
	if s.ContinueAfterWin {
		return
	}
	s.Status = Win
}

// queuePosition enqueues pos at priority pri, boosted by the
// queue-squash term derived from the total number of cards already on
// foundations.
func (s *Solver) queuePosition(pos *Position, pri int) {
	nout := s.Board.Foundations[0] + s.Board.Foundations[1] + s.Board.Foundations[2] + s.Board.Foundations[3]
	x := (s.Params.Y[0]*float64(nout)+s.Params.Y[1])*float64(nout) + s.Params.Y[2]
	pri += int(math.Floor(x + 0.5))
	if pri < 0 {
		pri = 0
	} else if pri >= numQueues {
		pri = numQueues - 1
	}
	if pri > s.maxQueueIdx {
		s.maxQueueIdx = pri
	}

	pos.queueNext = nil
	if s.queueHead[pri] == nil {
		s.queueHead[pri] = pos
		s.queueTail[pri] = pos
	} else if s.ToStack {
		pos.queueNext = s.queueHead[pri]
		s.queueHead[pri] = pos
	} else {
		s.queueTail[pri].queueNext = pos
		s.queueTail[pri] = pos
	}
}

// dequeuePosition implements the prioritized round-robin sweep:
// sweeps start at maxQueueIdx and step qpos down; when qpos crosses
// minPos, minPos itself steps down too, widening the next sweep. This
// services the highest-priority queues the most while still draining
// low-priority ones.
func (s *Solver) dequeuePosition() *Position {
	last := false
	qpos := s.dequeueQPos
	minPos := s.dequeueMinPos
	for {
		qpos--
		if qpos < minPos {
			if last {
				s.dequeueQPos, s.dequeueMinPos = qpos, minPos
				return nil
			}
			qpos = s.maxQueueIdx
			minPos--
			if minPos < 0 {
				minPos = s.maxQueueIdx
			}
			if minPos == 0 {
				last = true
			}
		}
		if s.queueHead[qpos] != nil {
			break
		}
	}

	pos := s.queueHead[qpos]
	s.queueHead[qpos] = pos.queueNext

	for s.queueHead[qpos] == nil && qpos == s.maxQueueIdx && s.maxQueueIdx > 0 {
		s.maxQueueIdx--
		qpos--
		if qpos < minPos {
			minPos = qpos
		}
	}

	s.dequeueQPos, s.dequeueMinPos = qpos, minPos
	s.unpack(pos)
	return pos
}

// FormatMove renders one move in the solution-trace text format
// (patmain.c's trace_solution).
func FormatMove(m solitaire.Move) string {
	switch m.ToType {
	case solitaire.FreeCell:
		return fmt.Sprintf("%s to temp", m.Card)
	case solitaire.Foundation:
		return fmt.Sprintf("%s out", m.Card)
	default:
		if m.DestCard.IsEmpty() {
			return fmt.Sprintf("%s to empty pile", m.Card)
		}
		return fmt.Sprintf("%s to %s", m.Card, m.DestCard)
	}
}
