// Package solitaire implements the move generator, pruners, and
// prioritizer over the live working arrays of a Freecell/Seahaven
// position. Grounded on pat.c's get_possible_moves/prune_seahaven/
// prune_redundant/prioritize, with internal/board/movegen.go (phase-
// ordered generation into a fixed MoveList) and internal/engine/
// ordering.go (additive move scoring) contributing the Go idiom.
package solitaire

import "github.com/tholroyd/patsolve/internal/card"

// PileKind tags which array a move's endpoint lives in.
type PileKind int

const (
	Work PileKind = iota
	FreeCell
	Foundation
)

// Move mirrors fcs_pats__move_t: the moved card, its endpoints, the
// card it uncovers at the source and the card it lands on (or Empty for
// an empty destination), and a signed priority.
type Move struct {
	Card          card.Card
	From, To      int
	FromType      PileKind
	ToType        PileKind
	UncoveredCard card.Card // srccard: card exposed at From after this move
	DestCard      card.Card // destcard: card previously atop To
	Priority      int
}

// NoCard marks an unused Move (pruned in place, matching pat.c's
// mp->card = NONE sentinel).
const NoCard = card.Empty

func (m Move) Pruned() bool { return m.Card == NoCard }
