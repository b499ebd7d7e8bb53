package solitaire

import (
	"testing"

	"github.com/tholroyd/patsolve/internal/card"
)

func seahavenKingCfg() Config {
	return Config{SameSuit: true, KingOnly: true, NumWorkPiles: 10, NumFreeCells: 4}
}

func TestPruneSeahavenRejectsUnwindableRun(t *testing.T) {
	cfg := seahavenKingCfg() // 4 free cells, so a run of 5+ same-suit cards can't be unwound
	b := NewBoard(cfg)
	// Destination pile already holds a descending same-suit run 9,8,7,6,5 of hearts,
	// with a smaller heart (2) buried further down — extending it with a 4 is unsolvable in place.
	b.Piles[0] = []card.Card{
		card.New(2, card.Hearts),
		card.New(9, card.Hearts),
		card.New(8, card.Hearts),
		card.New(7, card.Hearts),
		card.New(6, card.Hearts),
		card.New(5, card.Hearts),
	}
	m := Move{Card: card.New(4, card.Hearts), From: 1, FromType: Work, To: 0, ToType: Work}
	if !b.PruneSeahaven(m) {
		t.Fatal("expected the move to be pruned: it extends an unwindable same-suit run over a buried smaller card")
	}
}

func TestPruneSeahavenAllowsShortRun(t *testing.T) {
	cfg := seahavenKingCfg()
	b := NewBoard(cfg)
	b.Piles[0] = []card.Card{card.New(8, card.Hearts)}
	m := Move{Card: card.New(7, card.Hearts), From: 1, FromType: Work, To: 0, ToType: Work}
	if b.PruneSeahaven(m) {
		t.Fatal("a short run should not be pruned")
	}
}

func TestPruneSeahavenOnlyAppliesInSameSuitKingOnly(t *testing.T) {
	b := NewBoard(freecellCfg())
	m := Move{Card: card.New(10, card.Hearts), From: 1, FromType: Work, To: 0, ToType: Work}
	if b.PruneSeahaven(m) {
		t.Fatal("PruneSeahaven should be a no-op outside same-suit + king-only mode")
	}
}

func TestPruneRedundantImmediateSameCard(t *testing.T) {
	b := NewBoard(freecellCfg())
	c := card.New(5, card.Hearts)
	ancestors := []Ancestor{{Move: Move{Card: c}, NumInFreeCells: 0}}
	mp := Move{Card: c}
	if !b.PruneRedundant(mp, ancestors) {
		t.Fatal("moving the same card twice in a row should be pruned")
	}
}

func TestPruneRedundantNoAncestorsAllowsMove(t *testing.T) {
	b := NewBoard(freecellCfg())
	mp := Move{Card: card.New(5, card.Hearts)}
	if b.PruneRedundant(mp, nil) {
		t.Fatal("with no ancestors (root position) nothing should be pruned")
	}
}

func TestPruneRedundantFreeCellWorkThenWorkFreeCellUndoesItself(t *testing.T) {
	b := NewBoard(freecellCfg())
	c := card.New(5, card.Hearts)
	// Ancestor: moved c from a free cell onto a work pile.
	ancestors := []Ancestor{
		{Move: Move{Card: card.New(9, card.Spades)}, NumInFreeCells: 1}, // intervening move, does not touch c
		{Move: Move{Card: c, FromType: FreeCell, ToType: Work}, NumInFreeCells: 2},
	}
	// Candidate: move c straight back from work to a free cell.
	mp2 := Move{Card: c, FromType: Work, ToType: FreeCell}
	if !b.PruneRedundant(mp2, ancestors) {
		t.Fatal("moving a card back to a free cell right after taking it out should be pruned absent an intervening use")
	}
}
