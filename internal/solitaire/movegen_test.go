package solitaire

import (
	"testing"

	"github.com/tholroyd/patsolve/internal/card"
)

func TestGenerateMovesAutomoveShortCircuits(t *testing.T) {
	b := NewBoard(freecellCfg())
	b.Piles[0] = []card.Card{card.New(card.Ace, card.Clubs)}
	for i := 1; i < 8; i++ {
		b.Piles[i] = nil
	}

	moves, auto, _ := b.GenerateMoves(Params{})
	if !auto {
		t.Fatal("an ace to an empty foundation should always automove")
	}
	if len(moves) != 1 || moves[0].ToType != Foundation {
		t.Fatalf("automove result = %+v", moves)
	}
}

func TestGenerateMovesWorkToWork(t *testing.T) {
	b := NewBoard(freecellCfg())
	b.Piles[0] = []card.Card{card.New(6, card.Hearts)}
	b.Piles[1] = []card.Card{card.New(5, card.Spades)}

	moves, auto, _ := b.GenerateMoves(Params{})
	if auto {
		t.Fatal("did not expect an automove")
	}
	found := false
	for _, m := range moves {
		if m.FromType == Work && m.ToType == Work && m.From == 1 && m.To == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 5S onto 6H among generated moves, got %+v", moves)
	}
}

func TestGenerateMovesRespectsKingOnlyEmptyPile(t *testing.T) {
	cfg := freecellCfg()
	cfg.KingOnly = true
	b := NewBoard(cfg)
	b.Piles[0] = nil
	b.Piles[1] = []card.Card{card.New(9, card.Hearts), card.New(5, card.Spades)}

	moves, _, _ := b.GenerateMoves(Params{})
	for _, m := range moves {
		if m.FromType == Work && m.ToType == Work && m.To == 0 {
			t.Fatalf("non-king move to empty pile should be rejected in king-only mode: %+v", m)
		}
	}
}

func TestGoodAutomoveRaymondsRule(t *testing.T) {
	cfg := freecellCfg()
	// Both foundations of the opposite color are already well ahead: safe.
	foundations := [4]int{5, 5, 5, 5}
	if !goodAutomove(cfg, foundations, card.Hearts, 6) {
		t.Fatal("expected a safe automove when opposite-color foundations are ahead")
	}
	// Opposite-color foundations far behind: not safe to automove a middling card.
	behind := [4]int{0, 0, 6, 6}
	if goodAutomove(cfg, behind, card.Hearts, 6) {
		t.Fatal("expected automove to be refused when opposite-color foundations lag")
	}
}
