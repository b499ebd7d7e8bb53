package solitaire

import "github.com/tholroyd/patsolve/internal/card"

// Config captures the per-variant rules: Freecell (alternating color) or
// Seahaven (same suit), king-only or any-card on empty piles, and the
// pile/freecell counts (-w/-t on the CLI).
type Config struct {
	SameSuit     bool
	KingOnly     bool
	NumWorkPiles int
	NumFreeCells int
}

// Board is the live working state the move generator, pruners, and
// prioritizer read and mutate in place: the work piles, free cells, and
// per-suit foundation ranks (0 meaning empty, matching spec.md §3).
type Board struct {
	Cfg         Config
	Piles       [][]card.Card
	FreeCells   []card.Card
	Foundations [4]int
}

func NewBoard(cfg Config) *Board {
	return &Board{
		Cfg:       cfg,
		Piles:     make([][]card.Card, cfg.NumWorkPiles),
		FreeCells: make([]card.Card, cfg.NumFreeCells),
	}
}

// IsSuitable implements (Same_suit ? suit(a)==suit(b) : color(a)!=color(b)).
func (b *Board) IsSuitable(a, dst card.Card) bool {
	if b.Cfg.SameSuit {
		return a.Suit() == dst.Suit()
	}
	return a.Color() != dst.Color()
}

// CanStartEmptyPile implements fcs_pats_is_king_only: any card qualifies
// unless king-only mode is active, in which case only a king does.
func (b *Board) CanStartEmptyPile(c card.Card) bool {
	return !b.Cfg.KingOnly || c.Rank() == card.King
}

// Apply performs a single-card move in place, returning nothing —
// callers are expected to have validated the move via the generator.
// Mirrors pat.c's make_move (card removal at From, placement at To).
func (b *Board) Apply(m Move) {
	switch m.FromType {
	case Work:
		p := b.Piles[m.From]
		b.Piles[m.From] = p[:len(p)-1]
	case FreeCell:
		b.FreeCells[m.From] = card.Empty
	}
	switch m.ToType {
	case Work:
		b.Piles[m.To] = append(b.Piles[m.To], m.Card)
	case FreeCell:
		b.FreeCells[m.To] = m.Card
	case Foundation:
		b.Foundations[m.Card.Suit()] = m.Card.Rank()
	}
}

// Undo reverses Apply; a foundation move is undone by setting that
// suit's foundation to one rank below the moved card. Callers pass the
// same Move just applied.
func (b *Board) Undo(m Move) {
	switch m.ToType {
	case Work:
		p := b.Piles[m.To]
		b.Piles[m.To] = p[:len(p)-1]
	case FreeCell:
		b.FreeCells[m.To] = card.Empty
	case Foundation:
		b.Foundations[m.Card.Suit()] = m.Card.Rank() - 1
	}
	switch m.FromType {
	case Work:
		b.Piles[m.From] = append(b.Piles[m.From], m.Card)
	case FreeCell:
		b.FreeCells[m.From] = m.Card
	}
}

func (b *Board) emptyWorkPile() int {
	for i, p := range b.Piles {
		if len(p) == 0 {
			return i
		}
	}
	return -1
}

func (b *Board) emptyFreeCell() int {
	for i, c := range b.FreeCells {
		if c.IsEmpty() {
			return i
		}
	}
	return -1
}

// Won reports whether all four foundations are at King.
func (b *Board) Won() bool {
	for _, r := range b.Foundations {
		if r != card.King {
			return false
		}
	}
	return true
}
