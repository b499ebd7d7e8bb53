package solitaire

import "github.com/tholroyd/patsolve/internal/card"

// MaxPrevMove bounds the ancestor lookback of PruneRedundant, matching
// pat.c's MAXPREVMOVE. The original comment notes increasing it past 4
// doesn't help much.
const MaxPrevMove = 4

// PruneSeahaven implements pat.c's prune_seahaven: in Seahaven (same
// suit) + king-only mode, reject a work-to-work move that would extend
// an already-long same-suit descending run on top of a smaller card of
// that suit still buried in the pile — such a run can never be
// unwound with only NumFreeCells cells free.
func (b *Board) PruneSeahaven(m Move) bool {
	if !b.Cfg.SameSuit || !b.Cfg.KingOnly || m.FromType != Work || m.ToType != Work {
		return false
	}
	w := b.Piles[m.To]
	suit := m.Card.Suit()
	r := m.Card.Rank() + 1

	j := 0
	for i := len(w) - 1; i >= 0; i-- {
		if w[i].Suit() == suit && w[i].Rank() == r+j {
			j++
		}
	}
	if j < b.Cfg.NumFreeCells+1 {
		return false
	}

	r--
	for i := 0; i < len(w); i++ {
		if w[i].Suit() == suit && w[i].Rank() < r {
			return true
		}
	}
	return false
}

// Ancestor is the minimal per-position history PruneRedundant needs:
// the move that created that position from its parent, and the number
// of free cells occupied at that position. Ancestors[0] is the position
// being expanded; Ancestors[1] its parent; and so on, up to
// MaxPrevMove deep. A short slice (fewer than the lookback needs)
// signals the root was reached, exactly like pos->depth == 0 in pat.c.
type Ancestor struct {
	Move           Move
	NumInFreeCells int
}

// PruneRedundant implements the intended behavior of pat.c's
// prune_redundant: scan up to MaxPrevMove ancestors for a previous move
// of the same card, then apply a decision table to tell whether the
// candidate move would just undo work already proven unnecessary.
//
// The reference C fixes `m` to ancestors[0]'s move before the lookback
// loop and never advances it, so in the shipped binary the loop's match
// check is vacuous and only the immediate "same card twice in a row"
// case at the top ever fires. This implementation follows the scan as
// documented (each ancestor's own move is compared), which is what
// produces the decision table's stated behavior.
func (b *Board) PruneRedundant(mp Move, ancestors []Ancestor) bool {
	if len(ancestors) == 0 {
		return false
	}
	if ancestors[0].Move.Card == mp.Card {
		return true
	}
	if len(ancestors) < 2 {
		return false
	}

	j := -1
	for i := 1; i < MaxPrevMove; i++ {
		if i >= len(ancestors) {
			return false
		}
		if ancestors[i].Move.Card == mp.Card {
			j = i
			break
		}
	}
	if j < 0 {
		return false
	}

	zerot := false
	for i := 0; i < j; i++ {
		if ancestors[i].NumInFreeCells == b.Cfg.NumFreeCells {
			zerot = true
		}
	}

	m := ancestors[j].Move
	prev := ancestors[:j]

	switch {
	case m.FromType == FreeCell && m.ToType == Work && mp.FromType == Work && mp.ToType == FreeCell:
		if zerot {
			return false
		}
		if cardIsDest(mp.Card, prev) {
			return false
		}
		return true

	case (m.FromType == Work && m.ToType == FreeCell && mp.FromType == FreeCell && mp.ToType == Work) ||
		(m.FromType == Work && m.ToType == Work && mp.FromType == Work && mp.ToType == Work):
		if m.UncoveredCard != mp.DestCard {
			return false
		}
		if cardMoved(mp.DestCard, prev) || cardIsDest(mp.DestCard, prev) {
			return false
		}
		return true

	case m.FromType == Work && m.ToType == Work && mp.FromType == Work && mp.ToType == FreeCell:
		if ancestors[j].NumInFreeCells != b.Cfg.NumFreeCells && !zerot {
			return true
		}
		return false

	case m.FromType == FreeCell && m.ToType == Work && mp.FromType == Work && mp.ToType == Work:
		if cardMoved(mp.DestCard, prev) || cardIsDest(mp.DestCard, prev) {
			return false
		}
		return true
	}

	return false
}

func cardMoved(c card.Card, ancestors []Ancestor) bool {
	for _, a := range ancestors {
		if a.Move.Card == c {
			return true
		}
	}
	return false
}

func cardIsDest(c card.Card, ancestors []Ancestor) bool {
	for _, a := range ancestors {
		if a.Move.DestCard == c {
			return true
		}
	}
	return false
}
