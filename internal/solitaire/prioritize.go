package solitaire

import "github.com/tholroyd/patsolve/internal/card"

// NNeed bounds how many piles the needed-card scan records, matching
// pat.c's NNEED.
const NNeed = 8

// neededCards returns, per suit, the next card each foundation would
// accept, or card.Empty once a foundation is already at King.
func (b *Board) neededCards() [4]card.Card {
	var need [4]card.Card
	for s := 0; s < 4; s++ {
		switch {
		case b.Foundations[s] == 0:
			need[s] = card.New(card.Ace, s)
		case b.Foundations[s] != card.King:
			need[s] = card.New(b.Foundations[s]+1, s)
		default:
			need[s] = card.Empty
		}
	}
	return need
}

// Prioritize mutates each move's Priority in place: moves that free up a
// pile holding a needed card (or the card just behind it) are favored;
// moves that bury a needed card under another work pile are penalized.
// Grounded on pat.c's prioritize(), with the teacher's ordering.go
// contributing the additive-scoring idiom.
func (b *Board) Prioritize(moves []Move, params Params) {
	need := b.neededCards()

	var piles []int
	for w, p := range b.Piles {
		if len(piles) >= NNeed {
			break
		}
		for _, c := range p {
			s := c.Suit()
			if need[s].IsEmpty() {
				continue
			}
			next := card.New(need[s].Rank()+1, s)
			if c == need[s] || (need[s].Rank() < card.King && c == next) {
				piles = append(piles, w)
				break
			}
		}
	}

	inList := func(w int) bool {
		for _, p := range piles {
			if p == w {
				return true
			}
		}
		return false
	}

	for i := range moves {
		mp := &moves[i]
		if mp.Pruned() {
			continue
		}
		if mp.FromType == Work {
			if inList(mp.From) {
				mp.Priority += params.X[0]
			}
			p := b.Piles[mp.From]
			if len(p) > 1 {
				second := p[len(p)-2]
				for s := 0; s < 4; s++ {
					if second == need[s] {
						mp.Priority += params.X[1]
						break
					}
				}
			}
		}
		if mp.ToType == Work && mp.FromType == Work && inList(mp.To) {
			mp.Priority -= params.X[2]
		}
	}
}

// MarkIrreversible adds params.X[8] to moves that real progress can't
// undo: foundation moves, work moves that can't be stacked back onto
// what they uncovered, and (in king-only mode) moves that empty a pile
// with a non-king, which a king-only empty-pile rule can never refill
// with that same card.
func (b *Board) MarkIrreversible(moves []Move, params Params) {
	for i := range moves {
		mp := &moves[i]
		if mp.Pruned() {
			continue
		}
		irreversible := false
		switch {
		case mp.ToType == Foundation:
			irreversible = true
		case mp.FromType == Work:
			if !mp.UncoveredCard.IsEmpty() {
				if mp.Card.Rank() != mp.UncoveredCard.Rank()-1 || !b.IsSuitable(mp.Card, mp.UncoveredCard) {
					irreversible = true
				}
			} else if b.Cfg.KingOnly && mp.Card.Rank() != card.King {
				irreversible = true
			}
		}
		if irreversible {
			mp.Priority += params.X[8]
		}
	}
}
