package solitaire

import "github.com/tholroyd/patsolve/internal/card"

// goodAutomove implements pat.c's good_automove, including Raymond's
// rule: an automove is safe once opposite-color foundations are close
// enough behind that a player could never need the card back.
func goodAutomove(cfg Config, foundations [4]int, suit, rank int) bool {
	if cfg.SameSuit || rank <= 2 {
		return true
	}
	color := card.New(rank, suit).Color()
	var opposite []int
	for s := 0; s < 4; s++ {
		if card.New(card.Ace, s).Color() != color {
			opposite = append(opposite, s)
		}
	}
	for _, i := range opposite {
		if foundations[i] < rank-1 {
			for _, j := range opposite {
				if foundations[j] < rank-2 {
					return false
				}
			}
			// 3-suit is the other suit of the same color (C/S, D/H).
			if foundations[3-suit] < rank-3 {
				return false
			}
			return true
		}
	}
	return true
}

// GenerateMoves enumerates moves from the current board, following the
// seven phases of pat.c's get_possible_moves. If an automove is found in
// phases 1-2 it is returned alone with auto=true, short-circuiting the
// rest of generation. Otherwise the returned slice places ordinary
// moves (phases 3-7) before refused-automove foundation candidates
// (phases 1-2), matching get_moves()'s final reordering; numOut is the
// count of those refused candidates, trailing in the slice.
func (b *Board) GenerateMoves(params Params) (moves []Move, auto bool, numOut int) {
	var foundationCandidates []Move

	for w, p := range b.Piles {
		if len(p) == 0 {
			continue
		}
		c := p[len(p)-1]
		suit := c.Suit()
		rank := c.Rank()
		empty := b.Foundations[suit] == 0
		if (empty && rank == card.Ace) || (!empty && rank == b.Foundations[suit]+1) {
			m := Move{Card: c, From: w, FromType: Work, To: suit, ToType: Foundation}
			if len(p) > 1 {
				m.UncoveredCard = p[len(p)-2]
			}
			if goodAutomove(b.Cfg, b.Foundations, suit, rank) {
				return []Move{m}, true, 0
			}
			foundationCandidates = append(foundationCandidates, m)
		}
	}

	for t, c := range b.FreeCells {
		if c.IsEmpty() {
			continue
		}
		suit := c.Suit()
		rank := c.Rank()
		empty := b.Foundations[suit] == 0
		if (empty && rank == card.Ace) || (!empty && rank == b.Foundations[suit]+1) {
			m := Move{Card: c, From: t, FromType: FreeCell, To: suit, ToType: Foundation}
			if goodAutomove(b.Cfg, b.Foundations, suit, rank) {
				return []Move{m}, true, 0
			}
			foundationCandidates = append(foundationCandidates, m)
		}
	}

	numOut = len(foundationCandidates)
	var other []Move

	emptyW := b.emptyWorkPile()

	// Work (non-singleton) -> empty work pile.
	if emptyW >= 0 {
		for i, p := range b.Piles {
			if i == emptyW || len(p) <= 1 {
				continue
			}
			top := p[len(p)-1]
			if b.CanStartEmptyPile(top) {
				other = append(other, Move{
					Card: top, From: i, FromType: Work, To: emptyW, ToType: Work,
					UncoveredCard: p[len(p)-2], Priority: params.X[3],
				})
			}
		}
	}

	// Work -> non-empty work pile top.
	for i, p := range b.Piles {
		if len(p) == 0 {
			continue
		}
		top := p[len(p)-1]
		for w, dp := range b.Piles {
			if w == i || len(dp) == 0 {
				continue
			}
			dst := dp[len(dp)-1]
			if top.Rank() == dst.Rank()-1 && b.IsSuitable(top, dst) {
				m := Move{Card: top, From: i, FromType: Work, To: w, ToType: Work, DestCard: dst, Priority: params.X[4]}
				if len(p) > 1 {
					m.UncoveredCard = p[len(p)-2]
				}
				other = append(other, m)
			}
		}
	}

	// FreeCell -> non-empty work pile top.
	for t, c := range b.FreeCells {
		if c.IsEmpty() {
			continue
		}
		for w, dp := range b.Piles {
			if len(dp) == 0 {
				continue
			}
			dst := dp[len(dp)-1]
			if c.Rank() == dst.Rank()-1 && b.IsSuitable(c, dst) {
				other = append(other, Move{Card: c, From: t, FromType: FreeCell, To: w, ToType: Work, DestCard: dst, Priority: params.X[5]})
			}
		}
	}

	// FreeCell -> empty work pile.
	if emptyW >= 0 {
		for t, c := range b.FreeCells {
			if c.IsEmpty() {
				continue
			}
			if b.CanStartEmptyPile(c) {
				other = append(other, Move{Card: c, From: t, FromType: FreeCell, To: emptyW, ToType: Work, Priority: params.X[6]})
			}
		}
	}

	// Work -> empty free cell.
	if emptyT := b.emptyFreeCell(); emptyT >= 0 {
		for w, p := range b.Piles {
			if len(p) == 0 {
				continue
			}
			top := p[len(p)-1]
			m := Move{Card: top, From: w, FromType: Work, To: emptyT, ToType: FreeCell, Priority: params.X[7]}
			if len(p) > 1 {
				m.UncoveredCard = p[len(p)-2]
			}
			other = append(other, m)
		}
	}

	return append(other, foundationCandidates...), false, numOut
}
