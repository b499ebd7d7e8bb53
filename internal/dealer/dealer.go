// Package dealer deals Microsoft-compatible Freecell and Seahaven
// layouts from a 64-bit game number. Grounded on
// range_solvers_gen_ms_boards.h's get_board_l, with the struct+next()
// seeded-PRNG idiom adapted from internal/board/zobrist.go's prng.
package dealer

import "github.com/tholroyd/patsolve/internal/card"

// rng reproduces the Windows C runtime's rand(): a linear-congruential
// generator with a fixed multiplier and increment, exposing both the
// 15-bit and 16-bit truncations the original dealer alternates between.
type rng struct {
	seed int64
}

func newRNG(gameNumber int64) *rng {
	seed := gameNumber
	if gameNumber >= 0x100000000 {
		seed = gameNumber - 0x100000000
	}
	return &rng{seed: uint32Wrap(seed)}
}

func uint32Wrap(v int64) int64 {
	return int64(uint32(v))
}

func (r *rng) step() uint32 {
	r.seed = uint32Wrap(r.seed*214013 + 2531011)
	return uint32(r.seed)
}

// rand15 returns the high 15 bits of one LCG step (game < 2^31).
func (r *rng) rand15() uint32 { return (r.step() >> 16) & 0x7fff }

// rand16 returns the high 16 bits of one LCG step (game >= 2^32).
func (r *rng) rand16() uint32 { return (r.step() >> 16) & 0xffff }

// gameNumRand implements microsoft_rand__game_num_rand: the three-range
// dispatch by game number magnitude that the MS dealer uses for every
// shuffle draw.
func (r *rng) gameNumRand(gameNumber int64) uint32 {
	if gameNumber < 0x100000000 {
		v := r.rand15()
		if gameNumber >= 0x80000000 {
			v |= 0x8000
		}
		return v
	}
	return r.rand16() + 1
}

// shuffle returns the 52 cards of a standard deck (0..51, VALUE =
// card>>2, SUIT = card&3) permuted by the Fisher-Yates-style draw the
// MS dealer performs, in MS encoding order (rank-major, i.e. card i has
// suit i%4 and value i/4 — matching the deck[i] = i seeding loop).
func shuffle(gameNumber int64) [52]card.Card {
	var deck [52]card.Card
	for i := 0; i < 52; i++ {
		deck[i] = card.New(i/4+1, i%4)
	}

	r := newRNG(gameNumber)
	left := 52
	var drawn [52]card.Card
	for i := 0; i < 52; i++ {
		j := int(r.gameNumRand(gameNumber)) % left
		drawn[i] = deck[j]
		left--
		deck[j] = deck[left]
	}
	return drawn
}

// Deal is a dealt layout: NWP work piles (bottom first) and any cards
// the variant leaves in free cells (Seahaven only).
type Deal struct {
	Piles     [][]card.Card
	FreeCells []card.Card
}

// Freecell deals the standard MS Freecell layout: 52 cards dealt
// round-robin across 8 piles, the first 4 receiving 7 cards and the
// last 4 receiving 6, matching get_board_l's card[i%8][i/8] placement.
func Freecell(gameNumber int64) Deal {
	drawn := shuffle(gameNumber)
	piles := make([][]card.Card, 8)
	idx := 0
	for row := 0; row < 7; row++ {
		for stack := 0; stack < 8; stack++ {
			if row == 6 && stack >= 4 {
				continue
			}
			piles[stack] = append(piles[stack], drawn[idx])
			idx++
		}
	}
	return Deal{Piles: piles}
}

// Seahaven deals the same round-robin shuffle into 10 work piles of 5
// cards each (50 cards), with the remaining 2 cards placed in free
// cells — the conventional Seahaven board-number convention layered
// atop the shared MS shuffle.
func Seahaven(gameNumber int64) Deal {
	drawn := shuffle(gameNumber)
	piles := make([][]card.Card, 10)
	idx := 0
	for row := 0; row < 5; row++ {
		for stack := 0; stack < 10; stack++ {
			piles[stack] = append(piles[stack], drawn[idx])
			idx++
		}
	}
	free := make([]card.Card, 0, 2)
	for ; idx < 52; idx++ {
		free = append(free, drawn[idx])
	}
	return Deal{Piles: piles, FreeCells: free}
}
