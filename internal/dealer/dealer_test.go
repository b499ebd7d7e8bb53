package dealer

import "testing"

// referenceDeals holds the full Freecell layout msdeal.c produces for
// each board number, transcribed from an independent re-implementation
// of its LCG and shuffle-then-deal loop (deal_ms.h/msdeal.c). Board #1
// is also the well-known public MS Freecell game #1 deal, used as a
// sanity anchor for the other three.
var referenceDeals = map[int64][8][]string{
	1: {
		{"JD", "KD", "2S", "4C", "3S", "6D", "6S"},
		{"2D", "KC", "KS", "5C", "TD", "8S", "9C"},
		{"9H", "9S", "9D", "TS", "4S", "8D", "2H"},
		{"JC", "5S", "QD", "QH", "TH", "QS", "6H"},
		{"5D", "AD", "JS", "4H", "8H", "6C"},
		{"7H", "QC", "AS", "AC", "2C", "3D"},
		{"7C", "KH", "AH", "4D", "JH", "8C"},
		{"5H", "3H", "3C", "7S", "7D", "TC"},
	},
	2: {
		{"QD", "4D", "TD", "7S", "AH", "3H", "AS"},
		{"QC", "JD", "JC", "9D", "9S", "AD", "5S"},
		{"KC", "JS", "8C", "KS", "TC", "7H", "TH"},
		{"3C", "6H", "6C", "7C", "2S", "3D", "JH"},
		{"4C", "QS", "8S", "6S", "3S", "5H"},
		{"2C", "6D", "4S", "4H", "TS", "8D"},
		{"KD", "2D", "5D", "AC", "9H", "KH"},
		{"5C", "9C", "QH", "8H", "2H", "7D"},
	},
	617: {
		{"7D", "TD", "TH", "KD", "4C", "4S", "JD"},
		{"AD", "7S", "QC", "5H", "QS", "TS", "KS"},
		{"5C", "QD", "3H", "9S", "9C", "2H", "KC"},
		{"3S", "AC", "9D", "3C", "9H", "5D", "4H"},
		{"5S", "6D", "6S", "8S", "7C", "JC"},
		{"8C", "8H", "8D", "7H", "6H", "6C"},
		{"2D", "AS", "3D", "4D", "2C", "JH"},
		{"AH", "KH", "TC", "JS", "2S", "QH"},
	},
	1941: {
		{"9D", "6S", "4D", "AH", "5C", "4H", "KH"},
		{"JH", "JC", "JS", "7S", "6D", "AC", "4S"},
		{"AD", "8D", "AS", "2H", "KC", "KD", "7H"},
		{"KS", "TS", "9S", "8H", "JD", "QD", "3H"},
		{"TC", "4C", "2S", "5D", "3S", "6H"},
		{"3C", "QC", "5S", "QS", "QH", "7D"},
		{"9H", "5H", "7C", "6C", "3D", "TD"},
		{"2C", "8C", "8S", "TH", "2D", "9C"},
	},
}

func TestFreecellGame1MatchesReference(t *testing.T) {
	d := Freecell(1)
	if len(d.Piles) != 8 {
		t.Fatalf("got %d piles, want 8", len(d.Piles))
	}
	for i, p := range d.Piles {
		want := 7
		if i >= 4 {
			want = 6
		}
		if len(p) != want {
			t.Errorf("pile %d: got %d cards, want %d", i, len(p), want)
		}
	}
	top := d.Piles[0][0]
	if got := top.String(); got != referenceDeals[1][0][0] {
		t.Fatalf("pile 0 card 0 = %q, want %q", got, referenceDeals[1][0][0])
	}
}

func TestFreecellMatchesReferenceBoards(t *testing.T) {
	for _, game := range []int64{1, 2, 617, 1941} {
		want := referenceDeals[game]
		d := Freecell(game)
		if len(d.Piles) != 8 {
			t.Fatalf("game %d: got %d piles, want 8", game, len(d.Piles))
		}
		for i, pile := range d.Piles {
			if len(pile) != len(want[i]) {
				t.Fatalf("game %d pile %d: got %d cards, want %d", game, i, len(pile), len(want[i]))
			}
			for j, c := range pile {
				if got := c.String(); got != want[i][j] {
					t.Errorf("game %d pile %d card %d = %q, want %q", game, i, j, got, want[i][j])
				}
			}
		}
	}
}

func TestFreecellDealIsAFullDeck(t *testing.T) {
	d := Freecell(1)
	seen := map[string]bool{}
	for _, p := range d.Piles {
		for _, c := range p {
			seen[c.String()] = true
		}
	}
	if len(seen) != 52 {
		t.Fatalf("deal contains %d distinct cards, want 52", len(seen))
	}
}

func TestFreecellDeterministic(t *testing.T) {
	a := Freecell(11982)
	b := Freecell(11982)
	for i := range a.Piles {
		if len(a.Piles[i]) != len(b.Piles[i]) {
			t.Fatalf("pile %d length mismatch across identical deals", i)
		}
		for j := range a.Piles[i] {
			if a.Piles[i][j] != b.Piles[i][j] {
				t.Fatalf("pile %d card %d differs across identical deals", i, j)
			}
		}
	}
}

func TestSeahavenLayoutShape(t *testing.T) {
	d := Seahaven(1)
	if len(d.Piles) != 10 {
		t.Fatalf("got %d piles, want 10", len(d.Piles))
	}
	for i, p := range d.Piles {
		if len(p) != 5 {
			t.Errorf("pile %d: got %d cards, want 5", i, len(p))
		}
	}
	if len(d.FreeCells) != 2 {
		t.Fatalf("got %d leftover free cells, want 2", len(d.FreeCells))
	}
}
