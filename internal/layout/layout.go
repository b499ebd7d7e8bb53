// Package layout parses and renders the ASCII board-text format: one
// line per work pile, optional free-cell and foundation lines.
// Grounded on read_layout.h/print_layout.h, with the teacher's
// fen.go contributing the tokenize-then-validate parsing idiom.
package layout

import (
	"fmt"
	"strings"

	"github.com/tholroyd/patsolve/internal/card"
)

// Layout is a parsed board: work piles (bottom first), free-cell
// contents, and per-suit foundation ranks (0 meaning empty).
type Layout struct {
	Piles       [][]card.Card
	FreeCells   []card.Card
	Foundations [4]int
}

func isEmptyMarker(tok string) bool { return tok == "*" || tok == "-" }

// Parse reads a layout from text. Lines are whitespace-separated
// two-character cards; a line may instead open with FC:/Freecells:/
// Freecell: for free cells, or Decks:/Foundations:/Foundation: for
// foundation ranks (each match case-insensitive), otherwise it is
// read as one work pile. Foundation tokens are either a bare suit
// letter (meaning empty) or a two-character card naming the top rank
// already placed.
func Parse(text string) (Layout, error) {
	var l Layout
	for lineNum, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		head := strings.ToLower(fields[0])

		switch {
		case head == "fc:" || head == "freecells:" || head == "freecell:":
			cells, err := parseCards(fields[1:])
			if err != nil {
				return Layout{}, fmt.Errorf("line %d: %w", lineNum+1, err)
			}
			l.FreeCells = cells

		case head == "decks:" || head == "foundations:" || head == "foundation:":
			if err := parseFoundations(&l, fields[1:]); err != nil {
				return Layout{}, fmt.Errorf("line %d: %w", lineNum+1, err)
			}

		default:
			pile, err := parseCards(fields)
			if err != nil {
				return Layout{}, fmt.Errorf("line %d: %w", lineNum+1, err)
			}
			l.Piles = append(l.Piles, pile)
		}
	}
	return l, nil
}

func parseCards(tokens []string) ([]card.Card, error) {
	out := make([]card.Card, 0, len(tokens))
	for _, t := range tokens {
		if isEmptyMarker(t) {
			out = append(out, card.Empty)
			continue
		}
		c, ok := card.Parse(t)
		if !ok {
			return nil, fmt.Errorf("bad card %q", t)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseFoundations(l *Layout, tokens []string) error {
	for _, t := range tokens {
		if isEmptyMarker(t) {
			continue
		}
		if len(t) == 1 {
			suit := suitIndex(t[0])
			if suit < 0 {
				return fmt.Errorf("bad foundation suit %q", t)
			}
			l.Foundations[suit] = 0
			continue
		}
		c, ok := card.Parse(t)
		if !ok {
			return fmt.Errorf("bad foundation card %q", t)
		}
		l.Foundations[c.Suit()] = c.Rank()
	}
	return nil
}

func suitIndex(b byte) int {
	switch b {
	case 'C', 'c':
		return card.Clubs
	case 'D', 'd':
		return card.Diamonds
	case 'H', 'h':
		return card.Hearts
	case 'S', 's':
		return card.Spades
	default:
		return -1
	}
}

// Render writes the layout back to text in the same format Parse
// accepts.
func Render(l Layout) string {
	var b strings.Builder
	for _, p := range l.Piles {
		for i, c := range p {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.String())
		}
		b.WriteByte('\n')
	}
	if len(l.FreeCells) > 0 {
		b.WriteString("Freecells:")
		for _, c := range l.FreeCells {
			b.WriteByte(' ')
			if c.IsEmpty() {
				b.WriteByte('*')
			} else {
				b.WriteString(c.String())
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("Foundations:")
	for s := 0; s < 4; s++ {
		b.WriteByte(' ')
		if l.Foundations[s] == 0 {
			b.WriteByte("CDHS"[s])
		} else {
			b.WriteString(card.New(l.Foundations[s], s).String())
		}
	}
	b.WriteByte('\n')
	return b.String()
}
