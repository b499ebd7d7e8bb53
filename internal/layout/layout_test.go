package layout

import "testing"

func TestParseWorkPiles(t *testing.T) {
	text := "AS 2D 3C\nKH QS\n"
	l, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Piles) != 2 {
		t.Fatalf("got %d piles, want 2", len(l.Piles))
	}
	if len(l.Piles[0]) != 3 || len(l.Piles[1]) != 2 {
		t.Fatalf("pile lengths = %d, %d", len(l.Piles[0]), len(l.Piles[1]))
	}
}

func TestParseFreecellsLine(t *testing.T) {
	text := "AS 2D\nFC: KH * 3C *\n"
	l, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.FreeCells) != 4 {
		t.Fatalf("got %d free cells, want 4", len(l.FreeCells))
	}
	if !l.FreeCells[1].IsEmpty() || !l.FreeCells[3].IsEmpty() {
		t.Fatal("empty markers did not parse to Empty")
	}
	if l.FreeCells[0].IsEmpty() || l.FreeCells[2].IsEmpty() {
		t.Fatal("real cards parsed as empty")
	}
}

func TestParseFoundationsLine(t *testing.T) {
	text := "AS 2D\nFoundations: 5C QD H S\n"
	l, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if l.Foundations[0] != 5 {
		t.Errorf("clubs foundation = %d want 5", l.Foundations[0])
	}
	if l.Foundations[1] != 12 {
		t.Errorf("diamonds foundation = %d want 12", l.Foundations[1])
	}
	if l.Foundations[2] != 0 || l.Foundations[3] != 0 {
		t.Errorf("empty foundation suits should be 0: got %d, %d", l.Foundations[2], l.Foundations[3])
	}
}

func TestParseCaseInsensitivePrefixes(t *testing.T) {
	text := "AS\nfreecells: *\ndecks: c\n"
	l, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.FreeCells) != 1 {
		t.Fatalf("lowercase 'freecells:' not recognized")
	}
	if l.Foundations[0] != 0 {
		t.Fatalf("lowercase 'decks:' not recognized")
	}
}

func TestParseRejectsBadCard(t *testing.T) {
	if _, err := Parse("ZZ 2D\n"); err == nil {
		t.Fatal("expected an error for a malformed card token")
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	text := "AS 2D 3C\nKH QS\n"
	l, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	rendered := Render(l)
	l2, err := Parse(rendered)
	if err != nil {
		t.Fatalf("re-parsing rendered output failed: %v", err)
	}
	if len(l2.Piles) != len(l.Piles) {
		t.Fatalf("round trip pile count mismatch: %d vs %d", len(l2.Piles), len(l.Piles))
	}
}
