package arena

import "testing"

func TestAllocWithinBlock(t *testing.T) {
	a := New(0)
	b1 := a.Alloc(16)
	b2 := a.Alloc(16)
	if len(b1) != 16 || len(b2) != 16 {
		t.Fatalf("unexpected alloc lengths: %d, %d", len(b1), len(b2))
	}
	b1[0] = 1
	b2[0] = 2
	if b1[0] != 1 || b2[0] != 2 {
		t.Fatal("allocations alias each other")
	}
}

func TestAllocSpansBlocks(t *testing.T) {
	a := New(0)
	n := BlockSize/2 + 10
	first := a.Alloc(n)
	second := a.Alloc(n)
	if len(first) != n || len(second) != n {
		t.Fatalf("got lengths %d, %d want %d, %d", len(first), len(second), n, n)
	}
}

func TestRewindRetractsLastAlloc(t *testing.T) {
	a := New(0)
	a.Alloc(100)
	before := a.cur.used
	a.Alloc(50)
	a.Rewind()
	if a.cur.used != before {
		t.Fatalf("after rewind, used = %d want %d", a.cur.used, before)
	}
}

func TestBudgetExhaustion(t *testing.T) {
	a := New(BlockSize) // exactly one block's worth
	if a.Alloc(BlockSize) == nil {
		t.Fatal("first block-sized alloc should succeed")
	}
	if a.Alloc(1) != nil {
		t.Fatal("alloc past budget should fail")
	}
	if !a.Failed() {
		t.Fatal("Failed() should report true after budget exhaustion")
	}
}
