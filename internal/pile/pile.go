// Package pile implements work-pile hashing, interning, and the
// canonical (sorted) ordering used to build a position's packed key.
package pile

import "github.com/tholroyd/patsolve/internal/card"

// Pile is a work pile, bottom card at index 0, top card at the end.
type Pile []card.Card

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// Hash computes the FNV-1a 32-bit hash of the pile's 0-terminated byte
// sequence, matching spec.md's interner contract.
func Hash(p Pile) uint32 {
	h := uint32(fnvOffset32)
	for _, c := range p {
		h ^= uint32(c.Byte())
		h *= fnvPrime32
	}
	h ^= 0
	h *= fnvPrime32
	return h
}

// Bytes returns the pile's raw 0-terminated byte sequence, the unit that
// equality and the tree store's memcmp-equivalent compare over.
func Bytes(p Pile) []byte {
	b := make([]byte, len(p)+1)
	for i, c := range p {
		b[i] = c.Byte()
	}
	b[len(p)] = 0
	return b
}

func (p Pile) Top() card.Card {
	if len(p) == 0 {
		return card.Empty
	}
	return p[len(p)-1]
}

// SecondFromTop returns the card just below the top, or Empty if there
// isn't one.
func (p Pile) SecondFromTop() card.Card {
	if len(p) < 2 {
		return card.Empty
	}
	return p[len(p)-2]
}

func (p Pile) Empty() bool { return len(p) == 0 }
