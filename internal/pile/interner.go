package pile

import (
	"fmt"

	"github.com/tholroyd/patsolve/internal/card"
)

const (
	NumBuckets = 4093 // largest 12-bit prime
	MaxPiles   = 4096 // a 12-bit code
)

// entry is one distinct pile content: its byte sequence, hash, assigned id,
// and bucket-chain link.
type entry struct {
	bytes []byte
	hash  uint32
	id    int
	next  *entry
}

// Interner assigns stable 12-bit ids to distinct pile byte sequences, with
// a hash-bucket lookup (ground: transposition.go's mask-indexed probe) and
// a reverse table for unpacking ids back into pile bytes.
type Interner struct {
	buckets [NumBuckets]*entry
	byID    [MaxPiles]*entry
	next    int
}

func NewInterner() *Interner {
	return &Interner{}
}

// ErrOverflow is returned when more than MaxPiles distinct piles have been
// seen in one search.
var ErrOverflow = fmt.Errorf("pile interner: exceeded %d distinct piles", MaxPiles)

// Intern returns the stable id for a pile's content, assigning a new one on
// first sight. Equality is byte-exact on the 0-terminated sequence.
func (in *Interner) Intern(p Pile) (int, error) {
	h := Hash(p)
	b := Bytes(p)
	bucket := int(h % NumBuckets)

	var last *entry
	for e := in.buckets[bucket]; e != nil; e = e.next {
		if e.hash == h && bytesEqual(e.bytes, b) {
			return e.id, nil
		}
		last = e
	}

	if in.next >= MaxPiles {
		return 0, ErrOverflow
	}
	e := &entry{bytes: b, hash: h, id: in.next}
	in.next++
	if last == nil {
		in.buckets[bucket] = e
	} else {
		last.next = e
	}
	in.byID[e.id] = e
	return e.id, nil
}

// Bytes returns the 0-terminated byte sequence previously interned under id.
func (in *Interner) Bytes(id int) []byte {
	e := in.byID[id]
	if e == nil {
		return nil
	}
	return e.bytes
}

// Pile decodes the pile back out of its interned id.
func (in *Interner) Pile(id int) Pile {
	b := in.Bytes(id)
	if b == nil {
		return nil
	}
	p := make(Pile, 0, len(b)-1)
	for _, by := range b[:len(b)-1] {
		p = append(p, card.FromByte(by))
	}
	return p
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
