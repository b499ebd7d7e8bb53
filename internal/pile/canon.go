package pile

// Canonicalizer holds the working permutation used to map work piles into
// sorted-by-id order. It is reused across positions because the order is
// almost always nearly sorted between consecutive positions (one pile
// changed by the last move), so an insertion pass is the natural
// algorithm rather than a full sort each time.
type Canonicalizer struct {
	Perm []int // Perm[slot] = pile index occupying that sorted slot
}

func NewCanonicalizer(n int) *Canonicalizer {
	c := &Canonicalizer{Perm: make([]int, n)}
	for i := range c.Perm {
		c.Perm[i] = i
	}
	return c
}

// Sort reorders Perm so that ids[Perm[0]] <= ids[Perm[1]] <= ... (or the
// reverse, when descending is true, selected by the sign of parameter
// x[9]). It is an insertion sort: nearly-sorted input is the expected
// case, so this is linear in practice rather than the worst case.
func (c *Canonicalizer) Sort(ids []int, descending bool) {
	less := func(a, b int) bool {
		if descending {
			return ids[a] > ids[b]
		}
		return ids[a] < ids[b]
	}
	for i := 1; i < len(c.Perm); i++ {
		key := c.Perm[i]
		j := i - 1
		for j >= 0 && less(key, c.Perm[j]) {
			c.Perm[j+1] = c.Perm[j]
			j--
		}
		c.Perm[j+1] = key
	}
}

// PackKey concatenates ids[Perm[i]] as 12-bit big-endian values, producing
// ceil(n*3/2) bytes — the canonical key that identifies a search state
// together with its cluster.
func (c *Canonicalizer) PackKey(ids []int) []byte {
	n := len(c.Perm)
	out := make([]byte, (n*3+1)/2)
	for i := 0; i < n; i++ {
		id := ids[c.Perm[i]]
		bitOffset := i * 12
		byteOffset := bitOffset / 8
		if bitOffset%8 == 0 {
			out[byteOffset] = byte(id >> 4)
			out[byteOffset+1] |= byte(id<<4) & 0xf0
		} else {
			out[byteOffset] |= byte(id >> 8)
			out[byteOffset+1] = byte(id)
		}
	}
	return out
}

// UnpackKey is the inverse of PackKey: given the packed bytes and pile
// count, it recovers the n interned ids in their packed (sorted) order.
func UnpackKey(key []byte, n int) []int {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		bitOffset := i * 12
		byteOffset := bitOffset / 8
		if bitOffset%8 == 0 {
			ids[i] = int(key[byteOffset])<<4 | int(key[byteOffset+1]>>4)
		} else {
			ids[i] = int(key[byteOffset]&0x0f)<<8 | int(key[byteOffset+1])
		}
	}
	return ids
}
