// Package store implements the packed-position duplicate-detection
// store: a forest of binary search trees, one per cluster (the
// foundation state), each holding the canonical packed keys seen so far
// at the shortest depth. Grounded on tree.c's insert/insert_node/
// cluster_tree, with the teacher's transposition.go contributing the
// depth-based "replace if shallower" replacement idiom.
package store

import "github.com/tholroyd/patsolve/internal/arena"

type Outcome int

const (
	New Outcome = iota
	Found
	FoundBetter
	Err
)

// Node is a tree node: left/right children, the shortest depth at which
// this key has been reached, and the packed key stored inline (as a
// trailing slice of arena-backed bytes).
type Node struct {
	Left, Right *Node
	Depth       int
	Key         []byte
}

type treeListEntry struct {
	cluster int
	tree    *Node
	next    *treeListEntry
}

const numClusterBuckets = 499 // FCS_PATS__TREE_LIST_NUM_BUCKETS, a prime

// Store is the forest of per-cluster BSTs plus the arena backing their
// packed keys.
type Store struct {
	buckets [numClusterBuckets]*treeListEntry
	arena   *arena.Arena
}

func NewStore(a *arena.Arena) *Store {
	return &Store{arena: a}
}

func (s *Store) clusterTree(cluster int) *treeListEntry {
	bucket := cluster % numClusterBuckets
	var last *treeListEntry
	for e := s.buckets[bucket]; e != nil; e = e.next {
		if e.cluster == cluster {
			return e
		}
		last = e
	}
	e := &treeListEntry{cluster: cluster}
	if last == nil {
		s.buckets[bucket] = e
	} else {
		last.next = e
	}
	return e
}

// Insert packs key into the tree for cluster at the given depth, unless an
// equal key is already present. toStack mirrors -S: when set, an
// existing node is never "improved" to a shallower depth (stack mode
// favors whatever was queued first).
func (s *Store) Insert(cluster int, depth int, key []byte, toStack bool) (Outcome, *Node) {
	tl := s.clusterTree(cluster)

	buf := s.arena.Alloc(len(key))
	if buf == nil {
		return Err, nil
	}
	copy(buf, key)

	outcome, node := insertNode(&tl.tree, &Node{Key: buf, Depth: depth}, toStack)
	if outcome != New {
		s.arena.Rewind()
	}
	return outcome, node
}

func insertNode(tree **Node, n *Node, toStack bool) (Outcome, *Node) {
	t := *tree
	if t == nil {
		*tree = n
		return New, n
	}
	for {
		c := compareKeys(n.Key, t.Key)
		if c == 0 {
			break
		}
		if c < 0 {
			if t.Left == nil {
				t.Left = n
				return New, n
			}
			t = t.Left
		} else {
			if t.Right == nil {
				t.Right = n
				return New, n
			}
			t = t.Right
		}
	}
	if n.Depth < t.Depth && !toStack {
		t.Depth = n.Depth
		return FoundBetter, t
	}
	return Found, t
}

func compareKeys(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
