package fixmerkle

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Tree is a complete binary Merkle tree with a fixed number of leaves.
//
// Create a Tree with [NewTree].
// The tree is never modified after NewTree returns.
type Tree[H Hash] struct {
	// All nodes, root first and leaves last.
	nodes []H

	newHasher func() Hasher[H]
}

// TreeConfig is the configuration used for [NewTree].
type TreeConfig[H Hash] struct {
	// Capacity is the expected total node count of the tree,
	// which must be 2*len(items) - 1.
	// See [CapacityFor].
	Capacity int

	// NewHasher returns a fresh Hasher for each hash cycle.
	// The tree retains the function for use during verification.
	NewHasher func() Hasher[H]
}

// NewTree hashes every item into a leaf
// and builds every internal node up through the root.
//
// The number of items must be a power of two,
// otherwise NewTree returns a [NotPowerOfTwoError].
// If cfg.Capacity is not 2*len(items) - 1,
// NewTree returns a [SizeMismatchError].
// Both checks happen before any hashing.
func NewTree[H Hash, T Hashable](items []T, cfg TreeConfig[H]) (*Tree[H], error) {
	if cfg.NewHasher == nil {
		panic(fmt.Errorf("BUG: TreeConfig.NewHasher must not be nil"))
	}

	nLeaves := len(items)
	if !IsPowerOfTwo(nLeaves) {
		return nil, NotPowerOfTwoError{Capacity: cfg.Capacity, LeafCount: nLeaves}
	}

	nNodes := CapacityFor(nLeaves)
	if nNodes != cfg.Capacity {
		return nil, SizeMismatchError{Required: cfg.Capacity, Requested: nNodes}
	}

	t := &Tree[H]{
		nodes:     make([]H, nNodes),
		newHasher: cfg.NewHasher,
	}

	// The zero value of H could be a legitimate hash,
	// so track writes separately in order to prove the tree is complete.
	written := bitset.MustNew(uint(nNodes))

	for i, item := range items {
		slot := leafSlot(nNodes, i)
		t.nodes[slot] = hashOnce(t.newHasher, []byte(item))
		written.Set(uint(slot))
	}

	// Each round reads one full layer and writes the layer above it.
	// The layer for round r starts at slot width-1 and is width nodes wide,
	// where width halves every round.
	for width := nLeaves; width > 1; width >>= 1 {
		start := width - 1
		end := start + width
		for i := start; i < end; i += 2 {
			p := parentSlot(i)
			t.nodes[p] = hashOnce(t.newHasher, t.nodes[i].Bytes(), t.nodes[i+1].Bytes())
			written.Set(uint(p))
		}
	}

	if !written.All() {
		first, _ := written.NextClear(0)
		panic(fmt.Errorf(
			"BUG: tree with %d nodes was not fully populated; first missing slot is %d",
			nNodes, first,
		))
	}

	return t, nil
}

// Root returns the Merkle root hash.
func (t *Tree[H]) Root() H {
	return t.nodes[0]
}

// NLeaves returns the number of leaves, i.e. the number of items
// that were passed to [NewTree].
func (t *Tree[H]) NLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Capacity returns the total number of nodes in the tree.
func (t *Tree[H]) Capacity() int {
	return len(t.nodes)
}

// Depth returns the number of edges between any leaf and the root.
// This is also the length of every authentication path.
func (t *Tree[H]) Depth() int {
	return log2(t.NLeaves())
}

// Leaf returns the hash of the item at data index i.
func (t *Tree[H]) Leaf(i int) (H, error) {
	if i < 0 || i >= t.NLeaves() {
		var zero H
		return zero, NoSuchLeafError{Index: i}
	}

	return t.nodes[leafSlot(len(t.nodes), i)], nil
}
