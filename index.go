package fixmerkle

import "math/bits"

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CapacityFor returns the total node count of a tree with nLeaves leaves.
// This is the value to use for [TreeConfig.Capacity].
func CapacityFor(nLeaves int) int {
	return 2*nLeaves - 1
}

// leafSlot maps a data index to its slot in the nodes slice,
// for a tree with nNodes total nodes.
func leafSlot(nNodes, i int) int {
	return nNodes/2 + i
}

// parentSlot returns the slot of the parent of the node at slot i.
// The root (slot 0) has no parent.
func parentSlot(i int) int {
	return (i - 1) / 2
}

// siblingSlot returns the slot of the sibling of the node at slot i,
// and the side of the pair that sibling occupies.
//
// Odd slots are left children, so their sibling is to the right.
// Even slots (other than the root) are right children,
// so their sibling is to the left.
func siblingSlot(i int) (int, SiblingDirection) {
	if i&1 == 0 {
		return i - 1, Left
	}
	return i + 1, Right
}

// log2 returns the base 2 logarithm of n, which must be a power of two.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}
