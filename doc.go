// Package fixmerkle contains a fixed-capacity, complete binary Merkle tree.
//
// The tree is complete: the leaf count must be a power of two,
// so every leaf sits at the same depth
// and every non-leaf node has exactly two children.
// It is compact: all 2L-1 node hashes live in one contiguous slice
// with no pointers between nodes.
// The root is at index 0, internal nodes follow in breadth-first order,
// and the leaves occupy the final L slots in their original data order.
// Given a slot i > 0, its parent is at (i-1)/2.
// An odd slot is a left child and its sibling is at i+1;
// an even slot is a right child and its sibling is at i-1.
//
// The hash function is supplied by the caller through the [Hash] and [Hasher]
// constraints. See the fmsha256, fmkeccak, and fmblake3 subpackages
// for ready-made implementations.
//
// A constructed [Tree] is immutable,
// so it is safe for concurrent use by multiple readers.
package fixmerkle
