package fixmerkle

import (
	"fmt"
	"iter"
)

// Verify reports whether data is the item at data index i
// that was used to build the tree.
//
// If i is out of range, Verify returns a [NoSuchLeafError].
func (t *Tree[H]) Verify(data []byte, i int) (bool, error) {
	p, err := t.Path(i)
	if err != nil {
		return false, err
	}

	got := replay(t.newHasher, hashOnce(t.newHasher, data), p.All())
	return got == t.Root(), nil
}

// RootFromPath recomputes the Merkle root
// from raw item data and its authentication path,
// without access to the rest of the tree.
//
// The caller compares the result against a trusted root.
// If any sibling has a direction other than [Left] or [Right],
// RootFromPath does no hashing and ok is false.
func RootFromPath[H Hash](newHasher func() Hasher[H], data []byte, siblings []Sibling[H]) (root H, ok bool) {
	for _, s := range siblings {
		if !s.Direction.valid() {
			return root, false
		}
	}

	return replay(newHasher, hashOnce(newHasher, data), func(yield func(H, SiblingDirection) bool) {
		for _, s := range siblings {
			if !yield(s.Hash, s.Direction) {
				return
			}
		}
	}), true
}

// replay folds each sibling into cur, in path order.
// The concatenation order must match the pairing used in [NewTree].
func replay[H Hash](newHasher func() Hasher[H], cur H, siblings iter.Seq2[H, SiblingDirection]) H {
	for sib, dir := range siblings {
		switch dir {
		case Left:
			cur = hashOnce(newHasher, sib.Bytes(), cur.Bytes())
		case Right:
			cur = hashOnce(newHasher, cur.Bytes(), sib.Bytes())
		default:
			panic(fmt.Errorf("BUG: unknown sibling direction %d", dir))
		}
	}
	return cur
}

// PathMatchesIndex reports whether siblings has the shape
// of an authentication path for data index i in a tree of nLeaves leaves:
// the right length, and each direction on the side dictated by i.
//
// [RootFromPath] alone does not bind data to an index,
// because the directions in the path fully determine the hash order.
// Check the shape first when the index carries meaning.
func PathMatchesIndex[H Hash](nLeaves, i int, siblings []Sibling[H]) bool {
	if !IsPowerOfTwo(nLeaves) || i < 0 || i >= nLeaves {
		return false
	}
	if len(siblings) != log2(nLeaves) {
		return false
	}

	cur := leafSlot(CapacityFor(nLeaves), i)
	for _, s := range siblings {
		if _, dir := siblingSlot(cur); dir != s.Direction {
			return false
		}
		cur = parentSlot(cur)
	}
	return true
}
