package fixmerkle

import "iter"

// SiblingDirection indicates which side of a hash pair a sibling occupies.
//
// The direction names where the sibling sits,
// not where the node being verified sits.
// A Left sibling is hashed before the current value;
// a Right sibling is hashed after it.
type SiblingDirection uint8

const (
	Left SiblingDirection = iota
	Right
)

func (d SiblingDirection) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

func (d SiblingDirection) valid() bool {
	return d == Left || d == Right
}

// Sibling is one element of an authentication path.
type Sibling[H Hash] struct {
	Hash      H
	Direction SiblingDirection
}

// Path yields the sibling hashes required to recompute the root
// from a single leaf, ordered from the leaf upward.
// The root itself is never yielded.
//
// Obtain a Path from [*Tree.Path].
// A Path can only be iterated once;
// call [*Tree.Path] again to walk the same leaf again.
// A Path is not safe for concurrent use,
// but many Paths may walk the same Tree concurrently.
type Path[H Hash] struct {
	tree *Tree[H]

	// Slot of the node whose sibling is yielded next.
	// Starts at the leaf slot and ends at the root, slot 0.
	cur int
}

// Path returns the authentication path for the item at data index i.
// If i is out of range, Path returns a [NoSuchLeafError].
func (t *Tree[H]) Path(i int) (*Path[H], error) {
	if i < 0 || i >= t.NLeaves() {
		return nil, NoSuchLeafError{Index: i}
	}

	return &Path[H]{
		tree: t,
		cur:  leafSlot(len(t.nodes), i),
	}, nil
}

// Next returns the next sibling on the path.
// The boolean result is false once the root has been reached.
func (p *Path[H]) Next() (Sibling[H], bool) {
	if p.cur == 0 {
		return Sibling[H]{}, false
	}

	slot, dir := siblingSlot(p.cur)
	s := Sibling[H]{
		Hash:      p.tree.nodes[slot],
		Direction: dir,
	}
	p.cur = parentSlot(p.cur)
	return s, true
}

// Remaining reports how many more siblings Next will yield.
func (p *Path[H]) Remaining() int {
	n := 0
	for i := p.cur; i > 0; i = parentSlot(i) {
		n++
	}
	return n
}

// All returns an iterator over the remaining siblings.
// It advances the same cursor as Next,
// so breaking out of a range loop leaves the rest of the path available.
func (p *Path[H]) All() iter.Seq2[H, SiblingDirection] {
	return func(yield func(H, SiblingDirection) bool) {
		for {
			s, ok := p.Next()
			if !ok {
				return
			}
			if !yield(s.Hash, s.Direction) {
				return
			}
		}
	}
}

// Collect drains the remaining siblings into a new slice.
// The result can be sent elsewhere and checked with [RootFromPath].
func (p *Path[H]) Collect() []Sibling[H] {
	out := make([]Sibling[H], 0, p.Remaining())
	for {
		s, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}
