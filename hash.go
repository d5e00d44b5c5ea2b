package fixmerkle

// Hash is the constraint for the value produced by a [Hasher].
//
// Implementations are expected to be fixed-size byte arrays,
// so that the == operator compares the hash bytes
// and copying a Hash is cheap.
// Bytes must return the full hash content;
// callers do not modify the returned slice.
type Hash interface {
	comparable

	Bytes() []byte
}

// Hasher incrementally hashes data into a value of type H.
//
// A Hasher is used for exactly one cycle:
// zero or more calls to Update, followed by a single call to Finish.
// The Hasher must not be used after Finish.
type Hasher[H Hash] interface {
	// Update ingests more data. Order of calls is significant.
	Update(p []byte)

	// Finish returns the hash of all data passed to Update.
	Finish() H
}

// Hashable is the set of input types that can be placed in a [Tree].
type Hashable interface {
	~[]byte | ~string
}

// hashOnce runs one full cycle of a fresh hasher over the given inputs.
func hashOnce[H Hash](newHasher func() Hasher[H], in ...[]byte) H {
	h := newHasher()
	for _, p := range in {
		h.Update(p)
	}
	return h.Finish()
}
