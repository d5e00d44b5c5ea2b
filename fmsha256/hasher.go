// Package fmsha256 provides SHA-256 hashing for fixmerkle trees.
package fmsha256

import (
	"crypto/sha256"
	"hash"

	"github.com/gordian-engine/fixmerkle"
)

const HashSize = sha256.Size

// Hash is a SHA-256 digest.
type Hash [HashSize]byte

func (h Hash) Bytes() []byte { return h[:] }

// Hasher is a [fixmerkle.Hasher] backed by SHA-256.
type Hasher struct {
	h hash.Hash
}

// NewHasher returns a fresh SHA-256 hasher.
// It is suitable as [fixmerkle.TreeConfig.NewHasher].
func NewHasher() fixmerkle.Hasher[Hash] {
	return &Hasher{h: sha256.New()}
}

func (h *Hasher) Update(p []byte) {
	_, _ = h.h.Write(p)
}

func (h *Hasher) Finish() Hash {
	var out Hash
	h.h.Sum(out[:0])
	return out
}
