// Package fmblake3 provides 256-bit BLAKE3 hashing for fixmerkle trees.
package fmblake3

import (
	"github.com/gordian-engine/fixmerkle"
	"github.com/zeebo/blake3"
)

const HashSize = 32

// Hash is a 256-bit BLAKE3 digest.
type Hash [HashSize]byte

func (h Hash) Bytes() []byte { return h[:] }

// Hasher is a [fixmerkle.Hasher] backed by BLAKE3.
type Hasher struct {
	h *blake3.Hasher
}

// NewHasher returns a fresh BLAKE3 hasher.
func NewHasher() fixmerkle.Hasher[Hash] {
	return &Hasher{h: blake3.New()}
}

func (h *Hasher) Update(p []byte) {
	_, _ = h.h.Write(p)
}

// Finish returns the default 32-byte BLAKE3 output.
func (h *Hasher) Finish() Hash {
	var out Hash
	h.h.Sum(out[:0])
	return out
}
