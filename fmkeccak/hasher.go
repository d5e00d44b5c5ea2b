// Package fmkeccak provides legacy Keccak-256 hashing for fixmerkle trees.
//
// This is the pre-standard Keccak variant used by Ethereum,
// which differs from SHA3-256 only in padding.
// Roots built with this package can be checked
// by contracts using the keccak256 builtin,
// provided the contract concatenates children in the same order.
package fmkeccak

import (
	"hash"

	"github.com/gordian-engine/fixmerkle"
	"golang.org/x/crypto/sha3"
)

const HashSize = 32

// Hash is a Keccak-256 digest.
type Hash [HashSize]byte

func (h Hash) Bytes() []byte { return h[:] }

// Hasher is a [fixmerkle.Hasher] backed by legacy Keccak-256.
type Hasher struct {
	h hash.Hash
}

// NewHasher returns a fresh Keccak-256 hasher.
func NewHasher() fixmerkle.Hasher[Hash] {
	return &Hasher{h: sha3.NewLegacyKeccak256()}
}

func (h *Hasher) Update(p []byte) {
	_, _ = h.h.Write(p)
}

func (h *Hasher) Finish() Hash {
	var out Hash
	h.h.Sum(out[:0])
	return out
}
