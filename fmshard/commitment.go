package fmshard

import (
	"bytes"

	"github.com/gordian-engine/fixmerkle"
)

// Commitment is the result of [*Codec.Encode]:
// the data and parity shards, and the Merkle tree committing to them.
type Commitment[H fixmerkle.Hash] struct {
	tree *fixmerkle.Tree[H]

	shards [][]byte

	payloadSize int
}

// Root returns the Merkle root over all shards.
func (c *Commitment[H]) Root() H {
	return c.tree.Root()
}

// Tree returns the underlying Merkle tree.
func (c *Commitment[H]) Tree() *fixmerkle.Tree[H] {
	return c.tree
}

// PayloadSize returns the length of the original payload,
// which is required to strip shard padding in [*Codec.Reconstruct].
func (c *Commitment[H]) PayloadSize() int {
	return c.payloadSize
}

// NShards returns the total number of data and parity shards.
func (c *Commitment[H]) NShards() int {
	return len(c.shards)
}

// Shard returns a copy of the shard at index i.
func (c *Commitment[H]) Shard(i int) ([]byte, error) {
	if i < 0 || i >= len(c.shards) {
		return nil, fixmerkle.NoSuchLeafError{Index: i}
	}
	return bytes.Clone(c.shards[i]), nil
}

// Shards returns copies of every shard, data shards first.
func (c *Commitment[H]) Shards() [][]byte {
	out := make([][]byte, len(c.shards))
	for i, s := range c.shards {
		out[i] = bytes.Clone(s)
	}
	return out
}

// Proof returns the authentication path for the shard at index i.
func (c *Commitment[H]) Proof(i int) ([]fixmerkle.Sibling[H], error) {
	p, err := c.tree.Path(i)
	if err != nil {
		return nil, err
	}
	return p.Collect(), nil
}

// Proofs returns the authentication path for every shard.
func (c *Commitment[H]) Proofs() [][]fixmerkle.Sibling[H] {
	out := make([][]fixmerkle.Sibling[H], len(c.shards))
	for i := range out {
		// The index is always in range here.
		p, _ := c.tree.Path(i)
		out[i] = p.Collect()
	}
	return out
}
