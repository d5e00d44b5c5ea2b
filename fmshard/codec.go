package fmshard

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/fixmerkle"
	"github.com/klauspost/reedsolomon"
)

// CodecConfig is the configuration for [NewCodec].
type CodecConfig[H fixmerkle.Hash] struct {
	// The number of data and parity shards.
	// Their sum is the leaf count of the Merkle tree,
	// so it must be a power of two.
	// Any DataShards of the total shards suffice to reconstruct the payload.
	DataShards, ParityShards int

	// How to hash shards and nodes in the Merkle tree.
	NewHasher func() fixmerkle.Hasher[H]
}

// Codec splits payloads into Merkle-committed shards
// and reconstructs payloads from verified shards.
//
// A Codec is safe for concurrent use.
type Codec[H fixmerkle.Hash] struct {
	log *slog.Logger

	enc reedsolomon.Encoder

	nData, nParity int

	newHasher func() fixmerkle.Hasher[H]
}

// NewCodec returns a Codec for the given config.
//
// If the total shard count is not a power of two,
// the returned error wraps a [fixmerkle.NotPowerOfTwoError].
func NewCodec[H fixmerkle.Hash](log *slog.Logger, cfg CodecConfig[H]) (*Codec[H], error) {
	if cfg.DataShards <= 0 {
		panic(fmt.Errorf(
			"BUG: DataShards must be positive (got %d)", cfg.DataShards,
		))
	}
	if cfg.ParityShards < 0 {
		panic(fmt.Errorf(
			"BUG: ParityShards must be non-negative (got %d)", cfg.ParityShards,
		))
	}
	if cfg.NewHasher == nil {
		panic(fmt.Errorf("BUG: CodecConfig.NewHasher must not be nil"))
	}

	total := cfg.DataShards + cfg.ParityShards
	if !fixmerkle.IsPowerOfTwo(total) {
		return nil, fmt.Errorf(
			"invalid shard configuration (%d data, %d parity): %w",
			cfg.DataShards, cfg.ParityShards,
			fixmerkle.NotPowerOfTwoError{
				Capacity:  fixmerkle.CapacityFor(total),
				LeafCount: total,
			},
		)
	}

	enc, err := reedsolomon.New(cfg.DataShards, cfg.ParityShards)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to build Reed-Solomon encoder: %w", err,
		)
	}

	return &Codec[H]{
		log: log,

		enc: enc,

		nData:   cfg.DataShards,
		nParity: cfg.ParityShards,

		newHasher: cfg.NewHasher,
	}, nil
}

// NShards returns the total number of data and parity shards.
func (c *Codec[H]) NShards() int {
	return c.nData + c.nParity
}

// Encode splits payload into data shards, computes the parity shards,
// and builds the Merkle tree over all shards in order,
// data shards first.
//
// The payload is copied, so the caller may reuse it after Encode returns.
func (c *Codec[H]) Encode(payload []byte) (*Commitment[H], error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	// Split retains the input's backing memory for most shards.
	shards, err := c.enc.Split(bytes.Clone(payload))
	if err != nil {
		return nil, fmt.Errorf(
			"failed to split payload into shards: %w", err,
		)
	}

	if err := c.enc.Encode(shards); err != nil {
		return nil, fmt.Errorf(
			"failed to erasure-code payload: %w", err,
		)
	}

	tree := c.commit(shards)

	c.log.Debug(
		"Encoded payload",
		"payload_size", len(payload),
		"shard_size", len(shards[0]),
		"n_data", c.nData,
		"n_parity", c.nParity,
	)

	return &Commitment[H]{
		tree:        tree,
		shards:      shards,
		payloadSize: len(payload),
	}, nil
}

// VerifyShard reports whether shard is the shard at index i
// under the given root, according to proof.
func (c *Codec[H]) VerifyShard(root H, i int, shard []byte, proof []fixmerkle.Sibling[H]) bool {
	if !fixmerkle.PathMatchesIndex(c.NShards(), i, proof) {
		return false
	}

	got, ok := fixmerkle.RootFromPath(c.newHasher, shard, proof)
	return ok && got == root
}

// Reconstruct recovers the original payload of payloadSize bytes.
//
// The shards and proofs slices must both have exactly [*Codec.NShards] entries.
// A nil shard indicates a shard that was never received.
// Every non-nil shard is checked against root with its proof,
// and shards that fail are ignored.
// At least DataShards verified shards are required.
//
// Neither the shards nor the proofs are modified.
//
// The root does not commit to payloadSize.
// A smaller payloadSize yields a prefix of the payload without error,
// so the caller must obtain payloadSize from the same trusted source as root.
func (c *Codec[H]) Reconstruct(
	root H,
	payloadSize int,
	shards [][]byte,
	proofs [][]fixmerkle.Sibling[H],
) ([]byte, error) {
	if payloadSize <= 0 {
		return nil, ErrEmptyPayload
	}

	n := c.NShards()
	if len(shards) != n || len(proofs) != n {
		return nil, fmt.Errorf(
			"%w: need %d, got %d shards and %d proofs",
			ErrShardCount, n, len(shards), len(proofs),
		)
	}

	verified := bitset.MustNew(uint(n))
	work := make([][]byte, n)
	for i, shard := range shards {
		if shard == nil {
			continue
		}

		if !c.VerifyShard(root, i, shard, proofs[i]) {
			c.log.Warn(
				"Dropping shard that failed verification",
				"idx", i,
			)
			continue
		}

		work[i] = shard
		verified.Set(uint(i))
	}

	if have := int(verified.Count()); have < c.nData {
		return nil, fmt.Errorf(
			"%w: have %d, need %d",
			ErrInsufficientShards, have, c.nData,
		)
	}

	if err := c.enc.Reconstruct(work); err != nil {
		return nil, fmt.Errorf(
			"failed to reconstruct shards: %w", err,
		)
	}

	// Reconstruction only used the verified shards,
	// so the result is only trustworthy
	// if the full set still commits to the same root.
	if c.commit(work).Root() != root {
		return nil, ErrRootMismatch
	}

	var buf bytes.Buffer
	buf.Grow(payloadSize)
	if err := c.enc.Join(&buf, work, payloadSize); err != nil {
		return nil, fmt.Errorf(
			"failed to join %d bytes from reconstructed shards: %w", payloadSize, err,
		)
	}

	c.log.Debug(
		"Reconstructed payload",
		"payload_size", payloadSize,
		"verified_shards", verified.Count(),
		"missing_shards", uint(n)-verified.Count(),
	)

	return buf.Bytes(), nil
}

func (c *Codec[H]) commit(shards [][]byte) *fixmerkle.Tree[H] {
	tree, err := fixmerkle.NewTree(shards, fixmerkle.TreeConfig[H]{
		Capacity:  fixmerkle.CapacityFor(c.NShards()),
		NewHasher: c.newHasher,
	})
	if err != nil {
		// NewCodec already checked the shard count.
		panic(fmt.Errorf("BUG: failed to build shard tree: %w", err))
	}
	return tree
}
