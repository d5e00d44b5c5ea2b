// Package fmshard erasure-codes a payload into shards
// and commits to every shard with a [fixmerkle.Tree].
//
// The sender calls [*Codec.Encode] and distributes the root,
// the payload size, and each shard with its proof.
// A receiver checks shards individually with [*Codec.VerifyShard],
// and once enough shards have arrived,
// [*Codec.Reconstruct] recovers the original payload.
// Any shard that fails its proof is discarded before reconstruction,
// so a corrupt shard cannot poison the recovered payload.
package fmshard
