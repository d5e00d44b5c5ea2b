package fmshard

import "errors"

// ErrEmptyPayload is returned when encoding or reconstructing
// a payload of zero bytes.
var ErrEmptyPayload = errors.New("payload must not be empty")

// ErrShardCount is returned when the number of shards or proofs
// given to [*Codec.Reconstruct] does not match the codec.
var ErrShardCount = errors.New("wrong number of shards")

// ErrInsufficientShards is returned from [*Codec.Reconstruct]
// when fewer verified shards were given than the number of data shards.
var ErrInsufficientShards = errors.New("insufficient verified shards to reconstruct")

// ErrRootMismatch is returned from [*Codec.Reconstruct]
// when the reconstructed shards do not commit to the expected root.
// This indicates that the original parity shards were not
// consistent with the data shards.
var ErrRootMismatch = errors.New("reconstructed shards do not match root")
