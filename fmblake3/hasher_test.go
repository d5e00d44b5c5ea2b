package fmblake3_test

import (
	"encoding/hex"
	"testing"

	"github.com/gordian-engine/fixmerkle/fmblake3"
	"github.com/gordian-engine/fixmerkle/fmtest"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	fmtest.TestHasherCompliance(t, fmblake3.NewHasher, fmblake3.HashSize)
}

func TestHasher_knownAnswer(t *testing.T) {
	t.Parallel()

	// Empty input, from the BLAKE3 reference test vectors.
	require.Equal(
		t,
		"af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		hex.EncodeToString(fmblake3.NewHasher().Finish().Bytes()),
	)
}
