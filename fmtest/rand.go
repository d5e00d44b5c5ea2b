package fmtest

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"testing"
)

// RandomItemsForTest returns n items of sz bytes each,
// read in order from a pseudorandom stream keyed by the test name.
// Every call from the same test restarts the stream,
// so the items are stable across runs.
//
// Each item has its own backing array.
func RandomItemsForTest(t testing.TB, n, sz int) [][]byte {
	if n < 0 || sz < 0 {
		panic(fmt.Errorf(
			"BUG: item count and size must be non-negative (got n=%d sz=%d)", n, sz,
		))
	}

	// SHA-256 output is exactly the ChaCha8 seed size.
	src := rand.NewChaCha8(sha256.Sum256([]byte(t.Name())))

	out := make([][]byte, n)
	for i := range out {
		out[i] = make([]byte, sz)
		if _, err := src.Read(out[i]); err != nil {
			panic(err)
		}
	}
	return out
}

// RandomDataForTest returns sz pseudorandom bytes.
// It is the single-item case of [RandomItemsForTest].
func RandomDataForTest(t testing.TB, sz int) []byte {
	return RandomItemsForTest(t, 1, sz)[0]
}
