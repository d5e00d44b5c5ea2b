package fmtest

import (
	"testing"

	"github.com/gordian-engine/fixmerkle"
	"github.com/stretchr/testify/require"
)

// TestHasherCompliance runs the behavior that [fixmerkle.Tree]
// depends on against hashers returned from newHasher,
// each of which must produce hashes of exactly hashSize bytes.
func TestHasherCompliance[H fixmerkle.Hash](
	t *testing.T,
	newHasher func() fixmerkle.Hasher[H],
	hashSize int,
) {
	t.Run("output is hash size", func(t *testing.T) {
		t.Parallel()

		h := newHasher()
		h.Update([]byte("sized"))
		require.Len(t, h.Finish().Bytes(), hashSize)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		in := RandomDataForTest(t, 257)

		h1 := newHasher()
		h1.Update(in)

		h2 := newHasher()
		h2.Update(in)

		require.Equal(t, h1.Finish(), h2.Finish())
	})

	t.Run("empty input is deterministic", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, newHasher().Finish(), newHasher().Finish())
	})

	t.Run("split updates match single update", func(t *testing.T) {
		t.Parallel()

		in := RandomDataForTest(t, 96)

		whole := newHasher()
		whole.Update(in)

		split := newHasher()
		split.Update(in[:32])
		split.Update(in[32:])

		require.Equal(t, whole.Finish(), split.Finish())
	})

	t.Run("update order is significant", func(t *testing.T) {
		t.Parallel()

		ab := newHasher()
		ab.Update([]byte("left"))
		ab.Update([]byte("right"))

		ba := newHasher()
		ba.Update([]byte("right"))
		ba.Update([]byte("left"))

		require.NotEqual(t, ab.Finish(), ba.Finish())
	})

	t.Run("different input differs", func(t *testing.T) {
		t.Parallel()

		h1 := newHasher()
		h1.Update([]byte("hello"))

		h2 := newHasher()
		h2.Update([]byte("hell"))

		require.NotEqual(t, h1.Finish(), h2.Finish())
	})

	t.Run("instances are independent", func(t *testing.T) {
		t.Parallel()

		h1 := newHasher()
		h2 := newHasher()

		h1.Update([]byte("one"))
		h2.Update([]byte("two"))

		ref := newHasher()
		ref.Update([]byte("one"))

		require.Equal(t, ref.Finish(), h1.Finish())
		require.NotEqual(t, h2.Finish(), newHasher().Finish())
	})
}
