package fixmerkle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 1024, 1 << 30} {
		require.Truef(t, IsPowerOfTwo(n), "%d", n)
	}
	for _, n := range []int{-4, -1, 0, 3, 5, 6, 7, 12, 1023} {
		require.Falsef(t, IsPowerOfTwo(n), "%d", n)
	}
}

func TestSlots(t *testing.T) {
	t.Parallel()

	/* Eight leaves, fifteen nodes:

	                0
	        1               2
	    3       4       5       6
	  7   8   9  10  11  12  13  14
	*/
	const nNodes = 15

	require.Equal(t, 7, leafSlot(nNodes, 0))
	require.Equal(t, 14, leafSlot(nNodes, 7))

	require.Equal(t, 3, parentSlot(7))
	require.Equal(t, 3, parentSlot(8))
	require.Equal(t, 6, parentSlot(14))
	require.Equal(t, 0, parentSlot(1))
	require.Equal(t, 0, parentSlot(2))

	s, d := siblingSlot(7)
	require.Equal(t, 8, s)
	require.Equal(t, Right, d)

	s, d = siblingSlot(8)
	require.Equal(t, 7, s)
	require.Equal(t, Left, d)

	s, d = siblingSlot(1)
	require.Equal(t, 2, s)
	require.Equal(t, Right, d)

	s, d = siblingSlot(2)
	require.Equal(t, 1, s)
	require.Equal(t, Left, d)

	// Single leaf tree: the leaf is the root.
	require.Zero(t, leafSlot(1, 0))
}

func TestLog2(t *testing.T) {
	t.Parallel()

	require.Zero(t, log2(1))
	require.Equal(t, 1, log2(2))
	require.Equal(t, 4, log2(16))
	require.Equal(t, 10, log2(1024))
}
